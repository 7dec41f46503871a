package api

import (
	"github.com/gin-gonic/gin"

	"github.com/botsportsempire/gridiron/api/handlers"
)

// SetupRoutes initializes all API endpoints
func SetupRoutes(router *gin.Engine) {
	api := router.Group("/api")
	{
		api.POST("/bots/register", handlers.RegisterBot)
		api.GET("/bots", handlers.ListBots)
		api.GET("/bots/:botID", handlers.GetBot)
		api.GET("/bots/:botID/mood", handlers.GetBotMood)
		api.GET("/bots/:botID/social", handlers.GetBotSocial)
		api.POST("/bots/:botID/mood-events", handlers.CreateMoodEvent)

		api.GET("/directory", handlers.GetDirectory)

		api.POST("/leagues", handlers.CreateLeague)
		api.GET("/leagues", handlers.ListLeagues)
		api.GET("/leagues/:leagueID", handlers.GetLeague)
		api.POST("/leagues/:leagueID/bots", handlers.JoinLeague)
		api.POST("/leagues/:leagueID/matchups", handlers.RecordMatchup)
		api.GET("/leagues/:leagueID/matchups", handlers.ListMatchups)
		api.POST("/leagues/:leagueID/draft-picks", handlers.GradeDraftPick)
		api.GET("/leagues/:leagueID/draft-picks", handlers.ListDraftPicks)
		api.GET("/leagues/:leagueID/trades", handlers.ListTrades)
		api.GET("/leagues/:leagueID/insights", handlers.GetLeagueInsights)

		api.POST("/trades", handlers.ProposeTrade)
		api.GET("/trades/:tradeID", handlers.GetTrade)
		api.POST("/trades/:tradeID/votes", handlers.CastTradeVote)
		api.POST("/trades/:tradeID/auto-votes", handlers.AutoVoteTrade)

		api.POST("/trashtalk", handlers.PostTrashTalk)
		api.GET("/trashtalk/threads", handlers.ListBanterThreads)
		api.GET("/trashtalk/threads/:threadID", handlers.GetBanterThread)

		api.GET("/ws", handlers.HandleWebSocket)
	}
}
