package handlers

import (
	"errors"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"github.com/botsportsempire/gridiron/communication"
	"github.com/botsportsempire/gridiron/core"
)

type createLeagueRequest struct {
	Name        string   `json:"name" binding:"required"`
	Description string   `json:"description"`
	BotIDs      []string `json:"bot_ids"`
}

// CreateLeague - opens a league, optionally pre-enrolling bots.
func CreateLeague(c *gin.Context) {
	var req createLeagueRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid league data: name is required"})
		return
	}

	for _, id := range req.BotIDs {
		if _, err := deps.Bots.GetBot(id); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Unknown bot in roster: " + id})
			return
		}
	}

	league := &core.League{
		ID:          uuid.New().String(),
		Name:        req.Name,
		Description: req.Description,
		BotIDs:      req.BotIDs,
		CreatedAt:   time.Now().UTC(),
	}
	if league.BotIDs == nil {
		league.BotIDs = []string{}
	}
	if err := deps.Leagues.SaveLeague(league); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to save league"})
		return
	}

	c.JSON(http.StatusCreated, gin.H{"league": league})
}

// ListLeagues - every league.
func ListLeagues(c *gin.Context) {
	leagues, err := deps.Leagues.ListLeagues()
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to list leagues"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"leagues": leagues, "count": len(leagues)})
}

// GetLeague - one league by id.
func GetLeague(c *gin.Context) {
	league, err := deps.Leagues.GetLeague(c.Param("leagueID"))
	if err != nil {
		if errors.Is(err, core.ErrLeagueNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "League not found"})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to load league"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"league": league})
}

type joinLeagueRequest struct {
	BotID string `json:"bot_id" binding:"required"`
}

// JoinLeague - enrolls a bot.
func JoinLeague(c *gin.Context) {
	var req joinLeagueRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid join data: bot_id is required"})
		return
	}

	league, err := deps.Leagues.GetLeague(c.Param("leagueID"))
	if err != nil {
		if errors.Is(err, core.ErrLeagueNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "League not found"})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to load league"})
		return
	}
	if _, err := deps.Bots.GetBot(req.BotID); err != nil {
		if errors.Is(err, core.ErrBotNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "Bot not found"})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to load bot"})
		return
	}
	if league.HasBot(req.BotID) {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Bot is already enrolled"})
		return
	}

	league.BotIDs = append(league.BotIDs, req.BotID)
	if err := deps.Leagues.SaveLeague(league); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to save league"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"league": league})
}

type recordMatchupRequest struct {
	Week      int     `json:"week"`
	HomeBotID string  `json:"home_bot_id" binding:"required"`
	AwayBotID string  `json:"away_bot_id" binding:"required"`
	HomeScore float64 `json:"home_score"`
	AwayScore float64 `json:"away_score"`
}

// RecordMatchup - stores a head-to-head result and emits the win/loss
// mood events.
func RecordMatchup(c *gin.Context) {
	var req recordMatchupRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid matchup data"})
		return
	}

	outcome, err := deps.Matchups.RecordResult(c.Param("leagueID"), req.Week,
		req.HomeBotID, req.AwayBotID, req.HomeScore, req.AwayScore)
	if err != nil {
		if errors.Is(err, core.ErrLeagueNotFound) || errors.Is(err, core.ErrBotNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": err.Error()})
			return
		}
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	payload := gin.H{
		"matchup":    outcome.Matchup,
		"commentary": outcome.Commentary,
	}
	communication.BroadcastEvent(communication.EventMatchupResult, payload)
	publishLeagueEvent(outcome.Matchup.LeagueID, payload)

	c.JSON(http.StatusCreated, gin.H{
		"matchup":    outcome.Matchup,
		"home_mood":  outcome.HomeMood,
		"away_mood":  outcome.AwayMood,
		"commentary": outcome.Commentary,
	})
}

// ListMatchups - a league's matchups ordered by week.
func ListMatchups(c *gin.Context) {
	leagueID := c.Param("leagueID")
	if _, err := deps.Leagues.GetLeague(leagueID); err != nil {
		if errors.Is(err, core.ErrLeagueNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "League not found"})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to load league"})
		return
	}

	matchups, err := deps.Leagues.ListMatchups(leagueID)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to list matchups"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"matchups": matchups, "count": len(matchups)})
}

type gradeDraftPickRequest struct {
	BotID      string  `json:"bot_id" binding:"required"`
	PlayerName string  `json:"player_name" binding:"required"`
	Round      int     `json:"round"`
	PickNumber int     `json:"pick_number"`
	ADP        float64 `json:"adp"`
}

// GradeDraftPick - grades a pick against ADP; steals and busts move the
// bot's mood.
func GradeDraftPick(c *gin.Context) {
	var req gradeDraftPickRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid draft pick data"})
		return
	}

	outcome, err := deps.Drafts.GradePick(c.Param("leagueID"), req.BotID,
		req.PlayerName, req.Round, req.PickNumber, req.ADP)
	if err != nil {
		if errors.Is(err, core.ErrLeagueNotFound) || errors.Is(err, core.ErrBotNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": err.Error()})
			return
		}
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	communication.BroadcastEvent(communication.EventDraftGraded, gin.H{
		"pick": outcome.Pick,
	})
	publishLeagueEvent(outcome.Pick.LeagueID, gin.H{"pick": outcome.Pick})

	c.JSON(http.StatusCreated, gin.H{
		"pick": outcome.Pick,
		"mood": outcome.Mood,
	})
}

// GetLeagueInsights - season-so-far recap: standings, mood board,
// hottest rivalry, trade activity and a narrative.
func GetLeagueInsights(c *gin.Context) {
	report, err := deps.Insights.AnalyzeLeague(c.Param("leagueID"))
	if err != nil {
		if errors.Is(err, core.ErrLeagueNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "League not found"})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to build league insights"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"insights": report})
}

// ListDraftPicks - a league's graded picks in draft order.
func ListDraftPicks(c *gin.Context) {
	leagueID := c.Param("leagueID")
	if _, err := deps.Leagues.GetLeague(leagueID); err != nil {
		if errors.Is(err, core.ErrLeagueNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "League not found"})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to load league"})
		return
	}

	picks, err := deps.Leagues.ListDraftPicks(leagueID)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to list draft picks"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"picks": picks, "count": len(picks)})
}
