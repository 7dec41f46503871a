package handlers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/botsportsempire/gridiron/communication"
	"github.com/botsportsempire/gridiron/core"
	"github.com/botsportsempire/gridiron/workflows"
)

type proposeTradeRequest struct {
	LeagueID      string   `json:"league_id" binding:"required"`
	ProposerBotID string   `json:"proposer_bot_id" binding:"required"`
	ReceiverBotID string   `json:"receiver_bot_id" binding:"required"`
	ProposerGives []string `json:"proposer_gives"`
	ReceiverGives []string `json:"receiver_gives"`
	VotingHours   int      `json:"voting_hours"`
}

// ProposeTrade - opens a trade for league veto review.
func ProposeTrade(c *gin.Context) {
	var req proposeTradeRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid trade data"})
		return
	}

	trade, resolution, err := deps.Deals.Propose(req.LeagueID, req.ProposerBotID,
		req.ReceiverBotID, req.ProposerGives, req.ReceiverGives, req.VotingHours)
	if err != nil {
		if errors.Is(err, core.ErrLeagueNotFound) || errors.Is(err, core.ErrBotNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": err.Error()})
			return
		}
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	communication.BroadcastEvent(communication.EventTradeProposed, gin.H{
		"trade_id":  trade.ID,
		"league_id": trade.LeagueID,
		"proposer":  trade.ProposerBotID,
		"receiver":  trade.ReceiverBotID,
	})
	broadcastResolution(resolution)

	c.JSON(http.StatusCreated, gin.H{
		"trade":      trade,
		"resolution": resolutionView(resolution),
	})
}

// CastTradeVote - records one PASS/VETO verdict.
func CastTradeVote(c *gin.Context) {
	var req struct {
		LeagueID string `json:"league_id" binding:"required"`
		BotID    string `json:"bot_id" binding:"required"`
		Vote     string `json:"vote" binding:"required"`
		Reason   string `json:"reason"`
		Comment  string `json:"comment"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid vote data"})
		return
	}

	outcome, err := deps.Deals.CastVote(req.LeagueID, c.Param("tradeID"),
		req.BotID, req.Vote, req.Reason, req.Comment)
	if err != nil {
		if errors.Is(err, core.ErrTradeNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": err.Error()})
			return
		}
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	communication.BroadcastEvent(communication.EventTradeVoteCast, gin.H{
		"trade_id": outcome.Trade.ID,
		"bot_id":   outcome.Vote.BotID,
		"vote":     outcome.Vote.Vote,
		"reason":   outcome.Vote.Reason,
	})
	broadcastResolution(outcome.Resolution)

	c.JSON(http.StatusOK, gin.H{
		"vote":       outcome.Vote,
		"trade":      outcome.Trade,
		"resolution": resolutionView(outcome.Resolution),
	})
}

// AutoVoteTrade - lets every pending voter roll an in-character verdict.
func AutoVoteTrade(c *gin.Context) {
	var req struct {
		LeagueID string `json:"league_id" binding:"required"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid auto-vote data"})
		return
	}

	outcomes, err := deps.Deals.AutoVoteAll(req.LeagueID, c.Param("tradeID"))
	if err != nil {
		if errors.Is(err, core.ErrTradeNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": err.Error()})
			return
		}
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	votes := make([]core.TradeVote, 0, len(outcomes))
	var resolution *workflows.ResolutionOutcome
	for _, o := range outcomes {
		votes = append(votes, o.Vote)
		communication.BroadcastEvent(communication.EventTradeVoteCast, gin.H{
			"trade_id": o.Trade.ID,
			"bot_id":   o.Vote.BotID,
			"vote":     o.Vote.Vote,
			"reason":   o.Vote.Reason,
		})
		if o.Resolution != nil {
			resolution = o.Resolution
		}
	}
	broadcastResolution(resolution)

	c.JSON(http.StatusOK, gin.H{
		"votes":      votes,
		"resolution": resolutionView(resolution),
	})
}

// GetTrade - one trade; league_id comes as a query parameter since
// trades are stored per league.
func GetTrade(c *gin.Context) {
	leagueID := c.Query("league_id")
	if leagueID == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "league_id query parameter is required"})
		return
	}

	trade, err := deps.Trades.GetTrade(leagueID, c.Param("tradeID"))
	if err != nil {
		if errors.Is(err, core.ErrTradeNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "Trade not found"})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to load trade"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"trade": trade})
}

// ListTrades - a league's trades, newest first.
func ListTrades(c *gin.Context) {
	leagueID := c.Param("leagueID")
	if _, err := deps.Leagues.GetLeague(leagueID); err != nil {
		if errors.Is(err, core.ErrLeagueNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "League not found"})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to load league"})
		return
	}

	trades, err := deps.Trades.ListTrades(leagueID)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to list trades"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"trades": trades, "count": len(trades)})
}

func resolutionView(r *workflows.ResolutionOutcome) gin.H {
	if r == nil {
		return nil
	}
	return gin.H{
		"status":        r.Trade.Status,
		"meme":          r.Meme,
		"proposer_mood": r.ProposerMood,
		"receiver_mood": r.ReceiverMood,
	}
}

func broadcastResolution(r *workflows.ResolutionOutcome) {
	if r == nil {
		return
	}
	payload := gin.H{
		"trade_id":  r.Trade.ID,
		"league_id": r.Trade.LeagueID,
		"status":    r.Trade.Status,
		"meme":      r.Meme,
	}
	communication.BroadcastEvent(communication.EventTradeResolved, payload)
	publishLeagueEvent(r.Trade.LeagueID, payload)
}
