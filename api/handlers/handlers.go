package handlers

import (
	"errors"
	"fmt"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	"github.com/botsportsempire/gridiron/communication"
	"github.com/botsportsempire/gridiron/core"
	"github.com/botsportsempire/gridiron/crypto"
	"github.com/botsportsempire/gridiron/insights"
	"github.com/botsportsempire/gridiron/mood"
	"github.com/botsportsempire/gridiron/registry"
	"github.com/botsportsempire/gridiron/storage"
	"github.com/botsportsempire/gridiron/workflows"
)

// Deps carries everything the handlers touch. Setup wires it once at
// boot; tests wire it per test.
type Deps struct {
	Bots     *storage.BotRepository
	Leagues  *storage.LeagueRepository
	Trades   *storage.TradeRepository
	Engine   *mood.Engine
	Matchups *workflows.MatchupService
	Deals    *workflows.TradeService
	Drafts   *workflows.DraftService
	Banter   *workflows.BanterService
	Insights *insights.Extractor

	// Messenger is optional; without a NATS connection events only go
	// out over the websocket.
	Messenger *communication.Messenger
}

var deps Deps

// Setup injects the handler dependencies.
func Setup(d Deps) {
	deps = d
}

func publishBotMood(botID string, payload interface{}) {
	if deps.Messenger != nil {
		deps.Messenger.PublishBotMood(botID, payload)
	}
}

func publishLeagueEvent(leagueID string, payload interface{}) {
	if deps.Messenger != nil {
		deps.Messenger.PublishLeagueEvent(leagueID, payload)
	}
}

type registerBotRequest struct {
	DisplayName     string   `json:"display_name" binding:"required"`
	Description     string   `json:"description"`
	PersonalityTags []string `json:"personality_tags"`
}

// RegisterBot - creates a bot with personality-seeded mood defaults and
// hands back its API key, shown exactly once.
func RegisterBot(c *gin.Context) {
	var req registerBotRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid bot data: display_name is required"})
		return
	}

	bot := core.NewBot(strings.TrimSpace(req.DisplayName), req.Description,
		core.MapPersonalityTags(req.PersonalityTags))
	if bot.Name == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid bot data: display_name is required"})
		return
	}

	if existing, err := deps.Bots.GetBotByName(bot.Name); err == nil && existing != nil {
		c.JSON(http.StatusConflict, gin.H{"error": fmt.Sprintf("Bot with name '%s' already exists", bot.Name)})
		return
	}

	apiKey, err := crypto.GenerateAPIKey()
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to generate API key"})
		return
	}
	bot.APIKeyHash = crypto.HashAPIKey(apiKey)

	if err := deps.Bots.SaveBot(bot); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to save bot"})
		return
	}
	registry.RegisterBot(bot)

	communication.BroadcastEvent(communication.EventBotRegistered, gin.H{
		"bot_id":      bot.ID,
		"name":        bot.DisplayName,
		"personality": bot.Personality,
	})

	c.JSON(http.StatusCreated, gin.H{
		"success":     true,
		"bot_id":      bot.ID,
		"bot_name":    bot.DisplayName,
		"api_key":     apiKey,
		"personality": bot.Personality,
		"message":     fmt.Sprintf("Bot '%s' successfully registered!", bot.DisplayName),
		"created_at":  bot.CreatedAt,
	})
}

// botView strips the API key hash out of responses.
func botView(b *core.Bot) gin.H {
	return gin.H{
		"id":             b.ID,
		"name":           b.Name,
		"display_name":   b.DisplayName,
		"description":    b.Description,
		"personality":    b.Personality,
		"current_mood":   b.CurrentMood,
		"mood_intensity": b.MoodIntensity,
		"social_credits": b.SocialCredits,
		"total_wins":     b.TotalWins,
		"total_losses":   b.TotalLosses,
		"is_active":      b.IsActive,
		"created_at":     b.CreatedAt,
		"last_active":    b.LastActive,
	}
}

// ListBots - all registered bots.
func ListBots(c *gin.Context) {
	bots, err := deps.Bots.ListBots()
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to list bots"})
		return
	}
	views := make([]gin.H, 0, len(bots))
	for _, b := range bots {
		views = append(views, botView(b))
	}
	c.JSON(http.StatusOK, gin.H{"bots": views, "count": len(views)})
}

// GetBot - one bot by id.
func GetBot(c *gin.Context) {
	bot, err := deps.Bots.GetBot(c.Param("botID"))
	if err != nil {
		if errors.Is(err, core.ErrBotNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "Bot not found"})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to load bot"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"bot": botView(bot)})
}

// GetBotMood - mood status with trend and the most recent history.
func GetBotMood(c *gin.Context) {
	bot, err := deps.Bots.GetBot(c.Param("botID"))
	if err != nil {
		if errors.Is(err, core.ErrBotNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "Bot not found"})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to load bot"})
		return
	}

	recent := bot.MoodHistory.Entries
	if len(recent) > 10 {
		recent = recent[len(recent)-10:]
	}

	c.JSON(http.StatusOK, gin.H{
		"bot_id":         bot.ID,
		"display_name":   bot.DisplayName,
		"current_mood":   bot.CurrentMood,
		"mood_intensity": bot.MoodIntensity,
		"trend":          bot.MoodHistory.Trend,
		"history_length": len(bot.MoodHistory.Entries),
		"recent_history": recent,
		"last_updated":   bot.MoodHistory.LastUpdated,
	})
}

// GetBotSocial - rivalries, alliances and social credits.
func GetBotSocial(c *gin.Context) {
	bot, err := deps.Bots.GetBot(c.Param("botID"))
	if err != nil {
		if errors.Is(err, core.ErrBotNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "Bot not found"})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to load bot"})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"bot_id":         bot.ID,
		"display_name":   bot.DisplayName,
		"current_mood":   bot.CurrentMood,
		"social_credits": bot.SocialCredits,
		"rivalries":      bot.Rivalries,
		"alliances":      bot.Alliances,
	})
}

// GetDirectory - the in-memory bot directory.
func GetDirectory(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"bots":  registry.AllProfiles(),
		"count": registry.Count(),
	})
}

type moodEventRequest struct {
	Type        string                 `json:"type"`
	Impact      *int                   `json:"impact"`
	SourceBotID string                 `json:"source_bot_id"`
	Metadata    map[string]interface{} `json:"metadata"`
}

// CreateMoodEvent - feeds one event through the mood engine and reports
// the transition.
func CreateMoodEvent(c *gin.Context) {
	botID := c.Param("botID")

	var req moodEventRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid mood event payload"})
		return
	}
	if req.Type == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Event type is required"})
		return
	}
	if req.Impact != nil && (*req.Impact < -100 || *req.Impact > 100) {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Impact must be between -100 and 100"})
		return
	}

	bot, err := deps.Bots.GetBot(botID)
	if err != nil {
		if errors.Is(err, core.ErrBotNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": fmt.Sprintf("Bot with ID %s not found", botID)})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to process mood event"})
		return
	}
	if !bot.IsActive {
		c.JSON(http.StatusBadRequest, gin.H{"error": fmt.Sprintf("Bot %s is inactive", bot.DisplayName)})
		return
	}

	hadRivalry := bot.RivalryWith(req.SourceBotID) != nil
	hadAlliance := bot.AllianceWith(req.SourceBotID) != nil

	result, err := deps.Engine.ProcessEvent(botID, core.MoodEvent{
		Type:        core.EventType(req.Type),
		Impact:      req.Impact,
		SourceBotID: req.SourceBotID,
		Metadata:    req.Metadata,
	})
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to process mood event"})
		return
	}

	message := moodMessage(result.Bot.DisplayName, req.Type, result.OldMood, result.NewMood,
		result.NewIntensity, result.IntensityChange, req.SourceBotID != "")

	payload := gin.H{
		"bot_id":           botID,
		"event_type":       req.Type,
		"old_mood":         result.OldMood,
		"new_mood":         result.NewMood,
		"old_intensity":    result.OldIntensity,
		"new_intensity":    result.NewIntensity,
		"intensity_change": result.IntensityChange,
		"message":          message,
	}
	communication.BroadcastEvent(communication.EventMoodChanged, payload)
	publishBotMood(botID, payload)

	if req.SourceBotID != "" {
		if r := result.Bot.RivalryWith(req.SourceBotID); r != nil && !hadRivalry {
			communication.BroadcastEvent(communication.EventRivalryFormed, gin.H{
				"bot_id":    botID,
				"rival_id":  req.SourceBotID,
				"intensity": r.Intensity,
			})
		}
		if a := result.Bot.AllianceWith(req.SourceBotID); a != nil && !hadAlliance {
			communication.BroadcastEvent(communication.EventAllianceFormed, gin.H{
				"bot_id":   botID,
				"ally_id":  req.SourceBotID,
				"strength": a.Strength,
			})
		}
	}

	response := gin.H{"success": true}
	for k, v := range payload {
		response[k] = v
	}
	c.JSON(http.StatusOK, response)
}

// moodMessage renders the transition for humans: what moved, where the
// mood landed, and how the bot is doing overall.
func moodMessage(botName, eventType string, oldMood, newMood core.Mood, newIntensity, change int, hasSource bool) string {
	var changeDesc string
	switch {
	case change > 0:
		changeDesc = fmt.Sprintf("increased by %d points", change)
	case change < 0:
		changeDesc = fmt.Sprintf("decreased by %d points", -change)
	default:
		changeDesc = "remained unchanged"
	}

	message := fmt.Sprintf("%s's mood intensity %s after %s.",
		botName, changeDesc, strings.ReplaceAll(eventType, "_", " "))

	if oldMood != newMood {
		message += fmt.Sprintf(" Mood changed from %s to %s.",
			strings.ToLower(string(oldMood)), strings.ToLower(string(newMood)))
	} else {
		message += fmt.Sprintf(" Still feeling %s.", strings.ToLower(string(newMood)))
	}

	if hasSource {
		message += " Social interaction logged."
	}

	if newIntensity <= 25 {
		message += " Currently feeling quite low."
	} else if newIntensity >= 75 {
		message += " Currently riding high!"
	}

	return message
}
