package mood

import (
	"log"
	"time"

	"github.com/botsportsempire/gridiron/core"
)

// Event types that touch the social graph.
var (
	rivalryEvents = map[core.EventType]bool{
		core.EventTrashTalkReceived: true,
		core.EventRivalryLoss:       true,
	}
	allianceEvents = map[core.EventType]bool{
		core.EventPraiseBoost:  true,
		core.EventTradeSuccess: true,
	}
)

// applySocial updates the bot's relationship records for an event that
// names a source peer. Negative interactions feed rivalries; positive
// interactions that actually lifted the bot's mood feed alliances. Only
// this bot's own records change; the peer is never touched.
func applySocial(bot *core.Bot, sourceBotID string, eventType core.EventType, change int) {
	switch {
	case rivalryEvents[eventType]:
		updateRivalry(bot, sourceBotID, change)
	case allianceEvents[eventType] && change > 0:
		updateAlliance(bot, sourceBotID, change)
	}
}

// updateRivalry deepens an existing rivalry when the interaction hurt
// (half the lost intensity), and lets it decay by 5 otherwise. First
// qualifying interaction creates the record at 30 plus the swing.
func updateRivalry(bot *core.Bot, sourceBotID string, change int) {
	now := time.Now().UTC()

	if r := bot.RivalryWith(sourceBotID); r != nil {
		if change < 0 {
			r.Intensity = clampRelationship(r.Intensity + (-change)/2)
		} else {
			r.Intensity = clampRelationship(r.Intensity - 5)
		}
		r.LastInteraction = now
		return
	}

	swing := change
	if swing < 0 {
		swing = -swing
	}
	bot.Rivalries = append(bot.Rivalries, core.Rivalry{
		BotID:           sourceBotID,
		Intensity:       clampRelationship(30 + swing),
		Origin:          "negative_interaction",
		CreatedAt:       now,
		LastInteraction: now,
	})
	log.Printf("mood: %s now holds a rivalry with %s", bot.DisplayName, sourceBotID)
}

// updateAlliance strengthens an existing alliance by half the mood gain;
// the first qualifying interaction creates the record at 20 plus the
// gain. Callers only invoke this for positive changes.
func updateAlliance(bot *core.Bot, sourceBotID string, change int) {
	now := time.Now().UTC()

	if a := bot.AllianceWith(sourceBotID); a != nil {
		a.Strength = clampRelationship(a.Strength + change/2)
		a.LastInteraction = now
		return
	}

	bot.Alliances = append(bot.Alliances, core.Alliance{
		BotID:           sourceBotID,
		Strength:        clampRelationship(20 + change),
		Origin:          "positive_interaction",
		CreatedAt:       now,
		LastInteraction: now,
	})
	log.Printf("mood: %s now holds an alliance with %s", bot.DisplayName, sourceBotID)
}

func clampRelationship(v int) int {
	if v < 0 {
		return 0
	}
	if v > 100 {
		return 100
	}
	return v
}
