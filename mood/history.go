package mood

import (
	"time"

	"github.com/botsportsempire/gridiron/core"
)

// historyCap bounds a bot's mood history; older entries evict FIFO.
const historyCap = 100

// trendThreshold is how far intensity must move in one event before the
// trend flag leaves "stable".
const trendThreshold = 5

// appendHistory records the processed event on the bot, refreshes the
// trend flag and truncates to the most recent historyCap entries.
func appendHistory(bot *core.Bot, event core.MoodEvent, oldIntensity, newIntensity int,
	oldMood, newMood core.Mood, change int) {

	now := time.Now().UTC()
	entry := core.HistoryEntry{
		Timestamp:       now,
		EventType:       event.Type,
		EventMetadata:   event.Metadata,
		SourceBotID:     event.SourceBotID,
		OldIntensity:    oldIntensity,
		NewIntensity:    newIntensity,
		IntensityChange: change,
		OldMood:         oldMood,
		NewMood:         newMood,
		MoodChanged:     oldMood != newMood,
		TriggerUsed:     event.Impact == nil,
	}

	bot.MoodHistory.Entries = append(bot.MoodHistory.Entries, entry)
	bot.MoodHistory.LastUpdated = &now

	switch {
	case change > trendThreshold:
		bot.MoodHistory.Trend = core.TrendImproving
	case change < -trendThreshold:
		bot.MoodHistory.Trend = core.TrendDeclining
	default:
		bot.MoodHistory.Trend = core.TrendStable
	}

	if len(bot.MoodHistory.Entries) > historyCap {
		bot.MoodHistory.Entries = bot.MoodHistory.Entries[len(bot.MoodHistory.Entries)-historyCap:]
	}
}
