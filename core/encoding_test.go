package core

import (
	"reflect"
	"testing"
	"time"
)

func TestBotStateRoundTrip(t *testing.T) {
	now := time.Now().UTC()
	bot := NewBot("Round Tripper", "keeps every byte", PersonalityStatNerd)
	bot.CurrentMood = MoodAnalytical
	bot.MoodIntensity = 63
	bot.MoodHistory.Entries = []HistoryEntry{
		{
			Timestamp:       now,
			EventType:       EventDraftSuccess,
			EventMetadata:   map[string]interface{}{"player": "some rookie", "round": "3"},
			OldIntensity:    48,
			NewIntensity:    63,
			IntensityChange: 15,
			OldMood:         MoodNeutral,
			NewMood:         MoodAnalytical,
			MoodChanged:     true,
			TriggerUsed:     true,
		},
	}
	bot.MoodHistory.LastUpdated = &now
	bot.MoodHistory.Trend = TrendImproving
	bot.Rivalries = []Rivalry{
		{BotID: "peer1", Intensity: 44, Origin: "negative_interaction", CreatedAt: now, LastInteraction: now},
		{BotID: "peer2", Intensity: 31, Origin: "negative_interaction", CreatedAt: now, LastInteraction: now},
	}
	bot.Alliances = []Alliance{
		{BotID: "peer3", Strength: 27, Origin: "positive_interaction", CreatedAt: now, LastInteraction: now},
	}

	var out Bot
	if err := DecodeJSON(EncodeJSON(bot), &out); err != nil {
		t.Fatalf("decode failed: %v", err)
	}

	if !reflect.DeepEqual(*bot, out) {
		t.Errorf("round trip altered state:\n in: %+v\nout: %+v", *bot, out)
	}
	if out.Rivalries[0].BotID != "peer1" || out.Rivalries[1].BotID != "peer2" {
		t.Error("rivalry order not preserved")
	}
}
