package mood

import (
	"fmt"
	"testing"

	"github.com/botsportsempire/gridiron/core"
)

func TestHistoryCapEvictsOldestFirst(t *testing.T) {
	store := newFakeStore(testBot("bot1", core.PersonalityBalanced, core.MoodNeutral, 50))
	engine := NewEngine(store)

	const total = historyCap + 5
	for i := 0; i < total; i++ {
		_, err := engine.ProcessEvent("bot1", core.MoodEvent{
			Type:     "history_probe",
			Impact:   intPtr(0),
			Metadata: map[string]interface{}{"seq": fmt.Sprintf("%d", i)},
		})
		if err != nil {
			t.Fatalf("event %d failed: %v", i, err)
		}
	}

	bot, err := store.GetBot("bot1")
	if err != nil {
		t.Fatalf("GetBot failed: %v", err)
	}

	entries := bot.MoodHistory.Entries
	if len(entries) != historyCap {
		t.Fatalf("history length = %d, want %d", len(entries), historyCap)
	}

	// Oldest surviving entry is event #5; newest is the last sent.
	if got := entries[0].EventMetadata["seq"]; got != "5" {
		t.Errorf("oldest entry seq = %v, want 5", got)
	}
	if got := entries[len(entries)-1].EventMetadata["seq"]; got != fmt.Sprintf("%d", total-1) {
		t.Errorf("newest entry seq = %v, want %d", got, total-1)
	}

	for i := 1; i < len(entries); i++ {
		if entries[i].Timestamp.Before(entries[i-1].Timestamp) {
			t.Fatalf("entries out of chronological order at %d", i)
		}
	}
}

func TestHistoryTrend(t *testing.T) {
	cases := []struct {
		impact int
		want   core.Trend
	}{
		{6, core.TrendImproving},
		{5, core.TrendStable},
		{0, core.TrendStable},
		{-5, core.TrendStable},
		{-6, core.TrendDeclining},
	}

	for _, tc := range cases {
		t.Run(fmt.Sprintf("impact %d", tc.impact), func(t *testing.T) {
			store := newFakeStore(testBot("bot1", core.PersonalityBalanced, core.MoodNeutral, 50))
			res, err := NewEngine(store).ProcessEvent("bot1", core.MoodEvent{
				Type:   "trend_probe",
				Impact: intPtr(tc.impact),
			})
			if err != nil {
				t.Fatalf("ProcessEvent failed: %v", err)
			}
			if res.Bot.MoodHistory.Trend != tc.want {
				t.Errorf("trend after %+d = %s, want %s", tc.impact, res.Bot.MoodHistory.Trend, tc.want)
			}
		})
	}
}

func TestHistoryEntryFields(t *testing.T) {
	store := newFakeStore(testBot("bot1", core.PersonalityTrashTalker, core.MoodNeutral, 50))
	res, err := NewEngine(store).ProcessEvent("bot1", core.MoodEvent{
		Type:        core.EventTrashTalkReceived,
		SourceBotID: "peer9",
		Metadata:    map[string]interface{}{"content": "nice bench, shame about the starters"},
	})
	if err != nil {
		t.Fatalf("ProcessEvent failed: %v", err)
	}

	entry := res.Bot.MoodHistory.Entries[0]
	if entry.EventType != core.EventTrashTalkReceived {
		t.Errorf("EventType = %s", entry.EventType)
	}
	if entry.SourceBotID != "peer9" {
		t.Errorf("SourceBotID = %q, want peer9", entry.SourceBotID)
	}
	if entry.OldIntensity != 50 || entry.NewIntensity != 42 || entry.IntensityChange != -8 {
		t.Errorf("intensity fields = %d/%d/%d, want 50/42/-8",
			entry.OldIntensity, entry.NewIntensity, entry.IntensityChange)
	}
	if entry.OldMood != core.MoodNeutral || entry.NewMood != core.MoodNeutral || entry.MoodChanged {
		t.Errorf("mood fields = %s/%s/%v", entry.OldMood, entry.NewMood, entry.MoodChanged)
	}
	if !entry.TriggerUsed {
		t.Error("TriggerUsed should be true for table-resolved delta")
	}
	if entry.EventMetadata["content"] != "nice bench, shame about the starters" {
		t.Errorf("metadata not stored verbatim: %v", entry.EventMetadata)
	}
	if entry.Timestamp.IsZero() {
		t.Error("timestamp not set")
	}
	if res.Bot.MoodHistory.LastUpdated == nil || !res.Bot.MoodHistory.LastUpdated.Equal(entry.Timestamp) {
		t.Error("LastUpdated should match the entry timestamp")
	}
}
