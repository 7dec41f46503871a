package mood

import (
	"testing"

	"github.com/botsportsempire/gridiron/core"
)

func TestRetained(t *testing.T) {
	cases := []struct {
		name      string
		mood      core.Mood
		intensity int
		want      bool
	}{
		{"confident holds at 70", core.MoodConfident, 70, true},
		{"confident holds exactly at 65", core.MoodConfident, 65, true},
		{"confident releases at 64", core.MoodConfident, 64, false},
		{"frustrated holds at 30", core.MoodFrustrated, 30, true},
		{"frustrated releases at 31", core.MoodFrustrated, 31, false},
		{"aggressive holds at 55", core.MoodAggressive, 55, true},
		{"aggressive releases at 54", core.MoodAggressive, 54, false},
		{"defensive holds at 45", core.MoodDefensive, 45, true},
		{"defensive releases at 46", core.MoodDefensive, 46, false},
		{"neutral never retains", core.MoodNeutral, 50, false},
		{"playful never retains", core.MoodPlayful, 60, false},
		{"analytical never retains", core.MoodAnalytical, 50, false},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			if got := retained(tc.mood, tc.intensity); got != tc.want {
				t.Errorf("retained(%s, %d) = %v, want %v", tc.mood, tc.intensity, got, tc.want)
			}
		})
	}
}

func TestSpecialMood(t *testing.T) {
	cases := []struct {
		name        string
		personality core.Personality
		intensity   int
		event       core.EventType
		want        core.Mood
		wantMatch   bool
	}{
		{"aggressive on trash talk at 60", core.PersonalityBalanced, 60, core.EventTrashTalkReceived, core.MoodAggressive, true},
		{"aggressive on trade failure at 100", core.PersonalityBalanced, 100, core.EventTradeFailure, core.MoodAggressive, true},
		{"no aggressive below band", core.PersonalityBalanced, 59, core.EventTradeFailure, "", false},
		{"defensive on rivalry loss at 40", core.PersonalityBalanced, 40, core.EventRivalryLoss, core.MoodDefensive, true},
		{"defensive at zero", core.PersonalityBalanced, 0, core.EventTrashTalkReceived, core.MoodDefensive, true},
		{"playful needs the right personality", core.PersonalityStatNerd, 60, core.EventPraiseBoost, "", false},
		{"playful for trash talker", core.PersonalityTrashTalker, 60, core.EventTrashTalkDelivered, core.MoodPlayful, true},
		{"playful for emotional on watch time", core.PersonalityEmotional, 45, core.EventHumanWatchTime, core.MoodPlayful, true},
		{"analytical for stat nerd", core.PersonalityStatNerd, 65, core.EventDraftSuccess, core.MoodAnalytical, true},
		{"analytical for strategist on trade", core.PersonalityStrategist, 30, core.EventTradeSuccess, core.MoodAnalytical, true},
		{"no analytical above band", core.PersonalityStatNerd, 71, core.EventDraftSuccess, "", false},
		{"praise at 60 goes playful for emotional, not analytical", core.PersonalityEmotional, 60, core.EventPraiseBoost, core.MoodPlayful, true},
		{"plain win matches nothing", core.PersonalityBalanced, 80, core.EventWinBoost, "", false},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			bot := testBot("b", tc.personality, core.MoodNeutral, tc.intensity)
			got, ok := specialMood(bot, tc.intensity, core.MoodEvent{Type: tc.event})
			if ok != tc.wantMatch {
				t.Fatalf("specialMood match = %v, want %v", ok, tc.wantMatch)
			}
			if ok && got != tc.want {
				t.Errorf("specialMood = %s, want %s", got, tc.want)
			}
		})
	}
}

func TestDefaultMood(t *testing.T) {
	cases := []struct {
		intensity int
		want      core.Mood
	}{
		{0, core.MoodFrustrated},
		{25, core.MoodFrustrated},
		{26, core.MoodNeutral},
		{50, core.MoodNeutral},
		{74, core.MoodNeutral},
		{75, core.MoodConfident},
		{100, core.MoodConfident},
	}

	for _, tc := range cases {
		if got := defaultMood(tc.intensity); got != tc.want {
			t.Errorf("defaultMood(%d) = %s, want %s", tc.intensity, got, tc.want)
		}
	}
}
