package workflows

import (
	"errors"
	"testing"

	"github.com/botsportsempire/gridiron/core"
)

func TestGradePickSteal(t *testing.T) {
	h := newHarness(t)
	nerd := h.addBot(t, "Spreadsheet Sally", core.PersonalityStatNerd)
	league := h.addLeague(t, "Sunday Circuit", nerd.ID)

	outcome, err := h.drafts.GradePick(league.ID, nerd.ID, "RB Bruiser", 3, 30, 45.0)
	if err != nil {
		t.Fatalf("GradePick: %v", err)
	}

	pick := outcome.Pick
	if pick.Grade != GradeSteal {
		t.Errorf("grade = %s, want %s", pick.Grade, GradeSteal)
	}
	if pick.ValueDelta != 15.0 {
		t.Errorf("value delta = %v, want 15", pick.ValueDelta)
	}

	if outcome.Mood == nil {
		t.Fatal("a steal should move the mood")
	}
	// Stat nerds love an analytical pick: draft_success is +15 for
	// them, and 65 sits in the ANALYTICAL band.
	if outcome.Mood.NewIntensity != 65 {
		t.Errorf("intensity = %d, want 65", outcome.Mood.NewIntensity)
	}
	if outcome.Mood.NewMood != core.MoodAnalytical {
		t.Errorf("mood = %s, want ANALYTICAL", outcome.Mood.NewMood)
	}

	picks, err := h.leagues.ListDraftPicks(league.ID)
	if err != nil {
		t.Fatalf("ListDraftPicks: %v", err)
	}
	if len(picks) != 1 || picks[0].PlayerName != "RB Bruiser" {
		t.Errorf("stored picks = %+v", picks)
	}
}

func TestGradePickReach(t *testing.T) {
	h := newHarness(t)
	bot := h.addBot(t, "Yolo Yolanda", core.PersonalityBalanced)
	league := h.addLeague(t, "Sunday Circuit", bot.ID)

	outcome, err := h.drafts.GradePick(league.ID, bot.ID, "QB Wildcard", 2, 20, 5.0)
	if err != nil {
		t.Fatalf("GradePick: %v", err)
	}

	if outcome.Pick.Grade != GradeReach {
		t.Errorf("grade = %s, want %s", outcome.Pick.Grade, GradeReach)
	}
	if outcome.Pick.ValueDelta != -15.0 {
		t.Errorf("value delta = %v, want -15", outcome.Pick.ValueDelta)
	}
	if outcome.Mood == nil {
		t.Fatal("a reach should move the mood")
	}
	if outcome.Mood.NewIntensity != 40 {
		t.Errorf("intensity = %d, want 40", outcome.Mood.NewIntensity)
	}

	bot = h.mustGetBot(t, bot.ID)
	if got := bot.MoodHistory.Entries[0].EventType; got != core.EventDraftBust {
		t.Errorf("event = %s, want %s", got, core.EventDraftBust)
	}
}

func TestGradePickFairValue(t *testing.T) {
	h := newHarness(t)
	bot := h.addBot(t, "Steady Eddie", core.PersonalityBalanced)
	league := h.addLeague(t, "Sunday Circuit", bot.ID)

	outcome, err := h.drafts.GradePick(league.ID, bot.ID, "TE Reliable", 5, 50, 55.0)
	if err != nil {
		t.Fatalf("GradePick: %v", err)
	}

	if outcome.Pick.Grade != GradeFair {
		t.Errorf("grade = %s, want %s", outcome.Pick.Grade, GradeFair)
	}
	if outcome.Mood != nil {
		t.Error("fair value picks should not move the mood")
	}

	bot = h.mustGetBot(t, bot.ID)
	if bot.MoodIntensity != 50 || len(bot.MoodHistory.Entries) != 0 {
		t.Errorf("bot mood touched: intensity %d, %d history entries",
			bot.MoodIntensity, len(bot.MoodHistory.Entries))
	}
}

func TestGradePickThresholds(t *testing.T) {
	h := newHarness(t)
	bot := h.addBot(t, "Steady Eddie", core.PersonalityBalanced)
	league := h.addLeague(t, "Sunday Circuit", bot.ID)

	// Exactly ten slots of value in either direction is still a
	// clear call.
	steal, err := h.drafts.GradePick(league.ID, bot.ID, "WR Edge Case", 1, 30, 40.0)
	if err != nil {
		t.Fatalf("GradePick: %v", err)
	}
	if steal.Pick.Grade != GradeSteal {
		t.Errorf("delta +10 grade = %s, want %s", steal.Pick.Grade, GradeSteal)
	}

	reach, err := h.drafts.GradePick(league.ID, bot.ID, "WR Other Edge", 2, 40, 30.0)
	if err != nil {
		t.Fatalf("GradePick: %v", err)
	}
	if reach.Pick.Grade != GradeReach {
		t.Errorf("delta -10 grade = %s, want %s", reach.Pick.Grade, GradeReach)
	}
}

func TestGradePickValidation(t *testing.T) {
	h := newHarness(t)
	bot := h.addBot(t, "Steady Eddie", core.PersonalityBalanced)
	outsider := h.addBot(t, "Gridiron Gary", core.PersonalityBalanced)
	league := h.addLeague(t, "Sunday Circuit", bot.ID, "ghost-bot")

	if _, err := h.drafts.GradePick(league.ID, outsider.ID, "RB Bruiser", 1, 5, 10); err == nil {
		t.Error("non-member should be rejected")
	}
	if _, err := h.drafts.GradePick(league.ID, bot.ID, "", 1, 5, 10); err == nil {
		t.Error("empty player name should be rejected")
	}
	if _, err := h.drafts.GradePick(league.ID, bot.ID, "RB Bruiser", 0, 5, 10); err == nil {
		t.Error("round 0 should be rejected")
	}
	if _, err := h.drafts.GradePick(league.ID, bot.ID, "RB Bruiser", 1, 0, 10); err == nil {
		t.Error("pick 0 should be rejected")
	}
	if _, err := h.drafts.GradePick(league.ID, bot.ID, "RB Bruiser", 1, 5, 0.5); err == nil {
		t.Error("adp below 1 should be rejected")
	}
	if _, err := h.drafts.GradePick(league.ID, "ghost-bot", "RB Bruiser", 1, 5, 10); !errors.Is(err, core.ErrBotNotFound) {
		t.Errorf("enrolled but unregistered bot error = %v, want ErrBotNotFound", err)
	}
}
