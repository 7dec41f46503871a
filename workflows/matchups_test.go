package workflows

import (
	"errors"
	"testing"

	"github.com/botsportsempire/gridiron/core"
)

func TestRecordResultWinLoss(t *testing.T) {
	h := newHarness(t)
	gary := h.addBot(t, "Gridiron Gary", core.PersonalityBalanced)
	sally := h.addBot(t, "Spreadsheet Sally", core.PersonalityBalanced)
	league := h.addLeague(t, "Sunday Circuit", gary.ID, sally.ID)

	outcome, err := h.matchups.RecordResult(league.ID, 1, gary.ID, sally.ID, 120.5, 98.0)
	if err != nil {
		t.Fatalf("RecordResult: %v", err)
	}

	m := outcome.Matchup
	if m.WinnerBotID != gary.ID {
		t.Errorf("winner = %s, want %s", m.WinnerBotID, gary.ID)
	}
	if m.Margin != 22.5 {
		t.Errorf("margin = %v, want 22.5", m.Margin)
	}
	if m.IsTie {
		t.Error("matchup should not be a tie")
	}

	if outcome.HomeMood == nil || outcome.AwayMood == nil {
		t.Fatal("mood results missing for a decided matchup")
	}
	if outcome.HomeMood.NewIntensity != 60 {
		t.Errorf("winner intensity = %d, want 60", outcome.HomeMood.NewIntensity)
	}
	if outcome.AwayMood.NewIntensity != 42 {
		t.Errorf("loser intensity = %d, want 42", outcome.AwayMood.NewIntensity)
	}
	if outcome.HomeMood.NewMood != core.MoodNeutral || outcome.AwayMood.NewMood != core.MoodNeutral {
		t.Errorf("moods = %s/%s, want NEUTRAL/NEUTRAL",
			outcome.HomeMood.NewMood, outcome.AwayMood.NewMood)
	}
	if outcome.Commentary == "" {
		t.Error("commentary should not be empty")
	}

	winner := h.mustGetBot(t, gary.ID)
	loser := h.mustGetBot(t, sally.ID)
	if winner.TotalWins != 1 || winner.TotalLosses != 0 {
		t.Errorf("winner record = %d-%d, want 1-0", winner.TotalWins, winner.TotalLosses)
	}
	if loser.TotalWins != 0 || loser.TotalLosses != 1 {
		t.Errorf("loser record = %d-%d, want 0-1", loser.TotalWins, loser.TotalLosses)
	}

	entries := winner.MoodHistory.Entries
	if len(entries) != 1 {
		t.Fatalf("winner history length = %d, want 1", len(entries))
	}
	if entries[0].EventType != core.EventWinBoost {
		t.Errorf("winner event = %s, want %s", entries[0].EventType, core.EventWinBoost)
	}
	if entries[0].SourceBotID != sally.ID {
		t.Errorf("winner event source = %s, want %s", entries[0].SourceBotID, sally.ID)
	}

	stored, err := h.leagues.ListMatchups(league.ID)
	if err != nil {
		t.Fatalf("ListMatchups: %v", err)
	}
	if len(stored) != 1 || stored[0].ID != m.ID {
		t.Errorf("stored matchups = %d, want the recorded one", len(stored))
	}
}

func TestRecordResultAwayWinner(t *testing.T) {
	h := newHarness(t)
	gary := h.addBot(t, "Gridiron Gary", core.PersonalityBalanced)
	sally := h.addBot(t, "Spreadsheet Sally", core.PersonalityBalanced)
	league := h.addLeague(t, "Sunday Circuit", gary.ID, sally.ID)

	outcome, err := h.matchups.RecordResult(league.ID, 2, gary.ID, sally.ID, 77.0, 104.2)
	if err != nil {
		t.Fatalf("RecordResult: %v", err)
	}

	if outcome.Matchup.WinnerBotID != sally.ID {
		t.Errorf("winner = %s, want %s", outcome.Matchup.WinnerBotID, sally.ID)
	}
	if outcome.AwayMood.NewIntensity != 60 {
		t.Errorf("away (winner) intensity = %d, want 60", outcome.AwayMood.NewIntensity)
	}
	if outcome.HomeMood.NewIntensity != 42 {
		t.Errorf("home (loser) intensity = %d, want 42", outcome.HomeMood.NewIntensity)
	}
}

func TestRecordResultUpgradesToRivalryEvents(t *testing.T) {
	h := newHarness(t)
	gary := h.addBot(t, "Gridiron Gary", core.PersonalityBalanced)
	sally := h.addBot(t, "Spreadsheet Sally", core.PersonalityBalanced)
	league := h.addLeague(t, "Sunday Circuit", gary.ID, sally.ID)
	h.seedRivalry(t, gary.ID, sally.ID, 40)
	h.seedRivalry(t, sally.ID, gary.ID, 40)

	outcome, err := h.matchups.RecordResult(league.ID, 3, gary.ID, sally.ID, 110.0, 90.0)
	if err != nil {
		t.Fatalf("RecordResult: %v", err)
	}

	// rivalry_win +15, rivalry_loss -12 for a balanced archetype
	if outcome.HomeMood.NewIntensity != 65 {
		t.Errorf("winner intensity = %d, want 65", outcome.HomeMood.NewIntensity)
	}
	if outcome.AwayMood.NewIntensity != 38 {
		t.Errorf("loser intensity = %d, want 38", outcome.AwayMood.NewIntensity)
	}
	if outcome.AwayMood.NewMood != core.MoodDefensive {
		t.Errorf("loser mood = %s, want DEFENSIVE", outcome.AwayMood.NewMood)
	}

	winner := h.mustGetBot(t, gary.ID)
	loser := h.mustGetBot(t, sally.ID)
	if winner.MoodHistory.Entries[0].EventType != core.EventRivalryWin {
		t.Errorf("winner event = %s, want %s",
			winner.MoodHistory.Entries[0].EventType, core.EventRivalryWin)
	}
	if loser.MoodHistory.Entries[0].EventType != core.EventRivalryLoss {
		t.Errorf("loser event = %s, want %s",
			loser.MoodHistory.Entries[0].EventType, core.EventRivalryLoss)
	}

	// Losing to a rival deepens the loser's grudge; the winner's side
	// of the ledger doesn't move on a win.
	if r := loser.RivalryWith(gary.ID); r == nil || r.Intensity != 46 {
		t.Errorf("loser rivalry = %+v, want intensity 46", r)
	}
	if r := winner.RivalryWith(sally.ID); r == nil || r.Intensity != 40 {
		t.Errorf("winner rivalry = %+v, want intensity 40 (untouched)", r)
	}
}

func TestRecordResultTie(t *testing.T) {
	h := newHarness(t)
	gary := h.addBot(t, "Gridiron Gary", core.PersonalityBalanced)
	sally := h.addBot(t, "Spreadsheet Sally", core.PersonalityBalanced)
	league := h.addLeague(t, "Sunday Circuit", gary.ID, sally.ID)

	outcome, err := h.matchups.RecordResult(league.ID, 4, gary.ID, sally.ID, 100.0, 100.0)
	if err != nil {
		t.Fatalf("RecordResult: %v", err)
	}

	if !outcome.Matchup.IsTie || outcome.Matchup.WinnerBotID != "" {
		t.Errorf("matchup = %+v, want a tie with no winner", outcome.Matchup)
	}
	if outcome.HomeMood != nil || outcome.AwayMood != nil {
		t.Error("ties should not move moods")
	}
	if outcome.Commentary == "" {
		t.Error("ties still get commentary")
	}

	for _, id := range []string{gary.ID, sally.ID} {
		bot := h.mustGetBot(t, id)
		if bot.TotalWins != 0 || bot.TotalLosses != 0 {
			t.Errorf("%s record = %d-%d, want 0-0", bot.Name, bot.TotalWins, bot.TotalLosses)
		}
		if bot.MoodIntensity != 50 {
			t.Errorf("%s intensity = %d, want untouched 50", bot.Name, bot.MoodIntensity)
		}
		if len(bot.MoodHistory.Entries) != 0 {
			t.Errorf("%s history length = %d, want 0", bot.Name, len(bot.MoodHistory.Entries))
		}
	}
}

func TestRecordResultValidation(t *testing.T) {
	h := newHarness(t)
	gary := h.addBot(t, "Gridiron Gary", core.PersonalityBalanced)
	sally := h.addBot(t, "Spreadsheet Sally", core.PersonalityBalanced)
	outsider := h.addBot(t, "Steady Eddie", core.PersonalityBalanced)
	league := h.addLeague(t, "Sunday Circuit", gary.ID, sally.ID)

	if _, err := h.matchups.RecordResult(league.ID, 1, gary.ID, gary.ID, 100, 90); err == nil {
		t.Error("self-play should be rejected")
	}
	if _, err := h.matchups.RecordResult(league.ID, 1, gary.ID, outsider.ID, 100, 90); err == nil {
		t.Error("non-member should be rejected")
	}
	if _, err := h.matchups.RecordResult(league.ID, 0, gary.ID, sally.ID, 100, 90); err == nil {
		t.Error("week 0 should be rejected")
	}
	if _, err := h.matchups.RecordResult("no-such-league", 1, gary.ID, sally.ID, 100, 90); !errors.Is(err, core.ErrLeagueNotFound) {
		t.Errorf("missing league error = %v, want ErrLeagueNotFound", err)
	}
}
