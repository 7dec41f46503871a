package workflows

import (
	"errors"
	"testing"

	"github.com/botsportsempire/gridiron/communication"
	"github.com/botsportsempire/gridiron/core"
)

func TestTalkPostsAndSwingsMoods(t *testing.T) {
	communication.ResetThreads()
	t.Cleanup(communication.ResetThreads)

	h := newHarness(t)
	gary := h.addBot(t, "Gridiron Gary", core.PersonalityTrashTalker)
	sally := h.addBot(t, "Spreadsheet Sally", core.PersonalityBalanced)

	outcome, err := h.banter.Talk(gary.ID, sally.ID, "week 5 showdown")
	if err != nil {
		t.Fatalf("Talk: %v", err)
	}

	if outcome.Message.Line == "" {
		t.Error("delivered line should not be empty")
	}
	if outcome.Message.BotID != gary.ID || outcome.Message.TargetID != sally.ID {
		t.Errorf("message attribution = %s -> %s", outcome.Message.BotID, outcome.Message.TargetID)
	}

	// Trash talkers get +8 for landing a line, and 58 with the
	// delivery event puts them in PLAYFUL.
	if outcome.SpeakerMood.NewIntensity != 58 {
		t.Errorf("speaker intensity = %d, want 58", outcome.SpeakerMood.NewIntensity)
	}
	if outcome.SpeakerMood.NewMood != core.MoodPlayful {
		t.Errorf("speaker mood = %s, want PLAYFUL", outcome.SpeakerMood.NewMood)
	}
	if outcome.TargetMood.NewIntensity != 44 {
		t.Errorf("target intensity = %d, want 44", outcome.TargetMood.NewIntensity)
	}
	if outcome.TargetMood.NewMood != core.MoodNeutral {
		t.Errorf("target mood = %s, want NEUTRAL", outcome.TargetMood.NewMood)
	}

	speaker := h.mustGetBot(t, gary.ID)
	target := h.mustGetBot(t, sally.ID)
	if r := target.RivalryWith(gary.ID); r == nil || r.Intensity != 36 {
		t.Errorf("target rivalry = %+v, want intensity 36", r)
	} else if r.Origin != "negative_interaction" {
		t.Errorf("rivalry origin = %s", r.Origin)
	}
	if speaker.RivalryWith(sally.ID) != nil {
		t.Error("delivering a line should not give the speaker a rivalry")
	}

	thread, err := communication.GetThread(outcome.ThreadID)
	if err != nil {
		t.Fatalf("GetThread: %v", err)
	}
	if len(thread.Messages) != 1 {
		t.Fatalf("thread messages = %d, want 1", len(thread.Messages))
	}
	if thread.Messages[0].Line != outcome.Message.Line {
		t.Error("posted line does not match outcome")
	}

	entry := target.MoodHistory.Entries[0]
	if entry.EventType != core.EventTrashTalkReceived || entry.SourceBotID != gary.ID {
		t.Errorf("target history = %s from %s", entry.EventType, entry.SourceBotID)
	}
	if entry.EventMetadata["context"] != "week 5 showdown" {
		t.Errorf("context metadata = %v", entry.EventMetadata["context"])
	}
}

func TestTalkDefaultsContext(t *testing.T) {
	communication.ResetThreads()
	t.Cleanup(communication.ResetThreads)

	h := newHarness(t)
	gary := h.addBot(t, "Gridiron Gary", core.PersonalityBalanced)
	sally := h.addBot(t, "Spreadsheet Sally", core.PersonalityBalanced)

	if _, err := h.banter.Talk(gary.ID, sally.ID, ""); err != nil {
		t.Fatalf("Talk: %v", err)
	}

	target := h.mustGetBot(t, sally.ID)
	entry := target.MoodHistory.Entries[0]
	if entry.EventMetadata["context"] != "the upcoming matchup" {
		t.Errorf("default context = %v", entry.EventMetadata["context"])
	}
}

func TestTalkReusesPairThread(t *testing.T) {
	communication.ResetThreads()
	t.Cleanup(communication.ResetThreads)

	h := newHarness(t)
	gary := h.addBot(t, "Gridiron Gary", core.PersonalityBalanced)
	sally := h.addBot(t, "Spreadsheet Sally", core.PersonalityBalanced)

	first, err := h.banter.Talk(gary.ID, sally.ID, "")
	if err != nil {
		t.Fatalf("first Talk: %v", err)
	}
	// The return line lands in the same thread.
	second, err := h.banter.Talk(sally.ID, gary.ID, "")
	if err != nil {
		t.Fatalf("second Talk: %v", err)
	}

	if first.ThreadID != second.ThreadID {
		t.Errorf("threads = %s / %s, want one per pair", first.ThreadID, second.ThreadID)
	}
	thread, err := communication.GetThread(first.ThreadID)
	if err != nil {
		t.Fatalf("GetThread: %v", err)
	}
	if len(thread.Messages) != 2 {
		t.Errorf("thread messages = %d, want 2", len(thread.Messages))
	}
	if len(communication.GetAllThreads()) != 1 {
		t.Errorf("threads = %d, want 1", len(communication.GetAllThreads()))
	}
}

func TestTalkGuards(t *testing.T) {
	communication.ResetThreads()
	t.Cleanup(communication.ResetThreads)

	h := newHarness(t)
	gary := h.addBot(t, "Gridiron Gary", core.PersonalityBalanced)
	sally := h.addBot(t, "Spreadsheet Sally", core.PersonalityBalanced)

	if _, err := h.banter.Talk(gary.ID, gary.ID, ""); err == nil {
		t.Error("self-talk should be rejected")
	}
	if _, err := h.banter.Talk("no-such-bot", sally.ID, ""); !errors.Is(err, core.ErrBotNotFound) {
		t.Errorf("unknown speaker error = %v, want ErrBotNotFound", err)
	}

	if _, err := h.engine.UpdateBot(sally.ID, func(b *core.Bot) error {
		b.IsActive = false
		return nil
	}); err != nil {
		t.Fatalf("deactivate: %v", err)
	}
	if _, err := h.banter.Talk(gary.ID, sally.ID, ""); err == nil {
		t.Error("inactive target should be rejected")
	}
}
