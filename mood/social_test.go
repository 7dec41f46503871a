package mood

import (
	"testing"

	"github.com/botsportsempire/gridiron/core"
)

func TestUpdateRivalryLifecycle(t *testing.T) {
	bot := testBot("bot1", core.PersonalityBalanced, core.MoodNeutral, 50)

	// First negative interaction creates the record at 30 + |change|.
	applySocial(bot, "peer1", core.EventTrashTalkReceived, -8)
	r := bot.RivalryWith("peer1")
	if r == nil {
		t.Fatal("expected rivalry after trash talk")
	}
	if r.Intensity != 38 {
		t.Errorf("intensity = %d, want 38", r.Intensity)
	}
	created := r.CreatedAt

	// Repeat hostility deepens it by half the lost intensity.
	applySocial(bot, "peer1", core.EventRivalryLoss, -12)
	if r.Intensity != 44 {
		t.Errorf("intensity after loss = %d, want 44 (38 + 12/2)", r.Intensity)
	}
	if !r.CreatedAt.Equal(created) {
		t.Error("CreatedAt must not change on update")
	}

	// A qualifying event that didn't hurt decays the rivalry slightly.
	applySocial(bot, "peer1", core.EventTrashTalkReceived, 3)
	if r.Intensity != 39 {
		t.Errorf("intensity after decay = %d, want 39", r.Intensity)
	}

	if len(bot.Rivalries) != 1 {
		t.Errorf("rivalry count = %d, want 1", len(bot.Rivalries))
	}
}

func TestUpdateRivalryClampsAtCreation(t *testing.T) {
	bot := testBot("bot1", core.PersonalityBalanced, core.MoodNeutral, 100)

	// A -100 swing would seed 130 without the clamp.
	applySocial(bot, "peer1", core.EventRivalryLoss, -100)
	if r := bot.RivalryWith("peer1"); r == nil || r.Intensity != 100 {
		t.Errorf("rivalry = %+v, want intensity clamped to 100", r)
	}
}

func TestUpdateRivalryDecayFloorsAtZero(t *testing.T) {
	bot := testBot("bot1", core.PersonalityBalanced, core.MoodNeutral, 50)
	bot.Rivalries = append(bot.Rivalries, core.Rivalry{BotID: "peer1", Intensity: 3})

	applySocial(bot, "peer1", core.EventTrashTalkReceived, 1)
	if got := bot.RivalryWith("peer1").Intensity; got != 0 {
		t.Errorf("intensity = %d, want 0", got)
	}
}

func TestUpdateAllianceLifecycle(t *testing.T) {
	bot := testBot("bot1", core.PersonalityBalanced, core.MoodNeutral, 50)

	applySocial(bot, "peer2", core.EventPraiseBoost, 5)
	a := bot.AllianceWith("peer2")
	if a == nil {
		t.Fatal("expected alliance after praise")
	}
	if a.Strength != 25 {
		t.Errorf("strength = %d, want 25 (20 + change)", a.Strength)
	}
	if a.Origin != "positive_interaction" {
		t.Errorf("origin = %q", a.Origin)
	}

	applySocial(bot, "peer2", core.EventTradeSuccess, 8)
	if a.Strength != 29 {
		t.Errorf("strength after trade = %d, want 29 (25 + 8/2)", a.Strength)
	}
}

func TestAllianceRequiresPositiveChange(t *testing.T) {
	bot := testBot("bot1", core.PersonalityBalanced, core.MoodNeutral, 100)

	// trade_success at the ceiling moves nothing: no alliance forms.
	applySocial(bot, "peer2", core.EventTradeSuccess, 0)
	if bot.AllianceWith("peer2") != nil {
		t.Error("alliance must not form on a zero change")
	}

	applySocial(bot, "peer2", core.EventPraiseBoost, -4)
	if bot.AllianceWith("peer2") != nil {
		t.Error("alliance must not form on a negative change")
	}
}

func TestNonSocialEventTypesLeaveGraphAlone(t *testing.T) {
	bot := testBot("bot1", core.PersonalityBalanced, core.MoodNeutral, 50)

	applySocial(bot, "peer1", core.EventWinBoost, 10)
	applySocial(bot, "peer1", core.EventDraftBust, -10)

	if len(bot.Rivalries) != 0 || len(bot.Alliances) != 0 {
		t.Errorf("graph changed: %d rivalries, %d alliances", len(bot.Rivalries), len(bot.Alliances))
	}
}

func TestRivalryAndAllianceCoexist(t *testing.T) {
	bot := testBot("bot1", core.PersonalityBalanced, core.MoodNeutral, 50)

	applySocial(bot, "peer1", core.EventTrashTalkReceived, -6)
	applySocial(bot, "peer1", core.EventTradeSuccess, 8)

	if bot.RivalryWith("peer1") == nil {
		t.Error("rivalry missing")
	}
	if bot.AllianceWith("peer1") == nil {
		t.Error("alliance missing")
	}
}
