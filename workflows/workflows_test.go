package workflows

import (
	"testing"
	"time"

	"github.com/google/uuid"

	"github.com/botsportsempire/gridiron/core"
	"github.com/botsportsempire/gridiron/mood"
	"github.com/botsportsempire/gridiron/storage"
)

type harness struct {
	bots     *storage.BotRepository
	leagues  *storage.LeagueRepository
	trades   *storage.TradeRepository
	engine   *mood.Engine
	matchups *MatchupService
	deals    *TradeService
	drafts   *DraftService
	banter   *BanterService
}

func newHarness(t *testing.T) *harness {
	t.Helper()
	db, err := storage.GetStorageWithConfig(storage.InMemoryConfig())
	if err != nil {
		t.Fatalf("open storage: %v", err)
	}
	t.Cleanup(func() { db.Close() })

	bots := storage.NewBotRepository(db)
	leagues := storage.NewLeagueRepository(db)
	trades := storage.NewTradeRepository(db)
	engine := mood.NewEngine(bots)

	return &harness{
		bots:     bots,
		leagues:  leagues,
		trades:   trades,
		engine:   engine,
		matchups: NewMatchupService(bots, leagues, engine),
		deals:    NewTradeService(bots, leagues, trades, engine),
		drafts:   NewDraftService(bots, leagues, engine),
		banter:   NewBanterService(bots, engine),
	}
}

func (h *harness) addBot(t *testing.T, name string, p core.Personality) *core.Bot {
	t.Helper()
	bot := core.NewBot(name, "", p)
	if err := h.bots.SaveBot(bot); err != nil {
		t.Fatalf("save bot %s: %v", name, err)
	}
	return bot
}

func (h *harness) addLeague(t *testing.T, name string, botIDs ...string) *core.League {
	t.Helper()
	league := &core.League{
		ID:        uuid.New().String(),
		Name:      name,
		BotIDs:    botIDs,
		CreatedAt: time.Now().UTC(),
	}
	if err := h.leagues.SaveLeague(league); err != nil {
		t.Fatalf("save league %s: %v", name, err)
	}
	return league
}

func (h *harness) mustGetBot(t *testing.T, id string) *core.Bot {
	t.Helper()
	bot, err := h.bots.GetBot(id)
	if err != nil {
		t.Fatalf("get bot %s: %v", id, err)
	}
	return bot
}

// seedRivalry plants an existing rivalry from one bot toward another.
func (h *harness) seedRivalry(t *testing.T, botID, rivalID string, intensity int) {
	t.Helper()
	now := time.Now().UTC()
	if _, err := h.engine.UpdateBot(botID, func(b *core.Bot) error {
		b.Rivalries = append(b.Rivalries, core.Rivalry{
			BotID:           rivalID,
			Intensity:       intensity,
			Origin:          "negative_interaction",
			CreatedAt:       now,
			LastInteraction: now,
		})
		return nil
	}); err != nil {
		t.Fatalf("seed rivalry: %v", err)
	}
}
