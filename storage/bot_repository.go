package storage

import (
	"encoding/json"
	"fmt"
	"sort"

	"github.com/botsportsempire/gridiron/core"
)

// BotRepository persists bot records. Each bot is one JSON value, so
// mood, history and the social graph commit together on every save.
type BotRepository struct {
	db Storage
}

func NewBotRepository(db Storage) *BotRepository {
	return &BotRepository{db: db}
}

// SaveBot writes the full bot record and its name index entry.
func (r *BotRepository) SaveBot(bot *core.Bot) error {
	key := fmt.Sprintf("bot:%s", bot.ID)
	if err := r.db.PutObject(key, bot); err != nil {
		return fmt.Errorf("failed to save bot %s: %w", bot.ID, err)
	}
	nameKey := fmt.Sprintf("botname:%s", bot.Name)
	if err := r.db.Put(nameKey, []byte(bot.ID)); err != nil {
		return fmt.Errorf("failed to index bot name %s: %w", bot.Name, err)
	}
	return nil
}

// GetBot loads a bot by ID. Missing bots surface core.ErrBotNotFound.
func (r *BotRepository) GetBot(id string) (*core.Bot, error) {
	data, err := r.db.Get(fmt.Sprintf("bot:%s", id))
	if err != nil {
		return nil, fmt.Errorf("failed to load bot %s: %w", id, err)
	}
	if data == nil {
		return nil, fmt.Errorf("bot %s: %w", id, core.ErrBotNotFound)
	}

	var bot core.Bot
	if err := json.Unmarshal(data, &bot); err != nil {
		return nil, fmt.Errorf("failed to decode bot %s: %w", id, err)
	}
	return &bot, nil
}

// GetBotByName resolves the name index and loads the bot.
func (r *BotRepository) GetBotByName(name string) (*core.Bot, error) {
	id, err := r.db.Get(fmt.Sprintf("botname:%s", name))
	if err != nil {
		return nil, fmt.Errorf("failed to resolve bot name %s: %w", name, err)
	}
	if id == nil {
		return nil, fmt.Errorf("bot named %s: %w", name, core.ErrBotNotFound)
	}
	return r.GetBot(string(id))
}

// ListBots returns all registered bots sorted by name.
func (r *BotRepository) ListBots() ([]*core.Bot, error) {
	data, err := r.db.GetByPrefix("bot:")
	if err != nil {
		return nil, fmt.Errorf("failed to list bots: %w", err)
	}

	bots := make([]*core.Bot, 0, len(data))
	for _, v := range data {
		var bot core.Bot
		if err := json.Unmarshal(v, &bot); err != nil {
			continue // Skip invalid entries
		}
		bots = append(bots, &bot)
	}
	sort.Slice(bots, func(i, j int) bool { return bots[i].Name < bots[j].Name })
	return bots, nil
}
