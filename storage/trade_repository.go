package storage

import (
	"encoding/json"
	"fmt"
	"sort"

	"github.com/botsportsempire/gridiron/core"
)

// TradeRepository persists trade proposals and their votes. A trade is
// one JSON value, so votes and status commit together.
type TradeRepository struct {
	db Storage
}

func NewTradeRepository(db Storage) *TradeRepository {
	return &TradeRepository{db: db}
}

func (r *TradeRepository) SaveTrade(t *core.Trade) error {
	key := fmt.Sprintf("trade:%s:%s", t.LeagueID, t.ID)
	if err := r.db.PutObject(key, t); err != nil {
		return fmt.Errorf("failed to save trade %s: %w", t.ID, err)
	}
	return nil
}

// GetTrade loads a trade by league and ID. Missing trades surface
// core.ErrTradeNotFound.
func (r *TradeRepository) GetTrade(leagueID, tradeID string) (*core.Trade, error) {
	data, err := r.db.Get(fmt.Sprintf("trade:%s:%s", leagueID, tradeID))
	if err != nil {
		return nil, fmt.Errorf("failed to load trade %s: %w", tradeID, err)
	}
	if data == nil {
		return nil, fmt.Errorf("trade %s: %w", tradeID, core.ErrTradeNotFound)
	}

	var t core.Trade
	if err := json.Unmarshal(data, &t); err != nil {
		return nil, fmt.Errorf("failed to decode trade %s: %w", tradeID, err)
	}
	return &t, nil
}

// ListTrades returns a league's trades, newest first.
func (r *TradeRepository) ListTrades(leagueID string) ([]*core.Trade, error) {
	data, err := r.db.GetByPrefix(fmt.Sprintf("trade:%s:", leagueID))
	if err != nil {
		return nil, fmt.Errorf("failed to list trades for league %s: %w", leagueID, err)
	}

	trades := make([]*core.Trade, 0, len(data))
	for _, v := range data {
		var t core.Trade
		if err := json.Unmarshal(v, &t); err != nil {
			continue // Skip invalid entries
		}
		trades = append(trades, &t)
	}
	sort.Slice(trades, func(i, j int) bool { return trades[i].CreatedAt.After(trades[j].CreatedAt) })
	return trades, nil
}
