package storage

import (
	"encoding/json"
	"fmt"
	"sort"

	"github.com/botsportsempire/gridiron/core"
)

// LeagueRepository persists leagues and their league-scoped records:
// matchup results and draft picks.
type LeagueRepository struct {
	db Storage
}

func NewLeagueRepository(db Storage) *LeagueRepository {
	return &LeagueRepository{db: db}
}

func (r *LeagueRepository) SaveLeague(league *core.League) error {
	key := fmt.Sprintf("league:%s", league.ID)
	if err := r.db.PutObject(key, league); err != nil {
		return fmt.Errorf("failed to save league %s: %w", league.ID, err)
	}
	return nil
}

// GetLeague loads a league by ID. Missing leagues surface core.ErrLeagueNotFound.
func (r *LeagueRepository) GetLeague(id string) (*core.League, error) {
	data, err := r.db.Get(fmt.Sprintf("league:%s", id))
	if err != nil {
		return nil, fmt.Errorf("failed to load league %s: %w", id, err)
	}
	if data == nil {
		return nil, fmt.Errorf("league %s: %w", id, core.ErrLeagueNotFound)
	}

	var league core.League
	if err := json.Unmarshal(data, &league); err != nil {
		return nil, fmt.Errorf("failed to decode league %s: %w", id, err)
	}
	return &league, nil
}

func (r *LeagueRepository) ListLeagues() ([]*core.League, error) {
	data, err := r.db.GetByPrefix("league:")
	if err != nil {
		return nil, fmt.Errorf("failed to list leagues: %w", err)
	}

	leagues := make([]*core.League, 0, len(data))
	for _, v := range data {
		var league core.League
		if err := json.Unmarshal(v, &league); err != nil {
			continue // Skip invalid entries
		}
		leagues = append(leagues, &league)
	}
	sort.Slice(leagues, func(i, j int) bool { return leagues[i].Name < leagues[j].Name })
	return leagues, nil
}

func (r *LeagueRepository) SaveMatchup(m *core.Matchup) error {
	key := fmt.Sprintf("matchup:%s:%s", m.LeagueID, m.ID)
	if err := r.db.PutObject(key, m); err != nil {
		return fmt.Errorf("failed to save matchup %s: %w", m.ID, err)
	}
	return nil
}

// ListMatchups returns a league's matchups ordered by week, then by play time.
func (r *LeagueRepository) ListMatchups(leagueID string) ([]*core.Matchup, error) {
	data, err := r.db.GetByPrefix(fmt.Sprintf("matchup:%s:", leagueID))
	if err != nil {
		return nil, fmt.Errorf("failed to list matchups for league %s: %w", leagueID, err)
	}

	matchups := make([]*core.Matchup, 0, len(data))
	for _, v := range data {
		var m core.Matchup
		if err := json.Unmarshal(v, &m); err != nil {
			continue // Skip invalid entries
		}
		matchups = append(matchups, &m)
	}
	sort.Slice(matchups, func(i, j int) bool {
		if matchups[i].Week != matchups[j].Week {
			return matchups[i].Week < matchups[j].Week
		}
		return matchups[i].PlayedAt.Before(matchups[j].PlayedAt)
	})
	return matchups, nil
}

func (r *LeagueRepository) SaveDraftPick(p *core.DraftPick) error {
	key := fmt.Sprintf("draftpick:%s:%s", p.LeagueID, p.ID)
	if err := r.db.PutObject(key, p); err != nil {
		return fmt.Errorf("failed to save draft pick %s: %w", p.ID, err)
	}
	return nil
}

// ListDraftPicks returns a league's draft picks in pick order.
func (r *LeagueRepository) ListDraftPicks(leagueID string) ([]*core.DraftPick, error) {
	data, err := r.db.GetByPrefix(fmt.Sprintf("draftpick:%s:", leagueID))
	if err != nil {
		return nil, fmt.Errorf("failed to list draft picks for league %s: %w", leagueID, err)
	}

	picks := make([]*core.DraftPick, 0, len(data))
	for _, v := range data {
		var p core.DraftPick
		if err := json.Unmarshal(v, &p); err != nil {
			continue // Skip invalid entries
		}
		picks = append(picks, &p)
	}
	sort.Slice(picks, func(i, j int) bool {
		if picks[i].Round != picks[j].Round {
			return picks[i].Round < picks[j].Round
		}
		return picks[i].PickNumber < picks[j].PickNumber
	})
	return picks, nil
}
