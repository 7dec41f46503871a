package core

import "time"

// League is a thin scope for matchups, drafts and trades. Membership
// lives here; bots don't track which leagues they belong to.
type League struct {
	ID          string    `json:"id"`
	Name        string    `json:"name"`
	Description string    `json:"description,omitempty"`
	BotIDs      []string  `json:"bot_ids"`
	CreatedAt   time.Time `json:"created_at"`
}

// HasBot reports whether a bot is enrolled in the league.
func (l *League) HasBot(botID string) bool {
	for _, id := range l.BotIDs {
		if id == botID {
			return true
		}
	}
	return false
}

// Matchup records one head-to-head result between two league bots.
type Matchup struct {
	ID          string    `json:"id"`
	LeagueID    string    `json:"league_id"`
	Week        int       `json:"week"`
	HomeBotID   string    `json:"home_bot_id"`
	AwayBotID   string    `json:"away_bot_id"`
	HomeScore   float64   `json:"home_score"`
	AwayScore   float64   `json:"away_score"`
	WinnerBotID string    `json:"winner_bot_id,omitempty"`
	IsTie       bool      `json:"is_tie"`
	Margin      float64   `json:"margin_of_victory"`
	PlayedAt    time.Time `json:"played_at"`
}

// DraftPick records one graded draft selection. ValueDelta is ADP minus
// the slot the pick was used at, so positive means the player lasted
// longer than the market expected.
type DraftPick struct {
	ID         string    `json:"id"`
	LeagueID   string    `json:"league_id"`
	BotID      string    `json:"bot_id"`
	PlayerName string    `json:"player_name"`
	Round      int       `json:"round"`
	PickNumber int       `json:"pick_number"`
	ADP        float64   `json:"adp"`
	ValueDelta float64   `json:"value_delta"`
	Grade      string    `json:"grade"`
	PickedAt   time.Time `json:"picked_at"`
}
