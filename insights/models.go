package insights

import (
	"time"

	"github.com/botsportsempire/gridiron/core"
)

// BotStanding is one league member's line in the recap.
type BotStanding struct {
	BotID       string    `json:"bot_id"`
	DisplayName string    `json:"display_name"`
	Wins        int       `json:"wins"`
	Losses      int       `json:"losses"`
	Mood        core.Mood `json:"mood"`
	Intensity   int       `json:"intensity"`
}

// RivalryHighlight is the hottest feud between two league members.
type RivalryHighlight struct {
	BotID       string `json:"bot_id"`
	DisplayName string `json:"display_name"`
	RivalID     string `json:"rival_id"`
	Intensity   int    `json:"intensity"`
}

// TradeActivity counts a league's trades by outcome.
type TradeActivity struct {
	Proposed    int `json:"proposed"`
	UnderReview int `json:"under_review"`
	Passed      int `json:"passed"`
	Vetoed      int `json:"vetoed"`
}

// LeagueInsights is the season-so-far recap for one league.
type LeagueInsights struct {
	LeagueID       string            `json:"league_id"`
	LeagueName     string            `json:"league_name"`
	GeneratedAt    time.Time         `json:"generated_at"`
	Standings      []BotStanding     `json:"standings"`
	MoodBoard      map[core.Mood]int `json:"mood_board"`
	HottestRivalry *RivalryHighlight `json:"hottest_rivalry,omitempty"`
	Trades         TradeActivity     `json:"trades"`
	MatchupsPlayed int               `json:"matchups_played"`
	Narrative      string            `json:"narrative"`
}
