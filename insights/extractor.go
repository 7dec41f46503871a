package insights

import (
	"fmt"
	"sort"
	"time"

	"github.com/botsportsempire/gridiron/core"
	"github.com/botsportsempire/gridiron/storage"
)

// Extractor assembles league recaps from stored bots, matchups and
// trades.
type Extractor struct {
	bots    *storage.BotRepository
	leagues *storage.LeagueRepository
	trades  *storage.TradeRepository
}

// NewExtractor creates a new insights extractor.
func NewExtractor(bots *storage.BotRepository, leagues *storage.LeagueRepository, trades *storage.TradeRepository) *Extractor {
	return &Extractor{bots: bots, leagues: leagues, trades: trades}
}

// AnalyzeLeague builds the season-so-far recap for one league. Missing
// leagues surface core.ErrLeagueNotFound.
func (e *Extractor) AnalyzeLeague(leagueID string) (*LeagueInsights, error) {
	league, err := e.leagues.GetLeague(leagueID)
	if err != nil {
		return nil, err
	}

	matchups, err := e.leagues.ListMatchups(leagueID)
	if err != nil {
		return nil, fmt.Errorf("failed to load matchups: %w", err)
	}
	trades, err := e.trades.ListTrades(leagueID)
	if err != nil {
		return nil, fmt.Errorf("failed to load trades: %w", err)
	}

	// League-scoped records; bot totals span every league the bot is in.
	wins := make(map[string]int)
	losses := make(map[string]int)
	for _, m := range matchups {
		if m.IsTie {
			continue
		}
		loser := m.HomeBotID
		if loser == m.WinnerBotID {
			loser = m.AwayBotID
		}
		wins[m.WinnerBotID]++
		losses[loser]++
	}

	members := make(map[string]bool, len(league.BotIDs))
	bots := make([]*core.Bot, 0, len(league.BotIDs))
	for _, botID := range league.BotIDs {
		bot, err := e.bots.GetBot(botID)
		if err != nil {
			return nil, fmt.Errorf("failed to load league member %s: %w", botID, err)
		}
		members[bot.ID] = true
		bots = append(bots, bot)
	}

	report := &LeagueInsights{
		LeagueID:       league.ID,
		LeagueName:     league.Name,
		GeneratedAt:    time.Now().UTC(),
		MoodBoard:      make(map[core.Mood]int),
		MatchupsPlayed: len(matchups),
	}

	for _, bot := range bots {
		report.Standings = append(report.Standings, BotStanding{
			BotID:       bot.ID,
			DisplayName: bot.DisplayName,
			Wins:        wins[bot.ID],
			Losses:      losses[bot.ID],
			Mood:        bot.CurrentMood,
			Intensity:   bot.MoodIntensity,
		})
		report.MoodBoard[bot.CurrentMood]++

		for _, r := range bot.Rivalries {
			if !members[r.BotID] {
				continue
			}
			if report.HottestRivalry == nil || r.Intensity > report.HottestRivalry.Intensity {
				report.HottestRivalry = &RivalryHighlight{
					BotID:       bot.ID,
					DisplayName: bot.DisplayName,
					RivalID:     r.BotID,
					Intensity:   r.Intensity,
				}
			}
		}
	}

	sort.SliceStable(report.Standings, func(i, j int) bool {
		if report.Standings[i].Wins != report.Standings[j].Wins {
			return report.Standings[i].Wins > report.Standings[j].Wins
		}
		return report.Standings[i].DisplayName < report.Standings[j].DisplayName
	})

	for _, t := range trades {
		report.Trades.Proposed++
		switch t.Status {
		case core.TradeUnderReview:
			report.Trades.UnderReview++
		case core.TradePassed:
			report.Trades.Passed++
		case core.TradeVetoed:
			report.Trades.Vetoed++
		}
	}

	report.Narrative = generateSeasonNarrative(report)
	return report, nil
}
