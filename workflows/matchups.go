package workflows

import (
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/botsportsempire/gridiron/ai"
	"github.com/botsportsempire/gridiron/core"
	"github.com/botsportsempire/gridiron/mood"
	"github.com/botsportsempire/gridiron/storage"
)

// MatchupService records head-to-head results and feeds them to the
// mood engine as win/loss events, upgraded to rivalry events when the
// bots already have bad blood.
type MatchupService struct {
	bots    *storage.BotRepository
	leagues *storage.LeagueRepository
	engine  *mood.Engine
}

func NewMatchupService(bots *storage.BotRepository, leagues *storage.LeagueRepository, engine *mood.Engine) *MatchupService {
	return &MatchupService{bots: bots, leagues: leagues, engine: engine}
}

// MatchupOutcome bundles the stored result with the mood movement it
// caused on both sides. The mood fields are nil for ties.
type MatchupOutcome struct {
	Matchup    *core.Matchup
	HomeMood   *mood.Result
	AwayMood   *mood.Result
	Commentary string
}

// RecordResult stores a finished matchup, bumps win/loss counters and
// emits the mood events. Ties record the result only.
func (s *MatchupService) RecordResult(leagueID string, week int, homeID, awayID string, homeScore, awayScore float64) (*MatchupOutcome, error) {
	league, err := s.leagues.GetLeague(leagueID)
	if err != nil {
		return nil, err
	}
	if homeID == awayID {
		return nil, fmt.Errorf("a bot cannot play itself")
	}
	if !league.HasBot(homeID) || !league.HasBot(awayID) {
		return nil, fmt.Errorf("both bots must be enrolled in league %s", leagueID)
	}
	if week < 1 {
		return nil, fmt.Errorf("week starts at 1")
	}

	home, err := s.bots.GetBot(homeID)
	if err != nil {
		return nil, err
	}
	away, err := s.bots.GetBot(awayID)
	if err != nil {
		return nil, err
	}

	m := &core.Matchup{
		ID:        uuid.New().String(),
		LeagueID:  leagueID,
		Week:      week,
		HomeBotID: homeID,
		AwayBotID: awayID,
		HomeScore: homeScore,
		AwayScore: awayScore,
		PlayedAt:  time.Now().UTC(),
	}
	switch {
	case homeScore > awayScore:
		m.WinnerBotID = homeID
		m.Margin = homeScore - awayScore
	case awayScore > homeScore:
		m.WinnerBotID = awayID
		m.Margin = awayScore - homeScore
	default:
		m.IsTie = true
	}

	if err := s.leagues.SaveMatchup(m); err != nil {
		return nil, err
	}

	outcome := &MatchupOutcome{Matchup: m}

	if !m.IsTie {
		winner, loser := home, away
		if m.WinnerBotID == awayID {
			winner, loser = away, home
		}

		if _, err := s.engine.UpdateBot(winner.ID, func(b *core.Bot) error {
			b.TotalWins++
			b.LastActive = m.PlayedAt
			return nil
		}); err != nil {
			return nil, err
		}
		if _, err := s.engine.UpdateBot(loser.ID, func(b *core.Bot) error {
			b.TotalLosses++
			b.LastActive = m.PlayedAt
			return nil
		}); err != nil {
			return nil, err
		}

		meta := map[string]interface{}{
			"matchup_id": m.ID,
			"league_id":  leagueID,
			"week":       week,
			"margin":     m.Margin,
		}

		// An existing rivalry upgrades the plain win/loss to the
		// sharper rivalry events.
		winEvent := core.MoodEvent{Type: core.EventWinBoost, SourceBotID: loser.ID, Metadata: meta}
		if winner.RivalryWith(loser.ID) != nil {
			winEvent.Type = core.EventRivalryWin
		}
		lossEvent := core.MoodEvent{Type: core.EventLossPenalty, SourceBotID: winner.ID, Metadata: meta}
		if loser.RivalryWith(winner.ID) != nil {
			lossEvent.Type = core.EventRivalryLoss
		}

		winMood, err := s.engine.ProcessEvent(winner.ID, winEvent)
		if err != nil {
			return nil, err
		}
		lossMood, err := s.engine.ProcessEvent(loser.ID, lossEvent)
		if err != nil {
			return nil, err
		}

		if m.WinnerBotID == homeID {
			outcome.HomeMood, outcome.AwayMood = winMood, lossMood
		} else {
			outcome.HomeMood, outcome.AwayMood = lossMood, winMood
		}
	}

	outcome.Commentary = ai.GenerateMatchupCommentary(home, away, m)
	return outcome, nil
}
