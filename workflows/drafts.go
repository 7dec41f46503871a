package workflows

import (
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/botsportsempire/gridiron/core"
	"github.com/botsportsempire/gridiron/mood"
	"github.com/botsportsempire/gridiron/storage"
)

// Grade bands: a pick ten slots past its average draft position is a
// steal, ten slots early is a reach. Everything between is fair value
// and moves no mood.
const (
	stealThreshold = 10.0
	reachThreshold = -10.0
)

const (
	GradeSteal = "steal"
	GradeReach = "reach"
	GradeFair  = "fair"
)

// DraftService grades draft picks against average draft position and
// feeds clear steals and busts to the mood engine.
type DraftService struct {
	bots    *storage.BotRepository
	leagues *storage.LeagueRepository
	engine  *mood.Engine
}

func NewDraftService(bots *storage.BotRepository, leagues *storage.LeagueRepository, engine *mood.Engine) *DraftService {
	return &DraftService{bots: bots, leagues: leagues, engine: engine}
}

// DraftOutcome is a graded pick; Mood is nil when the pick was fair
// value.
type DraftOutcome struct {
	Pick *core.DraftPick
	Mood *mood.Result
}

// GradePick stores a pick with its value grade and emits draft_success
// or draft_bust for the clear calls.
func (s *DraftService) GradePick(leagueID, botID, playerName string, round, pickNumber int, adp float64) (*DraftOutcome, error) {
	league, err := s.leagues.GetLeague(leagueID)
	if err != nil {
		return nil, err
	}
	if !league.HasBot(botID) {
		return nil, fmt.Errorf("bot %s is not enrolled in league %s", botID, leagueID)
	}
	if playerName == "" {
		return nil, fmt.Errorf("player name is required")
	}
	if round < 1 || pickNumber < 1 {
		return nil, fmt.Errorf("round and pick number start at 1")
	}
	if adp < 1 {
		return nil, fmt.Errorf("adp starts at 1")
	}
	if _, err := s.bots.GetBot(botID); err != nil {
		return nil, err
	}

	delta := adp - float64(pickNumber)
	grade := GradeFair
	switch {
	case delta >= stealThreshold:
		grade = GradeSteal
	case delta <= reachThreshold:
		grade = GradeReach
	}

	pick := &core.DraftPick{
		ID:         uuid.New().String(),
		LeagueID:   leagueID,
		BotID:      botID,
		PlayerName: playerName,
		Round:      round,
		PickNumber: pickNumber,
		ADP:        adp,
		ValueDelta: delta,
		Grade:      grade,
		PickedAt:   time.Now().UTC(),
	}
	if err := s.leagues.SaveDraftPick(pick); err != nil {
		return nil, err
	}

	outcome := &DraftOutcome{Pick: pick}
	if grade != GradeFair {
		eventType := core.EventDraftSuccess
		if grade == GradeReach {
			eventType = core.EventDraftBust
		}
		res, err := s.engine.ProcessEvent(botID, core.MoodEvent{
			Type: eventType,
			Metadata: map[string]interface{}{
				"league_id":   leagueID,
				"player_name": playerName,
				"pick_number": pickNumber,
				"adp":         adp,
				"value_delta": delta,
			},
		})
		if err != nil {
			return nil, err
		}
		outcome.Mood = res
	}
	return outcome, nil
}
