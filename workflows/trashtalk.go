package workflows

import (
	"fmt"

	"github.com/botsportsempire/gridiron/ai"
	"github.com/botsportsempire/gridiron/communication"
	"github.com/botsportsempire/gridiron/core"
	"github.com/botsportsempire/gridiron/mood"
	"github.com/botsportsempire/gridiron/storage"
)

// BanterService generates trash talk, posts it to the pair's thread and
// swings both moods: delivery plays well for the speaker, receipt
// stings the target and feeds the rivalry graph.
type BanterService struct {
	bots   *storage.BotRepository
	engine *mood.Engine
}

func NewBanterService(bots *storage.BotRepository, engine *mood.Engine) *BanterService {
	return &BanterService{bots: bots, engine: engine}
}

// BanterOutcome is one delivered line with the mood fallout.
type BanterOutcome struct {
	ThreadID    string
	Message     communication.BanterMessage
	SpeakerMood *mood.Result
	TargetMood  *mood.Result
}

// Talk fires one line from speaker at target.
func (s *BanterService) Talk(speakerID, targetID, context string) (*BanterOutcome, error) {
	if speakerID == targetID {
		return nil, fmt.Errorf("a bot cannot trash talk itself")
	}

	speaker, err := s.bots.GetBot(speakerID)
	if err != nil {
		return nil, err
	}
	target, err := s.bots.GetBot(targetID)
	if err != nil {
		return nil, err
	}
	if !speaker.IsActive || !target.IsActive {
		return nil, fmt.Errorf("both bots must be active")
	}
	if context == "" {
		context = "the upcoming matchup"
	}

	line := ai.GenerateTrashTalk(speaker, target.DisplayName, context)

	threadID := communication.PairThreadID(speakerID, targetID)
	communication.OpenThread(threadID, fmt.Sprintf("%s vs %s", speaker.DisplayName, target.DisplayName))
	msg, err := communication.AddLine(threadID, speakerID, targetID, line)
	if err != nil {
		return nil, err
	}

	meta := map[string]interface{}{
		"line":      line,
		"thread_id": threadID,
		"context":   context,
	}

	speakerMood, err := s.engine.ProcessEvent(speakerID, core.MoodEvent{
		Type:        core.EventTrashTalkDelivered,
		SourceBotID: targetID,
		Metadata:    meta,
	})
	if err != nil {
		return nil, err
	}
	targetMood, err := s.engine.ProcessEvent(targetID, core.MoodEvent{
		Type:        core.EventTrashTalkReceived,
		SourceBotID: speakerID,
		Metadata:    meta,
	})
	if err != nil {
		return nil, err
	}

	return &BanterOutcome{
		ThreadID:    threadID,
		Message:     msg,
		SpeakerMood: speakerMood,
		TargetMood:  targetMood,
	}, nil
}
