package mood

import (
	"fmt"
	"log"
	"sync"

	"github.com/botsportsempire/gridiron/core"
)

// BotStore loads and saves bot records for the engine. GetBot reports a
// missing bot with an error wrapping core.ErrBotNotFound.
type BotStore interface {
	GetBot(id string) (*core.Bot, error)
	SaveBot(bot *core.Bot) error
}

// Result summarizes one processed event for the caller, enough to
// render a transition message without re-reading the bot. The Bot
// pointer is for in-process callers and stays off the wire.
type Result struct {
	Bot             *core.Bot `json:"-"`
	OldMood         core.Mood `json:"old_mood"`
	NewMood         core.Mood `json:"new_mood"`
	OldIntensity    int       `json:"old_intensity"`
	NewIntensity    int       `json:"new_intensity"`
	IntensityChange int       `json:"intensity_change"`
	MoodChanged     bool      `json:"mood_changed"`
	HistoryLength   int       `json:"history_length"`
}

// Engine applies mood events to bots: delta resolution, intensity
// clamping, mood transition with hysteresis, history logging and social
// (rivalry/alliance) updates. All state lives in the stored bot record;
// the engine itself only holds per-bot locks.
type Engine struct {
	store BotStore

	mu    sync.Mutex
	locks map[string]*sync.Mutex
}

func NewEngine(store BotStore) *Engine {
	return &Engine{
		store: store,
		locks: make(map[string]*sync.Mutex),
	}
}

// botLock returns the mutex serializing events for one bot.
func (e *Engine) botLock(botID string) *sync.Mutex {
	e.mu.Lock()
	defer e.mu.Unlock()

	l, ok := e.locks[botID]
	if !ok {
		l = &sync.Mutex{}
		e.locks[botID] = l
	}
	return l
}

// ProcessEvent applies one event to one bot and persists the outcome.
// Concurrent calls for the same bot are serialized; calls for different
// bots proceed independently. The computed state is committed in a
// single save, so a persistence failure leaves the stored bot untouched.
func (e *Engine) ProcessEvent(botID string, event core.MoodEvent) (*Result, error) {
	lock := e.botLock(botID)
	lock.Lock()
	defer lock.Unlock()

	bot, err := e.store.GetBot(botID)
	if err != nil {
		return nil, err
	}

	var delta int
	if event.Impact != nil {
		delta = *event.Impact
	} else {
		delta = bot.TriggerValue(event.Type)
		if !core.IsKnownEventType(event.Type) {
			log.Printf("mood: bot %s received unknown event type %q, treating as zero delta", botID, event.Type)
		}
	}

	oldIntensity := bot.MoodIntensity
	newIntensity := clampIntensity(oldIntensity + delta)
	change := newIntensity - oldIntensity

	oldMood := bot.CurrentMood
	newMood := nextMood(bot, newIntensity, event)
	moodChanged := oldMood != newMood

	appendHistory(bot, event, oldIntensity, newIntensity, oldMood, newMood, change)

	if event.SourceBotID != "" {
		applySocial(bot, event.SourceBotID, event.Type, change)
	}

	bot.MoodIntensity = newIntensity
	bot.CurrentMood = newMood

	if err := e.store.SaveBot(bot); err != nil {
		return nil, fmt.Errorf("saving bot %s after %s event: %w", botID, event.Type, err)
	}

	if moodChanged {
		log.Printf("mood: %s went from %s to %s (intensity %d -> %d, %s)",
			bot.DisplayName, oldMood, newMood, oldIntensity, newIntensity, event.Type)
	}

	return &Result{
		Bot:             bot,
		OldMood:         oldMood,
		NewMood:         newMood,
		OldIntensity:    oldIntensity,
		NewIntensity:    newIntensity,
		IntensityChange: change,
		MoodChanged:     moodChanged,
		HistoryLength:   len(bot.MoodHistory.Entries),
	}, nil
}

// UpdateBot runs a read-modify-write on a bot under the same per-bot
// lock ProcessEvent uses. Collaborator workflows use it for non-mood
// mutations (win counters, social credits) so they can't race a
// concurrent event.
func (e *Engine) UpdateBot(botID string, fn func(*core.Bot) error) (*core.Bot, error) {
	lock := e.botLock(botID)
	lock.Lock()
	defer lock.Unlock()

	bot, err := e.store.GetBot(botID)
	if err != nil {
		return nil, err
	}
	if err := fn(bot); err != nil {
		return nil, err
	}
	if err := e.store.SaveBot(bot); err != nil {
		return nil, fmt.Errorf("saving bot %s after update: %w", botID, err)
	}
	return bot, nil
}

func clampIntensity(v int) int {
	if v < 0 {
		return 0
	}
	if v > 100 {
		return 100
	}
	return v
}
