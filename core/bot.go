package core

import (
	"strings"
	"time"

	"github.com/google/uuid"
)

// HistoryEntry records one processed mood event. TriggerUsed is true
// when the delta came from the bot's trigger table rather than a direct
// impact override.
type HistoryEntry struct {
	Timestamp       time.Time              `json:"timestamp"`
	EventType       EventType              `json:"event_type"`
	EventMetadata   map[string]interface{} `json:"event_metadata,omitempty"`
	SourceBotID     string                 `json:"source_bot_id,omitempty"`
	OldIntensity    int                    `json:"old_intensity"`
	NewIntensity    int                    `json:"new_intensity"`
	IntensityChange int                    `json:"intensity_change"`
	OldMood         Mood                   `json:"old_mood"`
	NewMood         Mood                   `json:"new_mood"`
	MoodChanged     bool                   `json:"mood_changed"`
	TriggerUsed     bool                   `json:"trigger_used"`
}

// MoodHistory is a bot's rolling event log, oldest first, capped by the
// engine at the 100 most recent entries.
type MoodHistory struct {
	Entries     []HistoryEntry `json:"entries"`
	LastUpdated *time.Time     `json:"last_updated"`
	Trend       Trend          `json:"trend"`
}

// Rivalry is a bot's unilateral record of bad blood with a peer.
// Intensity stays within [0,100].
type Rivalry struct {
	BotID           string    `json:"bot_id"`
	Intensity       int       `json:"intensity"`
	Origin          string    `json:"origin"`
	CreatedAt       time.Time `json:"created_at"`
	LastInteraction time.Time `json:"last_interaction"`
}

// Alliance is a bot's unilateral record of goodwill toward a peer.
// Strength stays within [0,100]. A peer can appear in both a bot's
// rivalries and alliances; the two collections are independent.
type Alliance struct {
	BotID           string    `json:"bot_id"`
	Strength        int       `json:"strength"`
	Origin          string    `json:"origin"`
	CreatedAt       time.Time `json:"created_at"`
	LastInteraction time.Time `json:"last_interaction"`
}

// TrashTalkStyle tunes how a bot engages in verbal sparring. Rates are
// 0-1 scales; RecoveryHours is the cooldown before re-engaging the same
// target.
type TrashTalkStyle struct {
	Frequency       float64 `json:"frequency"`
	Creativity      float64 `json:"creativity"`
	HumorLevel      float64 `json:"humor_level"`
	TargetSelection string  `json:"target_selection"`
	EscalationRate  float64 `json:"escalation_rate"`
	RecoveryHours   float64 `json:"recovery_hours"`
}

// Bot is a registered agent with its full mood state. Mood fields are
// mutated only by the mood engine; social credits are mutated by
// collaborator workflows (trade voting).
type Bot struct {
	ID          string `json:"id"`
	Name        string `json:"name"`
	DisplayName string `json:"display_name"`
	Description string `json:"description,omitempty"`

	Personality   Personality `json:"personality"`
	CurrentMood   Mood        `json:"current_mood"`
	MoodIntensity int         `json:"mood_intensity"`
	MoodHistory   MoodHistory `json:"mood_history"`

	MoodTriggers      map[EventType]int             `json:"mood_triggers"`
	DecisionModifiers map[Mood]map[string]float64   `json:"mood_decision_modifiers,omitempty"`

	Rivalries     []Rivalry      `json:"rivalries"`
	Alliances     []Alliance     `json:"alliances"`
	SocialCredits int            `json:"social_credits"`
	TrashTalk     TrashTalkStyle `json:"trash_talk_style"`

	TotalWins   int `json:"total_wins"`
	TotalLosses int `json:"total_losses"`

	APIKeyHash string    `json:"api_key_hash,omitempty"`
	IsActive   bool      `json:"is_active"`
	CreatedAt  time.Time `json:"created_at"`
	LastActive time.Time `json:"last_active"`
}

// NewBot builds a bot with personality-seeded defaults: NEUTRAL mood at
// intensity 50, an empty history, and the archetype's trigger table,
// trash talk style, decision modifiers and starting social credits.
func NewBot(displayName, description string, personality Personality) *Bot {
	now := time.Now().UTC()
	return &Bot{
		ID:          uuid.New().String(),
		Name:        strings.ToLower(strings.ReplaceAll(strings.TrimSpace(displayName), " ", "_")),
		DisplayName: displayName,
		Description: description,

		Personality:   personality,
		CurrentMood:   MoodNeutral,
		MoodIntensity: 50,
		MoodHistory: MoodHistory{
			Entries: []HistoryEntry{},
			Trend:   TrendStable,
		},

		MoodTriggers:      DefaultTriggers(personality),
		DecisionModifiers: DefaultDecisionModifiers(),

		Rivalries:     []Rivalry{},
		Alliances:     []Alliance{},
		SocialCredits: InitialSocialCredits(personality),
		TrashTalk:     TrashTalkStyleFor(personality),

		IsActive:   true,
		CreatedAt:  now,
		LastActive: now,
	}
}

// TriggerValue returns the bot's intensity delta for an event type, or
// zero when the type has no entry.
func (b *Bot) TriggerValue(t EventType) int {
	if b.MoodTriggers == nil {
		return 0
	}
	return b.MoodTriggers[t]
}

// DecisionModifier returns the multiplier the bot's current mood applies
// to a decision dimension (e.g. "risk_tolerance"). Missing entries mean
// no effect (1.0).
func (b *Bot) DecisionModifier(decision string) float64 {
	mods, ok := b.DecisionModifiers[b.CurrentMood]
	if !ok {
		return 1.0
	}
	m, ok := mods[decision]
	if !ok {
		return 1.0
	}
	return m
}

// RivalryWith returns the bot's rivalry entry for a peer, or nil.
func (b *Bot) RivalryWith(botID string) *Rivalry {
	for i := range b.Rivalries {
		if b.Rivalries[i].BotID == botID {
			return &b.Rivalries[i]
		}
	}
	return nil
}

// AllianceWith returns the bot's alliance entry for a peer, or nil.
func (b *Bot) AllianceWith(botID string) *Alliance {
	for i := range b.Alliances {
		if b.Alliances[i].BotID == botID {
			return &b.Alliances[i]
		}
	}
	return nil
}

// RivalIDs lists the peer ids the bot holds rivalries with.
func (b *Bot) RivalIDs() []string {
	ids := make([]string, 0, len(b.Rivalries))
	for _, r := range b.Rivalries {
		ids = append(ids, r.BotID)
	}
	return ids
}
