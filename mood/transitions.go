package mood

import "github.com/botsportsempire/gridiron/core"

// specialRule gates one of the context-dependent moods: the intensity
// must sit inside the band, the event type must qualify, and, where set,
// the bot's personality must be listed.
type specialRule struct {
	mood          core.Mood
	band          core.MoodBand
	events        map[core.EventType]bool
	personalities map[core.Personality]bool
}

// specialRules in priority order; the first matching rule wins. With
// the default bands and event sets no two rules can match the same
// event, but the order is still binding if the tables ever drift.
var specialRules = []specialRule{
	{
		mood: core.MoodAggressive,
		band: core.MoodThresholds[core.MoodAggressive],
		events: map[core.EventType]bool{
			core.EventTrashTalkReceived: true,
			core.EventRivalryLoss:       true,
			core.EventTradeFailure:      true,
		},
	},
	{
		mood: core.MoodDefensive,
		band: core.MoodThresholds[core.MoodDefensive],
		events: map[core.EventType]bool{
			core.EventTrashTalkReceived: true,
			core.EventRivalryLoss:       true,
		},
	},
	{
		mood: core.MoodPlayful,
		band: core.MoodThresholds[core.MoodPlayful],
		events: map[core.EventType]bool{
			core.EventTrashTalkDelivered: true,
			core.EventPraiseBoost:        true,
			core.EventHumanWatchTime:     true,
		},
		personalities: map[core.Personality]bool{
			core.PersonalityTrashTalker: true,
			core.PersonalityEmotional:   true,
		},
	},
	{
		mood: core.MoodAnalytical,
		band: core.MoodThresholds[core.MoodAnalytical],
		events: map[core.EventType]bool{
			core.EventDraftSuccess: true,
			core.EventTradeSuccess: true,
			core.EventPraiseBoost:  true,
		},
		personalities: map[core.Personality]bool{
			core.PersonalityStatNerd:   true,
			core.PersonalityStrategist: true,
		},
	},
}

// nextMood decides the mood label for a bot at the given intensity,
// in precedence order: hysteresis retention of the current mood, then
// the special rules, then the default bands.
func nextMood(bot *core.Bot, intensity int, event core.MoodEvent) core.Mood {
	if retained(bot.CurrentMood, intensity) {
		return bot.CurrentMood
	}

	if special, ok := specialMood(bot, intensity, event); ok {
		return special
	}

	return defaultMood(intensity)
}

// retained reports whether the current mood holds under hysteresis: the
// band's exit boundary shifts by the mood's offset, so small swings near
// a threshold don't flip the label. A negative offset moves the floor
// down; a positive one moves the ceiling up.
func retained(current core.Mood, intensity int) bool {
	offset, ok := core.HysteresisOffsets[current]
	if !ok {
		return false
	}

	band := core.MoodThresholds[current]
	if offset < 0 {
		return intensity >= band.Lower+offset
	}
	return intensity <= band.Upper+offset
}

func specialMood(bot *core.Bot, intensity int, event core.MoodEvent) (core.Mood, bool) {
	for _, rule := range specialRules {
		if intensity < rule.band.Lower || intensity > rule.band.Upper {
			continue
		}
		if !rule.events[event.Type] {
			continue
		}
		if rule.personalities != nil && !rule.personalities[bot.Personality] {
			continue
		}
		return rule.mood, true
	}
	return "", false
}

// defaultMood bands the 0-100 scale into the three baseline moods.
func defaultMood(intensity int) core.Mood {
	switch {
	case intensity <= 25:
		return core.MoodFrustrated
	case intensity >= 75:
		return core.MoodConfident
	default:
		return core.MoodNeutral
	}
}
