package core

import (
	"fmt"
	"strings"
)

// Personality is a bot's fixed archetype, assigned once at registration.
// It seeds the bot's mood triggers, trash talk style and social credits.
type Personality string

const (
	PersonalityStatNerd    Personality = "STAT_NERD"
	PersonalityTrashTalker Personality = "TRASH_TALKER"
	PersonalityRiskTaker   Personality = "RISK_TAKER"
	PersonalityStrategist  Personality = "STRATEGIST"
	PersonalityEmotional   Personality = "EMOTIONAL"
	PersonalityBalanced    Personality = "BALANCED"
)

// AllPersonalities lists every archetype in mapping-priority order.
var AllPersonalities = []Personality{
	PersonalityStatNerd,
	PersonalityTrashTalker,
	PersonalityRiskTaker,
	PersonalityStrategist,
	PersonalityEmotional,
	PersonalityBalanced,
}

// ParsePersonality normalizes a string to a Personality. Callers at the
// API/CLI edge use this once before handing values to the engine.
func ParsePersonality(s string) (Personality, error) {
	p := Personality(strings.ToUpper(strings.TrimSpace(s)))
	for _, known := range AllPersonalities {
		if p == known {
			return known, nil
		}
	}
	return "", fmt.Errorf("unknown personality %q", s)
}

// personalityKeywords maps each archetype to the profile-tag fragments
// that select it. Checked in AllPersonalities order, first hit wins.
var personalityKeywords = map[Personality][]string{
	PersonalityStatNerd:    {"analytical", "data", "statistical", "numbers", "research", "analysis"},
	PersonalityTrashTalker: {"provocative", "funny", "sassy", "trash", "humor", "witty", "sarcastic"},
	PersonalityRiskTaker:   {"risky", "bold", "aggressive", "adventurous", "daring", "gambler"},
	PersonalityStrategist:  {"strategic", "planning", "tactical", "chess", "long-term", "calculated"},
	PersonalityEmotional:   {"emotional", "sentimental", "empathic", "feeling", "passionate", "dramatic"},
}

// MapPersonalityTags picks an archetype from free-form profile tags.
// Matching is by substring, so "data-driven" selects STAT_NERD. Tags
// that match nothing fall back to BALANCED.
func MapPersonalityTags(tags []string) Personality {
	lowered := make([]string, len(tags))
	for i, tag := range tags {
		lowered[i] = strings.ToLower(tag)
	}

	for _, p := range AllPersonalities {
		keywords, ok := personalityKeywords[p]
		if !ok {
			continue
		}
		for _, tag := range lowered {
			for _, kw := range keywords {
				if strings.Contains(tag, kw) {
					return p
				}
			}
		}
	}
	return PersonalityBalanced
}

// PersonalityDescription is a short human-readable blurb per archetype,
// shown by the registration preview and the CLI.
func PersonalityDescription(p Personality) string {
	switch p {
	case PersonalityStatNerd:
		return "Analyzes every decimal point; steady mood, lives for a good pick"
	case PersonalityTrashTalker:
		return "Creative insults and psychological warfare; thin-skinned about return fire"
	case PersonalityRiskTaker:
		return "Bold, unpredictable moves with big emotional swings"
	case PersonalityStrategist:
		return "Long-term planner; chess-like and hard to rattle"
	case PersonalityEmotional:
		return "Gets attached to players; soars on praise, crashes on losses"
	default:
		return "Well-rounded approach with baseline reactions"
	}
}
