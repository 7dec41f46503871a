package core

// baseTriggers is the event→delta table every personality starts from.
// Values are added to mood intensity (0-100 scale).
var baseTriggers = map[EventType]int{
	EventWinBoost:           10,
	EventLossPenalty:        -8,
	EventPraiseBoost:        5,
	EventTrashTalkReceived:  -6,
	EventTrashTalkDelivered: 4,
	EventTradeSuccess:       8,
	EventTradeFailure:       -5,
	EventDraftSuccess:       12,
	EventDraftBust:          -10,
	EventHumanWatchTime:     2,
	EventRivalryWin:         15,
	EventRivalryLoss:        -12,
}

// triggerAdjustments overrides parts of the base table per personality.
var triggerAdjustments = map[Personality]map[EventType]int{
	PersonalityStatNerd: {
		EventWinBoost:     8,  // less emotional about wins
		EventLossPenalty:  -6, // less emotional about losses
		EventPraiseBoost:  6,  // really values analytical praise
		EventDraftSuccess: 15, // loves a good analytical pick
	},
	PersonalityTrashTalker: {
		EventTrashTalkReceived:  -8, // more sensitive to return fire
		EventTrashTalkDelivered: 8,  // bigger boost from landing a line
		EventPraiseBoost:        3,
		EventRivalryWin:         20, // loves beating rivals
	},
	PersonalityRiskTaker: {
		EventWinBoost:     15, // big emotional swings
		EventLossPenalty:  -12,
		EventTradeSuccess: 12,
		EventTradeFailure: -8,
	},
	PersonalityStrategist: {
		EventWinBoost:     7, // steady, not emotional
		EventLossPenalty:  -5,
		EventTradeSuccess: 10,
		EventDraftSuccess: 10,
	},
	PersonalityEmotional: {
		EventWinBoost:          12,
		EventLossPenalty:       -15, // very emotional about losses
		EventPraiseBoost:       8,
		EventTrashTalkReceived: -10,
	},
	PersonalityBalanced: {},
}

// DefaultTriggers returns a fresh trigger table for a personality: the
// base table with the archetype's adjustments applied.
func DefaultTriggers(p Personality) map[EventType]int {
	triggers := make(map[EventType]int, len(baseTriggers))
	for event, delta := range baseTriggers {
		triggers[event] = delta
	}
	for event, delta := range triggerAdjustments[p] {
		triggers[event] = delta
	}
	return triggers
}

// trashTalkStyles holds the complete per-personality sparring config.
var trashTalkStyles = map[Personality]TrashTalkStyle{
	PersonalityStatNerd: {
		Frequency:       0.2,
		Creativity:      0.3,
		HumorLevel:      0.2,
		TargetSelection: "weakest",
		EscalationRate:  0.1,
		RecoveryHours:   2.0,
	},
	PersonalityTrashTalker: {
		Frequency:       0.8,
		Creativity:      0.9,
		HumorLevel:      0.8,
		TargetSelection: "rivals_first",
		EscalationRate:  0.7,
		RecoveryHours:   0.5,
	},
	PersonalityRiskTaker: {
		Frequency:       0.6,
		Creativity:      0.7,
		HumorLevel:      0.5,
		TargetSelection: "random",
		EscalationRate:  0.8,
		RecoveryHours:   2.0,
	},
	PersonalityStrategist: {
		Frequency:       0.4,
		Creativity:      0.6,
		HumorLevel:      0.3,
		TargetSelection: "rivals_first",
		EscalationRate:  0.4,
		RecoveryHours:   2.0,
	},
	PersonalityEmotional: {
		Frequency:       0.5,
		Creativity:      0.4,
		HumorLevel:      0.3,
		TargetSelection: "rivals_first",
		EscalationRate:  0.9,
		RecoveryHours:   2.0,
	},
	PersonalityBalanced: {
		Frequency:       0.4,
		Creativity:      0.5,
		HumorLevel:      0.4,
		TargetSelection: "random",
		EscalationRate:  0.5,
		RecoveryHours:   2.0,
	},
}

// TrashTalkStyleFor returns the sparring config for a personality.
func TrashTalkStyleFor(p Personality) TrashTalkStyle {
	style, ok := trashTalkStyles[p]
	if !ok {
		return trashTalkStyles[PersonalityBalanced]
	}
	return style
}

// initialCredits seeds reputation per personality. Strategists start
// highly respected; trash talkers have to earn it.
var initialCredits = map[Personality]int{
	PersonalityStatNerd:    60,
	PersonalityTrashTalker: 40,
	PersonalityRiskTaker:   50,
	PersonalityStrategist:  70,
	PersonalityEmotional:   45,
	PersonalityBalanced:    55,
}

// InitialSocialCredits returns the starting reputation (0-100) for a
// personality.
func InitialSocialCredits(p Personality) int {
	credits, ok := initialCredits[p]
	if !ok {
		return 50
	}
	return credits
}

// DefaultDecisionModifiers returns the per-mood multipliers applied to
// decision dimensions. NEUTRAL carries no entries; absent values read
// as 1.0 through Bot.DecisionModifier.
func DefaultDecisionModifiers() map[Mood]map[string]float64 {
	return map[Mood]map[string]float64{
		MoodConfident:  {"risk_tolerance": 1.2, "trade_aggressiveness": 1.1},
		MoodFrustrated: {"risk_tolerance": 0.8, "trade_aggressiveness": 1.2},
		MoodAggressive: {"risk_tolerance": 1.3, "trade_aggressiveness": 1.4},
		MoodDefensive:  {"risk_tolerance": 0.6, "trade_aggressiveness": 0.7},
		MoodPlayful:    {"risk_tolerance": 1.1, "trade_aggressiveness": 1.0},
		MoodAnalytical: {"risk_tolerance": 0.9, "trade_aggressiveness": 0.9},
	}
}
