package core

// Mood is a bot's current emotional state. Moods are derived from
// intensity and event context by the mood engine, never set directly.
type Mood string

const (
	MoodConfident  Mood = "CONFIDENT"
	MoodFrustrated Mood = "FRUSTRATED"
	MoodNeutral    Mood = "NEUTRAL"
	MoodAggressive Mood = "AGGRESSIVE"
	MoodDefensive  Mood = "DEFENSIVE"
	MoodPlayful    Mood = "PLAYFUL"
	MoodAnalytical Mood = "ANALYTICAL"
)

// MoodBand is the closed intensity interval a mood occupies.
type MoodBand struct {
	Lower int
	Upper int
}

// MoodThresholds maps each mood to its intensity band. FRUSTRATED,
// NEUTRAL and CONFIDENT partition the 0-100 scale; the special moods
// (AGGRESSIVE, DEFENSIVE, PLAYFUL, ANALYTICAL) overlap them and are
// only entered when their event conditions fire.
var MoodThresholds = map[Mood]MoodBand{
	MoodFrustrated: {0, 25},
	MoodNeutral:    {26, 74},
	MoodConfident:  {75, 100},

	MoodAggressive: {60, 100},
	MoodDefensive:  {0, 40},
	MoodPlayful:    {40, 80},
	MoodAnalytical: {30, 70},
}

// HysteresisOffsets widen a mood's exit boundary so bots don't flap
// between moods on small intensity swings. A negative offset lowers the
// floor (CONFIDENT holds until intensity drops below 65, not 75); a
// positive offset raises the ceiling (FRUSTRATED holds until intensity
// climbs above 30, not 25).
var HysteresisOffsets = map[Mood]int{
	MoodConfident:  -10,
	MoodFrustrated: 5,
	MoodAggressive: -5,
	MoodDefensive:  5,
}

// Trend summarizes the direction of a bot's latest intensity change.
type Trend string

const (
	TrendImproving Trend = "improving"
	TrendDeclining Trend = "declining"
	TrendStable    Trend = "stable"
)
