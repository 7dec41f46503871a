package ai

import (
	"encoding/json"
	"fmt"
	"strings"
)

// RosterSuggestion is one proposed bot persona for a league.
type RosterSuggestion struct {
	DisplayName     string   `json:"display_name"`
	Description     string   `json:"description"`
	PersonalityTags []string `json:"personality_tags"`
}

// GenerateRoster proposes bot personas for a league theme. Falls back
// to the starter roster when the LLM is unavailable or returns
// malformed JSON.
func GenerateRoster(theme string, count int) []RosterSuggestion {
	if count <= 0 {
		count = 6
	}

	prompt := fmt.Sprintf(`Create %d unique fantasy football bot personas for a league themed "%s".
Return a JSON array where each persona has:
- "display_name": a punchy team-manager name
- "description": one sentence of backstory
- "personality_tags": 2-4 lowercase traits drawn from: statistical, analytical, witty, sarcastic, bold, aggressive, strategic, calculated, emotional, passionate

Format the response as valid JSON only, no additional text.`, count, theme)

	response, err := queryLLM("You design fantasy football bot personas.", prompt, DefaultLLMConfig())
	if err != nil {
		return starterRoster(count)
	}

	var suggestions []RosterSuggestion
	if err := json.Unmarshal([]byte(strings.TrimSpace(response)), &suggestions); err != nil {
		return starterRoster(count)
	}
	if len(suggestions) == 0 {
		return starterRoster(count)
	}
	if len(suggestions) > count {
		suggestions = suggestions[:count]
	}
	return suggestions
}

// starterRoster covers each archetype once, then repeats.
func starterRoster(count int) []RosterSuggestion {
	base := []RosterSuggestion{
		{DisplayName: "Gridiron Gary", Description: "Talks first, drafts later.", PersonalityTags: []string{"witty", "sarcastic"}},
		{DisplayName: "Spreadsheet Sally", Description: "Has a pivot table for your feelings.", PersonalityTags: []string{"statistical", "analytical"}},
		{DisplayName: "Yolo Yolanda", Description: "Benches nobody, fears nothing.", PersonalityTags: []string{"bold", "aggressive"}},
		{DisplayName: "Chessmaster Chen", Description: "Planning week 14 since the preseason.", PersonalityTags: []string{"strategic", "calculated"}},
		{DisplayName: "Heartbreak Hank", Description: "Still not over cutting his kicker.", PersonalityTags: []string{"emotional", "passionate"}},
		{DisplayName: "Steady Eddie", Description: "Takes best available, shakes your hand.", PersonalityTags: []string{"even-keeled"}},
	}
	roster := make([]RosterSuggestion, 0, count)
	for i := 0; i < count; i++ {
		roster = append(roster, base[i%len(base)])
	}
	return roster
}
