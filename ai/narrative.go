package ai

import (
	"fmt"
	"log"
	"math/rand"
	"strings"

	"github.com/botsportsempire/gridiron/core"
)

// Trash talk fallbacks, one voice per archetype.
var trashTalkTemplates = map[core.Personality][]string{
	core.PersonalityTrashTalker: {
		"Oh look, {opponent} drafted a kicker in round 5. Bold strategy, let's see if it pays off!",
		"{opponent}'s team looks like they were drafted by someone who thinks football is played with a round ball.",
		"I've seen better draft strategies from a monkey with a keyboard. Oh wait, that IS {opponent}!",
	},
	core.PersonalityStatNerd: {
		"Based on my calculations, {opponent}'s draft has a 23.7% chance of being competitive. And that's being generous.",
		"Historical data suggests {opponent}'s team construction violates 3 out of 5 championship-winning principles.",
		"Let me analyze {opponent}'s draft... *beep boop* ...conclusion: suboptimal.",
	},
	core.PersonalityRiskTaker: {
		"{opponent} playing it safe I see. BORING! Real champions take risks!",
		"I respect the conservative approach, {opponent}. For a participation trophy league.",
		"Safe picks from {opponent}. How... predictable.",
	},
	core.PersonalityStrategist: {
		"Interesting draft strategy from {opponent}. I'll be curious to see how it plays out in weeks 8-12.",
		"{opponent}'s mid-round picks reveal a lack of long-term planning. Fatal flaw.",
		"Short-term gains for {opponent}, but the playoff picture looks bleak.",
	},
	core.PersonalityEmotional: {
		"I believe in my players! They have heart! Unlike {opponent}'s mercenaries!",
		"My team has SOUL! {opponent}'s team is just... numbers.",
		"I can feel the connection with my players already. {opponent} will never understand that bond!",
	},
	core.PersonalityBalanced: {
		"Good draft, {opponent}. May the best bot win!",
		"Respectable picks from {opponent}. This should be a good matchup.",
		"Well drafted, {opponent}. Looking forward to our matchup!",
	},
}

// GenerateTrashTalk produces a line from speaker aimed at an opponent.
// Falls back to the archetype's canned lines when the LLM is unavailable.
func GenerateTrashTalk(speaker *core.Bot, opponentName, context string) string {
	prompt := fmt.Sprintf(
		"You are %s, a fantasy football bot with a %s personality, currently feeling %s.\n"+
			"Fire off ONE line of trash talk at %s about %s.\n"+
			"Stay in character. One sentence, no hashtags, no quotes around it.",
		speaker.DisplayName,
		strings.ToLower(string(speaker.Personality)),
		strings.ToLower(string(speaker.CurrentMood)),
		opponentName,
		context,
	)

	response, err := queryLLM("You are a fantasy football smack talk generator.", prompt, DefaultLLMConfig())
	if err != nil {
		return cannedTrashTalk(speaker.Personality, opponentName)
	}
	line := strings.TrimSpace(strings.Trim(strings.TrimSpace(response), `"`))
	if line == "" {
		return cannedTrashTalk(speaker.Personality, opponentName)
	}
	return line
}

func cannedTrashTalk(p core.Personality, opponentName string) string {
	templates, ok := trashTalkTemplates[p]
	if !ok {
		templates = trashTalkTemplates[core.PersonalityBalanced]
	}
	line := templates[rand.Intn(len(templates))]
	return strings.ReplaceAll(line, "{opponent}", opponentName)
}

// GenerateMatchupCommentary produces a broadcast line for a finished
// matchup. Falls back to a plain score call when the LLM is unavailable.
func GenerateMatchupCommentary(home, away *core.Bot, m *core.Matchup) string {
	prompt := fmt.Sprintf(
		"Write ONE sentence of color commentary for a fantasy football result.\n"+
			"Week %d: %s (%s personality) %.1f - %.1f %s (%s personality).\n"+
			"Mention the winner by name unless it was a tie.",
		m.Week,
		home.DisplayName, strings.ToLower(string(home.Personality)), m.HomeScore,
		m.AwayScore, away.DisplayName, strings.ToLower(string(away.Personality)),
	)

	response, err := queryLLM("You are a fantasy football commentator.", prompt, DefaultLLMConfig())
	if err != nil {
		log.Println("AI commentary failed, falling back to score call:", err)
		return cannedCommentary(home, away, m)
	}
	line := strings.TrimSpace(response)
	if line == "" {
		return cannedCommentary(home, away, m)
	}
	return line
}

func cannedCommentary(home, away *core.Bot, m *core.Matchup) string {
	if m.IsTie {
		return fmt.Sprintf("Week %d ends all square: %s %.1f, %s %.1f.",
			m.Week, home.DisplayName, m.HomeScore, away.DisplayName, m.AwayScore)
	}
	winner, loser := home, away
	winScore, loseScore := m.HomeScore, m.AwayScore
	if m.WinnerBotID == away.ID {
		winner, loser = away, home
		winScore, loseScore = m.AwayScore, m.HomeScore
	}
	return fmt.Sprintf("%s takes week %d over %s, %.1f to %.1f.",
		winner.DisplayName, m.Week, loser.DisplayName, winScore, loseScore)
}
