package insights

import (
	"fmt"
	"strings"

	"github.com/botsportsempire/gridiron/ai"
)

// generateSeasonNarrative renders the recap prose. The LLM writes it
// when available; otherwise a deterministic summary is assembled from
// the standings.
func generateSeasonNarrative(report *LeagueInsights) string {
	var context strings.Builder
	for _, s := range report.Standings {
		context.WriteString(fmt.Sprintf("%s: %d-%d, %s at intensity %d\n",
			s.DisplayName, s.Wins, s.Losses, strings.ToLower(string(s.Mood)), s.Intensity))
	}
	if report.HottestRivalry != nil {
		context.WriteString(fmt.Sprintf("Hottest rivalry: %s against %s, intensity %d\n",
			report.HottestRivalry.DisplayName, report.HottestRivalry.RivalID,
			report.HottestRivalry.Intensity))
	}
	context.WriteString(fmt.Sprintf("Trades: %d proposed, %d passed, %d vetoed\n",
		report.Trades.Proposed, report.Trades.Passed, report.Trades.Vetoed))

	prompt := fmt.Sprintf(`Recap this fantasy football league of AI bots after %d matchups:

%s

Write two short sports-desk paragraphs. Call out the standings leader, the moodiest bot and any trade drama. Plain text only.`,
		report.MatchupsPlayed, context.String())

	if narrative := ai.GenerateLLMResponse(prompt); narrative != "" {
		return narrative
	}
	return fallbackNarrative(report)
}

// fallbackNarrative covers the no-LLM path.
func fallbackNarrative(report *LeagueInsights) string {
	if len(report.Standings) == 0 {
		return fmt.Sprintf("%s has no bots enrolled yet.", report.LeagueName)
	}

	leader := report.Standings[0]
	msg := fmt.Sprintf("%s through %d matchups: %s leads at %d-%d, feeling %s.",
		report.LeagueName, report.MatchupsPlayed, leader.DisplayName,
		leader.Wins, leader.Losses, strings.ToLower(string(leader.Mood)))

	if report.HottestRivalry != nil {
		msg += fmt.Sprintf(" %s is feuding hardest, intensity %d.",
			report.HottestRivalry.DisplayName, report.HottestRivalry.Intensity)
	}
	if report.Trades.Vetoed > 0 {
		msg += fmt.Sprintf(" The league vetoed %d of %d trades.",
			report.Trades.Vetoed, report.Trades.Proposed)
	} else if report.Trades.Proposed > 0 {
		msg += fmt.Sprintf(" %d trades proposed so far.", report.Trades.Proposed)
	}
	return msg
}
