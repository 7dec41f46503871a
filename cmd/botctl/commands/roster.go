package commands

import (
	"fmt"
	"strings"

	"github.com/botsportsempire/gridiron/ai"
	"github.com/botsportsempire/gridiron/core"
	"github.com/spf13/cobra"
)

var (
	rosterTheme string
	rosterCount int
)

// RosterCmd represents the roster command
var RosterCmd = &cobra.Command{
	Use:   "roster",
	Short: "Work with bot personas",
	Long:  `Generate bot personas and inspect the personality archetypes.`,
}

// rosterSuggestCmd represents the roster suggest command
var rosterSuggestCmd = &cobra.Command{
	Use:   "suggest",
	Short: "Suggest bot personas for a league theme",
	Long:  `Suggest ready-to-register personas. Uses the LLM when OPENAI_API_KEY is set, otherwise the starter roster.`,
	Run: func(cmd *cobra.Command, args []string) {
		suggestRoster()
	},
}

// rosterArchetypesCmd represents the roster archetypes command
var rosterArchetypesCmd = &cobra.Command{
	Use:   "archetypes",
	Short: "List personality archetypes",
	Long:  `List every personality archetype and how it reacts.`,
	Run: func(cmd *cobra.Command, args []string) {
		listArchetypes()
	},
}

func init() {
	// Add subcommands to roster command
	RosterCmd.AddCommand(rosterSuggestCmd)
	RosterCmd.AddCommand(rosterArchetypesCmd)

	rosterSuggestCmd.Flags().StringVar(&rosterTheme, "theme", "", "League theme to riff on")
	rosterSuggestCmd.Flags().IntVar(&rosterCount, "count", 6, "Number of personas")

	rosterSuggestCmd.MarkFlagRequired("theme")
}

// suggestRoster prints generated personas with their mapped archetype
func suggestRoster() {
	suggestions := ai.GenerateRoster(rosterTheme, rosterCount)

	fmt.Printf("Personas for \"%s\":\n", rosterTheme)
	for _, s := range suggestions {
		personality := core.MapPersonalityTags(s.PersonalityTags)

		fmt.Printf("- %s [%s]\n", s.DisplayName, personality)
		fmt.Printf("  %s\n", s.Description)
		fmt.Printf("  Tags: %s\n", strings.Join(s.PersonalityTags, ", "))
		fmt.Println()
	}
}

// listArchetypes prints every archetype with its blurb
func listArchetypes() {
	fmt.Println("Available archetypes:")
	for _, p := range core.AllPersonalities {
		fmt.Printf("- %s: %s\n", p, core.PersonalityDescription(p))
	}
}
