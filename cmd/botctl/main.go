package main

import (
	"fmt"
	"os"

	"github.com/botsportsempire/gridiron/cmd/botctl/commands"
	"github.com/spf13/cobra"
)

var rootCmd = &cobra.Command{
	Use:   "botctl",
	Short: "Gridiron Bot CLI",
	Long:  `Command line interface for managing Gridiron fantasy football bots.`,
}

func init() {
	// Add commands
	rootCmd.AddCommand(commands.RegisterCmd)
	rootCmd.AddCommand(commands.ListCmd)
	rootCmd.AddCommand(commands.EventCmd)
	rootCmd.AddCommand(commands.StatusCmd)
	rootCmd.AddCommand(commands.RosterCmd)
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Println(err)
		os.Exit(1)
	}
}
