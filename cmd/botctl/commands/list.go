package commands

import (
	"encoding/json"
	"fmt"
	"io/ioutil"
	"net/http"
	"os"

	"github.com/spf13/cobra"
)

var listAPIURL string

// ListCmd represents the list command
var ListCmd = &cobra.Command{
	Use:   "list",
	Short: "List bots",
	Long:  `List every bot registered with the league server.`,
	Run: func(cmd *cobra.Command, args []string) {
		if listAPIURL == "" {
			listAPIURL = "http://localhost:8080"
		}

		listBots()
	},
}

func init() {
	ListCmd.Flags().StringVar(&listAPIURL, "api-url", "", "API URL (default: http://localhost:8080)")
}

// listBots lists all registered bots
func listBots() {
	// Send request
	req, err := http.NewRequest("GET", listAPIURL+"/api/bots", nil)
	if err != nil {
		fmt.Printf("Error creating request: %v\n", err)
		os.Exit(1)
	}

	client := &http.Client{}
	resp, err := client.Do(req)
	if err != nil {
		fmt.Printf("Error sending request: %v\n", err)
		os.Exit(1)
	}
	defer resp.Body.Close()

	// Read response
	body, err := ioutil.ReadAll(resp.Body)
	if err != nil {
		fmt.Printf("Error reading response: %v\n", err)
		os.Exit(1)
	}

	if resp.StatusCode != http.StatusOK {
		fmt.Printf("Error listing bots: %s\n", body)
		os.Exit(1)
	}

	var response map[string]interface{}
	if err := json.Unmarshal(body, &response); err != nil {
		fmt.Printf("Error parsing response: %v\n", err)
		os.Exit(1)
	}

	bots, ok := response["bots"].([]interface{})
	if !ok || len(bots) == 0 {
		fmt.Println("No bots found.")
		return
	}

	fmt.Printf("Found %d bots:\n", len(bots))
	for _, b := range bots {
		bot, ok := b.(map[string]interface{})
		if !ok {
			continue
		}

		fmt.Printf("- %s (ID: %s)\n", bot["display_name"], bot["id"])
		fmt.Printf("  Personality: %s\n", bot["personality"])
		fmt.Printf("  Mood: %s (%v)\n", bot["current_mood"], bot["mood_intensity"])
		fmt.Printf("  Record: %v-%v\n", bot["total_wins"], bot["total_losses"])

		if active, ok := bot["is_active"].(bool); ok && !active {
			fmt.Println("  Status: inactive")
		}

		fmt.Println()
	}
}
