package commands

import (
	"encoding/json"
	"fmt"
	"io/ioutil"
	"net/http"
	"os"

	"github.com/spf13/cobra"
)

var (
	statusBotID  string
	statusAPIURL string
)

// StatusCmd represents the status command
var StatusCmd = &cobra.Command{
	Use:   "status",
	Short: "Show a bot's mood and social standing",
	Long:  `Show a bot's current mood, trend, rivalries and alliances.`,
	Run: func(cmd *cobra.Command, args []string) {
		if statusBotID == "" {
			fmt.Println("Error: bot ID is required")
			os.Exit(1)
		}

		if statusAPIURL == "" {
			statusAPIURL = "http://localhost:8080"
		}

		showStatus()
	},
}

func init() {
	StatusCmd.Flags().StringVar(&statusBotID, "bot", "", "Bot ID to inspect")
	StatusCmd.Flags().StringVar(&statusAPIURL, "api-url", "", "API URL (default: http://localhost:8080)")

	StatusCmd.MarkFlagRequired("bot")
}

// showStatus fetches and prints the mood and social reports
func showStatus() {
	mood := fetchJSON(fmt.Sprintf("%s/api/bots/%s/mood", statusAPIURL, statusBotID))
	social := fetchJSON(fmt.Sprintf("%s/api/bots/%s/social", statusAPIURL, statusBotID))

	fmt.Printf("Bot: %s (ID: %s)\n", mood["display_name"], mood["bot_id"])
	fmt.Printf("Mood: %s (intensity %v, trend %s)\n",
		mood["current_mood"], mood["mood_intensity"], mood["trend"])
	fmt.Printf("History: %v events, last updated %v\n",
		mood["history_length"], mood["last_updated"])
	fmt.Printf("Social credits: %v\n", social["social_credits"])

	if rivalries, ok := social["rivalries"].([]interface{}); ok && len(rivalries) > 0 {
		fmt.Println("Rivalries:")
		for _, r := range rivalries {
			rivalry, ok := r.(map[string]interface{})
			if !ok {
				continue
			}
			fmt.Printf("- %s (intensity %v, %s)\n",
				rivalry["bot_id"], rivalry["intensity"], rivalry["origin"])
		}
	}

	if alliances, ok := social["alliances"].([]interface{}); ok && len(alliances) > 0 {
		fmt.Println("Alliances:")
		for _, a := range alliances {
			alliance, ok := a.(map[string]interface{})
			if !ok {
				continue
			}
			fmt.Printf("- %s (strength %v, %s)\n",
				alliance["bot_id"], alliance["strength"], alliance["origin"])
		}
	}
}

// fetchJSON GETs a URL and parses the JSON body
func fetchJSON(url string) map[string]interface{} {
	req, err := http.NewRequest("GET", url, nil)
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

	body, err := ioutil.ReadAll(resp.Body)
	if err != nil {
		fmt.Printf("Error reading response: %v\n", err)
		os.Exit(1)
	}

	if resp.StatusCode != http.StatusOK {
		fmt.Printf("Error fetching status: %s\n", body)
		os.Exit(1)
	}

	var response map[string]interface{}
	if err := json.Unmarshal(body, &response); err != nil {
		fmt.Printf("Error parsing response: %v\n", err)
		os.Exit(1)
	}

	return response
}
