package commands

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io/ioutil"
	"net/http"
	"os"

	"github.com/spf13/cobra"
)

var (
	eventBotID   string
	eventType    string
	eventSource  string
	eventImpact  int
	eventContext string
	eventAPIURL  string
)

// EventCmd represents the event command
var EventCmd = &cobra.Command{
	Use:   "event",
	Short: "Send a mood event",
	Long:  `Send a mood event to a bot and print the resulting transition.`,
	Run: func(cmd *cobra.Command, args []string) {
		if eventBotID == "" {
			fmt.Println("Error: bot ID is required")
			os.Exit(1)
		}

		if eventType == "" {
			fmt.Println("Error: event type is required")
			os.Exit(1)
		}

		if eventAPIURL == "" {
			eventAPIURL = "http://localhost:8080"
		}

		sendEvent(cmd.Flags().Changed("impact"))
	},
}

func init() {
	EventCmd.Flags().StringVar(&eventBotID, "bot", "", "Bot ID to send the event to")
	EventCmd.Flags().StringVar(&eventType, "type", "", "Event type (win_boost, loss_penalty, trash_talk_received, ...)")
	EventCmd.Flags().StringVar(&eventSource, "source", "", "Bot ID the event came from")
	EventCmd.Flags().IntVar(&eventImpact, "impact", 0, "Explicit intensity delta, overrides the trigger table")
	EventCmd.Flags().StringVar(&eventContext, "context", "", "Freeform note stored with the event")
	EventCmd.Flags().StringVar(&eventAPIURL, "api-url", "", "API URL (default: http://localhost:8080)")

	EventCmd.MarkFlagRequired("bot")
	EventCmd.MarkFlagRequired("type")
}

// sendEvent sends the API request to create a mood event
func sendEvent(hasImpact bool) {
	payload := map[string]interface{}{
		"type": eventType,
	}
	if eventSource != "" {
		payload["source_bot_id"] = eventSource
	}
	if hasImpact {
		payload["impact"] = eventImpact
	}
	if eventContext != "" {
		payload["metadata"] = map[string]interface{}{"context": eventContext}
	}

	requestJSON, err := json.Marshal(payload)
	if err != nil {
		fmt.Printf("Error creating request: %v\n", err)
		os.Exit(1)
	}

	// Send request
	url := fmt.Sprintf("%s/api/bots/%s/mood-events", eventAPIURL, eventBotID)
	req, err := http.NewRequest("POST", url, bytes.NewBuffer(requestJSON))
	if err != nil {
		fmt.Printf("Error creating request: %v\n", err)
		os.Exit(1)
	}

	req.Header.Set("Content-Type", "application/json")

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
		fmt.Printf("Error sending event: %s\n", body)
		os.Exit(1)
	}

	var response map[string]interface{}
	if err := json.Unmarshal(body, &response); err != nil {
		fmt.Printf("Error parsing response: %v\n", err)
		os.Exit(1)
	}

	fmt.Println(response["message"])
	fmt.Printf("Mood: %s -> %s\n", response["old_mood"], response["new_mood"])
	fmt.Printf("Intensity: %v -> %v (change %v)\n",
		response["old_intensity"], response["new_intensity"], response["intensity_change"])
}
