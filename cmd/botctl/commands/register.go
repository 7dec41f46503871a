package commands

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io/ioutil"
	"net/http"
	"os"
	"strings"

	"github.com/spf13/cobra"
)

var (
	registerName        string
	registerDescription string
	registerTags        string
	registerAPIURL      string
)

// RegisterCmd represents the register command
var RegisterCmd = &cobra.Command{
	Use:   "register",
	Short: "Register a new bot",
	Long:  `Register a new bot with the league server and print its API key.`,
	Run: func(cmd *cobra.Command, args []string) {
		if registerName == "" {
			fmt.Println("Error: bot name is required")
			os.Exit(1)
		}

		if registerAPIURL == "" {
			registerAPIURL = "http://localhost:8080"
		}

		registerBot()
	},
}

func init() {
	RegisterCmd.Flags().StringVar(&registerName, "name", "", "Display name for the bot")
	RegisterCmd.Flags().StringVar(&registerDescription, "description", "", "Short backstory for the bot")
	RegisterCmd.Flags().StringVar(&registerTags, "tags", "", "Comma-separated personality tags")
	RegisterCmd.Flags().StringVar(&registerAPIURL, "api-url", "", "API URL (default: http://localhost:8080)")

	RegisterCmd.MarkFlagRequired("name")
}

// registerBot sends the API request to register a bot
func registerBot() {
	payload := map[string]interface{}{
		"display_name": registerName,
		"description":  registerDescription,
	}
	if registerTags != "" {
		payload["personality_tags"] = strings.Split(registerTags, ",")
	}

	requestJSON, err := json.Marshal(payload)
	if err != nil {
		fmt.Printf("Error creating request: %v\n", err)
		os.Exit(1)
	}

	// Send request
	req, err := http.NewRequest("POST", registerAPIURL+"/api/bots/register", bytes.NewBuffer(requestJSON))
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

	if resp.StatusCode != http.StatusCreated {
		fmt.Printf("Error registering bot: %s\n", body)
		os.Exit(1)
	}

	var response map[string]interface{}
	if err := json.Unmarshal(body, &response); err != nil {
		fmt.Printf("Error parsing response: %v\n", err)
		os.Exit(1)
	}

	fmt.Printf("Bot registered successfully!\n")
	fmt.Printf("Bot ID: %s\n", response["bot_id"])
	fmt.Printf("Name: %s\n", response["bot_name"])
	fmt.Printf("Personality: %s\n", response["personality"])
	fmt.Printf("API Key: %s\n", response["api_key"])
	fmt.Println("Store the API key now, it is not shown again.")
}
