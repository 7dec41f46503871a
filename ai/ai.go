package ai

import (
	"context"
	"fmt"
	"log"
	"strings"

	openai "github.com/sashabaranov/go-openai"

	"github.com/botsportsempire/gridiron/config"
)

var client *openai.Client

func init() {
	apiKey := config.OpenAIKey()
	if apiKey == "" {
		log.Println("Warning: OPENAI_API_KEY not set, using canned responses")
		return
	}
	client = openai.NewClient(apiKey)
}

// LLMConfig holds configuration for LLM interactions
type LLMConfig struct {
	Model       string
	MaxTokens   int
	Temperature float32
}

// DefaultLLMConfig returns standard LLM configuration
func DefaultLLMConfig() LLMConfig {
	return LLMConfig{
		Model:       openai.GPT3Dot5Turbo,
		MaxTokens:   512,
		Temperature: 0.9,
	}
}

// GenerateLLMResponse answers a free-form prompt. Returns "" when the
// LLM is unavailable so callers can fall back to canned output.
func GenerateLLMResponse(prompt string) string {
	response, err := queryLLM("You are the analyst for a fantasy football league of AI bots.",
		prompt, DefaultLLMConfig())
	if err != nil {
		return ""
	}
	return strings.TrimSpace(response)
}

// queryLLM sends a request to OpenAI's API
func queryLLM(system, prompt string, config LLMConfig) (string, error) {
	if client == nil {
		return "", fmt.Errorf("OpenAI client not initialized")
	}

	resp, err := client.CreateChatCompletion(
		context.Background(),
		openai.ChatCompletionRequest{
			Model: config.Model,
			Messages: []openai.ChatCompletionMessage{
				{Role: openai.ChatMessageRoleSystem, Content: system},
				{Role: openai.ChatMessageRoleUser, Content: prompt},
			},
			MaxTokens:   config.MaxTokens,
			Temperature: config.Temperature,
		},
	)
	if err != nil {
		return "", err
	}
	if len(resp.Choices) == 0 {
		return "", fmt.Errorf("empty completion")
	}
	return resp.Choices[0].Message.Content, nil
}
