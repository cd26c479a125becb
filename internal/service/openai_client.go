package service

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"time"
)

const (
	openAIBaseURL           = "https://api.openai.com/v1"
	chatCompletionsEndpoint = "/chat/completions"
	completionTimeout       = 30 * time.Second

	advisorSystemPrompt = "You are a helpful educational advisor who suggests online courses."
	completionMaxTokens = 200
	completionTemp      = 0.7
)

// OpenAIClient produces a chat-completion reply for a user prompt
type OpenAIClient interface {
	CreateCompletion(ctx context.Context, prompt string) (string, error)
}

type chatCompletionMessage struct {
	Role    string `json:"role"`
	Content string `json:"content"`
}

type chatCompletionRequest struct {
	Model       string                  `json:"model"`
	Messages    []chatCompletionMessage `json:"messages"`
	MaxTokens   int                     `json:"max_tokens"`
	Temperature float64                 `json:"temperature"`
}

type chatCompletionResponse struct {
	Choices []struct {
		Message chatCompletionMessage `json:"message"`
	} `json:"choices"`
}

type openAIClient struct {
	client  *http.Client
	baseURL string
	apiKey  string
	model   string
}

// NewOpenAIClient creates a chat-completions client. The API key and model
// are process configuration injected once at startup.
func NewOpenAIClient(apiKey, model string) OpenAIClient {
	return &openAIClient{
		client: &http.Client{
			Timeout: completionTimeout,
		},
		baseURL: openAIBaseURL,
		apiKey:  apiKey,
		model:   model,
	}
}

// CreateCompletion sends the prompt to the chat-completions endpoint with the
// educational-advisor system prompt and returns the first choice's content.
func (c *openAIClient) CreateCompletion(ctx context.Context, prompt string) (string, error) {
	reqBody := chatCompletionRequest{
		Model: c.model,
		Messages: []chatCompletionMessage{
			{Role: "system", Content: advisorSystemPrompt},
			{Role: "user", Content: prompt},
		},
		MaxTokens:   completionMaxTokens,
		Temperature: completionTemp,
	}
	payload, err := json.Marshal(reqBody)
	if err != nil {
		return "", fmt.Errorf("failed to serialize request: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.baseURL+chatCompletionsEndpoint, bytes.NewReader(payload))
	if err != nil {
		return "", fmt.Errorf("failed to create request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Authorization", "Bearer "+c.apiKey)

	resp, err := c.client.Do(req)
	if err != nil {
		return "", fmt.Errorf("failed to send request: %w", err)
	}
	defer func() {
		_ = resp.Body.Close()
	}()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return "", fmt.Errorf("failed to read response body: %w", err)
	}

	if resp.StatusCode != http.StatusOK {
		var errorResp struct {
			Error struct {
				Message string `json:"message"`
				Type    string `json:"type"`
			} `json:"error"`
		}
		if err := json.Unmarshal(body, &errorResp); err == nil && errorResp.Error.Message != "" {
			return "", fmt.Errorf("completion request failed: %s", errorResp.Error.Message)
		}
		return "", fmt.Errorf("completion request failed: HTTP %d", resp.StatusCode)
	}

	var completionResp chatCompletionResponse
	if err := json.Unmarshal(body, &completionResp); err != nil {
		return "", fmt.Errorf("failed to decode API response: %w", err)
	}
	if len(completionResp.Choices) == 0 {
		return "", fmt.Errorf("no choices returned by the API")
	}
	return completionResp.Choices[0].Message.Content, nil
}
