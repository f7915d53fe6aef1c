package llm

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log"
	"net/http"
	"strings"
	"time"
)

// Client is the language-model capability the generator and evaluator build
// on: given a prompt, return text or a JSON document. Implementations must be
// safe for concurrent use.
type Client interface {
	Generate(ctx context.Context, systemPrompt, userPrompt string) (string, error)
	GenerateJSON(ctx context.Context, systemPrompt, userPrompt string, out any) error
}

// HTTPClient talks to an OpenAI-compatible chat-completions endpoint.
type HTTPClient struct {
	HTTP       *http.Client
	BaseURL    string
	APIKey     string
	Model      string
	MaxRetries int
}

func NewHTTPClient(baseURL, apiKey, model string, maxRetries int) *HTTPClient {
	if maxRetries < 1 {
		maxRetries = 1
	}
	return &HTTPClient{
		HTTP: &http.Client{
			Timeout: 120 * time.Second, // LLM responses can be slow
		},
		BaseURL:    baseURL,
		APIKey:     apiKey,
		Model:      model,
		MaxRetries: maxRetries,
	}
}

type chatCompletionRequest struct {
	Model       string                  `json:"model"`
	Messages    []chatCompletionMessage `json:"messages"`
	Stream      bool                    `json:"stream"`
	Temperature *float64                `json:"temperature,omitempty"`
}

type chatCompletionMessage struct {
	Role    string `json:"role"`
	Content string `json:"content"`
}

type chatCompletionResponse struct {
	Choices []struct {
		Message chatCompletionMessage `json:"message"`
	} `json:"choices"`
}

func (c *HTTPClient) Generate(ctx context.Context, systemPrompt, userPrompt string) (string, error) {
	var lastErr error
	for attempt := 1; attempt <= c.MaxRetries; attempt++ {
		text, err := c.sendChatRequest(ctx, systemPrompt, userPrompt)
		if err == nil {
			return text, nil
		}
		lastErr = err
		log.Printf("LLM request attempt %d/%d failed: %v", attempt, c.MaxRetries, err)

		select {
		case <-ctx.Done():
			return "", ctx.Err()
		case <-time.After(time.Duration(attempt) * time.Second):
		}
	}
	return "", fmt.Errorf("llm request failed after %d attempts: %w", c.MaxRetries, lastErr)
}

func (c *HTTPClient) GenerateJSON(ctx context.Context, systemPrompt, userPrompt string, out any) error {
	text, err := c.Generate(ctx, systemPrompt, userPrompt)
	if err != nil {
		return err
	}
	cleaned := StripCodeFences(text)
	if err := json.Unmarshal([]byte(cleaned), out); err != nil {
		return fmt.Errorf("failed to parse llm JSON response: %w", err)
	}
	return nil
}

func (c *HTTPClient) sendChatRequest(ctx context.Context, systemPrompt, userPrompt string) (string, error) {
	request := chatCompletionRequest{
		Model: c.Model,
		Messages: []chatCompletionMessage{
			{Role: "system", Content: systemPrompt},
			{Role: "user", Content: userPrompt},
		},
		Stream: false,
	}

	jsonData, err := json.Marshal(request)
	if err != nil {
		return "", fmt.Errorf("failed to marshal request: %v", err)
	}

	req, err := http.NewRequestWithContext(ctx, "POST", c.BaseURL+"/chat/completions", bytes.NewBuffer(jsonData))
	if err != nil {
		return "", fmt.Errorf("failed to create request: %v", err)
	}

	req.Header.Set("Content-Type", "application/json")
	if c.APIKey != "" && c.APIKey != "none" {
		req.Header.Set("Authorization", "Bearer "+c.APIKey)
	}

	resp, err := c.HTTP.Do(req)
	if err != nil {
		return "", fmt.Errorf("request failed: %v", err)
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return "", fmt.Errorf("failed to read response: %v", err)
	}

	if resp.StatusCode != 200 {
		return "", fmt.Errorf("LLM API error (status %d): %s", resp.StatusCode, string(body))
	}

	var response chatCompletionResponse
	if err := json.Unmarshal(body, &response); err != nil {
		return "", err
	}
	if len(response.Choices) == 0 {
		return "", fmt.Errorf("LLM response contained no choices")
	}
	return response.Choices[0].Message.Content, nil
}

// StripCodeFences removes a surrounding markdown code fence, which chat models
// frequently wrap JSON output in.
func StripCodeFences(text string) string {
	trimmed := strings.TrimSpace(text)
	if !strings.HasPrefix(trimmed, "```") {
		return trimmed
	}
	trimmed = strings.TrimPrefix(trimmed, "```json")
	trimmed = strings.TrimPrefix(trimmed, "```")
	trimmed = strings.TrimSuffix(strings.TrimSpace(trimmed), "```")
	return strings.TrimSpace(trimmed)
}
