// ABOUTME: OpenAI chat-completions client for food description analysis.
// ABOUTME: Errors propagate to the caller so the UI can show them directly.
package openai

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"strings"
	"time"
)

const (
	defaultBaseURL = "https://api.openai.com/v1"
	model          = "gpt-4o-mini"
)

// FoodAnalysis is the structured result of analyzing a food description.
type FoodAnalysis struct {
	Calories   float64 `json:"calories"`
	Protein    float64 `json:"protein"`
	Quality    int     `json:"quality"` // 1-5 scale
	IsJunkFood bool    `json:"is_junk_food"`
	Insights   string  `json:"insights"`
}

// Client calls the OpenAI chat completions API.
type Client struct {
	baseURL string
	apiKey  string
	http    *http.Client
}

// NewClient creates a client for the given API key.
func NewClient(apiKey string) *Client {
	return &Client{
		baseURL: defaultBaseURL,
		apiKey:  apiKey,
		http:    &http.Client{Timeout: 30 * time.Second},
	}
}

// NewClientWithBaseURL creates a client against a custom endpoint. Used by
// tests to point at a local server.
func NewClientWithBaseURL(apiKey, baseURL string) *Client {
	c := NewClient(apiKey)
	c.baseURL = baseURL
	return c
}

const systemPrompt = `You are a nutrition analyst. Given a food description,
respond with only a JSON object: {"calories": number, "protein": number,
"quality": number 1-5, "is_junk_food": boolean, "insights": string}.`

type chatRequest struct {
	Model          string        `json:"model"`
	Messages       []chatMessage `json:"messages"`
	ResponseFormat *respFormat   `json:"response_format,omitempty"`
}

type respFormat struct {
	Type string `json:"type"`
}

type chatMessage struct {
	Role    string `json:"role"`
	Content string `json:"content"`
}

type chatResponse struct {
	Choices []struct {
		Message chatMessage `json:"message"`
	} `json:"choices"`
	Error *struct {
		Message string `json:"message"`
	} `json:"error,omitempty"`
}

// AnalyzeFood asks the model to estimate nutrition facts for a free-form
// food description.
func (c *Client) AnalyzeFood(ctx context.Context, description string) (FoodAnalysis, error) {
	var analysis FoodAnalysis
	if strings.TrimSpace(description) == "" {
		return analysis, fmt.Errorf("empty food description")
	}

	body, err := json.Marshal(chatRequest{
		Model: model,
		Messages: []chatMessage{
			{Role: "system", Content: systemPrompt},
			{Role: "user", Content: description},
		},
		ResponseFormat: &respFormat{Type: "json_object"},
	})
	if err != nil {
		return analysis, err
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.baseURL+"/chat/completions", bytes.NewReader(body))
	if err != nil {
		return analysis, err
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Authorization", "Bearer "+c.apiKey)

	resp, err := c.http.Do(req)
	if err != nil {
		return analysis, fmt.Errorf("openai request: %w", err)
	}
	defer resp.Body.Close()

	var chat chatResponse
	if err := json.NewDecoder(resp.Body).Decode(&chat); err != nil {
		return analysis, fmt.Errorf("openai: decode response: %w", err)
	}
	if chat.Error != nil {
		return analysis, fmt.Errorf("openai: %s", chat.Error.Message)
	}
	if resp.StatusCode != http.StatusOK {
		return analysis, fmt.Errorf("openai: unexpected status %d", resp.StatusCode)
	}
	if len(chat.Choices) == 0 {
		return analysis, fmt.Errorf("openai: empty response")
	}

	content := chat.Choices[0].Message.Content
	if err := json.Unmarshal([]byte(content), &analysis); err != nil {
		return analysis, fmt.Errorf("openai: unparseable analysis: %w", err)
	}
	if analysis.Quality < 1 {
		analysis.Quality = 1
	}
	if analysis.Quality > 5 {
		analysis.Quality = 5
	}
	return analysis, nil
}
