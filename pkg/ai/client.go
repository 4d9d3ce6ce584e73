// Package ai talks to the remote completion service that produces vehicle
// diagnoses. The endpoint is OpenAI-compatible (Groq): one chat-completion
// call per analysis, low temperature, strict JSON object output. No retry,
// no streaming, no caching. One request, one response.
package ai

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/elgarage/backend/pkg/http"
)

// Completer is the single operation the diagnosis composer needs.
// Tests substitute a stub; production uses *Client.
type Completer interface {
	Complete(ctx context.Context, prompt string) (string, error)
}

// Config holds the completion-service settings.
type Config struct {
	APIKey      string
	BaseURL     string
	Model       string
	Temperature float64
	Timeout     time.Duration
}

// DefaultConfig returns the Groq production defaults.
func DefaultConfig(apiKey string) Config {
	return Config{
		APIKey:      apiKey,
		BaseURL:     "https://api.groq.com/openai/v1",
		Model:       "llama-3.3-70b-versatile",
		Temperature: 0.2,
		Timeout:     30 * time.Second,
	}
}

// Client calls the chat-completions endpoint.
type Client struct {
	apiKey      string
	baseURL     string
	model       string
	temperature float64
	timeout     time.Duration
}

// NewClient creates a completion client from cfg, filling empty fields from
// DefaultConfig.
func NewClient(cfg Config) *Client {
	def := DefaultConfig(cfg.APIKey)
	if cfg.BaseURL == "" {
		cfg.BaseURL = def.BaseURL
	}
	if cfg.Model == "" {
		cfg.Model = def.Model
	}
	if cfg.Temperature == 0 {
		cfg.Temperature = def.Temperature
	}
	if cfg.Timeout == 0 {
		cfg.Timeout = def.Timeout
	}
	return &Client{
		apiKey:      cfg.APIKey,
		baseURL:     strings.TrimRight(cfg.BaseURL, "/"),
		model:       cfg.Model,
		temperature: cfg.Temperature,
		timeout:     cfg.Timeout,
	}
}

// Model returns the configured model identifier.
func (c *Client) Model() string { return c.model }

type message struct {
	Role    string `json:"role"`
	Content string `json:"content"`
}

type responseFormat struct {
	Type string `json:"type"` // "json_object"
}

type completionRequest struct {
	Model          string          `json:"model"`
	Messages       []message       `json:"messages"`
	Temperature    float64         `json:"temperature"`
	ResponseFormat *responseFormat `json:"response_format,omitempty"`
}

type completionResponse struct {
	Choices []struct {
		Message struct {
			Content string `json:"content"`
		} `json:"message"`
	} `json:"choices"`
	Error *apiError `json:"error,omitempty"`
}

type apiError struct {
	Message string `json:"message"`
	Type    string `json:"type"`
}

// Complete sends prompt and returns the raw completion text. The service is
// asked for a strict JSON object; parsing is the caller's job.
func (c *Client) Complete(ctx context.Context, prompt string) (string, error) {
	if c.apiKey == "" {
		return "", fmt.Errorf("ai: API key not configured")
	}

	reqBody := completionRequest{
		Model:          c.model,
		Messages:       []message{{Role: "user", Content: prompt}},
		Temperature:    c.temperature,
		ResponseFormat: &responseFormat{Type: "json_object"},
	}

	resp, err := http.Post(c.baseURL + "/chat/completions").
		Bearer(c.apiKey).
		Body(reqBody).
		Timeout(c.timeout).
		WithContext(ctx).
		Send()
	if err != nil {
		return "", fmt.Errorf("ai: completion request: %w", err)
	}

	if !resp.OK() {
		return "", fmt.Errorf("ai: completion request failed with status %d: %s", resp.StatusCode, resp.Text())
	}

	var out completionResponse
	if err := resp.JSON(&out); err != nil {
		return "", fmt.Errorf("ai: decode completion response: %w", err)
	}
	if out.Error != nil {
		return "", fmt.Errorf("ai: %s", out.Error.Message)
	}
	if len(out.Choices) == 0 {
		return "", fmt.Errorf("ai: no completion returned")
	}

	return strings.TrimSpace(out.Choices[0].Message.Content), nil
}
