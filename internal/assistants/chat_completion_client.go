package assistants

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"
)

var (
	ErrAPIKeyMissing    = errors.New("chat completion api key not configured")
	ErrUnexpectedStatus = errors.New("unexpected chat completion status")
	ErrEmptyCompletion  = errors.New("chat completion returned no content")
)

// maxErrorBodyBytes bounds how much of a failed response is kept for logging.
const maxErrorBodyBytes = 512

// CompletionMessage is one entry of the outbound messages array.
type CompletionMessage struct {
	Role    string `json:"role"`
	Content string `json:"content"`
}

type completionRequest struct {
	Model    string              `json:"model"`
	Messages []CompletionMessage `json:"messages"`
}

type completionResponse struct {
	Choices []struct {
		Message struct {
			Content string `json:"content"`
		} `json:"message"`
	} `json:"choices"`
}

//go:generate mockgen -source=chat_completion_client.go -destination=./mocks/chat_completion_client_mock.go -package=mocks
type ChatCompletionClient interface {
	// Complete sends one request and returns the first choice's content.
	// It never retries.
	Complete(ctx context.Context, messages []CompletionMessage) (string, error)
}

type ChatCompletionClientConfig struct {
	Endpoint string
	Model    string
	APIKey   string
	Timeout  time.Duration
}

type chatCompletionClient struct {
	cfg        ChatCompletionClientConfig
	httpClient *http.Client
}

func NewChatCompletionClient(cfg ChatCompletionClientConfig) ChatCompletionClient {
	return &chatCompletionClient{
		cfg:        cfg,
		httpClient: &http.Client{Timeout: cfg.Timeout},
	}
}

func (c *chatCompletionClient) Complete(ctx context.Context, messages []CompletionMessage) (string, error) {
	if strings.TrimSpace(c.cfg.APIKey) == "" {
		return "", ErrAPIKeyMissing
	}

	payload, err := json.Marshal(completionRequest{Model: c.cfg.Model, Messages: messages})
	if err != nil {
		return "", fmt.Errorf("failed to marshal completion request: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.cfg.Endpoint, bytes.NewReader(payload))
	if err != nil {
		return "", fmt.Errorf("failed to build completion request: %w", err)
	}
	req.Header.Set("Authorization", "Bearer "+c.cfg.APIKey)
	req.Header.Set("Content-Type", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return "", fmt.Errorf("completion request failed: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		body, _ := io.ReadAll(io.LimitReader(resp.Body, maxErrorBodyBytes))
		return "", fmt.Errorf("%w: %d %s", ErrUnexpectedStatus, resp.StatusCode, strings.TrimSpace(string(body)))
	}

	var out completionResponse
	if err := json.NewDecoder(resp.Body).Decode(&out); err != nil {
		return "", fmt.Errorf("failed to decode completion response: %w", err)
	}
	if len(out.Choices) == 0 || strings.TrimSpace(out.Choices[0].Message.Content) == "" {
		return "", ErrEmptyCompletion
	}
	return out.Choices[0].Message.Content, nil
}
