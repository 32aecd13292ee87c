// Package oracle generates prose interpretations of a reading through the
// Google Gemini generateContent API.
package oracle

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"strings"
	"time"

	"golang.org/x/time/rate"

	"github.com/arcanaland/tarotsim/internal/locale"
	"github.com/arcanaland/tarotsim/internal/spread"
)

const (
	DefaultBaseURL = "https://generativelanguage.googleapis.com/v1beta"
	DefaultModel   = "gemini-1.5-flash"
	DefaultTimeout = 30 * time.Second
)

var (
	// ErrNoAPIKey is returned when the client has no credential
	ErrNoAPIKey = errors.New("no Gemini API key configured")
	// ErrNetwork wraps transport failures
	ErrNetwork = errors.New("network error")
	// ErrMalformedResponse is returned when the reply cannot be understood
	ErrMalformedResponse = errors.New("malformed response")
)

// StatusError is a non-success HTTP status or an API-level error object
type StatusError struct {
	Code    int
	Message string
}

func (e *StatusError) Error() string {
	return fmt.Sprintf("API error %d: %s", e.Code, e.Message)
}

// SafetyStopError is returned when generation stops without text, e.g.
// because a safety threshold was hit
type SafetyStopError struct {
	Reason string
}

func (e *SafetyStopError) Error() string {
	return fmt.Sprintf("generation stopped: %s", e.Reason)
}

// GenerationConfig mirrors the generationConfig request object
type GenerationConfig struct {
	Temperature     float64 `json:"temperature"`
	TopK            int     `json:"topK"`
	TopP            float64 `json:"topP"`
	MaxOutputTokens int     `json:"maxOutputTokens"`
}

// SafetySetting mirrors one safetySettings request entry
type SafetySetting struct {
	Category  string `json:"category"`
	Threshold string `json:"threshold"`
}

// DefaultGeneration returns the sampling settings used for readings
func DefaultGeneration() GenerationConfig {
	return GenerationConfig{
		Temperature:     0.7,
		TopK:            40,
		TopP:            0.95,
		MaxOutputTokens: 1024,
	}
}

// DefaultSafety blocks medium and above for every harm category
func DefaultSafety() []SafetySetting {
	categories := []string{
		"HARM_CATEGORY_HARASSMENT",
		"HARM_CATEGORY_HATE_SPEECH",
		"HARM_CATEGORY_SEXUALLY_EXPLICIT",
		"HARM_CATEGORY_DANGEROUS_CONTENT",
	}
	settings := make([]SafetySetting, len(categories))
	for i, c := range categories {
		settings[i] = SafetySetting{Category: c, Threshold: "BLOCK_MEDIUM_AND_ABOVE"}
	}
	return settings
}

// Config is the explicit configuration of a Client
type Config struct {
	APIKey            string
	BaseURL           string
	Model             string
	Timeout           time.Duration
	RequestsPerMinute int // 0 disables throttling
	Generation        GenerationConfig
	Safety            []SafetySetting
}

// Client calls the text generation endpoint. It never retries.
type Client struct {
	httpClient *http.Client
	cfg        Config
	limiter    *rate.Limiter
	logger     *slog.Logger
}

// NewClient creates a client; zero config fields take their defaults
func NewClient(cfg Config, httpClient *http.Client, logger *slog.Logger) *Client {
	if cfg.BaseURL == "" {
		cfg.BaseURL = DefaultBaseURL
	}
	cfg.BaseURL = strings.TrimRight(cfg.BaseURL, "/")
	if cfg.Model == "" {
		cfg.Model = DefaultModel
	}
	if cfg.Timeout <= 0 {
		cfg.Timeout = DefaultTimeout
	}
	if cfg.Generation == (GenerationConfig{}) {
		cfg.Generation = DefaultGeneration()
	}
	if cfg.Safety == nil {
		cfg.Safety = DefaultSafety()
	}
	if httpClient == nil {
		httpClient = &http.Client{Timeout: cfg.Timeout}
	}
	if logger == nil {
		logger = slog.Default()
	}

	limit := rate.Inf
	if cfg.RequestsPerMinute > 0 {
		limit = rate.Every(time.Minute / time.Duration(cfg.RequestsPerMinute))
	}

	return &Client{
		httpClient: httpClient,
		cfg:        cfg,
		limiter:    rate.NewLimiter(limit, 1),
		logger:     logger,
	}
}

// Available reports whether the client has a credential
func (c *Client) Available() bool {
	return c.cfg.APIKey != ""
}

// Interpret builds the prompt for a reading and generates its
// interpretation in the bundle language
func (c *Client) Interpret(ctx context.Context, r spread.Reading, b *locale.Bundle) (string, error) {
	return c.Generate(ctx, BuildPrompt(r, b))
}

type part struct {
	Text string `json:"text"`
}

type content struct {
	Parts []part `json:"parts"`
}

type generateRequest struct {
	Contents         []content        `json:"contents"`
	GenerationConfig GenerationConfig `json:"generationConfig"`
	SafetySettings   []SafetySetting  `json:"safetySettings"`
}

type generateResponse struct {
	Candidates []struct {
		Content      *content `json:"content"`
		FinishReason string   `json:"finishReason"`
	} `json:"candidates"`
	PromptFeedback *struct {
		BlockReason string `json:"blockReason"`
	} `json:"promptFeedback"`
	Error *struct {
		Code    int    `json:"code"`
		Message string `json:"message"`
		Status  string `json:"status"`
	} `json:"error"`
}

// Generate sends prompt and returns the generated text
func (c *Client) Generate(ctx context.Context, prompt string) (string, error) {
	if !c.Available() {
		return "", ErrNoAPIKey
	}

	if err := c.limiter.Wait(ctx); err != nil {
		return "", fmt.Errorf("%w: %w", ErrNetwork, err)
	}

	body, err := json.Marshal(generateRequest{
		Contents:         []content{{Parts: []part{{Text: prompt}}}},
		GenerationConfig: c.cfg.Generation,
		SafetySettings:   c.cfg.Safety,
	})
	if err != nil {
		return "", fmt.Errorf("marshal request: %w", err)
	}

	url := fmt.Sprintf("%s/models/%s:generateContent", c.cfg.BaseURL, c.cfg.Model)
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, url, bytes.NewReader(body))
	if err != nil {
		return "", fmt.Errorf("build request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("x-goog-api-key", c.cfg.APIKey)

	start := time.Now()
	resp, err := c.httpClient.Do(req)
	if err != nil {
		return "", fmt.Errorf("%w: %w", ErrNetwork, err)
	}
	defer func() { _ = resp.Body.Close() }()

	respBody, err := io.ReadAll(resp.Body)
	if err != nil {
		return "", fmt.Errorf("%w: read response: %w", ErrNetwork, err)
	}

	c.logger.DebugContext(ctx, "generateContent",
		"model", c.cfg.Model,
		"status", resp.StatusCode,
		"latency_ms", time.Since(start).Milliseconds(),
	)

	if resp.StatusCode != http.StatusOK {
		return "", &StatusError{Code: resp.StatusCode, Message: errorMessage(respBody)}
	}

	var out generateResponse
	if err := json.Unmarshal(respBody, &out); err != nil {
		return "", fmt.Errorf("%w: %w", ErrMalformedResponse, err)
	}
	return extractText(out)
}

func extractText(out generateResponse) (string, error) {
	if out.Error != nil {
		return "", &StatusError{Code: out.Error.Code, Message: out.Error.Message}
	}

	if len(out.Candidates) > 0 {
		cand := out.Candidates[0]
		if cand.Content != nil && len(cand.Content.Parts) > 0 {
			var b strings.Builder
			for _, p := range cand.Content.Parts {
				b.WriteString(p.Text)
			}
			return b.String(), nil
		}
		if cand.FinishReason != "" {
			return "", &SafetyStopError{Reason: cand.FinishReason}
		}
	}

	if out.PromptFeedback != nil && out.PromptFeedback.BlockReason != "" {
		return "", &SafetyStopError{Reason: out.PromptFeedback.BlockReason}
	}

	return "", fmt.Errorf("%w: no candidates", ErrMalformedResponse)
}

// errorMessage pulls error.message out of an error body, falling back to
// the raw text
func errorMessage(body []byte) string {
	var out generateResponse
	if err := json.Unmarshal(body, &out); err == nil && out.Error != nil && out.Error.Message != "" {
		return out.Error.Message
	}
	return strings.TrimSpace(string(body))
}
