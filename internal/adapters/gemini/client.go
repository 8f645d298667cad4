// Package gemini adapts Google's generative language API to the pipeline's
// TextGenerator port.
package gemini

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"strings"

	apperrors "github.com/curiogoods/catalog-api/internal/errors"
	"github.com/curiogoods/catalog-api/internal/ports"
)

// Options configure the Gemini client.
type Options struct {
	APIKey  string
	Model   string
	BaseURL string
	// HTTPClient deliberately defaults to one without a timeout: generation
	// calls are bounded by the pipeline's own deadline race, not here.
	HTTPClient *http.Client
}

// Client is a single-shot text generation client. No client-side retry.
type Client struct {
	apiKey  string
	model   string
	baseURL string
	http    *http.Client
}

const (
	defaultBaseURL = "https://generativelanguage.googleapis.com/v1beta"
	defaultModel   = "gemini-1.5-flash"
)

// NewClient constructs a Gemini client.
func NewClient(opts Options) (*Client, error) {
	if opts.APIKey == "" {
		return nil, apperrors.Validation("gemini api key is required")
	}

	baseURL := strings.TrimRight(opts.BaseURL, "/")
	if baseURL == "" {
		baseURL = defaultBaseURL
	}
	model := strings.TrimSpace(opts.Model)
	if model == "" {
		model = defaultModel
	}
	client := opts.HTTPClient
	if client == nil {
		client = &http.Client{}
	}

	return &Client{
		apiKey:  opts.APIKey,
		model:   model,
		baseURL: baseURL,
		http:    client,
	}, nil
}

var _ ports.TextGenerator = (*Client)(nil)

type generateRequest struct {
	Contents         []content         `json:"contents"`
	GenerationConfig *generationConfig `json:"generationConfig,omitempty"`
}

type content struct {
	Role  string `json:"role"`
	Parts []part `json:"parts"`
}

type part struct {
	Text string `json:"text,omitempty"`
}

type generationConfig struct {
	Temperature    float64 `json:"temperature,omitempty"`
	CandidateCount int     `json:"candidateCount,omitempty"`
}

type generateResponse struct {
	Candidates []struct {
		Content content `json:"content"`
	} `json:"candidates"`
}

// Generate sends the prompt and returns the first candidate's text.
func (c *Client) Generate(ctx context.Context, prompt string) (string, error) {
	payload := generateRequest{
		Contents: []content{{
			Role:  "user",
			Parts: []part{{Text: prompt}},
		}},
		GenerationConfig: &generationConfig{
			Temperature:    0.7,
			CandidateCount: 1,
		},
	}

	encoded, err := json.Marshal(payload)
	if err != nil {
		return "", fmt.Errorf("encode generation request: %w", err)
	}

	endpoint := fmt.Sprintf("%s/models/%s:generateContent?key=%s", c.baseURL, c.model, c.apiKey)
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, endpoint, bytes.NewReader(encoded))
	if err != nil {
		return "", fmt.Errorf("build generation request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := c.http.Do(req)
	if err != nil {
		return "", apperrors.Wrap(err, apperrors.ErrCodeUnavailable, "call generation service")
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return "", apperrors.Internalf("generation service returned %d", resp.StatusCode)
	}

	var decoded generateResponse
	if err := json.NewDecoder(resp.Body).Decode(&decoded); err != nil {
		return "", fmt.Errorf("decode generation response: %w", err)
	}

	if len(decoded.Candidates) == 0 || len(decoded.Candidates[0].Content.Parts) == 0 {
		return "", apperrors.Internal("generation service returned no candidates")
	}

	return decoded.Candidates[0].Content.Parts[0].Text, nil
}
