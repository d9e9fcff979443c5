package gemini

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
)

const (
	defaultAPIURL = "https://generativelanguage.googleapis.com/v1beta"
	defaultModel  = "gemini-2.0-flash"
)

// IGemini is the content generation interface, mockable in tests.
type IGemini interface {
	GenerateContent(ctx context.Context, req GenerateRequest) (*GenerateResponse, error)
}

// Client calls the Gemini generateContent API.
type Client struct {
	apiKey     string
	model      string
	apiURL     string
	httpClient *http.Client
}

var _ IGemini = (*Client)(nil)

// NewClient creates a Gemini client with the default model.
func NewClient(apiKey string) *Client {
	return &Client{
		apiKey:     apiKey,
		model:      defaultModel,
		apiURL:     defaultAPIURL,
		httpClient: &http.Client{},
	}
}

// SetAPIURL overrides the API base URL for testing purposes.
func (c *Client) SetAPIURL(url string) {
	c.apiURL = url
}

// SetModel overrides the default model.
func (c *Client) SetModel(model string) {
	c.model = model
}

// GenerateContent sends a generation request to the Gemini API.
func (c *Client) GenerateContent(ctx context.Context, req GenerateRequest) (*GenerateResponse, error) {
	url := fmt.Sprintf("%s/models/%s:generateContent?key=%s", c.apiURL, c.model, c.apiKey)

	body, err := json.Marshal(req)
	if err != nil {
		return nil, fmt.Errorf("gemini: failed to marshal request: %w", err)
	}

	httpReq, err := http.NewRequestWithContext(ctx, http.MethodPost, url, bytes.NewBuffer(body))
	if err != nil {
		return nil, fmt.Errorf("gemini: failed to create request: %w", err)
	}
	httpReq.Header.Set("Content-Type", "application/json")

	resp, err := c.httpClient.Do(httpReq)
	if err != nil {
		return nil, fmt.Errorf("gemini: failed to call API: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		raw, _ := io.ReadAll(resp.Body)
		return nil, fmt.Errorf("gemini: API error %d: %s", resp.StatusCode, string(raw))
	}

	var result GenerateResponse
	if err := json.NewDecoder(resp.Body).Decode(&result); err != nil {
		return nil, fmt.Errorf("gemini: failed to decode response: %w", err)
	}

	return &result, nil
}
