package resend

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"

	"github.com/theestifanos/wedding-api/internal/config"
)

// Client is a Resend API client.
type Client struct {
	baseURL    string
	apiKey     string
	from       string
	httpClient *http.Client
}

// NewClient creates a new Resend API client.
//
// Sends go through a plain http.Client on purpose: a retried send that
// already reached Resend would deliver the same email twice.
func NewClient(cfg config.ResendConfig) *Client {
	return &Client{
		baseURL: cfg.BaseURL,
		apiKey:  cfg.APIKey,
		from:    cfg.From,
		httpClient: &http.Client{
			Timeout: cfg.Timeout(),
		},
	}
}

// From returns the configured sender identity.
func (c *Client) From() string {
	return c.from
}

// doRequest makes an HTTP request to the Resend API with Bearer auth.
func (c *Client) doRequest(ctx context.Context, method, path string, body interface{}) ([]byte, error) {
	fullURL := c.baseURL + path

	var reqBody io.Reader
	if body != nil {
		jsonBody, err := json.Marshal(body)
		if err != nil {
			return nil, fmt.Errorf("marshaling request body: %w", err)
		}
		reqBody = bytes.NewReader(jsonBody)
	}

	req, err := http.NewRequestWithContext(ctx, method, fullURL, reqBody)
	if err != nil {
		return nil, fmt.Errorf("creating request: %w", err)
	}

	req.Header.Set("Authorization", "Bearer "+c.apiKey)
	req.Header.Set("Content-Type", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("executing request: %w", err)
	}
	defer resp.Body.Close()

	respBody, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("reading response: %w", err)
	}

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		var apiErr APIError
		if json.Unmarshal(respBody, &apiErr) == nil && apiErr.Message != "" {
			return nil, fmt.Errorf("API error (status %d): %s", resp.StatusCode, apiErr.Message)
		}
		return nil, fmt.Errorf("API error (status %d): %s", resp.StatusCode, string(respBody))
	}

	return respBody, nil
}

// SendEmail sends one email. The From field defaults to the configured
// sender identity when left empty.
func (c *Client) SendEmail(ctx context.Context, req SendRequest) (*SendResponse, error) {
	if req.From == "" {
		req.From = c.from
	}
	if len(req.To) == 0 {
		return nil, fmt.Errorf("send email: no recipients")
	}

	body, err := c.doRequest(ctx, http.MethodPost, "/emails", req)
	if err != nil {
		return nil, fmt.Errorf("sending email: %w", err)
	}

	var response SendResponse
	if err := json.Unmarshal(body, &response); err != nil {
		return nil, fmt.Errorf("parsing send response: %w", err)
	}

	return &response, nil
}
