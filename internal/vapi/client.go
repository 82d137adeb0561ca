package vapi

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/go-resty/resty/v2"
)

// Client issues authenticated HTTP requests against the voice-call provider.
// It is stateless: every operation is a single request/response exchange.
type Client struct {
	baseURL string
	http    *resty.Client
}

// Config holds client configuration.
type Config struct {
	BaseURL string
	APIKey  string
	Timeout time.Duration
}

// NewClient creates a provider client with bearer authentication.
func NewClient(cfg *Config) *Client {
	timeout := cfg.Timeout
	if timeout == 0 {
		timeout = 30 * time.Second
	}

	client := resty.New()
	client.SetHeader("Authorization", "Bearer "+cfg.APIKey)
	client.SetHeader("Content-Type", "application/json")
	client.SetTimeout(timeout)

	baseURL := cfg.BaseURL
	if baseURL == "" {
		baseURL = "https://api.vapi.ai"
	}

	return &Client{
		baseURL: baseURL,
		http:    client,
	}
}

// CreateCall places an outbound call and returns the provider's call object.
func (c *Client) CreateCall(ctx context.Context, req *CreateCallRequest) (*Call, error) {
	resp, err := c.http.R().
		SetContext(ctx).
		SetBody(req).
		Post(c.baseURL + "/call")
	if err != nil {
		return nil, &ProviderError{Err: err}
	}
	if resp.IsError() {
		return nil, &ProviderError{StatusCode: resp.StatusCode(), Body: string(resp.Body())}
	}
	return parseCall(resp.Body())
}

// GetCall fetches the current state of a call by its provider id.
func (c *Client) GetCall(ctx context.Context, id string) (*Call, error) {
	resp, err := c.http.R().
		SetContext(ctx).
		Get(c.baseURL + "/call/" + id)
	if err != nil {
		return nil, &ProviderError{Err: err}
	}
	if resp.IsError() {
		return nil, &ProviderError{StatusCode: resp.StatusCode(), Body: string(resp.Body())}
	}
	return parseCall(resp.Body())
}

// CreateAssistant creates an assistant from an arbitrary provider payload.
// The payload is passed through untouched; callers own its shape.
func (c *Client) CreateAssistant(ctx context.Context, payload interface{}) (json.RawMessage, error) {
	resp, err := c.http.R().
		SetContext(ctx).
		SetBody(payload).
		Post(c.baseURL + "/assistant")
	if err != nil {
		return nil, &ProviderError{Err: err}
	}
	if resp.IsError() {
		return nil, &ProviderError{StatusCode: resp.StatusCode(), Body: string(resp.Body())}
	}
	return json.RawMessage(resp.Body()), nil
}

// ListAssistants returns the provider's assistants as raw JSON.
func (c *Client) ListAssistants(ctx context.Context) (json.RawMessage, error) {
	return c.get(ctx, "/assistant")
}

// ListPhoneNumbers returns the provider's phone numbers as raw JSON.
func (c *Client) ListPhoneNumbers(ctx context.Context) (json.RawMessage, error) {
	return c.get(ctx, "/phone-number")
}

// UpdatePhoneNumber reassigns the assistant attached to a phone number.
func (c *Client) UpdatePhoneNumber(ctx context.Context, id, assistantID string) (json.RawMessage, error) {
	resp, err := c.http.R().
		SetContext(ctx).
		SetBody(map[string]string{"assistantId": assistantID}).
		Patch(c.baseURL + "/phone-number/" + id)
	if err != nil {
		return nil, &ProviderError{Err: err}
	}
	if resp.IsError() {
		return nil, &ProviderError{StatusCode: resp.StatusCode(), Body: string(resp.Body())}
	}
	return json.RawMessage(resp.Body()), nil
}

func (c *Client) get(ctx context.Context, path string) (json.RawMessage, error) {
	resp, err := c.http.R().
		SetContext(ctx).
		Get(c.baseURL + path)
	if err != nil {
		return nil, &ProviderError{Err: err}
	}
	if resp.IsError() {
		return nil, &ProviderError{StatusCode: resp.StatusCode(), Body: string(resp.Body())}
	}
	return json.RawMessage(resp.Body()), nil
}

// parseCall decodes a call payload into its typed form while keeping the full
// raw object for opaque persistence.
func parseCall(body []byte) (*Call, error) {
	var call Call
	if err := json.Unmarshal(body, &call); err != nil {
		return nil, &ProviderError{Err: fmt.Errorf("malformed call payload: %w", err)}
	}
	if err := json.Unmarshal(body, &call.Raw); err != nil {
		return nil, &ProviderError{Err: fmt.Errorf("malformed call payload: %w", err)}
	}
	return &call, nil
}
