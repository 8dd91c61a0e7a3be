package srsclient

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"

	"srs-intake-be/pkg/srsform"
)

const (
	DefaultEnhancePath = "/enhance_section"
	DefaultSubmitPath  = "/generate_srs"
)

// Client talks to the enhancement and document generation endpoints. It
// never retries and sets no timeout of its own; the injected http.Client
// decides.
type Client struct {
	BaseURL     string
	EnhancePath string
	SubmitPath  string
	HTTP        *http.Client
}

func NewClient(baseURL string) *Client {
	return &Client{
		BaseURL:     strings.TrimRight(baseURL, "/"),
		EnhancePath: DefaultEnhancePath,
		SubmitPath:  DefaultSubmitPath,
		HTTP:        http.DefaultClient,
	}
}

type enhanceRequest struct {
	SectionType string `json:"section_type"`
	UserInput   string `json:"user_input"`
}

type enhanceResponse struct {
	Content string `json:"content"`
}

// Enhance asks the server to rewrite userInput for the given SRS section.
func (c *Client) Enhance(ctx context.Context, sectionType, userInput string) *Task[string] {
	return Go(ctx, func(ctx context.Context) (string, error) {
		body, err := c.post(ctx, c.EnhancePath, enhanceRequest{SectionType: sectionType, UserInput: userInput})
		if err != nil {
			return "", err
		}
		var res enhanceResponse
		if err := json.Unmarshal(body, &res); err != nil {
			return "", &TransportError{Err: fmt.Errorf("decode enhance response: %w", err)}
		}
		if res.Content == "" {
			return "", &ContractError{Reason: "Enhancement response missing content."}
		}
		return res.Content, nil
	})
}

// Submit posts the payload for document generation and returns the
// server's acknowledgement unparsed.
func (c *Client) Submit(ctx context.Context, payload *srsform.Payload) *Task[json.RawMessage] {
	return Go(ctx, func(ctx context.Context) (json.RawMessage, error) {
		body, err := c.post(ctx, c.SubmitPath, payload)
		if err != nil {
			return nil, err
		}
		trimmed := bytes.TrimSpace(body)
		if len(trimmed) == 0 || bytes.Equal(trimmed, []byte("null")) {
			return nil, &ContractError{Reason: "Generation response missing acknowledgement."}
		}
		if !json.Valid(trimmed) {
			return nil, &TransportError{Err: fmt.Errorf("decode generation response: invalid JSON")}
		}
		return json.RawMessage(trimmed), nil
	})
}

func (c *Client) post(ctx context.Context, path string, in any) ([]byte, error) {
	payloadBytes, err := json.Marshal(in)
	if err != nil {
		return nil, fmt.Errorf("marshal request: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.BaseURL+path, bytes.NewReader(payloadBytes))
	if err != nil {
		return nil, fmt.Errorf("create request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Accept", "application/json")

	httpClient := c.HTTP
	if httpClient == nil {
		httpClient = http.DefaultClient
	}
	resp, err := httpClient.Do(req)
	if err != nil {
		return nil, &TransportError{Err: err}
	}
	defer resp.Body.Close()

	bodyBytes, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, &TransportError{Err: fmt.Errorf("read response: %w", err)}
	}

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return nil, &TransportError{Status: resp.StatusCode, Body: string(bodyBytes)}
	}
	return bodyBytes, nil
}
