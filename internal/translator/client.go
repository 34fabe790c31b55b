// Package translator talks to the English to Hindi translation backend.
//
// The wire contract is a single call:
//
//	POST {base}/translate
//	Content-Type: application/json
//	{"text": "..."}
//
// answered by a 2xx JSON body carrying a "translation" string.
package translator

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

// Path is the endpoint path appended to the configured base URL.
const Path = "/translate"

// maxErrorBody caps how much of a failed response is kept for logs.
const maxErrorBody = 4 << 10

var (
	// ErrEmptyText is returned before any request is made.
	ErrEmptyText = errors.New("translator: empty text")
	// ErrTransport covers network failures: refused connections, resets, timeouts.
	ErrTransport = errors.New("translator: transport failure")
	// ErrDecode covers 2xx bodies that are not the expected JSON.
	ErrDecode = errors.New("translator: malformed response")
)

// StatusError is a non-2xx answer from the backend.
type StatusError struct {
	Code int
	Body string
}

func (e *StatusError) Error() string {
	return fmt.Sprintf("translator: unexpected status %d", e.Code)
}

// Translator turns English text into Hindi.
type Translator interface {
	Translate(ctx context.Context, text string) (Response, error)
}

// Request is the JSON body sent to the backend.
type Request struct {
	Text string `json:"text"`
}

// Response is the JSON body of a successful answer. Only Translation is
// required; the reference backend also reports its own timing and a note.
type Response struct {
	Translation    string         `json:"translation"`
	ProcessingTime *float64       `json:"processing_time,omitempty"`
	Note           string         `json:"note,omitempty"`
	ModelInfo      map[string]any `json:"model_info,omitempty"`
}

// Client is an HTTP Translator.
type Client struct {
	endpoint string
	http     *http.Client
	timeout  time.Duration
}

// Option configures a Client.
type Option func(*Client)

// WithHTTPClient swaps the underlying http.Client.
func WithHTTPClient(hc *http.Client) Option {
	return func(c *Client) {
		if hc != nil {
			c.http = hc
		}
	}
}

// WithTimeout bounds each call. Zero leaves calls unbounded.
func WithTimeout(d time.Duration) Option {
	return func(c *Client) { c.timeout = d }
}

// NewClient builds a client for the backend rooted at baseURL.
func NewClient(baseURL string, opts ...Option) *Client {
	c := &Client{
		endpoint: strings.TrimRight(strings.TrimSpace(baseURL), "/") + Path,
		http:     &http.Client{},
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// Endpoint returns the full URL requests are posted to.
func (c *Client) Endpoint() string { return c.endpoint }

// Translate posts text as-is. Callers trim; an empty string is refused.
func (c *Client) Translate(ctx context.Context, text string) (Response, error) {
	if text == "" {
		return Response{}, ErrEmptyText
	}
	if c.timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, c.timeout)
		defer cancel()
	}

	body, err := json.Marshal(Request{Text: text})
	if err != nil {
		return Response{}, fmt.Errorf("encode request: %w", err)
	}
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.endpoint, bytes.NewReader(body))
	if err != nil {
		return Response{}, fmt.Errorf("build request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Accept", "application/json")

	resp, err := c.http.Do(req)
	if err != nil {
		return Response{}, fmt.Errorf("%w: %w", ErrTransport, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		snippet, _ := io.ReadAll(io.LimitReader(resp.Body, maxErrorBody))
		return Response{}, &StatusError{Code: resp.StatusCode, Body: strings.TrimSpace(string(snippet))}
	}

	var raw struct {
		Translation *string `json:"translation"`
		Response
	}
	if err := json.NewDecoder(resp.Body).Decode(&raw); err != nil {
		if ctx.Err() != nil {
			return Response{}, fmt.Errorf("%w: %w", ErrTransport, ctx.Err())
		}
		return Response{}, fmt.Errorf("%w: %w", ErrDecode, err)
	}
	if raw.Translation == nil {
		return Response{}, fmt.Errorf("%w: missing translation field", ErrDecode)
	}
	out := raw.Response
	out.Translation = *raw.Translation
	return out, nil
}
