// Package answer is the HTTP client for the external answer service: the
// opaque upstream that turns a student's question into a supportive reply.
//
// The wire contract is fixed: POST {"question": "..."} with basic auth,
// receive {"answer": "..."}. The client enforces a bounded timeout so an
// unresponsive upstream can never hang a caller, surfaces every upstream or
// transport failure as the generic ErrUpstream (the upstream error body is
// never leaked to clients), performs no retries, and caches nothing.
package answer

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"time"
)

// ErrUpstream is returned for any transport error or non-2xx response from
// the answer service. Handlers map it to a generic 500.
var ErrUpstream = errors.New("unable to get answer")

// DefaultTimeout bounds the round trip when the config does not set one.
const DefaultTimeout = 30 * time.Second

// maxAnswerBody caps how much of the upstream response is read.
const maxAnswerBody = 1 << 20

// Client calls the external answer service.
type Client struct {
	// URL is the full endpoint, e.g. "http://as1.example.net:5000/getanswer".
	URL string
	// Username and Password are the fixed basic-auth credentials from config.
	Username string
	Password string

	// HTTPClient is the underlying client; its Timeout bounds the call.
	HTTPClient *http.Client
}

// New constructs a Client with the given endpoint, credentials, and timeout.
// A non-positive timeout falls back to DefaultTimeout.
func New(url, username, password string, timeout time.Duration) *Client {
	if timeout <= 0 {
		timeout = DefaultTimeout
	}
	return &Client{
		URL:        url,
		Username:   username,
		Password:   password,
		HTTPClient: &http.Client{Timeout: timeout},
	}
}

// askRequest is the upstream request shape.
type askRequest struct {
	Question string `json:"question"`
}

// askResponse is the upstream response shape.
type askResponse struct {
	Answer string `json:"answer"`
}

// Ask sends question to the answer service and returns the answer text.
// The context governs cancellation in addition to the client timeout.
func (c *Client) Ask(ctx context.Context, question string) (string, error) {
	body, err := json.Marshal(askRequest{Question: question})
	if err != nil {
		return "", fmt.Errorf("encode question: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.URL, bytes.NewReader(body))
	if err != nil {
		return "", fmt.Errorf("build request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")
	req.SetBasicAuth(c.Username, c.Password)

	resp, err := c.httpClient().Do(req)
	if err != nil {
		return "", ErrUpstream
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		// Drain a bounded amount so the connection can be reused.
		io.CopyN(io.Discard, resp.Body, maxAnswerBody)
		return "", ErrUpstream
	}

	var out askResponse
	if err := json.NewDecoder(io.LimitReader(resp.Body, maxAnswerBody)).Decode(&out); err != nil {
		return "", ErrUpstream
	}
	return out.Answer, nil
}

func (c *Client) httpClient() *http.Client {
	if c.HTTPClient != nil {
		return c.HTTPClient
	}
	return &http.Client{Timeout: DefaultTimeout}
}
