package httpclient

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	"github.com/tidwall/gjson"
)

// ClientOption configures a Client via functional options.
type ClientOption func(*Client)

// Client fetches JSON documents over HTTP so suites can be checked
// against a live endpoint. NewClient() with zero options is usable.
type Client struct {
	token      string
	headers    http.Header
	maxBody    int64
	httpClient *http.Client
}

// NewClient creates a document client. Pass ClientOption values to
// override defaults.
func NewClient(opts ...ClientOption) *Client {
	c := &Client{
		headers: http.Header{},
		maxBody: 10 << 20,
		httpClient: &http.Client{
			Timeout: 30 * time.Second,
		},
	}
	for _, o := range opts {
		o(c)
	}
	return c
}

// WithTimeout overrides the default HTTP client timeout.
func WithTimeout(d time.Duration) ClientOption {
	return func(c *Client) { c.httpClient.Timeout = d }
}

// WithToken sends the token as a bearer Authorization header.
func WithToken(token string) ClientOption {
	return func(c *Client) { c.token = token }
}

// WithHeader adds a request header. It may be given more than once.
func WithHeader(key, value string) ClientOption {
	return func(c *Client) { c.headers.Add(key, value) }
}

// WithMaxBody limits how many bytes of a response body are read.
func WithMaxBody(n int64) ClientOption {
	return func(c *Client) { c.maxBody = n }
}

// WithHTTPClient replaces the underlying http.Client.
func WithHTTPClient(hc *http.Client) ClientOption {
	return func(c *Client) { c.httpClient = hc }
}

// Response is a fetched document.
type Response struct {
	URL        string
	StatusCode int
	Header     http.Header
	Body       []byte
}

// Fetch performs a GET request and returns the response whatever
// its status code. Only transport failures are errors.
func (c *Client) Fetch(ctx context.Context, url string) (*Response, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return nil, fmt.Errorf("create request: %w", err)
	}
	req.Header.Set("Accept", "application/json")
	for k, vs := range c.headers {
		for _, v := range vs {
			req.Header.Add(k, v)
		}
	}
	if c.token != "" {
		req.Header.Set("Authorization", "Bearer "+c.token)
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("request failed: %w", err)
	}
	defer resp.Body.Close()

	data, err := io.ReadAll(io.LimitReader(resp.Body, c.maxBody))
	if err != nil {
		return nil, fmt.Errorf("read response: %w", err)
	}

	return &Response{
		URL:        url,
		StatusCode: resp.StatusCode,
		Header:     resp.Header,
		Body:       data,
	}, nil
}

// OK reports whether the status code is 2xx.
func (r *Response) OK() bool {
	return r.StatusCode >= 200 && r.StatusCode < 300
}

// Envelope wraps the response in a JSON object so suites can assert
// on the status and headers as well as the body:
//
//	{"url": ..., "status": 200, "headers": {"content-type": ...}, "body": ...}
//
// Header names are lower-cased and keep their first value. A body
// that is not valid JSON is embedded as a string.
func (r *Response) Envelope() ([]byte, error) {
	headers := make(map[string]string, len(r.Header))
	for k, vs := range r.Header {
		if len(vs) > 0 {
			headers[strings.ToLower(k)] = vs[0]
		}
	}

	var body any = string(r.Body)
	if len(r.Body) > 0 && gjson.ValidBytes(r.Body) {
		body = json.RawMessage(r.Body)
	}

	return json.Marshal(struct {
		URL     string            `json:"url"`
		Status  int               `json:"status"`
		Headers map[string]string `json:"headers"`
		Body    any               `json:"body"`
	}{r.URL, r.StatusCode, headers, body})
}

// IsURL reports whether s looks like an http or https URL.
func IsURL(s string) bool {
	return strings.HasPrefix(s, "http://") ||
		strings.HasPrefix(s, "https://")
}
