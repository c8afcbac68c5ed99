// Package apiclient is the HTTP client for the remote recruitment API.
//
// Every exported method performs exactly one request. Failures are always
// returned as *Error; successful responses are decoded from either the
// {"success": true, "data": ...} envelope or a bare JSON body.
package apiclient

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"net/url"
	"sort"
	"strings"
	"time"

	jmespath "github.com/jmespath-community/go-jmespath"
	"golang.org/x/oauth2"
)

const (
	// DefaultTokenPath locates the access token in the sign-in response.
	DefaultTokenPath = "token || accessToken || access_token || data.token || data.accessToken || data.access_token"
	defaultTimeout   = 15 * time.Second
	maxBodyBytes     = 4 << 20
)

// Options configures a Client.
type Options struct {
	BaseURL string
	Timeout time.Duration
	// TokenPath is a JMESPath expression evaluated against the sign-in response.
	TokenPath string
	// HTTPClient overrides the base client (tests). Its Transport is reused for
	// authenticated calls.
	HTTPClient *http.Client
	Logger     *slog.Logger
}

// Client talks to the recruitment API.
type Client struct {
	baseURL   string
	http      *http.Client
	tokenPath string
	logger    *slog.Logger
}

// New constructs a Client. BaseURL must be an absolute http(s) URL.
func New(opts Options) (*Client, error) {
	base := strings.TrimRight(strings.TrimSpace(opts.BaseURL), "/")
	u, err := url.Parse(base)
	if err != nil || (u.Scheme != "http" && u.Scheme != "https") || u.Host == "" {
		return nil, fmt.Errorf("api base URL must be an absolute http(s) URL, got %q", opts.BaseURL)
	}

	tokenPath := strings.TrimSpace(opts.TokenPath)
	if tokenPath == "" {
		tokenPath = DefaultTokenPath
	}
	if _, err := jmespath.Compile(tokenPath); err != nil {
		return nil, fmt.Errorf("invalid token path %q: %w", tokenPath, err)
	}

	hc := opts.HTTPClient
	if hc == nil {
		timeout := opts.Timeout
		if timeout <= 0 {
			timeout = defaultTimeout
		}
		hc = &http.Client{Timeout: timeout}
	}

	logger := opts.Logger
	if logger == nil {
		logger = slog.Default()
	}

	return &Client{
		baseURL:   base,
		http:      hc,
		tokenPath: tokenPath,
		logger:    logger.With("component", "apiclient"),
	}, nil
}

// BaseURL returns the configured API root.
func (c *Client) BaseURL() string { return c.baseURL }

// call describes one request.
type call struct {
	method string
	path   string
	token  string // bearer token; empty for public endpoints
	body   any
}

// clientFor returns an http.Client that authenticates with token.
func (c *Client) clientFor(token string) *http.Client {
	if token == "" {
		return c.http
	}
	base := c.http.Transport
	if base == nil {
		base = http.DefaultTransport
	}
	return &http.Client{
		Timeout: c.http.Timeout,
		Transport: &oauth2.Transport{
			Source: oauth2.StaticTokenSource(&oauth2.Token{AccessToken: token, TokenType: "Bearer"}),
			Base:   base,
		},
		CheckRedirect: c.http.CheckRedirect,
		Jar:           c.http.Jar,
	}
}

// send performs the request and returns the raw body of a 2xx response.
func (c *Client) send(ctx context.Context, in call) ([]byte, error) {
	fail := func(status int, err error) *Error {
		return &Error{Method: in.method, Path: in.path, Status: status, Err: err}
	}

	var reader io.Reader
	if in.body != nil {
		buf, err := json.Marshal(in.body)
		if err != nil {
			return nil, fail(0, fmt.Errorf("encode request: %w", err))
		}
		reader = bytes.NewReader(buf)
	}

	req, err := http.NewRequestWithContext(ctx, in.method, c.baseURL+in.path, reader)
	if err != nil {
		return nil, fail(0, fmt.Errorf("create request: %w", err))
	}
	req.Header.Set("Accept", "application/json")
	if in.body != nil {
		req.Header.Set("Content-Type", "application/json")
	}

	start := time.Now()
	resp, err := c.clientFor(in.token).Do(req)
	if err != nil {
		c.logger.WarnContext(ctx, "api request failed",
			"method", in.method, "path", in.path, "error", err)
		return nil, fail(0, fmt.Errorf("send request: %w", err))
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(io.LimitReader(resp.Body, maxBodyBytes))
	if err != nil {
		return nil, fail(resp.StatusCode, fmt.Errorf("read response: %w", err))
	}

	c.logger.DebugContext(ctx, "api request",
		"method", in.method,
		"path", in.path,
		"status", resp.StatusCode,
		"duration_ms", time.Since(start).Milliseconds())

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		msg, code := parseErrorBody(body)
		return nil, &Error{Method: in.method, Path: in.path, Status: resp.StatusCode, Message: msg, Code: code}
	}

	if failed, msg, code := envelopeFailure(body); failed {
		// Some endpoints answer 200 with {"success": false}.
		return nil, &Error{
			Method:  in.method,
			Path:    in.path,
			Status:  http.StatusUnprocessableEntity,
			Message: msg,
			Code:    code,
		}
	}
	return body, nil
}

// do performs the call and decodes the response data into out (when non-nil).
func (c *Client) do(ctx context.Context, in call, out any) error {
	body, err := c.send(ctx, in)
	if err != nil {
		return err
	}
	if out == nil {
		return nil
	}
	data := unwrapEnvelope(body)
	if len(data) == 0 {
		return nil
	}
	if err := json.Unmarshal(data, out); err != nil {
		return &Error{Method: in.method, Path: in.path, Err: fmt.Errorf("decode response: %w", err)}
	}
	return nil
}

// getList performs a GET and decodes a list. Lists may be bare arrays or
// wrapped in an object such as {"vacancies": [...]} or {"items": [...]}.
func getList[T any](ctx context.Context, c *Client, token, path string) ([]T, error) {
	in := call{method: http.MethodGet, path: path, token: token}
	body, err := c.send(ctx, in)
	if err != nil {
		return nil, err
	}
	data := listPayload(unwrapEnvelope(body))
	out := []T{}
	if len(data) == 0 {
		return out, nil
	}
	if err := json.Unmarshal(data, &out); err != nil {
		return nil, &Error{Method: in.method, Path: in.path, Err: fmt.Errorf("decode list: %w", err)}
	}
	return out, nil
}

// envelope is the API's optional response wrapper.
type envelope struct {
	Success *bool           `json:"success"`
	Data    json.RawMessage `json:"data"`
}

// unwrapEnvelope returns the "data" member of an envelope, or body unchanged
// when body is not an envelope.
func unwrapEnvelope(body []byte) []byte {
	trimmed := bytes.TrimSpace(body)
	if len(trimmed) == 0 || trimmed[0] != '{' {
		return trimmed
	}
	var env envelope
	if err := json.Unmarshal(trimmed, &env); err != nil || env.Success == nil {
		return trimmed
	}
	if bytes.Equal(bytes.TrimSpace(env.Data), []byte("null")) {
		return nil
	}
	return bytes.TrimSpace(env.Data)
}

// envelopeFailure reports whether body is {"success": false, ...}.
func envelopeFailure(body []byte) (bool, string, string) {
	trimmed := bytes.TrimSpace(body)
	if len(trimmed) == 0 || trimmed[0] != '{' {
		return false, "", ""
	}
	var env envelope
	if err := json.Unmarshal(trimmed, &env); err != nil || env.Success == nil || *env.Success {
		return false, "", ""
	}
	msg, code := parseErrorBody(trimmed)
	return true, msg, code
}

// listPayload picks the array out of a wrapped list response.
func listPayload(data []byte) []byte {
	if len(data) == 0 || data[0] != '{' {
		return data
	}
	var obj map[string]json.RawMessage
	if err := json.Unmarshal(data, &obj); err != nil {
		return data
	}
	keys := make([]string, 0, len(obj))
	for k := range obj {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	for _, k := range keys {
		v := bytes.TrimSpace(obj[k])
		if len(v) > 0 && v[0] == '[' {
			return v
		}
	}
	return data
}

// pathf builds a path escaping each argument as a path segment.
func pathf(format string, ids ...string) string {
	args := make([]any, len(ids))
	for i, id := range ids {
		args[i] = url.PathEscape(id)
	}
	return fmt.Sprintf(format, args...)
}

// AsError returns the *Error in err's chain, if any.
func AsError(err error) (*Error, bool) {
	var apiErr *Error
	if errors.As(err, &apiErr) {
		return apiErr, true
	}
	return nil, false
}

// IsUnauthorized reports whether the API rejected the caller's token.
func IsUnauthorized(err error) bool {
	apiErr, ok := AsError(err)
	return ok && apiErr.Status == http.StatusUnauthorized
}
