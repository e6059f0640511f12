// Package apiclient is a typed client for the education platform REST API.
//
// Every wrapper checks its required inputs before anything touches the
// network, fills documented defaults for optional list options, builds the
// query string with package query and returns the decoded response envelope
// as the backend sent it. The client keeps no per-call state and is safe for
// concurrent use. It never retries; cancellation and deadlines come from the
// context and from the underlying http.Client.
package apiclient

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"
	"github.com/klauspost/compress/gzhttp"

	"github.com/edu-platform/educlient/shared/api"
	"github.com/edu-platform/educlient/shared/auth"
	internal_errors "github.com/edu-platform/educlient/shared/errors"
	"github.com/edu-platform/educlient/shared/logger"
	"github.com/edu-platform/educlient/shared/metrics"
)

const (
	RequestIDHeader  = "X-Request-ID"
	defaultUserAgent = "educlient/1.0"
	maxErrorBody     = 64 << 10
)

var ErrNoTokenSource = fmt.Errorf("authenticated call without a token source: %w", auth.ErrNoToken)

// Client handles all communication with the platform API.
type Client struct {
	BaseURL    string
	HttpClient *http.Client
	Tokens     auth.TokenSource
	UserAgent  string

	validate *validator.Validate
}

type Option func(*options)

type options struct {
	httpClient  *http.Client
	timeout     time.Duration
	tokens      auth.TokenSource
	userAgent   string
	compression bool
	metrics     bool
}

// WithHTTPClient makes the client send requests through hc.
// hc is copied, so later options never modify the caller's value.
func WithHTTPClient(hc *http.Client) Option {
	return func(o *options) { o.httpClient = hc }
}

func WithTimeout(d time.Duration) Option {
	return func(o *options) { o.timeout = d }
}

// WithTokenSource sets the collaborator that supplies bearer tokens.
func WithTokenSource(ts auth.TokenSource) Option {
	return func(o *options) { o.tokens = ts }
}

func WithUserAgent(ua string) Option {
	return func(o *options) { o.userAgent = ua }
}

// WithCompression negotiates gzip responses transparently.
func WithCompression() Option {
	return func(o *options) { o.compression = true }
}

// WithMetrics records Prometheus metrics for every request.
func WithMetrics() Option {
	return func(o *options) { o.metrics = true }
}

// New creates a client for the API served at baseURL.
func New(baseURL string, opts ...Option) *Client {
	o := options{userAgent: defaultUserAgent}
	for _, opt := range opts {
		opt(&o)
	}

	hc := &http.Client{}
	if o.httpClient != nil {
		clone := *o.httpClient
		hc = &clone
	}
	if o.timeout > 0 {
		hc.Timeout = o.timeout
	}
	transport := hc.Transport
	if transport == nil {
		transport = http.DefaultTransport
	}
	if o.compression {
		transport = gzhttp.Transport(transport)
	}
	if o.metrics {
		transport = metrics.InstrumentTransport(transport)
	}
	hc.Transport = transport

	return &Client{
		BaseURL:    strings.TrimRight(strings.TrimSpace(baseURL), "/"),
		HttpClient: hc,
		Tokens:     o.tokens,
		UserAgent:  o.userAgent,
		validate:   newValidator(),
	}
}

// call describes one request. route is the path template used for metric
// labels and logs; path is the concrete, already escaped path.
type call struct {
	method string
	route  string
	path   string
	query  string
	body   any
	form   *multipartBody
	auth   bool
	out    any
	what   string
}

// do is the single, unified helper for making API requests.
func (c *Client) do(ctx context.Context, cl call) error {
	var token string
	if cl.auth {
		var err error
		if token, err = c.token(ctx); err != nil {
			return err
		}
	}

	var (
		body        io.Reader
		contentType string
	)
	switch {
	case cl.form != nil:
		body, contentType = cl.form.reader()
	case cl.body != nil:
		jsonBody, err := json.Marshal(cl.body)
		if err != nil {
			return fmt.Errorf("failed to marshal %s data: %w", cl.what, err)
		}
		body, contentType = bytes.NewReader(jsonBody), "application/json"
	}

	ctx = metrics.WithRoute(ctx, cl.route)
	req, err := http.NewRequestWithContext(ctx, cl.method, c.BaseURL+cl.path+cl.query, body)
	if err != nil {
		if cl.form != nil {
			cl.form.abort(err)
		}
		return fmt.Errorf("failed to create API request: %w", err)
	}
	requestID := uuid.NewString()
	req.Header.Set("Accept", "application/json")
	req.Header.Set(RequestIDHeader, requestID)
	if contentType != "" {
		req.Header.Set("Content-Type", contentType)
	}
	if c.UserAgent != "" {
		req.Header.Set("User-Agent", c.UserAgent)
	}
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}

	start := time.Now()
	resp, err := c.HttpClient.Do(req)
	if err != nil {
		logger.Log.Debug("api request failed", "method", cl.method, "route", cl.route, "request_id", requestID, "error", err)
		return fmt.Errorf("backend unavailable: %w", err)
	}
	defer resp.Body.Close()

	logger.Log.Debug("api request",
		"method", cl.method,
		"route", cl.route,
		"status", resp.StatusCode,
		"request_id", requestID,
		"duration", time.Since(start),
	)

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		bodyBytes, _ := io.ReadAll(io.LimitReader(resp.Body, maxErrorBody))
		msg := strings.TrimSpace(string(bodyBytes))
		if msg == "" {
			msg = http.StatusText(resp.StatusCode)
		}
		return &internal_errors.ErrorWithStatusCode{
			Message:    fmt.Sprintf("failed to %s: %s", cl.what, msg),
			StatusCode: resp.StatusCode,
		}
	}

	if cl.out == nil || resp.StatusCode == http.StatusNoContent {
		return nil
	}
	if err := json.NewDecoder(resp.Body).Decode(cl.out); err != nil {
		return fmt.Errorf("cannot decode %s response: %w", cl.what, err)
	}
	return nil
}

func (c *Client) token(ctx context.Context) (string, error) {
	if c.Tokens == nil {
		return "", ErrNoTokenSource
	}
	token, err := c.Tokens.Token(ctx)
	if err != nil {
		return "", fmt.Errorf("failed to get access token: %w", err)
	}
	if token == "" {
		return "", auth.ErrNoToken
	}
	return token, nil
}

// send performs cl and decodes the envelope into a Response[T].
func send[T any](ctx context.Context, c *Client, cl call) (*api.Response[T], error) {
	var out api.Response[T]
	cl.out = &out
	if err := c.do(ctx, cl); err != nil {
		return nil, err
	}
	return &out, nil
}
