// Package http wraps the single transport capability the client needs: POST
// form data to a named endpoint, read back status and JSON body, and classify
// non-success statuses into the typed error taxonomy.
package http

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	nethttp "net/http"
	"net/url"
	"strings"
	"time"

	"github.com/hashicorp/go-cleanhttp"
	"github.com/rs/zerolog"

	"github.com/teamkit-io/teamleader/internal/constants"
	"github.com/teamkit-io/teamleader/pkg/teamleader"
)

// Client issues form-encoded POST requests against the Teamleader API host.
type Client struct {
	baseURL    string
	httpClient *nethttp.Client
	userAgent  string
	logger     zerolog.Logger
	debug      bool
}

// Option configures the Client.
type Option func(*Client)

// WithLogger sets the logger used for debug output.
func WithLogger(logger zerolog.Logger) Option {
	return func(c *Client) {
		c.logger = logger
	}
}

// WithDebug enables request/response logging.
func WithDebug(debug bool) Option {
	return func(c *Client) {
		c.debug = debug
	}
}

// WithUserAgent overrides the User-Agent header.
func WithUserAgent(userAgent string) Option {
	return func(c *Client) {
		c.userAgent = userAgent
	}
}

// WithHTTPClient replaces the underlying HTTP client.
func WithHTTPClient(httpClient *nethttp.Client) Option {
	return func(c *Client) {
		c.httpClient = httpClient
	}
}

// WithTimeout bounds each round trip. Ignored after WithHTTPClient.
func WithTimeout(timeout time.Duration) Option {
	return func(c *Client) {
		c.httpClient.Timeout = timeout
	}
}

// NewClient creates a transport client for the given API host.
func NewClient(baseURL string, opts ...Option) *Client {
	httpClient := cleanhttp.DefaultPooledClient()
	httpClient.Timeout = constants.DefaultHTTPTimeout

	client := &Client{
		baseURL:    strings.TrimSuffix(baseURL, "/"),
		httpClient: httpClient,
		userAgent:  constants.DefaultUserAgent,
		logger:     zerolog.Nop(),
	}

	for _, opt := range opts {
		opt(client)
	}

	return client
}

// Response is the raw outcome of one round trip.
type Response struct {
	StatusCode int
	Body       []byte
}

// PostForm issues one form-encoded POST to <base>/api/<endpoint>.php and
// returns the response. Non-200 statuses are returned as typed errors
// alongside the raw response; nothing is retried.
func (c *Client) PostForm(ctx context.Context, endpoint string, data url.Values) (*Response, error) {
	endpointURL := fmt.Sprintf("%s/api/%s.php", c.baseURL, endpoint)

	req, err := nethttp.NewRequestWithContext(ctx, nethttp.MethodPost, endpointURL, strings.NewReader(data.Encode()))
	if err != nil {
		return nil, fmt.Errorf("creating request: %w", err)
	}

	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")
	req.Header.Set("Accept", "application/json")

	if c.userAgent != "" {
		req.Header.Set("User-Agent", c.userAgent)
	}

	if c.debug {
		c.logger.Debug().
			Str("endpoint", endpoint).
			Str("url", endpointURL).
			Msg("HTTP request")
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("posting to %s: %w", endpoint, err)
	}

	defer func() {
		_ = resp.Body.Close()
	}()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("reading response body: %w", err)
	}

	response := &Response{StatusCode: resp.StatusCode, Body: body}

	if c.debug {
		c.logger.Debug().
			Str("endpoint", endpoint).
			Int("status", resp.StatusCode).
			Int("bytes", len(body)).
			Msg("HTTP response")
	}

	if resp.StatusCode != nethttp.StatusOK {
		return response, classifyStatus(resp.StatusCode, body)
	}

	return response, nil
}

// classifyStatus maps the vendor's status code contract onto the error
// taxonomy. The body's reason field becomes the error message.
func classifyStatus(status int, body []byte) error {
	apiErr := teamleader.APIError{
		StatusCode: status,
		Reason:     reasonFromBody(body),
		Body:       body,
	}

	switch status {
	case nethttp.StatusUnauthorized:
		return &teamleader.AuthenticationError{APIError: apiErr}
	case nethttp.StatusBadRequest:
		return &teamleader.BadRequestError{APIError: apiErr}
	case constants.StatusRateLimited:
		return &teamleader.RateLimitExceededError{APIError: apiErr}
	default:
		return &teamleader.UnknownAPIError{APIError: apiErr}
	}
}

func reasonFromBody(body []byte) string {
	var payload struct {
		Reason string `json:"reason"`
	}

	err := json.Unmarshal(body, &payload)
	if err == nil && payload.Reason != "" {
		return payload.Reason
	}

	return strings.TrimSpace(string(body))
}
