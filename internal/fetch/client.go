package fetch

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"time"

	"github.com/google/uuid"

	"github.com/agbru/sampler/internal/logging"
	"github.com/agbru/sampler/internal/orchestration"
)

// DefaultTimeout bounds every request issued by a Client.
const DefaultTimeout = 10 * time.Second

// maxBodyBytes caps how much of a response body is read.
const maxBodyBytes = 4 << 20

// RequestIDHeader carries the per-request correlation ID.
const RequestIDHeader = "X-Request-ID"

// StatusError reports a response outside the 2xx range.
type StatusError struct {
	// StatusCode is the HTTP status of the response.
	StatusCode int
	// Message is the "message" field of a JSON error body, if any.
	Message string
	// URL is the requested address.
	URL string
}

func (e *StatusError) Error() string {
	return fmt.Sprintf("HTTP error! status: %d", e.StatusCode)
}

// Status returns the HTTP status code.
func (e *StatusError) Status() int { return e.StatusCode }

// RemoteMessage returns the message reported in the response body.
func (e *StatusError) RemoteMessage() string { return e.Message }

// Client issues GET requests with a fixed timeout.
type Client struct {
	http          *http.Client
	timeout       time.Duration
	logger        logging.Logger
	weatherURL    string
	randomUserURL string
}

// Option configures a Client during construction.
type Option func(*Client)

// WithTimeout sets the per-request timeout.
func WithTimeout(d time.Duration) Option {
	return func(c *Client) { c.timeout = d }
}

// WithHTTPClient replaces the underlying *http.Client. The Client timeout is
// applied per request on top of any timeout hc already has.
func WithHTTPClient(hc *http.Client) Option {
	return func(c *Client) { c.http = hc }
}

// WithLogger sets the logger used for request diagnostics.
func WithLogger(l logging.Logger) Option {
	return func(c *Client) { c.logger = l }
}

// WithWeatherURL overrides the forecast endpoint base address.
func WithWeatherURL(u string) Option {
	return func(c *Client) {
		if u != "" {
			c.weatherURL = u
		}
	}
}

// WithRandomUserURL overrides the random user endpoint address.
func WithRandomUserURL(u string) Option {
	return func(c *Client) {
		if u != "" {
			c.randomUserURL = u
		}
	}
}

// New creates a Client. The default timeout is DefaultTimeout.
func New(opts ...Option) *Client {
	c := &Client{
		timeout:       DefaultTimeout,
		weatherURL:    DefaultWeatherURL,
		randomUserURL: DefaultRandomUserURL,
	}
	for _, opt := range opts {
		opt(c)
	}
	if c.http == nil {
		c.http = &http.Client{}
	}
	if c.logger == nil {
		c.logger = logging.NewNop()
	}
	if c.timeout <= 0 {
		c.timeout = DefaultTimeout
	}
	return c
}

// Timeout returns the per-request timeout.
func (c *Client) Timeout() time.Duration { return c.timeout }

// JSON returns an operation that fetches url and decodes the JSON body.
// The result is whatever the body holds: an object, an array or a scalar.
func (c *Client) JSON(url string) orchestration.Operation[any] {
	return orchestration.NewOperation("data from "+url, func(ctx context.Context) (any, error) {
		var data any
		if err := c.getJSON(ctx, url, &data); err != nil {
			return nil, err
		}
		return data, nil
	})
}

// getJSON performs the GET and decodes a 2xx body into out.
func (c *Client) getJSON(ctx context.Context, url string, out any) error {
	ctx, cancel := context.WithTimeout(ctx, c.timeout)
	defer cancel()

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, http.NoBody)
	if err != nil {
		return err
	}
	requestID := uuid.NewString()
	req.Header.Set("Accept", "application/json")
	req.Header.Set(RequestIDHeader, requestID)

	c.logger.Debug("fetching", logging.String("url", url), logging.String("request_id", requestID))

	resp, err := c.http.Do(req)
	if err != nil {
		return err
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(io.LimitReader(resp.Body, maxBodyBytes))
	if err != nil {
		return err
	}

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return &StatusError{StatusCode: resp.StatusCode, Message: bodyMessage(body), URL: url}
	}

	if err := json.Unmarshal(body, out); err != nil {
		return fmt.Errorf("decode response: %w", err)
	}
	return nil
}

// bodyMessage extracts {"message": "..."} from an error body.
func bodyMessage(body []byte) string {
	var payload struct {
		Message string `json:"message"`
	}
	if json.Unmarshal(body, &payload) != nil {
		return ""
	}
	return payload.Message
}

// Sleep returns an operation that completes after d, or fails early when
// ctx is done.
func Sleep(d time.Duration) orchestration.Operation[struct{}] {
	return orchestration.NewOperation(fmt.Sprintf("delay of %s", d), func(ctx context.Context) (struct{}, error) {
		timer := time.NewTimer(d)
		defer timer.Stop()
		select {
		case <-timer.C:
			return struct{}{}, nil
		case <-ctx.Done():
			return struct{}{}, ctx.Err()
		}
	})
}
