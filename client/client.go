// Package client is an HTTP client for the wallet-api daemon. Each method
// maps one wallet operation onto one HTTP call; amounts cross the wire in
// atomic units and are converted to display units on the way out.
package client

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"strconv"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/shopspring/decimal"
)

const (
	defaultHost      = "127.0.0.1"
	defaultPort      = 8070
	defaultTimeout   = 30 * time.Second
	defaultDivisor   = 100000000
	defaultUserAgent = "walletapi-go/1.0.0"

	apiKeyHeader = "X-API-KEY"
)

// defaultFee is 0.1 display units, the daemon's recommended network fee.
var defaultFee = decimal.New(1, -1)

// Config holds the connection and denomination settings for a Client.
// APIKey is the only field without a default: every request must be
// authenticated, so construction fails without one.
type Config struct {
	Host    string        // wallet-api host, default "127.0.0.1"
	Port    int           // wallet-api port, default 8070
	Timeout time.Duration // per-request timeout, default 30s
	TLS     bool          // use https, default false
	APIKey  string        `validate:"required"` // value of the X-API-KEY header

	// DefaultMixin is the mixin applied to sends when the caller does not
	// supply one. Nil means the field is omitted from payloads and the
	// daemon picks the network default.
	DefaultMixin *uint64 `validate:"-"`

	// DefaultFee is the fee (in display units) applied to sends when the
	// caller does not supply one. Nil defaults to 0.1.
	DefaultFee *decimal.Decimal `validate:"-"`

	// DecimalDivisor converts atomic amounts to display amounts. Defaults
	// to 100000000 and must be positive.
	DecimalDivisor int64 `validate:"gt=0"`

	// DefaultUnlockTime is the unlock time applied to sends when the
	// caller does not supply one.
	DefaultUnlockTime uint64

	UserAgent string // User-Agent header, default "walletapi-go/<version>"

	HTTPClient *http.Client `validate:"-"` // optional, default uses Timeout
	Logger     *slog.Logger `validate:"-"` // optional, default discards
	Metrics    *Metrics     `validate:"-"` // optional, nil records nothing
}

// Client talks to a single wallet-api daemon. It holds no mutable state
// beyond its configuration and is safe for concurrent use.
type Client struct {
	baseURL           string
	apiKey            string
	userAgent         string
	defaultMixin      *uint64
	defaultFee        decimal.Decimal
	divisor           decimal.Decimal
	defaultUnlockTime uint64
	httpClient        *http.Client
	logger            *slog.Logger
	metrics           *Metrics
}

// NewClient creates a wallet-api client. Missing optional fields are filled
// with documented defaults; a missing APIKey or a non-positive
// DecimalDivisor is a configuration error.
func NewClient(cfg Config) (*Client, error) {
	if cfg.Host == "" {
		cfg.Host = defaultHost
	}
	if cfg.Port == 0 {
		cfg.Port = defaultPort
	}
	if cfg.Timeout == 0 {
		cfg.Timeout = defaultTimeout
	}
	if cfg.DecimalDivisor == 0 {
		cfg.DecimalDivisor = defaultDivisor
	}
	if cfg.UserAgent == "" {
		cfg.UserAgent = defaultUserAgent
	}

	if err := validator.New().Struct(cfg); err != nil {
		return nil, fmt.Errorf("invalid config: %w", err)
	}

	fee := defaultFee
	if cfg.DefaultFee != nil {
		fee = *cfg.DefaultFee
	}

	httpClient := cfg.HTTPClient
	if httpClient == nil {
		httpClient = &http.Client{Timeout: cfg.Timeout}
	}
	logger := cfg.Logger
	if logger == nil {
		logger = slog.New(slog.NewJSONHandler(io.Discard, nil))
	}

	scheme := "http"
	if cfg.TLS {
		scheme = "https"
	}

	return &Client{
		baseURL:           fmt.Sprintf("%s://%s:%d", scheme, cfg.Host, cfg.Port),
		apiKey:            cfg.APIKey,
		userAgent:         cfg.UserAgent,
		defaultMixin:      cfg.DefaultMixin,
		defaultFee:        fee,
		divisor:           decimal.NewFromInt(cfg.DecimalDivisor),
		defaultUnlockTime: cfg.DefaultUnlockTime,
		httpClient:        httpClient,
		logger:            logger,
		metrics:           cfg.Metrics,
	}, nil
}

// do performs one HTTP round trip. A nil body sends no payload; a nil out
// discards the response body. Non-2xx responses and transport failures come
// back as *APIError.
func (c *Client) do(ctx context.Context, method, path string, body, out any) error {
	if path == "" {
		return &ValidationError{Param: "path", Reason: "must not be empty"}
	}

	var reader io.Reader
	if body != nil {
		b, err := json.Marshal(body)
		if err != nil {
			return fmt.Errorf("failed to marshal request: %w", err)
		}
		reader = bytes.NewReader(b)
	}

	req, err := http.NewRequestWithContext(ctx, method, c.baseURL+path, reader)
	if err != nil {
		return fmt.Errorf("failed to create request: %w", err)
	}
	req.Header.Set(apiKeyHeader, c.apiKey)
	req.Header.Set("User-Agent", c.userAgent)
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}

	start := time.Now()
	resp, err := c.httpClient.Do(req)
	if err != nil {
		c.metrics.recordRequest(method, "error", time.Since(start))
		return transportError(err)
	}
	defer resp.Body.Close()
	c.metrics.recordRequest(method, strconv.Itoa(resp.StatusCode), time.Since(start))

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return c.parseErrorResponse(resp)
	}

	if out != nil {
		if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
			return fmt.Errorf("failed to decode response: %w", err)
		}
	}

	c.logger.DebugContext(ctx, "wallet-api request completed",
		"method", method,
		"path", path,
		"status", resp.StatusCode,
	)
	return nil
}

func (c *Client) get(ctx context.Context, path string, out any) error {
	return c.do(ctx, http.MethodGet, path, nil, out)
}

func (c *Client) post(ctx context.Context, path string, body, out any) error {
	return c.do(ctx, http.MethodPost, path, body, out)
}

func (c *Client) put(ctx context.Context, path string, body any) error {
	return c.do(ctx, http.MethodPut, path, body, nil)
}

func (c *Client) del(ctx context.Context, path string) error {
	return c.do(ctx, http.MethodDelete, path, nil, nil)
}

// parseErrorResponse classifies a non-2xx response, surfacing the daemon's
// errorMessage field when it sends one.
func (c *Client) parseErrorResponse(resp *http.Response) error {
	var errResp struct {
		ErrorMessage string `json:"errorMessage"`
	}

	body, _ := io.ReadAll(resp.Body)
	detail := string(body)
	if err := json.Unmarshal(body, &errResp); err == nil && errResp.ErrorMessage != "" {
		detail = errResp.ErrorMessage
	}

	return classify(resp.StatusCode, detail)
}

// Int returns a pointer to v, for optional payload fields.
func Int(v int) *int { return &v }

// Uint64 returns a pointer to v, for optional payload fields.
func Uint64(v uint64) *uint64 { return &v }

// Bool returns a pointer to v, for optional payload fields.
func Bool(v bool) *bool { return &v }
