package client

import (
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"net/url"
	"strings"
	"time"

	"golang.org/x/oauth2"

	"github.com/oadr3-protocol/oadr3-go/pkg/version"
	"github.com/oadr3-protocol/oadr3-go/pkg/wirelog"
)

// Config errors.
var ErrMissingBaseURL = errors.New("missing base URL")

// DefaultTimeout bounds a single request when the caller's context doesn't.
const DefaultTimeout = 30 * time.Second

// Config holds the settings for a VTN client.
type Config struct {
	// BaseURL is the root of the VTN's OpenADR 3 API,
	// e.g. "https://vtn.example/openadr3/3.0.1".
	BaseURL string

	// TokenSource authenticates requests. Optional: some test VTNs run
	// without auth.
	TokenSource oauth2.TokenSource

	// HTTPClient is the underlying client. Defaults to one with
	// DefaultTimeout.
	HTTPClient *http.Client

	// Logger receives a Debug line per request. Defaults to slog.Default().
	Logger *slog.Logger

	// WireLog, when set, receives one wirelog.Exchange per request.
	WireLog wirelog.Logger

	// UserAgent overrides the default User-Agent header.
	UserAgent string

	// Retry controls retries of idempotent requests.
	Retry RetryConfig
}

// Client is an OpenADR 3.0 VTN client.
type Client struct {
	base      *url.URL
	http      *http.Client
	logger    *slog.Logger
	wireLog   wirelog.Logger
	userAgent string
	retry     RetryConfig
}

// New creates a VTN client.
func New(cfg Config) (*Client, error) {
	if cfg.BaseURL == "" {
		return nil, ErrMissingBaseURL
	}
	base, err := url.Parse(strings.TrimSuffix(cfg.BaseURL, "/"))
	if err != nil {
		return nil, fmt.Errorf("invalid base URL: %w", err)
	}

	hc := cfg.HTTPClient
	if hc == nil {
		hc = &http.Client{Timeout: DefaultTimeout}
	}
	if cfg.TokenSource != nil {
		// Wrap the transport so every request carries a bearer token.
		wrapped := *hc
		wrapped.Transport = &oauth2.Transport{
			Source: cfg.TokenSource,
			Base:   hc.Transport,
		}
		hc = &wrapped
	}

	logger := cfg.Logger
	if logger == nil {
		logger = slog.Default()
	}

	wl := cfg.WireLog
	if wl == nil {
		wl = wirelog.NoopLogger{}
	}

	ua := cfg.UserAgent
	if ua == "" {
		ua = "oadr3-go (openadr/" + version.Current + ")"
	}

	retry := cfg.Retry
	if retry.Attempts <= 0 {
		retry = DefaultRetryConfig()
	}

	return &Client{
		base:      base,
		http:      hc,
		logger:    logger,
		wireLog:   wl,
		userAgent: ua,
		retry:     retry,
	}, nil
}

// BaseURL returns the configured base URL.
func (c *Client) BaseURL() string { return c.base.String() }

// endpoint builds an absolute URL under the base for the given path
// segments, escaping each one.
func (c *Client) endpoint(segments ...string) string {
	return c.base.JoinPath(segments...).String()
}
