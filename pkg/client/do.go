package client

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strconv"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/oadr3-protocol/oadr3-go/pkg/auth"
	"github.com/oadr3-protocol/oadr3-go/pkg/model"
	"github.com/oadr3-protocol/oadr3-go/pkg/wirelog"
)

// StatusError is returned for non-2xx responses that carry no RFC 7807
// body.
type StatusError struct {
	StatusCode int
	Body       string
}

// Error implements the error interface.
func (e *StatusError) Error() string {
	if e.Body != "" {
		return fmt.Sprintf("vtn returned status %d: %s", e.StatusCode, e.Body)
	}
	return fmt.Sprintf("vtn returned status %d", e.StatusCode)
}

// maxErrorBody bounds how much of an error response is kept for messages.
const maxErrorBody = 4 << 10

// doJSON sends one request, retrying idempotent methods on transient
// failures, and decodes a 2xx response body into out (which may be nil).
func (c *Client) doJSON(ctx context.Context, method, rawURL string, query url.Values, in, out any) error {
	var body []byte
	if in != nil {
		var err error
		if body, err = json.Marshal(in); err != nil {
			return fmt.Errorf("encoding request body: %w", err)
		}
	}
	if len(query) > 0 {
		rawURL += "?" + query.Encode()
	}

	idempotent := method == http.MethodGet || method == http.MethodDelete
	attempts := c.retry.Attempts
	if !idempotent {
		attempts = 1
	}

	bo := newBackoff(c.retry)
	var lastErr error
	for attempt := 1; attempt <= attempts; attempt++ {
		retryable, err := c.doOnce(ctx, method, rawURL, body, out)
		if err == nil {
			return nil
		}
		lastErr = err
		if !retryable || attempt == attempts {
			break
		}

		delay := bo.next()
		if ra := retryAfter(err); ra > delay {
			delay = ra
		}
		c.logger.Debug("retrying request",
			"method", method, "url", rawURL,
			"attempt", attempt, "delay", delay, "error", err)

		select {
		case <-ctx.Done():
			return ctx.Err()
		case <-time.After(delay):
		}
	}
	return lastErr
}

// doOnce performs a single HTTP exchange. The bool result says whether the
// failure is worth retrying.
func (c *Client) doOnce(ctx context.Context, method, rawURL string, body []byte, out any) (bool, error) {
	var reader io.Reader
	if body != nil {
		reader = bytes.NewReader(body)
	}
	req, err := http.NewRequestWithContext(ctx, method, rawURL, reader)
	if err != nil {
		return false, err
	}
	req.Header.Set("Accept", "application/json")
	req.Header.Set("User-Agent", c.userAgent)
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}

	requestID := uuid.NewString()
	start := time.Now()

	resp, err := c.http.Do(req)
	if err != nil {
		c.record(requestID, method, req.URL, 0, start, err)
		// Transport-level failures (refused, reset, timeout) are retryable.
		return true, fmt.Errorf("%s %s: %w", method, req.URL.Path, err)
	}
	defer resp.Body.Close()

	c.record(requestID, method, req.URL, resp.StatusCode, start, nil)
	c.logger.Debug("vtn request",
		"method", method, "path", req.URL.Path,
		"status", resp.StatusCode, "duration", time.Since(start))

	if resp.StatusCode >= 200 && resp.StatusCode < 300 {
		if out == nil || resp.StatusCode == http.StatusNoContent {
			return false, nil
		}
		if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
			return false, fmt.Errorf("decoding response: %w", err)
		}
		return false, nil
	}

	return retryableStatus(resp.StatusCode), c.errorFromResponse(resp)
}

// errorFromResponse maps a non-2xx response to the most specific error
// type its body allows, keeping any server-mandated Retry-After delay.
func (c *Client) errorFromResponse(resp *http.Response) error {
	body, _ := io.ReadAll(io.LimitReader(resp.Body, maxErrorBody))

	var err error
	var problem model.Problem
	switch {
	case json.Unmarshal(body, &problem) == nil && (problem.Title != "" || problem.Status != 0):
		if problem.Status == 0 {
			problem.Status = resp.StatusCode
		}
		err = &problem
	default:
		if ae := auth.ParseAuthError(body); ae != nil {
			err = ae
		} else {
			err = &StatusError{StatusCode: resp.StatusCode, Body: strings.TrimSpace(string(body))}
		}
	}

	if delay := parseRetryAfter(resp.Header.Get("Retry-After")); delay > 0 {
		return &retryAfterError{err: err, delay: delay}
	}
	return err
}

// retryAfterError carries the Retry-After delay alongside the response
// error without hiding the error's type.
type retryAfterError struct {
	err   error
	delay time.Duration
}

func (e *retryAfterError) Error() string { return e.err.Error() }
func (e *retryAfterError) Unwrap() error { return e.err }

// retryAfter extracts a server-mandated delay from a response error.
func retryAfter(err error) time.Duration {
	var ra *retryAfterError
	if errors.As(err, &ra) {
		return ra.delay
	}
	return 0
}

// parseRetryAfter handles the delay-seconds form of Retry-After.
func parseRetryAfter(v string) time.Duration {
	if v == "" {
		return 0
	}
	secs, err := strconv.Atoi(v)
	if err != nil || secs < 0 {
		return 0
	}
	return time.Duration(secs) * time.Second
}

// retryableStatus reports whether a status code is worth retrying.
func retryableStatus(code int) bool {
	switch code {
	case http.StatusTooManyRequests,
		http.StatusBadGateway,
		http.StatusServiceUnavailable,
		http.StatusGatewayTimeout:
		return true
	}
	return false
}

// record emits a wirelog exchange.
func (c *Client) record(requestID, method string, u *url.URL, status int, start time.Time, err error) {
	ex := wirelog.Exchange{
		Time:      start,
		RequestID: requestID,
		Method:    method,
		Path:      u.Path,
		Status:    status,
		Duration:  time.Since(start),
	}
	if err != nil {
		ex.Error = err.Error()
	}
	c.wireLog.Log(ex)
}
