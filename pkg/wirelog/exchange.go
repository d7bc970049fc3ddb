package wirelog

import "time"

// Exchange describes one HTTP request/response pair.
type Exchange struct {
	// Time is when the request was sent.
	Time time.Time `json:"time"`

	// RequestID correlates retries and log lines for the same call.
	RequestID string `json:"request_id"`

	// Method and Path identify the operation.
	Method string `json:"method"`
	Path   string `json:"path"`

	// Status is the HTTP status code; zero when the request never got a
	// response.
	Status int `json:"status,omitempty"`

	// Duration is how long the exchange took.
	Duration time.Duration `json:"duration"`

	// Error is the transport error, if the exchange failed before a
	// response arrived.
	Error string `json:"error,omitempty"`
}
