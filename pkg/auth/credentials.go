package auth

import (
	"time"
)

// ClientCredentialResponse is the token endpoint's success payload
// (RFC 6749 section 5.1, snake_case keys).
type ClientCredentialResponse struct {
	AccessToken string `json:"access_token"`
	TokenType   string `json:"token_type"`

	// ExpiresIn is the token lifetime in seconds; zero means the VTN did
	// not say.
	ExpiresIn int64 `json:"expires_in,omitempty"`

	RefreshToken string `json:"refresh_token,omitempty"`
	Scope        string `json:"scope,omitempty"`
}

// ExpiryFrom returns the absolute expiry given the time the response was
// received, or the zero time when no lifetime was provided.
func (c ClientCredentialResponse) ExpiryFrom(received time.Time) time.Time {
	if c.ExpiresIn <= 0 {
		return time.Time{}
	}
	return received.Add(time.Duration(c.ExpiresIn) * time.Second)
}
