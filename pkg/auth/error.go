package auth

import (
	"encoding/json"
	"fmt"

	"github.com/oadr3-protocol/oadr3-go/pkg/names"
)

// AuthError is the token endpoint's error payload (RFC 6749 section 5.2).
type AuthError struct {
	Type        names.AuthErrorType `json:"error"`
	Description string              `json:"error_description,omitempty"`
	URI         string              `json:"error_uri,omitempty"`
}

// Error implements the error interface.
func (e *AuthError) Error() string {
	if e.Description != "" {
		return fmt.Sprintf("auth error %s: %s", e.Type, e.Description)
	}
	return fmt.Sprintf("auth error %s", e.Type)
}

// Is makes errors.Is match any AuthError of the same type.
func (e *AuthError) Is(target error) bool {
	other, ok := target.(*AuthError)
	return ok && e.Type.Equal(other.Type)
}

// ParseAuthError decodes a token endpoint error body. It returns nil when
// the body is not an OAuth error payload.
func ParseAuthError(body []byte) *AuthError {
	var ae AuthError
	if err := json.Unmarshal(body, &ae); err != nil || ae.Type == "" {
		return nil
	}
	return &ae
}
