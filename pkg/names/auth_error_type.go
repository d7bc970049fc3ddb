package names

// AuthErrorType is an OAuth 2.0 token error code as returned by the VTN's
// /auth/token endpoint (RFC 6749 section 5.2). Canonical spellings are
// lowercase, unlike the other predefined strings.
type AuthErrorType string

// Well-known auth error types.
const (
	AuthErrorInvalidRequest       AuthErrorType = "invalid_request"
	AuthErrorInvalidClient        AuthErrorType = "invalid_client"
	AuthErrorInvalidGrant         AuthErrorType = "invalid_grant"
	AuthErrorInvalidScope         AuthErrorType = "invalid_scope"
	AuthErrorUnauthorizedClient   AuthErrorType = "unauthorized_client"
	AuthErrorUnsupportedGrantType AuthErrorType = "unsupported_grant_type"
	AuthErrorServerError          AuthErrorType = "server_error"
)

var authErrorTypes = newRegistry(
	string(AuthErrorInvalidRequest),
	string(AuthErrorInvalidClient),
	string(AuthErrorInvalidGrant),
	string(AuthErrorInvalidScope),
	string(AuthErrorUnauthorizedClient),
	string(AuthErrorUnsupportedGrantType),
	string(AuthErrorServerError),
)

// ParseAuthErrorType parses an auth error code, interning unknown spellings.
func ParseAuthErrorType(s string) (AuthErrorType, error) {
	c, err := authErrorTypes.parse(s)
	return AuthErrorType(c), err
}

func (a AuthErrorType) String() string                  { return string(a) }
func (a AuthErrorType) Equal(other AuthErrorType) bool  { return equalFold(string(a), string(other)) }
func (a AuthErrorType) Compare(other AuthErrorType) int { return compareFold(string(a), string(other)) }
func (a AuthErrorType) IsWellKnown() bool               { return authErrorTypes.isWellKnown(string(a)) }
func (a AuthErrorType) MarshalText() ([]byte, error)    { return []byte(a), nil }

func (a *AuthErrorType) UnmarshalText(text []byte) error {
	parsed, err := ParseAuthErrorType(string(text))
	if err != nil {
		return err
	}
	*a = parsed
	return nil
}
