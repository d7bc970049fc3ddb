// Package auth implements the OAuth 2.0 client-credentials flow against a
// VTN's /auth/token endpoint, the token and error payloads it exchanges,
// and an optional on-disk token cache.
package auth
