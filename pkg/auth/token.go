package auth

import (
	"context"
	"errors"
	"sync"

	"golang.org/x/oauth2"
	"golang.org/x/oauth2/clientcredentials"
)

// Config holds the client-credentials settings for a VTN.
type Config struct {
	// TokenURL is the VTN's token endpoint, typically <base>/auth/token.
	TokenURL string

	// ClientID and ClientSecret identify this client to the VTN.
	ClientID     string
	ClientSecret string

	// Scopes to request, if the VTN uses them.
	Scopes []string
}

// Config errors.
var (
	ErrMissingTokenURL = errors.New("missing token URL")
	ErrMissingClientID = errors.New("missing client ID")
)

// Validate checks the config for the fields the flow cannot run without.
func (c Config) Validate() error {
	if c.TokenURL == "" {
		return ErrMissingTokenURL
	}
	if c.ClientID == "" {
		return ErrMissingClientID
	}
	return nil
}

// TokenSource returns an auto-refreshing token source running the
// client-credentials grant against the VTN. The context is used for every
// token request the source makes.
func TokenSource(ctx context.Context, cfg Config) (oauth2.TokenSource, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	cc := &clientcredentials.Config{
		ClientID:     cfg.ClientID,
		ClientSecret: cfg.ClientSecret,
		TokenURL:     cfg.TokenURL,
		Scopes:       cfg.Scopes,
	}
	return cc.TokenSource(ctx), nil
}

// CachedTokenSource wraps a token source with an on-disk store: the cached
// token is used while valid, and refreshed tokens are written back.
func CachedTokenSource(base oauth2.TokenSource, store *TokenStore) oauth2.TokenSource {
	cached, err := store.Load()
	if err == nil && cached != nil {
		base = oauth2.ReuseTokenSource(cached, base)
	}
	return &persistingSource{base: base, store: store}
}

// persistingSource saves every new token it sees. Token may be called
// concurrently, one call per in-flight request.
type persistingSource struct {
	base  oauth2.TokenSource
	store *TokenStore

	mu   sync.Mutex
	last string
}

func (p *persistingSource) Token() (*oauth2.Token, error) {
	tok, err := p.base.Token()
	if err != nil {
		return nil, err
	}

	p.mu.Lock()
	fresh := tok.AccessToken != p.last
	if fresh {
		p.last = tok.AccessToken
	}
	p.mu.Unlock()

	if fresh {
		// Cache write failures must not break the request path.
		_ = p.store.Save(tok)
	}
	return tok, nil
}
