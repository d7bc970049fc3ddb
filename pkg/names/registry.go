package names

import (
	"errors"
	"strings"
	"sync"
)

// ErrEmptyName is returned when parsing an empty or blank identifier.
var ErrEmptyName = errors.New("empty name")

// registry interns the spellings of one predefined string type.
// It is safe for concurrent use and never shrinks.
type registry struct {
	mu sync.RWMutex

	// canonical spelling indexed by case-folded spelling
	byFold map[string]string

	// fixed set of pre-registered (well-known) folded spellings
	wellKnown map[string]struct{}
}

// newRegistry creates a registry with the given well-known values
// pre-registered. The well-known spelling becomes the canonical one.
func newRegistry(wellKnown ...string) *registry {
	r := &registry{
		byFold:    make(map[string]string, len(wellKnown)),
		wellKnown: make(map[string]struct{}, len(wellKnown)),
	}
	for _, s := range wellKnown {
		f := fold(s)
		r.byFold[f] = s
		r.wellKnown[f] = struct{}{}
	}
	return r
}

// parse trims the input and returns the interned canonical spelling,
// registering the input as a new value if no case-insensitive match exists.
func (r *registry) parse(s string) (string, error) {
	s = strings.TrimSpace(s)
	if s == "" {
		return "", ErrEmptyName
	}

	f := fold(s)

	r.mu.RLock()
	canonical, ok := r.byFold[f]
	r.mu.RUnlock()
	if ok {
		return canonical, nil
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	// Re-check under the write lock; another goroutine may have won.
	if canonical, ok := r.byFold[f]; ok {
		return canonical, nil
	}
	r.byFold[f] = s
	return s, nil
}

// isWellKnown reports whether the spelling is one of the pre-registered values.
func (r *registry) isWellKnown(s string) bool {
	r.mu.RLock()
	defer r.mu.RUnlock()
	_, ok := r.wellKnown[fold(strings.TrimSpace(s))]
	return ok
}

// len returns the number of registered values.
func (r *registry) len() int {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return len(r.byFold)
}

// fold normalizes a spelling for case-insensitive comparison.
func fold(s string) string {
	return strings.ToLower(s)
}

// equalFold reports case-insensitive equality of two spellings.
func equalFold(a, b string) bool {
	return strings.EqualFold(a, b)
}

// compareFold orders two spellings case-insensitively.
func compareFold(a, b string) int {
	return strings.Compare(fold(a), fold(b))
}
