package model

import (
	"errors"
	"fmt"
	"regexp"
)

// Validation errors.
var (
	ErrInvalidObjectID = errors.New("invalid object ID")
	ErrMissingField    = errors.New("missing mandatory field")
)

// ObjectID is a VTN-assigned object identifier: 1 to 128 characters from
// [a-zA-Z0-9_-].
type ObjectID string

var objectIDRe = regexp.MustCompile(`^[a-zA-Z0-9_-]{1,128}$`)

// Validate checks the identifier against the schema pattern.
func (id ObjectID) Validate() error {
	if !objectIDRe.MatchString(string(id)) {
		return fmt.Errorf("%w: %q", ErrInvalidObjectID, string(id))
	}
	return nil
}

// String returns the identifier string.
func (id ObjectID) String() string { return string(id) }

// missingField builds a mandatory-field validation error.
func missingField(object, field string) error {
	return fmt.Errorf("%w: %s.%s", ErrMissingField, object, field)
}

// checkName validates a 1..128 character object name.
func checkName(object, field, value string) error {
	if value == "" {
		return missingField(object, field)
	}
	if len(value) > 128 {
		return fmt.Errorf("%s.%s exceeds 128 characters", object, field)
	}
	return nil
}
