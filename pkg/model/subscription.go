package model

import (
	"time"

	"github.com/oadr3-protocol/oadr3-go/pkg/names"
)

// Subscription registers a client for object-change callbacks from the VTN.
type Subscription struct {
	ID                   ObjectID         `json:"id,omitempty"`
	CreatedDateTime      *time.Time       `json:"createdDateTime,omitempty"`
	ModificationDateTime *time.Time       `json:"modificationDateTime,omitempty"`
	ObjectType           names.ObjectType `json:"objectType,omitempty"`

	ClientName       string            `json:"clientName"`
	ProgramID        ObjectID          `json:"programID"`
	ObjectOperations []ObjectOperation `json:"objectOperations"`
	Targets          []ValuesMap       `json:"targets,omitempty"`
}

// ObjectOperation names the object types and operations a subscription
// wants callbacks for, and where to deliver them.
type ObjectOperation struct {
	Objects     []names.ObjectType `json:"objects"`
	Operations  []names.Operation  `json:"operations"`
	CallbackURL string             `json:"callbackUrl"`
	BearerToken string             `json:"bearerToken,omitempty"`
}

// Validate checks the operation entry's mandatory fields.
func (o ObjectOperation) Validate() error {
	if len(o.Objects) == 0 {
		return missingField("objectOperation", "objects")
	}
	if len(o.Operations) == 0 {
		return missingField("objectOperation", "operations")
	}
	if o.CallbackURL == "" {
		return missingField("objectOperation", "callbackUrl")
	}
	return nil
}

// Equivalent compares operation entries; object and operation lists
// compare as sets. Bearer tokens are compared verbatim.
func (o ObjectOperation) Equivalent(other ObjectOperation) bool {
	return equivalentSets(o.Objects, other.Objects, names.ObjectType.Equal) &&
		equivalentSets(o.Operations, other.Operations, names.Operation.Equal) &&
		o.CallbackURL == other.CallbackURL &&
		o.BearerToken == other.BearerToken
}

// Validate checks the subscription's mandatory fields.
func (s Subscription) Validate() error {
	if err := checkName("subscription", "clientName", s.ClientName); err != nil {
		return err
	}
	if s.ProgramID == "" {
		return missingField("subscription", "programID")
	}
	if len(s.ObjectOperations) == 0 {
		return missingField("subscription", "objectOperations")
	}
	for _, op := range s.ObjectOperations {
		if err := op.Validate(); err != nil {
			return err
		}
	}
	return nil
}

// Equivalent compares two subscriptions; collection fields compare as
// multisets.
func (s Subscription) Equivalent(other Subscription) bool {
	return s.ID == other.ID &&
		s.ObjectType.Equal(other.ObjectType) &&
		s.ClientName == other.ClientName &&
		s.ProgramID == other.ProgramID &&
		equivalentSets(s.ObjectOperations, other.ObjectOperations, ObjectOperation.Equivalent) &&
		valuesMapsEquivalent(s.Targets, other.Targets)
}
