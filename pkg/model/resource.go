package model

import (
	"time"

	"github.com/oadr3-protocol/oadr3-go/pkg/names"
)

// Resource is an energy device or asset under a VEN, the unit of control
// and reporting.
type Resource struct {
	ID                   ObjectID         `json:"id,omitempty"`
	CreatedDateTime      *time.Time       `json:"createdDateTime,omitempty"`
	ModificationDateTime *time.Time       `json:"modificationDateTime,omitempty"`
	ObjectType           names.ObjectType `json:"objectType,omitempty"`

	ResourceName string      `json:"resourceName"`
	VenID        ObjectID    `json:"venID,omitempty"`
	Attributes   []ValuesMap `json:"attributes,omitempty"`
	Targets      []ValuesMap `json:"targets,omitempty"`
}

// Validate checks the resource's mandatory fields.
func (r Resource) Validate() error {
	return checkName("resource", "resourceName", r.ResourceName)
}

// Equivalent compares two resources; collection fields compare as multisets.
func (r Resource) Equivalent(other Resource) bool {
	return r.ID == other.ID &&
		r.ObjectType.Equal(other.ObjectType) &&
		r.ResourceName == other.ResourceName &&
		r.VenID == other.VenID &&
		valuesMapsEquivalent(r.Attributes, other.Attributes) &&
		valuesMapsEquivalent(r.Targets, other.Targets)
}
