package model

import (
	"time"

	"github.com/oadr3-protocol/oadr3-go/pkg/names"
)

// Ven is a Virtual End Node registered with the VTN.
type Ven struct {
	ID                   ObjectID         `json:"id,omitempty"`
	CreatedDateTime      *time.Time       `json:"createdDateTime,omitempty"`
	ModificationDateTime *time.Time       `json:"modificationDateTime,omitempty"`
	ObjectType           names.ObjectType `json:"objectType,omitempty"`

	VenName    string      `json:"venName"`
	Attributes []ValuesMap `json:"attributes,omitempty"`
	Targets    []ValuesMap `json:"targets,omitempty"`
	Resources  []Resource  `json:"resources,omitempty"`
}

// Validate checks the VEN's mandatory fields.
func (v Ven) Validate() error {
	if err := checkName("ven", "venName", v.VenName); err != nil {
		return err
	}
	for _, r := range v.Resources {
		if err := r.Validate(); err != nil {
			return err
		}
	}
	return nil
}

// Equivalent compares two VENs; collection fields compare as multisets.
func (v Ven) Equivalent(other Ven) bool {
	return v.ID == other.ID &&
		v.ObjectType.Equal(other.ObjectType) &&
		v.VenName == other.VenName &&
		valuesMapsEquivalent(v.Attributes, other.Attributes) &&
		valuesMapsEquivalent(v.Targets, other.Targets) &&
		equivalentSets(v.Resources, other.Resources, Resource.Equivalent)
}
