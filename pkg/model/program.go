package model

import (
	"time"

	"github.com/oadr3-protocol/oadr3-go/pkg/duration"
	"github.com/oadr3-protocol/oadr3-go/pkg/names"
)

// Program is a demand-response program definition.
type Program struct {
	ID                   ObjectID         `json:"id,omitempty"`
	CreatedDateTime      *time.Time       `json:"createdDateTime,omitempty"`
	ModificationDateTime *time.Time       `json:"modificationDateTime,omitempty"`
	ObjectType           names.ObjectType `json:"objectType,omitempty"`

	ProgramName      string            `json:"programName"`
	ProgramLongName  string            `json:"programLongName,omitempty"`
	RetailerName     string            `json:"retailerName,omitempty"`
	RetailerLongName string            `json:"retailerLongName,omitempty"`
	ProgramType      names.ProgramType `json:"programType,omitempty"`

	// Country is an ISO 3166-1 alpha-2 code; PrincipalSubdivision is the
	// ISO 3166-2 code within it.
	Country              string             `json:"country,omitempty"`
	PrincipalSubdivision string             `json:"principalSubdivision,omitempty"`
	TimeZoneOffset       *duration.Duration `json:"timeZoneOffset,omitempty"`

	IntervalPeriod      *IntervalPeriod      `json:"intervalPeriod,omitempty"`
	ProgramDescriptions []ProgramDescription `json:"programDescriptions,omitempty"`
	BindingEvents       *bool                `json:"bindingEvents,omitempty"`
	LocalPrice          *bool                `json:"localPrice,omitempty"`
	PayloadDescriptors  []PayloadDescriptor  `json:"payloadDescriptors,omitempty"`
	Targets             []ValuesMap          `json:"targets,omitempty"`
}

// ProgramDescription is a human-readable link describing a program.
type ProgramDescription struct {
	URL string `json:"URL"`
}

// Validate checks the program's mandatory fields.
func (p Program) Validate() error {
	if err := checkName("program", "programName", p.ProgramName); err != nil {
		return err
	}
	for _, d := range p.PayloadDescriptors {
		if err := d.Validate(); err != nil {
			return err
		}
	}
	return nil
}

// Equivalent compares two programs; collection fields compare as multisets
// and server-set timestamps are ignored when absent on either side.
func (p Program) Equivalent(other Program) bool {
	return p.ID == other.ID &&
		p.ObjectType.Equal(other.ObjectType) &&
		p.ProgramName == other.ProgramName &&
		p.ProgramLongName == other.ProgramLongName &&
		p.RetailerName == other.RetailerName &&
		p.RetailerLongName == other.RetailerLongName &&
		p.ProgramType.Equal(other.ProgramType) &&
		p.Country == other.Country &&
		p.PrincipalSubdivision == other.PrincipalSubdivision &&
		derefDuration(p.TimeZoneOffset) == derefDuration(other.TimeZoneOffset) &&
		periodsEquivalent(p.IntervalPeriod, other.IntervalPeriod) &&
		equivalentSets(p.ProgramDescriptions, other.ProgramDescriptions,
			func(a, b ProgramDescription) bool { return a == b }) &&
		boolOr(p.BindingEvents, false) == boolOr(other.BindingEvents, false) &&
		boolOr(p.LocalPrice, false) == boolOr(other.LocalPrice, false) &&
		equivalentSets(p.PayloadDescriptors, other.PayloadDescriptors, PayloadDescriptor.Equivalent) &&
		valuesMapsEquivalent(p.Targets, other.Targets)
}

// periodsEquivalent compares two optional interval periods.
func periodsEquivalent(a, b *IntervalPeriod) bool {
	if (a == nil) != (b == nil) {
		return false
	}
	return a == nil || a.Equivalent(*b)
}
