package model

import (
	"time"

	"github.com/oadr3-protocol/oadr3-go/pkg/names"
)

// Event is a demand-response event: the interval payloads a VTN wants
// VENs in a program to act on, plus descriptors for the reports it expects
// back.
type Event struct {
	ID                   ObjectID         `json:"id,omitempty"`
	CreatedDateTime      *time.Time       `json:"createdDateTime,omitempty"`
	ModificationDateTime *time.Time       `json:"modificationDateTime,omitempty"`
	ObjectType           names.ObjectType `json:"objectType,omitempty"`

	ProgramID ObjectID `json:"programID"`
	EventName string   `json:"eventName,omitempty"`

	// Priority ranks concurrent events; lower is more important and zero
	// is valid, hence the pointer.
	Priority *int `json:"priority,omitempty"`

	Targets            []ValuesMap         `json:"targets,omitempty"`
	ReportDescriptors  []ReportDescriptor  `json:"reportDescriptors,omitempty"`
	PayloadDescriptors []PayloadDescriptor `json:"payloadDescriptors,omitempty"`
	IntervalPeriod     *IntervalPeriod     `json:"intervalPeriod,omitempty"`
	Intervals          []Interval          `json:"intervals"`
}

// Validate checks the event's mandatory fields.
func (e Event) Validate() error {
	if e.ProgramID == "" {
		return missingField("event", "programID")
	}
	if err := e.ProgramID.Validate(); err != nil {
		return err
	}
	if len(e.Intervals) == 0 {
		return missingField("event", "intervals")
	}
	for _, iv := range e.Intervals {
		if err := iv.Validate(); err != nil {
			return err
		}
	}
	for _, d := range e.ReportDescriptors {
		if err := d.Validate(); err != nil {
			return err
		}
	}
	for _, d := range e.PayloadDescriptors {
		if err := d.Validate(); err != nil {
			return err
		}
	}
	return nil
}

// Equivalent compares two events; collection fields compare as multisets.
func (e Event) Equivalent(other Event) bool {
	return e.ID == other.ID &&
		e.ObjectType.Equal(other.ObjectType) &&
		e.ProgramID == other.ProgramID &&
		e.EventName == other.EventName &&
		intOr(e.Priority, -1) == intOr(other.Priority, -1) &&
		valuesMapsEquivalent(e.Targets, other.Targets) &&
		equivalentSets(e.ReportDescriptors, other.ReportDescriptors, ReportDescriptor.Equivalent) &&
		equivalentSets(e.PayloadDescriptors, other.PayloadDescriptors, PayloadDescriptor.Equivalent) &&
		periodsEquivalent(e.IntervalPeriod, other.IntervalPeriod) &&
		intervalsEquivalent(e.Intervals, other.Intervals)
}
