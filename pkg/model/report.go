package model

import (
	"time"

	"github.com/oadr3-protocol/oadr3-go/pkg/names"
)

// Report carries client telemetry for a program and event: one entry per
// resource, each with its own intervals.
type Report struct {
	ID                   ObjectID         `json:"id,omitempty"`
	CreatedDateTime      *time.Time       `json:"createdDateTime,omitempty"`
	ModificationDateTime *time.Time       `json:"modificationDateTime,omitempty"`
	ObjectType           names.ObjectType `json:"objectType,omitempty"`

	ProgramID  ObjectID `json:"programID"`
	EventID    ObjectID `json:"eventID"`
	ClientName string   `json:"clientName"`
	ReportName string   `json:"reportName,omitempty"`

	PayloadDescriptors []PayloadDescriptor `json:"payloadDescriptors,omitempty"`
	Resources          []ReportResource    `json:"resources"`
}

// ReportResource is the report data of one resource.
type ReportResource struct {
	ResourceName   string          `json:"resourceName"`
	IntervalPeriod *IntervalPeriod `json:"intervalPeriod,omitempty"`
	Intervals      []Interval      `json:"intervals"`
}

// Validate checks the resource entry's mandatory fields.
func (r ReportResource) Validate() error {
	if err := checkName("report resource", "resourceName", r.ResourceName); err != nil {
		return err
	}
	if len(r.Intervals) == 0 {
		return missingField("report resource", "intervals")
	}
	for _, iv := range r.Intervals {
		if err := iv.Validate(); err != nil {
			return err
		}
	}
	return nil
}

// Equivalent compares two resource entries.
func (r ReportResource) Equivalent(other ReportResource) bool {
	return r.ResourceName == other.ResourceName &&
		periodsEquivalent(r.IntervalPeriod, other.IntervalPeriod) &&
		intervalsEquivalent(r.Intervals, other.Intervals)
}

// Validate checks the report's mandatory fields.
func (r Report) Validate() error {
	if r.ProgramID == "" {
		return missingField("report", "programID")
	}
	if r.EventID == "" {
		return missingField("report", "eventID")
	}
	if err := checkName("report", "clientName", r.ClientName); err != nil {
		return err
	}
	if len(r.Resources) == 0 {
		return missingField("report", "resources")
	}
	for _, res := range r.Resources {
		if err := res.Validate(); err != nil {
			return err
		}
	}
	for _, d := range r.PayloadDescriptors {
		if err := d.Validate(); err != nil {
			return err
		}
	}
	return nil
}

// Equivalent compares two reports; collection fields compare as multisets.
func (r Report) Equivalent(other Report) bool {
	return r.ID == other.ID &&
		r.ObjectType.Equal(other.ObjectType) &&
		r.ProgramID == other.ProgramID &&
		r.EventID == other.EventID &&
		r.ClientName == other.ClientName &&
		r.ReportName == other.ReportName &&
		equivalentSets(r.PayloadDescriptors, other.PayloadDescriptors, PayloadDescriptor.Equivalent) &&
		equivalentSets(r.Resources, other.Resources, ReportResource.Equivalent)
}
