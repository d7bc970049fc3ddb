package model

import (
	"github.com/oadr3-protocol/oadr3-go/pkg/names"
)

// PayloadDescriptor contextualizes the payloads of an event or report:
// what quantity a payload type carries, in which units, and (for reports)
// how it was read. The ObjectType field discriminates between
// EVENT_PAYLOAD_DESCRIPTOR and REPORT_PAYLOAD_DESCRIPTOR; the reading
// type, accuracy, and confidence fields only apply to the report kind,
// currency only to the event kind.
type PayloadDescriptor struct {
	ObjectType  names.ObjectType  `json:"objectType,omitempty"`
	PayloadType names.PayloadType `json:"payloadType"`
	ReadingType names.ReadingType `json:"readingType,omitempty"`
	Units       names.Unit        `json:"units,omitempty"`
	Currency    string            `json:"currency,omitempty"`
	Accuracy    *float64          `json:"accuracy,omitempty"`
	Confidence  *int              `json:"confidence,omitempty"`
}

// NewEventPayloadDescriptor builds an event-kind payload descriptor.
func NewEventPayloadDescriptor(payloadType names.PayloadType) PayloadDescriptor {
	return PayloadDescriptor{
		ObjectType:  names.ObjectTypeEventPayloadDescriptor,
		PayloadType: payloadType,
	}
}

// NewReportPayloadDescriptor builds a report-kind payload descriptor.
func NewReportPayloadDescriptor(payloadType names.PayloadType) PayloadDescriptor {
	return PayloadDescriptor{
		ObjectType:  names.ObjectTypeReportPayloadDescriptor,
		PayloadType: payloadType,
	}
}

// Validate checks the descriptor's mandatory fields.
func (d PayloadDescriptor) Validate() error {
	if d.PayloadType == "" {
		return missingField("payloadDescriptor", "payloadType")
	}
	return nil
}

// Equivalent compares descriptors field by field; enum fields compare
// case-insensitively.
func (d PayloadDescriptor) Equivalent(other PayloadDescriptor) bool {
	return d.ObjectType.Equal(other.ObjectType) &&
		d.PayloadType.Equal(other.PayloadType) &&
		d.ReadingType.Equal(other.ReadingType) &&
		d.Units.Equal(other.Units) &&
		d.Currency == other.Currency &&
		derefFloat(d.Accuracy) == derefFloat(other.Accuracy) &&
		derefInt(d.Confidence) == derefInt(other.Confidence)
}

// ReportDescriptor, carried by events, tells VENs what to report back.
// Schema defaults: aggregate false, startInterval -1 (current interval),
// numIntervals -1 (all), historical true, frequency -1 (once per interval),
// repeat 1.
type ReportDescriptor struct {
	PayloadType   names.PayloadType `json:"payloadType"`
	ReadingType   names.ReadingType `json:"readingType,omitempty"`
	Units         names.Unit        `json:"units,omitempty"`
	Targets       []ValuesMap       `json:"targets,omitempty"`
	Aggregate     *bool             `json:"aggregate,omitempty"`
	StartInterval *int              `json:"startInterval,omitempty"`
	NumIntervals  *int              `json:"numIntervals,omitempty"`
	Historical    *bool             `json:"historical,omitempty"`
	Frequency     *int              `json:"frequency,omitempty"`
	Repeat        *int              `json:"repeat,omitempty"`
}

// Validate checks the descriptor's mandatory fields.
func (d ReportDescriptor) Validate() error {
	if d.PayloadType == "" {
		return missingField("reportDescriptor", "payloadType")
	}
	return nil
}

// Equivalent compares report descriptors; targets compare as multisets and
// absent optionals compare equal to their schema defaults.
func (d ReportDescriptor) Equivalent(other ReportDescriptor) bool {
	return d.PayloadType.Equal(other.PayloadType) &&
		d.ReadingType.Equal(other.ReadingType) &&
		d.Units.Equal(other.Units) &&
		valuesMapsEquivalent(d.Targets, other.Targets) &&
		boolOr(d.Aggregate, false) == boolOr(other.Aggregate, false) &&
		intOr(d.StartInterval, -1) == intOr(other.StartInterval, -1) &&
		intOr(d.NumIntervals, -1) == intOr(other.NumIntervals, -1) &&
		boolOr(d.Historical, true) == boolOr(other.Historical, true) &&
		intOr(d.Frequency, -1) == intOr(other.Frequency, -1) &&
		intOr(d.Repeat, 1) == intOr(other.Repeat, 1)
}

func derefFloat(f *float64) float64 {
	if f == nil {
		return 0
	}
	return *f
}

func derefInt(i *int) int {
	if i == nil {
		return 0
	}
	return *i
}

func intOr(i *int, def int) int {
	if i == nil {
		return def
	}
	return *i
}

func boolOr(b *bool, def bool) bool {
	if b == nil {
		return def
	}
	return *b
}
