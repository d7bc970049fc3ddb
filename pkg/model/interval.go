package model

import (
	"time"

	"github.com/oadr3-protocol/oadr3-go/pkg/duration"
)

// IntervalPeriod defines a temporal span: a start time, an optional
// duration (default PT0S), and an optional randomization window applied to
// the start by each recipient.
type IntervalPeriod struct {
	Start          time.Time          `json:"start"`
	Duration       *duration.Duration `json:"duration,omitempty"`
	RandomizeStart *duration.Duration `json:"randomizeStart,omitempty"`
}

// EffectiveDuration returns the duration, or the PT0S default.
func (p IntervalPeriod) EffectiveDuration() duration.Duration {
	if p.Duration == nil {
		return duration.Zero
	}
	return *p.Duration
}

// Equivalent compares two interval periods. Start times compare with
// time.Time.Equal so differing wall-clock representations of the same
// instant match.
func (p IntervalPeriod) Equivalent(other IntervalPeriod) bool {
	return p.Start.Equal(other.Start) &&
		p.EffectiveDuration() == other.EffectiveDuration() &&
		derefDuration(p.RandomizeStart) == derefDuration(other.RandomizeStart)
}

func derefDuration(d *duration.Duration) duration.Duration {
	if d == nil {
		return duration.Zero
	}
	return *d
}

// Interval is one segment of an event or report: an ordinal identifier,
// an optional interval period (inherited from the parent when absent), and
// the payload values.
type Interval struct {
	ID             int32           `json:"id"`
	IntervalPeriod *IntervalPeriod `json:"intervalPeriod,omitempty"`
	Payloads       []ValuesMap     `json:"payloads"`
}

// Validate checks the interval's mandatory fields.
func (i Interval) Validate() error {
	if len(i.Payloads) == 0 {
		return missingField("interval", "payloads")
	}
	return nil
}

// Equivalent compares two intervals; payloads compare as multisets.
func (i Interval) Equivalent(other Interval) bool {
	if i.ID != other.ID {
		return false
	}
	if (i.IntervalPeriod == nil) != (other.IntervalPeriod == nil) {
		return false
	}
	if i.IntervalPeriod != nil && !i.IntervalPeriod.Equivalent(*other.IntervalPeriod) {
		return false
	}
	return valuesMapsEquivalent(i.Payloads, other.Payloads)
}

// intervalsEquivalent compares interval slices as multisets.
func intervalsEquivalent(a, b []Interval) bool {
	return equivalentSets(a, b, Interval.Equivalent)
}
