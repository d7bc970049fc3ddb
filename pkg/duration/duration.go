package duration

import (
	"errors"
	"fmt"
	"regexp"
	"strconv"
	"strings"
	"time"
)

// Duration errors.
var (
	ErrInvalidDuration  = errors.New("invalid ISO 8601 duration")
	ErrCalendarDuration = errors.New("year and month designators are not supported")
)

// Duration is an ISO 8601 duration with fixed length. It wraps
// time.Duration, so the largest representable value is about 292 years.
type Duration time.Duration

// Zero is the canonical zero duration ("PT0S"), the schema default for
// interval period durations.
const Zero Duration = 0

// Matches the schema's duration pattern, case-insensitively. Year and
// month groups are matched so they can be rejected with a clear error.
var durationRe = regexp.MustCompile(
	`(?i)^(-)?P(?:(\d+)Y)?(?:(\d+)M)?(?:(\d+)([DW]))?(?:T(?:(\d+)H)?(?:(\d+)M)?(?:(\d+(?:\.\d+)?)S)?)?$`,
)

// Parse parses an ISO 8601 duration string.
func Parse(s string) (Duration, error) {
	s = strings.TrimSpace(s)
	m := durationRe.FindStringSubmatch(s)
	if m == nil {
		return 0, fmt.Errorf("%w: %q", ErrInvalidDuration, s)
	}

	neg, years, months := m[1], m[2], m[3]
	days, dayUnit := m[4], m[5]
	hours, minutes, seconds := m[6], m[7], m[8]

	// "P" with no components at all is not a duration.
	if years == "" && months == "" && days == "" && hours == "" && minutes == "" && seconds == "" {
		return 0, fmt.Errorf("%w: %q", ErrInvalidDuration, s)
	}
	if years != "" || months != "" {
		return 0, fmt.Errorf("%w: %q", ErrCalendarDuration, s)
	}

	var d time.Duration
	if days != "" {
		n, err := strconv.ParseInt(days, 10, 64)
		if err != nil {
			return 0, fmt.Errorf("%w: %q", ErrInvalidDuration, s)
		}
		if strings.EqualFold(dayUnit, "W") {
			n *= 7
		}
		d += time.Duration(n) * 24 * time.Hour
	}
	if hours != "" {
		n, _ := strconv.ParseInt(hours, 10, 64)
		d += time.Duration(n) * time.Hour
	}
	if minutes != "" {
		n, _ := strconv.ParseInt(minutes, 10, 64)
		d += time.Duration(n) * time.Minute
	}
	if seconds != "" {
		f, err := strconv.ParseFloat(seconds, 64)
		if err != nil {
			return 0, fmt.Errorf("%w: %q", ErrInvalidDuration, s)
		}
		d += time.Duration(f * float64(time.Second))
	}

	if neg != "" {
		d = -d
	}
	return Duration(d), nil
}

// New converts a time.Duration.
func New(d time.Duration) Duration { return Duration(d) }

// Std returns the duration as a time.Duration.
func (d Duration) Std() time.Duration { return time.Duration(d) }

// String formats the duration canonically: uppercase designators, days
// instead of weeks, "PT0S" for zero.
func (d Duration) String() string {
	v := time.Duration(d)
	if v == 0 {
		return "PT0S"
	}

	var b strings.Builder
	if v < 0 {
		b.WriteByte('-')
		v = -v
	}
	b.WriteByte('P')

	if days := v / (24 * time.Hour); days > 0 {
		fmt.Fprintf(&b, "%dD", days)
		v -= days * 24 * time.Hour
	}
	if v == 0 {
		return b.String()
	}

	b.WriteByte('T')
	if h := v / time.Hour; h > 0 {
		fmt.Fprintf(&b, "%dH", h)
		v -= h * time.Hour
	}
	if m := v / time.Minute; m > 0 {
		fmt.Fprintf(&b, "%dM", m)
		v -= m * time.Minute
	}
	if v > 0 {
		secs := float64(v) / float64(time.Second)
		b.WriteString(strconv.FormatFloat(secs, 'f', -1, 64))
		b.WriteByte('S')
	}
	return b.String()
}

// MarshalText implements encoding.TextMarshaler.
func (d Duration) MarshalText() ([]byte, error) {
	return []byte(d.String()), nil
}

// UnmarshalText implements encoding.TextUnmarshaler.
func (d *Duration) UnmarshalText(text []byte) error {
	parsed, err := Parse(string(text))
	if err != nil {
		return err
	}
	*d = parsed
	return nil
}
