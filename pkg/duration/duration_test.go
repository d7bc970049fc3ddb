package duration

import (
	"encoding/json"
	"errors"
	"testing"
	"time"
)

func TestParse_Valid(t *testing.T) {
	tests := []struct {
		input string
		want  time.Duration
	}{
		{"PT0S", 0},
		{"P0D", 0},
		{"PT15M", 15 * time.Minute},
		{"PT1H", time.Hour},
		{"P1D", 24 * time.Hour},
		{"P1DT2H30M", 26*time.Hour + 30*time.Minute},
		{"P2W", 14 * 24 * time.Hour},
		{"PT1.5S", 1500 * time.Millisecond},
		{"-PT5M", -5 * time.Minute},
		{"pt15m", 15 * time.Minute},
		{"  PT30S ", 30 * time.Second},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			d, err := Parse(tt.input)
			if err != nil {
				t.Fatalf("Parse(%q) returned error: %v", tt.input, err)
			}
			if d.Std() != tt.want {
				t.Errorf("Parse(%q) = %v, want %v", tt.input, d.Std(), tt.want)
			}
		})
	}
}

func TestParse_Invalid(t *testing.T) {
	tests := []string{
		"",
		"P",
		"PT",
		"15M",
		"PT15",
		"P1Y",
		"P-1D",
		"one hour",
	}

	for _, input := range tests {
		t.Run(input, func(t *testing.T) {
			if _, err := Parse(input); err == nil {
				t.Errorf("Parse(%q) should return error", input)
			}
		})
	}
}

func TestParse_CalendarRejected(t *testing.T) {
	for _, input := range []string{"P1Y", "P2M", "P1Y2M3D"} {
		_, err := Parse(input)
		if !errors.Is(err, ErrCalendarDuration) {
			t.Errorf("Parse(%q) error = %v, want ErrCalendarDuration", input, err)
		}
	}
}

func TestString_Canonical(t *testing.T) {
	tests := []struct {
		d    Duration
		want string
	}{
		{Zero, "PT0S"},
		{New(15 * time.Minute), "PT15M"},
		{New(26*time.Hour + 30*time.Minute), "P1DT2H30M"},
		{New(14 * 24 * time.Hour), "P14D"},
		{New(-5 * time.Minute), "-PT5M"},
		{New(1500 * time.Millisecond), "PT1.5S"},
		{New(90 * time.Second), "PT1M30S"},
	}

	for _, tt := range tests {
		t.Run(tt.want, func(t *testing.T) {
			if got := tt.d.String(); got != tt.want {
				t.Errorf("String() = %q, want %q", got, tt.want)
			}
		})
	}
}

func TestJSON_RoundTrip(t *testing.T) {
	in := New(26*time.Hour + 90*time.Second)
	b, err := json.Marshal(in)
	if err != nil {
		t.Fatal(err)
	}
	if string(b) != `"P1DT2H1M30S"` {
		t.Errorf("marshal = %s", b)
	}

	var out Duration
	if err := json.Unmarshal(b, &out); err != nil {
		t.Fatal(err)
	}
	if out != in {
		t.Errorf("round trip = %v, want %v", out, in)
	}
}
