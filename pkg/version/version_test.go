package version

import (
	"testing"
)

func TestParse_Valid(t *testing.T) {
	tests := []struct {
		input string
		want  SpecVersion
	}{
		{"3.0", SpecVersion{3, 0, 0}},
		{"3.0.1", SpecVersion{3, 0, 1}},
		{"3.1.2", SpecVersion{3, 1, 2}},
		{"10.23.4", SpecVersion{10, 23, 4}},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			v, err := Parse(tt.input)
			if err != nil {
				t.Fatalf("Parse(%q) returned error: %v", tt.input, err)
			}
			if v != tt.want {
				t.Errorf("Parse(%q) = %v, want %v", tt.input, v, tt.want)
			}
		})
	}
}

func TestParse_Invalid(t *testing.T) {
	tests := []string{
		"",
		"3",
		"abc",
		"3.0.1.0",
		"3.x",
		"-3.0",
	}

	for _, input := range tests {
		t.Run(input, func(t *testing.T) {
			if _, err := Parse(input); err == nil {
				t.Errorf("Parse(%q) should return error", input)
			}
		})
	}
}

func TestCurrent_Parses(t *testing.T) {
	v, err := Parse(Current)
	if err != nil {
		t.Fatalf("Current does not parse: %v", err)
	}
	if v.Profile() != "3.0" {
		t.Errorf("Profile() = %q, want %q", v.Profile(), "3.0")
	}
	if v.String() != Current {
		t.Errorf("String() = %q, want %q", v.String(), Current)
	}
}

func TestCompatible(t *testing.T) {
	a, _ := Parse("3.0.1")
	b, _ := Parse("3.0.2")
	c, _ := Parse("3.1.0")

	if !a.Compatible(b) {
		t.Error("3.0.1 should be compatible with 3.0.2")
	}
	if a.Compatible(c) {
		t.Error("3.0.1 should not be compatible with 3.1.0")
	}
}
