package names

import (
	"encoding/json"
	"errors"
	"sync"
	"testing"
)

func TestParseOperation_Canonical(t *testing.T) {
	tests := []struct {
		input string
		want  Operation
	}{
		{"GET", OperationGet},
		{"get", OperationGet},
		{"GeT", OperationGet},
		{"  POST  ", OperationPost},
		{"\tdelete\n", OperationDelete},
		{"put", OperationPut},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			op, err := ParseOperation(tt.input)
			if err != nil {
				t.Fatalf("ParseOperation(%q) returned error: %v", tt.input, err)
			}
			if op != tt.want {
				t.Errorf("ParseOperation(%q) = %q, want %q", tt.input, op, tt.want)
			}
		})
	}
}

func TestParseOperation_Empty(t *testing.T) {
	for _, input := range []string{"", "   ", "\t\n"} {
		if _, err := ParseOperation(input); !errors.Is(err, ErrEmptyName) {
			t.Errorf("ParseOperation(%q) error = %v, want ErrEmptyName", input, err)
		}
	}
}

func TestParse_InternsUnknownSpellings(t *testing.T) {
	// First parse registers the trimmed spelling as canonical.
	first, err := ParseProgramType("  Community_Solar ")
	if err != nil {
		t.Fatal(err)
	}
	if first.String() != "Community_Solar" {
		t.Errorf("canonical = %q, want %q", first, "Community_Solar")
	}

	// Later parses with different casing return the first spelling.
	second, err := ParseProgramType("COMMUNITY_SOLAR")
	if err != nil {
		t.Fatal(err)
	}
	if second != first {
		t.Errorf("re-parse = %q, want interned %q", second, first)
	}
	if second.IsWellKnown() {
		t.Error("interned custom value should not be well-known")
	}
}

func TestParse_WellKnownSpellingWins(t *testing.T) {
	p, err := ParsePayloadType("price")
	if err != nil {
		t.Fatal(err)
	}
	if p != PayloadTypePrice {
		t.Errorf("ParsePayloadType(\"price\") = %q, want %q", p, PayloadTypePrice)
	}
	if !p.IsWellKnown() {
		t.Error("PRICE should be well-known")
	}
}

func TestEqualAndCompare_CaseInsensitive(t *testing.T) {
	if !Operation("GET").Equal(Operation("get")) {
		t.Error("GET should equal get")
	}
	if Operation("GET").Equal(OperationPost) {
		t.Error("GET should not equal POST")
	}
	if c := Operation("delete").Compare(OperationGet); c >= 0 {
		t.Errorf("Compare(delete, GET) = %d, want < 0", c)
	}
	if c := Unit("kwh").Compare(UnitKWH); c != 0 {
		t.Errorf("Compare(kwh, KWH) = %d, want 0", c)
	}
}

func TestUnmarshalText_Canonicalizes(t *testing.T) {
	var ops []Operation
	if err := json.Unmarshal([]byte(`["get","POST"]`), &ops); err != nil {
		t.Fatal(err)
	}
	if len(ops) != 2 || ops[0] != OperationGet || ops[1] != OperationPost {
		t.Errorf("unmarshal = %v, want [GET POST]", ops)
	}

	var bad Operation
	if err := json.Unmarshal([]byte(`" "`), &bad); err == nil {
		t.Error("unmarshal of blank operation should fail")
	}
}

func TestMarshalText_RoundTrip(t *testing.T) {
	b, err := json.Marshal(ReadingTypeDirectRead)
	if err != nil {
		t.Fatal(err)
	}
	if string(b) != `"DIRECT_READ"` {
		t.Errorf("marshal = %s, want %q", b, `"DIRECT_READ"`)
	}

	var rt ReadingType
	if err := json.Unmarshal(b, &rt); err != nil {
		t.Fatal(err)
	}
	if rt != ReadingTypeDirectRead {
		t.Errorf("round trip = %q, want %q", rt, ReadingTypeDirectRead)
	}
}

func TestAuthErrorTypes_WellKnown(t *testing.T) {
	for _, v := range []AuthErrorType{
		AuthErrorInvalidRequest,
		AuthErrorInvalidClient,
		AuthErrorInvalidGrant,
		AuthErrorInvalidScope,
		AuthErrorUnauthorizedClient,
		AuthErrorUnsupportedGrantType,
		AuthErrorServerError,
	} {
		if !v.IsWellKnown() {
			t.Errorf("%q should be well-known", v)
		}
	}

	// Uppercase spelling still matches the lowercase canonical form.
	a, err := ParseAuthErrorType("INVALID_CLIENT")
	if err != nil {
		t.Fatal(err)
	}
	if a != AuthErrorInvalidClient {
		t.Errorf("ParseAuthErrorType(INVALID_CLIENT) = %q, want %q", a, AuthErrorInvalidClient)
	}
}

func TestRegistry_ConcurrentGrowth(t *testing.T) {
	r := newRegistry("A", "B")

	var wg sync.WaitGroup
	inputs := []string{"a", "b", "C", "c", " C ", "d", "D"}
	for i := 0; i < 50; i++ {
		for _, in := range inputs {
			wg.Add(1)
			go func(s string) {
				defer wg.Done()
				if _, err := r.parse(s); err != nil {
					t.Errorf("parse(%q) returned error: %v", s, err)
				}
			}(in)
		}
	}
	wg.Wait()

	// A, B pre-registered; C and D interned exactly once each.
	if got := r.len(); got != 4 {
		t.Errorf("registry size = %d, want 4", got)
	}

	c1, _ := r.parse("c")
	c2, _ := r.parse("C")
	if c1 != c2 {
		t.Errorf("interned spellings differ: %q vs %q", c1, c2)
	}
}
