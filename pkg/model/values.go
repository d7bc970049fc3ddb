package model

import (
	"encoding/json"
	"fmt"
	"reflect"
)

// Point is an x,y pair used by curve-valued payloads.
type Point struct {
	X float64 `json:"x"`
	Y float64 `json:"y"`
}

// ValuesMap pairs a type name with a list of values. It carries targets,
// attributes, and interval payloads. Values may be numbers (float64),
// strings, booleans, or Points.
type ValuesMap struct {
	Type   string `json:"type"`
	Values []any  `json:"values"`
}

// NewValuesMap builds a ValuesMap from the given values.
func NewValuesMap(typ string, values ...any) ValuesMap {
	return ValuesMap{Type: typ, Values: values}
}

// UnmarshalJSON decodes values, turning {"x":..,"y":..} objects into Points
// so curve payloads round-trip with a typed representation.
func (v *ValuesMap) UnmarshalJSON(data []byte) error {
	var raw struct {
		Type   string            `json:"type"`
		Values []json.RawMessage `json:"values"`
	}
	if err := json.Unmarshal(data, &raw); err != nil {
		return err
	}

	v.Type = raw.Type
	v.Values = make([]any, 0, len(raw.Values))
	for _, rv := range raw.Values {
		val, err := decodeValue(rv)
		if err != nil {
			return fmt.Errorf("valuesMap %q: %w", raw.Type, err)
		}
		v.Values = append(v.Values, val)
	}
	return nil
}

func decodeValue(raw json.RawMessage) (any, error) {
	// Only an object with exactly the numeric keys x and y is a Point;
	// any other object keeps its generic decoding so it round-trips.
	if len(raw) > 0 && raw[0] == '{' {
		var obj map[string]json.RawMessage
		if err := json.Unmarshal(raw, &obj); err != nil {
			return nil, err
		}
		if xRaw, ok := obj["x"]; ok && len(obj) == 2 {
			if yRaw, ok := obj["y"]; ok {
				var x, y float64
				if json.Unmarshal(xRaw, &x) == nil && json.Unmarshal(yRaw, &y) == nil {
					return Point{X: x, Y: y}, nil
				}
			}
		}
	}

	var val any
	if err := json.Unmarshal(raw, &val); err != nil {
		return nil, err
	}
	return val, nil
}

// Equivalent reports whether two values maps carry the same type
// (case-sensitively; value map types are opaque) and the same multiset of
// values.
func (v ValuesMap) Equivalent(other ValuesMap) bool {
	if v.Type != other.Type {
		return false
	}
	return equivalentSets(v.Values, other.Values, valueEqual)
}

// valueEqual compares two decoded payload values.
func valueEqual(a, b any) bool {
	pa, aok := a.(Point)
	pb, bok := b.(Point)
	if aok || bok {
		return aok && bok && pa == pb
	}
	switch a.(type) {
	case nil, bool, string, float64:
		return a == b
	}
	// Arrays and non-Point objects decode to []any / map[string]any,
	// which == would panic on.
	return reflect.DeepEqual(a, b)
}

// valuesMapsEquivalent compares two slices of values maps as multisets.
func valuesMapsEquivalent(a, b []ValuesMap) bool {
	return equivalentSets(a, b, ValuesMap.Equivalent)
}

// equivalentSets reports whether a and b contain the same elements under eq,
// ignoring order. Quadratic, which is fine at protocol-object sizes.
func equivalentSets[T any](a, b []T, eq func(T, T) bool) bool {
	if len(a) != len(b) {
		return false
	}
	used := make([]bool, len(b))
outer:
	for _, av := range a {
		for i, bv := range b {
			if !used[i] && eq(av, bv) {
				used[i] = true
				continue outer
			}
		}
		return false
	}
	return true
}
