package model

import (
	"encoding/json"
	"errors"
	"testing"
	"time"

	"github.com/oadr3-protocol/oadr3-go/pkg/duration"
	"github.com/oadr3-protocol/oadr3-go/pkg/names"
)

func testEvent() Event {
	start := time.Date(2024, 7, 1, 12, 0, 0, 0, time.UTC)
	dur := duration.New(15 * time.Minute)
	priority := 1

	return Event{
		ID:         "event-17",
		ObjectType: names.ObjectTypeEvent,
		ProgramID:  "program-1",
		EventName:  "price-signal",
		Priority:   &priority,
		Targets: []ValuesMap{
			NewValuesMap("GROUP", "residential"),
			NewValuesMap("VEN_NAME", "ven-99"),
		},
		PayloadDescriptors: []PayloadDescriptor{
			{
				ObjectType:  names.ObjectTypeEventPayloadDescriptor,
				PayloadType: names.PayloadTypePrice,
				Units:       names.UnitKWH,
				Currency:    "USD",
			},
		},
		IntervalPeriod: &IntervalPeriod{Start: start, Duration: &dur},
		Intervals: []Interval{
			{ID: 0, Payloads: []ValuesMap{NewValuesMap("PRICE", 0.17)}},
			{ID: 1, Payloads: []ValuesMap{NewValuesMap("PRICE", 0.23)}},
		},
	}
}

func TestEvent_JSONRoundTrip(t *testing.T) {
	in := testEvent()

	b, err := json.Marshal(in)
	if err != nil {
		t.Fatal(err)
	}

	var out Event
	if err := json.Unmarshal(b, &out); err != nil {
		t.Fatal(err)
	}

	if !in.Equivalent(out) {
		t.Errorf("round trip not equivalent:\n in: %+v\nout: %+v", in, out)
	}
}

func TestEvent_JSONKeys(t *testing.T) {
	b, err := json.Marshal(testEvent())
	if err != nil {
		t.Fatal(err)
	}

	var keys map[string]json.RawMessage
	if err := json.Unmarshal(b, &keys); err != nil {
		t.Fatal(err)
	}

	for _, key := range []string{"id", "objectType", "programID", "eventName", "priority", "targets", "payloadDescriptors", "intervalPeriod", "intervals"} {
		if _, ok := keys[key]; !ok {
			t.Errorf("marshaled event missing key %q", key)
		}
	}
	if _, ok := keys["reportDescriptors"]; ok {
		t.Error("empty reportDescriptors should be omitted")
	}
}

func TestEvent_EquivalentIgnoresCollectionOrder(t *testing.T) {
	a := testEvent()
	b := testEvent()

	// Reverse all collections.
	b.Targets[0], b.Targets[1] = b.Targets[1], b.Targets[0]
	b.Intervals[0], b.Intervals[1] = b.Intervals[1], b.Intervals[0]

	if !a.Equivalent(b) {
		t.Error("events with reordered collections should be equivalent")
	}

	b.Intervals[0].Payloads = []ValuesMap{NewValuesMap("PRICE", 0.99)}
	if a.Equivalent(b) {
		t.Error("events with different payloads should not be equivalent")
	}
}

func TestEvent_EnumCaseInsensitive(t *testing.T) {
	a := testEvent()
	b := testEvent()
	b.ObjectType = names.ObjectType("event")
	b.PayloadDescriptors[0].Units = names.Unit("kwh")

	if !a.Equivalent(b) {
		t.Error("enum fields should compare case-insensitively")
	}
}

func TestEvent_UnmarshalCanonicalizesEnums(t *testing.T) {
	raw := `{
		"programID": "p-1",
		"objectType": "event",
		"intervals": [{"id": 0, "payloads": [{"type": "simple", "values": [1]}]}],
		"payloadDescriptors": [{"payloadType": "simple"}]
	}`

	var e Event
	if err := json.Unmarshal([]byte(raw), &e); err != nil {
		t.Fatal(err)
	}
	if e.ObjectType != names.ObjectTypeEvent {
		t.Errorf("objectType = %q, want EVENT", e.ObjectType)
	}
	if e.PayloadDescriptors[0].PayloadType != names.PayloadTypeSimple {
		t.Errorf("payloadType = %q, want SIMPLE", e.PayloadDescriptors[0].PayloadType)
	}
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name    string
		object  interface{ Validate() error }
		wantErr bool
	}{
		{"valid event", testEvent(), false},
		{"event without programID", Event{Intervals: []Interval{{Payloads: []ValuesMap{NewValuesMap("SIMPLE", 1)}}}}, true},
		{"event without intervals", Event{ProgramID: "p-1"}, true},
		{"valid program", Program{ProgramName: "test-prog"}, false},
		{"program without name", Program{}, true},
		{"valid report", Report{
			ProgramID:  "p-1",
			EventID:    "e-1",
			ClientName: "client-1",
			Resources: []ReportResource{{
				ResourceName: "meter-1",
				Intervals:    []Interval{{Payloads: []ValuesMap{NewValuesMap("USAGE", 12.5)}}},
			}},
		}, false},
		{"report without clientName", Report{ProgramID: "p-1", EventID: "e-1"}, true},
		{"valid subscription", Subscription{
			ClientName: "client-1",
			ProgramID:  "p-1",
			ObjectOperations: []ObjectOperation{{
				Objects:     []names.ObjectType{names.ObjectTypeEvent},
				Operations:  []names.Operation{names.OperationPost},
				CallbackURL: "https://ven.example/callback",
			}},
		}, false},
		{"subscription without operations", Subscription{ClientName: "c", ProgramID: "p-1"}, true},
		{"valid ven", Ven{VenName: "ven-1"}, false},
		{"ven without name", Ven{}, true},
		{"valid resource", Resource{ResourceName: "meter-1"}, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.object.Validate()
			if (err != nil) != tt.wantErr {
				t.Errorf("Validate() error = %v, wantErr %v", err, tt.wantErr)
			}
		})
	}
}

func TestObjectID_Validate(t *testing.T) {
	valid := []ObjectID{"a", "event-17", "AB_12-xy"}
	for _, id := range valid {
		if err := id.Validate(); err != nil {
			t.Errorf("Validate(%q) returned error: %v", id, err)
		}
	}

	invalid := []ObjectID{"", "has space", "slash/id", "bad!id"}
	for _, id := range invalid {
		if err := id.Validate(); !errors.Is(err, ErrInvalidObjectID) {
			t.Errorf("Validate(%q) error = %v, want ErrInvalidObjectID", id, err)
		}
	}
}

func TestProblem_Error(t *testing.T) {
	p := &Problem{Status: 404, Title: "Not Found", Detail: "no such program"}
	want := "vtn problem (status 404): Not Found: no such program"
	if p.Error() != want {
		t.Errorf("Error() = %q, want %q", p.Error(), want)
	}
}
