// Package model implements the OpenADR 3.0 protocol objects.
//
// # Objects
//
// The six top-level objects exchanged with a VTN:
//
//	Program       a demand-response program definition
//	Event         a demand-response event with payload intervals
//	Report        client telemetry for a program or event
//	Subscription  a registration for object-change callbacks
//	Ven           a Virtual End Node known to the VTN
//	Resource      an energy device or asset under a VEN
//
// All objects map 1:1 to the OpenADR 3.0 OpenAPI schema with camelCase JSON
// keys. Optional fields are pointers or omitempty slices, so a parse →
// serialize → parse round trip reproduces an equivalent object.
//
// # Equivalence
//
// Each object has an Equivalent method. Collection-valued fields (targets,
// payloads, descriptors, attributes) compare as order-irrelevant multisets,
// and enum-valued fields compare case-insensitively, matching how a VTN
// treats them. Use Equivalent rather than == or reflect.DeepEqual when
// comparing objects that crossed the wire.
//
// # Validation
//
// Validate enforces the schema's mandatory fields and length limits. The
// client calls it before sending create and update requests so malformed
// objects fail locally instead of with a VTN round trip.
package model
