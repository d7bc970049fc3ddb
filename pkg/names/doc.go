// Package names implements the predefined string identifiers used throughout
// the OpenADR 3.0 data model.
//
// # Predefined Strings
//
// OpenADR enumerations are open: the OpenAPI schema lists well-known values
// but allows others. Each identifier type in this package is therefore an
// interned, case-insensitive, trimmed string wrapper backed by a process-wide
// registry:
//
//   - Parsing empty or blank input fails.
//   - Parsing any other input returns the already-interned spelling when a
//     case-insensitive match exists, or registers the trimmed input as a new
//     value. The registry only grows.
//   - Equality and ordering are case-insensitive.
//   - The well-known values of each type are pre-registered at package init,
//     so their canonical spelling always wins (Parse("get") yields "GET").
//
// All types implement encoding.TextMarshaler and encoding.TextUnmarshaler so
// they can be used directly in the JSON data-transfer objects of pkg/model.
package names
