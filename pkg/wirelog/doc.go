// Package wirelog records the HTTP exchanges a client performs against a
// VTN, one structured event per request.
//
// The wire log is separate from application logging: it is a complete,
// machine-readable record of protocol traffic, useful for conformance
// debugging and for replaying what a VEN saw. FileLogger writes JSON
// lines, so the log can be inspected with standard tooling.
//
// Pass a Logger to client.Config.WireLog to enable recording; use
// MultiLogger to fan out to several sinks and SlogAdapter to mirror
// exchanges into an application logger during development.
package wirelog
