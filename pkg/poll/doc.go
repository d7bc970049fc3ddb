// Package poll turns the VTN's pull-based event API into change
// callbacks. A Poller periodically lists the events of a program, diffs
// the result against the previous snapshot and reports created, modified
// and deleted events to the registered handler.
package poll
