// Package duration implements the ISO 8601 duration strings used by the
// OpenADR 3.0 data model (interval periods, randomization windows, time
// zone offsets).
//
// # Supported Forms
//
// Durations follow the schema pattern: an optional sign, "P", day/week
// designators, and a "T" section with hours, minutes, and seconds:
//
//	PT15M    -P1DT2H30M    P2W    PT1.5S    P0D
//
// Designators are accepted case-insensitively on parse; output is always
// the canonical uppercase form with weeks expanded to days. Year and month
// designators are rejected: their length depends on the calendar, which a
// fixed time.Duration cannot represent.
package duration
