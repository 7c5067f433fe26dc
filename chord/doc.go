// Package chord loads chord shapes from delimited records and applies the
// caller-side policies around them: deduplication, instrument filtering and
// lookup by name.
//
// A chord file has one header line followed by records of exactly five
// fields:
//
//	name,diagram,fingering,notes,degrees
//	C,x 3 2 0 1 0,x 3 2 x 1 x,x C E G C E,x 1 3 5 1 3
//
// The multi-value fields are space separated and use x for an unused string.
package chord

import "github.com/npillmayer/schuko/tracing"

func tracer() tracing.Trace {
	return tracing.Select("fretcards.chord")
}
