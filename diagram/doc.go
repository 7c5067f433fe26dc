// Package diagram draws fretboard chord diagrams.
//
// Geometry is computed in diagram units first (NewLayout): string i sits at
// x=i, the frame spans y=0 (bottom) to y=FrameHeight (nut side) and is cut
// into NumFrets cells. Draw replays a layout onto any Surface; Raster is the
// Surface used to produce PNG images.
package diagram

import "github.com/npillmayer/schuko/tracing"

func tracer() tracing.Trace {
	return tracing.Select("fretcards.diagram")
}
