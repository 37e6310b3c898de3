// Package shape provides procedural edge-distance functions for ASCII animation.
//
// Each function maps a centered, aspect-corrected coordinate and a frame tick to the
// distance from the nearest drawn outline. Values near zero lie on the outline;
// [NoEdge] marks points that can never be drawn.
//
// Coordinates are expected in cell units with horizontal distances already halved,
// since a monospace glyph is roughly twice as tall as it is wide. [Center] does that
// conversion.
package shape
