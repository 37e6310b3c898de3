package scene

import (
	"math"

	"github.com/san-kum/folio/internal/grid"
	"github.com/san-kum/folio/internal/shape"
)

const (
	shapeDuration = 50
	transitionLen = 15
	edgeWidth     = 1.8
)

// MorphRamp orders glyphs from faint to dense.
const MorphRamp = ".:+*#@"

// MorphState locates a tick inside the shape cycle.
type MorphState struct {
	Shape   int
	Next    int
	InShape int
	Blend   float64
}

// Morph returns the shape pair and crossfade weight for tick. The blend stays 0 until
// the final transitionLen ticks of a shape, then eases towards 1.
func Morph(tick int) MorphState {
	n := len(shape.Sequence)
	t := tick % (shapeDuration * n)
	s := MorphState{
		Shape:   t / shapeDuration,
		InShape: t % shapeDuration,
	}
	s.Next = (s.Shape + 1) % n
	if start := shapeDuration - transitionLen; s.InShape >= start {
		s.Blend = grid.Smoothstep(float64(s.InShape-start) / transitionLen)
	}
	return s
}

// Morphing cycles circle, ripples and star, crossfading edge distances between them.
func Morphing(tick int) grid.Frame {
	g := grid.New(Rows, Cols)
	cx, cy := float64(Cols)/2, float64(Rows)/2
	st := Morph(tick)
	current := shape.Sequence[st.Shape]
	next := shape.Sequence[st.Next]

	for y := 0; y < Rows; y++ {
		for x := 0; x < Cols; x++ {
			dx, dy := shape.Center(x, y, cx, cy)
			edge := shape.Blend(current(dx, dy, tick), next(dx, dy, tick), st.Blend)
			if edge < edgeWidth {
				ci := int(math.Floor((edgeWidth - edge) / edgeWidth * float64(len(MorphRamp)-1)))
				g.Set(y, x, grid.Glyph(MorphRamp, ci))
			}
		}
	}
	return g.Frame()
}
