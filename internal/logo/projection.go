package logo

import (
	"math"

	"github.com/san-kum/folio/internal/grid"
)

const (
	rotationSpeed   = 0.03
	transitionTicks = 30
	edgeOnCos       = 0.015
	depthRange      = 20.0

	fillGlyph = '#'
	edgeGlyph = '.'
)

const (
	// DepthRamp runs from nearest to farthest.
	DepthRamp = "@%#*+=:-."
	// ShimmerGlyphs overlay the pulse wave while rotation spins up.
	ShimmerGlyphs = "01{}()<>[];:=+-%#@!&|/*.~$^"
)

// Angle returns the rotation angle for tick along with the eased spin-up factor.
// Speed ramps in over the first transitionTicks ticks, after which the angle grows
// linearly without bound.
func Angle(tick int) (angle, eased float64) {
	progress := math.Min(1, float64(tick)/transitionTicks)
	eased = grid.Smoothstep(progress)
	return float64(tick) * rotationSpeed * eased, eased
}

// EdgeOn reports whether the logo is seen from its thin edge at tick.
func EdgeOn(tick int) bool {
	angle, _ := Angle(tick)
	return math.Abs(math.Cos(angle)) < edgeOnCos
}

// Reveal draws the first count cells of the radial order as filled glyphs.
func (s *Silhouette) Reveal(count int) grid.Frame {
	g := grid.New(s.Rows, s.Cols)
	n := max(0, min(count, len(s.byDistance)))
	for _, c := range s.byDistance[:n] {
		g.Set(c.Row, c.Col, fillGlyph)
	}
	return g.Frame()
}

// Rotated renders the silhouette spun about the vertical pivot axis. Columns are
// foreshortened by |cos|; the mirrored face shows once cos turns negative; glyphs
// are shaded by signed depth along the view direction.
func (s *Silhouette) Rotated(tick int) grid.Frame {
	angle, eased := Angle(tick)
	cosT, sinT := math.Cos(angle), math.Sin(angle)
	absCos := math.Abs(cosT)
	g := grid.New(s.Rows, s.Cols)

	if absCos < edgeOnCos {
		pc := int(math.Round(s.pivot))
		for row, b := range s.frontBounds {
			if !b.empty() {
				g.Set(row, pc, edgeGlyph)
			}
		}
		return g.Frame()
	}

	occ, bounds := s.front, s.frontBounds
	if cosT < 0 {
		occ, bounds = s.back, s.backBounds
	}
	intensity := 1 - eased*0.7
	t := float64(tick)

	for row, b := range bounds {
		if b.empty() {
			continue
		}
		s1 := s.pivot + (float64(b.min)-s.pivot)*absCos
		s2 := s.pivot + (float64(b.max)-s.pivot)*absCos
		colStart := max(0, int(math.Floor(math.Min(s1, s2)))-1)
		colEnd := min(s.Cols-1, int(math.Ceil(math.Max(s1, s2)))+1)

		for x := colStart; x <= colEnd; x++ {
			exact := s.pivot + (float64(x)-s.pivot)/absCos
			lo, hi := int(math.Floor(exact)), int(math.Ceil(exact))
			if lo < 0 || hi >= s.Cols {
				continue
			}
			filledLo, filledHi := occ[row][lo], occ[row][hi]
			if !filledLo && !filledHi {
				continue
			}

			src := hi
			switch {
			case filledLo && filledHi:
				src = int(math.Round(exact))
			case filledLo:
				src = lo
			}

			var ch byte
			if filledLo != filledHi {
				ch = edgeGlyph
			} else {
				depth := (exact - s.pivot) * sinT
				nd := math.Max(-1, math.Min(1, depth/depthRange))
				ch = grid.Glyph(DepthRamp, int(math.Floor((nd+1)/2*float64(len(DepthRamp)-1))))
			}

			dr := float64(row) - s.centerRow
			dc := (float64(src) - s.centerCol) / 2
			pulse := math.Sin(math.Sqrt(dr*dr+dc*dc)*0.8 - t*0.35)
			if pulse*intensity > 0.5 {
				ch = ShimmerGlyphs[(tick*7+row*13+src*31)%len(ShimmerGlyphs)]
			}

			g.Set(row, x, ch)
		}
	}
	return g.Frame()
}
