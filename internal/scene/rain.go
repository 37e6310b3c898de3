package scene

import "github.com/san-kum/folio/internal/grid"

const (
	dropCount = 24
	tailLen   = 7
	rainWrap  = Rows + 10
)

// RainGlyphs is the palette drops cycle through.
const RainGlyphs = `01{}()<>[];:=+-%#@!&|/\*.~$^`

func dropColumn(d int) int { return (d*7 + d*d*3) % Cols }

func dropSpeed(d int) int { return d%3 + 1 }

func dropHead(d, tick int) int {
	return (tick*dropSpeed(d) + d*4) % rainWrap
}

// Rain renders falling glyph columns. Each drop has a fixed column and speed, and its
// head wraps after Rows+10 ticks so it spends some time off screen.
func Rain(tick int) grid.Frame {
	g := grid.New(Rows, Cols)
	for d := 0; d < dropCount; d++ {
		col := dropColumn(d)
		head := dropHead(d, tick)
		for row := 0; row < Rows; row++ {
			dist := head - row
			if dist >= 0 && dist < tailLen {
				g.Set(row, col, RainGlyphs[(tick+row+col)%len(RainGlyphs)])
			}
		}
	}
	return g.Frame()
}
