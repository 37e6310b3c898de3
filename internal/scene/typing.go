package scene

import (
	"github.com/san-kum/folio/internal/grid"
)

const (
	charsPerTick = 3
	cursorGlyph  = "_"
)

var typingSource = []string{
	"",
	"  const life = async () => {",
	"",
	"    <build />",
	"    <deploy />",
	"    <ship />",
	"",
	"    while (true) {",
	"      create();",
	"      iterate();",
	"      improve();",
	"      ship();",
	"    }",
	"",
	"    // never stop building",
	"    return Infinity;",
	"  };",
}

// Typing reveals typingSource at three characters per tick. The line being typed
// carries a trailing cursor.
func Typing(tick int) grid.Frame {
	frame := make(grid.Frame, Rows)
	budget := tick * charsPerTick
	consumed := 0

	for i := 0; i < Rows; i++ {
		if i >= len(typingSource) {
			frame[i] = grid.Pad("", Cols)
			continue
		}
		line := typingSource[i]
		visible := revealed(len(line), budget-consumed)
		consumed += len(line)

		text := line[:visible]
		if visible > 0 && visible < len(line) {
			text += cursorGlyph
		}
		frame[i] = grid.Pad(text, Cols)
	}
	return frame
}

func revealed(lineLen, remaining int) int {
	if remaining < 0 {
		return 0
	}
	if remaining > lineLen {
		return lineLen
	}
	return remaining
}

func typingLength() int {
	n := 0
	for _, line := range typingSource {
		n += len(line)
	}
	return n
}
