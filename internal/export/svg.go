package export

import (
	"fmt"
	"html"
	"strings"

	"github.com/san-kum/folio/internal/grid"
)

type SVGOptions struct {
	// CellWidth is the horizontal advance per glyph; rows are twice as tall.
	CellWidth  float64
	Background string
	Foreground string
}

func DefaultSVGOptions() SVGOptions {
	return SVGOptions{CellWidth: 8, Background: "#0a0a0a", Foreground: "#a1a1aa"}
}

// FrameToSVG draws a frame as monospace text, one <text> element per non-blank row.
func FrameToSVG(frame grid.Frame, opts SVGOptions) string {
	if len(frame) == 0 {
		return ""
	}
	if opts.CellWidth <= 0 {
		opts.CellWidth = DefaultSVGOptions().CellWidth
	}
	cw := opts.CellWidth
	ch := cw * 2
	width := float64(frame.Width()) * cw
	height := float64(len(frame)) * ch

	var sb strings.Builder

	sb.WriteString(fmt.Sprintf(`<?xml version="1.0" encoding="UTF-8"?>
<svg xmlns="http://www.w3.org/2000/svg" width="%.0f" height="%.0f" viewBox="0 0 %.0f %.0f">
<rect width="100%%" height="100%%" fill="%s"/>
<g fill="%s" font-family="monospace" font-size="%.1f" xml:space="preserve">
`, width, height, width, height, opts.Background, opts.Foreground, ch*0.8))

	for row, line := range frame {
		if strings.TrimSpace(line) == "" {
			continue
		}
		y := float64(row)*ch + ch*0.8
		sb.WriteString(fmt.Sprintf(`<text x="0" y="%.1f" textLength="%.0f">%s</text>
`, y, float64(len(line))*cw, html.EscapeString(line)))
	}

	sb.WriteString("</g>\n</svg>")
	return sb.String()
}
