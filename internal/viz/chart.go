package viz

import (
	"github.com/guptarohit/asciigraph"
	"github.com/san-kum/folio/internal/repos"
)

// StarsChart plots star counts in listing order. It returns "" when there is
// nothing worth plotting: fewer than two repositories or a flat series.
func StarsChart(items []repos.Repository, width int) string {
	if len(items) < 2 {
		return ""
	}
	data := make([]float64, len(items))
	flat := true
	for i, r := range items {
		data[i] = float64(r.Stars)
		if r.Stars != items[0].Stars {
			flat = false
		}
	}
	if flat {
		return ""
	}
	return asciigraph.Plot(data,
		asciigraph.Height(5),
		asciigraph.Width(width),
		asciigraph.Caption("stars"))
}
