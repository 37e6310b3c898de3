package logo

import (
	"errors"
	"math"
	"sort"
	"sync"
)

// ErrEmptyArt indicates art with no occupied cells.
var ErrEmptyArt = errors.New("logo: art has no occupied cells")

// Cell is a grid coordinate.
type Cell struct {
	Row, Col int
}

// span is the occupied column range of one row; min > max means the row is empty.
type span struct {
	min, max int
}

func (s span) empty() bool { return s.min > s.max }

// Silhouette is the lookup data derived from logo art. It is built once and only
// read afterwards, so a single value can back any number of engines.
type Silhouette struct {
	Rows, Cols int

	front, back             [][]bool
	frontBounds, backBounds []span

	// byDistance lists occupied cells nearest-first from the centroid.
	byDistance []Cell

	centerRow, centerCol float64
	pivot                float64
}

// Default returns the silhouette of the built-in Art.
var Default = sync.OnceValue(func() *Silhouette {
	s, err := NewSilhouette(Art)
	if err != nil {
		panic(err)
	}
	return s
})

func NewSilhouette(lines []string) (*Silhouette, error) {
	cols := 0
	for _, line := range lines {
		cols = max(cols, len(line))
	}
	s := &Silhouette{Rows: len(lines), Cols: cols}

	s.front = make([][]bool, s.Rows)
	var cells []Cell
	var sumRow, sumCol float64
	for r, line := range lines {
		s.front[r] = make([]bool, cols)
		for c := 0; c < len(line); c++ {
			if line[c] == ' ' {
				continue
			}
			s.front[r][c] = true
			cells = append(cells, Cell{r, c})
			sumRow += float64(r)
			sumCol += float64(c)
		}
	}
	if len(cells) == 0 {
		return nil, ErrEmptyArt
	}
	s.centerRow = sumRow / float64(len(cells))
	s.centerCol = sumCol / float64(len(cells))

	s.byDistance = make([]Cell, len(cells))
	copy(s.byDistance, cells)
	sort.SliceStable(s.byDistance, func(i, j int) bool {
		return s.distSq(s.byDistance[i]) < s.distSq(s.byDistance[j])
	})

	s.frontBounds = rowBounds(s.front)

	lo, hi := cols, -1
	for _, b := range s.frontBounds {
		if !b.empty() {
			lo = min(lo, b.min)
			hi = max(hi, b.max)
		}
	}
	s.pivot = float64(lo+hi) / 2

	s.back = make([][]bool, s.Rows)
	for r := range s.back {
		s.back[r] = make([]bool, cols)
		for c := 0; c < cols; c++ {
			src := int(math.Round(2*s.pivot - float64(c)))
			if src >= 0 && src < cols {
				s.back[r][c] = s.front[r][src]
			}
		}
	}
	s.backBounds = rowBounds(s.back)

	return s, nil
}

func rowBounds(occ [][]bool) []span {
	bounds := make([]span, len(occ))
	for r, row := range occ {
		b := span{min: len(row), max: -1}
		for c, filled := range row {
			if filled {
				b.min = min(b.min, c)
				b.max = max(b.max, c)
			}
		}
		bounds[r] = b
	}
	return bounds
}

// distSq is the squared aspect-corrected distance from the centroid.
func (s *Silhouette) distSq(c Cell) float64 {
	dr := float64(c.Row) - s.centerRow
	dc := (float64(c.Col) - s.centerCol) / 2
	return dr*dr + dc*dc
}

// Filled reports the number of occupied cells.
func (s *Silhouette) Filled() int { return len(s.byDistance) }

func (s *Silhouette) Occupied(row, col int) bool {
	if row < 0 || row >= s.Rows || col < 0 || col >= s.Cols {
		return false
	}
	return s.front[row][col]
}

// Mirrored reports occupancy of the back face.
func (s *Silhouette) Mirrored(row, col int) bool {
	if row < 0 || row >= s.Rows || col < 0 || col >= s.Cols {
		return false
	}
	return s.back[row][col]
}

// RowOccupied reports whether any cell of row is occupied.
func (s *Silhouette) RowOccupied(row int) bool {
	if row < 0 || row >= s.Rows {
		return false
	}
	return !s.frontBounds[row].empty()
}

// Pivot is the bounding-box horizontal midpoint, the rotation and mirror axis.
func (s *Silhouette) Pivot() float64 { return s.pivot }

func (s *Silhouette) Centroid() (row, col float64) { return s.centerRow, s.centerCol }

// RevealOrder returns a copy of the occupied cells, nearest to the centroid first.
func (s *Silhouette) RevealOrder() []Cell {
	out := make([]Cell, len(s.byDistance))
	copy(out, s.byDistance)
	return out
}
