package logo

import (
	"log"
	"time"

	"github.com/san-kum/folio/internal/grid"
)

// Timing controls how fast the engine advances in each phase.
type Timing struct {
	RevealInterval time.Duration
	RevealBatch    int
	RotateInterval time.Duration
}

func DefaultTiming() Timing {
	return Timing{
		RevealInterval: 25 * time.Millisecond,
		RevealBatch:    24,
		RotateInterval: 70 * time.Millisecond,
	}
}

// Engine drives one logo instance through its phases. It is not safe for concurrent
// use; the host loop owns it.
type Engine struct {
	sil    *Silhouette
	timing Timing
	phase  Phase
	last   time.Time
}

func NewEngine(sil *Silhouette, timing Timing) *Engine {
	if sil == nil {
		sil = Default()
	}
	def := DefaultTiming()
	if timing.RevealInterval <= 0 {
		timing.RevealInterval = def.RevealInterval
	}
	if timing.RevealBatch <= 0 {
		timing.RevealBatch = def.RevealBatch
	}
	if timing.RotateInterval <= 0 {
		timing.RotateInterval = def.RotateInterval
	}
	return &Engine{sil: sil, timing: timing, phase: Waiting{}}
}

func (e *Engine) Phase() Phase { return e.phase }

func (e *Engine) Silhouette() *Silhouette { return e.sil }

// Start moves a waiting engine into the reveal. It reports whether a transition
// happened; later calls are no-ops.
func (e *Engine) Start() bool {
	if _, ok := e.phase.(Waiting); !ok {
		return false
	}
	e.transition(Revealing{})
	return true
}

// Advance is the per-callback step. It returns a new frame when the active phase's
// interval has elapsed; a waiting engine never paints.
func (e *Engine) Advance(now time.Time) (grid.Frame, bool) {
	switch p := e.phase.(type) {
	case Revealing:
		if !e.due(now, e.timing.RevealInterval) {
			return nil, false
		}
		p.Count += e.timing.RevealBatch
		frame := e.sil.Reveal(p.Count)
		if p.Count >= e.sil.Filled() {
			e.transition(Rotating{})
		} else {
			e.phase = p
		}
		return frame, true
	case Rotating:
		if !e.due(now, e.timing.RotateInterval) {
			return nil, false
		}
		p.Tick++
		e.phase = p
		return e.sil.Rotated(p.Tick), true
	}
	return nil, false
}

// Blank is the frame shown before anything has been revealed.
func (e *Engine) Blank() grid.Frame { return grid.Empty(e.sil.Rows, e.sil.Cols) }

func (e *Engine) due(now time.Time, interval time.Duration) bool {
	if !e.last.IsZero() && now.Sub(e.last) < interval {
		return false
	}
	e.last = now
	return true
}

func (e *Engine) transition(next Phase) {
	log.Printf("logo: %s -> %s", e.phase.Name(), next.Name())
	e.phase = next
}
