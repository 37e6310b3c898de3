package scene

import (
	"time"

	"github.com/san-kum/folio/internal/grid"
)

// Cursor is the scheduler position: which scene is active and how far into it.
type Cursor struct {
	Scene int
	Tick  int
}

// step advances one tick, rolling over to the next scene once the active one has
// run for its full duration. The returned tick is the one to render.
func (c Cursor) step(seq []Scene) (next Cursor, render int) {
	c.Tick++
	render = c.Tick
	if c.Tick >= seq[c.Scene].Duration {
		c.Tick = 0
		c.Scene = (c.Scene + 1) % len(seq)
	}
	return c, render
}

// Scheduler cycles a scene sequence forever, throttled per scene interval.
// It is not safe for concurrent use; the host loop calls it from one goroutine.
type Scheduler struct {
	seq    []Scene
	cursor Cursor
	last   time.Time
}

func NewScheduler(seq []Scene) (*Scheduler, error) {
	if len(seq) == 0 {
		return nil, ErrEmptySequence
	}
	for _, s := range seq {
		if err := s.validate(); err != nil {
			return nil, err
		}
	}
	cp := make([]Scene, len(seq))
	copy(cp, seq)
	return &Scheduler{seq: cp}, nil
}

// Advance is the per-callback step. It renders a new frame when at least the active
// scene's interval has elapsed since the previous paint; otherwise it reports false.
func (s *Scheduler) Advance(now time.Time) (grid.Frame, bool) {
	active := s.seq[s.cursor.Scene]
	if !s.last.IsZero() && now.Sub(s.last) < active.Interval {
		return nil, false
	}
	s.last = now

	next, tick := s.cursor.step(s.seq)
	frame := active.Render(tick)
	s.cursor = next
	return frame, true
}

func (s *Scheduler) Cursor() Cursor { return s.cursor }

// Active returns the scene that will render on the next advance.
func (s *Scheduler) Active() Scene { return s.seq[s.cursor.Scene] }

func (s *Scheduler) Blank() grid.Frame { return grid.Empty(Rows, Cols) }
