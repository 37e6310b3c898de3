package host

import (
	"context"
	"fmt"
	"sync"
	"time"

	"github.com/san-kum/folio/internal/grid"
)

// DefaultRate is the callback cadence of a typical display.
const DefaultRate = 60

// Stepper advances an animation for the callback at now and reports whether it
// produced a new frame.
type Stepper interface {
	Advance(now time.Time) (grid.Frame, bool)
}

// Surface displays committed frames.
type Surface interface {
	Commit(frame grid.Frame) error
}

type Option func(*Loop)

// WithRate sets the callback frequency in Hz.
func WithRate(hz int) Option {
	return func(l *Loop) {
		if hz > 0 {
			l.interval = time.Second / time.Duration(hz)
		}
	}
}

func WithSurface(s Surface) Option {
	return func(l *Loop) { l.surface = s }
}

type Loop struct {
	stepper  Stepper
	interval time.Duration

	mu      sync.Mutex
	surface Surface
	cancel  context.CancelFunc
	frames  int
}

func NewLoop(st Stepper, opts ...Option) *Loop {
	l := &Loop{
		stepper:  st,
		interval: time.Second / DefaultRate,
	}
	for _, opt := range opts {
		opt(l)
	}
	return l
}

// Attach sets the surface frames are committed to; nil detaches it.
func (l *Loop) Attach(s Surface) {
	l.mu.Lock()
	l.surface = s
	l.mu.Unlock()
}

// Frames reports how many frames were committed.
func (l *Loop) Frames() int {
	l.mu.Lock()
	defer l.mu.Unlock()
	return l.frames
}

// Frame runs a single callback. Output is dropped when no surface is attached.
func (l *Loop) Frame(now time.Time) (bool, error) {
	frame, ok := l.stepper.Advance(now)
	if !ok {
		return false, nil
	}
	l.mu.Lock()
	s := l.surface
	l.mu.Unlock()
	if s == nil {
		return false, nil
	}
	if err := s.Commit(frame); err != nil {
		return false, fmt.Errorf("host: commit frame: %w", err)
	}
	l.mu.Lock()
	l.frames++
	l.mu.Unlock()
	return true, nil
}

// Run invokes Frame on every tick until ctx is done or Stop is called. Teardown is
// not an error; only a failed commit is returned.
func (l *Loop) Run(ctx context.Context) error {
	ctx, cancel := context.WithCancel(ctx)
	defer cancel()

	l.mu.Lock()
	l.cancel = cancel
	l.mu.Unlock()

	ticker := time.NewTicker(l.interval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return nil
		case now := <-ticker.C:
			if _, err := l.Frame(now); err != nil {
				return err
			}
		}
	}
}

// Stop cancels a running loop. It is safe to call more than once.
func (l *Loop) Stop() {
	l.mu.Lock()
	cancel := l.cancel
	l.mu.Unlock()
	if cancel != nil {
		cancel()
	}
}
