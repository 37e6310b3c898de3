package scene

import (
	"errors"
	"fmt"
	"sort"
	"time"

	"github.com/san-kum/folio/internal/grid"
)

// Grid size of the free-form animation. Glyphs are about twice as tall as wide, so
// doubling the columns gives a square-looking canvas.
const (
	Size = 22
	Rows = Size
	Cols = Size * 2
)

var (
	// ErrUnknownScene indicates a scene name with no registered renderer.
	ErrUnknownScene = errors.New("scene: unknown scene")

	// ErrEmptySequence indicates a scheduler built without scenes.
	ErrEmptySequence = errors.New("scene: empty scene sequence")

	// ErrInvalidTiming indicates a non-positive duration or interval.
	ErrInvalidTiming = errors.New("scene: duration and interval must be positive")
)

// Func renders a whole frame for tick. Implementations are pure.
type Func func(tick int) grid.Frame

// Scene describes one entry of the animation sequence.
type Scene struct {
	Name     string
	Render   Func
	Duration int
	Interval time.Duration
}

func (s Scene) validate() error {
	if s.Render == nil {
		return fmt.Errorf("%w: %q", ErrUnknownScene, s.Name)
	}
	if s.Duration <= 0 || s.Interval <= 0 {
		return fmt.Errorf("%w: %q", ErrInvalidTiming, s.Name)
	}
	return nil
}

type Registry struct {
	scenes map[string]Func
}

func NewRegistry() *Registry {
	r := &Registry{scenes: make(map[string]Func)}
	r.scenes["typing"] = Typing
	r.scenes["rain"] = Rain
	r.scenes["morph"] = Morphing
	return r
}

func (r *Registry) Register(name string, fn Func) {
	r.scenes[name] = fn
}

func (r *Registry) Get(name string) (Func, error) {
	fn, ok := r.scenes[name]
	if !ok {
		return nil, fmt.Errorf("%w: %s", ErrUnknownScene, name)
	}
	return fn, nil
}

func (r *Registry) Names() []string {
	names := make([]string, 0, len(r.scenes))
	for name := range r.scenes {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// Build resolves scene names into a sequence.
func (r *Registry) Build(specs ...Spec) ([]Scene, error) {
	seq := make([]Scene, 0, len(specs))
	for _, sp := range specs {
		fn, err := r.Get(sp.Name)
		if err != nil {
			return nil, err
		}
		seq = append(seq, Scene{Name: sp.Name, Render: fn, Duration: sp.Duration, Interval: sp.Interval})
	}
	return seq, nil
}

// Spec is a scene entry before its renderer is resolved.
type Spec struct {
	Name     string
	Duration int
	Interval time.Duration
}

// DefaultSequence is typing, rain, then morphing.
func DefaultSequence() []Scene {
	return []Scene{
		{Name: "typing", Render: Typing, Duration: 80, Interval: 60 * time.Millisecond},
		{Name: "rain", Render: Rain, Duration: 60, Interval: 100 * time.Millisecond},
		{Name: "morph", Render: Morphing, Duration: 150, Interval: 80 * time.Millisecond},
	}
}
