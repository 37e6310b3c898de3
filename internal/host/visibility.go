package host

// DefaultThreshold is the visible fraction that starts an animation.
const DefaultThreshold = 0.3

// Visibility fires onEnter the first time the observed ratio reaches the threshold,
// then disconnects itself.
type Visibility struct {
	threshold float64
	onEnter   func()
	connected bool
}

func NewVisibility(threshold float64, onEnter func()) *Visibility {
	if threshold <= 0 || threshold > 1 {
		threshold = DefaultThreshold
	}
	return &Visibility{threshold: threshold, onEnter: onEnter, connected: true}
}

// Observe feeds the current visible ratio and reports whether this call fired.
func (v *Visibility) Observe(ratio float64) bool {
	if !v.connected || ratio < v.threshold {
		return false
	}
	v.connected = false
	if v.onEnter != nil {
		v.onEnter()
	}
	return true
}

func (v *Visibility) Disconnect() { v.connected = false }

func (v *Visibility) Connected() bool { return v.connected }

// VisibleRatio is the fraction of the span [top, top+height) inside the viewport
// [viewTop, viewTop+viewHeight).
func VisibleRatio(top, height, viewTop, viewHeight int) float64 {
	if height <= 0 || viewHeight <= 0 {
		return 0
	}
	lo := max(top, viewTop)
	hi := min(top+height, viewTop+viewHeight)
	if hi <= lo {
		return 0
	}
	return float64(hi-lo) / float64(height)
}

// FittedRatio is like VisibleRatio but measured against the part of the span that
// can fit in the viewport at once, so a span taller than the viewport still
// reaches 1 when it fills the screen.
func FittedRatio(top, height, viewTop, viewHeight int) float64 {
	if height <= 0 || viewHeight <= 0 {
		return 0
	}
	fit := min(height, viewHeight)
	return VisibleRatio(top, height, viewTop, viewHeight) * float64(height) / float64(fit)
}
