package logo

// Phase is the engine state. Exactly one variant is active at a time:
// Waiting, then Revealing, then Rotating forever.
type Phase interface {
	Name() string
	isPhase()
}

// Waiting holds until the logo is first scrolled into view.
type Waiting struct{}

// Revealing grows the radial reveal; Count may overshoot the cell total on the last batch.
type Revealing struct {
	Count int
}

// Rotating spins the logo; Tick starts at zero on entry.
type Rotating struct {
	Tick int
}

func (Waiting) Name() string   { return "waiting" }
func (Revealing) Name() string { return "revealing" }
func (Rotating) Name() string  { return "rotating" }

func (Waiting) isPhase()   {}
func (Revealing) isPhase() {}
func (Rotating) isPhase()  {}
