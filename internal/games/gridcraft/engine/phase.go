package engine

// Phase is a difficulty tier keyed by remaining round time.
// The window is [End, Start] in remaining seconds (Start is the upper bound).
type Phase struct {
	Number     int
	Start      float64 // Upper bound of the window (remaining seconds)
	End        float64 // Lower bound of the window (remaining seconds)
	Speed      float64 // Presentation speed factor
	Multiplier float64 // Score multiplier
}

// PhaseTable lists phases from easiest (index 0) to hardest.
type PhaseTable []Phase

// At returns the phase for the given remaining time. Phases are checked
// hardest first, so a value on a shared boundary resolves to the harder
// phase; anything above every threshold stays in the first phase.
func (t PhaseTable) At(remaining float64) Phase {
	for i := len(t) - 1; i > 0; i-- {
		if remaining <= t[i].Start {
			return t[i]
		}
	}
	return t[0]
}

// ByNumber returns the phase with the given number.
func (t PhaseTable) ByNumber(n int) (Phase, bool) {
	for _, p := range t {
		if p.Number == n {
			return p, true
		}
	}
	return Phase{}, false
}

// PhaseTracker remembers the last observed phase to report transitions.
type PhaseTracker struct {
	table   PhaseTable
	current Phase
}

// NewPhaseTracker creates a tracker positioned on the first phase.
func NewPhaseTracker(table PhaseTable) *PhaseTracker {
	return &PhaseTracker{table: table, current: table[0]}
}

// Update maps remaining time to a phase and reports whether it differs from
// the phase seen on the previous call.
func (pt *PhaseTracker) Update(remaining float64) (Phase, bool) {
	next := pt.table.At(remaining)
	changed := next.Number != pt.current.Number
	pt.current = next
	return next, changed
}

// Current returns the last observed phase.
func (pt *PhaseTracker) Current() Phase {
	return pt.current
}

// Reset moves the tracker back to the first phase.
func (pt *PhaseTracker) Reset() {
	pt.current = pt.table[0]
}
