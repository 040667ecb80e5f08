package clip

import (
	"math"

	"github.com/lumenforge/luxd/internal/fixture"
)

// Infinite marks a clip with no natural end. Activity windows treat it like
// any other duration: local time is always inside [0, Infinite).
var Infinite = math.Inf(1)

// Contribution is one fixture's share of a clip's output at an instant:
// the sparse state to blend in and the operator to blend it with.
type Contribution struct {
	Fixture *fixture.Fixture
	Op      BlendOp
	State   fixture.State
}

// Clip is a time-bounded lighting instruction.
//
// Render maps a clip-local time to contributions in traversal order; the
// compositor folds them per fixture with Merge, later contributions acting
// as the overlay operand. Render must be pure: no retained state between
// calls, identical output for identical input.
//
// Times outside [0, Duration()) yield nil — inactive, not an error.
type Clip interface {
	// Duration is the clip's length in seconds; Infinite for unbounded.
	Duration() float64

	// Render returns the clip's contributions at local time t.
	Render(t float64, rig *fixture.Rig) []Contribution
}

// active reports whether local time t falls in [0, duration).
func active(t, duration float64) bool {
	return t >= 0 && t < duration
}
