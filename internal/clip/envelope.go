package clip

import "github.com/lumenforge/luxd/internal/fixture"

// FadeMode selects which attributes a clip's fade envelope scales.
type FadeMode int

const (
	// FadeDimmer scales only the dimmer attribute. Fades dim; they do not
	// recolor or move fixtures. This is the default.
	FadeDimmer FadeMode = iota

	// FadeAll scales every scalar attribute proportionally.
	FadeAll
)

// envelope returns the fade multiplier at local time t: a linear ramp 0→1
// over [0, fadeIn), 1 across the steady region, and 1→0 over
// (duration-fadeOut, duration].
func envelope(t, duration, fadeIn, fadeOut float64) float64 {
	mult := 1.0
	if fadeIn > 0 && t < fadeIn {
		mult = t / fadeIn
	} else if fadeOut > 0 && duration != Infinite {
		if remaining := duration - t; remaining < fadeOut {
			mult = remaining / fadeOut
			if mult < 0 {
				mult = 0
			}
		}
	}
	return mult
}

// applyEnvelope scales a contribution state by the fade multiplier.
// The input state is not mutated.
func applyEnvelope(state fixture.State, mult float64, mode FadeMode) fixture.State {
	if mult >= 1 {
		return state
	}

	out := state.Clone()
	for key, value := range out {
		if mode == FadeDimmer && key != fixture.KeyDimmer {
			continue
		}
		if value.Kind == fixture.ValueScalar {
			out[key] = fixture.Scalar(value.Scalar * mult)
		}
	}
	return out
}
