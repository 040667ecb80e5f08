package clip

import "github.com/lumenforge/luxd/internal/fixture"

// Scene is a static look: one state applied to every selected fixture for
// the clip's duration, with optional fade in/out.
type Scene struct {
	// Selector chooses the fixtures this scene drives.
	Selector fixture.Selector

	// State is the look, shared by every selected fixture.
	State fixture.State

	// Dur is the clip duration in seconds; Infinite for an open-ended
	// scene.
	Dur float64

	// FadeIn and FadeOut are the fade ramp lengths in seconds. Values up
	// to Dur/2 are recommended but not enforced.
	FadeIn  float64
	FadeOut float64

	// Op is the blend operator for this scene's contributions.
	Op BlendOp

	// Fade selects which attributes the envelope scales.
	Fade FadeMode
}

// Duration implements Clip.
func (s *Scene) Duration() float64 { return s.Dur }

// Render implements Clip.
func (s *Scene) Render(t float64, rig *fixture.Rig) []Contribution {
	if !active(t, s.Dur) {
		return nil
	}

	mult := envelope(t, s.Dur, s.FadeIn, s.FadeOut)
	state := applyEnvelope(s.State, mult, s.Fade)

	selected := s.Selector.Resolve(rig)
	out := make([]Contribution, 0, len(selected))
	for _, f := range selected {
		out = append(out, Contribution{Fixture: f, Op: s.Op, State: state})
	}
	return out
}
