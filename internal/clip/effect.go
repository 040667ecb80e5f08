package clip

import "github.com/lumenforge/luxd/internal/fixture"

// ParamsFunc computes a fixture's state at an instant. It receives the
// clip-local time, the fixture, the fixture's index in the selection order,
// and the segment index being rendered (0 for unsegmented fixtures).
type ParamsFunc func(t float64, f *fixture.Fixture, index, segment int) fixture.State

// Effect is a math-driven clip: a parameter function evaluated per selected
// fixture per frame, with access to time, the fixture, and its position in
// the selection.
//
// For fixtures whose type declares more than one segment, Params is invoked
// once per segment and any plain colour key in its result is remapped to the
// per-segment variant, so a single function can paint a pixel bar cell by
// cell.
type Effect struct {
	Selector fixture.Selector
	Params   ParamsFunc

	Dur     float64
	FadeIn  float64
	FadeOut float64
	Op      BlendOp
	Fade    FadeMode
}

// Duration implements Clip.
func (e *Effect) Duration() float64 { return e.Dur }

// Render implements Clip.
func (e *Effect) Render(t float64, rig *fixture.Rig) []Contribution {
	if !active(t, e.Dur) {
		return nil
	}

	mult := envelope(t, e.Dur, e.FadeIn, e.FadeOut)

	selected := e.Selector.Resolve(rig)
	out := make([]Contribution, 0, len(selected))
	for i, f := range selected {
		state := e.renderFixture(t, f, i)
		if len(state) == 0 {
			continue
		}
		state = applyEnvelope(state, mult, e.Fade)
		out = append(out, Contribution{Fixture: f, Op: e.Op, State: state})
	}
	return out
}

// renderFixture evaluates the parameter function for one fixture, expanding
// segmented fixtures into per-segment colour keys.
func (e *Effect) renderFixture(t float64, f *fixture.Fixture, index int) fixture.State {
	segments := f.Type.SegmentCount()
	if segments <= 1 {
		return e.Params(t, f, index, 0)
	}

	merged := make(fixture.State)
	for seg := 0; seg < segments; seg++ {
		state := e.Params(t, f, index, seg)
		for key, value := range state {
			if key == fixture.KeyColor {
				key = fixture.SegmentKey(fixture.KeyColor, seg)
			}
			merged[key] = value
		}
	}
	return merged
}
