package clip

import (
	"math"

	"github.com/lumenforge/luxd/internal/color"
	"github.com/lumenforge/luxd/internal/fixture"
)

// Template generates per-fixture parameters for a reusable effect. The
// built-in templates below cover the common stage looks; user effects
// implement the same interface or use Effect with a ParamsFunc directly.
type Template interface {
	Params(t float64, f *fixture.Fixture, index, segment int) fixture.State
}

// New builds an Effect clip from a template over a selection.
func New(tpl Template, sel fixture.Selector, duration, fadeIn, fadeOut float64) *Effect {
	return &Effect{
		Selector: sel,
		Params:   tpl.Params,
		Dur:      duration,
		FadeIn:   fadeIn,
		FadeOut:  fadeOut,
	}
}

// Pulse is a sinusoidal dimmer pulse.
type Pulse struct {
	// Rate is pulses per second.
	Rate float64
}

func (p Pulse) Params(t float64, _ *fixture.Fixture, _, _ int) fixture.State {
	v := 0.5 + 0.5*math.Sin(t*p.Rate*2*math.Pi)
	return fixture.State{fixture.KeyDimmer: fixture.Scalar(v)}
}

// Chase lights fixtures in sequence, wrapping around the selection.
type Chase struct {
	// Count is the number of fixtures in the chase.
	Count int

	// Speed is chases per second.
	Speed float64

	// Width is the lit section width; 1.0 lights one fixture at a time.
	Width float64
}

func (c Chase) Params(t float64, _ *fixture.Fixture, index, _ int) fixture.State {
	n := float64(c.Count)
	position := math.Mod(t*c.Speed, n)
	distance := math.Abs(float64(index) - position)
	if wrapped := n - distance; wrapped < distance {
		distance = wrapped
	}
	v := 1.0 - distance/c.Width
	if v < 0 {
		v = 0
	}
	return fixture.State{fixture.KeyDimmer: fixture.Scalar(v)}
}

// Rainbow cycles hue over time, offset per fixture index.
type Rainbow struct {
	// Speed is colour cycles per second.
	Speed float64

	// Saturation is the colour saturation in [0,1].
	Saturation float64
}

func (r Rainbow) Params(t float64, _ *fixture.Fixture, index, segment int) fixture.State {
	hue := math.Mod(t*r.Speed+float64(index)*0.1+float64(segment)*0.025, 1.0)
	return fixture.State{
		fixture.KeyDimmer: fixture.Scalar(1.0),
		fixture.KeyColor:  fixture.ColorValue(color.FromHSV(hue, r.Saturation, 1.0)),
	}
}

// Strobe flashes at a fixed rate and duty cycle.
type Strobe struct {
	// Rate is flashes per second.
	Rate float64

	// Duty is the on fraction of each flash period, in [0,1].
	Duty float64
}

func (s Strobe) Params(t float64, _ *fixture.Fixture, _, _ int) fixture.State {
	v := 0.0
	if math.Mod(t*s.Rate, 1.0) < s.Duty {
		v = 1.0
	}
	return fixture.State{fixture.KeyDimmer: fixture.Scalar(v)}
}

// Wave travels a sinusoidal dimmer wave across fixtures by index.
type Wave struct {
	// Speed is waves per second.
	Speed float64

	// Wavelength is the number of fixtures per wave cycle.
	Wavelength float64
}

func (w Wave) Params(t float64, _ *fixture.Fixture, index, _ int) fixture.State {
	phase := t*w.Speed - float64(index)/w.Wavelength
	v := 0.5 + 0.5*math.Sin(phase*2*math.Pi)
	return fixture.State{fixture.KeyDimmer: fixture.Scalar(v)}
}

// Solid is a static dimmer and optional colour, useful as a base layer.
type Solid struct {
	Dimmer float64
	Color  *color.Color
}

func (s Solid) Params(_ float64, _ *fixture.Fixture, _, _ int) fixture.State {
	state := fixture.State{fixture.KeyDimmer: fixture.Scalar(s.Dimmer)}
	if s.Color != nil {
		state[fixture.KeyColor] = fixture.ColorValue(*s.Color)
	}
	return state
}
