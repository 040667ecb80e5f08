package clip

import (
	"math"
	"testing"

	"github.com/lumenforge/luxd/internal/color"
	"github.com/lumenforge/luxd/internal/fixture"
)

func dimmerOf(t *testing.T, s fixture.State) float64 {
	t.Helper()
	v, ok := s[fixture.KeyDimmer]
	if !ok {
		t.Fatal("params carry no dimmer")
	}
	return v.Scalar
}

func TestPulseParams(t *testing.T) {
	p := Pulse{Rate: 1.0}

	// One full cycle per second: trough at 0.75s, crest at 0.25s.
	if v := dimmerOf(t, p.Params(0.25, nil, 0, 0)); math.Abs(v-1.0) > 1e-9 {
		t.Errorf("crest = %v, want 1.0", v)
	}
	if v := dimmerOf(t, p.Params(0.75, nil, 0, 0)); math.Abs(v) > 1e-9 {
		t.Errorf("trough = %v, want 0.0", v)
	}
	if v := dimmerOf(t, p.Params(0, nil, 0, 0)); math.Abs(v-0.5) > 1e-9 {
		t.Errorf("start = %v, want 0.5", v)
	}
}

func TestChaseParams(t *testing.T) {
	c := Chase{Count: 4, Speed: 1.0, Width: 1.0}

	// At t=0 the chase head sits on fixture 0.
	if v := dimmerOf(t, c.Params(0, nil, 0, 0)); v != 1.0 {
		t.Errorf("head fixture = %v, want 1.0", v)
	}
	if v := dimmerOf(t, c.Params(0, nil, 2, 0)); v != 0.0 {
		t.Errorf("far fixture = %v, want 0.0", v)
	}

	// The distance wraps: fixture 3 is one step from position 0, same as
	// fixture 1.
	c.Width = 2.0
	a := dimmerOf(t, c.Params(0, nil, 1, 0))
	b := dimmerOf(t, c.Params(0, nil, 3, 0))
	if math.Abs(a-b) > 1e-9 {
		t.Errorf("wrap asymmetry: fixture 1 = %v, fixture 3 = %v", a, b)
	}
	if math.Abs(a-0.5) > 1e-9 {
		t.Errorf("one-step brightness = %v, want 0.5 at width 2", a)
	}
}

func TestRainbowParams(t *testing.T) {
	r := Rainbow{Speed: 0.1, Saturation: 1.0}

	s := r.Params(0, nil, 0, 0)
	if v := dimmerOf(t, s); v != 1.0 {
		t.Errorf("dimmer = %v, want 1.0", v)
	}
	if c := s[fixture.KeyColor].Color; c != color.RGB(1, 0, 0) {
		t.Errorf("hue 0 = %+v, want red", c)
	}

	// Index offsets hue by 0.1 per fixture; index 10 wraps back to red.
	s = r.Params(0, nil, 10, 0)
	c := s[fixture.KeyColor].Color
	if math.Abs(c.R-1) > 1e-9 || math.Abs(c.G) > 1e-9 || math.Abs(c.B) > 1e-9 {
		t.Errorf("hue at index 10 = %+v, want wrapped red", c)
	}
}

func TestStrobeParams(t *testing.T) {
	s := Strobe{Rate: 10, Duty: 0.5}

	if v := dimmerOf(t, s.Params(0.01, nil, 0, 0)); v != 1.0 {
		t.Errorf("on phase = %v, want 1.0", v)
	}
	if v := dimmerOf(t, s.Params(0.06, nil, 0, 0)); v != 0.0 {
		t.Errorf("off phase = %v, want 0.0", v)
	}
}

func TestWaveParams(t *testing.T) {
	w := Wave{Speed: 1.0, Wavelength: 4.0}

	// Fixtures a full wavelength apart are in phase.
	a := dimmerOf(t, w.Params(0.3, nil, 0, 0))
	b := dimmerOf(t, w.Params(0.3, nil, 4, 0))
	if math.Abs(a-b) > 1e-9 {
		t.Errorf("full-wavelength fixtures out of phase: %v vs %v", a, b)
	}

	// Half a wavelength apart are in antiphase around 0.5.
	c := dimmerOf(t, w.Params(0.3, nil, 2, 0))
	if math.Abs((a+c)-1.0) > 1e-9 {
		t.Errorf("antiphase sum = %v, want 1.0", a+c)
	}
}

func TestSolidParams(t *testing.T) {
	red := color.RGB(1, 0, 0)
	s := Solid{Dimmer: 0.6, Color: &red}

	got := s.Params(123, nil, 0, 0)
	if v := dimmerOf(t, got); v != 0.6 {
		t.Errorf("dimmer = %v, want 0.6", v)
	}
	if got[fixture.KeyColor].Color != red {
		t.Error("colour not carried through")
	}

	if _, ok := (Solid{Dimmer: 1}).Params(0, nil, 0, 0)[fixture.KeyColor]; ok {
		t.Error("colour key present without a colour")
	}
}

func TestEffectWindowAndFade(t *testing.T) {
	rig := dimmerRig(t, 2)
	e := New(Solid{Dimmer: 1.0}, fixture.All{}, 4.0, 2.0, 0)

	if got := e.Render(4.0, rig); got != nil {
		t.Error("effect active at its end")
	}
	got := level(t, e.Render(1.0, rig), 2)
	if v := got[0].State[fixture.KeyDimmer].Scalar; math.Abs(v-0.5) > 1e-9 {
		t.Errorf("mid-fade dimmer = %v, want 0.5", v)
	}
}

func TestEffectIndexFollowsSelectionOrder(t *testing.T) {
	rig := dimmerRig(t, 3)

	var indices []int
	e := &Effect{
		Selector: fixture.All{},
		Params: func(_ float64, _ *fixture.Fixture, index, _ int) fixture.State {
			indices = append(indices, index)
			return fixture.State{fixture.KeyDimmer: fixture.Scalar(1)}
		},
		Dur: 1.0,
	}

	_ = e.Render(0, rig)
	if len(indices) != 3 || indices[0] != 0 || indices[1] != 1 || indices[2] != 2 {
		t.Errorf("indices = %v, want [0 1 2]", indices)
	}
}

func TestEffectSegmentExpansion(t *testing.T) {
	rig := barRig(t, 4)
	e := New(Rainbow{Speed: 0, Saturation: 1}, fixture.All{}, Infinite, 0, 0)

	got := level(t, e.Render(0, rig), 1)
	state := got[0].State

	// Plain colour keys are remapped per segment, so a 4-segment bar gets
	// colour, color_1, color_2, color_3.
	for seg := 0; seg < 4; seg++ {
		key := fixture.SegmentKey(fixture.KeyColor, seg)
		if _, ok := state[key]; !ok {
			t.Errorf("missing segment key %s", key)
		}
	}

	// Segment hue offset is 0.025 per cell: segment 0 stays pure red,
	// later segments shift toward orange.
	c0 := state[fixture.KeyColor].Color
	c3 := state[fixture.SegmentKey(fixture.KeyColor, 3)].Color
	if c0 != color.RGB(1, 0, 0) {
		t.Errorf("segment 0 = %+v, want red", c0)
	}
	if c3.G <= c0.G {
		t.Error("segment hue offset not applied")
	}
}
