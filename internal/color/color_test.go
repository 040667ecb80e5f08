package color

import (
	"math"
	"testing"
)

const tolerance = 1e-9

func approxEqual(a, b float64) bool {
	return math.Abs(a-b) < tolerance
}

func TestFromHSVPrimaries(t *testing.T) {
	tests := []struct {
		name    string
		h, s, v float64
		want    Color
	}{
		{"red", 0.0, 1.0, 1.0, Color{1, 0, 0}},
		{"green", 1.0 / 3.0, 1.0, 1.0, Color{0, 1, 0}},
		{"blue", 2.0 / 3.0, 1.0, 1.0, Color{0, 0, 1}},
		{"yellow", 1.0 / 6.0, 1.0, 1.0, Color{1, 1, 0}},
		{"cyan", 0.5, 1.0, 1.0, Color{0, 1, 1}},
		{"white", 0.0, 0.0, 1.0, Color{1, 1, 1}},
		{"gray", 0.0, 0.0, 0.5, Color{0.5, 0.5, 0.5}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := FromHSV(tt.h, tt.s, tt.v)
			if !approxEqual(got.R, tt.want.R) || !approxEqual(got.G, tt.want.G) || !approxEqual(got.B, tt.want.B) {
				t.Errorf("FromHSV(%v, %v, %v) = %+v, want %+v", tt.h, tt.s, tt.v, got, tt.want)
			}
		})
	}
}

func TestFromHSVHueWraps(t *testing.T) {
	a := FromHSV(0.2, 1.0, 1.0)
	b := FromHSV(1.2, 1.0, 1.0)
	if !approxEqual(a.R, b.R) || !approxEqual(a.G, b.G) || !approxEqual(a.B, b.B) {
		t.Errorf("hue 0.2 gave %+v but hue 1.2 gave %+v", a, b)
	}

	c := FromHSV(-0.8, 1.0, 1.0)
	if !approxEqual(a.R, c.R) || !approxEqual(a.G, c.G) || !approxEqual(a.B, c.B) {
		t.Errorf("hue 0.2 gave %+v but hue -0.8 gave %+v", a, c)
	}
}

func TestHSVRoundTrip(t *testing.T) {
	tests := []Color{
		{1, 0, 0},
		{0, 1, 0},
		{0, 0, 1},
		{1, 0.5, 0.25},
		{0.3, 0.6, 0.9},
	}

	for _, c := range tests {
		h, s, v := c.HSV()
		got := FromHSV(h, s, v)
		if !approxEqual(got.R, c.R) || !approxEqual(got.G, c.G) || !approxEqual(got.B, c.B) {
			t.Errorf("round trip of %+v via HSV(%v, %v, %v) gave %+v", c, h, s, v, got)
		}
	}
}

func TestHSVAchromatic(t *testing.T) {
	h, s, v := Color{1, 1, 1}.HSV()
	if !approxEqual(s, 0) || !approxEqual(v, 1) {
		t.Errorf("white HSV = (%v, %v, %v), want s=0 v=1", h, s, v)
	}

	_, s, v = Color{0.5, 0.5, 0.5}.HSV()
	if !approxEqual(s, 0) || !approxEqual(v, 0.5) {
		t.Errorf("gray HSV s=%v v=%v, want s=0 v=0.5", s, v)
	}
}
