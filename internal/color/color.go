package color

import "math"

// Color is a device-independent colour value with normalized components.
// Components outside [0,1] are clamped during projection, not on construction.
type Color struct {
	R float64
	G float64
	B float64
}

// RGB constructs a Color from normalized red, green and blue components.
func RGB(r, g, b float64) Color {
	return Color{R: r, G: g, B: b}
}

// FromHSV constructs a Color from hue, saturation and value.
//
// All inputs are normalized to [0,1]; hue wraps modulo 1.0 so 1.2 and 0.2
// produce the same colour.
func FromHSV(h, s, v float64) Color {
	r, g, b := hsvToRGB(h, s, v)
	return Color{R: r, G: g, B: b}
}

// HSV returns the hue, saturation and value of the colour, all in [0,1].
func (c Color) HSV() (h, s, v float64) {
	return rgbToHSV(c.R, c.G, c.B)
}

// Raw carries exact per-channel target values that bypass projection.
// Values are written to the colour channels in declared order, truncated or
// zero-padded to the attribute's width.
type Raw []float64

// hsvToRGB converts HSV to RGB using the standard sector formula.
// Hue wraps modulo 1.0.
func hsvToRGB(h, s, v float64) (r, g, b float64) {
	if s == 0 {
		return v, v, v
	}

	h = math.Mod(h, 1.0)
	if h < 0 {
		h += 1.0
	}

	sector := int(h * 6.0)
	f := h*6.0 - float64(sector)
	p := v * (1.0 - s)
	q := v * (1.0 - s*f)
	t := v * (1.0 - s*(1.0-f))

	switch sector % 6 {
	case 0:
		return v, t, p
	case 1:
		return q, v, p
	case 2:
		return p, v, t
	case 3:
		return p, q, v
	case 4:
		return t, p, v
	default:
		return v, p, q
	}
}

// rgbToHSV converts RGB to HSV. Achromatic inputs report hue 0.
func rgbToHSV(r, g, b float64) (h, s, v float64) {
	maxC := math.Max(r, math.Max(g, b))
	minC := math.Min(r, math.Min(g, b))
	v = maxC

	delta := maxC - minC
	if maxC == 0 || delta == 0 {
		return 0, 0, v
	}
	s = delta / maxC

	switch maxC {
	case r:
		h = math.Mod((g-b)/delta, 6.0) / 6.0
	case g:
		h = ((b-r)/delta + 2.0) / 6.0
	default:
		h = ((r-g)/delta + 4.0) / 6.0
	}
	if h < 0 {
		h += 1.0
	}
	return h, s, v
}
