package fixture

import (
	"fmt"

	"github.com/lumenforge/luxd/internal/color"
)

// Key identifies a logical fixture attribute in a State. The set of keys is
// closed: the base keys below plus per-segment colour variants produced by
// SegmentKey.
type Key string

// Base attribute keys.
const (
	KeyDimmer Key = "dimmer"
	KeyColor  Key = "color"
	KeyStrobe Key = "strobe"
	KeyPan    Key = "pan"
	KeyTilt   Key = "tilt"
	KeyGobo   Key = "gobo"
)

// SegmentKey returns the per-segment variant of a key. Segment 0 is the
// plain key; segment n ≥ 1 appends "_n" (color_1, color_2, ...).
func SegmentKey(base Key, segment int) Key {
	if segment <= 0 {
		return base
	}
	return Key(fmt.Sprintf("%s_%d", base, segment))
}

// ValueKind discriminates the variants a State value can carry.
type ValueKind int

// Value variants.
const (
	ValueScalar ValueKind = iota
	ValueTuple
	ValueColor
	ValueRaw
)

// Value is the tagged union stored in a State: a scalar in [0,1], a tuple of
// scalars, a device-independent colour, or raw channel values that bypass
// colour projection.
type Value struct {
	Kind   ValueKind
	Scalar float64
	Tuple  []float64
	Color  color.Color
	Raw    color.Raw
}

// Scalar wraps a float as a scalar Value.
func Scalar(v float64) Value {
	return Value{Kind: ValueScalar, Scalar: v}
}

// Tuple wraps a sequence of floats as a tuple Value.
func Tuple(vs ...float64) Value {
	return Value{Kind: ValueTuple, Tuple: vs}
}

// ColorValue wraps a Color as a Value.
func ColorValue(c color.Color) Value {
	return Value{Kind: ValueColor, Color: c}
}

// RawValue wraps exact channel values that bypass projection.
func RawValue(vs ...float64) Value {
	return Value{Kind: ValueRaw, Raw: color.Raw(vs)}
}

// State is a sparse mapping from attribute key to value. Keys need not cover
// a fixture's full attribute set; unset attributes take their codec default
// at encode time unless a previous blend layer supplied a value.
type State map[Key]Value

// Clone returns an independent copy of the state. Tuple and raw slices are
// copied so mutations of the clone cannot leak back.
func (s State) Clone() State {
	out := make(State, len(s))
	for k, v := range s {
		if v.Tuple != nil {
			t := make([]float64, len(v.Tuple))
			copy(t, v.Tuple)
			v.Tuple = t
		}
		if v.Raw != nil {
			r := make(color.Raw, len(v.Raw))
			copy(r, v.Raw)
			v.Raw = r
		}
		out[k] = v
	}
	return out
}
