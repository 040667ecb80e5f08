package fixture

import "github.com/lumenforge/luxd/internal/color"

// Attr is one logical control parameter of a fixture and its DMX encoding.
//
// Implementations are stateless value types: Encode is a pure function of
// the supplied value. Width is the channel count of a single segment;
// Segments is how many independent copies the attribute occupies.
type Attr interface {
	// Key is the attribute's name in a State (dimmer, color, ...).
	Key() Key

	// Width is the number of DMX channels one segment occupies.
	Width() int

	// Segments is the replication count. 1 for unsegmented attributes.
	Segments() int

	// Default is the value encoded when a State has no entry for the key.
	Default() Value

	// Encode turns a value into Width() bytes. Out-of-range inputs are
	// clamped, never rejected.
	Encode(v Value, strategy color.Strategy) []byte
}

// toDMX clamps a normalized value and scales it to one DMX byte.
func toDMX(v float64) byte {
	if v < 0 {
		v = 0
	}
	if v > 1 {
		v = 1
	}
	return byte(v * 255)
}

// toDMX16 clamps a normalized value and splits it big-endian into a
// coarse/fine channel pair.
func toDMX16(v float64) (coarse, fine byte) {
	if v < 0 {
		v = 0
	}
	if v > 1 {
		v = 1
	}
	val := uint16(v * 65535)
	return byte(val >> 8), byte(val & 0xFF)
}

// scalarOf extracts a scalar from any value variant, falling back to def.
func scalarOf(v Value, def float64) float64 {
	switch v.Kind {
	case ValueScalar:
		return v.Scalar
	case ValueTuple:
		if len(v.Tuple) > 0 {
			return v.Tuple[0]
		}
	case ValueRaw:
		if len(v.Raw) > 0 {
			return v.Raw[0]
		}
	}
	return def
}

// encodeScalar encodes a scalar attribute at 8 or 16 bit width.
func encodeScalar(v float64, fine bool) []byte {
	if fine {
		coarse, lo := toDMX16(v)
		return []byte{coarse, lo}
	}
	return []byte{toDMX(v)}
}

// Dimmer is an intensity attribute, optionally 16-bit.
type Dimmer struct {
	Fine bool
}

func (d Dimmer) Key() Key       { return KeyDimmer }
func (d Dimmer) Segments() int  { return 1 }
func (d Dimmer) Default() Value { return Scalar(0) }

func (d Dimmer) Width() int {
	if d.Fine {
		return 2
	}
	return 1
}

func (d Dimmer) Encode(v Value, _ color.Strategy) []byte {
	return encodeScalar(scalarOf(v, 0), d.Fine)
}

// Strobe is a single-channel strobe rate attribute.
type Strobe struct{}

func (Strobe) Key() Key       { return KeyStrobe }
func (Strobe) Width() int     { return 1 }
func (Strobe) Segments() int  { return 1 }
func (Strobe) Default() Value { return Scalar(0) }

func (Strobe) Encode(v Value, _ color.Strategy) []byte {
	return encodeScalar(scalarOf(v, 0), false)
}

// Pan is a horizontal position attribute, optionally 16-bit.
// Its default is 0.5 (centre), matching moving-head conventions.
type Pan struct {
	Fine bool
}

func (p Pan) Key() Key       { return KeyPan }
func (p Pan) Segments() int  { return 1 }
func (p Pan) Default() Value { return Scalar(0.5) }

func (p Pan) Width() int {
	if p.Fine {
		return 2
	}
	return 1
}

func (p Pan) Encode(v Value, _ color.Strategy) []byte {
	return encodeScalar(scalarOf(v, 0.5), p.Fine)
}

// Tilt is a vertical position attribute, optionally 16-bit.
// Its default is 0.5 (centre).
type Tilt struct {
	Fine bool
}

func (t Tilt) Key() Key       { return KeyTilt }
func (t Tilt) Segments() int  { return 1 }
func (t Tilt) Default() Value { return Scalar(0.5) }

func (t Tilt) Width() int {
	if t.Fine {
		return 2
	}
	return 1
}

func (t Tilt) Encode(v Value, _ color.Strategy) []byte {
	return encodeScalar(scalarOf(v, 0.5), t.Fine)
}

// Gobo is a single-channel gobo wheel selector. Zero is open / no gobo.
type Gobo struct{}

func (Gobo) Key() Key       { return KeyGobo }
func (Gobo) Width() int     { return 1 }
func (Gobo) Segments() int  { return 1 }
func (Gobo) Default() Value { return Scalar(0) }

func (Gobo) Encode(v Value, _ color.Strategy) []byte {
	return encodeScalar(scalarOf(v, 0), false)
}

// Skip reserves unused channels. It ignores any input and always emits
// zeros of its declared width.
type Skip struct {
	Count int
}

func (Skip) Key() Key       { return Key("_skip") }
func (Skip) Segments() int  { return 1 }
func (Skip) Default() Value { return Value{} }

func (s Skip) Width() int {
	if s.Count < 1 {
		return 1
	}
	return s.Count
}

func (s Skip) Encode(_ Value, _ color.Strategy) []byte {
	return make([]byte, s.Width())
}

// ColorAttr is the colour attribute of a fixture: an emitter set (RGB,
// RGBW, RGBA, RGBAW), optionally replicated across independent segments
// such as the cells of a pixel bar.
type ColorAttr struct {
	Target color.Target

	// Segs is the segment replication count; values below 1 mean 1.
	Segs int
}

func (c ColorAttr) Key() Key   { return KeyColor }
func (c ColorAttr) Width() int { return c.Target.Channels() }

func (c ColorAttr) Segments() int {
	if c.Segs < 1 {
		return 1
	}
	return c.Segs
}

func (c ColorAttr) Default() Value { return ColorValue(color.RGB(0, 0, 0)) }

// Encode projects the value onto the attribute's emitter set. Colour values
// go through white/amber extraction per the strategy; Raw values are written
// verbatim, truncated or zero-padded to the width; tuples are treated as raw
// channel values for compatibility with plain (r,g,b) input.
func (c ColorAttr) Encode(v Value, strategy color.Strategy) []byte {
	var channels []float64
	switch v.Kind {
	case ValueRaw:
		channels = color.ProjectRaw(v.Raw, c.Target)
	case ValueTuple:
		if len(v.Tuple) == 3 {
			channels = color.Project(color.RGB(v.Tuple[0], v.Tuple[1], v.Tuple[2]), c.Target, strategy)
		} else {
			channels = color.ProjectRaw(color.Raw(v.Tuple), c.Target)
		}
	default:
		channels = color.Project(v.Color, c.Target, strategy)
	}

	out := make([]byte, len(channels))
	for i, ch := range channels {
		out[i] = toDMX(ch)
	}
	return out
}
