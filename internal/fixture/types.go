package fixture

import (
	"fmt"

	"github.com/lumenforge/luxd/internal/color"
)

// Slot is one named attribute segment in a fixture type's channel layout.
type Slot struct {
	// Key is the state key for this slot. Segment 0 uses the plain
	// attribute key; segment n ≥ 1 uses the "_n" suffixed variant.
	Key Key

	// Offset is the slot's first channel, relative to the fixture address.
	Offset int

	// Attr is the codec that encodes this slot.
	Attr Attr

	// Segment is the slot's segment index, 0-based.
	Segment int
}

// Type is an ordered composition of attributes defining a fixture's channel
// footprint and name → offset layout. Types are immutable once constructed
// and are shared read-only by every fixture of that type.
type Type struct {
	attrs        []Attr
	slots        []Slot
	channelCount int
	segmentCount int
	strategy     color.Strategy // empty means "use engine default"
}

// NewType builds a fixture type from an ordered attribute list.
//
// Attributes that declare segmentation (Segments > 1) must agree on the
// count; a mismatch returns ErrSegmentMismatch. Unsegmented attributes are
// laid out once and shared across segments.
func NewType(attrs ...Attr) (*Type, error) {
	if len(attrs) == 0 {
		return nil, ErrNoAttributes
	}

	segments := 1
	for _, a := range attrs {
		if s := a.Segments(); s > 1 {
			if segments > 1 && s != segments {
				return nil, fmt.Errorf("%w: %d vs %d", ErrSegmentMismatch, segments, s)
			}
			segments = s
		}
	}

	t := &Type{
		attrs:        attrs,
		segmentCount: segments,
	}

	offset := 0
	for _, a := range attrs {
		for seg := 0; seg < a.Segments(); seg++ {
			t.slots = append(t.slots, Slot{
				Key:     SegmentKey(a.Key(), seg),
				Offset:  offset,
				Attr:    a,
				Segment: seg,
			})
			offset += a.Width()
		}
	}
	t.channelCount = offset

	return t, nil
}

// WithStrategy returns a copy of the type whose colour attributes use the
// given projection strategy instead of the engine-wide default.
func (t *Type) WithStrategy(s color.Strategy) *Type {
	cpy := *t
	cpy.strategy = s
	return &cpy
}

// ChannelCount is the fixture's total channel footprint.
func (t *Type) ChannelCount() int { return t.channelCount }

// SegmentCount is the maximum segment replication across attributes.
func (t *Type) SegmentCount() int { return t.segmentCount }

// Layout returns the ordered slot list: each named attribute segment with
// its byte offset and codec.
func (t *Type) Layout() []Slot {
	out := make([]Slot, len(t.slots))
	copy(out, t.slots)
	return out
}

// Strategy resolves the colour projection strategy for this type: the
// per-type override if set, else the supplied engine default, else balanced.
func (t *Type) Strategy(engineDefault color.Strategy) color.Strategy {
	if t.strategy != "" {
		return t.strategy
	}
	if engineDefault != "" {
		return engineDefault
	}
	return color.StrategyBalanced
}

// Encode turns a sparse state into channel bytes keyed by offset.
//
// Segment slots look up their suffixed key first (color_2), then fall back
// to the plain key (color), then to the codec default. All blend-layer
// merging has already happened by the time Encode runs; colour values are
// projected onto the emitter set here and nowhere earlier.
func (t *Type) Encode(state State, engineDefault color.Strategy) map[int]byte {
	strategy := t.Strategy(engineDefault)

	out := make(map[int]byte, t.channelCount)
	for _, slot := range t.slots {
		value, ok := state[slot.Key]
		if !ok && slot.Segment > 0 {
			value, ok = state[slot.Attr.Key()]
		}
		if !ok {
			value = slot.Attr.Default()
		}

		for i, b := range slot.Attr.Encode(value, strategy) {
			out[slot.Offset+i] = b
		}
	}
	return out
}
