package fixture

import (
	"github.com/google/uuid"
)

// Vec3 is a fixture position in stage space, in metres.
type Vec3 struct {
	X float64
	Y float64
	Z float64
}

// Fixture is an addressable fixture instance. Fixtures are created once at
// rig-build time and are immutable afterwards except for tag updates. Each
// fixture is owned exclusively by its rig.
type Fixture struct {
	ID       string
	Type     *Type
	Universe int
	Address  int
	Pos      Vec3

	tags map[string]struct{}
}

// Option configures an optional fixture property at instantiation.
type Option func(*Fixture)

// At sets the fixture's stage position.
func At(x, y, z float64) Option {
	return func(f *Fixture) {
		f.Pos = Vec3{X: x, Y: y, Z: z}
	}
}

// Tagged adds free-form tags for selector matching.
func Tagged(tags ...string) Option {
	return func(f *Fixture) {
		for _, t := range tags {
			f.tags[t] = struct{}{}
		}
	}
}

// WithID overrides the generated fixture ID.
func WithID(id string) Option {
	return func(f *Fixture) {
		f.ID = id
	}
}

// Instantiate creates a fixture of the given type at a universe/address.
//
// Address validation happens when the fixture is added to a rig, not here,
// so a fixture can be constructed and inspected before patching.
func Instantiate(t *Type, universe, address int, opts ...Option) *Fixture {
	f := &Fixture{
		ID:       uuid.NewString(),
		Type:     t,
		Universe: universe,
		Address:  address,
		tags:     make(map[string]struct{}),
	}
	for _, opt := range opts {
		opt(f)
	}
	return f
}

// HasTag reports whether the fixture carries the tag.
func (f *Fixture) HasTag(tag string) bool {
	_, ok := f.tags[tag]
	return ok
}

// AddTag attaches a tag. Tag updates must happen at a frame boundary, like
// every other rig mutation.
func (f *Fixture) AddTag(tag string) {
	f.tags[tag] = struct{}{}
}

// RemoveTag detaches a tag if present.
func (f *Fixture) RemoveTag(tag string) {
	delete(f.tags, tag)
}

// Tags returns the fixture's tags in unspecified order.
func (f *Fixture) Tags() []string {
	out := make([]string, 0, len(f.tags))
	for t := range f.tags {
		out = append(out, t)
	}
	return out
}

// lastChannel is the fixture's highest occupied channel within its universe.
func (f *Fixture) lastChannel() int {
	return f.Address + f.Type.ChannelCount() - 1
}
