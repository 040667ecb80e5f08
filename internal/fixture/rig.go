package fixture

import "fmt"

// maxChannel is the highest channel number a DMX universe carries.
const maxChannel = 512

// Rig is the ordered collection of patched fixtures. Insertion order is the
// canonical iteration and index order used by selectors and effects.
type Rig struct {
	fixtures []*Fixture
}

// NewRig creates an empty rig.
func NewRig() *Rig {
	return &Rig{}
}

// Add patches a fixture into the rig.
//
// It validates the patch at build time: universe ≥ 1, address within
// [1,512], the channel footprint not extending past 512, and no overlap
// with an already-patched fixture in the same universe.
func (r *Rig) Add(f *Fixture) error {
	if f.Universe < 1 {
		return fmt.Errorf("%w: %d", ErrInvalidUniverse, f.Universe)
	}
	if f.Address < 1 || f.Address > maxChannel {
		return fmt.Errorf("%w: address %d", ErrAddressRange, f.Address)
	}
	if f.lastChannel() > maxChannel {
		return fmt.Errorf("%w: address %d with %d channels ends at %d",
			ErrAddressRange, f.Address, f.Type.ChannelCount(), f.lastChannel())
	}

	for _, existing := range r.fixtures {
		if existing.Universe != f.Universe {
			continue
		}
		if f.Address <= existing.lastChannel() && existing.Address <= f.lastChannel() {
			return fmt.Errorf("%w: universe %d channels %d-%d collide with fixture at %d-%d",
				ErrOverlap, f.Universe, f.Address, f.lastChannel(),
				existing.Address, existing.lastChannel())
		}
	}

	r.fixtures = append(r.fixtures, f)
	return nil
}

// Patch instantiates a fixture and adds it to the rig in one step.
func (r *Rig) Patch(t *Type, universe, address int, opts ...Option) (*Fixture, error) {
	f := Instantiate(t, universe, address, opts...)
	if err := r.Add(f); err != nil {
		return nil, err
	}
	return f, nil
}

// Fixtures returns the rig's fixtures in canonical (insertion) order.
// The returned slice is a copy; the fixtures themselves are shared.
func (r *Rig) Fixtures() []*Fixture {
	out := make([]*Fixture, len(r.fixtures))
	copy(out, r.fixtures)
	return out
}

// Len is the number of patched fixtures.
func (r *Rig) Len() int {
	return len(r.fixtures)
}

// Universes returns the distinct universe numbers in use, in first-seen order.
func (r *Rig) Universes() []int {
	seen := make(map[int]struct{})
	var out []int
	for _, f := range r.fixtures {
		if _, ok := seen[f.Universe]; !ok {
			seen[f.Universe] = struct{}{}
			out = append(out, f.Universe)
		}
	}
	return out
}
