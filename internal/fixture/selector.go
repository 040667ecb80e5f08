package fixture

// Selector is a pure function from a rig to an ordered fixture sequence.
//
// Every selector resolves against the rig's canonical order with duplicates
// removed, regardless of operand order, so set combinators stay order-stable.
// Selectors are first-class values: combinators build new selectors without
// mutating or evaluating their operands.
type Selector interface {
	Resolve(r *Rig) []*Fixture
}

// membership evaluates a selector into an identity set.
func membership(s Selector, r *Rig) map[*Fixture]struct{} {
	set := make(map[*Fixture]struct{})
	for _, f := range s.Resolve(r) {
		set[f] = struct{}{}
	}
	return set
}

// inRigOrder filters the rig's canonical order by a membership predicate.
func inRigOrder(r *Rig, keep func(*Fixture) bool) []*Fixture {
	var out []*Fixture
	for _, f := range r.fixtures {
		if keep(f) {
			out = append(out, f)
		}
	}
	return out
}

// All selects every fixture in the rig.
type All struct{}

func (All) Resolve(r *Rig) []*Fixture {
	return r.Fixtures()
}

// ByTag selects fixtures carrying the tag.
type ByTag struct {
	Tag string
}

func (s ByTag) Resolve(r *Rig) []*Fixture {
	return inRigOrder(r, func(f *Fixture) bool { return f.HasTag(s.Tag) })
}

// Group selects an explicit fixture list. Resolution reorders the result to
// rig order and drops fixtures not present in the rig.
type Group struct {
	Fixtures []*Fixture
}

func (s Group) Resolve(r *Rig) []*Fixture {
	set := make(map[*Fixture]struct{}, len(s.Fixtures))
	for _, f := range s.Fixtures {
		set[f] = struct{}{}
	}
	return inRigOrder(r, func(f *Fixture) bool {
		_, ok := set[f]
		return ok
	})
}

// union selects fixtures in either operand.
type union struct{ a, b Selector }

func (s union) Resolve(r *Rig) []*Fixture {
	inA := membership(s.a, r)
	inB := membership(s.b, r)
	return inRigOrder(r, func(f *Fixture) bool {
		_, okA := inA[f]
		_, okB := inB[f]
		return okA || okB
	})
}

// intersect selects fixtures in both operands.
type intersect struct{ a, b Selector }

func (s intersect) Resolve(r *Rig) []*Fixture {
	inA := membership(s.a, r)
	inB := membership(s.b, r)
	return inRigOrder(r, func(f *Fixture) bool {
		_, okA := inA[f]
		_, okB := inB[f]
		return okA && okB
	})
}

// difference selects fixtures in a but not in b.
type difference struct{ a, b Selector }

func (s difference) Resolve(r *Rig) []*Fixture {
	inA := membership(s.a, r)
	inB := membership(s.b, r)
	return inRigOrder(r, func(f *Fixture) bool {
		_, okA := inA[f]
		_, okB := inB[f]
		return okA && !okB
	})
}

// symmetricDifference selects fixtures in exactly one operand.
type symmetricDifference struct{ a, b Selector }

func (s symmetricDifference) Resolve(r *Rig) []*Fixture {
	inA := membership(s.a, r)
	inB := membership(s.b, r)
	return inRigOrder(r, func(f *Fixture) bool {
		_, okA := inA[f]
		_, okB := inB[f]
		return okA != okB
	})
}

// Union selects fixtures in either operand (a ∪ b).
func Union(a, b Selector) Selector { return union{a, b} }

// Intersect selects fixtures in both operands (a ∩ b).
func Intersect(a, b Selector) Selector { return intersect{a, b} }

// Difference selects fixtures in a but not b (a − b).
func Difference(a, b Selector) Selector { return difference{a, b} }

// SymmetricDifference selects fixtures in exactly one operand (a △ b).
func SymmetricDifference(a, b Selector) Selector { return symmetricDifference{a, b} }

// Contains reports whether the fixture is selected by s against the rig.
// A nil rig returns ErrNoRigBound: membership is only defined relative to
// a bound rig.
func Contains(s Selector, r *Rig, f *Fixture) (bool, error) {
	if r == nil {
		return false, ErrNoRigBound
	}
	_, ok := membership(s, r)[f]
	return ok, nil
}

// IsEmpty reports whether the selector yields no fixtures against the rig.
// A nil rig returns ErrNoRigBound. An empty selection is a defined outcome,
// not an error.
func IsEmpty(s Selector, r *Rig) (bool, error) {
	if r == nil {
		return false, ErrNoRigBound
	}
	return len(s.Resolve(r)) == 0, nil
}
