package clip

import (
	"github.com/lumenforge/luxd/internal/color"
	"github.com/lumenforge/luxd/internal/fixture"
)

// BlendOp is a pure binary operator over (existing, new) attribute values,
// independent of attribute semantics.
type BlendOp int

// Blend operators.
const (
	// Set overwrites the existing value.
	Set BlendOp = iota

	// Mul multiplies, clamped to [0,1]. Its identity element is 1, so a
	// MUL layer that does not touch an attribute leaves it unchanged.
	Mul

	// AddClamp adds, clamped to [0,1].
	AddClamp
)

// String returns the operator's conventional name.
func (op BlendOp) String() string {
	switch op {
	case Set:
		return "set"
	case Mul:
		return "mul"
	case AddClamp:
		return "add_clamp"
	default:
		return "unknown"
	}
}

func clamp01(v float64) float64 {
	if v < 0 {
		return 0
	}
	if v > 1 {
		return 1
	}
	return v
}

// applyScalar combines two scalars under the operator.
func applyScalar(base, overlay float64, op BlendOp) float64 {
	switch op {
	case Mul:
		return clamp01(base * overlay)
	case AddClamp:
		return clamp01(base + overlay)
	default:
		return overlay
	}
}

// applyValue combines two tagged values componentwise. Colour stays in
// colour space: channel expansion happens only at encode time, after all
// layers have merged, so white extraction cannot depend on layer order.
// Raw values always replace: exact channel values cannot be meaningfully
// combined with projected colour.
func applyValue(base, overlay fixture.Value, op BlendOp) fixture.Value {
	if overlay.Kind == fixture.ValueRaw || base.Kind == fixture.ValueRaw {
		return overlay
	}

	switch overlay.Kind {
	case fixture.ValueColor:
		b := base.Color // zero colour when the base entry is unset or scalar
		o := overlay.Color
		return fixture.ColorValue(color.RGB(
			applyScalar(b.R, o.R, op),
			applyScalar(b.G, o.G, op),
			applyScalar(b.B, o.B, op),
		))

	case fixture.ValueTuple:
		out := make([]float64, len(overlay.Tuple))
		for i, v := range overlay.Tuple {
			var b float64
			if i < len(base.Tuple) {
				b = base.Tuple[i]
			}
			out[i] = applyScalar(b, v, op)
		}
		return fixture.Tuple(out...)

	default:
		return fixture.Scalar(applyScalar(base.Scalar, overlay.Scalar, op))
	}
}

// Merge composes an overlay state onto a base state under the operator and
// returns a new state; neither operand is mutated.
//
// The operator applies per overlay key, with 0 as the base default for keys
// the base has not seen. Base keys the overlay does not touch carry through
// unchanged for every operator — the identity-element semantics the MUL
// operator requires, extended uniformly so that a layer only ever affects
// the attributes it names.
func Merge(base, overlay fixture.State, op BlendOp) fixture.State {
	out := base.Clone()
	for key, value := range overlay {
		out[key] = applyValue(base[key], value, op)
	}
	return out
}
