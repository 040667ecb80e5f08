package color

import "fmt"

// Target identifies the emitter set of a fixture's colour attribute.
type Target int

// Supported emitter sets.
const (
	TargetRGB Target = iota
	TargetRGBW
	TargetRGBA
	TargetRGBAW
)

// Channels returns the number of DMX channels the target occupies.
func (t Target) Channels() int {
	switch t {
	case TargetRGB:
		return 3
	case TargetRGBW, TargetRGBA:
		return 4
	case TargetRGBAW:
		return 5
	default:
		return 3
	}
}

// String returns the conventional name of the target.
func (t Target) String() string {
	switch t {
	case TargetRGB:
		return "rgb"
	case TargetRGBW:
		return "rgbw"
	case TargetRGBA:
		return "rgba"
	case TargetRGBAW:
		return "rgbaw"
	default:
		return "rgb"
	}
}

// Strategy selects how white (and amber) components are extracted when
// projecting onto fixtures with more than three emitters.
type Strategy string

// Supported strategies.
const (
	// StrategyBalanced extracts white = min(r,g,b) and reduces the RGB
	// components by that amount. Classic white extraction.
	StrategyBalanced Strategy = "balanced"

	// StrategyPreserveRGB leaves the RGB components unchanged and never
	// drives the white or amber emitters.
	StrategyPreserveRGB Strategy = "preserve_rgb"
)

// ParseStrategy validates a strategy name from configuration.
// The empty string resolves to StrategyBalanced.
func ParseStrategy(s string) (Strategy, error) {
	switch Strategy(s) {
	case StrategyBalanced, StrategyPreserveRGB:
		return Strategy(s), nil
	case "":
		return StrategyBalanced, nil
	default:
		return "", fmt.Errorf("color: unknown strategy %q", s)
	}
}

// Project maps a device-independent colour onto the given emitter set.
//
// The result has Channels() elements in the target's declared order, each
// normalized to [0,1]. With StrategyPreserveRGB the extra emitters stay at
// zero regardless of the input.
func Project(c Color, target Target, strategy Strategy) []float64 {
	r := clamp01(c.R)
	g := clamp01(c.G)
	b := clamp01(c.B)

	switch target {
	case TargetRGBW:
		r, g, b, w := extractWhite(r, g, b, strategy)
		return []float64{r, g, b, w}
	case TargetRGBA:
		r, g, b, a := extractAmber(r, g, b, strategy)
		return []float64{r, g, b, a}
	case TargetRGBAW:
		r, g, b, w := extractWhite(r, g, b, strategy)
		r, g, b, a := extractAmber(r, g, b, strategy)
		return []float64{r, g, b, a, w}
	default:
		return []float64{r, g, b}
	}
}

// ProjectRaw expands a Raw value to the target's width, truncating or
// zero-padding as needed. Projection and strategy are bypassed.
func ProjectRaw(raw Raw, target Target) []float64 {
	out := make([]float64, target.Channels())
	for i := range out {
		if i < len(raw) {
			out[i] = clamp01(raw[i])
		}
	}
	return out
}

// extractWhite pulls the common component of r,g,b into a white channel.
func extractWhite(r, g, b float64, strategy Strategy) (float64, float64, float64, float64) {
	if strategy == StrategyPreserveRGB {
		return r, g, b, 0
	}
	w := min3(r, g, b)
	return r - w, g - w, b - w, w
}

// extractAmber pulls a warm component into an amber channel. Amber sits at
// roughly (1.0, 0.5, 0.0) in RGB space, so the extractable amount is limited
// by the red channel and twice the green channel. Blue never contributes.
func extractAmber(r, g, b float64, strategy Strategy) (float64, float64, float64, float64) {
	if strategy == StrategyPreserveRGB {
		return r, g, b, 0
	}
	a := r
	if 2*g < a {
		a = 2 * g
	}
	return r - a, g - a/2, b, a
}

func min3(a, b, c float64) float64 {
	m := a
	if b < m {
		m = b
	}
	if c < m {
		m = c
	}
	return m
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
