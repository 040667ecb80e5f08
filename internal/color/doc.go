// Package color provides the device-independent colour model for luxd.
//
// Shows describe colour as a normalized RGB triple (optionally derived from
// HSV). Fixtures expose concrete emitter sets (RGB, RGBW, RGBA, RGBAW), and
// Project maps the device-independent value onto whichever set a fixture
// offers, governed by a white-extraction Strategy.
//
// # Key Types
//
//   - Color: normalized RGB value, constructed directly or via FromHSV
//   - Raw: exact per-channel values that bypass projection entirely
//   - Target: the emitter set of a fixture's colour attribute
//   - Strategy: white-extraction policy (balanced or preserve_rgb)
//
// Projection happens once, at encode time, after all blend layers have been
// merged. Blending operates on Color values so that white extraction cannot
// depend on layer order.
package color
