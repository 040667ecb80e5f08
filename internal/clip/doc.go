// Package clip implements the declarative show layer of luxd: time-bounded
// lighting instructions, their composition on timelines, and the blend
// operators that merge overlapping contributions.
//
// # Architecture
//
//	root Clip ──Render(t, rig)──▶ []Contribution ──Merge──▶ per-fixture State
//
// A Clip maps a local time to contributions: (fixture, blend op, sparse
// state) triples in traversal order. Timeline containers translate global
// time into child-local time and concatenate child contributions in add
// order; BPMTimeline does the same with beat positions resolved through a
// tempo map. The engine accumulates contributions per fixture with Merge
// and encodes the final states.
//
// # Key Types
//
//   - Clip: the node interface (Duration, Render)
//   - Scene: static state with fades
//   - Effect: a parameter function of (time, fixture, index, segment)
//   - Timeline, BPMTimeline: scheduling containers
//   - BlendOp: SET, MUL, ADD_CLAMP layer operators
//   - Template: built-in effect generators (Pulse, Chase, Rainbow, ...)
//
// Rendering outside a clip's active window is a defined, empty outcome, as
// is a selector that matches no fixtures. Neither is an error.
package clip
