// Package engine drives the render and output pipeline: it composes a
// clip tree into DMX frames at a fixed rate and hands each universe to a
// wire transport.
//
//	┌──────────┐   Render(t)   ┌───────────┐   Encode   ┌───────┐
//	│   Clip   ├──────────────►│  per-fix  ├───────────►│ Frame │
//	│   tree   │ contributions │   merge   │  channels  │       │
//	└──────────┘               └───────────┘            └───┬───┘
//	                                                        │ Send
//	                                                 ┌──────▼──────┐
//	                                                 │  Transport  │
//	                                                 │ sACN/ArtNet │
//	                                                 └─────────────┘
//
// RenderFrame is pure: the same clip, time, and rig always produce the
// same frame, and no state is carried between calls. All mutation lives
// at the edges: transport sequence numbers and the play loop's clock.
//
// The play loop runs at a fixed frames-per-second with no catch-up: a
// late frame renders at the current clock time and the loop simply sleeps
// whatever remains of the interval.
package engine
