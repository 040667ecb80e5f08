package engine

import (
	"context"
	"fmt"
	"time"

	"github.com/lumenforge/luxd/internal/clip"
	"github.com/lumenforge/luxd/internal/color"
	"github.com/lumenforge/luxd/internal/fixture"
	"github.com/lumenforge/luxd/internal/infrastructure/logging"
)

// Transport carries one universe of channel data per datagram. The sACN
// and Art-Net transports implement it.
type Transport interface {
	Open() error
	Send(universe int, data []byte) error
	Close() error
}

// FrameObserver receives timing for each frame the play loop emits.
// Implementations must not block; the telemetry writer batches
// asynchronously.
type FrameObserver interface {
	ObserveFrame(universes int, renderDur, sendDur time.Duration)
}

// Config holds the engine's render settings.
type Config struct {
	// FPS is the play loop frame rate. Zero means 40.
	FPS float64

	// ColorStrategy is the engine-wide white extraction default applied
	// when a fixture type declares none.
	ColorStrategy color.Strategy
}

// Engine composes clips into DMX frames and emits them through a
// transport.
//
// RenderFrame and Send may be called directly for single-frame use
// (blackouts, programmer output); Play wraps them in a fixed-rate loop.
// The engine is driven by one goroutine at a time; SetRig must only be
// called between frames.
type Engine struct {
	cfg       Config
	rig       *fixture.Rig
	transport Transport
	log       *logging.Logger
	observer  FrameObserver
	started   bool
}

// New creates an engine over a transport. The rig starts empty; SetRig
// patches one in.
func New(cfg Config, transport Transport, log *logging.Logger) *Engine {
	if cfg.FPS <= 0 {
		cfg.FPS = 40
	}
	if log == nil {
		log = logging.Default()
	}
	return &Engine{
		cfg:       cfg,
		transport: transport,
		log:       log.With("component", "engine"),
	}
}

// SetRig replaces the engine's rig. Callers must only swap rigs between
// frames; the engine does not lock.
func (e *Engine) SetRig(rig *fixture.Rig) {
	e.rig = rig
}

// Rig returns the engine's current rig, possibly nil.
func (e *Engine) Rig() *fixture.Rig {
	return e.rig
}

// SetObserver installs a frame timing observer, or removes it with nil.
func (e *Engine) SetObserver(o FrameObserver) {
	e.observer = o
}

// RenderFrame composes the clip at time t into a full frame for the
// engine's rig.
//
// Every patched fixture is encoded, whether or not the clip touches it,
// so fixtures outside the clip's selection emit their attribute defaults
// and a frame is always a complete picture of the rig. A nil clip
// renders the all-defaults frame (blackout with centred pan/tilt).
func (e *Engine) RenderFrame(c clip.Clip, t float64) Frame {
	frame := make(Frame)
	if e.rig == nil {
		return frame
	}

	order := e.rig.Fixtures()
	states := make(map[*fixture.Fixture]fixture.State, len(order))
	for _, f := range order {
		states[f] = fixture.State{}
	}

	if c != nil {
		for _, contrib := range c.Render(t, e.rig) {
			base, ok := states[contrib.Fixture]
			if !ok {
				// Contribution for a fixture outside the rig, e.g. a
				// stale Group selector. Nothing to patch it to.
				continue
			}
			states[contrib.Fixture] = clip.Merge(base, contrib.State, contrib.Op)
		}
	}

	for _, f := range order {
		for offset, value := range f.Type.Encode(states[f], e.cfg.ColorStrategy) {
			frame.set(f.Universe, f.Address+offset, value)
		}
	}
	return frame
}

// Start opens the transport. Starting a started engine is a no-op.
func (e *Engine) Start() error {
	if e.started {
		return nil
	}
	if err := e.transport.Open(); err != nil {
		return err
	}
	e.started = true
	e.log.Info("transport started", "fps", e.cfg.FPS)
	return nil
}

// Send emits one datagram per universe in the frame, in ascending
// universe order. The first transport failure aborts and is wrapped in
// ErrSendFailed; there is no retry at this layer.
func (e *Engine) Send(frame Frame) error {
	if !e.started {
		return ErrNotStarted
	}
	for _, universe := range frame.Universes() {
		if err := e.transport.Send(universe, frame.Flatten(universe)); err != nil {
			return fmt.Errorf("%w: universe %d: %w", ErrSendFailed, universe, err)
		}
	}
	return nil
}

// Stop closes the transport. Stopping a stopped engine is a no-op.
func (e *Engine) Stop() error {
	if !e.started {
		return nil
	}
	e.started = false
	e.log.Info("transport stopped")
	return e.transport.Close()
}

// Play renders and sends the clip at the configured frame rate, starting
// at clip time startAt, until the clip ends, the context is cancelled,
// or a send fails. The transport is started if needed and always stopped
// on return.
//
// Each frame's time comes from the monotonic clock, so a slow frame
// shifts subsequent frame times rather than triggering catch-up bursts.
func (e *Engine) Play(ctx context.Context, c clip.Clip, startAt float64) error {
	if err := e.Start(); err != nil {
		return err
	}
	defer e.Stop()

	interval := time.Duration(float64(time.Second) / e.cfg.FPS)
	duration := c.Duration()
	begin := time.Now()

	e.log.Info("playback started", "duration", duration, "start_at", startAt)

	for {
		frameStart := time.Now()
		t := startAt + frameStart.Sub(begin).Seconds()
		if t > duration {
			e.log.Info("playback finished", "elapsed", frameStart.Sub(begin).Seconds())
			return nil
		}

		frame := e.RenderFrame(c, t)
		renderDur := time.Since(frameStart)

		sendStart := time.Now()
		if err := e.Send(frame); err != nil {
			e.log.Error("playback aborted", "error", err)
			return err
		}
		sendDur := time.Since(sendStart)

		if e.observer != nil {
			e.observer.ObserveFrame(len(frame), renderDur, sendDur)
		}

		sleep := interval - time.Since(frameStart)
		if sleep < 0 {
			sleep = 0
		}
		select {
		case <-ctx.Done():
			e.log.Info("playback cancelled")
			return ctx.Err()
		case <-time.After(sleep):
		}
	}
}
