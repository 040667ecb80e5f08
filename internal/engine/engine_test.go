package engine

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/lumenforge/luxd/internal/clip"
	"github.com/lumenforge/luxd/internal/color"
	"github.com/lumenforge/luxd/internal/fixture"
)

// mockTransport records sent universes and can fail on demand.
type mockTransport struct {
	opened  int
	closed  int
	sent    []sentFrame
	sendErr error
	openErr error
}

type sentFrame struct {
	universe int
	data     []byte
}

func (m *mockTransport) Open() error {
	m.opened++
	return m.openErr
}

func (m *mockTransport) Send(universe int, data []byte) error {
	if m.sendErr != nil {
		return m.sendErr
	}
	cpy := make([]byte, len(data))
	copy(cpy, data)
	m.sent = append(m.sent, sentFrame{universe: universe, data: cpy})
	return nil
}

func (m *mockTransport) Close() error {
	m.closed++
	return nil
}

func rgbDimmerType(t *testing.T) *fixture.Type {
	t.Helper()
	typ, err := fixture.NewType(fixture.Dimmer{}, fixture.ColorAttr{Target: color.TargetRGB})
	if err != nil {
		t.Fatalf("NewType: %v", err)
	}
	return typ
}

func newTestEngine(t *testing.T, rig *fixture.Rig) (*Engine, *mockTransport) {
	t.Helper()
	tr := &mockTransport{}
	e := New(Config{FPS: 200}, tr, nil)
	e.SetRig(rig)
	return e, tr
}

func TestRenderFrameSceneToChannels(t *testing.T) {
	rig := fixture.NewRig()
	if _, err := rig.Patch(rgbDimmerType(t), 1, 1); err != nil {
		t.Fatalf("Patch: %v", err)
	}
	e, _ := newTestEngine(t, rig)

	scene := &clip.Scene{
		Selector: fixture.All{},
		State: fixture.State{
			fixture.KeyDimmer: fixture.Scalar(1.0),
			fixture.KeyColor:  fixture.ColorValue(color.RGB(1, 0, 0)),
		},
		Dur: clip.Infinite,
	}

	frame := e.RenderFrame(scene, 0)
	want := map[int]byte{1: 255, 2: 255, 3: 0, 4: 0}
	for ch, v := range want {
		if got := frame[1][ch]; got != v {
			t.Errorf("channel %d = %d, want %d", ch, got, v)
		}
	}
}

func TestRenderFrameUntouchedFixtureEmitsDefaults(t *testing.T) {
	panType, err := fixture.NewType(fixture.Dimmer{}, fixture.Pan{})
	if err != nil {
		t.Fatalf("NewType: %v", err)
	}

	rig := fixture.NewRig()
	lit, err := rig.Patch(rgbDimmerType(t), 1, 1)
	if err != nil {
		t.Fatalf("Patch: %v", err)
	}
	if _, err := rig.Patch(panType, 1, 100); err != nil {
		t.Fatalf("Patch: %v", err)
	}
	e, _ := newTestEngine(t, rig)

	scene := &clip.Scene{
		Selector: fixture.Group{Fixtures: []*fixture.Fixture{lit}},
		State:    fixture.State{fixture.KeyDimmer: fixture.Scalar(1.0)},
		Dur:      clip.Infinite,
	}

	frame := e.RenderFrame(scene, 0)
	if got := frame[1][100]; got != 0 {
		t.Errorf("untouched dimmer = %d, want 0", got)
	}
	if got := frame[1][101]; got != 127 {
		t.Errorf("untouched pan = %d, want centre 127", got)
	}
}

func TestRenderFrameMultiUniverseIsolation(t *testing.T) {
	rig := fixture.NewRig()
	a, err := rig.Patch(rgbDimmerType(t), 1, 1)
	if err != nil {
		t.Fatalf("Patch: %v", err)
	}
	if _, err := rig.Patch(rgbDimmerType(t), 2, 1); err != nil {
		t.Fatalf("Patch: %v", err)
	}
	e, _ := newTestEngine(t, rig)

	scene := &clip.Scene{
		Selector: fixture.Group{Fixtures: []*fixture.Fixture{a}},
		State:    fixture.State{fixture.KeyDimmer: fixture.Scalar(1.0)},
		Dur:      clip.Infinite,
	}

	frame := e.RenderFrame(scene, 0)
	if frame[1][1] != 255 {
		t.Errorf("universe 1 dimmer = %d, want 255", frame[1][1])
	}
	if frame[2][1] != 0 {
		t.Errorf("universe 2 dimmer = %d, want default 0", frame[2][1])
	}
	if got := e.RenderFrame(scene, 0).Universes(); len(got) != 2 || got[0] != 1 || got[1] != 2 {
		t.Errorf("universes = %v", got)
	}
}

func TestRenderFrameLayering(t *testing.T) {
	rig := fixture.NewRig()
	if _, err := rig.Patch(rgbDimmerType(t), 1, 1); err != nil {
		t.Fatalf("Patch: %v", err)
	}
	e, _ := newTestEngine(t, rig)

	// Full-on base dimmed to half by a MUL layer on top.
	tl := clip.NewTimeline().
		Add(0, &clip.Scene{
			Selector: fixture.All{},
			State:    fixture.State{fixture.KeyDimmer: fixture.Scalar(1.0)},
			Dur:      clip.Infinite,
		}).
		Add(0, &clip.Scene{
			Selector: fixture.All{},
			State:    fixture.State{fixture.KeyDimmer: fixture.Scalar(0.5)},
			Dur:      clip.Infinite,
			Op:       clip.Mul,
		})

	frame := e.RenderFrame(tl, 1.0)
	if got := frame[1][1]; got != 127 {
		t.Errorf("layered dimmer = %d, want 127", got)
	}
}

func TestRenderFrameNilClipAndNilRig(t *testing.T) {
	rig := fixture.NewRig()
	if _, err := rig.Patch(rgbDimmerType(t), 1, 1); err != nil {
		t.Fatalf("Patch: %v", err)
	}
	e, _ := newTestEngine(t, rig)

	frame := e.RenderFrame(nil, 0)
	if frame[1][1] != 0 {
		t.Error("nil clip should render defaults")
	}

	e.SetRig(nil)
	if frame := e.RenderFrame(nil, 0); len(frame) != 0 {
		t.Error("nil rig should render an empty frame")
	}
}

func TestSendBeforeStart(t *testing.T) {
	e, _ := newTestEngine(t, fixture.NewRig())
	if err := e.Send(Frame{}); !errors.Is(err, ErrNotStarted) {
		t.Errorf("Send before Start: %v", err)
	}
}

func TestSendWrapsTransportError(t *testing.T) {
	e, tr := newTestEngine(t, fixture.NewRig())
	if err := e.Start(); err != nil {
		t.Fatalf("Start: %v", err)
	}

	cause := errors.New("socket gone")
	tr.sendErr = cause

	frame := Frame{}
	frame.set(1, 1, 255)
	err := e.Send(frame)
	if !errors.Is(err, ErrSendFailed) {
		t.Errorf("error not wrapped in ErrSendFailed: %v", err)
	}
	if !errors.Is(err, cause) {
		t.Errorf("transport cause lost: %v", err)
	}
}

func TestStartStopIdempotent(t *testing.T) {
	e, tr := newTestEngine(t, fixture.NewRig())

	if err := e.Start(); err != nil {
		t.Fatalf("Start: %v", err)
	}
	if err := e.Start(); err != nil {
		t.Fatalf("second Start: %v", err)
	}
	if tr.opened != 1 {
		t.Errorf("transport opened %d times, want 1", tr.opened)
	}

	if err := e.Stop(); err != nil {
		t.Fatalf("Stop: %v", err)
	}
	if err := e.Stop(); err != nil {
		t.Fatalf("second Stop: %v", err)
	}
	if tr.closed != 1 {
		t.Errorf("transport closed %d times, want 1", tr.closed)
	}
}

func TestPlayRunsClipToCompletion(t *testing.T) {
	rig := fixture.NewRig()
	if _, err := rig.Patch(rgbDimmerType(t), 1, 1); err != nil {
		t.Fatalf("Patch: %v", err)
	}
	e, tr := newTestEngine(t, rig)

	scene := &clip.Scene{
		Selector: fixture.All{},
		State:    fixture.State{fixture.KeyDimmer: fixture.Scalar(1.0)},
		Dur:      0.05,
	}

	if err := e.Play(context.Background(), scene, 0); err != nil {
		t.Fatalf("Play: %v", err)
	}
	if len(tr.sent) == 0 {
		t.Error("no frames sent")
	}
	if tr.closed != 1 {
		t.Errorf("transport closed %d times after Play, want 1", tr.closed)
	}
}

func TestPlayStartAtSkipsAhead(t *testing.T) {
	rig := fixture.NewRig()
	if _, err := rig.Patch(rgbDimmerType(t), 1, 1); err != nil {
		t.Fatalf("Patch: %v", err)
	}
	e, _ := newTestEngine(t, rig)

	scene := &clip.Scene{
		Selector: fixture.All{},
		State:    fixture.State{fixture.KeyDimmer: fixture.Scalar(1.0)},
		Dur:      100.0,
	}

	done := make(chan error, 1)
	start := time.Now()
	go func() { done <- e.Play(context.Background(), scene, 99.99) }()

	select {
	case err := <-done:
		if err != nil {
			t.Fatalf("Play: %v", err)
		}
	case <-time.After(2 * time.Second):
		t.Fatal("Play did not finish from a late start position")
	}
	if time.Since(start) > time.Second {
		t.Error("late start played far longer than the remaining clip")
	}
}

func TestPlayCancellation(t *testing.T) {
	rig := fixture.NewRig()
	if _, err := rig.Patch(rgbDimmerType(t), 1, 1); err != nil {
		t.Fatalf("Patch: %v", err)
	}
	e, tr := newTestEngine(t, rig)

	scene := &clip.Scene{
		Selector: fixture.All{},
		State:    fixture.State{fixture.KeyDimmer: fixture.Scalar(1.0)},
		Dur:      clip.Infinite,
	}

	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan error, 1)
	go func() { done <- e.Play(ctx, scene, 0) }()

	time.Sleep(30 * time.Millisecond)
	cancel()

	select {
	case err := <-done:
		if !errors.Is(err, context.Canceled) {
			t.Errorf("Play after cancel: %v", err)
		}
	case <-time.After(2 * time.Second):
		t.Fatal("Play did not return after cancellation")
	}
	if tr.closed != 1 {
		t.Errorf("transport closed %d times after cancel, want 1", tr.closed)
	}
}

func TestPlaySendFailureStopsTransport(t *testing.T) {
	rig := fixture.NewRig()
	if _, err := rig.Patch(rgbDimmerType(t), 1, 1); err != nil {
		t.Fatalf("Patch: %v", err)
	}
	e, tr := newTestEngine(t, rig)
	tr.sendErr = errors.New("network unreachable")

	scene := &clip.Scene{
		Selector: fixture.All{},
		State:    fixture.State{fixture.KeyDimmer: fixture.Scalar(1.0)},
		Dur:      clip.Infinite,
	}

	err := e.Play(context.Background(), scene, 0)
	if !errors.Is(err, ErrSendFailed) {
		t.Errorf("Play with failing transport: %v", err)
	}
	if tr.closed != 1 {
		t.Errorf("transport closed %d times after failure, want 1", tr.closed)
	}
}

type countingObserver struct {
	frames int
}

func (c *countingObserver) ObserveFrame(int, time.Duration, time.Duration) {
	c.frames++
}

func TestPlayNotifiesObserver(t *testing.T) {
	rig := fixture.NewRig()
	if _, err := rig.Patch(rgbDimmerType(t), 1, 1); err != nil {
		t.Fatalf("Patch: %v", err)
	}
	e, _ := newTestEngine(t, rig)

	obs := &countingObserver{}
	e.SetObserver(obs)

	scene := &clip.Scene{
		Selector: fixture.All{},
		State:    fixture.State{fixture.KeyDimmer: fixture.Scalar(1.0)},
		Dur:      0.05,
	}
	if err := e.Play(context.Background(), scene, 0); err != nil {
		t.Fatalf("Play: %v", err)
	}
	if obs.frames == 0 {
		t.Error("observer never notified")
	}
}

func TestFrameFlatten(t *testing.T) {
	frame := Frame{}
	frame.set(1, 1, 10)
	frame.set(1, 5, 50)

	data := frame.Flatten(1)
	if len(data) != 5 {
		t.Fatalf("flattened length = %d, want 5", len(data))
	}
	want := []byte{10, 0, 0, 0, 50}
	for i, v := range want {
		if data[i] != v {
			t.Errorf("data[%d] = %d, want %d", i, data[i], v)
		}
	}

	if data := frame.Flatten(9); data != nil {
		t.Error("flatten of an absent universe should be nil")
	}
}
