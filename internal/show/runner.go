// Package show manages named shows and their playback lifecycle over a
// single engine. One show plays at a time; starting a show stops the
// previous one.
package show

import (
	"context"
	"errors"
	"fmt"
	"sort"
	"sync"
	"time"

	"github.com/lumenforge/luxd/internal/clip"
	"github.com/lumenforge/luxd/internal/engine"
	"github.com/lumenforge/luxd/internal/fixture"
	"github.com/lumenforge/luxd/internal/infrastructure/logging"
)

var (
	ErrUnknownShow   = errors.New("show: unknown show")
	ErrDuplicateShow = errors.New("show: name already registered")
	ErrInvalidShow   = errors.New("show: name and build function required")
)

// Show is a named, buildable piece of programming. Build runs on every
// Play so a show always starts from a clean clip tree and rig.
type Show struct {
	Name  string
	Build func() (clip.Clip, *fixture.Rig)
}

// Status is a snapshot of the runner's playback state.
type Status struct {
	Running bool    `json:"running"`
	Show    string  `json:"show,omitempty"`
	Elapsed float64 `json:"elapsed"`
}

// Runner owns the playback goroutine. All methods are safe for
// concurrent use; the HTTP API and the MQTT bridge both drive it.
type Runner struct {
	engine *engine.Engine
	log    *logging.Logger

	mu        sync.Mutex
	shows     map[string]Show
	current   string
	startAt   float64
	startedAt time.Time
	cancel    context.CancelFunc
	done      chan struct{}
	notify    func(Status)
}

// NewRunner creates a runner over the engine.
func NewRunner(e *engine.Engine, log *logging.Logger) *Runner {
	if log == nil {
		log = logging.Default()
	}
	return &Runner{
		engine: e,
		log:    log.With("component", "show"),
		shows:  make(map[string]Show),
	}
}

// SetNotify installs a callback invoked after playback starts and after
// it stops or ends. The callback runs outside the runner's lock.
func (r *Runner) SetNotify(fn func(Status)) {
	r.mu.Lock()
	r.notify = fn
	r.mu.Unlock()
}

// Register adds a show to the registry.
func (r *Runner) Register(s Show) error {
	if s.Name == "" || s.Build == nil {
		return ErrInvalidShow
	}

	r.mu.Lock()
	defer r.mu.Unlock()
	if _, ok := r.shows[s.Name]; ok {
		return fmt.Errorf("%w: %q", ErrDuplicateShow, s.Name)
	}
	r.shows[s.Name] = s
	return nil
}

// Shows returns the registered show names, sorted.
func (r *Runner) Shows() []string {
	r.mu.Lock()
	defer r.mu.Unlock()

	out := make([]string, 0, len(r.shows))
	for name := range r.shows {
		out = append(out, name)
	}
	sort.Strings(out)
	return out
}

// Play builds and starts the named show at clip time startAt, stopping
// any current playback first. It returns once the playback goroutine is
// launched; playback errors are logged, not returned.
func (r *Runner) Play(name string, startAt float64) error {
	r.mu.Lock()
	s, ok := r.shows[name]
	r.mu.Unlock()
	if !ok {
		return fmt.Errorf("%w: %q", ErrUnknownShow, name)
	}

	r.Stop()

	c, rig := s.Build()
	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan struct{})

	r.mu.Lock()
	r.engine.SetRig(rig)
	r.cancel = cancel
	r.done = done
	r.current = name
	r.startAt = startAt
	r.startedAt = time.Now()
	notify := r.notify
	r.mu.Unlock()

	r.log.Info("show starting", "show", name, "start_at", startAt)

	go func() {
		defer close(done)
		err := r.engine.Play(ctx, c, startAt)

		r.mu.Lock()
		if r.done == done {
			r.cancel = nil
			r.current = ""
		}
		fn := r.notify
		r.mu.Unlock()

		switch {
		case err == nil:
			r.log.Info("show finished", "show", name)
		case errors.Is(err, context.Canceled):
			r.log.Info("show stopped", "show", name)
		default:
			r.log.Error("show failed", "show", name, "error", err)
		}
		if fn != nil {
			fn(r.Status())
		}
	}()

	if notify != nil {
		notify(r.Status())
	}
	return nil
}

// Stop cancels the current playback, if any, and waits for the playback
// goroutine to finish. Stopping an idle runner is a no-op.
func (r *Runner) Stop() {
	r.mu.Lock()
	cancel, done := r.cancel, r.done
	r.cancel = nil
	r.mu.Unlock()

	if cancel == nil {
		return
	}
	cancel()
	<-done
}

// Status reports the current playback state.
func (r *Runner) Status() Status {
	r.mu.Lock()
	defer r.mu.Unlock()

	if r.current == "" {
		return Status{}
	}
	return Status{
		Running: true,
		Show:    r.current,
		Elapsed: r.startAt + time.Since(r.startedAt).Seconds(),
	}
}
