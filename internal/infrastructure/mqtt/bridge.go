package mqtt

import (
	"encoding/json"
	"fmt"

	"github.com/lumenforge/luxd/internal/infrastructure/logging"
	"github.com/lumenforge/luxd/internal/show"
)

// StatusPublisher is the slice of Client the bridge needs to emit
// retained status updates.
type StatusPublisher interface {
	PublishRetained(topic string, payload []byte) error
}

// Subscriber is the slice of Client the bridge needs to receive cues.
type Subscriber interface {
	Subscribe(topic string, qos byte, handler MessageHandler) error
}

// Bridge wires broker cue topics to the show runner: play commands on
// luxd/show/play, stops on luxd/show/stop, and retained playback status
// out on luxd/show/status.
type Bridge struct {
	pub    StatusPublisher
	sub    Subscriber
	runner *show.Runner
	qos    byte
	log    *logging.Logger
}

// playCommand is the luxd/show/play payload.
type playCommand struct {
	Show    string  `json:"show"`
	StartAt float64 `json:"start_at"`
}

// NewBridge creates a bridge over a connected client and a runner.
func NewBridge(client *Client, runner *show.Runner, qos byte, log *logging.Logger) *Bridge {
	if log == nil {
		log = logging.Default()
	}
	return &Bridge{
		pub:    client,
		sub:    client,
		runner: runner,
		qos:    qos,
		log:    log.With("component", "mqtt_bridge"),
	}
}

// Start subscribes to the cue topics, hooks the runner's status
// transitions, and publishes the current status retained.
func (b *Bridge) Start() error {
	if err := b.sub.Subscribe(Topics{}.ShowPlay(), b.qos, b.handlePlay); err != nil {
		return err
	}
	if err := b.sub.Subscribe(Topics{}.ShowStop(), b.qos, b.handleStop); err != nil {
		return err
	}

	b.runner.SetNotify(b.publishStatus)
	b.publishStatus(b.runner.Status())

	b.log.Info("cue bridge started",
		"play_topic", Topics{}.ShowPlay(),
		"stop_topic", Topics{}.ShowStop(),
	)
	return nil
}

// handlePlay parses a play cue and starts the named show.
func (b *Bridge) handlePlay(_ string, payload []byte) error {
	var cmd playCommand
	if err := json.Unmarshal(payload, &cmd); err != nil {
		return fmt.Errorf("mqtt: invalid play payload: %w", err)
	}
	if cmd.Show == "" {
		return fmt.Errorf("mqtt: play payload missing show name")
	}

	b.log.Info("play cue received", "show", cmd.Show, "start_at", cmd.StartAt)
	return b.runner.Play(cmd.Show, cmd.StartAt)
}

// handleStop stops the current show. The payload is ignored.
func (b *Bridge) handleStop(_ string, _ []byte) error {
	b.log.Info("stop cue received")
	b.runner.Stop()
	return nil
}

// publishStatus emits the runner's status retained so late subscribers
// see the current playback state.
func (b *Bridge) publishStatus(st show.Status) {
	payload, err := json.Marshal(st)
	if err != nil {
		return
	}
	if err := b.pub.PublishRetained(Topics{}.ShowStatus(), payload); err != nil {
		b.log.Warn("status publish failed", "error", err)
	}
}
