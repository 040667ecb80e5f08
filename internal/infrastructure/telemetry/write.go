package telemetry

import (
	"time"

	"github.com/influxdata/influxdb-client-go/v2/api/write"
)

// ObserveFrame records one frame of engine output.
//
// It implements engine.FrameObserver. The write is non-blocking; data
// is batched and sent asynchronously, so this is safe to call from the
// render loop at full frame rate.
//
// Parameters:
//   - universes: Number of universes sent this frame
//   - renderDur: Time spent composing the frame
//   - sendDur: Time spent on the wire
func (c *Client) ObserveFrame(universes int, renderDur, sendDur time.Duration) {
	if !c.IsConnected() {
		return
	}

	c.mu.RLock()
	show := c.show
	c.mu.RUnlock()

	tags := map[string]string{}
	if show != "" {
		tags["show"] = show
	}

	point := write.NewPoint(
		"frame",
		tags,
		map[string]interface{}{
			"universes": universes,
			"render_ms": float64(renderDur) / float64(time.Millisecond),
			"send_ms":   float64(sendDur) / float64(time.Millisecond),
		},
		time.Now(),
	)

	c.writeAPI.WritePoint(point)
}

// WriteShowEvent records a show lifecycle transition.
//
// Parameters:
//   - show: Show name, or "" for a stop transition
//   - running: Whether playback is active after the transition
//
// Example:
//
//	client.WriteShowEvent("opening", true)
func (c *Client) WriteShowEvent(show string, running bool) {
	if !c.IsConnected() {
		return
	}

	tags := map[string]string{}
	if show != "" {
		tags["show"] = show
	}

	point := write.NewPoint(
		"show_event",
		tags,
		map[string]interface{}{
			"running": running,
		},
		time.Now(),
	)

	c.writeAPI.WritePoint(point)
}

// WritePoint writes a custom point with full control over tags and fields.
//
// Use this for custom measurements that don't fit the helper methods.
//
// Parameters:
//   - measurement: The measurement name (table)
//   - tags: Key-value pairs for indexing (low cardinality)
//   - fields: Key-value pairs for the actual data
//
// Example:
//
//	client.WritePoint("system_stats",
//	    map[string]string{"host": "luxd-01"},
//	    map[string]interface{}{"cpu_percent": 45.2, "memory_mb": 512})
func (c *Client) WritePoint(measurement string, tags map[string]string, fields map[string]interface{}) {
	if !c.IsConnected() {
		return
	}

	point := write.NewPoint(measurement, tags, fields, time.Now())
	c.writeAPI.WritePoint(point)
}
