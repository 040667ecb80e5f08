// Package telemetry records frame timing metrics to InfluxDB.
//
// It wraps the official influxdb-client-go v2 library with the patterns
// luxd uses for connection management, metric writing, and health
// monitoring.
//
// # Purpose
//
// This package handles time-series storage for:
//   - Per-frame render and send durations from the engine loop
//   - Universe counts per frame
//   - Show lifecycle markers (start/stop)
//
// # Usage
//
//	cfg := config.TelemetryConfig{
//	    Enabled: true,
//	    URL:     "http://localhost:8086",
//	    Token:   "your-token",
//	    Org:     "lumenforge",
//	    Bucket:  "luxd",
//	}
//
//	client, err := telemetry.Connect(cfg)
//	if err != nil {
//	    log.Fatal(err)
//	}
//	defer client.Close()
//
//	engine.SetObserver(client)
//
// # Thread Safety
//
// All methods are safe for concurrent use from multiple goroutines.
// The underlying write API uses non-blocking batched writes, so
// ObserveFrame never blocks the render loop.
//
// # Error Handling
//
// Write operations are non-blocking and batch errors are delivered via
// a callback. Connection and health check errors are returned directly.
package telemetry
