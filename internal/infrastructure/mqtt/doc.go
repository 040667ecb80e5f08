// Package mqtt provides MQTT client connectivity for luxd.
//
// This package manages:
//   - Connection to the broker with auto-reconnect
//   - Message publishing with QoS guarantees
//   - Topic subscriptions with wildcard support
//   - Last Will and Testament (LWT) for offline detection
//   - The cue bridge that drives the show runner from broker topics
//
// # Architecture
//
// luxd exposes show control on an MQTT cue bus so lighting consoles,
// scheduling daemons, and house automation can start and stop shows
// without speaking HTTP.
//
//	cue sources ↔ MQTT broker ↔ luxd bridge ↔ show runner
//
// Play commands arrive on luxd/show/play, stops on luxd/show/stop, and
// the runner's playback state is published retained to luxd/show/status.
// Service liveness is published retained to luxd/status, with an LWT so
// subscribers see crashes.
//
// # Usage
//
//	client, err := mqtt.Connect(cfg.MQTT)
//	if err != nil {
//	    log.Fatal(err)
//	}
//	defer client.Close()
//
//	bridge := mqtt.NewBridge(client, runner, byte(cfg.MQTT.QoS), logger)
//	if err := bridge.Start(); err != nil {
//	    log.Fatal(err)
//	}
package mqtt
