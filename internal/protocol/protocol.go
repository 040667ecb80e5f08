// Package protocol selects and constructs the configured DMX output
// transport. The concrete encoders live in the sacn and artnet
// subpackages; this package maps config onto one of them.
package protocol

import (
	"errors"
	"fmt"

	"github.com/lumenforge/luxd/internal/engine"
	"github.com/lumenforge/luxd/internal/infrastructure/config"
	"github.com/lumenforge/luxd/internal/protocol/artnet"
	"github.com/lumenforge/luxd/internal/protocol/sacn"
)

// ErrUnknownProtocol indicates the configured protocol name is not supported.
var ErrUnknownProtocol = errors.New("protocol: unknown protocol")

// Protocol names accepted in config.
const (
	NameSACN   = "sacn"
	NameArtNet = "artnet"
)

// New builds the transport named by cfg.Protocol. The returned transport
// is not yet open; the engine opens it on Start.
func New(cfg config.EngineConfig) (engine.Transport, error) {
	switch cfg.Protocol {
	case NameSACN:
		sc := sacn.Config{
			SourceName: cfg.SACN.SourceName,
			Unicast:    cfg.SACN.Unicast,
		}
		if cfg.SACN.Priority > 0 {
			sc.Priority = byte(cfg.SACN.Priority)
		}
		return sacn.NewTransport(sc), nil
	case NameArtNet:
		return artnet.NewTransport(artnet.Config{
			Broadcast: cfg.ArtNet.Broadcast,
			Unicast:   cfg.ArtNet.Unicast,
		}), nil
	default:
		return nil, fmt.Errorf("%w: %q", ErrUnknownProtocol, cfg.Protocol)
	}
}
