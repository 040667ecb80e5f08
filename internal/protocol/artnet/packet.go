// Package artnet encodes and sends DMX universes as ArtDMX packets over
// UDP, broadcast to the local segment or unicast to configured nodes.
package artnet

import (
	"encoding/binary"
	"errors"
	"fmt"
)

const (
	// Port is the Art-Net UDP port.
	Port = 6454

	// headerSize is the fixed byte count ahead of the DMX payload.
	headerSize = 18

	maxChannels = 512

	// maxUniverse is the highest 15-bit port address (7-bit Net plus
	// 8-bit SubUni).
	maxUniverse = 0x7FFF

	protocolVersion = 14
)

var (
	ErrUniverseRange = errors.New("artnet: universe out of range")
	ErrPayloadSize   = errors.New("artnet: payload exceeds 512 channels")
)

// id is the fixed 8-byte packet identifier.
var id = [8]byte{'A', 'r', 't', '-', 'N', 'e', 't', 0}

// Packet builds one ArtDMX packet. The payload is zero-padded to an even
// length as the protocol requires; sequence 0 means "sequence disabled",
// so senders skip it when wrapping.
func Packet(sequence byte, universe int, data []byte) ([]byte, error) {
	if universe < 0 || universe > maxUniverse {
		return nil, fmt.Errorf("%w: %d", ErrUniverseRange, universe)
	}
	if len(data) > maxChannels {
		return nil, fmt.Errorf("%w: %d", ErrPayloadSize, len(data))
	}

	length := len(data)
	if length%2 == 1 {
		length++
	}

	p := make([]byte, headerSize+length)
	copy(p[0:8], id[:])
	p[8], p[9] = 0x00, 0x50 // OpCode ArtDMX, little-endian
	p[10], p[11] = 0x00, protocolVersion
	p[12] = sequence
	// Physical port at [13] stays zero.
	p[14] = byte(universe & 0xFF)        // SubUni
	p[15] = byte((universe >> 8) & 0x7F) // Net
	binary.BigEndian.PutUint16(p[16:18], uint16(length))
	copy(p[18:], data)

	return p, nil
}
