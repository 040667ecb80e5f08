// Package sacn encodes and sends DMX universes as E1.31 (streaming ACN)
// data packets over UDP. Each universe goes out as one datagram to its
// multicast group, or to a configured unicast receiver.
package sacn

import (
	"encoding/binary"
	"errors"
	"fmt"
)

const (
	// Port is the E1.31 UDP port.
	Port = 5568

	// DefaultPriority is the packet priority used when none is configured.
	DefaultPriority = 100

	// headerSize is the fixed byte count ahead of the DMX payload: root
	// layer, framing layer, and DMP layer through the start code.
	headerSize = 126

	maxChannels = 512
	maxUniverse = 63999
	maxPriority = 200

	// maxSourceName leaves room for the mandatory null terminator in the
	// 64-byte source name field.
	maxSourceName = 63
)

var (
	ErrUniverseRange = errors.New("sacn: universe out of range")
	ErrPayloadSize   = errors.New("sacn: payload exceeds 512 channels")
	ErrPriorityRange = errors.New("sacn: priority above 200")
)

// acnID is the fixed packet identifier required in every root layer.
var acnID = [12]byte{'A', 'S', 'C', '-', 'E', '1', '.', '1', '7', 0, 0, 0}

// Packet builds one E1.31 data packet: CID and source name identify the
// sender, sequence detects loss per universe, and data carries channel
// values without the start code (prepended here as property value zero).
func Packet(cid [16]byte, source string, priority, sequence byte, universe int, data []byte) ([]byte, error) {
	if universe < 1 || universe > maxUniverse {
		return nil, fmt.Errorf("%w: %d", ErrUniverseRange, universe)
	}
	if len(data) > maxChannels {
		return nil, fmt.Errorf("%w: %d", ErrPayloadSize, len(data))
	}
	if priority > maxPriority {
		return nil, fmt.Errorf("%w: %d", ErrPriorityRange, priority)
	}
	if len(source) > maxSourceName {
		source = source[:maxSourceName]
	}

	p := make([]byte, headerSize+len(data))

	// Root layer.
	binary.BigEndian.PutUint16(p[0:2], 0x0010) // RLP preamble size
	// Postamble size at [2:4] stays zero.
	copy(p[4:16], acnID[:])
	flagsLength(p, 16)
	binary.BigEndian.PutUint32(p[18:22], 0x00000004) // VECTOR_ROOT_E131_DATA
	copy(p[22:38], cid[:])

	// Framing layer.
	flagsLength(p, 38)
	binary.BigEndian.PutUint32(p[40:44], 0x00000002) // VECTOR_E131_DATA_PACKET
	copy(p[44:108], source)
	p[108] = priority
	// Synchronization address at [109:111] stays zero.
	p[111] = sequence
	// Options at [112] stay zero.
	binary.BigEndian.PutUint16(p[113:115], uint16(universe))

	// DMP layer.
	flagsLength(p, 115)
	p[117] = 0x02 // VECTOR_DMP_SET_PROPERTY
	p[118] = 0xA1 // address and data type
	// First property address at [119:121] stays zero.
	binary.BigEndian.PutUint16(p[121:123], 1)                   // address increment
	binary.BigEndian.PutUint16(p[123:125], uint16(len(data)+1)) // count incl. start code
	// Start code at [125] stays zero.
	copy(p[126:], data)

	return p, nil
}

// flagsLength writes a PDU flags/length word: high nibble 0x7, low 12 bits
// the byte count from offset through the end of the packet.
func flagsLength(p []byte, offset int) {
	binary.BigEndian.PutUint16(p[offset:offset+2], 0x7000|uint16(len(p)-offset))
}
