package sacn

import (
	"errors"
	"fmt"
	"net"

	"github.com/google/uuid"
)

var (
	ErrNotOpen    = errors.New("sacn: transport not open")
	ErrBadUnicast = errors.New("sacn: invalid unicast address")
)

// Config holds the sender identity and routing for an E1.31 transport.
type Config struct {
	// SourceName identifies this sender to receivers. Truncated to 63
	// bytes on the wire.
	SourceName string

	// Priority is the per-packet priority, 0..200. Zero means
	// DefaultPriority.
	Priority byte

	// CID is the sender's component identifier. The zero value generates
	// a random one, stable for the transport's lifetime.
	CID [16]byte

	// Unicast maps universe numbers to receiver IPs, overriding the
	// universe multicast group for those universes.
	Unicast map[int]string
}

// Transport sends E1.31 packets from one UDP socket, tracking a sequence
// number per universe. Not safe for concurrent Send calls; the engine's
// frame loop is the single sender.
type Transport struct {
	cfg  Config
	conn *net.UDPConn
	seq  map[int]byte
}

// NewTransport creates a closed transport. Open binds the socket.
func NewTransport(cfg Config) *Transport {
	if cfg.SourceName == "" {
		cfg.SourceName = "luxd"
	}
	if cfg.Priority == 0 {
		cfg.Priority = DefaultPriority
	}
	if cfg.CID == ([16]byte{}) {
		cfg.CID = [16]byte(uuid.New())
	}
	return &Transport{cfg: cfg, seq: make(map[int]byte)}
}

// Open binds the UDP socket. Opening an open transport is a no-op.
func (t *Transport) Open() error {
	if t.conn != nil {
		return nil
	}
	conn, err := net.ListenUDP("udp4", nil)
	if err != nil {
		return fmt.Errorf("sacn: open socket: %w", err)
	}
	t.conn = conn
	return nil
}

// Send encodes and transmits one universe of channel data, then advances
// that universe's sequence number (mod 256).
func (t *Transport) Send(universe int, data []byte) error {
	if t.conn == nil {
		return ErrNotOpen
	}

	pkt, err := Packet(t.cfg.CID, t.cfg.SourceName, t.cfg.Priority, t.seq[universe], universe, data)
	if err != nil {
		return err
	}

	dst, err := t.destination(universe)
	if err != nil {
		return err
	}
	if _, err := t.conn.WriteToUDP(pkt, dst); err != nil {
		return fmt.Errorf("sacn: send universe %d: %w", universe, err)
	}

	t.seq[universe]++
	return nil
}

// Close releases the socket. Closing a closed transport is a no-op.
func (t *Transport) Close() error {
	if t.conn == nil {
		return nil
	}
	err := t.conn.Close()
	t.conn = nil
	return err
}

// destination resolves a universe to its unicast receiver if configured,
// else the universe multicast group.
func (t *Transport) destination(universe int) (*net.UDPAddr, error) {
	if host, ok := t.cfg.Unicast[universe]; ok {
		ip := net.ParseIP(host)
		if ip == nil {
			return nil, fmt.Errorf("%w: %q", ErrBadUnicast, host)
		}
		return &net.UDPAddr{IP: ip, Port: Port}, nil
	}
	return Multicast(universe), nil
}

// Multicast returns the E1.31 multicast group for a universe:
// 239.255.<hi>.<lo> where hi/lo are the universe number's bytes.
func Multicast(universe int) *net.UDPAddr {
	return &net.UDPAddr{
		IP:   net.IPv4(239, 255, byte(universe>>8), byte(universe&0xFF)),
		Port: Port,
	}
}
