package artnet

import (
	"errors"
	"fmt"
	"net"
	"syscall"
)

var (
	ErrNotOpen    = errors.New("artnet: transport not open")
	ErrBadAddress = errors.New("artnet: invalid target address")
)

// Config holds the routing for an Art-Net transport.
type Config struct {
	// Broadcast is the target broadcast address. Empty means the limited
	// broadcast 255.255.255.255.
	Broadcast string

	// Unicast maps universe numbers to node IPs, overriding broadcast
	// for those universes.
	Unicast map[int]string
}

// Transport sends ArtDMX packets from one UDP socket, tracking a non-zero
// wrapping sequence number per universe. Not safe for concurrent Send
// calls; the engine's frame loop is the single sender.
type Transport struct {
	cfg       Config
	conn      *net.UDPConn
	broadcast net.IP
	seq       map[int]byte
}

// NewTransport creates a closed transport. Open binds the socket.
func NewTransport(cfg Config) *Transport {
	return &Transport{cfg: cfg, seq: make(map[int]byte)}
}

// Open binds the UDP socket and enables broadcast on it. Opening an open
// transport is a no-op.
func (t *Transport) Open() error {
	if t.conn != nil {
		return nil
	}

	broadcast := net.IPv4bcast
	if t.cfg.Broadcast != "" {
		broadcast = net.ParseIP(t.cfg.Broadcast)
		if broadcast == nil {
			return fmt.Errorf("%w: %q", ErrBadAddress, t.cfg.Broadcast)
		}
	}

	conn, err := net.ListenUDP("udp4", nil)
	if err != nil {
		return fmt.Errorf("artnet: open socket: %w", err)
	}
	if raw, err := conn.SyscallConn(); err == nil {
		raw.Control(func(fd uintptr) {
			syscall.SetsockoptInt(int(fd), syscall.SOL_SOCKET, syscall.SO_BROADCAST, 1)
		})
	}

	t.conn = conn
	t.broadcast = broadcast
	return nil
}

// Send encodes and transmits one universe of channel data. The universe's
// sequence number advances 1..255, skipping 0 on wrap.
func (t *Transport) Send(universe int, data []byte) error {
	if t.conn == nil {
		return ErrNotOpen
	}

	seq := t.seq[universe] + 1
	if seq == 0 {
		seq = 1
	}

	pkt, err := Packet(seq, universe, data)
	if err != nil {
		return err
	}

	dst, err := t.destination(universe)
	if err != nil {
		return err
	}
	if _, err := t.conn.WriteToUDP(pkt, dst); err != nil {
		return fmt.Errorf("artnet: send universe %d: %w", universe, err)
	}

	t.seq[universe] = seq
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

// destination resolves a universe to its unicast node if configured, else
// the broadcast address.
func (t *Transport) destination(universe int) (*net.UDPAddr, error) {
	if host, ok := t.cfg.Unicast[universe]; ok {
		ip := net.ParseIP(host)
		if ip == nil {
			return nil, fmt.Errorf("%w: %q", ErrBadAddress, host)
		}
		return &net.UDPAddr{IP: ip, Port: Port}, nil
	}
	return &net.UDPAddr{IP: t.broadcast, Port: Port}, nil
}
