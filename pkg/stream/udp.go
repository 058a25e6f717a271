package stream

import (
	"errors"
	"fmt"
	"net"
	"time"
)

const DefaultPollTimeout = time.Millisecond

type udpConfig struct {
	pollTimeout time.Duration
	readBuffer  int
}

type UDPOption func(*udpConfig)

// WithPollTimeout sets the read deadline used by Receive
func WithPollTimeout(d time.Duration) UDPOption {
	return func(c *udpConfig) {
		c.pollTimeout = d
	}
}

// WithReadBuffer sets the kernel receive buffer size (bytes). 0 keeps the OS default.
func WithReadBuffer(size int) UDPOption {
	return func(c *udpConfig) {
		c.readBuffer = size
	}
}

// UDPTransport receives datagrams from a bound UDP socket
type UDPTransport struct {
	conn        *net.UDPConn
	pollTimeout time.Duration
}

var _ Transport = (*UDPTransport)(nil)

func ListenUDP(addr string, opts ...UDPOption) (*UDPTransport, error) {
	cfg := &udpConfig{pollTimeout: DefaultPollTimeout}
	for _, opt := range opts {
		opt(cfg)
	}
	udpAddr, err := net.ResolveUDPAddr("udp", addr)
	if err != nil {
		return nil, fmt.Errorf("resolve %s: %w", addr, err)
	}
	conn, err := net.ListenUDP("udp", udpAddr)
	if err != nil {
		return nil, err
	}
	if cfg.readBuffer > 0 {
		if err := conn.SetReadBuffer(cfg.readBuffer); err != nil {
			conn.Close()
			return nil, fmt.Errorf("set read buffer: %w", err)
		}
	}
	return &UDPTransport{conn: conn, pollTimeout: cfg.pollTimeout}, nil
}

func (u *UDPTransport) Receive(buf []byte) (int, net.Addr, error) {
	if err := u.conn.SetReadDeadline(time.Now().Add(u.pollTimeout)); err != nil {
		return 0, nil, err
	}
	n, from, err := u.conn.ReadFromUDP(buf)
	if err != nil {
		var netErr net.Error
		if errors.As(err, &netErr) && netErr.Timeout() {
			return 0, nil, ErrNoData
		}
		return 0, nil, err
	}
	return n, from, nil
}

func (u *UDPTransport) LocalAddr() net.Addr {
	return u.conn.LocalAddr()
}

func (u *UDPTransport) Close() error {
	return u.conn.Close()
}
