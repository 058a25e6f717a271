// Package capture replays and records telemetry datagrams as pcap files.
package capture

import (
	"errors"
	"fmt"
	"io"
	"net"
	"os"
	"time"

	"github.com/google/gopacket"
	"github.com/google/gopacket/layers"
	"github.com/google/gopacket/pcapgo"

	"github.com/mpapenbr/f1-telemetry-go/log"
	"github.com/mpapenbr/f1-telemetry-go/pkg/stream"
)

const DefaultPort = 20777

type ReaderOption func(*Reader)

// WithPort selects the UDP destination port of the telemetry datagrams.
// 0 accepts every UDP packet.
func WithPort(port uint16) ReaderOption {
	return func(r *Reader) {
		r.port = port
	}
}

// WithSpeed paces the replay by the capture timestamps. 1 is real time,
// 2 twice as fast. 0 replays as fast as possible.
func WithSpeed(speed float64) ReaderOption {
	return func(r *Reader) {
		r.speed = speed
	}
}

func withClock(now func() time.Time) ReaderOption {
	return func(r *Reader) {
		r.now = now
	}
}

// Reader is a stream.Transport delivering the UDP payloads of a pcap
// capture. Receive returns io.EOF (wrapped by the stream) at the end of
// the capture.
type Reader struct {
	name    string
	closer  io.Closer
	src     *pcapgo.Reader
	port    uint16
	speed   float64
	now     func() time.Time
	pending *datagram
	// wall clock and capture time of the first delivered datagram
	startWall    time.Time
	startCapture time.Time
	skipped      int
	log          *log.Logger
}

type datagram struct {
	payload []byte
	from    net.Addr
	ts      time.Time
}

var _ stream.Transport = (*Reader)(nil)

// pcapAddr names the capture file as the local address of a Reader
type pcapAddr string

func (a pcapAddr) Network() string { return "pcap" }
func (a pcapAddr) String() string  { return string(a) }

func OpenFile(name string, opts ...ReaderOption) (*Reader, error) {
	f, err := os.Open(name)
	if err != nil {
		return nil, err
	}
	r, err := NewReader(name, f, opts...)
	if err != nil {
		f.Close()
		return nil, err
	}
	r.closer = f
	return r, nil
}

// NewReader reads a pcap capture from r. name is reported as LocalAddr.
func NewReader(name string, r io.Reader, opts ...ReaderOption) (*Reader, error) {
	src, err := pcapgo.NewReader(r)
	if err != nil {
		return nil, fmt.Errorf("read pcap header of %s: %w", name, err)
	}
	ret := &Reader{
		name: name,
		src:  src,
		port: DefaultPort,
		now:  time.Now,
		log:  log.Default().Named("capture"),
	}
	for _, opt := range opts {
		opt(ret)
	}
	return ret, nil
}

func (r *Reader) Receive(buf []byte) (int, net.Addr, error) {
	if r.pending == nil {
		d, err := r.nextDatagram()
		if err != nil {
			return 0, nil, err
		}
		r.pending = d
	}
	if !r.due(r.pending.ts) {
		return 0, nil, stream.ErrNoData
	}
	d := r.pending
	r.pending = nil
	return copy(buf, d.payload), d.from, nil
}

// due reports whether a datagram captured at ts may be delivered now
func (r *Reader) due(ts time.Time) bool {
	if r.speed <= 0 {
		return true
	}
	if r.startWall.IsZero() {
		r.startWall = r.now()
		r.startCapture = ts
		return true
	}
	offset := time.Duration(float64(ts.Sub(r.startCapture)) / r.speed)
	return !r.now().Before(r.startWall.Add(offset))
}

// nextDatagram returns the next UDP payload addressed to the configured port
func (r *Reader) nextDatagram() (*datagram, error) {
	for {
		data, ci, err := r.src.ReadPacketData()
		if err != nil {
			if errors.Is(err, io.ErrUnexpectedEOF) {
				r.log.Warn("capture ends with a partial record", log.String("file", r.name))
				return nil, io.EOF
			}
			return nil, err
		}
		pkt := gopacket.NewPacket(data, r.src.LinkType(), gopacket.NoCopy)
		udp, ok := pkt.Layer(layers.LayerTypeUDP).(*layers.UDP)
		if !ok || (r.port != 0 && uint16(udp.DstPort) != r.port) {
			r.skipped++
			continue
		}
		return &datagram{
			payload: udp.Payload,
			from:    sourceAddr(pkt, udp),
			ts:      ci.Timestamp,
		}, nil
	}
}

func sourceAddr(pkt gopacket.Packet, udp *layers.UDP) net.Addr {
	ret := &net.UDPAddr{Port: int(udp.SrcPort)}
	switch ip := pkt.NetworkLayer().(type) {
	case *layers.IPv4:
		ret.IP = ip.SrcIP
	case *layers.IPv6:
		ret.IP = ip.SrcIP
	}
	return ret
}

// Skipped returns the number of capture records that were not telemetry datagrams
func (r *Reader) Skipped() int {
	return r.skipped
}

func (r *Reader) LocalAddr() net.Addr {
	return pcapAddr(r.name)
}

func (r *Reader) Close() error {
	if r.closer != nil {
		return r.closer.Close()
	}
	return nil
}
