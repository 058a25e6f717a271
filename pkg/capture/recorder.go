package capture

import (
	"fmt"
	"io"
	"net"
	"os"
	"sync"
	"time"

	"github.com/google/gopacket"
	"github.com/google/gopacket/layers"
	"github.com/google/gopacket/pcapgo"
	"github.com/google/uuid"

	"github.com/mpapenbr/f1-telemetry-go/pkg/stream"
)

const snapLen = 65535

var unspecifiedSource = &net.UDPAddr{IP: net.IPv4zero, Port: 0}

// DefaultFileName returns a unique name for a new recording
func DefaultFileName() string {
	return fmt.Sprintf("f1t-%s.pcap", uuid.NewString())
}

// Recorder writes datagrams as ethernet/ipv4/udp records of a pcap file
type Recorder struct {
	mu     sync.Mutex
	w      *pcapgo.Writer
	closer io.Closer
	dst    *net.UDPAddr
	count  int
}

// CreateFile creates (or truncates) name and writes the pcap file header.
// dst is the address the datagrams were sent to.
func CreateFile(name string, dst *net.UDPAddr) (*Recorder, error) {
	f, err := os.Create(name)
	if err != nil {
		return nil, err
	}
	r, err := NewRecorder(f, dst)
	if err != nil {
		f.Close()
		return nil, err
	}
	r.closer = f
	return r, nil
}

func NewRecorder(w io.Writer, dst *net.UDPAddr) (*Recorder, error) {
	pw := pcapgo.NewWriter(w)
	if err := pw.WriteFileHeader(snapLen, layers.LinkTypeEthernet); err != nil {
		return nil, fmt.Errorf("write pcap header: %w", err)
	}
	if dst == nil {
		dst = &net.UDPAddr{IP: net.IPv4(127, 0, 0, 1), Port: DefaultPort}
	}
	return &Recorder{w: pw, dst: dst}, nil
}

// Record appends one datagram received from from at ts
func (r *Recorder) Record(payload []byte, from net.Addr, ts time.Time) error {
	src, ok := from.(*net.UDPAddr)
	if !ok || src == nil || src.IP.To4() == nil {
		src = unspecifiedSource
	}
	dstIP := r.dst.IP.To4()
	if dstIP == nil {
		dstIP = net.IPv4(127, 0, 0, 1).To4()
	}
	eth := &layers.Ethernet{
		SrcMAC:       net.HardwareAddr{0, 0, 0, 0, 0, 0},
		DstMAC:       net.HardwareAddr{0, 0, 0, 0, 0, 0},
		EthernetType: layers.EthernetTypeIPv4,
	}
	ip := &layers.IPv4{
		Version:  4,
		TTL:      64,
		Protocol: layers.IPProtocolUDP,
		SrcIP:    src.IP.To4(),
		DstIP:    dstIP,
	}
	udp := &layers.UDP{
		SrcPort: layers.UDPPort(src.Port),
		DstPort: layers.UDPPort(r.dst.Port),
	}
	if err := udp.SetNetworkLayerForChecksum(ip); err != nil {
		return err
	}
	buf := gopacket.NewSerializeBuffer()
	opts := gopacket.SerializeOptions{FixLengths: true, ComputeChecksums: true}
	if err := gopacket.SerializeLayers(buf, opts, eth, ip, udp, gopacket.Payload(payload)); err != nil {
		return fmt.Errorf("serialize datagram: %w", err)
	}
	data := buf.Bytes()
	ci := gopacket.CaptureInfo{Timestamp: ts, CaptureLength: len(data), Length: len(data)}

	r.mu.Lock()
	defer r.mu.Unlock()
	if err := r.w.WritePacket(ci, data); err != nil {
		return err
	}
	r.count++
	return nil
}

func (r *Recorder) Count() int {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.count
}

func (r *Recorder) Close() error {
	if r.closer != nil {
		return r.closer.Close()
	}
	return nil
}

// RecordingTransport passes datagrams of the wrapped transport through
// and records each of them.
type RecordingTransport struct {
	stream.Transport
	rec *Recorder
	now func() time.Time
}

var _ stream.Transport = (*RecordingTransport)(nil)

func NewRecordingTransport(t stream.Transport, rec *Recorder) *RecordingTransport {
	return &RecordingTransport{Transport: t, rec: rec, now: time.Now}
}

func (t *RecordingTransport) Receive(buf []byte) (int, net.Addr, error) {
	n, from, err := t.Transport.Receive(buf)
	if err != nil {
		return n, from, err
	}
	if err := t.rec.Record(buf[:n], from, t.now()); err != nil {
		return 0, nil, fmt.Errorf("record datagram: %w", err)
	}
	return n, from, nil
}

// Close closes the wrapped transport and the recorder
func (t *RecordingTransport) Close() error {
	err := t.Transport.Close()
	if cerr := t.rec.Close(); err == nil {
		err = cerr
	}
	return err
}
