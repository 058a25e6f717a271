package capture

import (
	"bytes"
	"context"
	"errors"
	"io"
	"net"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	sdkmetric "go.opentelemetry.io/otel/sdk/metric"

	"github.com/mpapenbr/f1-telemetry-go/pkg/model"
	"github.com/mpapenbr/f1-telemetry-go/pkg/stream"
	"github.com/mpapenbr/f1-telemetry-go/testsupport/f1data"
)

var (
	game  = &net.UDPAddr{IP: net.IPv4(192, 168, 1, 20), Port: 50123}
	start = time.Date(2021, 7, 18, 14, 0, 0, 0, time.UTC)
)

func record(t *testing.T, dst *net.UDPAddr, payloads ...[]byte) *bytes.Buffer {
	t.Helper()
	var buf bytes.Buffer
	rec, err := NewRecorder(&buf, dst)
	require.NoError(t, err)
	for i, p := range payloads {
		require.NoError(t, rec.Record(p, game, start.Add(time.Duration(i)*100*time.Millisecond)))
	}
	assert.Equal(t, len(payloads), rec.Count())
	require.NoError(t, rec.Close())
	return &buf
}

func readAll(t *testing.T, r *Reader) [][]byte {
	t.Helper()
	var ret [][]byte
	buf := make([]byte, stream.MaxDatagramSize)
	for {
		n, from, err := r.Receive(buf)
		if errors.Is(err, io.EOF) {
			return ret
		}
		require.NoError(t, err)
		assert.Equal(t, game.String(), from.String())
		ret = append(ret, append([]byte(nil), buf[:n]...))
	}
}

func TestRoundTrip(t *testing.T) {
	payloads := [][]byte{
		f1data.Packet(f1data.F12019, model.PacketTypeSession),
		f1data.Packet(f1data.F12020, model.PacketTypeLap),
		{1, 2, 3},
	}
	buf := record(t, nil, payloads...)

	r, err := NewReader("mem", buf)
	require.NoError(t, err)
	assert.Equal(t, payloads, readAll(t, r))
	assert.Equal(t, "mem", r.LocalAddr().String())
	assert.Equal(t, "pcap", r.LocalAddr().Network())
	assert.NoError(t, r.Close())
}

func TestPortFilter(t *testing.T) {
	var buf bytes.Buffer
	rec, err := NewRecorder(&buf, &net.UDPAddr{IP: net.IPv4(127, 0, 0, 1), Port: 20777})
	require.NoError(t, err)
	require.NoError(t, rec.Record([]byte("a"), game, start))
	rec.dst = &net.UDPAddr{IP: net.IPv4(127, 0, 0, 1), Port: 53}
	require.NoError(t, rec.Record([]byte("dns"), game, start))
	rec.dst = &net.UDPAddr{IP: net.IPv4(127, 0, 0, 1), Port: 20777}
	require.NoError(t, rec.Record([]byte("b"), game, start))

	r, err := NewReader("mem", bytes.NewReader(buf.Bytes()))
	require.NoError(t, err)
	assert.Equal(t, [][]byte{[]byte("a"), []byte("b")}, readAll(t, r))
	assert.Equal(t, 1, r.Skipped())

	r, err = NewReader("mem", bytes.NewReader(buf.Bytes()), WithPort(0))
	require.NoError(t, err)
	assert.Len(t, readAll(t, r), 3)
}

func TestSpeed(t *testing.T) {
	buf := record(t, nil, []byte("a"), []byte("b"), []byte("c"))
	now := start
	r, err := NewReader("mem", buf, WithSpeed(2), withClock(func() time.Time { return now }))
	require.NoError(t, err)
	data := make([]byte, 16)

	// the first datagram starts the replay clock
	n, _, err := r.Receive(data)
	require.NoError(t, err)
	assert.Equal(t, "a", string(data[:n]))

	// captured 100ms later, due after 50ms at double speed
	_, _, err = r.Receive(data)
	assert.ErrorIs(t, err, stream.ErrNoData)
	now = now.Add(49 * time.Millisecond)
	_, _, err = r.Receive(data)
	assert.ErrorIs(t, err, stream.ErrNoData)
	now = now.Add(time.Millisecond)
	n, _, err = r.Receive(data)
	require.NoError(t, err)
	assert.Equal(t, "b", string(data[:n]))

	now = now.Add(time.Second)
	n, _, err = r.Receive(data)
	require.NoError(t, err)
	assert.Equal(t, "c", string(data[:n]))
	_, _, err = r.Receive(data)
	assert.ErrorIs(t, err, io.EOF)
}

func TestNewReaderInvalid(t *testing.T) {
	_, err := NewReader("garbage", strings.NewReader("no pcap here at all"))
	assert.Error(t, err)
}

func TestFiles(t *testing.T) {
	name := filepath.Join(t.TempDir(), DefaultFileName())
	assert.True(t, strings.HasPrefix(filepath.Base(name), "f1t-"))
	assert.Equal(t, ".pcap", filepath.Ext(name))

	rec, err := CreateFile(name, nil)
	require.NoError(t, err)
	payload := f1data.Packet(f1data.F12021, model.PacketTypeCarTelemetry)
	require.NoError(t, rec.Record(payload, game, start))
	require.NoError(t, rec.Close())

	r, err := OpenFile(name)
	require.NoError(t, err)
	defer r.Close()
	assert.Equal(t, [][]byte{payload}, readAll(t, r))
}

func TestReplayThroughStream(t *testing.T) {
	var payloads [][]byte
	for _, f := range f1data.Formats {
		payloads = append(payloads,
			f1data.Packet(f, model.PacketTypeMotion),
			f1data.Packet(f, model.PacketTypeCarStatus))
	}
	r, err := NewReader("mem", record(t, nil, payloads...))
	require.NoError(t, err)

	s := stream.New(r, stream.WithMeterProvider(sdkmetric.NewMeterProvider()))
	var formats []uint16
	err = s.Run(context.Background(), func(res *stream.Result) error {
		require.NoError(t, res.Err)
		formats = append(formats, res.Packet.Header().PacketFormat)
		return nil
	})
	assert.ErrorIs(t, err, io.EOF)
	assert.ErrorIs(t, err, model.ErrTransport)
	assert.Equal(t, []uint16{2019, 2019, 2020, 2020, 2021, 2021}, formats)
}

type fakeTransport struct {
	items  [][]byte
	closed bool
}

func (f *fakeTransport) Receive(buf []byte) (int, net.Addr, error) {
	if len(f.items) == 0 {
		return 0, nil, stream.ErrNoData
	}
	n := copy(buf, f.items[0])
	f.items = f.items[1:]
	return n, game, nil
}

func (f *fakeTransport) LocalAddr() net.Addr { return game }

func (f *fakeTransport) Close() error {
	f.closed = true
	return nil
}

func TestRecordingTransport(t *testing.T) {
	var buf bytes.Buffer
	rec, err := NewRecorder(&buf, nil)
	require.NoError(t, err)
	inner := &fakeTransport{items: [][]byte{[]byte("x"), []byte("yz")}}
	tr := NewRecordingTransport(inner, rec)

	data := make([]byte, 16)
	for range 2 {
		_, _, err := tr.Receive(data)
		require.NoError(t, err)
	}
	_, _, err = tr.Receive(data)
	assert.ErrorIs(t, err, stream.ErrNoData)
	assert.Equal(t, 2, rec.Count())
	assert.Equal(t, game, tr.LocalAddr())
	require.NoError(t, tr.Close())
	assert.True(t, inner.closed)

	r, err := NewReader("mem", &buf)
	require.NoError(t, err)
	assert.Equal(t, [][]byte{[]byte("x"), []byte("yz")}, readAll(t, r))
}
