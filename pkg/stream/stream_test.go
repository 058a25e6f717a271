package stream

import (
	"context"
	"errors"
	"net"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.opentelemetry.io/otel/attribute"
	sdkmetric "go.opentelemetry.io/otel/sdk/metric"
	"go.opentelemetry.io/otel/sdk/metric/metricdata"

	"github.com/mpapenbr/f1-telemetry-go/pkg/model"
	"github.com/mpapenbr/f1-telemetry-go/testsupport/f1data"
)

type item struct {
	data []byte
	err  error
}

// fakeTransport hands out queued items and reports ErrNoData when empty
type fakeTransport struct {
	items  []item
	closed bool
	polls  int
}

var fakeAddr = &net.UDPAddr{IP: net.IPv4(127, 0, 0, 1), Port: 20777}

func (f *fakeTransport) Receive(buf []byte) (int, net.Addr, error) {
	f.polls++
	if len(f.items) == 0 {
		return 0, nil, ErrNoData
	}
	it := f.items[0]
	f.items = f.items[1:]
	if it.err != nil {
		return 0, nil, it.err
	}
	return copy(buf, it.data), fakeAddr, nil
}

func (f *fakeTransport) LocalAddr() net.Addr { return fakeAddr }

func (f *fakeTransport) Close() error {
	f.closed = true
	return nil
}

func datagrams(data ...[]byte) *fakeTransport {
	ret := &fakeTransport{}
	for _, d := range data {
		ret.items = append(ret.items, item{data: d})
	}
	return ret
}

var fixedTime = time.Date(2021, 7, 18, 14, 0, 0, 0, time.UTC)

func newTestStream(tr Transport, opts ...Option) *Stream {
	opts = append([]Option{
		withClock(func() time.Time { return fixedTime }),
		WithMeterProvider(sdkmetric.NewMeterProvider()),
	}, opts...)
	return New(tr, opts...)
}

func TestNextIdle(t *testing.T) {
	s := newTestStream(datagrams())
	res, err := s.Next()
	assert.NoError(t, err)
	assert.Nil(t, res)
}

func TestNextReady(t *testing.T) {
	buf := f1data.Packet(f1data.F12020, model.PacketTypeLap)
	s := newTestStream(datagrams(buf))

	res, err := s.Next()
	require.NoError(t, err)
	require.NotNil(t, res)
	assert.NoError(t, res.Err)
	assert.Equal(t, len(buf), res.Size)
	assert.Equal(t, fakeAddr, res.From)
	assert.Equal(t, fixedTime, res.Received)
	assert.Nil(t, res.Raw)
	lap, ok := res.Packet.(*model.Lap)
	require.True(t, ok, "got %T", res.Packet)
	assert.Equal(t, uint16(2020), lap.Header().PacketFormat)

	// back to idle
	res, err = s.Next()
	assert.NoError(t, err)
	assert.Nil(t, res)
}

func TestNextDecodeErrorIsNotFatal(t *testing.T) {
	s := newTestStream(datagrams(
		[]byte{0x01, 0x00, 1, 2, 3},
		f1data.Packet(f1data.F12019, model.PacketTypeEvent),
	))

	res, err := s.Next()
	require.NoError(t, err)
	require.NotNil(t, res)
	assert.Nil(t, res.Packet)
	assert.ErrorIs(t, res.Err, model.ErrUnknownFormat)
	assert.False(t, model.IsFatal(res.Err))

	res, err = s.Next()
	require.NoError(t, err)
	require.NotNil(t, res)
	assert.NoError(t, res.Err)
	assert.Equal(t, model.PacketTypeEvent, res.Packet.Type())
}

func TestNextTransportError(t *testing.T) {
	cause := errors.New("socket gone")
	s := newTestStream(&fakeTransport{items: []item{{err: cause}}})

	res, err := s.Next()
	assert.Nil(t, res)
	assert.ErrorIs(t, err, model.ErrTransport)
	assert.ErrorIs(t, err, cause)
	assert.True(t, model.IsFatal(err))
	var te *model.TransportError
	require.ErrorAs(t, err, &te)
	assert.Equal(t, "receive", te.Op)
}

func TestKeepRaw(t *testing.T) {
	first := f1data.Packet(f1data.F12021, model.PacketTypeMotion)
	second := f1data.Packet(f1data.F12021, model.PacketTypeSession)
	s := newTestStream(datagrams(first, second), WithKeepRaw(true))

	r1, err := s.Next()
	require.NoError(t, err)
	r2, err := s.Next()
	require.NoError(t, err)
	// each result owns its bytes, the stream buffer is reused
	assert.Equal(t, first, r1.Raw)
	assert.Equal(t, second, r2.Raw)
}

func TestRun(t *testing.T) {
	tr := datagrams(
		f1data.Packet(f1data.F12019, model.PacketTypeSession),
		[]byte{0xE3},
		f1data.Packet(f1data.F12021, model.PacketTypeCarStatus),
	)
	s := newTestStream(tr, WithPollInterval(time.Millisecond))
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	var got []*Result
	err := s.Run(ctx, func(r *Result) error {
		got = append(got, r)
		if len(got) == 3 {
			cancel()
		}
		return nil
	})
	assert.NoError(t, err)
	require.Len(t, got, 3)
	assert.Equal(t, model.PacketTypeSession, got[0].Packet.Type())
	assert.ErrorIs(t, got[1].Err, model.ErrPacketTooSmall)
	assert.Equal(t, model.PacketTypeCarStatus, got[2].Packet.Type())
}

func TestRunPollsWhileIdle(t *testing.T) {
	tr := datagrams()
	s := newTestStream(tr, WithPollInterval(time.Millisecond))
	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Millisecond)
	defer cancel()

	err := s.Run(ctx, func(r *Result) error {
		t.Fatalf("unexpected result %v", r)
		return nil
	})
	assert.NoError(t, err)
	assert.Greater(t, tr.polls, 1)
}

func TestRunStopsOnTransportError(t *testing.T) {
	tr := datagrams(f1data.Packet(f1data.F12020, model.PacketTypeEvent))
	tr.items = append(tr.items, item{err: net.ErrClosed})
	s := newTestStream(tr)

	count := 0
	err := s.Run(context.Background(), func(*Result) error {
		count++
		return nil
	})
	assert.ErrorIs(t, err, model.ErrTransport)
	assert.ErrorIs(t, err, net.ErrClosed)
	assert.Equal(t, 1, count)
}

func TestRunStopsOnCallbackError(t *testing.T) {
	stop := errors.New("stop")
	tr := datagrams(
		f1data.Packet(f1data.F12020, model.PacketTypeEvent),
		f1data.Packet(f1data.F12020, model.PacketTypeEvent),
	)
	s := newTestStream(tr)

	err := s.Run(context.Background(), func(*Result) error { return stop })
	assert.ErrorIs(t, err, stop)
	assert.Len(t, tr.items, 1)
}

func TestClose(t *testing.T) {
	tr := datagrams()
	s := newTestStream(tr)
	assert.Equal(t, fakeAddr, s.LocalAddr())
	require.NoError(t, s.Close())
	assert.True(t, tr.closed)
}

func TestMetrics(t *testing.T) {
	reader := sdkmetric.NewManualReader()
	mp := sdkmetric.NewMeterProvider(sdkmetric.WithReader(reader))
	tr := datagrams(
		f1data.Packet(f1data.F12019, model.PacketTypeLap),
		f1data.Packet(f1data.F12019, model.PacketTypeLap),
		f1data.Packet(f1data.F12021, model.PacketTypeEvent),
		f1data.Unsupported(f1data.F12021, 10),
		[]byte{0x01, 0x00, 0, 0},
	)
	tr.items = append(tr.items, item{err: errors.New("boom")})
	s := New(tr, WithMeterProvider(mp))
	for {
		if _, err := s.Next(); err != nil {
			break
		}
	}

	var rm metricdata.ResourceMetrics
	require.NoError(t, reader.Collect(context.Background(), &rm))

	assert.Equal(t, int64(2), sumOf(t, rm, "f1t.stream.packets",
		attribute.Int("format", 2019), attribute.String("type", "Lap")))
	assert.Equal(t, int64(1), sumOf(t, rm, "f1t.stream.packets",
		attribute.Int("format", 2021), attribute.String("type", "Event")))
	assert.Equal(t, int64(1), sumOf(t, rm, "f1t.stream.errors",
		attribute.String("kind", "unsupported_type")))
	assert.Equal(t, int64(1), sumOf(t, rm, "f1t.stream.errors",
		attribute.String("kind", "unknown_format")))
	assert.Equal(t, int64(1), sumOf(t, rm, "f1t.stream.errors",
		attribute.String("kind", "transport")))
	wantBytes := 2*f1data.Sizes[f1data.F12019][model.PacketTypeLap] +
		f1data.Sizes[f1data.F12021][model.PacketTypeEvent] +
		len(f1data.Unsupported(f1data.F12021, 10)) + 4
	assert.Equal(t, int64(wantBytes), sumOf(t, rm, "f1t.stream.bytes"))
}

// sumOf adds the values of all data points of the named counter whose
// attributes contain every given key value
func sumOf(t *testing.T, rm metricdata.ResourceMetrics, name string, kv ...attribute.KeyValue) int64 {
	t.Helper()
	var total int64
	for _, sm := range rm.ScopeMetrics {
		for _, m := range sm.Metrics {
			if m.Name != name {
				continue
			}
			sum, ok := m.Data.(metricdata.Sum[int64])
			require.True(t, ok, "metric %s has type %T", name, m.Data)
			for _, dp := range sum.DataPoints {
				if matches(dp.Attributes, kv) {
					total += dp.Value
				}
			}
		}
	}
	return total
}

func matches(set attribute.Set, kv []attribute.KeyValue) bool {
	for _, want := range kv {
		got, ok := set.Value(want.Key)
		if !ok || got != want.Value {
			return false
		}
	}
	return true
}
