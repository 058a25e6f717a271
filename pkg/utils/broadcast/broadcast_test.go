package broadcast

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	sdkmetric "go.opentelemetry.io/otel/sdk/metric"
	"go.opentelemetry.io/otel/sdk/metric/metricdata"
)

func receive[T any](t *testing.T, ch <-chan T) T {
	t.Helper()
	select {
	case v, ok := <-ch:
		require.True(t, ok, "channel closed")
		return v
	case <-time.After(2 * time.Second):
		t.Fatal("timeout waiting for message")
	}
	var zero T
	return zero
}

func waitClosed[T any](t *testing.T, ch <-chan T) {
	t.Helper()
	timeout := time.After(2 * time.Second)
	for {
		select {
		case _, ok := <-ch:
			if !ok {
				return
			}
		case <-timeout:
			t.Fatal("channel not closed")
		}
	}
}

func TestFanOut(t *testing.T) {
	source := make(chan int)
	b := NewBroadcastServer("test", source,
		WithMeterProvider[int](sdkmetric.NewMeterProvider()))
	defer b.Close()

	s1 := b.Subscribe()
	s2 := b.Subscribe()
	require.Eventually(t, func() bool { return b.Stats().Listeners == 2 },
		2*time.Second, 5*time.Millisecond)

	go func() { source <- 42 }()
	assert.Equal(t, 42, receive(t, s1))
	assert.Equal(t, 42, receive(t, s2))
}

func TestSlowSubscriberIsSkipped(t *testing.T) {
	source := make(chan int)
	b := NewBroadcastServer("slow", source,
		WithSkipTimeout[int](5*time.Millisecond),
		WithMeterProvider[int](sdkmetric.NewMeterProvider()))
	defer b.Close()

	_ = b.Subscribe() // never read
	fast := b.Subscribe()

	done := make(chan struct{})
	go func() {
		defer close(done)
		for i := range 3 {
			source <- i
		}
	}()
	for i := range 3 {
		assert.Equal(t, i, receive(t, fast))
	}
	<-done
	require.Eventually(t, func() bool { return b.Stats().Skipped == 3 },
		2*time.Second, 5*time.Millisecond)
	assert.Equal(t, int64(3), b.Stats().Received)
	assert.Equal(t, int64(3), b.Stats().Sent)
}

func TestCancelSubscription(t *testing.T) {
	source := make(chan string)
	b := NewBroadcastServer("cancel", source,
		WithMeterProvider[string](sdkmetric.NewMeterProvider()))
	defer b.Close()

	s := b.Subscribe()
	b.CancelSubscription(s)
	waitClosed(t, s)
	require.Eventually(t, func() bool { return b.Stats().Listeners == 0 },
		2*time.Second, 5*time.Millisecond)
}

func TestSourceClosedStopsServer(t *testing.T) {
	source := make(chan int, 1)
	b := NewBroadcastServer("eof", source,
		WithBufferSize[int](1),
		WithMeterProvider[int](sdkmetric.NewMeterProvider()))
	s := b.Subscribe()
	source <- 1
	close(source)

	assert.Equal(t, 1, receive(t, s))
	waitClosed(t, s)
	select {
	case <-b.Done():
	case <-time.After(2 * time.Second):
		t.Fatal("server did not stop")
	}
	// subscriptions after the stop get a closed channel
	waitClosed(t, b.Subscribe())
}

func TestCloseClosesListeners(t *testing.T) {
	b := NewBroadcastServer("close", make(chan int),
		WithMeterProvider[int](sdkmetric.NewMeterProvider()))
	s := b.Subscribe()
	b.Close()
	waitClosed(t, s)
}

func TestMetrics(t *testing.T) {
	reader := sdkmetric.NewManualReader()
	source := make(chan int)
	b := NewBroadcastServer("metrics", source,
		WithTelemetry[int]("4711"),
		WithMeterProvider[int](sdkmetric.NewMeterProvider(sdkmetric.WithReader(reader))))
	defer b.Close()
	s := b.Subscribe()
	go func() { source <- 1 }()
	receive(t, s)
	require.Eventually(t, func() bool { return b.Stats().Sent == 1 },
		2*time.Second, 5*time.Millisecond)

	var rm metricdata.ResourceMetrics
	require.NoError(t, reader.Collect(context.Background(), &rm))
	got := map[string]int64{}
	for _, sm := range rm.ScopeMetrics {
		assert.Equal(t, "f1t.broadcast.metrics", sm.Scope.Name)
		for _, m := range sm.Metrics {
			gauge, ok := m.Data.(metricdata.Gauge[int64])
			require.True(t, ok)
			for _, dp := range gauge.DataPoints {
				ev, _ := dp.Attributes.Value("event")
				assert.Equal(t, "4711", ev.AsString())
				got[m.Name] = dp.Value
			}
		}
	}
	assert.Equal(t, map[string]int64{
		"f1t.broadcast.rcv":      1,
		"f1t.broadcast.snd":      1,
		"f1t.broadcast.skip":     0,
		"f1t.broadcast.listener": 1,
	}, got)
}
