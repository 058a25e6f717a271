package stream

import (
	"context"

	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/metric"

	"github.com/mpapenbr/f1-telemetry-go/log"
	"github.com/mpapenbr/f1-telemetry-go/pkg/model"
)

const meterName = "f1t.stream"

type streamMetrics struct {
	packets metric.Int64Counter
	errors  metric.Int64Counter
	bytes   metric.Int64Counter
}

func newStreamMetrics(mp metric.MeterProvider, l *log.Logger) *streamMetrics {
	meter := mp.Meter(meterName)
	ret := &streamMetrics{}
	var err error
	if ret.packets, err = meter.Int64Counter("f1t.stream.packets",
		metric.WithDescription("Number of decoded packets"),
		metric.WithUnit("{packet}")); err != nil {
		l.Error("failed to register metric", log.String("metric", "packets"), log.ErrorField(err))
	}
	if ret.errors, err = meter.Int64Counter("f1t.stream.errors",
		metric.WithDescription("Number of dropped datagrams"),
		metric.WithUnit("{datagram}")); err != nil {
		l.Error("failed to register metric", log.String("metric", "errors"), log.ErrorField(err))
	}
	if ret.bytes, err = meter.Int64Counter("f1t.stream.bytes",
		metric.WithDescription("Number of received bytes"),
		metric.WithUnit("By")); err != nil {
		l.Error("failed to register metric", log.String("metric", "bytes"), log.ErrorField(err))
	}
	return ret
}

func (m *streamMetrics) record(r *Result) {
	ctx := context.Background()
	if m.bytes != nil {
		m.bytes.Add(ctx, int64(r.Size))
	}
	if r.Err != nil {
		m.error(ctx, model.Kind(r.Err))
		return
	}
	if m.packets != nil && r.Packet != nil {
		h := r.Packet.Header()
		m.packets.Add(ctx, 1, metric.WithAttributes(
			attribute.Int("format", int(h.PacketFormat)),
			attribute.String("type", h.PacketID.String()),
		))
	}
}

func (m *streamMetrics) transportError() {
	m.error(context.Background(), model.Kind(model.ErrTransport))
}

func (m *streamMetrics) error(ctx context.Context, kind string) {
	if m.errors != nil {
		m.errors.Add(ctx, 1, metric.WithAttributes(attribute.String("kind", kind)))
	}
}
