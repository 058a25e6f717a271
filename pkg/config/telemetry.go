package config

import (
	"context"
	"errors"
	"time"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/exporters/otlp/otlpmetric/otlpmetricgrpc"
	"go.opentelemetry.io/otel/exporters/stdout/stdoutmetric"
	sdkmetric "go.opentelemetry.io/otel/sdk/metric"
	"go.opentelemetry.io/otel/sdk/resource"

	"github.com/mpapenbr/f1-telemetry-go/log"
	"github.com/mpapenbr/f1-telemetry-go/version"
)

const (
	serviceName            = "f1t"
	StdoutEndpoint         = "stdout"
	defaultExportInterval  = 15 * time.Second
	defaultShutdownTimeout = 5 * time.Second
)

type Telemetry struct {
	meterProvider *sdkmetric.MeterProvider
}

// SetupTelemetry installs a global meter provider exporting to
// TelemetryEndpoint.
func SetupTelemetry(ctx context.Context) (*Telemetry, error) {
	exporter, err := newExporter(ctx, TelemetryEndpoint)
	if err != nil {
		return nil, err
	}
	interval, err := time.ParseDuration(TelemetryInterval)
	if err != nil || interval <= 0 {
		interval = defaultExportInterval
	}
	res, err := resource.Merge(resource.Default(),
		resource.NewSchemaless(
			attribute.String("service.name", serviceName),
			attribute.String("service.version", version.Version),
		))
	if err != nil {
		return nil, err
	}
	mp := sdkmetric.NewMeterProvider(
		sdkmetric.WithResource(res),
		sdkmetric.WithReader(
			sdkmetric.NewPeriodicReader(exporter, sdkmetric.WithInterval(interval))),
	)
	otel.SetMeterProvider(mp)
	log.Debug("telemetry enabled",
		log.String("endpoint", TelemetryEndpoint),
		log.Duration("interval", interval))
	return &Telemetry{meterProvider: mp}, nil
}

func newExporter(ctx context.Context, endpoint string) (sdkmetric.Exporter, error) {
	switch endpoint {
	case "":
		return nil, errors.New("no telemetry endpoint configured")
	case StdoutEndpoint:
		return stdoutmetric.New()
	default:
		return otlpmetricgrpc.New(ctx,
			otlpmetricgrpc.WithEndpoint(endpoint),
			otlpmetricgrpc.WithInsecure())
	}
}

// Shutdown flushes pending metrics
func (t *Telemetry) Shutdown() {
	ctx, cancel := context.WithTimeout(context.Background(), defaultShutdownTimeout)
	defer cancel()
	if err := t.meterProvider.Shutdown(ctx); err != nil {
		log.Warn("telemetry shutdown", log.ErrorField(err))
	}
}
