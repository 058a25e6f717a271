package config

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.opentelemetry.io/otel"
)

func TestSetupTelemetryStdout(t *testing.T) {
	prev := otel.GetMeterProvider()
	t.Cleanup(func() { otel.SetMeterProvider(prev) })

	TelemetryEndpoint = StdoutEndpoint
	TelemetryInterval = "1m"
	tel, err := SetupTelemetry(context.Background())
	require.NoError(t, err)
	assert.Same(t, tel.meterProvider, otel.GetMeterProvider())
	tel.Shutdown()
}

func TestSetupTelemetryNoEndpoint(t *testing.T) {
	TelemetryEndpoint = ""
	_, err := SetupTelemetry(context.Background())
	assert.Error(t, err)
}
