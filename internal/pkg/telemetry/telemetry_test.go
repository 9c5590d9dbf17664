package telemetry_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"stockpile/internal/pkg/telemetry"
)

func TestInit_NoEndpointIsNoop(t *testing.T) {
	shutdown, err := telemetry.Init(context.Background(), "stockpile", "test", "")

	require.NoError(t, err)
	assert.NoError(t, shutdown(context.Background()))
}

func TestTrimProtocol(t *testing.T) {
	assert.Equal(t, "otel:4318", telemetry.TrimProtocol("http://otel:4318"))
	assert.Equal(t, "otel:4318", telemetry.TrimProtocol("https://otel:4318"))
	assert.Equal(t, "otel:4318", telemetry.TrimProtocol("otel:4318"))
}

func TestInsecure_OnlyHTTPSUsesTLS(t *testing.T) {
	assert.True(t, telemetry.Insecure("http://otel:4318"))
	assert.True(t, telemetry.Insecure("otel:4318"))
	assert.False(t, telemetry.Insecure("https://collector.example.com"))
	assert.False(t, telemetry.Insecure("HTTPS://collector.example.com"))
}
