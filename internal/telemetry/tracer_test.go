package telemetry_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.opentelemetry.io/otel"

	"github.com/tuanvumaihuynh/parts-inventory/internal/config"
	"github.com/tuanvumaihuynh/parts-inventory/internal/telemetry"
)

func TestInitTracerWithoutCollector(t *testing.T) {
	ctx := context.Background()

	cleanup, err := telemetry.InitTracer(ctx, config.Otel{ServiceName: "parts-inventory", TraceIDRatio: 1})
	require.NoError(t, err)
	t.Cleanup(func() { assert.NoError(t, cleanup(ctx)) })

	_, span := otel.Tracer("test").Start(ctx, "op")
	defer span.End()

	assert.True(t, span.SpanContext().IsValid())
	assert.True(t, span.SpanContext().IsSampled())
}
