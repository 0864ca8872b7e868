package otel_test

import (
	"agendador/infras/otel"
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	sdktrace "go.opentelemetry.io/otel/sdk/trace"
	"go.opentelemetry.io/otel/sdk/trace/tracetest"
)

func record(t *testing.T, fn func(scope otel.Scope)) sdktrace.ReadOnlySpan {
	t.Helper()

	recorder := tracetest.NewSpanRecorder()
	provider := sdktrace.NewTracerProvider(sdktrace.WithSpanProcessor(recorder))

	_, span := provider.Tracer("test").Start(context.Background(), "op")
	scope := otel.NewScope(span)

	fn(scope)
	scope.End()

	ended := recorder.Ended()
	require.Len(t, ended, 1)

	return ended[0]
}

func TestScope_TraceIfErrorSeesFinalReturn(t *testing.T) {
	work := func(scope otel.Scope) (err error) {
		defer scope.TraceIfError(&err)

		err = errors.New("room already booked")

		return err
	}

	span := record(t, func(scope otel.Scope) { _ = work(scope) })

	assert.Equal(t, codes.Error, span.Status().Code)
	assert.Equal(t, "room already booked", span.Status().Description)
}

func TestScope_TraceIfErrorNil(t *testing.T) {
	span := record(t, func(scope otel.Scope) {
		var err error
		scope.TraceIfError(&err)
		scope.TraceIfError(nil)
	})

	assert.Equal(t, codes.Unset, span.Status().Code)
}

func TestScope_SetAttributes(t *testing.T) {
	start := time.Date(2025, 9, 15, 8, 0, 0, 0, time.UTC)

	span := record(t, func(scope otel.Scope) {
		scope.SetAttributes(map[string]any{
			"reservation.id": "res-1",
			"attempt":        2,
			"blocking":       true,
			"start":          start,
		})
	})

	got := map[attribute.Key]attribute.Value{}
	for _, kv := range span.Attributes() {
		got[kv.Key] = kv.Value
	}

	assert.Equal(t, "res-1", got["reservation.id"].AsString())
	assert.Equal(t, int64(2), got["attempt"].AsInt64())
	assert.True(t, got["blocking"].AsBool())
	assert.Equal(t, "2025-09-15T08:00:00Z", got["start"].AsString())
}
