package otel_test

import (
	"context"
	"deskbooker/infras/otel"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.opentelemetry.io/otel/codes"
	sdktrace "go.opentelemetry.io/otel/sdk/trace"
	"go.opentelemetry.io/otel/sdk/trace/tracetest"
)

func TestScope_RecordsAttributesAndErrors(t *testing.T) {
	recorder := tracetest.NewSpanRecorder()
	provider := sdktrace.NewTracerProvider(sdktrace.WithSpanProcessor(recorder))

	_, span := provider.Tracer("test").Start(context.Background(), "service.BookDesk")
	scope := otel.NewScope(span)

	scope.SetAttributes(map[string]any{
		"desk.id":      7,
		"booking.date": "2020-01-28",
		"success":      true,
	})
	scope.TraceIfError(nil)
	scope.TraceIfError(errors.New("storage unavailable"))
	scope.AddEvent("desk selected")
	scope.End()

	spans := recorder.Ended()
	require.Len(t, spans, 1)

	ended := spans[0]
	assert.Equal(t, "service.BookDesk", ended.Name())
	assert.Equal(t, codes.Error, ended.Status().Code)
	assert.Equal(t, "storage unavailable", ended.Status().Description)
	assert.Len(t, ended.Attributes(), 3)

	names := []string{}
	for _, event := range ended.Events() {
		names = append(names, event.Name)
	}

	assert.Contains(t, names, "desk selected")
	assert.Contains(t, names, "exception")
}
