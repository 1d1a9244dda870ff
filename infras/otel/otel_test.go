package otel

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/sdk/trace"
	"go.opentelemetry.io/otel/sdk/trace/tracetest"
)

func newRecorded() (*tracetest.SpanRecorder, Otel) {
	recorder := tracetest.NewSpanRecorder()

	return recorder, &otelImpl{TracerProvider: trace.NewTracerProvider(trace.WithSpanProcessor(recorder))}
}

func attrs(span trace.ReadOnlySpan) map[attribute.Key]attribute.Value {
	res := map[attribute.Key]attribute.Value{}
	for _, kv := range span.Attributes() {
		res[kv.Key] = kv.Value
	}

	return res
}

func TestScope_Attributes(t *testing.T) {
	recorder, ot := newRecorded()

	_, scope := ot.NewScope(context.Background(), "service", "service.booking.Create")
	scope.SetAttributes(map[string]any{
		"booking.number": "BK-20260101-000001",
		"bookings.count": 2,
		"party.size":     int64(4),
		"price":          450.5,
		"notified":       true,
		"roles":          []string{"authenticated"},
		"other":          struct{ A int }{A: 1},
	})
	scope.End()

	spans := recorder.Ended()
	require.Len(t, spans, 1)
	assert.Equal(t, "service.booking.Create", spans[0].Name())

	got := attrs(spans[0])
	assert.Equal(t, "BK-20260101-000001", got["booking.number"].AsString())
	assert.Equal(t, int64(2), got["bookings.count"].AsInt64())
	assert.Equal(t, int64(4), got["party.size"].AsInt64())
	assert.InDelta(t, 450.5, got["price"].AsFloat64(), 0.001)
	assert.True(t, got["notified"].AsBool())
	assert.Equal(t, []string{"authenticated"}, got["roles"].AsStringSlice())
	assert.Equal(t, "{1}", got["other"].AsString())
}

func TestScope_Errors(t *testing.T) {
	tests := []struct {
		name       string
		trace      func(Scope)
		wantStatus codes.Code
		wantDesc   string
	}{
		{
			name:       "no error keeps status unset",
			trace:      func(s Scope) { s.TraceIfError(nil) },
			wantStatus: codes.Unset,
		},
		{
			name:       "error sets status",
			trace:      func(s Scope) { s.TraceIfError(errors.New("connection refused")) },
			wantStatus: codes.Error,
			wantDesc:   "connection refused",
		},
		{
			name:       "nil error still fails the span",
			trace:      func(s Scope) { s.TraceError(nil) },
			wantStatus: codes.Error,
			wantDesc:   "unknown error",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			recorder, ot := newRecorded()

			_, scope := ot.NewScope(context.Background(), "repository", "query")
			tt.trace(scope)
			scope.End()

			spans := recorder.Ended()
			require.Len(t, spans, 1)
			assert.Equal(t, tt.wantStatus, spans[0].Status().Code)
			assert.Equal(t, tt.wantDesc, spans[0].Status().Description)
		})
	}
}

func TestOtel_Shutdown(t *testing.T) {
	_, ot := newRecorded()

	assert.NoError(t, ot.Shutdown(context.Background()))
}
