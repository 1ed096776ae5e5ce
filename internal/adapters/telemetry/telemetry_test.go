package telemetry_test

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	sdktrace "go.opentelemetry.io/otel/sdk/trace"
	"go.opentelemetry.io/otel/sdk/trace/tracetest"
	"go.trai.ch/piprun/internal/adapters/telemetry"
	"go.trai.ch/piprun/internal/core/ports/mocks"
	"go.uber.org/mock/gomock"
)

func TestOTelTracer_RecordsSpans(t *testing.T) {
	recorder := tracetest.NewSpanRecorder()
	provider := sdktrace.NewTracerProvider(sdktrace.WithSpanProcessor(recorder))
	tracer := telemetry.NewOTelTracer(provider)

	_, span := tracer.Start(t.Context(), "create environment")
	span.SetAttribute("key", "abc")
	span.SetAttribute("requirements", []string{"Flask==1.0"})
	span.SetAttribute("count", 2)
	span.SetAttribute("cached", false)
	span.SetAttribute("other", struct{ A int }{1})
	span.RecordError(errors.New("boom"))
	span.RecordError(nil)
	span.End()

	ended := recorder.Ended()
	require.Len(t, ended, 1)
	got := ended[0]

	assert.Equal(t, "create environment", got.Name())
	assert.Equal(t, codes.Error, got.Status().Code)
	assert.Contains(t, got.Attributes(), attribute.String("key", "abc"))
	assert.Contains(t, got.Attributes(), attribute.StringSlice("requirements", []string{"Flask==1.0"}))
	assert.Contains(t, got.Attributes(), attribute.Int("count", 2))
	assert.Contains(t, got.Attributes(), attribute.Bool("cached", false))
	assert.Contains(t, got.Attributes(), attribute.String("other", "{1}"))

	var events []string
	for _, e := range got.Events() {
		events = append(events, e.Name)
	}
	assert.Contains(t, events, "exception")
}

func TestLogBridge_LogsFinishedSpans(t *testing.T) {
	ctrl := gomock.NewController(t)
	log := mocks.NewMockLogger(ctrl)

	var msg string
	log.EXPECT().Debug(gomock.Any()).Do(func(m string) { msg = m })

	tracer := telemetry.NewOTelTracer(telemetry.NewProvider(log))
	_, span := tracer.Start(t.Context(), "install requirements")
	span.SetAttribute("key", "abc")
	span.RecordError(errors.New("pip exited 1"))
	span.End()

	assert.Contains(t, msg, "install requirements finished in")
	assert.Contains(t, msg, "key=abc")
	assert.Contains(t, msg, "(failed: pip exited 1)")
}

func TestNoOpTracer(t *testing.T) {
	tracer := telemetry.NewNoOpTracer()

	ctx, span := tracer.Start(t.Context(), "noop")
	assert.Equal(t, t.Context(), ctx)

	span.SetAttribute("k", "v")
	span.RecordError(errors.New("ignored"))
	span.End()
}
