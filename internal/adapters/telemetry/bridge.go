package telemetry

import (
	"context"
	"fmt"
	"strings"
	"time"

	"go.opentelemetry.io/otel/codes"
	sdktrace "go.opentelemetry.io/otel/sdk/trace"
	"go.trai.ch/piprun/internal/core/ports"
)

// LogBridge implements sdktrace.SpanProcessor by logging finished spans at debug level.
type LogBridge struct {
	logger ports.Logger
}

// NewLogBridge returns a new LogBridge.
func NewLogBridge(logger ports.Logger) *LogBridge {
	return &LogBridge{logger: logger}
}

// NewProvider creates a tracer provider whose spans are reported through logger.
func NewProvider(logger ports.Logger) *sdktrace.TracerProvider {
	return sdktrace.NewTracerProvider(sdktrace.WithSpanProcessor(NewLogBridge(logger)))
}

// OnStart is called when a span starts.
func (b *LogBridge) OnStart(_ context.Context, _ sdktrace.ReadWriteSpan) {}

// OnEnd is called when a span ends.
func (b *LogBridge) OnEnd(s sdktrace.ReadOnlySpan) {
	elapsed := s.EndTime().Sub(s.StartTime()).Round(time.Millisecond)

	var attrs []string
	for _, kv := range s.Attributes() {
		attrs = append(attrs, string(kv.Key)+"="+kv.Value.Emit())
	}

	msg := fmt.Sprintf("%s finished in %s", s.Name(), elapsed)
	if len(attrs) > 0 {
		msg += " " + strings.Join(attrs, " ")
	}
	if s.Status().Code == codes.Error {
		msg += " (failed: " + s.Status().Description + ")"
	}
	b.logger.Debug(msg)
}

// Shutdown does nothing.
func (b *LogBridge) Shutdown(_ context.Context) error { return nil }

// ForceFlush does nothing.
func (b *LogBridge) ForceFlush(_ context.Context) error { return nil }
