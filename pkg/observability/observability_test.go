package observability

import (
	"bytes"
	"context"
	"errors"
	"log/slog"
	"testing"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"

	"github.com/lime816/whatsappsuitetest-sub002/pkg/domain"
)

func TestMetrics_Hooks(t *testing.T) {
	reg := prometheus.NewRegistry()
	m := NewMetrics(reg)
	hooks := m.Hooks()
	ctx := context.Background()

	hooks.EmitCompile(ctx, &domain.CompileEvent{Screens: 2, Duration: time.Millisecond})
	hooks.EmitCompile(ctx, &domain.CompileEvent{Screens: 2, Cached: true})
	hooks.EmitCompile(ctx, &domain.CompileEvent{Err: errors.New("boom")})
	hooks.EmitValidate(ctx, &domain.ValidateEvent{Scope: domain.ScopeScreen, Errors: 2, Warnings: 1})

	assert.Equal(t, 1.0, testutil.ToFloat64(m.Compiles.WithLabelValues("ok")))
	assert.Equal(t, 1.0, testutil.ToFloat64(m.Compiles.WithLabelValues("cached")))
	assert.Equal(t, 1.0, testutil.ToFloat64(m.Compiles.WithLabelValues("error")))
	assert.Equal(t, 1.0, testutil.ToFloat64(m.Validations.WithLabelValues("screen")))
	assert.Equal(t, 2.0, testutil.ToFloat64(m.Issues.WithLabelValues("screen", "error")))
	assert.Equal(t, 1.0, testutil.ToFloat64(m.Issues.WithLabelValues("screen", "warning")))

	// Only fresh successful compilations are timed.
	families, err := reg.Gather()
	assert.NoError(t, err)
	var samples uint64
	for _, mf := range families {
		if mf.GetName() == "flowsuite_compile_duration_seconds" {
			samples = mf.GetMetric()[0].GetHistogram().GetSampleCount()
		}
	}
	assert.Equal(t, uint64(1), samples)
}

func TestNewMetrics_NilRegisterer(t *testing.T) {
	assert.NotPanics(t, func() { NewMetrics(nil) })
}

func TestLoggingHooks(t *testing.T) {
	var buf bytes.Buffer
	logger := slog.New(slog.NewTextHandler(&buf, &slog.HandlerOptions{Level: slog.LevelDebug}))
	hooks := LoggingHooks(logger)
	ctx := context.Background()

	hooks.EmitCompile(ctx, &domain.CompileEvent{Screens: 3, Elements: 9})
	hooks.EmitCompile(ctx, &domain.CompileEvent{Screens: 1, Err: errors.New("boom")})
	hooks.EmitValidate(ctx, &domain.ValidateEvent{Scope: domain.ScopeFlow, Errors: 1})

	out := buf.String()
	assert.Contains(t, out, "msg=compile screens=3 elements=9")
	assert.Contains(t, out, "level=ERROR msg=\"compile failed\"")
	assert.Contains(t, out, "err=boom")
	assert.Contains(t, out, "scope=flow errors=1")
}
