package telemetry

import (
	"context"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"go.uber.org/zap/zaptest/observer"

	"github.com/plantrent/backend/internal/infrastructure/logger"
)

func TestNewLoggerProvider_Disabled(t *testing.T) {
	ctx := context.Background()

	provider, err := NewLoggerProvider(ctx, LogsConfig{
		Enabled:           false,
		CollectorEndpoint: "localhost:14317",
		ServiceName:       "statement-service",
		Insecure:          true,
	}, zap.NewNop())
	require.NoError(t, err)

	assert.False(t, provider.IsEnabled())
	assert.Nil(t, provider.GetLoggerProvider())
	assert.NoError(t, provider.ForceFlush(ctx))

	// Shutdown stays safe however often it runs.
	assert.NoError(t, provider.Shutdown(ctx))
	assert.NoError(t, provider.Shutdown(ctx))
}

func TestLoggerProvider_GetConfig(t *testing.T) {
	cfg := LogsConfig{
		Enabled:           false,
		CollectorEndpoint: "localhost:14317",
		ServiceName:       "statement-service",
		Insecure:          true,
	}

	provider, err := NewLoggerProvider(context.Background(), cfg, zap.NewNop())
	require.NoError(t, err)
	assert.Equal(t, cfg, provider.GetConfig())
}

// The OTLP gRPC exporter connects lazily, so construction succeeds even when
// nothing listens on the endpoint and records buffer until shutdown.
func TestNewLoggerProvider_EnabledWithoutCollector(t *testing.T) {
	ctx := context.Background()

	provider, err := NewLoggerProvider(ctx, LogsConfig{
		Enabled:           true,
		CollectorEndpoint: "localhost:19999",
		ServiceName:       "statement-service",
		Insecure:          true,
	}, zap.NewNop())
	require.NoError(t, err)

	assert.True(t, provider.IsEnabled())
	assert.NotNil(t, provider.GetLoggerProvider())
	assert.NoError(t, provider.Shutdown(ctx))
}

func TestNewZapOTELCore_NopWhenUnavailable(t *testing.T) {
	core := NewZapOTELCore(nil, "statement-service", zapcore.InfoLevel)
	assert.False(t, core.Enabled(zapcore.ErrorLevel))

	disabled, err := NewLoggerProvider(context.Background(), LogsConfig{Enabled: false}, zap.NewNop())
	require.NoError(t, err)

	core = NewZapOTELCore(disabled, "statement-service", zapcore.InfoLevel)
	assert.False(t, core.Enabled(zapcore.ErrorLevel))
}

func TestNewZapOTELCore_LevelHandling(t *testing.T) {
	ctx := context.Background()
	provider, err := NewLoggerProvider(ctx, LogsConfig{
		Enabled:           true,
		CollectorEndpoint: "localhost:19999",
		ServiceName:       "statement-service",
		Insecure:          true,
	}, zap.NewNop())
	require.NoError(t, err)
	defer provider.Shutdown(ctx)

	debugCore := NewZapOTELCore(provider, "statement-service", zapcore.DebugLevel)
	assert.True(t, debugCore.Enabled(zapcore.DebugLevel))
	assert.True(t, debugCore.Enabled(zapcore.ErrorLevel))

	warnCore := NewZapOTELCore(provider, "statement-service", zapcore.WarnLevel)
	_, filtered := warnCore.(*levelFilterCore)
	assert.True(t, filtered, "non-debug minimum should wrap the core")
	assert.False(t, warnCore.Enabled(zapcore.DebugLevel))
	assert.False(t, warnCore.Enabled(zapcore.InfoLevel))
	assert.True(t, warnCore.Enabled(zapcore.WarnLevel))
	assert.True(t, warnCore.Enabled(zapcore.ErrorLevel))
}

func TestLevelFilterCore_DropsBelowMinimum(t *testing.T) {
	observed, entries := observer.New(zapcore.DebugLevel)
	log := zap.New(&levelFilterCore{Core: observed, minLevel: zapcore.WarnLevel})

	log.Debug("debug")
	log.Info("info")
	log.Warn("warn")
	log.Error("error")

	got := entries.All()
	require.Len(t, got, 2)
	assert.Equal(t, "warn", got[0].Message)
	assert.Equal(t, "error", got[1].Message)
}

func TestLevelFilterCore_WithKeepsFilterAndFields(t *testing.T) {
	observed, entries := observer.New(zapcore.DebugLevel)
	base := &levelFilterCore{Core: observed, minLevel: zapcore.WarnLevel}

	child := base.With([]zapcore.Field{zap.String("customer_id", "c-42")})
	childFilter, ok := child.(*levelFilterCore)
	require.True(t, ok)
	assert.Equal(t, zapcore.WarnLevel, childFilter.minLevel)

	log := zap.New(child)
	log.Info("dropped")
	log.Warn("statement generated")

	got := entries.All()
	require.Len(t, got, 1)
	assert.Equal(t, "statement generated", got[0].Message)
	assert.Contains(t, got[0].Context, zap.String("customer_id", "c-42"))
}

func TestCreateBridgedLoggerFromConfig(t *testing.T) {
	provider, err := NewLoggerProvider(context.Background(), LogsConfig{Enabled: false}, zap.NewNop())
	require.NoError(t, err)

	log, err := CreateBridgedLoggerFromConfig(&logger.Config{
		Level:      "info",
		Format:     "json",
		Output:     filepath.Join(t.TempDir(), "app.log"),
		TimeFormat: "2006-01-02T15:04:05.000Z07:00",
	}, provider, "statement-service")
	require.NoError(t, err)
	require.NotNil(t, log)

	log.Info("statement generated", zap.String("request_id", "req-123"))
	assert.NoError(t, log.Sync())
}

func TestCreateBridgedLoggerFromConfig_BadOutput(t *testing.T) {
	provider, err := NewLoggerProvider(context.Background(), LogsConfig{Enabled: false}, zap.NewNop())
	require.NoError(t, err)

	_, err = CreateBridgedLoggerFromConfig(&logger.Config{
		Level:      "info",
		Format:     "json",
		Output:     filepath.Join(t.TempDir(), "missing", "nested", "app.log"),
		TimeFormat: "2006-01-02T15:04:05.000Z07:00",
	}, provider, "statement-service")
	assert.Error(t, err)
}
