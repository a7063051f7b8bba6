package event

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"go.uber.org/zap/zaptest/observer"
)

func TestAuditLogHandler_Handle(t *testing.T) {
	observedZapCore, observedLogs := observer.New(zapcore.InfoLevel)
	handler := NewAuditLogHandler(zap.New(observedZapCore))

	event := newTestEvent("MonthlyStatementConfirmed")
	err := handler.Handle(context.Background(), event)
	require.NoError(t, err)

	require.Equal(t, 1, observedLogs.Len())
	entry := observedLogs.All()[0]
	assert.Equal(t, "domain event", entry.Message)

	fields := entry.ContextMap()
	assert.Equal(t, "MonthlyStatementConfirmed", fields["event_type"])
	assert.Equal(t, "TestAggregate", fields["aggregate_type"])
	assert.Equal(t, event.EventID().String(), fields["event_id"])
	assert.Equal(t, event.AggregateID().String(), fields["aggregate_id"])
}

func TestAuditLogHandler_EventTypes(t *testing.T) {
	handler := NewAuditLogHandler(zap.NewNop())

	// Empty means the handler subscribes to every event type.
	assert.Empty(t, handler.EventTypes())
}
