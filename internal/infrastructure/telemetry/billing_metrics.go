package telemetry

import (
	"context"
	"sync"
	"time"

	"github.com/shopspring/decimal"
	"go.opentelemetry.io/otel/metric"
	"go.uber.org/zap"
)

// BillingMetrics provides business metrics for the rental billing flow.
// It tracks statement generation outcomes, confirmed revenue, and the
// confirmation backlog.
type BillingMetrics struct {
	meter  metric.Meter
	logger *zap.Logger

	// Counter metrics (monotonically increasing)
	statementGeneratedTotal *Counter
	statementAmountTotal    *Counter
	statementConfirmedTotal *Counter

	// Gauge metrics (point-in-time values)
	statementsAwaitingConfirmation *Gauge
	contractsActive                *Gauge

	// Periodic collector
	stopChan    chan struct{}
	stopOnce    sync.Once
	collectOnce sync.Once

	// Data provider for periodic collection
	statementProvider StatementMetricsProvider
}

// StatementMetricsProvider provides billing data for periodic metrics
// collection. This interface allows the telemetry layer to query statement
// and contract state without depending on the domain directly.
type StatementMetricsProvider interface {
	// GetAwaitingConfirmationCount returns how many active statements still
	// need a human confirmation
	GetAwaitingConfirmationCount(ctx context.Context) (int64, error)

	// GetActiveContractCount returns how many rental contracts are currently active
	GetActiveContractCount(ctx context.Context) (int64, error)
}

// BillingMetricsConfig holds configuration for billing metrics.
type BillingMetricsConfig struct {
	Meter             metric.Meter
	Logger            *zap.Logger
	CollectInterval   time.Duration // Default: 5 minutes
	StatementProvider StatementMetricsProvider
}

// NewBillingMetrics creates a new BillingMetrics instance.
func NewBillingMetrics(cfg BillingMetricsConfig) (*BillingMetrics, error) {
	if cfg.Meter == nil {
		return nil, ErrMeterNil
	}

	logger := cfg.Logger
	if logger == nil {
		logger = zap.NewNop()
	}

	bm := &BillingMetrics{
		meter:             cfg.Meter,
		logger:            logger,
		stopChan:          make(chan struct{}),
		statementProvider: cfg.StatementProvider,
	}

	// Initialize counter metrics
	var err error

	bm.statementGeneratedTotal, err = NewCounter(
		cfg.Meter,
		"plantrent_statement_generated_total",
		"Total number of statement generation runs by outcome",
		"{statements}",
	)
	if err != nil {
		return nil, err
	}

	bm.statementAmountTotal, err = NewCounter(
		cfg.Meter,
		"plantrent_statement_amount_total",
		"Total generated statement amount in Vietnamese dong",
		"{dong}",
	)
	if err != nil {
		return nil, err
	}

	bm.statementConfirmedTotal, err = NewCounter(
		cfg.Meter,
		"plantrent_statement_confirmed_total",
		"Total number of statements confirmed",
		"{statements}",
	)
	if err != nil {
		return nil, err
	}

	// Gauge metrics
	bm.statementsAwaitingConfirmation, err = NewGauge(
		cfg.Meter,
		"plantrent_statement_awaiting_confirmation",
		"Number of active statements that still need confirmation",
		"{statements}",
	)
	if err != nil {
		return nil, err
	}

	bm.contractsActive, err = NewGauge(
		cfg.Meter,
		"plantrent_contract_active",
		"Number of rental contracts currently active",
		"{contracts}",
	)
	if err != nil {
		return nil, err
	}

	return bm, nil
}

// =============================================================================
// Statement Metrics
// =============================================================================

// StatementOutcome labels what a generation run did to the statement slot.
type StatementOutcome string

const (
	StatementOutcomeGenerated     StatementOutcome = "generated"
	StatementOutcomeRegenerated   StatementOutcome = "regenerated"
	StatementOutcomeConfirmedKept StatementOutcome = "confirmed_kept"
)

// RecordStatementGenerated records one statement generation run.
// This should be called from the application layer after the run completes.
func (bm *BillingMetrics) RecordStatementGenerated(ctx context.Context, outcome StatementOutcome) {
	bm.statementGeneratedTotal.Inc(ctx,
		AttrStatementOutcome.String(string(outcome)),
	)
}

// RecordStatementAmount records the grand total of a generated statement.
// Amount is in dong; VND has no minor unit.
func (bm *BillingMetrics) RecordStatementAmount(ctx context.Context, outcome StatementOutcome, amountDong int64) {
	bm.statementAmountTotal.Add(ctx, amountDong,
		AttrStatementOutcome.String(string(outcome)),
	)
}

// RecordStatementWithAmount is a convenience method that records both the run
// outcome and the statement amount.
func (bm *BillingMetrics) RecordStatementWithAmount(ctx context.Context, outcome StatementOutcome, amount decimal.Decimal) {
	bm.RecordStatementGenerated(ctx, outcome)
	bm.RecordStatementAmount(ctx, outcome, amount.IntPart())
}

// RecordStatementConfirmed records a statement confirmation.
func (bm *BillingMetrics) RecordStatementConfirmed(ctx context.Context) {
	bm.statementConfirmedTotal.Inc(ctx)
}

// RecordAwaitingConfirmation records the current confirmation backlog.
// This is a gauge metric that should be updated periodically.
func (bm *BillingMetrics) RecordAwaitingConfirmation(ctx context.Context, count int64) {
	bm.statementsAwaitingConfirmation.Record(ctx, count)
}

// RecordActiveContracts records the number of currently active contracts.
// This is a gauge metric that should be updated periodically.
func (bm *BillingMetrics) RecordActiveContracts(ctx context.Context, count int64) {
	bm.contractsActive.Record(ctx, count)
}

// =============================================================================
// Periodic Collection
// =============================================================================

// StartPeriodicCollection starts periodic collection of gauge metrics.
// It collects the confirmation backlog and contract counts every interval
// (default: 5 minutes). This is non-blocking - use Stop() to stop collection.
func (bm *BillingMetrics) StartPeriodicCollection(ctx context.Context, interval time.Duration) {
	bm.collectOnce.Do(func() {
		if interval <= 0 {
			interval = 5 * time.Minute
		}

		go bm.runPeriodicCollection(ctx, interval)
	})
}

// runPeriodicCollection runs the periodic collection loop.
func (bm *BillingMetrics) runPeriodicCollection(ctx context.Context, interval time.Duration) {
	ticker := time.NewTicker(interval)
	defer ticker.Stop()

	// Collect immediately on start
	bm.collectStatementMetrics(ctx)

	for {
		select {
		case <-bm.stopChan:
			bm.logger.Info("Stopping periodic billing metrics collection")
			return
		case <-ctx.Done():
			bm.logger.Info("Context cancelled, stopping periodic billing metrics collection")
			return
		case <-ticker.C:
			bm.collectStatementMetrics(ctx)
		}
	}
}

// collectStatementMetrics collects the billing gauge metrics.
func (bm *BillingMetrics) collectStatementMetrics(ctx context.Context) {
	if bm.statementProvider == nil {
		bm.logger.Debug("No statement provider configured, skipping billing metrics collection")
		return
	}

	awaiting, err := bm.statementProvider.GetAwaitingConfirmationCount(ctx)
	if err != nil {
		bm.logger.Warn("Failed to get confirmation backlog", zap.Error(err))
	} else {
		bm.RecordAwaitingConfirmation(ctx, awaiting)
	}

	active, err := bm.statementProvider.GetActiveContractCount(ctx)
	if err != nil {
		bm.logger.Warn("Failed to get active contract count", zap.Error(err))
	} else {
		bm.RecordActiveContracts(ctx, active)
	}
}

// Stop stops the periodic collection.
func (bm *BillingMetrics) Stop() {
	bm.stopOnce.Do(func() {
		close(bm.stopChan)
	})
}

// =============================================================================
// Error Types
// =============================================================================

// ErrMeterNil is returned when meter is nil.
var ErrMeterNil = &MetricsError{Op: "NewBillingMetrics", Err: "meter cannot be nil"}

// MetricsError represents a metrics-related error.
type MetricsError struct {
	Op  string
	Err string
}

func (e *MetricsError) Error() string {
	return e.Op + ": " + e.Err
}
