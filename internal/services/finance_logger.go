package services

import (
	"context"
	"log/slog"
	"time"
)

// traceIDKey is the context key under which the HTTP layer stores the request trace ID
type traceIDKey struct{}

// WithTraceID returns a context carrying the trace ID for log correlation
func WithTraceID(ctx context.Context, traceID string) context.Context {
	return context.WithValue(ctx, traceIDKey{}, traceID)
}

// FinanceLogger provides structured logging for finance record operations
type FinanceLogger struct {
	logger *slog.Logger
}

// NewFinanceLogger creates a new finance logger
func NewFinanceLogger(logger *slog.Logger) FinanceLoggerInterface {
	if logger == nil {
		logger = slog.Default()
	}
	return &FinanceLogger{
		logger: logger,
	}
}

// LogRecordCreated logs record creation
func (fl *FinanceLogger) LogRecordCreated(ctx context.Context, entity string, id uint) {
	fl.logger.InfoContext(ctx, "record created",
		slog.String("event_type", "record_created"),
		slog.String("entity", entity),
		slog.Uint64("id", uint64(id)),
		slog.String("trace_id", getTraceID(ctx)),
	)
}

// LogRecordUpdated logs a successful versioned update
func (fl *FinanceLogger) LogRecordUpdated(ctx context.Context, entity string, id uint, version int) {
	fl.logger.InfoContext(ctx, "record updated",
		slog.String("event_type", "record_updated"),
		slog.String("entity", entity),
		slog.Uint64("id", uint64(id)),
		slog.Int("version", version),
		slog.String("trace_id", getTraceID(ctx)),
	)
}

// LogRecordDeleted logs record deletion
func (fl *FinanceLogger) LogRecordDeleted(ctx context.Context, entity string, id uint) {
	fl.logger.InfoContext(ctx, "record deleted",
		slog.String("event_type", "record_deleted"),
		slog.String("entity", entity),
		slog.Uint64("id", uint64(id)),
		slog.String("trace_id", getTraceID(ctx)),
	)
}

// LogConcurrentModification logs an update rejected because of a stale version
func (fl *FinanceLogger) LogConcurrentModification(ctx context.Context, entity string, id uint, expectedVersion int) {
	fl.logger.WarnContext(ctx, "concurrent modification rejected",
		slog.String("event_type", "concurrent_modification"),
		slog.String("entity", entity),
		slog.Uint64("id", uint64(id)),
		slog.Int("expected_version", expectedVersion),
		slog.String("trace_id", getTraceID(ctx)),
	)
}

// LogBudgetTrackingComputed logs a budget tracking computation
func (fl *FinanceLogger) LogBudgetTrackingComputed(ctx context.Context, period string, rows int, duration time.Duration) {
	fl.logger.InfoContext(ctx, "budget tracking computed",
		slog.String("event_type", "budget_tracking_computed"),
		slog.String("period", period),
		slog.Int("rows", rows),
		slog.Int64("duration_ms", duration.Milliseconds()),
		slog.String("trace_id", getTraceID(ctx)),
	)
}

// LogNetWorthSaved logs a net worth snapshot upsert
func (fl *FinanceLogger) LogNetWorthSaved(ctx context.Context, period string, assets, liabilities string, source string) {
	fl.logger.InfoContext(ctx, "net worth saved",
		slog.String("event_type", "net_worth_saved"),
		slog.String("period", period),
		slog.String("assets", assets),
		slog.String("liabilities", liabilities),
		slog.String("source", source),
		slog.String("trace_id", getTraceID(ctx)),
	)
}

// LogValidationFailure logs validation failures
func (fl *FinanceLogger) LogValidationFailure(ctx context.Context, operation string, errorMsg string) {
	fl.logger.WarnContext(ctx, "validation failure",
		slog.String("event_type", "validation_failure"),
		slog.String("operation", operation),
		slog.String("error", errorMsg),
		slog.String("trace_id", getTraceID(ctx)),
	)
}

func getTraceID(ctx context.Context) string {
	if ctx == nil {
		return ""
	}
	if traceID, ok := ctx.Value(traceIDKey{}).(string); ok {
		return traceID
	}
	return ""
}
