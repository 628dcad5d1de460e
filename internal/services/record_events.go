package services

import (
	"context"
	"errors"
)

// recordEvents emits the log lines and metrics shared by every record service
type recordEvents struct {
	entity  string
	logger  FinanceLoggerInterface
	metrics MetricsRecorderInterface
}

func newRecordEvents(entity string, logger FinanceLoggerInterface, metrics MetricsRecorderInterface) recordEvents {
	return recordEvents{entity: entity, logger: logger, metrics: metrics}
}

func (e recordEvents) tags() map[string]string {
	return map[string]string{"entity": e.entity}
}

func (e recordEvents) created(ctx context.Context, id uint) {
	e.logger.LogRecordCreated(ctx, e.entity, id)
	e.metrics.IncrementCounter(MetricRecordsCreated, e.tags())
}

func (e recordEvents) updated(ctx context.Context, id uint, version int) {
	e.logger.LogRecordUpdated(ctx, e.entity, id, version)
	e.metrics.IncrementCounter(MetricRecordsUpdated, e.tags())
}

func (e recordEvents) deleted(ctx context.Context, id uint) {
	e.logger.LogRecordDeleted(ctx, e.entity, id)
	e.metrics.IncrementCounter(MetricRecordsDeleted, e.tags())
}

// invalid logs a rejected input and returns it as a ValidationError
func (e recordEvents) invalid(ctx context.Context, operation string, err error) error {
	e.logger.LogValidationFailure(ctx, operation, err.Error())
	return asValidationError(err)
}

// updateFailed translates a repository update error, recording stale version conflicts
func (e recordEvents) updateFailed(ctx context.Context, id uint, expectedVersion int, err error) error {
	err = translateRepositoryError(e.entity, id, err)
	if errors.Is(err, ErrConcurrentModification) {
		e.logger.LogConcurrentModification(ctx, e.entity, id, expectedVersion)
		e.metrics.IncrementCounter(MetricConcurrentModification, e.tags())
	}
	return err
}

func resolveVersion(stored int, expected *int) int {
	if expected != nil {
		return *expected
	}
	return stored
}
