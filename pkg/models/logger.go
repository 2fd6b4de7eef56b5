package models

import (
	"context"
	"errors"
	"time"

	"github.com/rs/zerolog"
	gorm_logger "gorm.io/gorm/logger"
)

const (
	contextRequestID ERContext = "er-request-id"
	contextReport    ERContext = "er-report"
)

// WithRequest returns a context that adds the request ID and the report name
// to the log entries of all queries run with it.
func WithRequest(ctx context.Context, requestID, report string) context.Context {
	ctx = context.WithValue(ctx, contextRequestID, requestID)
	return context.WithValue(ctx, contextReport, report)
}

type logger struct {
	Logger        zerolog.Logger
	SlowThreshold time.Duration // Queries taking longer are logged as warnings
}

func (l *logger) LogMode(gorm_logger.LogLevel) gorm_logger.Interface {
	return l
}

func (l *logger) Info(_ context.Context, s string, args ...any) {
	l.Logger.Info().Msgf(s, args...)
}

func (l *logger) Warn(_ context.Context, s string, args ...any) {
	l.Logger.Warn().Msgf(s, args...)
}

func (l *logger) Error(_ context.Context, s string, args ...any) {
	l.Logger.Error().Msgf(s, args...)
}

func (l *logger) Trace(ctx context.Context, begin time.Time, fc func() (string, int64), err error) {
	elapsed := time.Since(begin)
	sql, rows := fc()

	event, msg := l.Logger.Debug(), "[GORM] query"
	switch {
	case err != nil && !errors.Is(err, ErrResourceNotFound):
		event, msg = l.Logger.Error().Err(err), "[GORM] query error"
	case l.SlowThreshold > 0 && elapsed > l.SlowThreshold:
		event, msg = l.Logger.Warn(), "[GORM] slow query"
	}

	if id, ok := ctx.Value(contextRequestID).(string); ok && id != "" {
		event = event.Str("request-id", id)
	}

	if report, ok := ctx.Value(contextReport).(string); ok {
		event = event.Str("report", report)
	}

	event.Str("sql", sql).Int64("rows", rows).Dur("duration", elapsed).Msg(msg)
}
