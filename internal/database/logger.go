// MovieAPI - Movie Catalog REST Service
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/movieapi

package database

import (
	"context"
	"errors"
	"fmt"
	"time"

	gormlogger "gorm.io/gorm/logger"

	"github.com/tomtom215/movieapi/internal/logging"
)

// slowQueryThreshold is the duration above which a statement is logged as slow.
const slowQueryThreshold = 200 * time.Millisecond

// gormLogger routes GORM's log output through the zerolog logger, tagging
// each line with the request and correlation IDs found in the context.
type gormLogger struct {
	level         gormlogger.LogLevel
	slowThreshold time.Duration
	traceQueries  bool
}

func newGormLogger(traceQueries bool) gormlogger.Interface {
	return &gormLogger{
		level:         gormlogger.Warn,
		slowThreshold: slowQueryThreshold,
		traceQueries:  traceQueries,
	}
}

func (l *gormLogger) LogMode(level gormlogger.LogLevel) gormlogger.Interface {
	clone := *l
	clone.level = level
	return &clone
}

func (l *gormLogger) Info(ctx context.Context, msg string, data ...interface{}) {
	if l.level >= gormlogger.Info {
		logging.Ctx(ctx).Info().Str("component", "gorm").Msg(fmt.Sprintf(msg, data...))
	}
}

func (l *gormLogger) Warn(ctx context.Context, msg string, data ...interface{}) {
	if l.level >= gormlogger.Warn {
		logging.Ctx(ctx).Warn().Str("component", "gorm").Msg(fmt.Sprintf(msg, data...))
	}
}

func (l *gormLogger) Error(ctx context.Context, msg string, data ...interface{}) {
	if l.level >= gormlogger.Error {
		logging.Ctx(ctx).Error().Str("component", "gorm").Msg(fmt.Sprintf(msg, data...))
	}
}

// Trace is called by GORM after every statement.
func (l *gormLogger) Trace(ctx context.Context, begin time.Time, fc func() (sql string, rowsAffected int64), err error) {
	if l.level <= gormlogger.Silent {
		return
	}

	elapsed := time.Since(begin)
	switch {
	case err != nil && l.level >= gormlogger.Error &&
		!errors.Is(err, gormlogger.ErrRecordNotFound) && !errors.Is(err, context.Canceled):
		sql, rows := fc()
		logging.Ctx(ctx).Error().
			Err(err).
			Str("component", "gorm").
			Dur("elapsed", elapsed).
			Str("sql", sql).
			Int64("rows", rows).
			Msg("Query failed")
	case l.slowThreshold > 0 && elapsed > l.slowThreshold && l.level >= gormlogger.Warn:
		sql, rows := fc()
		logging.Ctx(ctx).Warn().
			Str("component", "gorm").
			Dur("elapsed", elapsed).
			Dur("threshold", l.slowThreshold).
			Str("sql", sql).
			Int64("rows", rows).
			Msg("Slow query")
	case l.traceQueries:
		sql, rows := fc()
		logging.Ctx(ctx).Debug().
			Str("component", "gorm").
			Dur("elapsed", elapsed).
			Str("sql", sql).
			Int64("rows", rows).
			Msg("Query")
	}
}
