package logger

import (
	"context"
	"errors"
	"time"

	"github.com/rs/zerolog"
	"gorm.io/gorm"
	gormlogger "gorm.io/gorm/logger"
)

// Gorm adapts zerolog to gorm's logger. Statements slower than slow are
// logged at warn; everything else at debug.
type Gorm struct {
	log  zerolog.Logger
	slow time.Duration
}

func NewGorm(log zerolog.Logger, slow time.Duration) *Gorm {
	return &Gorm{log: log.With().Str("component", "gorm").Logger(), slow: slow}
}

var _ gormlogger.Interface = (*Gorm)(nil)

func (g *Gorm) LogMode(gormlogger.LogLevel) gormlogger.Interface { return g }

func (g *Gorm) Info(_ context.Context, msg string, args ...any) {
	g.log.Info().Msgf(msg, args...)
}

func (g *Gorm) Warn(_ context.Context, msg string, args ...any) {
	g.log.Warn().Msgf(msg, args...)
}

func (g *Gorm) Error(_ context.Context, msg string, args ...any) {
	g.log.Error().Msgf(msg, args...)
}

func (g *Gorm) Trace(_ context.Context, begin time.Time, fc func() (string, int64), err error) {
	took := time.Since(begin)
	switch {
	case err != nil && !errors.Is(err, gorm.ErrRecordNotFound):
		sql, rows := fc()
		g.log.Error().Err(err).Dur("took", took).Int64("rows", rows).Str("sql", sql).Msg("query failed")
	case g.slow > 0 && took > g.slow:
		sql, rows := fc()
		g.log.Warn().Dur("took", took).Int64("rows", rows).Str("sql", sql).Msg("slow query")
	case g.log.GetLevel() <= zerolog.DebugLevel:
		sql, rows := fc()
		g.log.Debug().Dur("took", took).Int64("rows", rows).Str("sql", sql).Msg("query")
	}
}
