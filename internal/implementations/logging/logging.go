package logging

import (
	"context"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"

	"openhours/internal/core/domain/logging"
)

type ZapLogger struct {
	logger *zap.Logger
	sugar  *zap.SugaredLogger
}

// NewZapLogger builds a JSON production logger, or a human readable
// development logger at debug level when development is set.
func NewZapLogger(development bool) *ZapLogger {
	var (
		logger *zap.Logger
		err    error
	)
	if development {
		logger, err = zap.NewDevelopment(zap.AddCallerSkip(1))
	} else {
		logger, err = zap.NewProduction(zap.AddCallerSkip(1))
	}
	if err != nil {
		panic("Could not create Zap logger.")
	}
	return FromZap(logger)
}

// FromZap wraps an existing zap logger. The caller skip must already
// account for this wrapper.
func FromZap(logger *zap.Logger) *ZapLogger {
	return &ZapLogger{logger: logger, sugar: logger.Sugar()}
}

func (l *ZapLogger) Sync() {
	_ = l.logger.Sync()
}

func (l *ZapLogger) Debug(ctx context.Context, msg string, entries ...logging.LogEntry) {
	l.log(zapcore.DebugLevel, msg, entries)
}

func (l *ZapLogger) Info(ctx context.Context, msg string, entries ...logging.LogEntry) {
	l.log(zapcore.InfoLevel, msg, entries)
}

func (l *ZapLogger) Warning(ctx context.Context, msg string, entries ...logging.LogEntry) {
	l.log(zapcore.WarnLevel, msg, entries)
}

func (l *ZapLogger) Error(ctx context.Context, msg string, entries ...logging.LogEntry) {
	l.log(zapcore.ErrorLevel, msg, entries)
}

func (l *ZapLogger) log(level zapcore.Level, msg string, entries []logging.LogEntry) {
	if !l.logger.Core().Enabled(level) {
		return
	}
	args := prepareArgs(entries...)
	switch level {
	case zapcore.DebugLevel:
		l.sugar.Debugw(msg, args...)
	case zapcore.InfoLevel:
		l.sugar.Infow(msg, args...)
	case zapcore.WarnLevel:
		l.sugar.Warnw(msg, args...)
	default:
		l.sugar.Errorw(msg, args...)
	}
}

func prepareArgs(entries ...logging.LogEntry) []interface{} {
	args := make([]interface{}, 0, len(entries)*2)
	for _, e := range entries {
		if err, ok := e.Value.(error); ok && err != nil {
			args = append(args, zap.NamedError(e.Key, err))
			continue
		}
		args = append(args, e.Key, e.Value)
	}
	return args
}
