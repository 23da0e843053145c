package logging

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"go.uber.org/zap/zaptest/observer"

	"openhours/internal/core/domain/logging"
)

func TestZapLoggerWritesStructuredEntries(t *testing.T) {
	assert := require.New(t)
	core, logs := observer.New(zapcore.InfoLevel)
	log := FromZap(zap.New(core))
	ctx := context.Background()

	log.Debug(ctx, "Hidden.")
	log.Info(ctx, "Place status changed.", logging.Entry("placeID", int64(7)), logging.Entry("status", "open"))
	log.Error(ctx, "Could not evaluate.", logging.Entry("err", errors.New("boom")))

	entries := logs.AllUntimed()
	assert.Len(entries, 2)

	assert.Equal(zapcore.InfoLevel, entries[0].Level)
	assert.Equal("Place status changed.", entries[0].Message)
	assert.Equal(map[string]interface{}{"placeID": int64(7), "status": "open"}, entries[0].ContextMap())

	assert.Equal(zapcore.ErrorLevel, entries[1].Level)
	assert.Equal("boom", entries[1].ContextMap()["err"])
}

func TestZapLoggerWarningLevel(t *testing.T) {
	core, logs := observer.New(zapcore.DebugLevel)
	log := FromZap(zap.New(core))

	log.Warning(context.Background(), "Rate limit exceeded.", logging.Entry("key", "evaluate::127.0.0.1"))

	require.Equal(t, 1, logs.FilterLevelExact(zapcore.WarnLevel).Len())
}
