package logging

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestErrorHelperPrependsErrEntry(t *testing.T) {
	assert := require.New(t)
	log := NewFakeLogger()
	err := errors.New("boom")

	Error(context.Background(), log, err, Entry("placeID", 7))

	records := log.Records(ERROR)
	assert.Len(records, 1)
	assert.Equal([]LogEntry{Entry("err", err), Entry("placeID", 7)}, records[0].Entries)
	assert.Empty(log.Records(INFO))
}
