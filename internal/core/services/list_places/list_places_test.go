package listplaces

import (
	"context"
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/require"

	c "openhours/internal/core/domain/common"
	"openhours/internal/core/domain/logging"
	"openhours/internal/core/domain/place"
)

func places(n int) []place.Place {
	result := make([]place.Place, 0, n)
	for i := 1; i <= n; i++ {
		result = append(result, place.Place{ID: place.ID(i), Name: fmt.Sprintf("place-%d", i), OpeningHours: "24/7"})
	}
	return result
}

func TestListPlaces(t *testing.T) {
	cases := []struct {
		id    string
		input Input
		count int
		first place.ID
	}{
		{id: "default limit", input: Input{}, count: place.DEFAULT_READ_LIMIT, first: 1},
		{id: "explicit limit", input: Input{Limit: 5}, count: 5, first: 1},
		{id: "clamped limit", input: Input{Limit: 5000}, count: place.MAX_READ_LIMIT, first: 1},
		{id: "after id", input: Input{Limit: 10, AfterID: c.Some(place.ID(1195))}, count: 5, first: 1196},
	}

	for _, testcase := range cases {
		t.Run(testcase.id, func(t *testing.T) {
			assert := require.New(t)
			service := New(logging.NewFakeLogger(), place.NewFakeRepository(places(1200)...))

			result, err := service.Run(context.Background(), testcase.input)

			assert.NoError(err)
			assert.Len(result.Places, testcase.count)
			assert.Equal(testcase.first, result.Places[0].ID)
		})
	}
}

func TestListPlacesRepositoryError(t *testing.T) {
	assert := require.New(t)
	log := logging.NewFakeLogger()
	repository := place.NewFakeRepository()
	repository.ReadError = errors.New("db is down")

	_, err := New(log, repository).Run(context.Background(), Input{})

	assert.ErrorIs(err, repository.ReadError)
	assert.Len(log.Records(logging.ERROR), 1)
}
