package createplace

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/suite"

	c "openhours/internal/core/domain/common"
	"openhours/internal/core/domain/hours"
	"openhours/internal/core/domain/logging"
	"openhours/internal/core/domain/place"
	"openhours/internal/core/services"
)

var Now = time.Date(2022, time.June, 3, 12, 0, 0, 0, time.UTC)

type testSuite struct {
	suite.Suite
	logger     *logging.FakeLogger
	parser     *hours.FakeParser
	repository *place.FakeRepository
	service    services.Service[Input, Result]
}

func (suite *testSuite) SetupTest() {
	suite.logger = logging.NewFakeLogger()
	suite.parser = hours.NewFakeParser()
	suite.repository = place.NewFakeRepository()
	engine := hours.NewEngine(suite.parser, hours.NewFakeSolarResolver(), hours.NewFakeHolidayProvider(), hours.EngineOptions{})
	suite.service = New(suite.logger, engine, suite.repository, func() time.Time { return Now })
}

func TestCreatePlaceService(t *testing.T) {
	suite.Run(t, new(testSuite))
}

func (s *testSuite) TestSuccess() {
	assert := s.Require()
	location := c.Some(hours.Location{Latitude: 40.44, Longitude: -80.0, TimeZone: time.UTC})

	result, err := s.service.Run(context.Background(), Input{
		Name:         " Bakery ",
		OpeningHours: "Mo-Fr 08:00-18:00 ",
		Location:     location,
		Region:       hours.Region{Country: "us", Subdivision: "pa"},
	})

	assert.NoError(err)
	assert.Equal(place.Place{
		ID:           place.ID(1),
		Name:         "Bakery",
		OpeningHours: "Mo-Fr 08:00-18:00",
		Location:     location,
		Region:       hours.Region{Country: "US", Subdivision: "PA"},
		CreatedAt:    Now,
	}, result.Place)
	assert.Equal([]string{"Mo-Fr 08:00-18:00"}, s.parser.Parsed)
	assert.Len(s.logger.Records(logging.INFO), 1)
}

func (s *testSuite) TestInvalidPlace() {
	assert := s.Require()
	_, err := s.service.Run(context.Background(), Input{OpeningHours: "24/7"})

	assert.Error(err)
	assert.Empty(s.repository.Places)
	assert.Empty(s.parser.Parsed)
}

func (s *testSuite) TestInvalidOpeningHours() {
	assert := s.Require()
	s.parser.Error = &hours.SyntaxError{Input: "Mo-", Pos: 3}

	_, err := s.service.Run(context.Background(), Input{Name: "Bakery", OpeningHours: "Mo-"})

	assert.ErrorIs(err, place.ErrInvalidOpeningHours)
	assert.ErrorIs(err, hours.ErrSyntax)
	assert.Empty(s.repository.Places)
	assert.Empty(s.logger.Records(logging.ERROR))
}

func (s *testSuite) TestDuplicateName() {
	assert := s.Require()
	input := Input{Name: "Bakery", OpeningHours: "24/7"}
	_, err := s.service.Run(context.Background(), input)
	assert.NoError(err)

	_, err = s.service.Run(context.Background(), input)

	assert.ErrorIs(err, place.ErrPlaceAlreadyExists)
	assert.Empty(s.logger.Records(logging.ERROR))
}

func (s *testSuite) TestRepositoryError() {
	assert := s.Require()
	s.repository.CreateError = errors.New("db is down")

	_, err := s.service.Run(context.Background(), Input{Name: "Bakery", OpeningHours: "24/7"})

	assert.ErrorIs(err, s.repository.CreateError)
	assert.Len(s.logger.Records(logging.ERROR), 1)
}
