package validateopeninghours

import (
	"context"
	"errors"
	"strings"
	"testing"

	"github.com/stretchr/testify/suite"

	c "openhours/internal/core/domain/common"
	"openhours/internal/core/domain/hours"
	"openhours/internal/core/domain/logging"
	"openhours/internal/core/domain/place"
	"openhours/internal/core/services"
)

type testSuite struct {
	suite.Suite
	logger  *logging.FakeLogger
	parser  *hours.FakeParser
	service services.Service[Input, Result]
}

func (suite *testSuite) SetupTest() {
	suite.logger = logging.NewFakeLogger()
	suite.parser = hours.NewFakeParser(hours.Rule{
		Selector: hours.TimeSelector{Always: true},
		Modifier: hours.DefaultModifier(),
	})
	engine := hours.NewEngine(suite.parser, hours.NewFakeSolarResolver(), hours.NewFakeHolidayProvider(), hours.EngineOptions{})
	suite.service = New(suite.logger, engine)
}

func TestValidateOpeningHoursService(t *testing.T) {
	suite.Run(t, new(testSuite))
}

func (s *testSuite) TestValid() {
	assert := s.Require()
	result, err := s.service.Run(context.Background(), Input{OpeningHours: "24/7"})

	assert.NoError(err)
	assert.True(result.Valid)
	assert.Len(result.Rules, 1)
	assert.False(result.SyntaxError.IsPresent)
}

func (s *testSuite) TestSyntaxError() {
	assert := s.Require()
	syntaxErr := &hours.SyntaxError{Input: "Mo-", Pos: 3, Expected: []string{"weekday"}}
	s.parser.Error = syntaxErr

	result, err := s.service.Run(context.Background(), Input{OpeningHours: "Mo-"})

	assert.NoError(err)
	assert.False(result.Valid)
	assert.Equal(c.Some(syntaxErr), result.SyntaxError)
	assert.Empty(result.Rules)
}

func (s *testSuite) TestUnexpectedError() {
	assert := s.Require()
	s.parser.Error = errors.New("boom")

	_, err := s.service.Run(context.Background(), Input{OpeningHours: "24/7"})

	assert.ErrorIs(err, s.parser.Error)
	assert.Len(s.logger.Records(logging.ERROR), 1)
}

func (s *testSuite) TestTooLong() {
	_, err := s.service.Run(context.Background(), Input{OpeningHours: strings.Repeat("x", place.MAX_OPENING_HOURS_LENGTH+1)})

	s.Require().Error(err)
	s.Require().Empty(s.parser.Parsed)
}
