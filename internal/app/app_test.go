package app

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/r3labs/sse/v2"
	"github.com/stretchr/testify/suite"

	"openhours/internal/app/deps"
	"openhours/internal/app/services"
	"openhours/internal/config"
	"openhours/internal/core/domain/hours"
	"openhours/internal/core/domain/logging"
	"openhours/internal/core/domain/place"
	drl "openhours/internal/core/domain/rate_limiter"
	openinghoursparser "openhours/internal/implementations/opening_hours_parser"
	sserelay "openhours/internal/implementations/sse_relay"
)

type testSuite struct {
	suite.Suite
	deps        *deps.Deps
	rateLimiter *drl.FakeRateLimiter
	router      http.Handler
}

func (s *testSuite) SetupTest() {
	s.rateLimiter = drl.NewFakeRateLimiter(true)
	log := logging.NewFakeLogger()
	sseServer := sse.New()

	s.deps = &deps.Deps{
		Config:    &config.Config{AllowedOrigins: []string{"*"}, EvaluateRateLimit: 10},
		Logger:    log,
		SseServer: sseServer,
		Now:       func() time.Time { return time.Date(2022, time.June, 3, 10, 30, 0, 0, time.UTC) },
		Engine: hours.NewEngine(
			openinghoursparser.New(),
			hours.NewFakeSolarResolver(),
			hours.NewFakeHolidayProvider(),
			hours.EngineOptions{DefaultRegion: hours.Region{Country: "US"}},
		),
		PlaceRepository: place.NewFakeRepository(),
		StatusStore:     place.NewFakeStatusStore(),
		RateLimiter:     s.rateLimiter,
		StatusPublisher: place.NewFakeStatusNotifier(),
		StatusRelay:     sserelay.New(log, sseServer, sserelay.STREAM),
	}
	s.router = NewRouter(s.deps, services.InitServices(s.deps))
}

func (s *testSuite) TearDownTest() {
	s.deps.SseServer.Close()
}

func TestApp(t *testing.T) {
	suite.Run(t, new(testSuite))
}

func (s *testSuite) do(method, url, body string) *httptest.ResponseRecorder {
	rr := httptest.NewRecorder()
	s.router.ServeHTTP(rr, httptest.NewRequest(method, url, strings.NewReader(body)))
	return rr
}

func (s *testSuite) TestCreatedPlaceHasStatus() {
	assert := s.Require()

	rr := s.do(http.MethodPost, "/places", `{"name": "Bakery", "opening_hours": "Mo-Fr 10:00-20:00"}`)
	assert.Equal(http.StatusCreated, rr.Code, rr.Body.String())

	rr = s.do(http.MethodGet, "/places/1/status", "")
	assert.Equal(http.StatusOK, rr.Code, rr.Body.String())
	assert.Contains(rr.Body.String(), `"status":"open"`)

	rr = s.do(http.MethodGet, "/places/1/status?at=2022-06-04T10:30:00Z", "")
	assert.Equal(http.StatusOK, rr.Code, rr.Body.String())
	assert.Contains(rr.Body.String(), `"status":"closed"`)

	rr = s.do(http.MethodGet, "/places", "")
	assert.Equal(http.StatusOK, rr.Code)
	assert.Contains(rr.Body.String(), `"name":"Bakery"`)
}

func (s *testSuite) TestCreatePlaceRejectsInvalidOpeningHours() {
	rr := s.do(http.MethodPost, "/places", `{"name": "Bakery", "opening_hours": "Mo-Fr 25:00"}`)
	s.Require().Equal(http.StatusUnprocessableEntity, rr.Code)
}

func (s *testSuite) TestUnknownPlace() {
	assert := s.Require()
	assert.Equal(http.StatusNotFound, s.do(http.MethodGet, "/places/42/status", "").Code)
	assert.Equal(http.StatusNotFound, s.do(http.MethodGet, "/places/abc/status", "").Code)
}

func (s *testSuite) TestEvaluate() {
	assert := s.Require()

	rr := s.do(http.MethodPost, "/hours/evaluate", `{"opening_hours": "Mo-Fr 10:00-20:00", "at": "2022-06-03T21:00:00Z"}`)

	assert.Equal(http.StatusOK, rr.Code, rr.Body.String())
	assert.Contains(rr.Body.String(), `"status":"closed"`)
}

func (s *testSuite) TestEvaluateRateLimit() {
	s.rateLimiter.IsAllowed = false

	rr := s.do(http.MethodPost, "/hours/evaluate", `{"opening_hours": "24/7"}`)

	s.Require().Equal(http.StatusTooManyRequests, rr.Code)
}

func (s *testSuite) TestValidate() {
	assert := s.Require()

	rr := s.do(http.MethodPost, "/hours/validate", `{"opening_hours": "Mo-Fr 10:00-20:00; PH off"}`)
	assert.Equal(http.StatusOK, rr.Code)
	assert.Contains(rr.Body.String(), `"valid":true`)

	rr = s.do(http.MethodPost, "/hours/validate", `{"opening_hours": "Mo-"}`)
	assert.Equal(http.StatusOK, rr.Code)
	assert.Contains(rr.Body.String(), `"valid":false`)
	assert.Contains(rr.Body.String(), `"position":3`)
}

func (s *testSuite) TestEventsRequirePlacesStream() {
	rr := s.do(http.MethodGet, "/places/events?stream=other", "")
	s.Require().Equal(http.StatusBadRequest, rr.Code)
}
