package getplacestatus

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/stretchr/testify/assert"

	c "openhours/internal/core/domain/common"
	"openhours/internal/core/domain/hours"
	"openhours/internal/core/domain/place"
	service "openhours/internal/core/services/get_place_status"
)

var at = time.Date(2022, time.June, 3, 10, 0, 0, 0, time.UTC)

type stubService struct {
	err   error
	input *service.Input
}

func (s *stubService) Run(ctx context.Context, input service.Input) (result service.Result, err error) {
	s.input = &input
	if s.err != nil {
		return result, s.err
	}
	result.Place = place.Place{ID: input.PlaceID, Name: "Bakery", OpeningHours: "24/7", CreatedAt: at}
	result.Status = hours.DefaultModifier()
	result.At = input.At.ValueOr(at)
	return result, nil
}

func serve(stub *stubService, url string) *httptest.ResponseRecorder {
	router := chi.NewRouter()
	router.Get("/places/{placeID}/status", New(stub).ServeHTTP)
	rr := httptest.NewRecorder()
	router.ServeHTTP(rr, httptest.NewRequest(http.MethodGet, url, nil))
	return rr
}

func TestGetPlaceStatusHandlerInput(t *testing.T) {
	cases := []struct {
		url            string
		expectedStatus int
		expectedInput  *service.Input
	}{
		{url: "/places/1/status", expectedStatus: http.StatusOK, expectedInput: &service.Input{PlaceID: 1}},
		{
			url:            "/places/1/status?at=2022-06-03T10:00:00Z",
			expectedStatus: http.StatusOK,
			expectedInput:  &service.Input{PlaceID: 1, At: c.Some(at)},
		},
		{url: "/places/abc/status", expectedStatus: http.StatusBadRequest},
		{url: "/places/1/status?at=yesterday", expectedStatus: http.StatusBadRequest},
	}

	for _, testcase := range cases {
		t.Run(testcase.url, func(t *testing.T) {
			stub := &stubService{}
			rr := serve(stub, testcase.url)

			assert.Equal(t, testcase.expectedStatus, rr.Code)
			assert.Equal(t, testcase.expectedInput, stub.input)
		})
	}
}

func TestGetPlaceStatusHandlerResponse(t *testing.T) {
	rr := serve(&stubService{}, "/places/7/status")

	assert.Equal(t, http.StatusOK, rr.Code)
	assert.JSONEq(t, `{
		"place": {"id": 7, "name": "Bakery", "opening_hours": "24/7", "location": null, "created_at": "2022-06-03T10:00:00Z"},
		"status": {"status": "open", "comment": null, "at": "2022-06-03T10:00:00Z"}
	}`, rr.Body.String())
}

func TestGetPlaceStatusHandlerErrors(t *testing.T) {
	cases := []struct {
		name           string
		err            error
		expectedStatus int
	}{
		{"unknown place", place.ErrPlaceDoesNotExist, http.StatusNotFound},
		{"no solar event", hours.ErrNoSolarEvent, http.StatusUnprocessableEntity},
		{"unexpected", place.ErrFake, http.StatusInternalServerError},
	}

	for _, testcase := range cases {
		t.Run(testcase.name, func(t *testing.T) {
			rr := serve(&stubService{err: testcase.err}, "/places/1/status")
			assert.Equal(t, testcase.expectedStatus, rr.Code)
		})
	}
}
