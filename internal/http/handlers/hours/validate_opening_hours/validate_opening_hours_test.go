package validateopeninghours

import (
	"context"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"

	c "openhours/internal/core/domain/common"
	"openhours/internal/core/domain/hours"
	service "openhours/internal/core/services/validate_opening_hours"
)

type stubService struct {
	result service.Result
	err    error
	input  *service.Input
}

func (s *stubService) Run(ctx context.Context, input service.Input) (result service.Result, err error) {
	s.input = &input
	if s.err != nil {
		return result, s.err
	}
	return s.result, nil
}

func TestValidateHandlerRendersRules(t *testing.T) {
	stub := &stubService{result: service.Result{
		Valid: true,
		Rules: []hours.Rule{
			{Selector: hours.TimeSelector{Always: true}, Modifier: hours.DefaultModifier()},
			{Modifier: hours.RuleModifier{Status: hours.Closed, Comment: c.Some(hours.Comment{Text: "later"})}},
		},
	}}
	req := httptest.NewRequest(http.MethodPost, "/hours/validate", strings.NewReader(`{"opening_hours": "24/7; closed \"later\""}`))
	rr := httptest.NewRecorder()

	New(stub).ServeHTTP(rr, req)

	assert.Equal(t, http.StatusOK, rr.Code)
	assert.Equal(t, &service.Input{OpeningHours: `24/7; closed "later"`}, stub.input)
	assert.JSONEq(t, `{"valid": true, "rules": ["24/7 open", "closed \"later\""]}`, rr.Body.String())
}

func TestValidateHandlerRendersSyntaxError(t *testing.T) {
	syntaxErr := &hours.SyntaxError{Input: "Mo-", Pos: 3, Expected: []string{"weekday"}}
	stub := &stubService{result: service.Result{SyntaxError: c.Some(syntaxErr)}}
	req := httptest.NewRequest(http.MethodPost, "/hours/validate", strings.NewReader(`{"opening_hours": "Mo-"}`))
	rr := httptest.NewRecorder()

	New(stub).ServeHTTP(rr, req)

	assert.Equal(t, http.StatusOK, rr.Code)
	assert.JSONEq(
		t,
		`{"valid": false, "rules": [], "error": "`+syntaxErr.Error()+`", "position": 3, "expected": ["weekday"]}`,
		rr.Body.String(),
	)
}

func TestValidateHandlerBadRequests(t *testing.T) {
	for _, body := range []string{`{`, `{"opening_hours": ""}`, `{"opening_hours": 1}`} {
		t.Run(body, func(t *testing.T) {
			stub := &stubService{}
			req := httptest.NewRequest(http.MethodPost, "/hours/validate", strings.NewReader(body))
			rr := httptest.NewRecorder()

			New(stub).ServeHTTP(rr, req)

			assert.Equal(t, http.StatusBadRequest, rr.Code)
			assert.Nil(t, stub.input)
		})
	}
}

func TestValidateHandlerInternalError(t *testing.T) {
	req := httptest.NewRequest(http.MethodPost, "/hours/validate", strings.NewReader(`{"opening_hours": "24/7"}`))
	rr := httptest.NewRecorder()

	New(&stubService{err: context.Canceled}).ServeHTTP(rr, req)

	assert.Equal(t, http.StatusInternalServerError, rr.Code)
}
