package response

import (
	"errors"
	"net/http"

	validation "github.com/go-ozzo/ozzo-validation"
)

// RenderValidationError renders ozzo field errors as an object keyed by
// field name and returns false for any other error.
func RenderValidationError(rw http.ResponseWriter, err error) bool {
	var errs validation.Errors
	if errors.As(err, &errs) {
		Render(rw, errs, http.StatusBadRequest)
		return true
	}
	return false
}
