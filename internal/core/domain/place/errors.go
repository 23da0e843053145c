package place

import "errors"

var (
	ErrPlaceDoesNotExist         = errors.New("place does not exist")
	ErrPlaceAlreadyExists        = errors.New("place with this name already exists")
	ErrInvalidOpeningHours       = errors.New("invalid opening hours")
	ErrSubdivisionWithoutCountry = errors.New("subdivision requires a country")
)
