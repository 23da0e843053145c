package services

import "context"

// Service is one use case. Run validates input itself and returns
// domain errors (hours.ErrSyntax, place.ErrPlaceDoesNotExist, ...)
// unwrapped or wrapped with %w so that handlers can map them.
type Service[T any, S any] interface {
	Run(ctx context.Context, input T) (S, error)
}
