package ratelimiter

import (
	"context"
	"errors"
	"fmt"
)

var ErrRateLimitExceeded = errors.New("rate limit exceeded")

type Interval struct {
	value int
}

var (
	Minute = Interval{}
	Hour   = Interval{value: 1}
)

func (i Interval) String() string {
	if i == Hour {
		return "hour"
	}
	return "minute"
}

// Limit allows Value requests per Interval and client.
type Limit struct {
	Value    uint16
	Interval Interval
}

func PerMinute(value uint16) Limit {
	return Limit{Value: value, Interval: Minute}
}

func PerHour(value uint16) Limit {
	return Limit{Value: value, Interval: Hour}
}

func (l Limit) String() string {
	return fmt.Sprintf("%d/%s", l.Value, l.Interval)
}

type Result struct {
	IsAllowed bool
}

func Allowed() Result {
	return Result{IsAllowed: true}
}

func NotAllowed() Result {
	return Result{IsAllowed: false}
}

// RateLimiter counts one request for key against limit. Keys are
// namespaced by operation, e.g. "evaluate::<client address>".
type RateLimiter interface {
	CheckLimit(ctx context.Context, key string, limit Limit) Result
}
