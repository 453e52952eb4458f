package ai

import "errors"

var (
	// ErrUnavailable indicates the model endpoint is unreachable.
	ErrUnavailable = errors.New("ai service unavailable")

	// ErrTimeout indicates the request exceeded the configured timeout.
	ErrTimeout = errors.New("ai request timed out")

	// ErrInvalidOutput indicates the model response could not be parsed into
	// the expected structured format.
	ErrInvalidOutput = errors.New("invalid ai output format")

	// ErrRetryExhausted indicates all retry attempts have been exhausted.
	ErrRetryExhausted = errors.New("ai retry attempts exhausted")
)
