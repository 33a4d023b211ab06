package llm

import (
	"context"
	"errors"
	"fmt"
	"time"
)

// Kind is a closed classification of request-path failures. Handlers
// select user-facing messages by Kind, never by matching error text.
type Kind int

const (
	// KindUnknown covers anything the taxonomy below does not.
	KindUnknown Kind = iota

	// KindNetwork means the upstream model service was unreachable or
	// failed transiently.
	KindNetwork

	// KindAuth means the credential for the model service is missing,
	// invalid, or rejected.
	KindAuth

	// KindMalformed means the model replied but the reply could not be
	// parsed as the promised JSON payload.
	KindMalformed

	// KindInvalidInput means the caller's request was missing or
	// malformed before any model call was made.
	KindInvalidInput
)

func (k Kind) String() string {
	switch k {
	case KindNetwork:
		return "network"
	case KindAuth:
		return "auth"
	case KindMalformed:
		return "malformed-response"
	case KindInvalidInput:
		return "invalid-input"
	default:
		return "unknown"
	}
}

// kinder is implemented by every typed error in this package.
type kinder interface {
	Kind() Kind
}

// KindOf classifies an error, walking the wrap chain. Context
// cancellation and deadline errors classify as network failures.
func KindOf(err error) Kind {
	if err == nil {
		return KindUnknown
	}
	var k kinder
	if errors.As(err, &k) {
		return k.Kind()
	}
	if errors.Is(err, context.DeadlineExceeded) || errors.Is(err, context.Canceled) {
		return KindNetwork
	}
	return KindUnknown
}

// ErrUnavailable indicates the provider is down or unreachable.
type ErrUnavailable struct {
	Err error
}

func (e *ErrUnavailable) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("model service unavailable: %v", e.Err)
	}
	return "model service unavailable"
}

func (e *ErrUnavailable) Unwrap() error { return e.Err }
func (e *ErrUnavailable) Kind() Kind    { return KindNetwork }

// ErrAuth indicates a missing or rejected credential.
type ErrAuth struct {
	Err error
}

func (e *ErrAuth) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("model service authentication failed: %v", e.Err)
	}
	return "model service authentication failed"
}

func (e *ErrAuth) Unwrap() error { return e.Err }
func (e *ErrAuth) Kind() Kind    { return KindAuth }

// ErrRateLimit indicates the provider returned a rate limit error (429).
// Classified as a network failure for user-facing purposes; the retry
// decorator distinguishes it by type to honor RetryAfter.
type ErrRateLimit struct {
	RetryAfter time.Duration
	Err        error
}

func (e *ErrRateLimit) Error() string {
	return fmt.Sprintf("rate limited (retry after %s): %v", e.RetryAfter, e.Err)
}

func (e *ErrRateLimit) Unwrap() error { return e.Err }
func (e *ErrRateLimit) Kind() Kind    { return KindNetwork }

// ErrMalformed indicates the model's reply could not be turned into the
// structured payload the prompt demanded: no JSON span was found, the
// span did not decode, or the decoded object failed schema validation.
type ErrMalformed struct {
	Raw string // the offending model output, for logging
	Err error
}

func (e *ErrMalformed) Error() string {
	return fmt.Sprintf("malformed model response: %v", e.Err)
}

func (e *ErrMalformed) Unwrap() error { return e.Err }
func (e *ErrMalformed) Kind() Kind    { return KindMalformed }

// ErrInvalidInput indicates a caller-input error caught before any
// model call.
type ErrInvalidInput struct {
	Reason string
}

func (e *ErrInvalidInput) Error() string { return e.Reason }
func (e *ErrInvalidInput) Kind() Kind    { return KindInvalidInput }
