package llm

import (
	"context"
	"errors"
	"fmt"
	"testing"
)

func TestKindOf(t *testing.T) {
	tests := []struct {
		name string
		err  error
		want Kind
	}{
		{"unavailable", &ErrUnavailable{Err: errors.New("boom")}, KindNetwork},
		{"auth", &ErrAuth{Err: errors.New("401")}, KindAuth},
		{"rate limit folds into network", &ErrRateLimit{Err: errors.New("429")}, KindNetwork},
		{"malformed", &ErrMalformed{Err: errors.New("no json")}, KindMalformed},
		{"invalid input", &ErrInvalidInput{Reason: "message is required"}, KindInvalidInput},
		{"wrapped auth", fmt.Errorf("chat: %w", &ErrAuth{}), KindAuth},
		{"deadline", context.DeadlineExceeded, KindNetwork},
		{"canceled", context.Canceled, KindNetwork},
		{"plain error", errors.New("whatever"), KindUnknown},
		{"nil", nil, KindUnknown},
	}
	for _, tt := range tests {
		if got := KindOf(tt.err); got != tt.want {
			t.Errorf("%s: KindOf() = %v, want %v", tt.name, got, tt.want)
		}
	}
}

func TestKindString(t *testing.T) {
	tests := []struct {
		kind Kind
		want string
	}{
		{KindNetwork, "network"},
		{KindAuth, "auth"},
		{KindMalformed, "malformed-response"},
		{KindInvalidInput, "invalid-input"},
		{KindUnknown, "unknown"},
	}
	for _, tt := range tests {
		if got := tt.kind.String(); got != tt.want {
			t.Errorf("Kind(%d).String() = %q, want %q", tt.kind, got, tt.want)
		}
	}
}

func TestErrorsUnwrap(t *testing.T) {
	inner := errors.New("inner")
	for _, err := range []error{
		&ErrUnavailable{Err: inner},
		&ErrAuth{Err: inner},
		&ErrRateLimit{Err: inner},
		&ErrMalformed{Err: inner},
	} {
		if !errors.Is(err, inner) {
			t.Errorf("%T does not unwrap to inner error", err)
		}
	}
}
