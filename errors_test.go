package stagecraft

import (
	"errors"
	"testing"
)

func TestErrorUnwrapsCause(t *testing.T) {
	cause := errors.New("disk full")
	err := WrapError(ErrWriteFailed, "flush", cause)

	if !errors.Is(err, cause) {
		t.Errorf("expected errors.Is to find the wrapped cause")
	}
	if err.Kind() != ErrWriteFailed {
		t.Errorf("Kind() = %v, want ErrWriteFailed", err.Kind())
	}
}

func TestErrorMessageWithoutCause(t *testing.T) {
	err := NewError(ErrInvalidState, "end with no matching begin")
	want := "invalid_state: end with no matching begin"
	if err.Error() != want {
		t.Errorf("Error() = %q, want %q", err.Error(), want)
	}
}
