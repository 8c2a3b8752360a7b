package common

import (
	"errors"
	"strings"
	"testing"
)

func TestAppError(t *testing.T) {
	t.Parallel()

	e := NewAppError("CONFIG_ERROR", "PEDIDOS_DIR is required", ErrInvalidInput)
	if got := e.Error(); got != "CONFIG_ERROR: PEDIDOS_DIR is required: invalid input" {
		t.Fatalf("message: %q", got)
	}
	if !errors.Is(e, ErrInvalidInput) {
		t.Fatal("cause must survive unwrapping")
	}

	bare := NewAppError("X", "no cause", nil)
	if got := bare.Error(); got != "X: no cause" {
		t.Fatalf("causeless message: %q", got)
	}
}

func TestWrapError(t *testing.T) {
	t.Parallel()

	if WrapError(nil, "noop") != nil {
		t.Fatal("nil stays nil")
	}

	cause := errors.New("permission denied")
	wrapped := WrapError(cause, "read intake dir")
	if !errors.Is(wrapped, cause) {
		t.Fatal("chain must preserve the cause")
	}
	if !strings.HasPrefix(wrapped.Error(), "read intake dir: ") {
		t.Fatalf("message: %q", wrapped.Error())
	}
}
