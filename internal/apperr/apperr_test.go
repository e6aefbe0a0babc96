package apperr

import (
	"errors"
	"fmt"
	"testing"
)

func TestIs(t *testing.T) {
	err := NotFound("client")

	if !Is(err, KindNotFound) {
		t.Fatal("Is failed on direct error")
	}
	if Is(err, KindInvalidInput) {
		t.Fatal("Is matched wrong kind")
	}

	wrapped := fmt.Errorf("loading schedule: %w", err)
	if !Is(wrapped, KindNotFound) {
		t.Fatal("Is failed through wrapping")
	}

	if Is(errors.New("plain"), KindNotFound) {
		t.Fatal("Is matched a plain error")
	}
	if Is(nil, KindNotFound) {
		t.Fatal("Is matched nil")
	}
}

func TestKindOf(t *testing.T) {
	kind, ok := KindOf(TimeSlotUnavailable("taken"))
	if !ok || kind != KindTimeSlotUnavailable {
		t.Fatalf("kind = %v, ok = %v", kind, ok)
	}

	if _, ok := KindOf(errors.New("plain")); ok {
		t.Fatal("KindOf matched a plain error")
	}
}

func TestErrorString(t *testing.T) {
	tests := []struct {
		err  error
		want string
	}{
		{InvalidInput("phone", "too short"), "invalid_input: phone: too short"},
		{NotFound("service"), "not_found: service not found"},
		{InThePast(), "in_the_past: start time is in the past"},
	}

	for _, tc := range tests {
		if got := tc.err.Error(); got != tc.want {
			t.Fatalf("Error() = %q, want %q", got, tc.want)
		}
	}
}

func TestPersistence(t *testing.T) {
	if Persistence(nil) != nil {
		t.Fatal("Persistence(nil) != nil")
	}

	err := Persistence(errors.New("disk full"))
	if !Is(err, KindPersistenceFailure) {
		t.Fatalf("err = %v", err)
	}
}
