package validation_test

import (
	"errors"
	"fmt"
	"testing"

	"github.com/google/go-cmp/cmp"

	"github.com/goliatone/go-applyform/pkg/validation"
)

func TestErrorMapOrdered(t *testing.T) {
	errs := validation.ErrorMap{
		"message": "Message must be at least 10 characters",
		"name":    "Name must be at least 2 characters",
		"zeta":    "unknown field",
		"alpha":   "another unknown",
	}

	got := errs.Ordered([]string{"name", "email", "message", "name"})
	want := []validation.FieldError{
		{Field: "name", Message: "Name must be at least 2 characters"},
		{Field: "message", Message: "Message must be at least 10 characters"},
		{Field: "alpha", Message: "another unknown"},
		{Field: "zeta", Message: "unknown field"},
	}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Fatalf("ordered errors mismatch (-want +got):\n%s", diff)
	}
}

func TestErrorMapCloneIsIndependent(t *testing.T) {
	errs := validation.ErrorMap{"name": "too short"}
	clone := errs.Clone()
	delete(clone, "name")

	if !errs.Has("name") {
		t.Fatalf("deleting from clone mutated the original")
	}
	if got := (validation.ErrorMap{}).Clone(); got != nil {
		t.Fatalf("expected nil clone for empty map, got %#v", got)
	}
}

func TestAsErrorMapFollowsWrapping(t *testing.T) {
	base := validation.ErrorMap{"gender": "Please select a gender"}
	wrapped := fmt.Errorf("submit: %w", error(base))

	got, ok := validation.AsErrorMap(wrapped)
	if !ok {
		t.Fatalf("expected error map to be recovered")
	}
	if diff := cmp.Diff(base, got); diff != "" {
		t.Fatalf("recovered map mismatch (-want +got):\n%s", diff)
	}

	if _, ok := validation.AsErrorMap(errors.New("plain")); ok {
		t.Fatalf("plain error should not convert")
	}
	if _, ok := validation.AsErrorMap(nil); ok {
		t.Fatalf("nil error should not convert")
	}
}

func TestErrorMapErrorMessage(t *testing.T) {
	errs := validation.ErrorMap{"phone": "x", "email": "y"}
	want := "validation: 2 field(s) failed: email, phone"
	if got := errs.Error(); got != want {
		t.Fatalf("Error() = %q, want %q", got, want)
	}
}
