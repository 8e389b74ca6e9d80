package text

import (
	"context"
	"testing"

	"github.com/google/go-cmp/cmp"

	"github.com/goliatone/go-applyform/pkg/model"
	"github.com/goliatone/go-applyform/pkg/render"
	"github.com/goliatone/go-applyform/pkg/validation"
)

func TestRender_EditingView(t *testing.T) {
	form := model.FormModel{
		Title: "Apply",
		Fields: []model.Field{
			{Name: "name", Label: "Name", Required: true},
			{Name: "referredBy", Label: "Referred by"},
		},
	}
	out, err := New().Render(context.Background(), form, render.RenderOptions{
		Values:  map[string]string{"name": "A"},
		Errors:  validation.ErrorMap{"name": "Name must be at least 2 characters", "form": "Try again"},
		Focused: "referredBy",
	})
	if err != nil {
		t.Fatalf("render: %v", err)
	}

	want := "Apply\n\n" +
		"! Try again\n" +
		"  Name*: A\n" +
		"    Name must be at least 2 characters\n" +
		"> Referred by: \n"
	if diff := cmp.Diff(want, string(out)); diff != "" {
		t.Fatalf("output mismatch (-want +got):\n%s", diff)
	}
}

func TestRender_SuccessView(t *testing.T) {
	form := model.FormModel{Metadata: map[string]string{"successMessage": "Thanks"}}
	out, err := New().Render(context.Background(), form, render.RenderOptions{Submitted: true})
	if err != nil {
		t.Fatalf("render: %v", err)
	}
	if got := string(out); got != "Application submitted\nThanks\n" {
		t.Fatalf("unexpected output %q", got)
	}
}
