package render

import (
	"github.com/goliatone/go-applyform/pkg/form"
	"github.com/goliatone/go-applyform/pkg/schema"
	"github.com/goliatone/go-applyform/pkg/validation"
)

// RenderOptions carry the controller state a view displays. Renderers never
// read the controller directly.
type RenderOptions struct {
	// Values holds the textual value of every field keyed by field name.
	Values map[string]string
	// Errors holds the inline message of every failing field.
	Errors validation.ErrorMap
	// Focused names the field that currently has focus, if any.
	Focused string
	// Submitted switches the view from the form to the success view.
	Submitted bool
	// SessionID identifies the form session, useful for hidden inputs.
	SessionID string
}

// OptionsFromSnapshot converts a controller snapshot into render options.
func OptionsFromSnapshot(s *schema.Schema, snap form.Snapshot) RenderOptions {
	if s == nil {
		s = schema.New()
	}
	return RenderOptions{
		Values:    s.Values(snap.Record),
		Errors:    snap.Errors.Clone(),
		Focused:   string(snap.Focused),
		Submitted: snap.Submitted(),
		SessionID: snap.SessionID,
	}
}
