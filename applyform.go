// Package applyform is the convenience entry point: it builds an
// orchestrator with the bundled UI schema and renders controller state.
package applyform

import (
	"context"
	"io/fs"

	"github.com/goliatone/go-applyform/pkg/form"
	"github.com/goliatone/go-applyform/pkg/orchestrator"
	"github.com/goliatone/go-applyform/pkg/render"
	"github.com/goliatone/go-applyform/pkg/renderers/html"
)

// RenderOptions aliases render.RenderOptions for callers rendering directly.
type RenderOptions = render.RenderOptions

// NewOrchestrator exposes the orchestrator constructor from the module root.
func NewOrchestrator(options ...orchestrator.Option) (*orchestrator.Orchestrator, error) {
	return orchestrator.New(options...)
}

// RenderHTML renders a controller snapshot with the default HTML renderer.
func RenderHTML(ctx context.Context, snap form.Snapshot, options ...orchestrator.Option) ([]byte, error) {
	o, err := orchestrator.New(options...)
	if err != nil {
		return nil, err
	}
	return o.Render(ctx, orchestrator.Request{Renderer: html.Name, Snapshot: snap})
}

// EmbeddedTemplates exposes the HTML renderer templates so callers can copy
// or extend them.
func EmbeddedTemplates() fs.FS {
	return html.TemplatesFS()
}
