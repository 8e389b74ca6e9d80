package render

import (
	"context"

	"github.com/goliatone/go-applyform/pkg/model"
)

// Renderer converts a form model plus the current form state into a byte
// representation (HTML, plain text, ...).
type Renderer interface {
	Name() string
	ContentType() string
	Render(ctx context.Context, form model.FormModel, options RenderOptions) ([]byte, error)
}
