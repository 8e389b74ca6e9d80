// Package text renders the form state as plain text, one field per line,
// for logs and non-interactive terminals.
package text

import (
	"context"
	"fmt"
	"strings"

	"github.com/goliatone/go-applyform/pkg/model"
	"github.com/goliatone/go-applyform/pkg/render"
	"github.com/goliatone/go-applyform/pkg/uischema"
)

// Name is the registry key of this renderer.
const Name = "text"

// Renderer implements render.Renderer.
type Renderer struct{}

var _ render.Renderer = Renderer{}

func New() Renderer { return Renderer{} }

func (Renderer) Name() string        { return Name }
func (Renderer) ContentType() string { return "text/plain; charset=utf-8" }

func (Renderer) Render(ctx context.Context, form model.FormModel, opts render.RenderOptions) ([]byte, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	var b strings.Builder
	if opts.Submitted {
		title := form.Metadata[uischema.MetadataSuccessTitle]
		if title == "" {
			title = "Application submitted"
		}
		b.WriteString(title + "\n")
		if msg := form.Metadata[uischema.MetadataSuccessMessage]; msg != "" {
			b.WriteString(msg + "\n")
		}
		return []byte(b.String()), nil
	}

	if form.Title != "" {
		b.WriteString(uischema.PlainText(form.Title) + "\n\n")
	}
	mapping := render.MapErrors(form, opts.Errors)
	for _, msg := range mapping.Form {
		fmt.Fprintf(&b, "! %s\n", msg)
	}
	for _, field := range form.Fields {
		marker := " "
		if opts.Focused == field.Name {
			marker = ">"
		}
		required := ""
		if field.Required {
			required = "*"
		}
		fmt.Fprintf(&b, "%s %s%s: %s\n", marker, field.Label, required, opts.Values[field.Name])
		if msg := mapping.Field(field.Name); msg != "" {
			fmt.Fprintf(&b, "    %s\n", msg)
		}
	}
	return []byte(b.String()), nil
}
