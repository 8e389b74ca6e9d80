// Package html renders the application form and its success view as HTML
// using pongo2 templates.
package html

import (
	"context"
	"fmt"
	"io/fs"
	"os"

	"github.com/goliatone/go-applyform/pkg/model"
	"github.com/goliatone/go-applyform/pkg/render"
	rendertemplate "github.com/goliatone/go-applyform/pkg/render/template"
	"github.com/goliatone/go-applyform/pkg/render/template/pongo"
)

// Name is the registry key of this renderer.
const Name = "html"

const (
	formTemplate    = "templates/form"
	successTemplate = "templates/success"
)

// Option configures the renderer.
type Option func(*config)

type config struct {
	templateFS       fs.FS
	templateRenderer rendertemplate.TemplateRenderer
	action           string
}

// WithTemplatesFS supplies an alternate template bundle.
func WithTemplatesFS(files fs.FS) Option {
	return func(cfg *config) {
		cfg.templateFS = files
	}
}

// WithTemplatesDir loads templates from a directory on disk.
func WithTemplatesDir(path string) Option {
	return func(cfg *config) {
		if path == "" {
			return
		}
		cfg.templateFS = os.DirFS(path)
	}
}

// WithTemplateRenderer injects a custom template engine.
func WithTemplateRenderer(renderer rendertemplate.TemplateRenderer) Option {
	return func(cfg *config) {
		if renderer != nil {
			cfg.templateRenderer = renderer
		}
	}
}

// WithAction sets the form's action attribute. Defaults to "".
func WithAction(action string) Option {
	return func(cfg *config) {
		cfg.action = action
	}
}

// Renderer produces a full HTML document for the current form state.
type Renderer struct {
	templates rendertemplate.TemplateRenderer
	action    string
}

var _ render.Renderer = (*Renderer)(nil)

// New constructs the renderer.
func New(options ...Option) (*Renderer, error) {
	cfg := config{templateFS: TemplatesFS()}
	for _, opt := range options {
		if opt != nil {
			opt(&cfg)
		}
	}
	if cfg.templateFS == nil {
		cfg.templateFS = TemplatesFS()
	}

	engine := cfg.templateRenderer
	if engine == nil {
		e, err := pongo.New(pongo.WithFS(cfg.templateFS), pongo.WithExtension(".tpl"))
		if err != nil {
			return nil, fmt.Errorf("html renderer: configure template renderer: %w", err)
		}
		engine = e
	}
	return &Renderer{templates: engine, action: cfg.action}, nil
}

func (r *Renderer) Name() string {
	return Name
}

func (r *Renderer) ContentType() string {
	return "text/html; charset=utf-8"
}

// Render shows the success view once submitted and the editable form
// otherwise.
func (r *Renderer) Render(ctx context.Context, form model.FormModel, opts render.RenderOptions) ([]byte, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	if r.templates == nil {
		return nil, fmt.Errorf("html renderer: template renderer is nil")
	}

	name := formTemplate
	if opts.Submitted {
		name = successTemplate
	}
	out, err := r.templates.RenderTemplate(name, templateData{Form: buildView(form, opts, r.action)})
	if err != nil {
		return nil, fmt.Errorf("html renderer: render template: %w", err)
	}
	return []byte(out), nil
}
