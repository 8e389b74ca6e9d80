package orchestrator

import (
	"context"
	"errors"
	"fmt"

	"github.com/goliatone/go-applyform/internal/logger"
	"github.com/goliatone/go-applyform/pkg/form"
	"github.com/goliatone/go-applyform/pkg/model"
	"github.com/goliatone/go-applyform/pkg/render"
	"github.com/goliatone/go-applyform/pkg/renderers/html"
	"github.com/goliatone/go-applyform/pkg/renderers/text"
	"github.com/goliatone/go-applyform/pkg/schema"
	"github.com/goliatone/go-applyform/pkg/uischema"
	"github.com/goliatone/go-applyform/pkg/widgets"
)

const defaultRendererName = html.Name

// Option customises the orchestrator configuration.
type Option func(*Orchestrator)

// WithUIDocument replaces the bundled UI schema document.
func WithUIDocument(doc uischema.Document) Option {
	return func(o *Orchestrator) {
		o.document = &doc
	}
}

// WithUISchemaFile loads the UI schema document from disk. An empty path
// keeps the bundled document.
func WithUISchemaFile(path string) Option {
	return func(o *Orchestrator) {
		o.uiSchemaPath = path
	}
}

// WithLocations overrides the location options. They take precedence over
// the UI schema's locations.
func WithLocations(locations ...string) Option {
	return func(o *Orchestrator) {
		o.locations = locations
	}
}

// WithRegistry injects a renderer registry.
func WithRegistry(registry *render.Registry) Option {
	return func(o *Orchestrator) {
		o.registry = registry
	}
}

// WithDefaultRenderer overrides the renderer used when a request omits one.
func WithDefaultRenderer(name string) Option {
	return func(o *Orchestrator) {
		o.defaultRenderer = name
	}
}

// WithUIDecorators registers decorators that run after the UI schema.
func WithUIDecorators(decorators ...model.Decorator) Option {
	return func(o *Orchestrator) {
		o.decorators = append(o.decorators, decorators...)
	}
}

// WithWidgetRegistry replaces the built-in widget registry.
func WithWidgetRegistry(registry *widgets.Registry) Option {
	return func(o *Orchestrator) {
		if registry != nil {
			o.widgets = registry
		}
	}
}

// WithLogger sets the logger handed to controllers.
func WithLogger(l logger.Logger) Option {
	return func(o *Orchestrator) {
		if l != nil {
			o.logger = l
		}
	}
}

// Orchestrator holds the resolved schema, the decorated form model and the
// renderers.
type Orchestrator struct {
	uiSchemaPath    string
	document        *uischema.Document
	locations       []string
	registry        *render.Registry
	defaultRenderer string
	decorators      []model.Decorator
	widgets         *widgets.Registry
	logger          logger.Logger

	schema *schema.Schema
	form   model.FormModel
}

// New resolves the UI schema, builds the schema and decorates the form model.
func New(options ...Option) (*Orchestrator, error) {
	o := &Orchestrator{
		defaultRenderer: defaultRendererName,
		widgets:         widgets.NewRegistry(),
		logger:          logger.NewNoOpLogger(),
	}
	for _, opt := range options {
		if opt != nil {
			opt(o)
		}
	}

	doc, err := o.resolveDocument()
	if err != nil {
		return nil, err
	}

	locations := o.locations
	if len(locations) == 0 {
		locations = doc.Locations
	}
	o.schema = schema.New(schema.WithLocations(locations...))

	o.form = o.schema.FormModel()
	// Widgets resolve last so they see hints set by the UI schema.
	decorators := append([]model.Decorator{doc}, o.decorators...)
	decorators = append(decorators, o.widgets)
	if err := model.Apply(&o.form, decorators...); err != nil {
		return nil, fmt.Errorf("orchestrator: decorate form: %w", err)
	}

	if o.registry == nil {
		registry, err := defaultRegistry()
		if err != nil {
			return nil, err
		}
		o.registry = registry
	}
	return o, nil
}

func (o *Orchestrator) resolveDocument() (uischema.Document, error) {
	switch {
	case o.document != nil:
		return *o.document, nil
	case o.uiSchemaPath != "":
		doc, err := uischema.LoadFile(o.uiSchemaPath)
		if err != nil {
			return uischema.Document{}, fmt.Errorf("orchestrator: load ui schema: %w", err)
		}
		return doc, nil
	default:
		doc, err := uischema.Default()
		if err != nil {
			return uischema.Document{}, fmt.Errorf("orchestrator: load bundled ui schema: %w", err)
		}
		return doc, nil
	}
}

func defaultRegistry() (*render.Registry, error) {
	htmlRenderer, err := html.New()
	if err != nil {
		return nil, fmt.Errorf("orchestrator: default renderer: %w", err)
	}
	return render.NewRegistry(htmlRenderer, text.New())
}

// Schema returns the resolved schema.
func (o *Orchestrator) Schema() *schema.Schema {
	return o.schema
}

// FormModel returns a copy of the decorated form model.
func (o *Orchestrator) FormModel() model.FormModel {
	out := o.form
	out.Fields = append([]model.Field(nil), o.form.Fields...)
	return out
}

// Renderers lists the registered renderer names.
func (o *Orchestrator) Renderers() []string {
	return o.registry.List()
}

// NewController starts a form session on the resolved schema.
func (o *Orchestrator) NewController(opts ...form.Option) *form.Controller {
	return form.New(o.schema, append([]form.Option{form.WithLogger(o.logger)}, opts...)...)
}

// Request selects a renderer and the state to render.
type Request struct {
	// Renderer falls back to the default renderer when empty.
	Renderer string
	Snapshot form.Snapshot
}

// Render renders the snapshot with the requested renderer.
func (o *Orchestrator) Render(ctx context.Context, req Request) ([]byte, error) {
	if ctx == nil {
		return nil, errors.New("orchestrator: context is required")
	}
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	name := req.Renderer
	if name == "" {
		name = o.defaultRenderer
	}
	renderer, err := o.registry.Get(name)
	if err != nil {
		return nil, fmt.Errorf("orchestrator: %w", err)
	}

	out, err := renderer.Render(ctx, o.FormModel(), render.OptionsFromSnapshot(o.schema, req.Snapshot))
	if err != nil {
		return nil, fmt.Errorf("orchestrator: render output: %w", err)
	}
	return out, nil
}

// ContentType reports the content type of the named renderer.
func (o *Orchestrator) ContentType(name string) (string, error) {
	if name == "" {
		name = o.defaultRenderer
	}
	renderer, err := o.registry.Get(name)
	if err != nil {
		return "", err
	}
	return renderer.ContentType(), nil
}
