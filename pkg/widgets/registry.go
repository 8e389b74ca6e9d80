// Package widgets picks the input control each field is presented with.
package widgets

import (
	"sort"
	"strings"
	"sync"

	"github.com/goliatone/go-applyform/pkg/model"
)

// Built-in widget identifiers.
const (
	WidgetText     = "text"
	WidgetTextArea = "textarea"
	WidgetSelect   = "select"
	WidgetNumber   = "number"
	WidgetEmail    = "email"
	WidgetURL      = "url"
	WidgetTel      = "tel"
)

// HintKey is the UIHints key the registry writes and honours.
const HintKey = "widget"

// Matcher decides whether a widget should handle the supplied field.
type Matcher func(field model.Field) bool

type rule struct {
	name     string
	priority int
	match    Matcher
	order    int
}

// Registry selects widgets for fields from explicit hints or registered
// matchers. Higher priority wins; ties fall back to registration order.
type Registry struct {
	mu    sync.RWMutex
	rules []rule
}

// NewRegistry constructs a registry with the built-in matchers.
func NewRegistry() *Registry {
	reg := &Registry{}
	reg.registerBuiltins()
	return reg
}

// Register adds a matcher. The latest registration of a name does not
// replace earlier ones; both stay in the resolution order.
func (r *Registry) Register(name string, priority int, matcher Matcher) {
	if r == nil || matcher == nil {
		return
	}
	trimmed := strings.TrimSpace(name)
	if trimmed == "" {
		return
	}
	r.mu.Lock()
	defer r.mu.Unlock()
	r.rules = append(r.rules, rule{
		name:     trimmed,
		priority: priority,
		match:    matcher,
		order:    len(r.rules),
	})
}

// Resolve returns the widget for a field. An explicit UI hint wins over
// matchers.
func (r *Registry) Resolve(field model.Field) (string, bool) {
	if explicit := strings.TrimSpace(field.UIHints[HintKey]); explicit != "" {
		return explicit, true
	}
	if r == nil {
		return "", false
	}
	r.mu.RLock()
	rules := append([]rule(nil), r.rules...)
	r.mu.RUnlock()

	sort.SliceStable(rules, func(i, j int) bool {
		if rules[i].priority == rules[j].priority {
			return rules[i].order < rules[j].order
		}
		return rules[i].priority > rules[j].priority
	})
	for _, entry := range rules {
		if entry.match(field) {
			return entry.name, true
		}
	}
	return "", false
}

// Decorate implements model.Decorator by writing the resolved widget into
// every field's UI hints.
func (r *Registry) Decorate(form *model.FormModel) error {
	if form == nil {
		return nil
	}
	for i := range form.Fields {
		widget, ok := r.Resolve(form.Fields[i])
		if !ok {
			continue
		}
		if form.Fields[i].UIHints == nil {
			form.Fields[i].UIHints = make(map[string]string)
		}
		form.Fields[i].UIHints[HintKey] = widget
	}
	return nil
}

var _ model.Decorator = (*Registry)(nil)

// Of returns the widget recorded on a decorated field, resolving with the
// built-ins when the field was never decorated.
func Of(field model.Field) string {
	if widget, ok := defaultRegistry.Resolve(field); ok {
		return widget
	}
	return WidgetText
}

var defaultRegistry = NewRegistry()

func (r *Registry) registerBuiltins() {
	r.Register(WidgetSelect, 90, func(field model.Field) bool {
		return len(field.Enum) > 0
	})
	r.Register(WidgetNumber, 80, func(field model.Field) bool {
		return field.Type == model.FieldTypeInteger || field.Type == model.FieldTypeNumber
	})
	r.Register(WidgetTextArea, 70, formatIs("textarea"))
	r.Register(WidgetEmail, 60, formatIs("email"))
	r.Register(WidgetURL, 60, formatIs("url", "uri"))
	r.Register(WidgetTel, 60, formatIs("tel", "phone"))
	r.Register(WidgetText, 0, func(field model.Field) bool {
		return field.Type == model.FieldTypeString
	})
}

func formatIs(formats ...string) Matcher {
	return func(field model.Field) bool {
		format := strings.ToLower(strings.TrimSpace(field.Format))
		for _, candidate := range formats {
			if format == candidate {
				return true
			}
		}
		return false
	}
}
