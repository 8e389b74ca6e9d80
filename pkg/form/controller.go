package form

import (
	"errors"
	"fmt"
	"sort"

	"github.com/google/uuid"

	"github.com/goliatone/go-applyform/internal/logger"
	"github.com/goliatone/go-applyform/pkg/schema"
	"github.com/goliatone/go-applyform/pkg/validation"
)

// Snapshot is a detached copy of the controller state handed to the
// presentation layer.
type Snapshot struct {
	SessionID string              `json:"sessionId"`
	Record    schema.Record       `json:"record"`
	Errors    validation.ErrorMap `json:"errors,omitempty"`
	Phase     Phase               `json:"phase"`
	// Focused is empty when no field has focus.
	Focused schema.FieldName `json:"focused,omitempty"`
}

// Submitted reports whether the snapshot is in the terminal phase.
func (s Snapshot) Submitted() bool {
	return s.Phase == PhaseSubmitted
}

// Listener receives a snapshot after every observable state change.
type Listener func(Snapshot)

type subscription struct {
	id int
	fn Listener
}

// Controller owns the draft record, the current error map and the phase.
type Controller struct {
	schema    *schema.Schema
	sessionID string
	logger    logger.Logger

	record  schema.Record
	errors  validation.ErrorMap
	phase   Phase
	focused schema.FieldName

	listeners []subscription
	nextID    int
}

// Option configures a Controller.
type Option func(*Controller)

// WithLogger sets the structured logger. Defaults to a no-op logger.
func WithLogger(l logger.Logger) Option {
	return func(c *Controller) {
		if l != nil {
			c.logger = l
		}
	}
}

// WithSessionID overrides the generated session identifier.
func WithSessionID(id string) Option {
	return func(c *Controller) {
		if id != "" {
			c.sessionID = id
		}
	}
}

// New creates a controller in the editing phase with an empty draft. A nil
// schema uses the default application schema.
func New(s *schema.Schema, opts ...Option) *Controller {
	if s == nil {
		s = schema.New()
	}
	c := &Controller{
		schema:    s,
		sessionID: uuid.NewString(),
		logger:    logger.NewNoOpLogger(),
		phase:     PhaseEditing,
	}
	for _, opt := range opts {
		if opt != nil {
			opt(c)
		}
	}
	c.record = s.NewRecord()
	c.logger = c.logger.With(map[string]interface{}{"session": c.sessionID})
	return c
}

// Schema returns the schema the controller validates against.
func (c *Controller) Schema() *schema.Schema {
	return c.schema
}

// SessionID identifies this form session.
func (c *Controller) SessionID() string {
	return c.sessionID
}

// Phase returns the current phase.
func (c *Controller) Phase() Phase {
	return c.phase
}

// Record returns a copy of the draft.
func (c *Controller) Record() schema.Record {
	return c.record
}

// Errors returns a copy of the current error map; nil when nothing fails.
func (c *Controller) Errors() validation.ErrorMap {
	return c.errors.Clone()
}

// FocusedField returns the focused field, if any.
func (c *Controller) FocusedField() (schema.FieldName, bool) {
	return c.focused, c.focused != ""
}

// Snapshot captures the full observable state.
func (c *Controller) Snapshot() Snapshot {
	return Snapshot{
		SessionID: c.sessionID,
		Record:    c.record,
		Errors:    c.errors.Clone(),
		Phase:     c.phase,
		Focused:   c.focused,
	}
}

// UpdateField coerces raw into the named field and clears that field's error,
// if any, without revalidating anything else. It is a no-op once submitted.
// Only names outside the schema fail, with schema.ErrUnknownField.
func (c *Controller) UpdateField(name schema.FieldName, raw string) error {
	if c.phase == PhaseSubmitted {
		return nil
	}
	if err := c.schema.Assign(&c.record, name, raw); err != nil {
		return err
	}

	cleared := c.errors.Has(string(name))
	if cleared {
		delete(c.errors, string(name))
		if len(c.errors) == 0 {
			c.errors = nil
		}
	}
	c.logger.Debug("field updated", map[string]interface{}{
		"field":        string(name),
		"clearedError": cleared,
	})
	c.notify()
	return nil
}

// Prefill applies a batch of raw edits in form order. Unknown keys are
// reported together after every known key has been applied.
func (c *Controller) Prefill(values map[string]string) error {
	if len(values) == 0 {
		return nil
	}
	for _, field := range c.schema.Fields() {
		raw, ok := values[string(field.Name)]
		if !ok {
			continue
		}
		if err := c.UpdateField(field.Name, raw); err != nil {
			return err
		}
	}

	var unknown []string
	for key := range values {
		if _, ok := c.schema.Field(schema.FieldName(key)); !ok {
			unknown = append(unknown, key)
		}
	}
	if len(unknown) == 0 {
		return nil
	}
	sort.Strings(unknown)
	errs := make([]error, 0, len(unknown))
	for _, key := range unknown {
		errs = append(errs, fmt.Errorf("%w: %q", schema.ErrUnknownField, key))
	}
	return errors.Join(errs...)
}

// Submit validates the draft. On success the phase becomes Submitted, errors
// are cleared and nil is returned. On failure the error map is replaced
// wholesale, the record and phase stay as they are, and the new map is
// returned as a validation.ErrorMap error. Submitting an already submitted
// form is a no-op.
func (c *Controller) Submit() error {
	if c.phase == PhaseSubmitted {
		return nil
	}

	errs := c.schema.Validate(c.record)
	if len(errs) > 0 {
		c.errors = errs
		c.logger.Debug("submit rejected", map[string]interface{}{
			"errorCount": len(errs),
		})
		c.notify()
		return errs.Clone()
	}

	c.errors = nil
	c.focused = ""
	c.phase = PhaseSubmitted
	c.logger.Info("application submitted", map[string]interface{}{
		"phase": c.phase.String(),
	})
	c.notify()
	return nil
}

// FocusField marks name as focused. It never touches record, errors or phase.
func (c *Controller) FocusField(name schema.FieldName) error {
	if c.phase == PhaseSubmitted {
		return nil
	}
	if _, ok := c.schema.Field(name); !ok {
		return fmt.Errorf("%w: %q", schema.ErrUnknownField, name)
	}
	if c.focused == name {
		return nil
	}
	c.focused = name
	c.notify()
	return nil
}

// BlurField clears the focused field.
func (c *Controller) BlurField() {
	if c.phase == PhaseSubmitted || c.focused == "" {
		return
	}
	c.focused = ""
	c.notify()
}

// Subscribe registers fn to run synchronously after each state change. The
// returned function removes the subscription.
func (c *Controller) Subscribe(fn Listener) func() {
	if fn == nil {
		return func() {}
	}
	c.nextID++
	id := c.nextID
	c.listeners = append(c.listeners, subscription{id: id, fn: fn})
	return func() {
		for i, sub := range c.listeners {
			if sub.id == id {
				c.listeners = append(c.listeners[:i:i], c.listeners[i+1:]...)
				return
			}
		}
	}
}

func (c *Controller) notify() {
	if len(c.listeners) == 0 {
		return
	}
	listeners := append([]subscription(nil), c.listeners...)
	for _, sub := range listeners {
		sub.fn(c.Snapshot())
	}
}
