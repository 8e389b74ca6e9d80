// Package tui drives the application form interactively in a terminal. Each
// prompt is a focus, edit, blur cycle on a form.Controller; failed submits
// print the inline messages and re-prompt only the failing fields.
package tui

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/url"
	"strings"

	"github.com/goliatone/go-applyform/internal/logger"
	"github.com/goliatone/go-applyform/pkg/form"
	"github.com/goliatone/go-applyform/pkg/model"
	"github.com/goliatone/go-applyform/pkg/render"
	"github.com/goliatone/go-applyform/pkg/schema"
	"github.com/goliatone/go-applyform/pkg/uischema"
	"github.com/goliatone/go-applyform/pkg/validation"
	"github.com/goliatone/go-applyform/pkg/widgets"
)

const defaultMaxAttempts = 5

// Runner walks a controller through the form using a PromptDriver.
type Runner struct {
	driver       PromptDriver
	outputFormat OutputFormat
	theme        Theme
	logger       logger.Logger
	maxAttempts  int
	onSubmit     func(validation.ErrorMap)
}

// New constructs a Runner with the survey driver and JSON output.
func New(options ...Option) *Runner {
	r := &Runner{
		outputFormat: OutputFormatJSON,
		theme:        DefaultTheme,
		logger:       logger.NewNoOpLogger(),
		maxAttempts:  defaultMaxAttempts,
	}
	for _, opt := range options {
		if opt != nil {
			opt(r)
		}
	}
	if r.driver == nil {
		r.driver = NewSurveyDriver()
	}
	return r
}

// ContentType reports the media type of the bytes Run returns.
func (r *Runner) ContentType() string {
	switch r.outputFormat {
	case OutputFormatFormURLEncoded:
		return "application/x-www-form-urlencoded"
	case OutputFormatPrettyText:
		return "text/plain; charset=utf-8"
	default:
		return "application/json"
	}
}

// Run prompts every field in form order, submits, and repeats for failing
// fields until the controller reaches the submitted phase. The submitted
// record is returned serialized in the configured format.
func (r *Runner) Run(ctx context.Context, ctrl *form.Controller, fm model.FormModel) ([]byte, error) {
	if ctrl == nil {
		return nil, errors.New("tui: controller is required")
	}
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	if ctrl.Phase() != form.PhaseSubmitted {
		if err := r.collect(ctx, ctrl, fm); err != nil {
			return nil, err
		}
	}

	if msg := successMessage(fm); msg != "" {
		if err := r.driver.Info(ctx, r.theme.InfoPrefix+msg); err != nil {
			return nil, err
		}
	}
	return r.serialize(ctrl.Schema(), fm, ctrl.Record())
}

func (r *Runner) collect(ctx context.Context, ctrl *form.Controller, fm model.FormModel) error {
	pending := fm.Fields
	for attempt := 1; ; attempt++ {
		for _, field := range pending {
			if err := r.promptField(ctx, ctrl, field); err != nil {
				return err
			}
		}

		err := ctrl.Submit()
		if err == nil {
			r.observe(nil)
			return nil
		}
		errs, ok := validation.AsErrorMap(err)
		if !ok {
			return err
		}
		r.observe(errs)

		r.logger.Info("submission rejected", map[string]interface{}{
			"attempt":    attempt,
			"errorCount": len(errs),
			"sessionId":  ctrl.SessionID(),
		})
		if r.maxAttempts > 0 && attempt >= r.maxAttempts {
			return fmt.Errorf("%w: %w", ErrTooManyAttempts, errs)
		}

		mapping := render.MapErrors(fm, errs)
		failing := make(map[string]struct{}, len(mapping.Fields))
		for _, fe := range mapping.Fields {
			failing[fe.Field] = struct{}{}
			if err := r.driver.Info(ctx, r.theme.ErrorPrefix+fe.Message); err != nil {
				return err
			}
		}
		for _, msg := range mapping.Form {
			if err := r.driver.Info(ctx, r.theme.ErrorPrefix+msg); err != nil {
				return err
			}
		}

		var next []model.Field
		for _, field := range fm.Fields {
			if _, ok := failing[field.Name]; ok {
				next = append(next, field)
			}
		}
		pending = next
		if len(pending) == 0 {
			return errs
		}
	}
}

func (r *Runner) promptField(ctx context.Context, ctrl *form.Controller, field model.Field) error {
	name := schema.FieldName(field.Name)
	if err := ctrl.FocusField(name); err != nil {
		return err
	}
	defer ctrl.BlurField()

	current := ctrl.Schema().Display(ctrl.Record(), name)
	message := r.theme.PromptPrefix + displayLabel(field)
	help := uischema.PlainText(field.Description)

	r.logger.Debug("prompting field", map[string]interface{}{"field": field.Name})

	var (
		value string
		err   error
	)
	widget := widgets.Of(field)
	if widget == widgets.WidgetSelect && len(field.Enum) == 0 {
		widget = widgets.WidgetText
	}
	switch widget {
	case widgets.WidgetSelect:
		var idx int
		idx, err = r.driver.Select(ctx, SelectConfig{
			Message:      message,
			Options:      field.Enum,
			DefaultIndex: indexOf(field.Enum, current),
			Help:         help,
		})
		if err == nil && idx >= 0 && idx < len(field.Enum) {
			value = field.Enum[idx]
		}
	case widgets.WidgetTextArea:
		value, err = r.driver.TextArea(ctx, TextAreaConfig{Message: message, Default: current, Help: help})
	default:
		value, err = r.driver.Input(ctx, InputConfig{Message: message, Default: current, Help: help})
	}
	if err != nil {
		return err
	}
	return ctrl.UpdateField(name, value)
}

func (r *Runner) serialize(s *schema.Schema, fm model.FormModel, record schema.Record) ([]byte, error) {
	switch r.outputFormat {
	case OutputFormatFormURLEncoded:
		values := url.Values{}
		for name, value := range s.Values(record) {
			if value != "" {
				values.Set(name, value)
			}
		}
		return []byte(values.Encode()), nil
	case OutputFormatPrettyText:
		var b strings.Builder
		display := s.Values(record)
		for _, field := range fm.Fields {
			fmt.Fprintf(&b, "%s: %s\n", displayLabel(field), display[field.Name])
		}
		return []byte(b.String()), nil
	default:
		return json.MarshalIndent(record, "", "  ")
	}
}

func displayLabel(field model.Field) string {
	if field.Label != "" {
		return field.Label
	}
	return field.Name
}

func successMessage(fm model.FormModel) string {
	return fm.Metadata[uischema.MetadataSuccessMessage]
}

func (r *Runner) observe(errs validation.ErrorMap) {
	if r.onSubmit != nil {
		r.onSubmit(errs)
	}
}
