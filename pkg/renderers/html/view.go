package html

import (
	"github.com/goliatone/go-applyform/pkg/model"
	"github.com/goliatone/go-applyform/pkg/render"
	"github.com/goliatone/go-applyform/pkg/uischema"
	"github.com/goliatone/go-applyform/pkg/widgets"
)

const (
	defaultSubmitLabel    = "Submit"
	defaultSuccessTitle   = "Application submitted"
	defaultSuccessMessage = "Thank you. Your application has been received."
)

// templateData is JSON-converted by the engine, so templates address
// values by their json names.
type templateData struct {
	Form formView `json:"form"`
}

type fieldView struct {
	Name        string   `json:"name"`
	ID          string   `json:"id"`
	Label       string   `json:"label"`
	Control     string   `json:"control"`
	InputType   string   `json:"inputType"`
	Value       string   `json:"value"`
	Placeholder string   `json:"placeholder"`
	Help        string   `json:"help"`
	Error       string   `json:"error"`
	Required    bool     `json:"required"`
	Focused     bool     `json:"focused"`
	Options     []string `json:"options"`
	MinLength   string   `json:"minLength"`
	Min         string   `json:"min"`
	Max         string   `json:"max"`
}

type formView struct {
	ID             string      `json:"id"`
	Title          string      `json:"title"`
	Description    string      `json:"description"`
	SessionID      string      `json:"sessionId"`
	Action         string      `json:"action"`
	SubmitLabel    string      `json:"submitLabel"`
	SuccessTitle   string      `json:"successTitle"`
	SuccessMessage string      `json:"successMessage"`
	FormErrors     []string    `json:"formErrors"`
	Fields         []fieldView `json:"fields"`
}

func buildView(form model.FormModel, opts render.RenderOptions, action string) formView {
	mapping := render.MapErrors(form, opts.Errors)
	view := formView{
		ID:             form.ID,
		Title:          form.Title,
		Description:    form.Description,
		SessionID:      opts.SessionID,
		Action:         action,
		SubmitLabel:    metadata(form, uischema.MetadataSubmitLabel, defaultSubmitLabel),
		SuccessTitle:   metadata(form, uischema.MetadataSuccessTitle, defaultSuccessTitle),
		SuccessMessage: metadata(form, uischema.MetadataSuccessMessage, defaultSuccessMessage),
		FormErrors:     mapping.Form,
		Fields:         make([]fieldView, 0, len(form.Fields)),
	}
	for _, field := range form.Fields {
		control, inputType := controlFor(field)
		view.Fields = append(view.Fields, withConstraints(field, fieldView{
			Name:        field.Name,
			ID:          form.ID + "-" + field.Name,
			Label:       field.Label,
			Control:     control,
			InputType:   inputType,
			Value:       opts.Values[field.Name],
			Placeholder: field.Placeholder,
			Help:        field.Description,
			Error:       mapping.Field(field.Name),
			Required:    field.Required,
			Focused:     opts.Focused == field.Name,
			Options:     field.Enum,
		}))
	}
	return view
}

// withConstraints mirrors validation rules as HTML attributes. The form is
// rendered with novalidate, so they only inform the browser UI.
func withConstraints(field model.Field, view fieldView) fieldView {
	for _, rule := range field.Validations {
		switch rule.Kind {
		case model.ValidationRuleMinLength:
			view.MinLength = rule.Params["value"]
		case model.ValidationRuleMin:
			view.Min = rule.Params["value"]
		case model.ValidationRuleMax:
			view.Max = rule.Params["value"]
		}
	}
	return view
}

func metadata(form model.FormModel, key, fallback string) string {
	if value := form.Metadata[key]; value != "" {
		return value
	}
	return fallback
}

// controlFor maps a widget onto the HTML element and input type used for it.
func controlFor(field model.Field) (control, inputType string) {
	switch widget := widgets.Of(field); widget {
	case widgets.WidgetSelect:
		if len(field.Enum) > 0 {
			return "select", ""
		}
		return "input", "text"
	case widgets.WidgetTextArea:
		return "textarea", ""
	case widgets.WidgetNumber, widgets.WidgetEmail, widgets.WidgetURL, widgets.WidgetTel:
		return "input", widget
	default:
		return "input", "text"
	}
}
