package uischema

import (
	"fmt"
	"sort"
	"strings"

	"github.com/goliatone/go-applyform/pkg/model"
)

// Decorate applies the document to form. Field keys that do not exist in the
// form are reported as an error so typos surface at startup.
func (d Document) Decorate(form *model.FormModel) error {
	if form == nil {
		return nil
	}

	var unknown []string
	for name := range d.Fields {
		if _, ok := form.Field(name); !ok {
			unknown = append(unknown, name)
		}
	}
	if len(unknown) > 0 {
		sort.Strings(unknown)
		return fmt.Errorf("uischema: %s: unknown fields %s", d.sourceName(), strings.Join(unknown, ", "))
	}

	applyFormConfig(form, d.Form)
	for i := range form.Fields {
		cfg, ok := d.Fields[form.Fields[i].Name]
		if !ok {
			continue
		}
		applyFieldConfig(&form.Fields[i], cfg)
	}
	return nil
}

var _ model.Decorator = Document{}

func (d Document) sourceName() string {
	if d.Source == "" {
		return "document"
	}
	return d.Source
}

func applyFormConfig(form *model.FormModel, cfg FormConfig) {
	if title := strings.TrimSpace(cfg.Title); title != "" {
		form.Title = title
	}
	if desc := SanitizeHelp(cfg.Description); desc != "" {
		form.Description = desc
	}
	form.Metadata = setIfPresent(form.Metadata, metadataSubmitLabel, cfg.SubmitLabel)
	form.Metadata = setIfPresent(form.Metadata, metadataSuccessTitle, cfg.SuccessTitle)
	form.Metadata = setIfPresent(form.Metadata, metadataSuccessMessage, cfg.SuccessMessage)
}

func applyFieldConfig(field *model.Field, cfg FieldConfig) {
	if label := strings.TrimSpace(cfg.Label); label != "" {
		field.Label = label
	}
	if placeholder := strings.TrimSpace(cfg.Placeholder); placeholder != "" {
		field.Placeholder = placeholder
	}
	if help := SanitizeHelp(cfg.HelpText); help != "" {
		field.Description = help
	}
	for key, value := range cfg.UIHints {
		field.UIHints = setIfPresent(field.UIHints, key, value)
	}
	field.UIHints = setIfPresent(field.UIHints, hintWidget, cfg.Widget)
}

func setIfPresent(dst map[string]string, key, value string) map[string]string {
	key = strings.TrimSpace(key)
	value = strings.TrimSpace(value)
	if key == "" || value == "" {
		return dst
	}
	if dst == nil {
		dst = make(map[string]string)
	}
	dst[key] = value
	return dst
}
