package schema

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/goliatone/go-applyform/pkg/model"
	"github.com/goliatone/go-applyform/pkg/validation"
)

// Schema is the closed table of application fields. It is immutable once
// built and safe to share.
type Schema struct {
	fields    []Field
	index     map[FieldName]int
	locations []string
}

// Option configures a Schema.
type Option func(*Schema)

// WithLocations replaces the preferred location set. Blank and duplicate
// entries are dropped; an empty result keeps the default set.
func WithLocations(locations ...string) Option {
	return func(s *Schema) {
		cleaned := make([]string, 0, len(locations))
		seen := make(map[string]struct{}, len(locations))
		for _, location := range locations {
			trimmed := strings.TrimSpace(location)
			if trimmed == "" {
				continue
			}
			if _, dup := seen[trimmed]; dup {
				continue
			}
			seen[trimmed] = struct{}{}
			cleaned = append(cleaned, trimmed)
		}
		if len(cleaned) > 0 {
			s.locations = cleaned
		}
	}
}

// New builds the application schema.
func New(opts ...Option) *Schema {
	s := &Schema{
		locations: append([]string(nil), DefaultLocations...),
	}
	for _, opt := range opts {
		if opt != nil {
			opt(s)
		}
	}

	s.fields = buildFields(append([]string(nil), s.locations...))
	s.index = make(map[FieldName]int, len(s.fields))
	for i := range s.fields {
		if s.fields[i].Label == "" {
			s.fields[i].Label = model.DefaultLabeler(string(s.fields[i].Name))
		}
		s.index[s.fields[i].Name] = i
	}
	return s
}

// Fields returns the descriptors in form order.
func (s *Schema) Fields() []Field {
	return append([]Field(nil), s.fields...)
}

// Names returns the field names in form order.
func (s *Schema) Names() []string {
	out := make([]string, 0, len(s.fields))
	for _, field := range s.fields {
		out = append(out, string(field.Name))
	}
	return out
}

// Field looks up a descriptor by name.
func (s *Schema) Field(name FieldName) (Field, bool) {
	idx, ok := s.index[name]
	if !ok {
		return Field{}, false
	}
	return s.fields[idx], true
}

// Locations returns the accepted preferred locations.
func (s *Schema) Locations() []string {
	return append([]string(nil), s.locations...)
}

// NewRecord returns an empty draft: blank text and zero numbers.
func (s *Schema) NewRecord() Record {
	return Record{}
}

// Validate checks every field independently and returns one message per
// failing field. A nil result means the record is submittable. The record is
// never modified.
func (s *Schema) Validate(record Record) validation.ErrorMap {
	var errs validation.ErrorMap
	for _, field := range s.fields {
		if field.valid(&record) {
			continue
		}
		if errs == nil {
			errs = make(validation.ErrorMap)
		}
		errs[string(field.Name)] = field.Message
	}
	return errs
}

// Assign coerces raw according to the field kind and writes it into record.
// Only unknown names fail.
func (s *Schema) Assign(record *Record, name FieldName, raw string) error {
	field, ok := s.Field(name)
	if !ok {
		return fmt.Errorf("%w: %q", ErrUnknownField, name)
	}
	field.assign(record, raw)
	return nil
}

// Display returns the textual value of a field, suitable for prefilling an
// input. Unknown names render empty.
func (s *Schema) Display(record Record, name FieldName) string {
	field, ok := s.Field(name)
	if !ok {
		return ""
	}
	return field.display(&record)
}

// Values renders every field as text keyed by field name.
func (s *Schema) Values(record Record) map[string]string {
	out := make(map[string]string, len(s.fields))
	for _, field := range s.fields {
		out[string(field.Name)] = field.display(&record)
	}
	return out
}

// FormModel projects the descriptors into the renderer-facing model.
func (s *Schema) FormModel() model.FormModel {
	form := model.FormModel{
		ID:     "jobApplication",
		Title:  "Job application",
		Fields: make([]model.Field, 0, len(s.fields)),
	}
	for _, field := range s.fields {
		form.Fields = append(form.Fields, field.modelField())
	}
	return form
}

func (f Field) modelField() model.Field {
	out := model.Field{
		Name:     string(f.Name),
		Label:    f.Label,
		Required: !f.Optional,
		Format:   f.Format,
		Type:     model.FieldTypeString,
	}
	switch f.Kind {
	case KindInteger:
		out.Type = model.FieldTypeInteger
	case KindNumber:
		out.Type = model.FieldTypeNumber
	case KindEnum:
		out.Enum = append([]string(nil), f.Options...)
		out.Validations = append(out.Validations, model.ValidationRule{
			Kind:   model.ValidationRuleOneOf,
			Params: map[string]string{"values": strings.Join(f.Options, ",")},
		})
	}
	if f.MinLength > 0 {
		out.Validations = append(out.Validations, model.ValidationRule{
			Kind:   model.ValidationRuleMinLength,
			Params: map[string]string{"value": strconv.Itoa(f.MinLength)},
		})
	}
	if f.Format == FormatEmail || f.Format == FormatURL {
		out.Validations = append(out.Validations, model.ValidationRule{
			Kind:   model.ValidationRuleFormat,
			Params: map[string]string{"format": f.Format},
		})
	}
	if f.Min != nil {
		out.Validations = append(out.Validations, model.ValidationRule{
			Kind:   model.ValidationRuleMin,
			Params: map[string]string{"value": strconv.FormatFloat(*f.Min, 'f', -1, 64)},
		})
	}
	if f.Max != nil {
		out.Validations = append(out.Validations, model.ValidationRule{
			Kind:   model.ValidationRuleMax,
			Params: map[string]string{"value": strconv.FormatFloat(*f.Max, 'f', -1, 64)},
		})
	}
	if f.Message != "" {
		out.Metadata = map[string]string{"message": f.Message}
	}
	return out
}
