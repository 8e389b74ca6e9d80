package render

import (
	"strings"

	"github.com/goliatone/go-applyform/pkg/model"
	"github.com/goliatone/go-applyform/pkg/validation"
)

// ErrorMapping splits an error map into field-level messages in form order
// and form-level messages for keys that match no field.
type ErrorMapping struct {
	Fields []validation.FieldError
	Form   []string
}

// Field returns the message attached to name.
func (m ErrorMapping) Field(name string) string {
	for _, fe := range m.Fields {
		if fe.Field == name {
			return fe.Message
		}
	}
	return ""
}

// MapErrors normalises keys (JSON pointers, "body."-style wrappers) and
// assigns each message to a form field or to the form itself.
func MapErrors(form model.FormModel, errs validation.ErrorMap) ErrorMapping {
	var mapping ErrorMapping
	if len(errs) == 0 {
		return mapping
	}

	known := make(map[string]struct{}, len(form.Fields))
	for _, field := range form.Fields {
		known[field.Name] = struct{}{}
	}

	normalised := make(validation.ErrorMap, len(errs))
	for _, key := range errs.Fields() {
		message := strings.TrimSpace(errs[key])
		if message == "" {
			continue
		}
		name := normaliseKey(key)
		if _, ok := known[name]; !ok || isFormLevelKey(key) {
			mapping.Form = appendUnique(mapping.Form, message)
			continue
		}
		if _, exists := normalised[name]; !exists {
			normalised[name] = message
		}
	}
	mapping.Fields = normalised.Ordered(form.FieldNames())
	return mapping
}

func normaliseKey(raw string) string {
	clean := strings.TrimSpace(raw)
	for _, prefix := range []string{"#/", "$.", "/", "#", "$"} {
		clean = strings.TrimPrefix(clean, prefix)
	}
	segments := strings.FieldsFunc(clean, func(r rune) bool {
		return r == '.' || r == '/'
	})
	for len(segments) > 1 && isWrapperSegment(segments[0]) {
		segments = segments[1:]
	}
	if len(segments) != 1 {
		return clean
	}
	return segments[0]
}

func isWrapperSegment(segment string) bool {
	switch strings.ToLower(segment) {
	case "body", "request", "payload", "data", "record":
		return true
	}
	return false
}

func isFormLevelKey(key string) bool {
	switch strings.ToLower(strings.TrimSpace(key)) {
	case "", ".", "/", "#", "$", "form", "__all__", "non_field_errors":
		return true
	default:
		return false
	}
}

func appendUnique(list []string, value string) []string {
	for _, existing := range list {
		if existing == value {
			return list
		}
	}
	return append(list, value)
}
