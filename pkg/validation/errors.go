package validation

import (
	"errors"
	"fmt"
	"sort"
	"strings"
)

// FieldError is one failing field with the message shown next to it.
type FieldError struct {
	Field   string `json:"field"`
	Message string `json:"message"`
}

// ErrorMap maps a field name to the single human-readable message describing
// the constraint it violates. Only currently failing fields are present.
//
// ErrorMap implements error so a failed validation can travel through plain
// error returns; recover it with AsErrorMap.
type ErrorMap map[string]string

// Error summarises the failing fields in sorted order.
func (m ErrorMap) Error() string {
	if len(m) == 0 {
		return "validation: no errors"
	}
	return fmt.Sprintf("validation: %d field(s) failed: %s", len(m), strings.Join(m.Fields(), ", "))
}

// Has reports whether field currently fails.
func (m ErrorMap) Has(field string) bool {
	_, ok := m[field]
	return ok
}

// Message returns the message for field, or "" when it passes.
func (m ErrorMap) Message(field string) string {
	return m[field]
}

// Fields returns the failing field names sorted alphabetically.
func (m ErrorMap) Fields() []string {
	if len(m) == 0 {
		return nil
	}
	out := make([]string, 0, len(m))
	for name := range m {
		out = append(out, name)
	}
	sort.Strings(out)
	return out
}

// Clone returns an independent copy. Empty maps clone to nil.
func (m ErrorMap) Clone() ErrorMap {
	if len(m) == 0 {
		return nil
	}
	out := make(ErrorMap, len(m))
	for name, message := range m {
		out[name] = message
	}
	return out
}

// Ordered lists the errors following order. Fields missing from order are
// appended alphabetically so no message is lost.
func (m ErrorMap) Ordered(order []string) []FieldError {
	if len(m) == 0 {
		return nil
	}
	out := make([]FieldError, 0, len(m))
	seen := make(map[string]struct{}, len(m))
	for _, name := range order {
		message, ok := m[name]
		if !ok {
			continue
		}
		if _, dup := seen[name]; dup {
			continue
		}
		seen[name] = struct{}{}
		out = append(out, FieldError{Field: name, Message: message})
	}
	for _, name := range m.Fields() {
		if _, ok := seen[name]; ok {
			continue
		}
		out = append(out, FieldError{Field: name, Message: m[name]})
	}
	return out
}

// AsErrorMap extracts an ErrorMap from err, following wrapped errors.
func AsErrorMap(err error) (ErrorMap, bool) {
	var m ErrorMap
	if errors.As(err, &m) && len(m) > 0 {
		return m, true
	}
	return nil, false
}
