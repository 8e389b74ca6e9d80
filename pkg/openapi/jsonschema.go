package openapi

import (
	"encoding/json"
	"fmt"
	"sort"

	"github.com/xeipuuv/gojsonschema"

	"github.com/goliatone/go-applyform/pkg/schema"
	"github.com/goliatone/go-applyform/pkg/validation"
)

const draft04 = "http://json-schema.org/draft-04/schema#"

// FormErrorKey collects messages that do not belong to a single field, such
// as properties outside the schema.
const FormErrorKey = "form"

// JSONSchema renders the record schema as a standalone draft-04 JSON Schema.
// Additional properties are rejected.
func JSONSchema(s *schema.Schema) ([]byte, error) {
	sch := Schema(s)
	raw, err := json.Marshal(sch)
	if err != nil {
		return nil, fmt.Errorf("openapi: encode schema: %w", err)
	}
	var doc map[string]interface{}
	if err := json.Unmarshal(raw, &doc); err != nil {
		return nil, fmt.Errorf("openapi: decode schema: %w", err)
	}
	doc["$schema"] = draft04
	doc["additionalProperties"] = false
	return json.MarshalIndent(doc, "", "  ")
}

// ValidateJSON checks a typed JSON record (numbers as numbers) against the
// JSON Schema. Failures are keyed by field and carry the schema's message for
// that field; anything else lands under FormErrorKey. A nil map means valid.
func ValidateJSON(s *schema.Schema, data []byte) (validation.ErrorMap, error) {
	if s == nil {
		s = schema.New()
	}
	schemaJSON, err := JSONSchema(s)
	if err != nil {
		return nil, err
	}
	result, err := gojsonschema.Validate(
		gojsonschema.NewBytesLoader(schemaJSON),
		gojsonschema.NewBytesLoader(data),
	)
	if err != nil {
		return nil, fmt.Errorf("openapi: validate document: %w", err)
	}
	if result.Valid() {
		return nil, nil
	}

	errs := validation.ErrorMap{}
	var other []string
	for _, desc := range result.Errors() {
		name := desc.Field()
		if desc.Type() == "required" {
			if property, ok := desc.Details()["property"].(string); ok {
				name = property
			}
		}
		field, ok := s.Field(schema.FieldName(name))
		if !ok {
			other = append(other, desc.String())
			continue
		}
		message := field.Message
		if message == "" {
			message = desc.Description()
		}
		errs[name] = message
	}
	if len(other) > 0 {
		sort.Strings(other)
		errs[FormErrorKey] = other[0]
		if len(other) > 1 {
			errs[FormErrorKey] = fmt.Sprintf("%s (and %d more)", other[0], len(other)-1)
		}
	}
	return errs, nil
}
