package openapi

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"

	"github.com/getkin/kin-openapi/openapi3"
	"gopkg.in/yaml.v3"

	"github.com/goliatone/go-applyform/pkg/schema"
)

const (
	// RecordSchemaName is the components/schemas key of the record.
	RecordSchemaName = "ApplicationRecord"
	// SubmitPath is the documented submission endpoint.
	SubmitPath = "/applications"

	extensionMessage = "x-error-message"
	openAPIVersion   = "3.0.3"
)

// Info is the document metadata.
type Info struct {
	Title       string
	Version     string
	Description string
}

// Schema converts the descriptors into an object schema.
func Schema(s *schema.Schema) *openapi3.Schema {
	if s == nil {
		s = schema.New()
	}
	out := openapi3.NewObjectSchema()
	for _, field := range s.Fields() {
		out.WithProperty(string(field.Name), property(field))
		if !field.Optional {
			out.Required = append(out.Required, string(field.Name))
		}
	}
	return out
}

func property(field schema.Field) *openapi3.Schema {
	var prop *openapi3.Schema
	switch field.Kind {
	case schema.KindEnum:
		values := make([]interface{}, 0, len(field.Options))
		for _, option := range field.Options {
			values = append(values, option)
		}
		prop = openapi3.NewStringSchema().WithEnum(values...)
	case schema.KindInteger:
		prop = openapi3.NewIntegerSchema()
	case schema.KindNumber:
		prop = openapi3.NewFloat64Schema()
	default:
		prop = openapi3.NewStringSchema()
		switch field.Format {
		case schema.FormatEmail:
			prop.WithFormat("email")
		case schema.FormatURL:
			prop.WithFormat("uri")
		}
	}

	if field.MinLength > 0 {
		prop.WithMinLength(int64(field.MinLength))
	}
	if field.Min != nil {
		prop.WithMin(*field.Min)
	}
	if field.Max != nil {
		prop.WithMax(*field.Max)
	}
	prop.Title = field.Label
	if field.Message != "" {
		prop.Extensions = map[string]interface{}{extensionMessage: field.Message}
	}
	return prop
}

// Document builds and validates a document describing the record schema and
// the submission endpoint.
func Document(ctx context.Context, s *schema.Schema, info Info) (*openapi3.T, error) {
	if strings.TrimSpace(info.Title) == "" {
		info.Title = "Job application"
	}
	if strings.TrimSpace(info.Version) == "" {
		info.Version = "1.0.0"
	}

	record := Schema(s)
	ref := openapi3.NewSchemaRef("#/components/schemas/"+RecordSchemaName, record)

	op := openapi3.NewOperation()
	op.OperationID = "submitApplication"
	op.Summary = "Submit a job application"
	op.RequestBody = &openapi3.RequestBodyRef{
		Value: openapi3.NewRequestBody().WithRequired(true).WithJSONSchemaRef(ref),
	}
	op.Responses = openapi3.NewResponses(
		openapi3.WithStatus(201, &openapi3.ResponseRef{
			Value: openapi3.NewResponse().WithDescription("Application accepted"),
		}),
		openapi3.WithStatus(422, &openapi3.ResponseRef{
			Value: openapi3.NewResponse().
				WithDescription("Field errors keyed by field name").
				WithJSONSchema(openapi3.NewObjectSchema().WithAdditionalProperties(openapi3.NewStringSchema())),
		}),
	)

	doc := &openapi3.T{
		OpenAPI: openAPIVersion,
		Info: &openapi3.Info{
			Title:       info.Title,
			Version:     info.Version,
			Description: info.Description,
		},
		Paths: openapi3.NewPaths(openapi3.WithPath(SubmitPath, &openapi3.PathItem{Post: op})),
		Components: &openapi3.Components{
			Schemas: openapi3.Schemas{
				RecordSchemaName: openapi3.NewSchemaRef("", record),
			},
		},
	}
	if err := doc.Validate(ctx); err != nil {
		return nil, fmt.Errorf("openapi: invalid document: %w", err)
	}
	return doc, nil
}

// VisitRecord validates a record against the exported schema. It is an
// independent check of the same constraints schema.Validate enforces.
func VisitRecord(s *schema.Schema, record schema.Record) error {
	raw, err := json.Marshal(record)
	if err != nil {
		return fmt.Errorf("openapi: encode record: %w", err)
	}
	var value map[string]interface{}
	if err := json.Unmarshal(raw, &value); err != nil {
		return fmt.Errorf("openapi: decode record: %w", err)
	}
	return Schema(s).VisitJSON(value, openapi3.MultiErrors())
}

// Marshal encodes doc as "json" (indented) or "yaml".
func Marshal(doc *openapi3.T, format string) ([]byte, error) {
	raw, err := json.MarshalIndent(doc, "", "  ")
	if err != nil {
		return nil, fmt.Errorf("openapi: encode document: %w", err)
	}
	switch strings.ToLower(strings.TrimSpace(format)) {
	case "", "json":
		return raw, nil
	case "yaml", "yml":
		var generic interface{}
		if err := json.Unmarshal(raw, &generic); err != nil {
			return nil, fmt.Errorf("openapi: decode document: %w", err)
		}
		return yaml.Marshal(generic)
	default:
		return nil, fmt.Errorf("openapi: unsupported format %q", format)
	}
}
