package openapi

import (
	"context"
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gopkg.in/yaml.v3"

	"github.com/goliatone/go-applyform/pkg/schema"
	"github.com/goliatone/go-applyform/pkg/testsupport"
)

func TestSchema_Properties(t *testing.T) {
	sch := Schema(schema.New())

	assert.Len(t, sch.Properties, 16)
	assert.NotContains(t, sch.Required, "github")
	assert.NotContains(t, sch.Required, "referredBy")
	assert.Contains(t, sch.Required, "name")
	assert.Len(t, sch.Required, 14)

	months := sch.Properties["experienceMonths"].Value
	require.NotNil(t, months.Min)
	require.NotNil(t, months.Max)
	assert.Equal(t, 0.0, *months.Min)
	assert.Equal(t, 11.0, *months.Max)
	assert.Equal(t, "Experience months must be between 0 and 11", months.Extensions["x-error-message"])

	assert.Equal(t, uint64(2), sch.Properties["name"].Value.MinLength)
	assert.Equal(t, "email", sch.Properties["email"].Value.Format)
	assert.Equal(t, "uri", sch.Properties["github"].Value.Format)
	assert.Len(t, sch.Properties["gender"].Value.Enum, 3)
	assert.Len(t, sch.Properties["preferredLocation"].Value.Enum, len(schema.DefaultLocations))
}

func TestSchema_UsesConfiguredLocations(t *testing.T) {
	sch := Schema(schema.New(schema.WithLocations("Goa", "Kochi")))
	assert.Equal(t, []interface{}{"Goa", "Kochi"}, sch.Properties["preferredLocation"].Value.Enum)
}

func TestDocument_Validates(t *testing.T) {
	doc, err := Document(context.Background(), schema.New(), Info{Description: "Careers"})
	require.NoError(t, err)

	assert.Equal(t, "Job application", doc.Info.Title)
	assert.Equal(t, "1.0.0", doc.Info.Version)
	require.NotNil(t, doc.Paths.Value(SubmitPath))
	assert.Equal(t, "submitApplication", doc.Paths.Value(SubmitPath).Post.OperationID)
	assert.Contains(t, doc.Components.Schemas, RecordSchemaName)
}

func TestVisitRecord(t *testing.T) {
	s := schema.New()
	require.NoError(t, VisitRecord(s, testsupport.ValidRecord()))

	record := testsupport.ValidRecord()
	record.ExperienceMonths = 12
	assert.Error(t, VisitRecord(s, record))

	record = testsupport.ValidRecord()
	record.Name = "A"
	assert.Error(t, VisitRecord(s, record))

	record = testsupport.ValidRecord()
	record.Gender = "unknown"
	assert.Error(t, VisitRecord(s, record))
}

func TestMarshal(t *testing.T) {
	doc, err := Document(context.Background(), schema.New(), Info{Title: "Apply", Version: "2.0.0"})
	require.NoError(t, err)

	raw, err := Marshal(doc, "json")
	require.NoError(t, err)
	var decoded map[string]interface{}
	require.NoError(t, json.Unmarshal(raw, &decoded))
	assert.Equal(t, "3.0.3", decoded["openapi"])

	raw, err = Marshal(doc, "yaml")
	require.NoError(t, err)
	decoded = nil
	require.NoError(t, yaml.Unmarshal(raw, &decoded))
	assert.Equal(t, "Apply", decoded["info"].(map[string]interface{})["title"])

	_, err = Marshal(doc, "xml")
	assert.Error(t, err)
}
