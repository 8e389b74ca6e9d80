package openapi

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/goliatone/go-applyform/pkg/schema"
	"github.com/goliatone/go-applyform/pkg/testsupport"
)

func TestJSONSchema(t *testing.T) {
	raw, err := JSONSchema(schema.New())
	require.NoError(t, err)

	var doc map[string]interface{}
	require.NoError(t, json.Unmarshal(raw, &doc))
	assert.Equal(t, draft04, doc["$schema"])
	assert.Equal(t, false, doc["additionalProperties"])
	assert.Equal(t, "object", doc["type"])
}

func TestValidateJSON(t *testing.T) {
	s := schema.New()

	valid, err := json.Marshal(testsupport.ValidRecord())
	require.NoError(t, err)
	errs, err := ValidateJSON(s, valid)
	require.NoError(t, err)
	assert.Nil(t, errs)

	errs, err = ValidateJSON(s, []byte(`{
		"name": "Ada Lovelace",
		"gender": "female",
		"email": "ada@example.com",
		"phone": "+91 98765 43210",
		"experienceYears": "seven",
		"experienceMonths": 12,
		"currentSalary": 0,
		"expectedSalary": 0,
		"availableToJoinDays": 0,
		"preferredLocation": "Bangalore",
		"currentLocation": "Pune",
		"reasonForChange": "Looking for larger scale problems",
		"noticePeriodDays": 0,
		"salary": 10
	}`))
	require.NoError(t, err)
	assert.Equal(t, "Experience years must be 0 or more", errs["experienceYears"])
	assert.Equal(t, "Experience months must be between 0 and 11", errs["experienceMonths"])
	assert.Equal(t, "Message must be at least 10 characters", errs["message"])
	assert.Contains(t, errs[FormErrorKey], "salary")
	assert.Len(t, errs, 4)
}

func TestValidateJSON_Malformed(t *testing.T) {
	_, err := ValidateJSON(schema.New(), []byte(`{`))
	require.Error(t, err)
}
