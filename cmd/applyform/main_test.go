package main

import (
	"bytes"
	"encoding/json"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func execute(t *testing.T, stdin string, args ...string) (string, error) {
	t.Helper()
	cmd := newRootCommand()
	var out, errOut bytes.Buffer
	cmd.SetOut(&out)
	cmd.SetErr(&errOut)
	cmd.SetIn(strings.NewReader(stdin))
	cmd.SetArgs(append(args, "--log-level", "error"))
	err := cmd.Execute()
	return out.String(), err
}

const validYAML = `
name: Ada Lovelace
gender: female
email: ada@example.com
phone: "+91 98765 43210"
github: https://github.com/ada
experienceYears: 7
experienceMonths: 4
currentSalary: 1800000
expectedSalary: 2400000
availableToJoinDays: 30
preferredLocation: Bangalore
currentLocation: Pune
reasonForChange: Looking for larger scale problems
referredBy: Charles Babbage
noticePeriodDays: 60
message: Happy to walk through my recent work.
`

func TestCheck_Valid(t *testing.T) {
	out, err := execute(t, validYAML, "check", "-")
	require.NoError(t, err)
	assert.Equal(t, "ok\n", out)
}

func TestCheck_InvalidListsErrorsInFormOrder(t *testing.T) {
	out, err := execute(t, `{"name": "A", "experienceMonths": 12}`, "check", "-")
	require.ErrorIs(t, err, errCheckFailed)

	lines := strings.Split(strings.TrimSpace(out), "\n")
	require.Len(t, lines, 9)
	assert.Equal(t, "name: Name must be at least 2 characters", lines[0])
	assert.Contains(t, lines, "experienceMonths: Experience months must be between 0 and 11")
	assert.Equal(t, "message: Message must be at least 10 characters", lines[len(lines)-1])
}

func TestCheck_StrictUsesJSONSchema(t *testing.T) {
	out, err := execute(t, validYAML, "check", "--strict", "-")
	require.NoError(t, err)
	assert.Equal(t, "ok\n", out)

	// Quoted numbers are coerced normally but rejected in strict mode.
	typed := strings.Replace(validYAML, "experienceYears: 7", `experienceYears: "7"`, 1)
	_, err = execute(t, typed, "check", "-")
	require.NoError(t, err)

	out, err = execute(t, typed+"salary: 1\n", "check", "--strict", "-")
	require.ErrorIs(t, err, errCheckFailed)
	lines := strings.Split(strings.TrimSpace(out), "\n")
	require.Len(t, lines, 2)
	assert.Equal(t, "experienceYears: Experience years must be 0 or more", lines[0])
	assert.True(t, strings.HasPrefix(lines[1], "form: "), lines[1])
}

func TestCheck_WritesMetricsFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "applyform.prom")
	_, err := execute(t, `{"name": "A"}`, "check", "-", "--metrics-file", path)
	require.ErrorIs(t, err, errCheckFailed)

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Contains(t, string(data), `applyform_submits_total{command="check",outcome="rejected"} 1`)
	assert.Contains(t, string(data), `applyform_field_errors_total{command="check",field="name"} 1`)
}

func TestCheck_UnknownField(t *testing.T) {
	_, err := execute(t, `{"salary": 1}`, "check", "-")
	require.Error(t, err)
	assert.Contains(t, err.Error(), `"salary"`)
}

func TestCheck_RejectsNonScalar(t *testing.T) {
	_, err := execute(t, `{"name": ["a", "b"]}`, "check", "-")
	require.Error(t, err)
}

func TestRender_TextAfterFailedSubmit(t *testing.T) {
	out, err := execute(t, `{"name": "A"}`, "render", "--prefill", "-", "--submit", "--renderer", "text", "--focus", "email")
	require.NoError(t, err)
	assert.Contains(t, out, "Name must be at least 2 characters")
	assert.Contains(t, out, "> Email address*: ")
}

func TestRender_HTMLToFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "form.html")
	_, err := execute(t, "", "render", "--output", path, "--locations", "Goa,Kochi")
	require.NoError(t, err)

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Contains(t, string(data), `<option value="Goa">Goa</option>`)
	assert.NotContains(t, string(data), `<option value="Remote">`)
}

func TestSchema_JSON(t *testing.T) {
	out, err := execute(t, "", "schema", "--version", "3.1.4")
	require.NoError(t, err)

	var doc map[string]any
	require.NoError(t, json.Unmarshal([]byte(out), &doc))
	info := doc["info"].(map[string]any)
	assert.Equal(t, "Join our team", info["title"])
	assert.Equal(t, "3.1.4", info["version"])
}

func TestSchema_JSONSchema(t *testing.T) {
	out, err := execute(t, "", "schema", "--format", "jsonschema")
	require.NoError(t, err)

	var doc map[string]any
	require.NoError(t, json.Unmarshal([]byte(out), &doc))
	assert.Equal(t, "http://json-schema.org/draft-04/schema#", doc["$schema"])
	assert.Equal(t, false, doc["additionalProperties"])
}

func TestParseValues(t *testing.T) {
	values, err := parseValues([]byte("experienceYears: 2.5\nname: Ada\nreferredBy: null\n"))
	require.NoError(t, err)
	assert.Equal(t, map[string]string{"experienceYears": "2.5", "name": "Ada", "referredBy": ""}, values)

	values, err = parseValues([]byte("  "))
	require.NoError(t, err)
	assert.Empty(t, values)
}
