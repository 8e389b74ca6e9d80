package schema_test

import (
	"math"
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"

	"github.com/goliatone/go-applyform/pkg/schema"
	"github.com/goliatone/go-applyform/pkg/testsupport"
	"github.com/goliatone/go-applyform/pkg/validation"
)

func TestValidate_ValidRecordPasses(t *testing.T) {
	s := schema.New()
	if errs := s.Validate(testsupport.ValidRecord()); len(errs) != 0 {
		t.Fatalf("expected no errors, got %v", errs)
	}
}

func TestValidate_EmptyRecordCollectsEveryFailure(t *testing.T) {
	s := schema.New()
	got := s.Validate(s.NewRecord())

	want := validation.ErrorMap{
		"name":              "Name must be at least 2 characters",
		"gender":            "Please select a gender",
		"email":             "Please enter a valid email address",
		"phone":             "Phone number must be at least 10 characters",
		"preferredLocation": "Please select a preferred location",
		"currentLocation":   "Current location must be at least 2 characters",
		"reasonForChange":   "Reason for change must be at least 10 characters",
		"message":           "Message must be at least 10 characters",
	}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Fatalf("errors mismatch (-want +got):\n%s", diff)
	}
}

func TestValidate_DoesNotMutateInput(t *testing.T) {
	s := schema.New()
	record := testsupport.ValidRecord()
	record.ExperienceMonths = math.NaN()
	record.Name = "A"
	before := record

	_ = s.Validate(record)
	testsupport.AssertRecord(t, before, record)
}

func TestValidate_Gender(t *testing.T) {
	s := schema.New()
	for _, value := range []schema.Gender{"", "unknown", "Male"} {
		record := testsupport.ValidRecord()
		record.Gender = value

		errs := s.Validate(record)
		if diff := cmp.Diff(validation.ErrorMap{"gender": "Please select a gender"}, errs); diff != "" {
			t.Fatalf("gender %q mismatch (-want +got):\n%s", value, diff)
		}
	}
	for _, value := range schema.Genders() {
		record := testsupport.ValidRecord()
		record.Gender = value
		if errs := s.Validate(record); len(errs) != 0 {
			t.Fatalf("gender %q should pass, got %v", value, errs)
		}
	}
}

func TestValidate_NameReportsSingleError(t *testing.T) {
	s := schema.New()
	for _, value := range []string{"", "A", "é"} {
		record := testsupport.ValidRecord()
		record.Name = value
		errs := s.Validate(record)
		if len(errs) != 1 || errs["name"] != "Name must be at least 2 characters" {
			t.Fatalf("name %q: expected exactly one name error, got %v", value, errs)
		}
	}

	record := testsupport.ValidRecord()
	record.Name = "Jo"
	if errs := s.Validate(record); len(errs) != 0 {
		t.Fatalf("two character name should pass, got %v", errs)
	}
}

func TestValidate_TextLengthCountsCodePoints(t *testing.T) {
	s := schema.New()
	record := testsupport.ValidRecord()
	record.Name = "李雷"
	if errs := s.Validate(record); errs.Has("name") {
		t.Fatalf("two code point name should pass, got %v", errs)
	}
}

func TestValidate_ExperienceMonthsRange(t *testing.T) {
	s := schema.New()
	cases := []struct {
		months float64
		fails  bool
	}{
		{months: 12, fails: true},
		{months: 11, fails: false},
		{months: 0, fails: false},
		{months: -1, fails: true},
		{months: math.NaN(), fails: true},
	}
	for _, tc := range cases {
		record := testsupport.ValidRecord()
		record.ExperienceMonths = tc.months
		errs := s.Validate(record)
		if errs.Has("experienceMonths") != tc.fails {
			t.Fatalf("months %v: fails=%v, errors=%v", tc.months, errs.Has("experienceMonths"), errs)
		}
		if tc.fails && errs.Message("experienceMonths") != "Experience months must be between 0 and 11" {
			t.Fatalf("unexpected months message %q", errs.Message("experienceMonths"))
		}
	}
}

func TestValidate_NumericFieldsRejectOnlyByComparison(t *testing.T) {
	s := schema.New()
	record := testsupport.ValidRecord()
	record.CurrentSalary = -0.01
	record.ExpectedSalary = 1e300
	record.NoticePeriodDays = math.NaN()
	record.ExperienceYears = 2.5

	got := s.Validate(record)
	want := validation.ErrorMap{
		"currentSalary":    "Current salary must be 0 or more",
		"noticePeriodDays": "Notice period days must be 0 or more",
	}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Fatalf("errors mismatch (-want +got):\n%s", diff)
	}
}

func TestValidate_GitHubOptionalURL(t *testing.T) {
	s := schema.New()
	cases := map[string]bool{
		"":                       false,
		"not-a-url":              true,
		"github.com/ada":         true,
		"ftp://github.com/ada":   true,
		"https://github.com/ada": false,
		"http://example.com":     false,
	}
	for value, fails := range cases {
		record := testsupport.ValidRecord()
		record.GitHub = value
		errs := s.Validate(record)
		if errs.Has("github") != fails {
			t.Fatalf("github %q: fails=%v, errors=%v", value, errs.Has("github"), errs)
		}
	}
}

func TestValidate_Email(t *testing.T) {
	s := schema.New()
	cases := map[string]bool{
		"":                  true,
		"ada":               true,
		"ada@":              true,
		"ada@example.com":   false,
		"ada+jobs@mail.org": false,
	}
	for value, fails := range cases {
		record := testsupport.ValidRecord()
		record.Email = value
		if got := s.Validate(record).Has("email"); got != fails {
			t.Fatalf("email %q: fails=%v, want %v", value, got, fails)
		}
	}
}

func TestValidate_PreferredLocationFromConfiguredSet(t *testing.T) {
	s := schema.New(schema.WithLocations(" Berlin ", "", "Lisbon", "Berlin"))
	if diff := cmp.Diff([]string{"Berlin", "Lisbon"}, s.Locations()); diff != "" {
		t.Fatalf("locations mismatch (-want +got):\n%s", diff)
	}

	record := testsupport.ValidRecord()
	record.PreferredLocation = "Bangalore"
	if !s.Validate(record).Has("preferredLocation") {
		t.Fatalf("location outside the configured set should fail")
	}
	record.PreferredLocation = "Lisbon"
	if errs := s.Validate(record); len(errs) != 0 {
		t.Fatalf("configured location should pass, got %v", errs)
	}

	if diff := cmp.Diff(schema.DefaultLocations, schema.New(schema.WithLocations(" ")).Locations()); diff != "" {
		t.Fatalf("blank override should keep defaults (-want +got):\n%s", diff)
	}
}

func TestAssign_CoercesByKind(t *testing.T) {
	s := schema.New()
	record := s.NewRecord()

	mustAssign(t, s, &record, schema.ExperienceYearsField, " 3 ")
	mustAssign(t, s, &record, schema.CurrentSalaryField, "12.5")
	mustAssign(t, s, &record, schema.ExpectedSalaryField, "-4")
	mustAssign(t, s, &record, schema.NoticePeriodDaysField, "soon")
	mustAssign(t, s, &record, schema.AvailableToJoinDaysField, "")
	mustAssign(t, s, &record, schema.ExperienceMonthsField, "1e999")
	mustAssign(t, s, &record, schema.NameField, "  padded  ")
	mustAssign(t, s, &record, schema.GenderField, "other")

	if record.ExperienceYears != 3 || record.CurrentSalary != 12.5 || record.ExpectedSalary != -4 {
		t.Fatalf("numeric coercion mismatch: %+v", record)
	}
	for name, value := range map[string]float64{
		"noticePeriodDays":    record.NoticePeriodDays,
		"availableToJoinDays": record.AvailableToJoinDays,
		"experienceMonths":    record.ExperienceMonths,
	} {
		if !math.IsNaN(value) {
			t.Fatalf("%s: expected NaN, got %v", name, value)
		}
	}
	if record.Name != "  padded  " {
		t.Fatalf("text should be stored verbatim, got %q", record.Name)
	}
	if record.Gender != schema.GenderOther {
		t.Fatalf("gender = %q", record.Gender)
	}
}

func TestAssign_UnknownField(t *testing.T) {
	s := schema.New()
	record := s.NewRecord()
	err := s.Assign(&record, "nickname", "x")
	if err == nil || !strings.Contains(err.Error(), "nickname") {
		t.Fatalf("expected unknown field error, got %v", err)
	}
}

func TestDisplay_RendersNumbersAndNaN(t *testing.T) {
	s := schema.New()
	record := testsupport.ValidRecord()
	record.CurrentSalary = 1250.5
	record.NoticePeriodDays = math.NaN()

	if got := s.Display(record, schema.CurrentSalaryField); got != "1250.5" {
		t.Fatalf("salary display = %q", got)
	}
	if got := s.Display(record, schema.NoticePeriodDaysField); got != "" {
		t.Fatalf("NaN display = %q", got)
	}
	if got := s.Display(record, "unknown"); got != "" {
		t.Fatalf("unknown display = %q", got)
	}
	if got := s.Values(record)["gender"]; got != "female" {
		t.Fatalf("values gender = %q", got)
	}
}

func TestFormModelProjection(t *testing.T) {
	s := schema.New()
	form := s.FormModel()

	if diff := cmp.Diff(s.Names(), form.FieldNames()); diff != "" {
		t.Fatalf("field order mismatch (-want +got):\n%s", diff)
	}

	months, ok := form.Field("experienceMonths")
	if !ok {
		t.Fatalf("experienceMonths missing")
	}
	if months.Type != "integer" || !months.Required || months.Label != "Experience months" {
		t.Fatalf("unexpected months field: %+v", months)
	}
	var kinds []string
	for _, rule := range months.Validations {
		kinds = append(kinds, rule.Kind+"="+rule.Params["value"])
	}
	if diff := cmp.Diff([]string{"min=0", "max=11"}, kinds); diff != "" {
		t.Fatalf("months rules mismatch (-want +got):\n%s", diff)
	}

	github, _ := form.Field("github")
	if github.Required || github.Label != "GitHub profile" || github.Format != "url" {
		t.Fatalf("unexpected github field: %+v", github)
	}
	gender, _ := form.Field("gender")
	if diff := cmp.Diff([]string{"male", "female", "other"}, gender.Enum); diff != "" {
		t.Fatalf("gender enum mismatch (-want +got):\n%s", diff)
	}
}

func mustAssign(t *testing.T, s *schema.Schema, record *schema.Record, name schema.FieldName, raw string) {
	t.Helper()
	if err := s.Assign(record, name, raw); err != nil {
		t.Fatalf("assign %s: %v", name, err)
	}
}
