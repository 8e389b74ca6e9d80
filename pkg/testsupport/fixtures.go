package testsupport

import (
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/google/go-cmp/cmp/cmpopts"

	"github.com/goliatone/go-applyform/pkg/schema"
)

// ValidRecord returns a record that satisfies every constraint of the default
// schema.
func ValidRecord() schema.Record {
	return schema.Record{
		Name:                "Ada Lovelace",
		Gender:              schema.GenderFemale,
		Email:               "ada@example.com",
		Phone:               "+91 98765 43210",
		GitHub:              "https://github.com/ada",
		ExperienceYears:     7,
		ExperienceMonths:    4,
		CurrentSalary:       1800000,
		ExpectedSalary:      2400000,
		AvailableToJoinDays: 30,
		PreferredLocation:   "Bangalore",
		CurrentLocation:     "Pune",
		ReasonForChange:     "Looking for larger scale problems",
		ReferredBy:          "Charles Babbage",
		NoticePeriodDays:    60,
		Message:             "Happy to walk through my recent work.",
	}
}

// ValidInput is ValidRecord expressed as raw field edits, the way a
// presentation layer delivers them.
func ValidInput() map[string]string {
	return map[string]string{
		"name":                "Ada Lovelace",
		"gender":              "female",
		"email":               "ada@example.com",
		"phone":               "+91 98765 43210",
		"github":              "https://github.com/ada",
		"experienceYears":     "7",
		"experienceMonths":    "4",
		"currentSalary":       "1800000",
		"expectedSalary":      "2400000",
		"availableToJoinDays": "30",
		"preferredLocation":   "Bangalore",
		"currentLocation":     "Pune",
		"reasonForChange":     "Looking for larger scale problems",
		"referredBy":          "Charles Babbage",
		"noticePeriodDays":    "60",
		"message":             "Happy to walk through my recent work.",
	}
}

// AssertRecord compares records treating NaN values as equal.
func AssertRecord(t *testing.T, want, got schema.Record) {
	t.Helper()
	if diff := cmp.Diff(want, got, cmpopts.EquateNaNs()); diff != "" {
		t.Fatalf("record mismatch (-want +got):\n%s", diff)
	}
}
