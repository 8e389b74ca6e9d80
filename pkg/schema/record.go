package schema

// Gender is the enumerated value of the gender field. The zero value means no
// selection has been made.
type Gender string

const (
	GenderMale   Gender = "male"
	GenderFemale Gender = "female"
	GenderOther  Gender = "other"
)

// Genders lists the accepted gender values in display order.
func Genders() []Gender {
	return []Gender{GenderMale, GenderFemale, GenderOther}
}

// Record is the application draft. Numeric fields hold float64 so malformed
// input can be represented as NaN until validation rejects it. Optional text
// fields are absent when empty.
type Record struct {
	Name                string  `json:"name"`
	Gender              Gender  `json:"gender"`
	Email               string  `json:"email"`
	Phone               string  `json:"phone"`
	GitHub              string  `json:"github,omitempty"`
	ExperienceYears     float64 `json:"experienceYears"`
	ExperienceMonths    float64 `json:"experienceMonths"`
	CurrentSalary       float64 `json:"currentSalary"`
	ExpectedSalary      float64 `json:"expectedSalary"`
	AvailableToJoinDays float64 `json:"availableToJoinDays"`
	PreferredLocation   string  `json:"preferredLocation"`
	CurrentLocation     string  `json:"currentLocation"`
	ReasonForChange     string  `json:"reasonForChange"`
	ReferredBy          string  `json:"referredBy,omitempty"`
	NoticePeriodDays    float64 `json:"noticePeriodDays"`
	Message             string  `json:"message"`
}

// DefaultLocations is the location set used when no override is configured.
var DefaultLocations = []string{
	"Bangalore",
	"Chennai",
	"Delhi NCR",
	"Hyderabad",
	"Mumbai",
	"Pune",
	"Remote",
}
