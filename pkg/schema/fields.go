package schema

import (
	"errors"
	"math"
	"strconv"
	"strings"
)

// ErrUnknownField is returned when a field name is not part of the schema.
var ErrUnknownField = errors.New("schema: unknown field")

// FieldName identifies one slot of Record.
type FieldName string

const (
	NameField                FieldName = "name"
	GenderField              FieldName = "gender"
	EmailField               FieldName = "email"
	PhoneField               FieldName = "phone"
	GitHubField              FieldName = "github"
	ExperienceYearsField     FieldName = "experienceYears"
	ExperienceMonthsField    FieldName = "experienceMonths"
	CurrentSalaryField       FieldName = "currentSalary"
	ExpectedSalaryField      FieldName = "expectedSalary"
	AvailableToJoinDaysField FieldName = "availableToJoinDays"
	PreferredLocationField   FieldName = "preferredLocation"
	CurrentLocationField     FieldName = "currentLocation"
	ReasonForChangeField     FieldName = "reasonForChange"
	ReferredByField          FieldName = "referredBy"
	NoticePeriodDaysField    FieldName = "noticePeriodDays"
	MessageField             FieldName = "message"
)

// Kind selects how a field is coerced from raw input and which constraint
// family applies to it.
type Kind string

const (
	KindText    Kind = "text"
	KindEnum    Kind = "enum"
	KindInteger Kind = "integer"
	KindNumber  Kind = "number"
)

// Numeric reports whether raw input for the kind is parsed as a number.
func (k Kind) Numeric() bool {
	return k == KindInteger || k == KindNumber
}

const (
	FormatEmail    = "email"
	FormatURL      = "url"
	FormatPhone    = "tel"
	FormatTextArea = "textarea"
)

// Field describes one slot of Record: how raw input is coerced into it and the
// single constraint it must satisfy. Message is reported verbatim when the
// constraint fails, whatever the reason (empty, too short, malformed).
type Field struct {
	Name      FieldName
	Label     string
	Kind      Kind
	Optional  bool
	Format    string
	MinLength int
	Min       *float64
	Max       *float64
	Options   []string
	Message   string

	text   func(*Record) *string
	number func(*Record) *float64
}

// assign coerces raw and stores it into r. Numeric input that does not parse
// to a finite number is stored as NaN.
func (f Field) assign(r *Record, raw string) {
	if f.Kind.Numeric() {
		*f.number(r) = parseNumber(raw)
		return
	}
	*f.text(r) = raw
}

// display renders the stored value as text. NaN renders empty.
func (f Field) display(r *Record) string {
	if f.Kind.Numeric() {
		value := *f.number(r)
		if math.IsNaN(value) {
			return ""
		}
		return strconv.FormatFloat(value, 'f', -1, 64)
	}
	return *f.text(r)
}

func (f Field) valid(r *Record) bool {
	if f.Kind.Numeric() {
		return inRange(*f.number(r), f.Min, f.Max)
	}

	value := *f.text(r)
	if f.Optional && value == "" {
		return true
	}
	switch f.Kind {
	case KindEnum:
		return oneOf(value, f.Options)
	default:
		if runeLen(value) < f.MinLength {
			return false
		}
		switch f.Format {
		case FormatEmail:
			return isEmail(value)
		case FormatURL:
			return isURL(value)
		}
		return true
	}
}

func parseNumber(raw string) float64 {
	value, err := strconv.ParseFloat(strings.TrimSpace(raw), 64)
	if err != nil || math.IsInf(value, 0) {
		return math.NaN()
	}
	return value
}

func bound(v float64) *float64 {
	return &v
}

func buildFields(locations []string) []Field {
	genders := make([]string, 0, len(Genders()))
	for _, g := range Genders() {
		genders = append(genders, string(g))
	}

	return []Field{
		{
			Name: NameField, Kind: KindText, MinLength: 2,
			Message: "Name must be at least 2 characters",
			text:    func(r *Record) *string { return &r.Name },
		},
		{
			Name: GenderField, Kind: KindEnum, Options: genders,
			Message: "Please select a gender",
			text:    func(r *Record) *string { return (*string)(&r.Gender) },
		},
		{
			Name: EmailField, Kind: KindText, Format: FormatEmail,
			Message: "Please enter a valid email address",
			text:    func(r *Record) *string { return &r.Email },
		},
		{
			Name: PhoneField, Kind: KindText, Format: FormatPhone, MinLength: 10,
			Message: "Phone number must be at least 10 characters",
			text:    func(r *Record) *string { return &r.Phone },
		},
		{
			Name: GitHubField, Label: "GitHub profile", Kind: KindText, Format: FormatURL, Optional: true,
			Message: "Please enter a valid URL",
			text:    func(r *Record) *string { return &r.GitHub },
		},
		{
			Name: ExperienceYearsField, Kind: KindInteger, Min: bound(0),
			Message: "Experience years must be 0 or more",
			number:  func(r *Record) *float64 { return &r.ExperienceYears },
		},
		{
			Name: ExperienceMonthsField, Kind: KindInteger, Min: bound(0), Max: bound(11),
			Message: "Experience months must be between 0 and 11",
			number:  func(r *Record) *float64 { return &r.ExperienceMonths },
		},
		{
			Name: CurrentSalaryField, Kind: KindNumber, Min: bound(0),
			Message: "Current salary must be 0 or more",
			number:  func(r *Record) *float64 { return &r.CurrentSalary },
		},
		{
			Name: ExpectedSalaryField, Kind: KindNumber, Min: bound(0),
			Message: "Expected salary must be 0 or more",
			number:  func(r *Record) *float64 { return &r.ExpectedSalary },
		},
		{
			Name: AvailableToJoinDaysField, Label: "Available to join (days)", Kind: KindInteger, Min: bound(0),
			Message: "Available to join days must be 0 or more",
			number:  func(r *Record) *float64 { return &r.AvailableToJoinDays },
		},
		{
			Name: PreferredLocationField, Kind: KindEnum, Options: locations,
			Message: "Please select a preferred location",
			text:    func(r *Record) *string { return &r.PreferredLocation },
		},
		{
			Name: CurrentLocationField, Kind: KindText, MinLength: 2,
			Message: "Current location must be at least 2 characters",
			text:    func(r *Record) *string { return &r.CurrentLocation },
		},
		{
			Name: ReasonForChangeField, Kind: KindText, Format: FormatTextArea, MinLength: 10,
			Message: "Reason for change must be at least 10 characters",
			text:    func(r *Record) *string { return &r.ReasonForChange },
		},
		{
			Name: ReferredByField, Kind: KindText, Optional: true,
			text: func(r *Record) *string { return &r.ReferredBy },
		},
		{
			Name: NoticePeriodDaysField, Label: "Notice period (days)", Kind: KindInteger, Min: bound(0),
			Message: "Notice period days must be 0 or more",
			number:  func(r *Record) *float64 { return &r.NoticePeriodDays },
		},
		{
			Name: MessageField, Kind: KindText, Format: FormatTextArea, MinLength: 10,
			Message: "Message must be at least 10 characters",
			text:    func(r *Record) *string { return &r.Message },
		},
	}
}
