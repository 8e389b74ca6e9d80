package schema

import (
	"math"
	"net/url"
	"unicode/utf8"

	"github.com/go-playground/validator/v10"
)

var formats = validator.New()

func runeLen(value string) int {
	return utf8.RuneCountInString(value)
}

func inRange(value float64, lower, upper *float64) bool {
	if math.IsNaN(value) {
		return false
	}
	if lower != nil && value < *lower {
		return false
	}
	if upper != nil && value > *upper {
		return false
	}
	return true
}

func oneOf(value string, options []string) bool {
	for _, option := range options {
		if value == option {
			return true
		}
	}
	return false
}

func isEmail(value string) bool {
	return formats.Var(value, "required,email") == nil
}

// isURL accepts absolute http(s) URLs with a host.
func isURL(value string) bool {
	if formats.Var(value, "required,url") != nil {
		return false
	}
	parsed, err := url.Parse(value)
	if err != nil {
		return false
	}
	return (parsed.Scheme == "http" || parsed.Scheme == "https") && parsed.Host != ""
}
