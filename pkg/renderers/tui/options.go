package tui

import (
	"github.com/goliatone/go-applyform/internal/logger"
	"github.com/goliatone/go-applyform/pkg/validation"
)

// OutputFormat controls how the submitted record is serialized.
type OutputFormat string

const (
	// OutputFormatJSON emits application/json payloads.
	OutputFormatJSON OutputFormat = "json"
	// OutputFormatFormURLEncoded emits application/x-www-form-urlencoded payloads.
	OutputFormatFormURLEncoded OutputFormat = "form"
	// OutputFormatPrettyText emits one "Label: value" line per field.
	OutputFormatPrettyText OutputFormat = "pretty"
)

// ParseOutputFormat validates a format name coming from flags or config.
func ParseOutputFormat(raw string) (OutputFormat, bool) {
	switch f := OutputFormat(raw); f {
	case OutputFormatJSON, OutputFormatFormURLEncoded, OutputFormatPrettyText:
		return f, true
	case "":
		return OutputFormatJSON, true
	}
	return "", false
}

// Theme holds message prefixes. ANSI styling is left to the caller.
type Theme struct {
	PromptPrefix string
	InfoPrefix   string
	ErrorPrefix  string
}

// DefaultTheme marks errors so they stand out in plain terminals.
var DefaultTheme = Theme{ErrorPrefix: "✗ ", InfoPrefix: "✓ "}

// Option configures the Runner.
type Option func(*Runner)

// WithPromptDriver overrides the survey driver.
func WithPromptDriver(driver PromptDriver) Option {
	return func(r *Runner) {
		if driver != nil {
			r.driver = driver
		}
	}
}

// WithOutputFormat selects the output serialization format.
func WithOutputFormat(format OutputFormat) Option {
	return func(r *Runner) {
		if format != "" {
			r.outputFormat = format
		}
	}
}

// WithTheme applies message prefixes.
func WithTheme(theme Theme) Option {
	return func(r *Runner) {
		r.theme = theme
	}
}

// WithLogger sets the structured logger.
func WithLogger(l logger.Logger) Option {
	return func(r *Runner) {
		if l != nil {
			r.logger = l
		}
	}
}

// WithMaxAttempts bounds the number of submit attempts. Zero or less means
// unlimited.
func WithMaxAttempts(n int) Option {
	return func(r *Runner) {
		r.maxAttempts = n
	}
}

// WithSubmitHook is called after every submit attempt with the rejection
// errors, or nil when the submit was accepted.
func WithSubmitHook(fn func(validation.ErrorMap)) Option {
	return func(r *Runner) {
		r.onSubmit = fn
	}
}
