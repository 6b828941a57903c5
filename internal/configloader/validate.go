package configloader

import (
	"fmt"
	"strings"

	"github.com/mastermalone/css-unity/pkg/config"
	"github.com/mastermalone/css-unity/pkg/inline"
)

// ValidationError represents a configuration validation error.
type ValidationError struct {
	// Field is the path to the invalid field (e.g., "mode").
	Field string

	// Value is the invalid value.
	Value any

	// Message describes the validation error.
	Message string

	// FilePath is the config file containing the error (if known).
	FilePath string
}

// Error implements the error interface.
func (e *ValidationError) Error() string {
	var parts []string

	if e.FilePath != "" {
		parts = append(parts, e.FilePath)
	}

	if e.Field != "" {
		parts = append(parts, e.Field)
	}

	parts = append(parts, e.Message)

	return strings.Join(parts, ": ")
}

// ValidationResult contains all validation findings.
type ValidationResult struct {
	// Errors are validation failures that prevent loading.
	Errors []ValidationError

	// Warnings are non-fatal issues.
	Warnings []ValidationError
}

// Valid returns true if there are no errors.
func (r *ValidationResult) Valid() bool {
	return len(r.Errors) == 0
}

// HasWarnings returns true if there are any warnings.
func (r *ValidationResult) HasWarnings() bool {
	return len(r.Warnings) > 0
}

// AllMessages returns all error and warning messages combined.
func (r *ValidationResult) AllMessages() []string {
	messages := make([]string, 0, len(r.Errors)+len(r.Warnings))
	for _, e := range r.Errors {
		messages = append(messages, "error: "+e.Error())
	}
	for _, w := range r.Warnings {
		messages = append(messages, "warning: "+w.Error())
	}
	return messages
}

// Validate checks a configuration for errors and warnings.
func Validate(cfg *config.Config) *ValidationResult {
	result := &ValidationResult{}

	if cfg == nil {
		result.Errors = append(result.Errors, ValidationError{
			Message: "configuration is nil",
		})
		return result
	}

	mode, err := inline.ParseMode(cfg.Mode)
	if err != nil {
		result.Errors = append(result.Errors, ValidationError{
			Field:   "mode",
			Value:   cfg.Mode,
			Message: fmt.Sprintf("unknown mode %q (expected unified, datauri, mhtml, or nores)", cfg.Mode),
		})
		return result
	}

	if cfg.Color != "" && !cfg.Color.IsValid() {
		result.Errors = append(result.Errors, ValidationError{
			Field:   "color",
			Value:   cfg.Color,
			Message: fmt.Sprintf("unknown color mode %q (expected auto, always, or never)", cfg.Color),
		})
	}

	// MHTML output embeds the stylesheet's own URL in every reference, so
	// the base must be known whenever an mhtml sheet will be produced.
	needsBase := mode == inline.ModeMHTML || cfg.Separate
	if needsBase && cfg.MHTMLBase == "" {
		result.Errors = append(result.Errors, ValidationError{
			Field:   "mhtml_base",
			Message: "required when mhtml output is produced",
		})
	}

	// Unified output carries mhtml references too, but degrades cleanly
	// without the base: the references are omitted, not broken. Warn
	// instead of refusing to run.
	if mode == inline.ModeUnified && !cfg.Separate && cfg.MHTMLBase == "" {
		result.Warnings = append(result.Warnings, ValidationError{
			Field:   "mhtml_base",
			Message: "not set; unified output will omit mhtml references",
		})
	}

	if cfg.MHTMLBase != "" && !strings.Contains(cfg.MHTMLBase, "://") {
		result.Warnings = append(result.Warnings, ValidationError{
			Field:   "mhtml_base",
			Value:   cfg.MHTMLBase,
			Message: "not an absolute URL; mhtml references may not resolve",
		})
	}

	return result
}
