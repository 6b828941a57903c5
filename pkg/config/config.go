// Package config defines core configuration types for cssunity.
// These types are pure data structures with no dependencies on the config
// loader or the inlining engine.
package config

// ColorMode controls when styled terminal output is used.
type ColorMode string

const (
	ColorAuto   ColorMode = "auto"
	ColorAlways ColorMode = "always"
	ColorNever  ColorMode = "never"
)

// IsValid returns true if the color mode is valid.
func (c ColorMode) IsValid() bool {
	switch c {
	case ColorAuto, ColorAlways, ColorNever:
		return true
	default:
		return false
	}
}

// Config is the root configuration structure for cssunity.
type Config struct {
	// Mode selects the inlining strategy: "unified", "datauri", "mhtml",
	// or "nores".
	Mode string `mapstructure:"mode" yaml:"mode"`

	// Separate emits one stylesheet per target category instead of a
	// single unified sheet.
	Separate bool `mapstructure:"separate" yaml:"separate"`

	// MHTMLBase is the absolute URL at which the generated stylesheet
	// will be served. Required to build mhtml: references.
	MHTMLBase string `mapstructure:"mhtml_base" yaml:"mhtml_base"`

	// Output is the path the inlined stylesheet is written to.
	// Empty means stdout.
	Output string `mapstructure:"output" yaml:"output"`

	// Color controls styled terminal output.
	Color ColorMode `mapstructure:"color" yaml:"color"`

	// CLI-level options (not persisted to config files).

	// Recursive descends into nested directories when expanding inputs.
	Recursive bool `mapstructure:"-" yaml:"-"`

	// Summary prints run statistics after writing output.
	Summary bool `mapstructure:"-" yaml:"-"`
}

// NewConfig returns a Config with sensible defaults.
func NewConfig() *Config {
	return &Config{
		Mode:  "unified",
		Color: ColorAuto,
	}
}
