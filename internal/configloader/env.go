package configloader

import (
	"fmt"
	"os"
	"strconv"

	"github.com/mastermalone/css-unity/pkg/config"
)

// envVarPrefix is the prefix for all cssunity environment variables.
const envVarPrefix = "CSSUNITY_"

// envFieldType represents the type of a configuration field.
type envFieldType int

const (
	envTypeString envFieldType = iota
	envTypeBool
)

// envMapping defines environment variable to config field mappings.
type envMapping struct {
	field string
	typ   envFieldType
}

// envMappings maps environment variable names (without prefix) to config fields.
//
//nolint:gochecknoglobals // Read-only lookup table.
var envMappings = map[string]envMapping{
	"MODE":       {field: "mode", typ: envTypeString},
	"SEPARATE":   {field: "separate", typ: envTypeBool},
	"MHTML_BASE": {field: "mhtml_base", typ: envTypeString},
	"OUTPUT":     {field: "output", typ: envTypeString},
	"COLOR":      {field: "color", typ: envTypeString},
}

// LoadFromEnv applies environment variable overrides to the configuration.
// Environment variables are prefixed with CSSUNITY_ (e.g., CSSUNITY_MODE).
func LoadFromEnv(cfg *config.Config) error {
	if cfg == nil {
		return nil
	}

	for envSuffix, mapping := range envMappings {
		envVar := envVarPrefix + envSuffix
		value := os.Getenv(envVar)
		if value == "" {
			continue
		}

		if err := applyEnvValue(cfg, mapping, value, envVar); err != nil {
			return err
		}
	}

	return nil
}

// applyEnvValue applies a single environment variable value to the config.
func applyEnvValue(cfg *config.Config, mapping envMapping, value, envVar string) error {
	switch mapping.typ {
	case envTypeString:
		return setStringField(cfg, mapping.field, value)
	case envTypeBool:
		b, err := strconv.ParseBool(value)
		if err != nil {
			return fmt.Errorf("invalid boolean for %s: %q (expected true/false/1/0)", envVar, value)
		}
		return setBoolField(cfg, mapping.field, b)
	default:
		return fmt.Errorf("unknown field type for %s", envVar)
	}
}

// setStringField sets a string field on the config by field path.
func setStringField(cfg *config.Config, field, value string) error {
	switch field {
	case "mode":
		cfg.Mode = value
	case "mhtml_base":
		cfg.MHTMLBase = value
	case "output":
		cfg.Output = value
	case "color":
		cfg.Color = config.ColorMode(value)
	default:
		return fmt.Errorf("unknown string field: %s", field)
	}
	return nil
}

// setBoolField sets a boolean field on the config by field path.
func setBoolField(cfg *config.Config, field string, value bool) error {
	switch field {
	case "separate":
		cfg.Separate = value
	default:
		return fmt.Errorf("unknown boolean field: %s", field)
	}
	return nil
}

// GetEnvVarName returns the full environment variable name for a config field.
func GetEnvVarName(field string) string {
	for suffix, mapping := range envMappings {
		if mapping.field == field {
			return envVarPrefix + suffix
		}
	}
	return ""
}

// ListEnvVars returns a list of all supported environment variables with their descriptions.
func ListEnvVars() map[string]string {
	return map[string]string{
		"CSSUNITY_MODE":       "Inlining mode: unified, datauri, mhtml, or nores",
		"CSSUNITY_SEPARATE":   "Emit one stylesheet per category: true or false",
		"CSSUNITY_MHTML_BASE": "Absolute URL of the generated stylesheet",
		"CSSUNITY_OUTPUT":     "Output path for the inlined stylesheet",
		"CSSUNITY_COLOR":      "Styled terminal output: auto, always, or never",
	}
}
