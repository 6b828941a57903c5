package configloader

import "github.com/mastermalone/css-unity/pkg/config"

// merge combines two configurations, with override taking precedence over base.
// The merge follows these rules:
//   - Scalar values: override overwrites base if override is non-zero
//   - Nil/unset values in override do not override values in base
func merge(base, override *config.Config) *config.Config {
	if base == nil {
		return override
	}
	if override == nil {
		return base
	}

	// Start with a shallow copy of base
	result := *base

	// Scalars: override overwrites base if set (non-zero value)
	if override.Mode != "" {
		result.Mode = override.Mode
	}
	if override.MHTMLBase != "" {
		result.MHTMLBase = override.MHTMLBase
	}
	if override.Output != "" {
		result.Output = override.Output
	}
	if override.Color != "" {
		result.Color = override.Color
	}

	// Booleans: these are tricky because false is the zero value.
	// We check if they're true in override, so a config file cannot unset
	// a value set by a lower layer. Explicitly set CLI flags bypass this
	// via LoadOptions.CLIExplicit.
	if override.Separate {
		result.Separate = override.Separate
	}
	if override.Recursive {
		result.Recursive = override.Recursive
	}
	if override.Summary {
		result.Summary = override.Summary
	}

	return &result
}

// MergeAll merges multiple configurations in order, with later configs taking precedence.
func MergeAll(configs ...*config.Config) *config.Config {
	if len(configs) == 0 {
		return nil
	}

	result := configs[0]
	for i := 1; i < len(configs); i++ {
		result = merge(result, configs[i])
	}
	return result
}
