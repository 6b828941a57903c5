package config_test

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mastermalone/css-unity/pkg/config"
)

func TestNewConfigDefaults(t *testing.T) {
	t.Parallel()

	cfg := config.NewConfig()

	assert.Equal(t, "unified", cfg.Mode)
	assert.False(t, cfg.Separate)
	assert.Equal(t, config.ColorAuto, cfg.Color)
	assert.Empty(t, cfg.Output)
}

func TestColorModeIsValid(t *testing.T) {
	t.Parallel()

	for _, mode := range []config.ColorMode{config.ColorAuto, config.ColorAlways, config.ColorNever} {
		assert.True(t, mode.IsValid(), string(mode))
	}
	assert.False(t, config.ColorMode("rainbow").IsValid())
}

func TestYAMLRoundTrip(t *testing.T) {
	t.Parallel()

	cfg := config.NewConfig()
	cfg.Mode = "mhtml"
	cfg.Separate = true
	cfg.MHTMLBase = "http://example.com/all.css"
	cfg.Output = "dist/all.css"

	data, err := cfg.ToYAML()
	require.NoError(t, err)

	parsed, err := config.FromYAML(data)
	require.NoError(t, err)

	assert.Equal(t, cfg.Mode, parsed.Mode)
	assert.Equal(t, cfg.Separate, parsed.Separate)
	assert.Equal(t, cfg.MHTMLBase, parsed.MHTMLBase)
	assert.Equal(t, cfg.Output, parsed.Output)
}

func TestYAMLOmitsCLIFields(t *testing.T) {
	t.Parallel()

	cfg := config.NewConfig()
	cfg.Recursive = true
	cfg.Summary = true

	data, err := cfg.ToYAML()
	require.NoError(t, err)

	assert.NotContains(t, string(data), "recursive")
	assert.NotContains(t, string(data), "summary")
}

func TestToYAMLWithHeader(t *testing.T) {
	t.Parallel()

	data, err := config.NewConfig().ToYAMLWithHeader("# generated")
	require.NoError(t, err)

	assert.True(t, strings.HasPrefix(string(data), "# generated\n"))
	assert.Contains(t, string(data), "mode: unified")
}

func TestFromYAMLInvalid(t *testing.T) {
	t.Parallel()

	_, err := config.FromYAML([]byte("mode: [unclosed"))
	assert.Error(t, err)
}

func TestClone(t *testing.T) {
	t.Parallel()

	cfg := config.NewConfig()
	cfg.Mode = "datauri"
	cfg.Summary = true

	clone := cfg.Clone()
	require.NotNil(t, clone)
	clone.Mode = "nores"

	assert.Equal(t, "datauri", cfg.Mode)
	assert.True(t, clone.Summary)
}

func TestGenerateTemplateParses(t *testing.T) {
	t.Parallel()

	cfg, err := config.FromYAML(config.GenerateTemplate())
	require.NoError(t, err)
	assert.Equal(t, "unified", cfg.Mode)
}
