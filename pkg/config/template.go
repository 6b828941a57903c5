package config

// GenerateTemplate creates a commented starter configuration file.
func GenerateTemplate() []byte {
	return []byte(`# cssunity configuration
# See: https://github.com/mastermalone/css-unity

# Inlining strategy: unified, datauri, mhtml, or nores
mode: unified

# Emit one stylesheet per target category instead of a unified sheet
# separate: false

# Absolute URL of the generated stylesheet, used for mhtml: references
# mhtml_base: "http://example.com/css/all.css"

# Output path for the inlined stylesheet (empty = stdout)
# output: "dist/all.css"

# Styled terminal output: auto, always, or never
# color: auto
`)
}

// DefaultTemplateHeader returns the default header for generated configs.
func DefaultTemplateHeader() string {
	return `# cssunity configuration
# See: https://github.com/mastermalone/css-unity`
}
