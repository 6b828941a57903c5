// Package logging provides a structured logging wrapper around charmbracelet/log.
package logging

// Field name constants for structured logging.
// Using constants prevents typos and enables IDE autocomplete.
const (
	// Common fields.
	FieldError      = "error"
	FieldPath       = "path"
	FieldPaths      = "paths"
	FieldInput      = "input"
	FieldOutput     = "output"
	FieldWorkingDir = "working_dir"

	// Configuration fields.
	FieldMode      = "mode"
	FieldSeparate  = "separate"
	FieldMHTMLBase = "mhtml_base"

	// Statistics fields.
	FieldFilesCombined    = "files_combined"
	FieldReferencesFound  = "references_found"
	FieldResourcesInlined = "resources_inlined"
	FieldResourcesMissing = "resources_missing"
	FieldBlocksRemoved    = "blocks_removed"
	FieldPayloadBytes     = "payload_bytes"

	// Version fields.
	FieldVersion = "version"
	FieldCommit  = "commit"
	FieldBuilt   = "built"
)
