// Package inline implements the single-pass CSS transformer that rewrites
// url(...) resource references into base64 data: URIs, MHTML parts, or
// strips them entirely. It operates line-by-line over normalized CSS with
// lookbehind state rather than a grammar-complete parser; that trade-off is
// deliberate and should be preserved.
package inline

import "fmt"

// Mode selects the output form of a Parse invocation.
type Mode string

const (
	// ModeUnified emits both data-URI and MHTML forms in one stylesheet.
	ModeUnified Mode = "unified"

	// ModeDataURI emits data: URIs only.
	ModeDataURI Mode = "datauri"

	// ModeMHTML emits MHTML references and the MHTML multipart comment only.
	ModeMHTML Mode = "mhtml"

	// ModeNoResources strips all resource references.
	ModeNoResources Mode = "nores"
)

// ParseMode converts a mode string to a Mode. The empty string selects
// ModeUnified, the default.
func ParseMode(s string) (Mode, error) {
	switch Mode(s) {
	case "", ModeUnified:
		return ModeUnified, nil
	case ModeDataURI, ModeMHTML, ModeNoResources:
		return Mode(s), nil
	default:
		return "", fmt.Errorf("unknown mode %q (want unified, datauri, mhtml, or nores)", s)
	}
}

// wantData reports whether the mode emits data-URI lines.
func (m Mode) wantData() bool {
	return m == ModeUnified || m == ModeDataURI
}

// wantMHTML reports whether the mode emits MHTML lines and parts.
func (m Mode) wantMHTML() bool {
	return m == ModeUnified || m == ModeMHTML
}

// resourceOnly reports whether, under separate partitioning, only
// resource-bearing lines survive.
func (m Mode) resourceOnly() bool {
	return m == ModeDataURI || m == ModeMHTML
}

// Options controls a single Parse invocation.
type Options struct {
	// Mode selects the output form. Zero value means ModeUnified.
	Mode Mode

	// Separate partitions lines by category instead of merging: datauri
	// and mhtml outputs keep only rewritten resource lines, nores keeps
	// only plain lines. Ignored in unified mode.
	Separate bool

	// MHTMLBase is the base URI used in mhtml:<base>!<location>
	// references. It must be supplied explicitly; there is no ambient
	// request context to derive it from. When empty, modes that would
	// emit mhtml references omit them instead of producing unresolvable
	// URIs.
	MHTMLBase string
}

// Stats summarizes one Parse invocation.
type Stats struct {
	FilesCombined      int
	ReferencesFound    int
	ResourcesInlined   int
	ResourcesMissing   int
	HackLinesPreserved int
	BlocksRemoved      int
	PayloadBytes       int64
}
