package inline

import (
	"regexp"
	"strings"
)

// resourcePattern matches one url(...) reference and captures the referenced
// filepath, the file name without extension, and the extension. Lines are
// pre-split so at most one reference appears per line.
var resourcePattern = regexp.MustCompile(`url\(\s*['"]?([^'"()\s]*?([\w*-]+)\.([A-Za-z0-9]+))['"]?\s*\)`)

// Match is one url(...) resource reference extracted from a line.
// Filepath is the exact substring to replace in the rewritten line.
type Match struct {
	Filepath string
	Name     string
	Ext      string
}

// matchResource extracts the resource reference from line, or nil when the
// line carries none. Absolute and already-inlined references are left alone.
func matchResource(line string) *Match {
	groups := resourcePattern.FindStringSubmatch(line)
	if groups == nil {
		return nil
	}

	m := &Match{Filepath: groups[1], Name: groups[2], Ext: groups[3]}
	if strings.Contains(m.Filepath, "://") ||
		strings.HasPrefix(m.Filepath, "data:") ||
		strings.HasPrefix(m.Filepath, "mhtml:") {
		return nil
	}
	return m
}

// isHackLine reports whether the declaration uses a legacy browser hack
// prefix. Hack-prefixed declarations are never rewritten; preserving them
// verbatim is the safe behavior.
func isHackLine(line string, m *Match) bool {
	return strings.HasPrefix(line, "_") || strings.HasPrefix(line, "*") ||
		strings.HasPrefix(m.Filepath, "_") || strings.HasPrefix(m.Filepath, "*")
}

// dataURI formats a data: URI from a MIME type and a base64 payload.
func dataURI(mimeType, payload string) string {
	return "data:" + mimeType + ";base64," + payload
}

// mhtmlURI formats an mhtml: URI referencing a part of the multipart
// document rooted at base.
func mhtmlURI(base, location string) string {
	return "mhtml:" + base + "!" + location
}

// contentLocation derives the MHTML Content-Location for a referenced
// filepath: every slash becomes an underscore.
func contentLocation(path string) string {
	return strings.ReplaceAll(path, "/", "_")
}
