package inline

import (
	"context"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// runEngine drives the transform over hand-written normalized CSS rooted
// at dir, returning the final artifact and the gathered stats.
func runEngine(t *testing.T, dir string, opts Options, normalized string) (string, Stats) {
	t.Helper()
	var stats Stats
	eng := newEngine(opts, NewResolver(dir, nil), &stats, nil)
	return eng.run(context.Background(), normalized), stats
}

func writeResource(t *testing.T, dir, name string, content []byte) {
	t.Helper()
	require.NoError(t, os.WriteFile(filepath.Join(dir, name), content, 0644))
}

func TestRunDataURI(t *testing.T) {
	t.Parallel()

	dir := t.TempDir()
	writeResource(t, dir, "logo.png", []byte{1, 2, 3, 4})

	out, stats := runEngine(t, dir, Options{Mode: ModeDataURI},
		".logo{\nbackground:url(logo.png);\n}\n")

	assert.Equal(t, ".logo{\nbackground:url(data:image/png;base64,AQIDBA==);\n}", out)
	assert.Equal(t, 1, stats.ReferencesFound)
	assert.Equal(t, 1, stats.ResourcesInlined)
	assert.EqualValues(t, 4, stats.PayloadBytes)
}

func TestRunMissingResourceDegrades(t *testing.T) {
	t.Parallel()

	out, stats := runEngine(t, t.TempDir(), Options{Mode: ModeDataURI},
		".logo{\nbackground:url(missing.png);\n}\n")

	// The reference stays as-is rather than becoming an empty or
	// malformed URI.
	assert.Contains(t, out, "background:url(missing.png);")
	assert.Equal(t, 1, stats.ResourcesMissing)
	assert.Equal(t, 0, stats.ResourcesInlined)
}

func TestRunHackLinesPassThroughInEveryMode(t *testing.T) {
	t.Parallel()

	dir := t.TempDir()
	writeResource(t, dir, "x.png", []byte{9})

	normalized := ".a{\n_background:url(x.png);\n*background:url(x.png);\n}\n"

	for _, mode := range []Mode{ModeUnified, ModeDataURI, ModeMHTML, ModeNoResources} {
		out, stats := runEngine(t, dir, Options{Mode: mode}, normalized)

		assert.Contains(t, out, "_background:url(x.png);", "mode %s", mode)
		assert.Contains(t, out, "*background:url(x.png);", "mode %s", mode)
		assert.Equal(t, 2, stats.HackLinesPreserved, "mode %s", mode)
	}
}

func TestRunStripRemovesEmptyBlocks(t *testing.T) {
	t.Parallel()

	normalized := strings.Join([]string{
		".icon{",
		"background:url(gone.png);",
		"}",
		".text{",
		"color:red;",
		"}",
		"",
	}, "\n")

	out, stats := runEngine(t, t.TempDir(), Options{Mode: ModeNoResources}, normalized)

	assert.NotContains(t, out, ".icon")
	assert.NotContains(t, out, "url(")
	assert.Contains(t, out, ".text{\ncolor:red;\n}")
	assert.Equal(t, 1, stats.BlocksRemoved)
}

func TestRunStripRemovesEmptyAtBlocks(t *testing.T) {
	t.Parallel()

	normalized := strings.Join([]string{
		"@media print{",
		".icon{",
		"background:url(gone.png);",
		"}",
		"}",
		"",
	}, "\n")

	out, _ := runEngine(t, t.TempDir(), Options{Mode: ModeNoResources}, normalized)

	// The inner block vanishes, leaving the media block empty; it must
	// vanish too.
	assert.Empty(t, out)
}

func TestRunMultiURLSplit(t *testing.T) {
	t.Parallel()

	dir := t.TempDir()
	writeResource(t, dir, "a.png", []byte{1})
	writeResource(t, dir, "b.png", []byte{2})

	out, stats := runEngine(t, dir, Options{Mode: ModeDataURI},
		".a{\nbackground:url(a.png), url(b.png);\n}\n")

	assert.Equal(t, 2, stats.ReferencesFound)
	assert.Equal(t, 2, stats.ResourcesInlined)
	assert.Contains(t, out, "background:url(data:image/png;base64,AQ==),")
	assert.Contains(t, out, "url(data:image/png;base64,Ag==);")
}

func TestRunMHTMLStructure(t *testing.T) {
	t.Parallel()

	dir := t.TempDir()
	writeResource(t, dir, "logo.png", []byte{1, 2, 3, 4})

	out, _ := runEngine(t, dir, Options{Mode: ModeMHTML, MHTMLBase: "http://example.com/all.css"},
		".logo{\nbackground:url(logo.png);\n}\n")

	assert.True(t, strings.HasPrefix(out, "/*\nContent-Type: multipart/related; boundary=\"|\"\n"))
	assert.Equal(t, 1, strings.Count(out, "--|\n"))
	assert.Equal(t, 1, strings.Count(out, "--|--"))
	assert.Equal(t, 1, strings.Count(out, "Content-Location:logo.png"))
	assert.Equal(t, 1, strings.Count(out, "Content-Transfer-Encoding:base64"))
	assert.Contains(t, out, "AQIDBA==")
	assert.Contains(t, out, "*background:url(mhtml:http://example.com/all.css!logo.png);")
	// The plain data-URI form is not part of mhtml-only output.
	assert.NotContains(t, out, "data:image/png")
}

func TestRunMHTMLSkipsMissingResources(t *testing.T) {
	t.Parallel()

	out, _ := runEngine(t, t.TempDir(), Options{Mode: ModeMHTML},
		".logo{\nbackground:url(missing.png);\n}\n")

	assert.NotContains(t, out, "Content-Location")
	assert.NotContains(t, out, "mhtml:")
}

func TestRunUnifiedEmitsBothForms(t *testing.T) {
	t.Parallel()

	dir := t.TempDir()
	writeResource(t, dir, "logo.png", []byte{1, 2, 3, 4})

	out, _ := runEngine(t, dir, Options{Mode: ModeUnified, MHTMLBase: "base.css"},
		".logo{\nbackground:url(logo.png);\n}\n")

	assert.Contains(t, out, "background:url(data:image/png;base64,AQIDBA==);")
	assert.Contains(t, out, "*background:url(mhtml:base.css!logo.png);")
	assert.Contains(t, out, "Content-Location:logo.png")
}

func TestRunUnifiedWithoutBaseOmitsMHTML(t *testing.T) {
	t.Parallel()

	dir := t.TempDir()
	writeResource(t, dir, "logo.png", []byte{1, 2, 3, 4})

	out, stats := runEngine(t, dir, Options{Mode: ModeUnified},
		".logo{\nbackground:url(logo.png);\n}\n")

	// Without a base there is no valid mhtml URI to build; the data-URI
	// form alone survives.
	assert.Contains(t, out, "background:url(data:image/png;base64,AQIDBA==);")
	assert.NotContains(t, out, "mhtml:")
	assert.NotContains(t, out, "*background")
	assert.NotContains(t, out, "multipart/related")
	assert.Equal(t, 1, stats.ResourcesInlined)
}

func TestRunMHTMLWithoutBaseOmitsReferences(t *testing.T) {
	t.Parallel()

	dir := t.TempDir()
	writeResource(t, dir, "logo.png", []byte{1, 2, 3, 4})

	out, _ := runEngine(t, dir, Options{Mode: ModeMHTML},
		".logo{\nbackground:url(logo.png);\n}\n")

	assert.NotContains(t, out, "mhtml:")
	assert.NotContains(t, out, "Content-Location")
}

func TestRunSeparatePartitionsCategories(t *testing.T) {
	t.Parallel()

	dir := t.TempDir()
	writeResource(t, dir, "logo.png", []byte{1, 2, 3, 4})

	normalized := strings.Join([]string{
		".mixed{",
		"color:red;",
		"background:url(logo.png);",
		"}",
		"",
	}, "\n")

	nores, _ := runEngine(t, dir, Options{Mode: ModeNoResources, Separate: true}, normalized)
	assert.NotContains(t, nores, "url(")
	assert.Contains(t, nores, "color:red;")

	datauri, _ := runEngine(t, dir, Options{Mode: ModeDataURI, Separate: true}, normalized)
	assert.NotContains(t, datauri, "mhtml:")
	assert.NotContains(t, datauri, "color:red;")
	assert.Contains(t, datauri, "background:url(data:image/png;base64,AQIDBA==);")
}

func TestRunFontFaceLinesPassThrough(t *testing.T) {
	t.Parallel()

	normalized := strings.Join([]string{
		"@font-face{",
		"font-family:\"Magda\";",
		"src:url(magda.woff);",
		"}",
		"",
	}, "\n")

	out, stats := runEngine(t, t.TempDir(), Options{Mode: ModeUnified}, normalized)

	// Font inlining is deferred: the src reference stays untouched even
	// though the file does not exist.
	assert.Contains(t, out, "src:url(magda.woff);")
	assert.Equal(t, 0, stats.ReferencesFound)
}

func TestRunStrayCloseBracePassesThrough(t *testing.T) {
	t.Parallel()

	out, _ := runEngine(t, t.TempDir(), Options{Mode: ModeDataURI}, "}\n.a{\ncolor:red;\n}\n")

	assert.Equal(t, "}\n.a{\ncolor:red;\n}", out)
}

func TestRunUnterminatedBlockGetsClosed(t *testing.T) {
	t.Parallel()

	out, stats := runEngine(t, t.TempDir(), Options{Mode: ModeDataURI},
		".a{\ncolor:red;")

	assert.Equal(t, ".a{\ncolor:red;\n}", out)
	assert.Equal(t, 0, stats.BlocksRemoved)
}

func TestRunUnterminatedEmptyBlockCounted(t *testing.T) {
	t.Parallel()

	out, stats := runEngine(t, t.TempDir(), Options{Mode: ModeNoResources},
		".icon{\nbackground:url(gone.png);")

	assert.Empty(t, out)
	assert.Equal(t, 1, stats.BlocksRemoved)
}

func TestStripComments(t *testing.T) {
	t.Parallel()

	in := "/* FILE: a.css */\n.a{\ncolor:red; /* inline */\n}\n/* multi\nline */\n"
	out := stripComments(in)

	assert.NotContains(t, out, "/*")
	assert.NotContains(t, out, "*/")
	assert.Contains(t, out, "color:red;")
}

func TestSplitMultiURL(t *testing.T) {
	t.Parallel()

	out := splitMultiURL("background:url(a.png), url(b.png), url(c.png);")
	lines := strings.Split(out, "\n")

	assert.Len(t, lines, 3)
	for _, line := range lines {
		assert.Equal(t, 1, strings.Count(line, "url("))
	}
}
