package pretty_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/mastermalone/css-unity/internal/ui/pretty"
	"github.com/mastermalone/css-unity/pkg/inline"
)

func TestFormatSummaryOneLine(t *testing.T) {
	styles := pretty.NewStyles(false)

	out := styles.FormatSummaryOneLine(inline.Stats{
		FilesCombined:    3,
		ReferencesFound:  5,
		ResourcesInlined: 4,
		ResourcesMissing: 1,
		PayloadBytes:     2048,
	})

	assert.Contains(t, out, "5 references in 3 files")
	assert.Contains(t, out, "4 inlined")
	assert.Contains(t, out, "1 missing")
	assert.Contains(t, out, "2.0 KB embedded")
}

func TestFormatSummaryOneLineNoReferences(t *testing.T) {
	styles := pretty.NewStyles(false)

	out := styles.FormatSummaryOneLine(inline.Stats{FilesCombined: 1})

	assert.Contains(t, out, "No resource references found")
	assert.Contains(t, out, "1 file combined")
}

func TestFormatSummaryOneLineSingular(t *testing.T) {
	styles := pretty.NewStyles(false)

	out := styles.FormatSummaryOneLine(inline.Stats{
		FilesCombined:   1,
		ReferencesFound: 1,
	})

	assert.Contains(t, out, "1 reference in 1 file")
}

func TestFormatSummaryBlock(t *testing.T) {
	styles := pretty.NewStyles(false)

	out := styles.FormatSummary(inline.Stats{
		FilesCombined:    2,
		ReferencesFound:  4,
		ResourcesInlined: 4,
		BlocksRemoved:    1,
		PayloadBytes:     100,
	})

	assert.Contains(t, out, "Summary")
	assert.Contains(t, out, "Files combined:    2")
	assert.Contains(t, out, "References found:  4")
	assert.Contains(t, out, "Resources inlined: 4")
	assert.Contains(t, out, "Blocks removed:    1")
	assert.Contains(t, out, "100 B")
	assert.Contains(t, out, "Completed")
}

func TestFormatSummaryMissingResources(t *testing.T) {
	styles := pretty.NewStyles(false)

	out := styles.FormatSummary(inline.Stats{
		FilesCombined:    1,
		ReferencesFound:  2,
		ResourcesInlined: 1,
		ResourcesMissing: 1,
	})

	assert.Contains(t, out, "Resources missing: 1")
	assert.Contains(t, out, "Completed with missing resources")
}
