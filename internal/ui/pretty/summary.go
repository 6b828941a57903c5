package pretty

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/mastermalone/css-unity/pkg/inline"
)

const (
	summaryDividerWidth = 40
	wordFile            = "file"
	wordFiles           = "files"
)

// FormatSummaryOneLine formats run statistics as a single line.
// Example: "5 references in 3 files, 4 inlined, 1 missing (12.4 KB embedded)".
func (s *Styles) FormatSummaryOneLine(stats inline.Stats) string {
	fileWord := wordFiles
	if stats.FilesCombined == 1 {
		fileWord = wordFile
	}

	if stats.ReferencesFound == 0 {
		return s.Success.Render("No resource references found") +
			s.Dim.Render(fmt.Sprintf(" (%d %s combined)", stats.FilesCombined, fileWord)) + "\n"
	}

	refWord := "references"
	if stats.ReferencesFound == 1 {
		refWord = "reference"
	}

	parts := []string{
		fmt.Sprintf("%d %s in %d %s", stats.ReferencesFound, refWord, stats.FilesCombined, fileWord),
	}

	if stats.ResourcesInlined > 0 {
		parts = append(parts, s.Success.Render(fmt.Sprintf("%d inlined", stats.ResourcesInlined)))
	}
	if stats.ResourcesMissing > 0 {
		parts = append(parts, s.Warning.Render(fmt.Sprintf("%d missing", stats.ResourcesMissing)))
	}
	if stats.PayloadBytes > 0 {
		parts = append(parts, s.Dim.Render(fmt.Sprintf("(%s embedded)", formatBytes(stats.PayloadBytes))))
	}

	return strings.Join(parts, ", ") + "\n"
}

// FormatSummary formats run statistics as a summary block.
func (s *Styles) FormatSummary(stats inline.Stats) string {
	var builder strings.Builder

	builder.WriteString("\n")
	builder.WriteString(s.SummaryTitle.Render("Summary"))
	builder.WriteString("\n")
	builder.WriteString(strings.Repeat("-", summaryDividerWidth))
	builder.WriteString("\n")

	builder.WriteString("  Files combined:    " +
		s.SummaryValue.Render(strconv.Itoa(stats.FilesCombined)) + "\n")
	builder.WriteString("  References found:  " +
		s.SummaryValue.Render(strconv.Itoa(stats.ReferencesFound)) + "\n")

	if stats.ResourcesInlined > 0 {
		builder.WriteString("  Resources inlined: " +
			s.Success.Render(strconv.Itoa(stats.ResourcesInlined)) + "\n")
	}
	if stats.ResourcesMissing > 0 {
		builder.WriteString("  Resources missing: " +
			s.Warning.Render(strconv.Itoa(stats.ResourcesMissing)) + "\n")
	}
	if stats.HackLinesPreserved > 0 {
		builder.WriteString("  Hack lines kept:   " +
			s.SummaryValue.Render(strconv.Itoa(stats.HackLinesPreserved)) + "\n")
	}
	if stats.BlocksRemoved > 0 {
		builder.WriteString("  Blocks removed:    " +
			s.SummaryValue.Render(strconv.Itoa(stats.BlocksRemoved)) + "\n")
	}
	if stats.PayloadBytes > 0 {
		builder.WriteString("  Payload embedded:  " +
			s.SummaryValue.Render(formatBytes(stats.PayloadBytes)) + "\n")
	}

	builder.WriteString("\n")

	if stats.ResourcesMissing > 0 {
		builder.WriteString(s.Warning.Render("Completed with missing resources"))
	} else {
		builder.WriteString(s.Success.Render("Completed"))
	}
	builder.WriteString("\n")

	return builder.String()
}

// formatBytes renders a byte count in human-readable form.
func formatBytes(n int64) string {
	const unit = 1024
	if n < unit {
		return fmt.Sprintf("%d B", n)
	}
	div, exp := int64(unit), 0
	for m := n / unit; m >= unit; m /= unit {
		div *= unit
		exp++
	}
	return fmt.Sprintf("%.1f %cB", float64(n)/float64(div), "KMGTPE"[exp])
}
