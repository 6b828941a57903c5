package cli

import (
	"fmt"
	"io"
	"strings"
	"text/template"

	"github.com/charmbracelet/lipgloss"
	"github.com/spf13/cobra"
	"github.com/spf13/pflag"

	"github.com/mastermalone/css-unity/internal/ui/pretty"
)

// helpStyles holds the lipgloss styles the help templates render with.
// The surface is deliberately small: headings, command paths, flag names,
// and dimmed secondary text cover everything this CLI prints.
type helpStyles struct {
	heading lipgloss.Style
	command lipgloss.Style
	flag    lipgloss.Style
	dim     lipgloss.Style
}

func newHelpStyles(colorEnabled bool) helpStyles {
	if !colorEnabled {
		plain := lipgloss.NewStyle()
		return helpStyles{heading: plain, command: plain, flag: plain, dim: plain}
	}
	return helpStyles{
		heading: lipgloss.NewStyle().Foreground(lipgloss.Color("11")).Bold(true),
		command: lipgloss.NewStyle().Foreground(lipgloss.Color("14")).Bold(true),
		flag:    lipgloss.NewStyle().Foreground(lipgloss.Color("12")),
		dim:     lipgloss.NewStyle().Foreground(lipgloss.Color("8")),
	}
}

// usageBody lists the sections every command's usage output is built from.
// None of the commands declare aliases or help topics, so those cobra
// sections are not rendered.
const usageBody = `{{ heading "Usage:" }}
  {{if .Runnable}}{{ cmd .UseLine }}{{end}}
  {{if .HasAvailableSubCommands}}{{ cmd (print .CommandPath " [command]") }}{{end}}

{{- if .HasExample}}

{{ heading "Examples:" }}
{{ dim .Example }}
{{- end}}

{{- if .HasAvailableSubCommands}}

{{ heading "Commands:" }}{{range .Commands}}{{if (or .IsAvailableCommand (eq .Name "help"))}}
  {{ cmd (rpad .Name .NamePadding) }} {{ .Short }}{{end}}{{end}}
{{- end}}

{{- if .HasAvailableLocalFlags}}

{{ heading "Flags:" }}
{{ flagUsages .LocalFlags }}
{{- end}}

{{- if .HasAvailableInheritedFlags}}

{{ heading "Global Flags:" }}
{{ flagUsages .InheritedFlags }}
{{- end}}

{{- if .HasAvailableSubCommands}}

Use "{{ cmd (print .CommandPath " [command] --help") }}" for details on a command.
{{- end}}
`

// helpIntro precedes the usage body on full help output: the command path,
// its version when set, and the long description.
const helpIntro = `{{if or .Runnable .HasSubCommands}}{{ cmd .CommandPath }}{{if .Version}} {{ dim .Version }}{{end}}

{{end}}{{with (or .Long .Short)}}{{ trim . }}

{{end}}`

// HelpFormatter installs styled usage and help templates on a command tree.
type HelpFormatter struct {
	styles helpStyles
}

// NewHelpFormatter creates a formatter honoring the given color mode for
// the writer help will be printed to.
func NewHelpFormatter(colorMode string, writer io.Writer) *HelpFormatter {
	return &HelpFormatter{styles: newHelpStyles(pretty.IsColorEnabled(colorMode, writer))}
}

// ApplyToCommand replaces cmd's usage and help functions with the styled
// templates. Cobra propagates both to subcommands.
func (f *HelpFormatter) ApplyToCommand(cmd *cobra.Command) {
	funcs := template.FuncMap{
		"heading":    f.styles.heading.Render,
		"cmd":        f.styles.command.Render,
		"dim":        f.styles.dim.Render,
		"flagUsages": f.renderFlagUsages,
		"rpad":       rpad,
		"trim":       strings.TrimSpace,
	}

	usage := template.Must(template.New("usage").Funcs(funcs).Parse(usageBody))
	help := template.Must(template.New("help").Funcs(funcs).Parse(helpIntro + usageBody))

	cmd.SetUsageFunc(func(c *cobra.Command) error {
		return usage.Execute(c.OutOrStdout(), c)
	})
	cmd.SetHelpFunc(func(c *cobra.Command, _ []string) {
		if err := help.Execute(c.OutOrStdout(), c); err != nil {
			c.PrintErrln(err)
		}
	})
}

// renderFlagUsages styles pflag's usage listing line by line, keeping its
// column layout intact.
func (f *HelpFormatter) renderFlagUsages(fs *pflag.FlagSet) string {
	var b strings.Builder
	for i, line := range strings.Split(strings.TrimRight(fs.FlagUsages(), "\n"), "\n") {
		if i > 0 {
			b.WriteByte('\n')
		}
		b.WriteString(f.styleUsageLine(line))
	}
	return b.String()
}

// styleUsageLine colors the flag spec of one usage line and leaves the
// description untouched. Lines that do not follow pflag's
// "  -f, --flag type   description" shape pass through unchanged.
func (f *HelpFormatter) styleUsageLine(line string) string {
	trimmed := strings.TrimLeft(line, " ")
	indent := line[:len(line)-len(trimmed)]

	spec, desc, ok := splitUsageLine(trimmed)
	if !ok {
		return line
	}
	return indent + f.styleFlagSpec(spec) + "   " + desc
}

// splitUsageLine cuts a usage line at the first run of two or more spaces,
// separating the flag spec from its description.
func splitUsageLine(line string) (spec, desc string, ok bool) {
	for i := 1; i+1 < len(line); i++ {
		if line[i] == ' ' && line[i+1] == ' ' && line[i-1] != ' ' {
			j := i
			for j < len(line) && line[j] == ' ' {
				j++
			}
			return line[:i], line[j:], true
		}
	}
	return "", "", false
}

// styleFlagSpec colors the dashed names of a flag spec and dims the value
// type, e.g. the "string" in "-o, --output string".
func (f *HelpFormatter) styleFlagSpec(spec string) string {
	words := strings.Fields(spec)
	for i, w := range words {
		name := strings.TrimSuffix(w, ",")
		switch {
		case strings.HasPrefix(name, "-"):
			words[i] = f.styles.flag.Render(name)
			if name != w {
				words[i] += ","
			}
		default:
			words[i] = f.styles.dim.Render(w)
		}
	}
	return strings.Join(words, " ")
}

// rpad pads s with spaces on the right to the given width.
func rpad(s string, width int) string {
	return fmt.Sprintf("%-*s", width, s)
}
