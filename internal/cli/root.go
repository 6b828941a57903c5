// Package cli provides the Cobra command structure for cssunity.
package cli

import (
	"os"

	"github.com/spf13/cobra"

	"github.com/mastermalone/css-unity/internal/logging"
)

// BuildInfo holds build-time version information.
type BuildInfo struct {
	Version string
	Commit  string
	Date    string
}

// NewRootCommand creates the root cssunity command with all subcommands.
func NewRootCommand(info BuildInfo) *cobra.Command {
	var debug bool
	var configPath string
	var color string

	rootCmd := &cobra.Command{
		Use:   "cssunity",
		Short: "Combine stylesheets and inline their resources",
		Long: `cssunity combines a set of CSS files into a single stylesheet and
embeds the image and font resources they reference directly into the
output, as base64 data URIs, as an MHTML multipart document, or both.

One unified stylesheet means one HTTP request instead of dozens. The
separate mode additionally partitions the output per target so legacy
user agents receive only the encoding they understand.`,
		PersistentPreRun: func(_ *cobra.Command, _ []string) {
			if debug {
				logging.SetLevel("debug")
			}
		},
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	// Global flags.
	rootCmd.PersistentFlags().BoolVar(&debug, "debug", false, "enable debug logging")
	rootCmd.PersistentFlags().StringVar(&configPath, "config", "", "path to config file")
	rootCmd.PersistentFlags().StringVar(&color, "color", "auto",
		"colorize output: auto, always, never")

	// Add subcommands.
	rootCmd.AddCommand(newInlineCommand())
	rootCmd.AddCommand(newCombineCommand())
	rootCmd.AddCommand(newNormalizeCommand())
	rootCmd.AddCommand(newInitCommand())
	rootCmd.AddCommand(newVersionCommand(info))

	// Apply styled help formatting.
	helpFormatter := NewHelpFormatter(color, os.Stdout)
	helpFormatter.ApplyToCommand(rootCmd)

	return rootCmd
}
