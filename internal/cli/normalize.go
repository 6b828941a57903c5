package cli

import (
	"context"

	"github.com/spf13/cobra"

	"github.com/mastermalone/css-unity/pkg/cssnorm"
	"github.com/mastermalone/css-unity/pkg/fsutil"
)

type normalizeFlags struct {
	output             string
	dropComments       bool
	stripSemicolons    bool
	compressFontWeight bool
}

func newNormalizeCommand() *cobra.Command {
	flags := &normalizeFlags{}

	cmd := &cobra.Command{
		Use:   "normalize <stylesheet>",
		Short: "Rewrite a stylesheet into canonical line-oriented form",
		Long: `Rewrite a stylesheet so that every selector opener, declaration, and
closing brace sits on its own line with collapsed whitespace. This is
the form the inline command parses internally.

Examples:
  cssunity normalize site.css                # Canonical form on stdout
  cssunity normalize site.css -o site.norm.css
  cssunity normalize --drop-comments site.css`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()
			if ctx == nil {
				ctx = context.Background()
			}

			content, err := fsutil.ReadFile(ctx, args[0])
			if err != nil {
				return err
			}

			opts := cssnorm.DefaultOptions()
			opts.PreserveStructure = !flags.dropComments
			opts.TrailingSemicolons = !flags.stripSemicolons
			opts.CompressFontWeight = flags.compressFontWeight

			return emit(ctx, cmd, flags.output, cssnorm.Normalize(string(content), opts))
		},
	}

	cmd.Flags().StringVarP(&flags.output, "output", "o", "", "output file path (default: stdout)")
	cmd.Flags().BoolVar(&flags.dropComments, "drop-comments", false, "drop comments instead of preserving them")
	cmd.Flags().BoolVar(&flags.stripSemicolons, "strip-semicolons", false,
		"omit the semicolon on the last declaration of each block")
	cmd.Flags().BoolVar(&flags.compressFontWeight, "compress-font-weight", false,
		"rewrite font-weight keywords to numeric values")

	return cmd
}
