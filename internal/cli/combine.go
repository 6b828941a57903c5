package cli

import (
	"context"

	"github.com/spf13/cobra"

	"github.com/mastermalone/css-unity/pkg/inline"
	"github.com/mastermalone/css-unity/pkg/stylesheet"
)

func newCombineCommand() *cobra.Command {
	var output string
	var recursive bool

	cmd := &cobra.Command{
		Use:   "combine [stylesheets...]",
		Short: "Concatenate stylesheets with provenance markers",
		Long: `Concatenate stylesheets into a single text, each file preceded by a
/* FILE: path */ marker. No normalization or inlining is performed.

Examples:
  cssunity combine css/                  # Concatenate a directory
  cssunity combine a.css,b.css -o all.css`,
		Args: cobra.ArbitraryArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()
			if ctx == nil {
				ctx = context.Background()
			}

			set, err := stylesheet.NewSet(coerceArgs(args), stylesheet.Options{Recursive: recursive})
			if err != nil {
				return err
			}

			combined, err := inline.NewPipeline(set, nil).Combine(ctx)
			if err != nil {
				return err
			}

			return emit(ctx, cmd, output, combined)
		},
	}

	cmd.Flags().StringVarP(&output, "output", "o", "", "output file path (default: stdout)")
	cmd.Flags().BoolVarP(&recursive, "recursive", "r", false,
		"descend into nested directories when expanding inputs")

	return cmd
}
