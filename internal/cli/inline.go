package cli

import (
	"context"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/cobra"

	"github.com/mastermalone/css-unity/internal/configloader"
	"github.com/mastermalone/css-unity/internal/logging"
	"github.com/mastermalone/css-unity/internal/ui/pretty"
	"github.com/mastermalone/css-unity/pkg/config"
	"github.com/mastermalone/css-unity/pkg/fsutil"
	"github.com/mastermalone/css-unity/pkg/inline"
	"github.com/mastermalone/css-unity/pkg/stylesheet"
)

// ErrUsage is returned for invalid command-line usage.
var ErrUsage = errors.New("invalid usage")

// separateModes is the order in which separate-mode stylesheets are produced.
//
//nolint:gochecknoglobals // Read-only lookup table.
var separateModes = []inline.Mode{
	inline.ModeNoResources,
	inline.ModeDataURI,
	inline.ModeMHTML,
}

type inlineFlags struct {
	mode string
}

func newInlineCommand() *cobra.Command {
	var cfg config.Config
	flags := &inlineFlags{}

	cmd := &cobra.Command{
		Use:   "inline [stylesheets...]",
		Short: "Combine stylesheets and inline their resources",
		Long:  inlineLongDescription,
		Args:  cobra.ArbitraryArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runInline(cmd, args, &cfg, flags)
		},
	}

	addInlineFlags(cmd, &cfg, flags)

	return cmd
}

const inlineLongDescription = `Combine stylesheets and embed their url() resources into the output.

Inputs may be CSS files, directories (expanded to their .css entries),
or a single comma-separated list. Relative resource references are
resolved against the directory of the first stylesheet.

Examples:
  cssunity inline css/                         # Unified sheet on stdout
  cssunity inline a.css b.css -o all.css       # Combine two files
  cssunity inline --mode datauri css/          # Data URIs only
  cssunity inline --mode mhtml --mhtml-base http://h/all.css css/
  cssunity inline --separate -o all.css --mhtml-base http://h/all.mhtml.css css/`

func runInline(cmd *cobra.Command, args []string, cfg *config.Config, flags *inlineFlags) error {
	logger := logging.Default()

	// Only set values that were explicitly provided via CLI flags.
	if cmd.Flags().Changed("mode") {
		cfg.Mode = flags.mode
	}

	ctx := cmd.Context()
	if ctx == nil {
		ctx = context.Background()
	}

	loadResult, err := loadConfig(ctx, cmd, cfg)
	if err != nil {
		return err
	}
	finalCfg := loadResult.Config

	for _, warning := range loadResult.Warnings {
		logger.Warn(warning)
	}
	if len(loadResult.LoadedFrom) > 0 {
		logger.Debug("loaded configuration from", logging.FieldPaths, loadResult.LoadedFrom)
	}

	logger.Debug("configuration loaded",
		logging.FieldMode, finalCfg.Mode,
		logging.FieldSeparate, finalCfg.Separate,
		logging.FieldOutput, finalCfg.Output,
	)

	if finalCfg.Separate && finalCfg.Output == "" {
		return fmt.Errorf("%w: --output is required with --separate", ErrUsage)
	}

	set, err := stylesheet.NewSet(coerceArgs(args), stylesheet.Options{Recursive: finalCfg.Recursive})
	if err != nil {
		return err
	}

	if finalCfg.Recursive {
		logger.Warn("recursive traversal is not implemented; directories expand one level deep")
	}

	pipeline := inline.NewPipeline(set, logger)

	if finalCfg.Separate {
		if err := runSeparate(ctx, cmd, pipeline, finalCfg); err != nil {
			return err
		}
	} else {
		opts := inline.Options{Mode: inline.Mode(finalCfg.Mode), MHTMLBase: finalCfg.MHTMLBase}
		out, err := pipeline.Parse(ctx, opts)
		if err != nil {
			return err
		}
		if err := emit(ctx, cmd, finalCfg.Output, out); err != nil {
			return err
		}
	}

	reportStats(cmd, pipeline.Stats(), finalCfg.Summary)

	return nil
}

// runSeparate produces one stylesheet per target category, deriving each
// output path from the configured output name.
func runSeparate(ctx context.Context, cmd *cobra.Command, pipeline *inline.Pipeline, cfg *config.Config) error {
	logger := logging.Default()

	for _, mode := range separateModes {
		opts := inline.Options{Mode: mode, Separate: true, MHTMLBase: cfg.MHTMLBase}
		out, err := pipeline.Parse(ctx, opts)
		if err != nil {
			return err
		}

		path := variantPath(cfg.Output, string(mode))
		if err := emit(ctx, cmd, path, out); err != nil {
			return err
		}
		logger.Info("wrote stylesheet", logging.FieldMode, string(mode), logging.FieldPath, path)
	}

	return nil
}

// variantPath inserts a category tag before the file extension.
// "dist/all.css" with tag "datauri" becomes "dist/all.datauri.css".
func variantPath(output, tag string) string {
	ext := filepath.Ext(output)
	return strings.TrimSuffix(output, ext) + "." + tag + ext
}

// emit writes the stylesheet to the given path, or to stdout when empty.
// The output always ends with exactly one newline.
func emit(ctx context.Context, cmd *cobra.Command, path, content string) error {
	if !strings.HasSuffix(content, "\n") {
		content += "\n"
	}
	if path == "" {
		fmt.Fprint(cmd.OutOrStdout(), content)
		return nil
	}
	return fsutil.WriteAtomic(ctx, path, []byte(content), 0)
}

// reportStats prints run statistics to stderr so stdout stays parseable.
func reportStats(cmd *cobra.Command, stats inline.Stats, full bool) {
	colorMode, err := cmd.Flags().GetString("color")
	if err != nil {
		colorMode = "auto"
	}

	styles := pretty.NewStyles(pretty.IsColorEnabled(colorMode, os.Stderr))
	if full {
		fmt.Fprint(cmd.ErrOrStderr(), styles.FormatSummary(stats))
		return
	}
	fmt.Fprint(cmd.ErrOrStderr(), styles.FormatSummaryOneLine(stats))
}

// coerceArgs converts command arguments to stylesheet input. A single
// argument is passed as a string so comma-separated lists expand.
func coerceArgs(args []string) any {
	switch len(args) {
	case 0:
		return nil
	case 1:
		return args[0]
	default:
		return args
	}
}

// loadConfig resolves the final configuration for a command invocation.
func loadConfig(ctx context.Context, cmd *cobra.Command, cliCfg *config.Config) (*configloader.LoadResult, error) {
	configPath, err := cmd.Flags().GetString("config")
	if err != nil {
		return nil, fmt.Errorf("get config flag: %w", err)
	}

	workDir, err := os.Getwd()
	if err != nil {
		return nil, fmt.Errorf("get working directory: %w", err)
	}

	explicit := make(map[string]bool)
	for _, name := range []string{"separate", "recursive", "summary"} {
		if cmd.Flags().Changed(name) {
			explicit[name] = true
		}
	}

	loadResult, err := configloader.Load(ctx, configloader.LoadOptions{
		WorkingDir:   workDir,
		ExplicitPath: configPath,
		CLIConfig:    cliCfg,
		CLIExplicit:  explicit,
	})
	if err != nil {
		return nil, errors.Join(errors.New("failed to load configuration"), err)
	}

	return loadResult, nil
}

func addInlineFlags(cmd *cobra.Command, cfg *config.Config, flags *inlineFlags) {
	cmd.Flags().StringVar(&flags.mode, "mode", "unified",
		"inlining mode: unified, datauri, mhtml, nores")
	cmd.Flags().BoolVar(&cfg.Separate, "separate", false,
		"emit one stylesheet per target category")
	cmd.Flags().StringVar(&cfg.MHTMLBase, "mhtml-base", "",
		"absolute URL of the generated stylesheet (required for mhtml output)")
	cmd.Flags().StringVarP(&cfg.Output, "output", "o", "", "output file path (default: stdout)")
	cmd.Flags().BoolVarP(&cfg.Recursive, "recursive", "r", false,
		"descend into nested directories when expanding inputs")
	cmd.Flags().BoolVar(&cfg.Summary, "summary", false, "print a full statistics block after the run")
}
