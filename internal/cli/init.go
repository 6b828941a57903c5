package cli

import (
	"bufio"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/cobra"

	"github.com/mastermalone/css-unity/internal/configloader"
	"github.com/mastermalone/css-unity/internal/logging"
	"github.com/mastermalone/css-unity/pkg/config"
)

// configFilePermissions is the file mode for configuration files (world-readable).
const configFilePermissions = 0644

// initFlags holds the flags for the init command.
type initFlags struct {
	force  bool
	output string
}

func newInitCommand() *cobra.Command {
	flags := &initFlags{}

	cmd := &cobra.Command{
		Use:   "init",
		Short: "Initialize a new cssunity configuration file",
		Long: `Create a new .cssunity.yml configuration file in the current directory
with sensible defaults. The file can be customized to change the
inlining mode, output path, and mhtml base URL.

Examples:
  cssunity init                      Create .cssunity.yml
  cssunity init --output custom.yml  Write to a custom file path`,
		RunE: func(_ *cobra.Command, _ []string) error {
			return runInit(flags)
		},
	}

	cmd.Flags().BoolVarP(&flags.force, "force", "f", false, "Overwrite existing configuration file")
	cmd.Flags().StringVarP(&flags.output, "output", "o", "", "Output file path (default: .cssunity.yml)")

	return cmd
}

func runInit(flags *initFlags) error {
	logger := logging.NewInteractive()

	outputPath := flags.output
	if outputPath == "" {
		outputPath = ".cssunity.yml"
	}

	absPath, err := filepath.Abs(outputPath)
	if err != nil {
		return fmt.Errorf("resolve path: %w", err)
	}

	if _, err := os.Stat(absPath); err == nil {
		if !flags.force {
			// Interactively offer to overwrite; in scripts, require --force.
			if !configloader.IsInteractive() {
				return fmt.Errorf("%w: file %q already exists; use --force to overwrite", ErrUsage, outputPath)
			}
			overwrite, err := promptOverwrite(outputPath)
			if err != nil {
				return err
			}
			if !overwrite {
				logger.Info("keeping existing file", logging.FieldPath, outputPath)
				return nil
			}
		}
		logger.Warn("overwriting existing file", logging.FieldPath, outputPath)
	}

	content := config.GenerateTemplate()

	if err := os.WriteFile(absPath, content, configFilePermissions); err != nil {
		return fmt.Errorf("write file: %w", err)
	}

	logger.Info("created configuration file", logging.FieldPath, outputPath)
	logger.Info("customize your configuration by editing the file")

	return nil
}

// promptOverwrite asks the user whether to replace an existing config file.
func promptOverwrite(path string) (bool, error) {
	if _, err := os.Stdout.WriteString("File " + path + " already exists\nOverwrite? [y/N] "); err != nil {
		return false, fmt.Errorf("write prompt: %w", err)
	}

	reader := bufio.NewReader(os.Stdin)
	response, err := reader.ReadString('\n')
	if err != nil {
		return false, fmt.Errorf("read response: %w", err)
	}

	response = strings.TrimSpace(strings.ToLower(response))
	return response == "y" || response == "yes", nil
}
