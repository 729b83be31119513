package cli

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/tessro/ringer/internal/config"
)

var configCmd = &cobra.Command{
	Use:   "config",
	Short: "Show the effective configuration",
	Long:  "Print the config file path and the configuration ringer would run with, defaults filled in.",
	Args:  cobra.NoArgs,
	RunE:  runConfig,
}

func runConfig(cmd *cobra.Command, args []string) error {
	out := cmd.OutOrStdout()

	path, err := config.Path(configPath)
	if err != nil {
		return err
	}
	cfg, err := config.LoadFromPath(path)
	if err != nil {
		return fmt.Errorf("load config %s: %w", path, err)
	}

	if _, err := os.Stat(path); err != nil {
		fmt.Fprintf(out, "# %s (not found, using defaults)\n", path)
	} else {
		fmt.Fprintf(out, "# %s\n", path)
	}

	resolved := cfg.Resolved()
	if err := resolved.WriteTOML(out); err != nil {
		return err
	}

	var problems []error
	if err := cfg.Validate(); err != nil {
		problems = append(problems, err)
	}
	if err := config.ValidateExecutable(resolved.Executable); err != nil {
		problems = append(problems, err)
	}
	if len(problems) == 0 {
		fmt.Fprintln(out, "\n✅ Configuration OK")
		return nil
	}
	fmt.Fprintln(out)
	for _, p := range problems {
		fmt.Fprintf(out, "⚠️  %v\n", p)
	}
	return nil
}

func init() {
	rootCmd.AddCommand(configCmd)
}
