package cli

import (
	"os"

	"github.com/spf13/cobra"

	"github.com/tessro/ringer/internal/paths"
	"github.com/tessro/ringer/internal/tui"
)

// Global flag values.
var (
	ringerDir  string
	configPath string
	logLevel   string
)

// rootFlags holds the form flags of the bare `ringer` command.
var rootFlags formFlags

var rootCmd = &cobra.Command{
	Use:   "ringer",
	Short: "Ringing bot launcher",
	Long: `ringer launches a ringing bot for a tower and keeps at most one running.

Edit the tower ID, stage and method in the form, then press Start. Starting
again replaces the running bot; quitting stops it.`,
	Args:          cobra.NoArgs,
	SilenceUsage:  true,
	SilenceErrors: true,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		// Set RINGER_DIR if --ringer-dir is provided so every path
		// helper sees the override.
		if ringerDir != "" {
			if err := os.Setenv(paths.EnvRingerDir, ringerDir); err != nil {
				return err
			}
		}
		return nil
	},
	RunE: runTUI,
}

func runTUI(cmd *cobra.Command, args []string) error {
	s, err := newSession(sessionOptions{
		flags: rootFlags,
		// The TUI owns the terminal, so the bot talks to a log file.
		quietSpawner: true,
	})
	if err != nil {
		return err
	}
	defer s.Close()

	return tui.Run(tui.Options{
		Supervisor: s.sup,
		State:      s.state,
		Bus:        s.bus,
		Warning:    s.warning,
	})
}

func init() {
	pf := rootCmd.PersistentFlags()
	pf.StringVar(&ringerDir, "ringer-dir", "", "base directory for ringer data (overrides ~/.ringer)")
	pf.StringVar(&configPath, "config", "", "config file (.toml, .yaml or .yml)")
	pf.StringVar(&logLevel, "log-level", "", "log level: debug, info, warn, error")

	rootFlags.register(rootCmd)
}

func Execute() error {
	return rootCmd.Execute()
}
