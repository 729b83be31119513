package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/tessro/ringer/internal/version"
)

var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Print version information",
	Run: func(cmd *cobra.Command, args []string) {
		fmt.Fprintf(cmd.OutOrStdout(), "ringer %s\n", version.String())
	},
}

func init() {
	rootCmd.AddCommand(versionCmd)
}
