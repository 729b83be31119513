package cli

import (
	"fmt"
	"strconv"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/lipgloss/table"
	"github.com/spf13/cobra"

	"github.com/tessro/ringer/internal/method"
)

var stagesCmd = &cobra.Command{
	Use:   "stages",
	Short: "List stage names by number of bells",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		fmt.Fprintln(cmd.OutOrStdout(), stagesTable())
		return nil
	},
}

func stagesTable() string {
	rows := make([][]string, 0, len(method.Stages()))
	for _, st := range method.Stages() {
		rows = append(rows, []string{strconv.Itoa(st.Bells), st.Name})
	}
	return table.New().
		Border(lipgloss.NormalBorder()).
		Headers("Bells", "Stage").
		Rows(rows...).
		String()
}

func init() {
	rootCmd.AddCommand(stagesCmd)
}
