package cmd

import (
	"github.com/spf13/cobra"

	"github.com/WesH0use/Work-Log-Database/internal/browser"
)

var addCmd = &cobra.Command{
	Use:   "add",
	Short: "Add a new work log entry",
	Long:  "Prompts for employee, task, minutes spent, date and notes, saves the entry and exits.",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		return runSession(cmd, browser.StateAddEntry, true)
	},
}
