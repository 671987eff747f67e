package cmd

import (
	"github.com/spf13/cobra"

	"github.com/WesH0use/Work-Log-Database/internal/browser"
)

var searchCmd = &cobra.Command{
	Use:   "search",
	Short: "Find entries by employee, date, time spent or search term",
	Long:  "Opens the search menu directly and exits when you return to the main menu.",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		return runSession(cmd, browser.StateFilterSelect, true)
	},
}
