package cmd

import (
	"io"
	"os"

	"github.com/mattn/go-isatty"
	"github.com/spf13/cobra"

	"github.com/WesH0use/Work-Log-Database/internal/browser"
)

// runSession runs an interactive session on the command's input and output.
// With once set the session ends as soon as it gets back to the main menu.
func runSession(cmd *cobra.Command, start browser.State, once bool) error {
	out := cmd.OutOrStdout()
	tty := isTerminal(out)

	opts := []browser.Option{
		browser.WithLogger(logger.Named("browser")),
		browser.WithStartState(start),
		browser.WithClearScreen(tty && cfg.ClearScreen),
		browser.WithColor(tty),
	}
	if once {
		opts = append(opts, browser.Once())
	}
	return browser.New(store, cmd.InOrStdin(), out, opts...).Run(cmd.Context())
}

func isTerminal(w io.Writer) bool {
	f, ok := w.(*os.File)
	if !ok {
		return false
	}
	return isatty.IsTerminal(f.Fd()) || isatty.IsCygwinTerminal(f.Fd())
}
