package cmd

import (
	"errors"
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/WesH0use/Work-Log-Database/internal/browser"
	"github.com/WesH0use/Work-Log-Database/internal/config"
	"github.com/WesH0use/Work-Log-Database/internal/logging"
	"github.com/WesH0use/Work-Log-Database/internal/storage"
)

var (
	dbPath  string
	verbose bool

	cfg    config.Config
	logger = zap.NewNop()
	store  *storage.Store
)

var rootCmd = &cobra.Command{
	Use:   "wlog",
	Short: "Work log – record and search time spent on tasks",
	Long: `wlog is an interactive work log. Record who worked on which task, for how
long and on which date, then browse the log by employee, date, time spent or
a search term. Entries are stored in a local SQLite file (~/.wlog/worklog.db).

Run without arguments to start an interactive session.`,
	Args:              cobra.NoArgs,
	SilenceUsage:      true,
	SilenceErrors:     true,
	PersistentPreRunE: setup,
	RunE: func(cmd *cobra.Command, args []string) error {
		return runSession(cmd, browser.StateRoot, false)
	},
}

// Execute is the entry point called from main.
func Execute() {
	err := rootCmd.Execute()
	teardown()
	if err != nil {
		fmt.Fprintln(os.Stderr, "Error:", err)
		var perr *storage.PersistenceError
		if errors.As(err, &perr) {
			os.Exit(2)
		}
		os.Exit(1)
	}
}

func init() {
	rootCmd.PersistentFlags().StringVar(&dbPath, "db", "", "Path of the work log database (overrides the config file)")
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "Write debug output to the log file")

	rootCmd.AddCommand(addCmd)
	rootCmd.AddCommand(searchCmd)
	rootCmd.AddCommand(exportCmd)
	rootCmd.AddCommand(reportCmd)
}

// setup loads the configuration, builds the logger and opens the store
// before any command runs.
func setup(cmd *cobra.Command, args []string) error {
	var err error
	cfg, err = config.Load()
	if err != nil {
		return err
	}
	if dbPath != "" {
		if cfg.Database, err = config.ExpandHome(dbPath); err != nil {
			return err
		}
	}

	logger, err = logging.New(cfg.LogFile, cfg.LogLevel, verbose)
	if err != nil {
		return err
	}
	logger.Debug("starting", zap.String("command", cmd.Name()), zap.String("database", cfg.Database))

	store, err = storage.Open(cfg.Database, logger.Named("storage"))
	return err
}

func teardown() {
	if store != nil {
		if err := store.Close(); err != nil {
			logger.Warn("closing store", zap.Error(err))
		}
		store = nil
	}
	_ = logger.Sync()
}
