package main

import (
	"context"
	"errors"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/charityfund/charity/db"
	"github.com/charityfund/charity/internal/config"
	"github.com/charityfund/charity/internal/console"
	"github.com/charityfund/charity/internal/logging"
	"github.com/charityfund/charity/internal/store"
	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

var (
	// Global flags
	configPath string
	verbose    bool

	cfg    *config.Config
	logger *zap.Logger
)

// rootCmd represents the base command
var rootCmd = &cobra.Command{
	Use:   "charity",
	Short: "Manage donors, donations, projects and volunteers",
	Long: `charity keeps the records of a small charity: donors and their donations,
projects with their fundraising goals, and the volunteers who work on them.

Run without arguments to start the interactive menu.`,
	SilenceUsage: true,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		config.LoadEnv()

		var err error
		cfg, err = config.Load(configPath)
		if err != nil {
			return err
		}

		if verbose {
			cfg.Logging.Level = "debug"
		}

		logger, err = logging.New(cfg.Logging)
		if err != nil {
			return fmt.Errorf("failed to initialize logger: %w", err)
		}
		return nil
	},
	PersistentPostRun: func(cmd *cobra.Command, args []string) {
		if logger != nil {
			_ = logger.Sync()
		}
	},
	RunE: runMenu,
}

func init() {
	rootCmd.PersistentFlags().StringVarP(&configPath, "config", "c", config.DefaultPath, "Path to the YAML config file")
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "Enable verbose logging")

	rootCmd.AddCommand(listCmd)
	rootCmd.AddCommand(sumCmd)
	rootCmd.AddCommand(serveCmd)
	rootCmd.AddCommand(tokenCmd)
	rootCmd.AddCommand(initCmd)
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

// signalContext is cancelled on SIGINT or SIGTERM.
func signalContext() (context.Context, context.CancelFunc) {
	return signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
}

// openStore connects to the configured database, creates missing tables and
// returns the store with a function that closes the connection.
func openStore() (*store.Store, func(), error) {
	gdb, err := db.ConnectDatabase(cfg.Database, logger)
	if err != nil {
		return nil, nil, err
	}

	if err := db.MigrateDatabase(gdb); err != nil {
		_ = db.Close(gdb)
		return nil, nil, err
	}

	closeFn := func() {
		if err := db.Close(gdb); err != nil {
			logger.Warn("failed to close database", zap.Error(err))
		}
	}

	return store.New(gdb, logger), closeFn, nil
}

// withConsole runs fn against a console bound to the command's streams.
func withConsole(cmd *cobra.Command, fn func(ctx context.Context, c *console.Console) error) error {
	s, closeFn, err := openStore()
	if err != nil {
		return err
	}
	defer closeFn()

	ctx, cancel := signalContext()
	defer cancel()

	return fn(ctx, console.New(s, cmd.InOrStdin(), cmd.OutOrStdout(), logger))
}

func runMenu(cmd *cobra.Command, args []string) error {
	return withConsole(cmd, func(ctx context.Context, c *console.Console) error {
		err := c.Run(ctx)
		if errors.Is(err, context.Canceled) {
			return nil
		}
		return err
	})
}
