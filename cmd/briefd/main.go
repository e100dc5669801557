package main

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"

	"github.com/sandeepkv93/briefd/internal/config"
)

var Version = "dev"

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	rootCmd := &cobra.Command{
		Use:     "briefd",
		Short:   "briefd - daily planning and morning brief generator",
		Version: Version,
	}
	rootCmd.PersistentFlags().String("config", "", "path to preferences file (YAML)")

	rootCmd.AddCommand(planCmd())
	rootCmd.AddCommand(previewCmd())
	rootCmd.AddCommand(historyCmd())
	rootCmd.AddCommand(watchCmd())

	if err := rootCmd.ExecuteContext(ctx); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

// loadPreferences resolves the --config flag, falling back to the
// defaults plus environment overrides when no file is given.
func loadPreferences(cmd *cobra.Command) (config.Preferences, error) {
	path, err := cmd.Flags().GetString("config")
	if err != nil {
		return config.Preferences{}, err
	}
	if path == "" {
		prefs := config.FromEnv(config.Default())
		if err := prefs.Validate(); err != nil {
			return config.Preferences{}, err
		}
		return prefs, nil
	}
	return config.Load(path)
}

func newLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(os.Stderr, nil))
}
