package main

import (
	"errors"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/rs/zerolog/log"
	"github.com/spf13/cobra"

	"go-altscan/internal/common"
	"go-altscan/internal/config"
	"go-altscan/internal/exchanges"
	"go-altscan/internal/service"
	"go-altscan/internal/util"
)

const version = "v0.1.0"

// loggedError marks a failure that was already logged with its error code.
type loggedError struct {
	err error
}

func (e loggedError) Error() string { return e.err.Error() }
func (e loggedError) Unwrap() error { return e.err }

func main() {
	util.ConfigureGlobal(os.Stderr)

	if err := newRootCmd().Execute(); err != nil {
		var logged loggedError
		if !errors.As(err, &logged) {
			log.Error().
				Err(err).
				Str("error_code", common.ErrCodeInvalidArguments.String()).
				Str("error_message", common.ErrMsgInvalidArguments.String()).
				Msg("altscan failed")
		}
		os.Exit(1)
	}
}

func newRootCmd() *cobra.Command {
	rootCmd := &cobra.Command{
		Use:           "altscan",
		Short:         "Scan Binance altcoins for higher lows against BTC and ETH",
		Version:       version,
		Args:          cobra.NoArgs,
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := runScan(cmd); err != nil {
				return loggedError{err: err}
			}
			return nil
		},
	}
	rootCmd.Flags().String("config", common.DefaultConfigPath, "Path to config file (empty for defaults)")
	rootCmd.Flags().String("log-level", "", "Log level override: debug, info, warn, error")

	rootCmd.AddCommand(&cobra.Command{
		Use:   "version",
		Short: "Print the version",
		Run: func(cmd *cobra.Command, args []string) {
			fmt.Fprintln(cmd.OutOrStdout(), version)
		},
	})
	return rootCmd
}

// runScan logs every failure it returns.
func runScan(cmd *cobra.Command) error {
	logger := util.NewLogger()

	configPath, _ := cmd.Flags().GetString("config")
	cfg, err := config.LoadConfig(configPath)
	if err != nil {
		logger.Error(err, common.ErrCodeConfigLoadFailed, common.ErrMsgConfigLoadFailed, "Failed to load config", "path", configPath)
		return err
	}

	level := cfg.LogLevel
	if override, _ := cmd.Flags().GetString("log-level"); override != "" {
		level = override
	}
	if err := util.SetGlobalLevel(level); err != nil {
		logger.Error(err, common.ErrCodeInvalidLogLevel, common.ErrMsgInvalidLogLevel, "Invalid log level", "log_level", level)
		return err
	}

	ctx, stop := signal.NotifyContext(cmd.Context(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	binance := exchanges.NewBinance(cfg, nil)
	scanner := service.NewScanner(cfg, binance)

	logger.Info("Starting scan", "base_url", cfg.GetBaseURL(), "window_start", common.WindowStart, "window_end", common.WindowEnd)
	summary, err := scanner.Run(ctx)
	if err != nil {
		return err
	}

	logger.Info("Scan finished", "dual_rows", len(summary.Dual), "single_rows", len(summary.Single))
	return nil
}
