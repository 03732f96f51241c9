package main

import (
	"context"
	"fmt"
	"os"
	"time"

	"github.com/spf13/cobra"

	"github.com/qosst/qosst-go/internal/config"
	"github.com/qosst/qosst-go/pkg/metrics"
	"github.com/qosst/qosst-go/pkg/version"
)

var (
	// Global flags.
	cfgFile   string
	flagHost  string
	flagPort  int
	logLevel  string
	logFormat string

	// Shared state set during PersistentPreRun.
	cfg config.Config
)

var rootCmd = &cobra.Command{
	Use:           "qosst",
	Short:         "QOSST control protocol tools",
	Long:          "Operator tools for the QOSST control protocol: generate signing keys,\nrun a responder, and probe a responder from the initiator side.",
	SilenceUsage:  true,
	SilenceErrors: true,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		cfg = config.Default()
		if cfgFile != "" {
			loaded, err := config.Load(cfgFile)
			if err != nil {
				return err
			}
			cfg = loaded
		}

		// Flags override the file.
		if flagHost != "" {
			cfg.Network.Host = flagHost
		}
		if flagPort != 0 {
			cfg.Network.Port = flagPort
		}
		if logLevel != "" {
			cfg.Logs.Level = logLevel
		}
		if logFormat != "" {
			cfg.Logs.Format = logFormat
		}

		metrics.ConfigureLogging(cfg.Logs.Level, cfg.Logs.Format)
		return nil
	},
}

var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Show the software and protocol versions",
	Run: func(cmd *cobra.Command, args []string) {
		fmt.Fprintln(cmd.OutOrStdout(), version.Full())
	},
}

// contextWithTimeout derives a deadline context from the command. A zero
// timeout means no deadline.
func contextWithTimeout(cmd *cobra.Command, timeout time.Duration) (context.Context, context.CancelFunc) {
	ctx := cmd.Context()
	if ctx == nil {
		ctx = context.Background()
	}
	if timeout <= 0 {
		return context.WithCancel(ctx)
	}
	return context.WithTimeout(ctx, timeout)
}

func execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, "Error:", err)
		os.Exit(1)
	}
}

func init() {
	rootCmd.PersistentFlags().StringVarP(&cfgFile, "config", "c", "", "path to the TOML configuration file")
	rootCmd.PersistentFlags().StringVar(&flagHost, "host", "", "control endpoint host (overrides the config file)")
	rootCmd.PersistentFlags().IntVar(&flagPort, "port", 0, "control endpoint port (overrides the config file)")
	rootCmd.PersistentFlags().StringVar(&logLevel, "log-level", "", "log level: trace, debug, info, warn, error")
	rootCmd.PersistentFlags().StringVar(&logFormat, "log-format", "", "log format: json or console")
	rootCmd.AddCommand(versionCmd)
}
