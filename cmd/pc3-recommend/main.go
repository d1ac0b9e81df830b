// Command pc3-recommend computes top-K user-based collaborative
// filtering recommendations from a binary coordinate-triplet rating
// file. Structured as a cobra root command the way
// gallery-so/go-gallery's indexer/cmd/root.go lays out its own single
// root command with persistent flags.
package main

import (
	"context"
	"fmt"
	"os"

	"github.com/pkg/errors"
	"github.com/spf13/cobra"

	"github.com/katalvlaran/pc3-recommend/internal/app"
	"github.com/katalvlaran/pc3-recommend/internal/config"
	"github.com/katalvlaran/pc3-recommend/internal/telemetry"
)

var (
	flagWorkers     int
	flagK           int
	flagTopN        int
	flagConfig      string
	flagLogLevel    string
	flagLogFormat   string
	flagMetricsAddr string
)

var rootCmd = &cobra.Command{
	Use:   "pc3-recommend [input-file]",
	Short: "Compute user-based collaborative filtering recommendations",
	Long: `pc3-recommend loads a binary coordinate-triplet rating matrix, mean-centers
it, finds each user's top-K most similar neighbors by cosine similarity, and
prints aggregated item recommendations for every user.`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := config.Load(cmd.Flags(), flagConfig)
		if err != nil {
			return errors.Wrap(err, "loading config")
		}
		cfg.InputFile = args[0]

		log := telemetry.NewLogger(cfg)

		ctx, cancel := context.WithCancel(context.Background())
		defer cancel()
		telemetry.ServeMetrics(ctx, cfg.MetricsAddr)

		if err := app.Run(cfg, log, os.Stdout); err != nil {
			return errors.Wrap(err, "running pipeline")
		}
		return nil
	},
}

func init() {
	rootCmd.Flags().IntVarP(&flagWorkers, "workers", "w", 0, "worker count (default: number of CPUs)")
	rootCmd.Flags().IntVar(&flagK, "k", 0, "number of neighbors per user (default: 30)")
	rootCmd.Flags().IntVar(&flagTopN, "top-n", 0, "cap recommendations printed per user (0 = unbounded)")
	rootCmd.Flags().StringVar(&flagConfig, "config", "", "path to a YAML/JSON config file")
	rootCmd.Flags().StringVar(&flagLogLevel, "log-level", "", "log level (default: info)")
	rootCmd.Flags().StringVar(&flagLogFormat, "log-format", "", "log format: text or json (default: text)")
	rootCmd.Flags().StringVar(&flagMetricsAddr, "metrics-addr", "", "address to serve /metrics on (default: disabled)")
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "%+v\n", err)
		os.Exit(1)
	}
}
