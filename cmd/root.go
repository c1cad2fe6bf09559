package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/tahsinmert/sveltekit-webgl-experience/internal/config"
	"github.com/tahsinmert/sveltekit-webgl-experience/internal/logging"
)

var (
	cfgFile   string
	verbose   bool
	appConfig config.Config
	logger    = zap.NewNop()
)

var rootCmd = &cobra.Command{
	Use:   "agency",
	Short: "NEXT_GEN_AGENCY site generator",
	Long: `agency renders the NEXT_GEN_AGENCY landing page, together with any
Markdown content under ./content/, into a static HTML site.`,
	SilenceUsage: true,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		return initialize()
	},
	PersistentPostRun: func(cmd *cobra.Command, args []string) {
		_ = logger.Sync()
	},
}

// Execute runs the root command and exits non-zero on error.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func init() {
	rootCmd.PersistentFlags().StringVar(&cfgFile, "config", "", "config file (default is ./config.yaml)")
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "enable debug logging")
}

func initialize() error {
	l, err := logging.New(verbose)
	if err != nil {
		return err
	}
	logger = l

	cfg, err := config.Load(cfgFile)
	if err != nil {
		return err
	}
	appConfig = cfg

	if cfg.ConfigFileUsed != "" {
		logger.Debug("Using config file", zap.String("file", cfg.ConfigFileUsed))
	} else {
		logger.Debug("No config file found, using defaults and environment")
	}
	return nil
}
