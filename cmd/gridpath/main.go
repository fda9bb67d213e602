// Command gridpath generates boards with obstacles and finds the shortest
// start→goal path on them, either from the command line or over HTTP.
package main

import (
	"fmt"
	"os"

	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"github.com/katalvlaran/gridpath/internal/config"
)

// Build-time variables set via ldflags.
var (
	version   = "0.1.0"
	commit    = ""
	buildDate = ""
)

var (
	cfg          *config.Config
	log          = logrus.New()
	flagConfig   string
	flagLogLevel string
	flagFmt      string
	flagGraph    bool
)

func versionString() string {
	if commit != "" && buildDate != "" {
		return fmt.Sprintf("gridpath version %s (commit: %s, built: %s)", version, commit, buildDate)
	}
	return fmt.Sprintf("gridpath version %s-dev", version)
}

func newRootCmd() *cobra.Command {
	rootCmd := &cobra.Command{
		Use:     "gridpath",
		Short:   "gridpath - shortest paths on random obstacle boards",
		Version: versionString(),
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			return setup()
		},
		SilenceUsage: true,
	}
	rootCmd.SetVersionTemplate("{{.Version}}\n")

	rootCmd.PersistentFlags().StringVar(&flagConfig, "config", "", "YAML config file (env overrides file)")
	rootCmd.PersistentFlags().StringVar(&flagLogLevel, "log-level", "", "Log level: trace|debug|info|warn|error (env: LOG_LEVEL)")
	rootCmd.PersistentFlags().StringVar(&flagFmt, "format", "text", "Output format: text|json")

	rootCmd.AddCommand(newSolveCmd())
	rootCmd.AddCommand(newLayoutCmd())
	rootCmd.AddCommand(newServeCmd())
	rootCmd.AddCommand(newVersionCmd())

	return rootCmd
}

// setup loads configuration and configures the logger. Flags win over
// env, which wins over the config file.
func setup() error {
	var err error
	cfg, err = config.Load(flagConfig)
	if err != nil {
		return err
	}
	if flagLogLevel != "" {
		cfg.LogLevel = flagLogLevel
	}
	level, err := logrus.ParseLevel(cfg.LogLevel)
	if err != nil {
		return fmt.Errorf("log level: %w", err)
	}
	log.SetLevel(level)
	log.SetOutput(os.Stderr)

	if flagFmt != "text" && flagFmt != "json" {
		return fmt.Errorf("unknown --format %q (want text or json)", flagFmt)
	}
	return nil
}

func newVersionCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Print the version",
		Args:  cobra.NoArgs,
		Run: func(cmd *cobra.Command, args []string) {
			fmt.Fprintln(cmd.OutOrStdout(), versionString())
		},
	}
}

func main() {
	if err := newRootCmd().Execute(); err != nil {
		os.Exit(1)
	}
}
