package main

import (
	"log/slog"

	"github.com/spf13/cobra"

	"github.com/katalvlaran/elimination/config"
	"github.com/katalvlaran/elimination/logging"
)

// version is set at build time via -ldflags.
var version = "dev"

// rootFlags holds the persistent flags shared by every subcommand.
type rootFlags struct {
	configPath   string
	algorithm    string
	parallel     int
	certificates bool
	strict       bool
	verboseFlow  bool
	format       string
	logLevel     string
	logFormat    string
}

func newRootCmd() *cobra.Command {
	flags := &rootFlags{}
	cmd := &cobra.Command{
		Use:   "elimination",
		Short: "Find teams mathematically eliminated from first place",
		Long: "elimination reads division standings (wins, remaining games and the\n" +
			"games-left matrix) and reports every team that can no longer finish\n" +
			"first, using a max-flow test per team.",
		SilenceUsage:  true,
		SilenceErrors: true,
		CompletionOptions: cobra.CompletionOptions{
			HiddenDefaultCmd: true,
		},
		Version: version,
	}

	pf := cmd.PersistentFlags()
	pf.StringVar(&flags.configPath, "config", "", "YAML configuration file")
	pf.StringVar(&flags.algorithm, "algorithm", "", "max-flow algorithm: edmonds-karp, ford-fulkerson or dinic")
	pf.IntVar(&flags.parallel, "parallel", 0, "teams checked concurrently per division")
	pf.BoolVar(&flags.certificates, "certificates", false, "print a certificate of elimination per eliminated team")
	pf.BoolVar(&flags.strict, "strict", true, "reject divisions whose games matrix is inconsistent")
	pf.BoolVar(&flags.verboseFlow, "verbose-flow", false, "debug-log every augmenting path")
	pf.StringVar(&flags.format, "format", "", "output format: ascii, markdown or plain")
	pf.StringVar(&flags.logLevel, "log-level", "", "log level: debug, info, warn or error")
	pf.StringVar(&flags.logFormat, "log-format", "", "log format: text or json")

	cmd.AddCommand(newRunCmd(flags))
	cmd.AddCommand(newBatchCmd(flags))
	return cmd
}

// resolveConfig loads the config file (if any), applies explicitly set
// flags on top, validates, and initialises logging.
func resolveConfig(cmd *cobra.Command, flags *rootFlags) (config.Config, error) {
	cfg := config.Default()
	if flags.configPath != "" {
		loaded, err := config.Load(flags.configPath)
		if err != nil {
			return cfg, err
		}
		cfg = loaded
	}

	changed := cmd.Flags().Changed
	if changed("algorithm") {
		cfg.Algorithm = flags.algorithm
	}
	if changed("parallel") {
		cfg.Parallelism = flags.parallel
	}
	if changed("certificates") {
		cfg.Certificates = flags.certificates
	}
	if changed("strict") {
		cfg.Strict = flags.strict
	}
	if changed("verbose-flow") {
		cfg.VerboseFlow = flags.verboseFlow
	}
	if changed("format") {
		cfg.Output.Format = flags.format
	}
	if changed("log-level") {
		cfg.Log.Level = flags.logLevel
	}
	if changed("log-format") {
		cfg.Log.Format = flags.logFormat
	}
	if err := cfg.Validate(); err != nil {
		return cfg, err
	}

	if err := logging.Setup(cfg.Log.Level, cfg.Log.Format, cmd.ErrOrStderr()); err != nil {
		return cfg, err
	}
	if cfg.VerboseFlow && logging.Level() > slog.LevelDebug {
		logging.SetLevel(slog.LevelDebug)
	}
	return cfg, nil
}
