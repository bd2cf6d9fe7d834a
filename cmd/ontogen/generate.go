package main

import (
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"

	"github.com/c360studio/ontogen/config"
)

// generateOptions holds the flags of the generate command.
type generateOptions struct {
	configPath  string
	outputPath  string
	quiet       bool
	logLevel    string
	verify      bool
	dryRun      bool
	watch       bool
	metricsFile string
}

func generateCmd() *cobra.Command {
	var opts generateOptions

	cmd := &cobra.Command{
		Use:   "generate [flags] ONTOLOGY...",
		Short: "Generate accessor headers from ontology documents",
		Long: `Generate reads every ontology document, builds the class hierarchy of the
whole batch and writes one header per class to <output>/<ns>/<class>.h.

Arguments may be glob patterns ("ontologies/**/*.nq"). Documents that fail to
parse are reported and skipped. The command fails when any class could not be
generated.`,
		Args: cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runGenerate(cmd, opts, args)
		},
	}

	flags := cmd.Flags()
	flags.StringVarP(&opts.configPath, "config", "c", "", "Config file path (YAML)")
	flags.StringVarP(&opts.outputPath, "output", "o", "", "The destination folder (default: current directory)")
	flags.BoolVarP(&opts.quiet, "quiet", "q", false, "Only report errors")
	flags.StringVar(&opts.logLevel, "log-level", "info", "Log level (debug, info, warn, error)")
	flags.BoolVar(&opts.verify, "verify", false, "Parse every header as C++ before writing it")
	flags.BoolVar(&opts.dryRun, "dry-run", false, "Generate without writing; print the header paths")
	flags.BoolVar(&opts.watch, "watch", false, "Regenerate whenever an ontology document changes")
	flags.StringVar(&opts.metricsFile, "metrics-file", "", "Write run metrics in Prometheus text format to this file")

	return cmd
}

func runGenerate(cmd *cobra.Command, opts generateOptions, patterns []string) error {
	// Configuration is loaded with the flag log level; the final logger
	// follows the merged configuration.
	bootstrap := newLogger(cmd.ErrOrStderr(), opts.logLevel, opts.quiet)

	cfg, err := config.NewLoader(bootstrap).Load(opts.configPath)
	if err != nil {
		return fmt.Errorf("load config: %w", err)
	}
	if err := applyFlags(cmd, cfg, opts); err != nil {
		return err
	}

	logger := newLogger(cmd.ErrOrStderr(), cfg.Log.Level, cfg.Log.Quiet)

	ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	r := newRunner(cfg, logger, cmd.OutOrStdout())
	r.dryRun = opts.dryRun
	r.metricsFile = opts.metricsFile

	_, err = r.run(ctx, patterns)
	if !opts.watch {
		return err
	}
	if err != nil {
		logger.Error("Generation failed", "error", err)
	}
	return r.watch(ctx, patterns)
}

// applyFlags overrides configuration with explicitly set flags.
func applyFlags(cmd *cobra.Command, cfg *config.Config, opts generateOptions) error {
	flags := cmd.Flags()
	if flags.Changed("output") {
		cfg.Output.Path = opts.outputPath
	}
	if flags.Changed("quiet") {
		cfg.Log.Quiet = opts.quiet
	}
	if flags.Changed("log-level") {
		cfg.Log.Level = opts.logLevel
	}
	if flags.Changed("verify") {
		cfg.Output.Verify = opts.verify
	}

	if err := cfg.Validate(); err != nil {
		return fmt.Errorf("invalid configuration: %w", err)
	}
	return nil
}
