package main

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"os"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/c360studio/ontogen/codegen"
	"github.com/c360studio/ontogen/config"
	"github.com/c360studio/ontogen/ontology"
	"github.com/c360studio/ontogen/output"
)

// runner executes whole generation runs. Watch mode reuses one runner, so
// metrics accumulate across runs.
type runner struct {
	cfg    *config.Config
	logger *slog.Logger
	out    io.Writer

	namer   *codegen.Namer
	metrics *codegen.Metrics

	dryRun      bool
	metricsFile string
}

// runResult describes one completed run.
type runResult struct {
	ID               string
	Documents        []string
	DocumentFailures int
	Stats            codegen.Stats
}

func newRunner(cfg *config.Config, logger *slog.Logger, out io.Writer) *runner {
	return &runner{
		cfg:     cfg,
		logger:  logger,
		out:     out,
		namer:   codegen.NewNamer(cfg.Names.Overrides, cfg.Names.Keywords),
		metrics: codegen.NewMetrics(),
	}
}

// run loads every document, classifies the batch and emits all classes.
// It fails when the documents cannot be resolved or any class failed.
func (r *runner) run(ctx context.Context, patterns []string) (runResult, error) {
	result := runResult{ID: uuid.NewString()}
	logger := r.logger.With("run_id", result.ID)

	docs, err := ontology.ResolveDocuments(patterns)
	if err != nil {
		return result, err
	}
	result.Documents = docs

	outputPath, err := r.outputPath()
	if err != nil {
		return result, err
	}

	logger.Info("Generating from ontology files", "documents", strings.Join(docs, ","))
	logger.Info("Writing files", "path", outputPath, "dry_run", r.dryRun)

	loader := ontology.NewLoader(logger)
	if err := loader.LoadAll(ctx, docs); err != nil {
		return result, err
	}
	result.DocumentFailures = len(loader.Failures())

	model := ontology.Classify(loader.Entries())
	logger.Info("All ontologies read. Generating code...",
		"loaded", len(loader.Loaded()),
		"failed", result.DocumentFailures,
		"ontologies", model.OntologyCount(),
		"classes", len(model.Classes()))

	var (
		sink output.Sink
		mem  *output.MemorySink
		dir  *output.DirSink
	)
	if r.dryRun {
		mem = output.NewMemorySink()
		sink = mem
	} else {
		dir = output.NewDirSink(outputPath, logger)
		sink = dir
	}

	gen := codegen.NewGenerator(sink, codegen.Config{
		Emit:   emitOptions(r.cfg),
		Namer:  r.namer,
		Verify: r.cfg.Output.Verify,
		Logger: logger,
	})

	stats, genErr := gen.Generate(ctx, model)
	result.Stats = stats
	if ctx.Err() != nil {
		return result, ctx.Err()
	}

	if mem != nil {
		for _, p := range mem.Paths() {
			fmt.Fprintln(r.out, p)
		}
	}

	r.metrics.RecordRun(stats, result.DocumentFailures, time.Now())
	if r.metricsFile != "" {
		if err := r.metrics.WriteFile(r.metricsFile); err != nil {
			logger.Warn("Failed to write metrics file", "path", r.metricsFile, "error", err)
		}
	}

	summary := []any{
		"classes", stats.ClassesEmitted,
		"failed", stats.ClassesFailed,
		"properties", stats.PropertiesEmitted,
		"skipped_properties", stats.PropertiesSkipped,
	}
	if dir != nil {
		summary = append(summary,
			"files_written", dir.UnitsWritten(),
			"write_errors", dir.WriteErrors())
	}
	logger.Info("Generation complete", summary...)

	if genErr != nil {
		return result, fmt.Errorf("%d of %d classes failed: %w",
			stats.ClassesFailed, stats.ClassesFailed+stats.ClassesEmitted, genErr)
	}
	return result, nil
}

// outputPath returns the configured output root, or the working directory.
func (r *runner) outputPath() (string, error) {
	if r.cfg.Output.Path != "" {
		return r.cfg.Output.Path, nil
	}
	cwd, err := os.Getwd()
	if err != nil {
		return "", fmt.Errorf("get working directory: %w", err)
	}
	return cwd, nil
}

// emitOptions maps the emit configuration to header layout options.
func emitOptions(cfg *config.Config) codegen.EmitOptions {
	return codegen.EmitOptions{
		OuterNamespace: cfg.Emit.OuterNamespace,
		BaseClass:      cfg.Emit.BaseClass,
		BaseInclude:    cfg.Emit.BaseInclude,
		Extension:      cfg.Output.Extension,
		CommentWidth:   cfg.Emit.CommentWidth,
	}
}
