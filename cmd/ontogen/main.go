// Package main provides the ontogen binary entry point.
// Ontogen compiles ontology documents into C++/Qt accessor headers, one per
// class, each wrapping Nepomuk2::SimpleResource.
package main

import (
	"fmt"
	"io"
	"log/slog"
	"os"
	"runtime"
	"strings"

	"github.com/spf13/cobra"
)

const (
	Version   = "0.1.0"
	BuildTime = "dev"
	appName   = "ontogen"
)

func main() {
	// Add panic recovery
	defer func() {
		if r := recover(); r != nil {
			buf := make([]byte, 4096)
			n := runtime.Stack(buf, false)
			_, _ = fmt.Fprintf(os.Stderr, "PANIC: %v\nStack trace:\n%s\n", r, string(buf[:n]))
			os.Exit(2)
		}
	}()

	if err := rootCmd().Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func rootCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   appName,
		Short: "Ontology-driven accessor class generator",
		Long: `Ontogen reads ontology documents (TriG, N-Quads, Turtle or N-Triples) and generates a
hierarchy of typed wrapper classes around Nepomuk2::SimpleResource which provide
convenience methods to get, set and add the properties of each class.

Each wrapper class is written to its own header below a folder named after the
default namespace abbreviation of its ontology. Example: the header for nao:Tag
is written to nao/tag.h and defined in the namespace Nepomuk2::NAO.`,
		SilenceErrors: true,
		SilenceUsage:  true,
	}

	cmd.AddCommand(generateCmd())
	cmd.AddCommand(configCmd())

	// Version command
	cmd.AddCommand(&cobra.Command{
		Use:   "version",
		Short: "Print version information",
		Run: func(cmd *cobra.Command, args []string) {
			fmt.Fprintf(cmd.OutOrStdout(), "%s version %s (build: %s)\n", appName, Version, BuildTime)
		},
	})

	return cmd
}

// newLogger creates the text logger for a log level. quiet only lets errors
// through.
func newLogger(w io.Writer, logLevel string, quiet bool) *slog.Logger {
	level := slog.LevelInfo
	switch strings.ToLower(logLevel) {
	case "debug":
		level = slog.LevelDebug
	case "warn":
		level = slog.LevelWarn
	case "error":
		level = slog.LevelError
	}
	if quiet {
		level = slog.LevelError
	}
	return slog.New(slog.NewTextHandler(w, &slog.HandlerOptions{Level: level}))
}
