// Package main provides the CLI entry point for jtdinfer, a tool that
// infers a JSON Type Definition (JTD, RFC 8927) schema from example JSON
// documents.
package main

import (
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
	"os"

	"github.com/spf13/cobra"

	"go.jacobcolvin.com/jtdinfer/jtdinfer"
	applog "go.jacobcolvin.com/jtdinfer/log"
	"go.jacobcolvin.com/jtdinfer/profile"
	"go.jacobcolvin.com/jtdinfer/version"
)

func main() {
	cfg := jtdinfer.NewConfig()
	logCfg := applog.NewConfig()
	profileCfg := profile.NewConfig()
	showVersion := false

	var profiler *profile.Profiler

	rootCmd := &cobra.Command{
		Use:   "jtdinfer [flags] <file.json> [file2.json ...]",
		Short: "Infer a JSON Type Definition schema from example JSON documents",
		Long: `jtdinfer infers the narrowest JSON Type Definition (JTD, RFC 8927) schema
that accepts every example document given to it. Documents are folded one at a
time, in the order supplied; pass "-" to read newline-delimited JSON from
stdin.`,
		SilenceErrors: true,
		SilenceUsage:  true,
		PersistentPreRunE: func(_ *cobra.Command, _ []string) error {
			profiler = profileCfg.NewProfiler()

			return profiler.Start()
		},
		PersistentPostRunE: func(_ *cobra.Command, _ []string) error {
			return profiler.Stop()
		},
		RunE: func(_ *cobra.Command, args []string) error {
			if showVersion {
				fmt.Fprintf(os.Stdout, "jtdinfer %s (%s, %s/%s)\n",
					orUnknown(version.Version), version.Revision, version.GoOS, version.GoArch)

				return nil
			}

			if len(args) == 0 {
				return fmt.Errorf("%w: no input files given", jtdinfer.ErrReadInput)
			}

			return run(cfg, logCfg, args, os.Stdout)
		},
	}

	cfg.RegisterFlags(rootCmd.Flags())
	logCfg.RegisterFlags(rootCmd.PersistentFlags())
	profileCfg.RegisterFlags(rootCmd.PersistentFlags())
	rootCmd.Flags().BoolVar(&showVersion, "version", false, "print version information and exit")

	for _, register := range []func(*cobra.Command) error{
		cfg.RegisterCompletions,
		logCfg.RegisterCompletions,
		profileCfg.RegisterCompletions,
	} {
		if err := register(rootCmd); err != nil {
			fmt.Fprintf(os.Stderr, "register completions: %v\n", err)
		}
	}

	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "%v\n", err)
		os.Exit(1)
	}
}

func run(cfg *jtdinfer.Config, logCfg *applog.Config, args []string, stdout io.Writer) error {
	handler, err := logCfg.NewHandler(os.Stderr)
	if err != nil {
		return err
	}

	logger := slog.New(handler)

	driver, err := cfg.NewDriver()
	if err != nil {
		return err
	}

	for _, arg := range args {
		if err := feedArg(driver, arg, logger); err != nil {
			return err
		}
	}

	schema := driver.Schema()

	out, err := json.MarshalIndent(schema, "", "  ")
	if err != nil {
		return fmt.Errorf("%w: %w", jtdinfer.ErrWriteOutput, err)
	}

	out = append(out, '\n')

	if _, err := stdout.Write(out); err != nil {
		return fmt.Errorf("%w: %w", jtdinfer.ErrWriteOutput, err)
	}

	return nil
}

func feedArg(driver *jtdinfer.Driver, arg string, logger *slog.Logger) error {
	var r io.Reader

	if arg == "-" {
		r = os.Stdin
	} else {
		f, err := os.Open(arg)
		if err != nil {
			return fmt.Errorf("%w: %w", jtdinfer.ErrReadInput, err)
		}

		defer f.Close()

		r = f
	}

	if err := driver.Feed(r); err != nil {
		logger.Warn("skipping malformed input", "file", arg, "error", err)
	}

	return nil
}

func orUnknown(s string) string {
	if s == "" {
		return "unknown"
	}

	return s
}
