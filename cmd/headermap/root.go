package main

import (
	"fmt"
	"os"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"
)

var (
	// Version is the semantic version (set via -ldflags).
	Version = "dev"
	// Commit is the git commit hash (set via -ldflags).
	Commit = "unknown"

	// verbose enables debug logging
	verbose bool

	logger = log.NewWithOptions(os.Stderr, log.Options{
		Prefix: "headermap",
	})

	// rootCmd represents the base command when called without any subcommands
	rootCmd = &cobra.Command{
		Use:   "headermap",
		Short: "Header path resolution for the j2native translator",
		Long: `headermap answers where the j2native translator places the header
generated for each Java type.

A run is described by a YAML run file plus flag overrides. Overrides for
individual types live in Java properties mapping files; resolved paths
print to stdout as qualified=path lines, one per requested type.`,
		Version:       getVersionString(),
		SilenceUsage:  true,
		SilenceErrors: true,
	}
)

func init() {
	cobra.OnInitialize(initLogger)

	// Global flags
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "enable verbose output")

	// Add subcommands
	rootCmd.AddCommand(resolveCmd)
	rootCmd.AddCommand(dumpCmd)
}

// getVersionString returns a formatted version string for display.
func getVersionString() string {
	if Version == "dev" {
		return "dev (built from source)"
	}
	return fmt.Sprintf("%s (commit: %s)", Version, Commit)
}

// initLogger applies the verbosity flag and environment to the CLI logger.
func initLogger() {
	if verbose {
		logger.SetLevel(log.DebugLevel)
	}

	if lvl := os.Getenv("J2NATIVE_LOG_LEVEL"); lvl != "" {
		parsed, err := log.ParseLevel(lvl)
		if err != nil {
			logger.Warn("ignoring invalid J2NATIVE_LOG_LEVEL", "value", lvl)
			return
		}
		logger.SetLevel(parsed)
	}
}

// Execute runs the root command. This is called by main.main().
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}
