// Package cli implements the formschema command-line interface: a terminal
// caller of the core engine for validating, migrating, linting, and seeding
// form schema documents.
package cli

import (
	"os"

	"github.com/rs/zerolog"
	"github.com/spf13/cobra"
)

var verbose bool

var rootCmd = &cobra.Command{
	Use:   "formschema",
	Short: "Form schema rule engine toolbox",
	Long: `formschema inspects and transforms declarative form schema documents.

It validates stored documents, migrates them to the current structural
version, lints conditional visibility rules for dependency cycles, imports
schemas from OpenAPI operations, and scaffolds new schemas interactively.

Example:
  formschema validate form.json          # Structure check + migration dry run
  formschema migrate form.json -o out.json
  formschema cycles form.json            # Lint conditional rules
  formschema import api.yaml --operation createArticle
  formschema watch form.json             # Re-validate on change`,
	SilenceUsage:  true,
	SilenceErrors: true,
}

// Execute runs the root command.
func Execute() error {
	return rootCmd.Execute()
}

func init() {
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "enable verbose output")

	rootCmd.AddCommand(validateCmd)
	rootCmd.AddCommand(migrateCmd)
	rootCmd.AddCommand(cyclesCmd)
	rootCmd.AddCommand(importCmd)
	rootCmd.AddCommand(watchCmd)
	rootCmd.AddCommand(newCmd)
}

// logger builds the CLI diagnostics logger. Verbose enables debug output.
func logger() zerolog.Logger {
	level := zerolog.InfoLevel
	if verbose {
		level = zerolog.DebugLevel
	}
	writer := zerolog.ConsoleWriter{Out: os.Stderr}
	return zerolog.New(writer).Level(level).With().Timestamp().Logger()
}
