package cli

import (
	"encoding/json"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/goliatone/go-formschema/pkg/migrate"
)

var migrateOutput string

var migrateCmd = &cobra.Command{
	Use:   "migrate <document>",
	Short: "Normalize a schema document to the current structural version",
	Args:  cobra.ExactArgs(1),
	RunE:  runMigrate,
}

func init() {
	migrateCmd.Flags().StringVarP(&migrateOutput, "output", "o", "", "output file (stdout if empty)")
}

func runMigrate(cmd *cobra.Command, args []string) error {
	data, err := readDocument(args[0])
	if err != nil {
		return err
	}
	form, err := migrate.ParseDocument(data)
	if err != nil {
		return fmt.Errorf("migrate %s: %w", args[0], err)
	}
	payload, err := json.MarshalIndent(form, "", "  ")
	if err != nil {
		return fmt.Errorf("encode migrated document: %w", err)
	}
	return writeOutput(migrateOutput, payload)
}
