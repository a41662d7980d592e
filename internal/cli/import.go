package cli

import (
	"encoding/json"
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/goliatone/go-formschema/pkg/openapi"
)

var (
	importOperation string
	importOutput    string
)

var importCmd = &cobra.Command{
	Use:   "import <openapi-document>",
	Short: "Build a form schema from an OpenAPI operation's request body",
	Args:  cobra.ExactArgs(1),
	RunE:  runImport,
}

func init() {
	importCmd.Flags().StringVar(&importOperation, "operation", "", "operation id to import (required)")
	importCmd.Flags().StringVarP(&importOutput, "output", "o", "", "output file (stdout if empty)")
	_ = importCmd.MarkFlagRequired("operation")
}

func runImport(cmd *cobra.Command, args []string) error {
	importer := openapi.NewImporter(openapi.WithLoader(openapi.NewLoader(openapi.LoaderOptions{AllowHTTP: true})))

	form, err := importer.ImportSource(cmd.Context(), parseSource(args[0]), importOperation)
	if err != nil {
		return fmt.Errorf("import operation %q: %w", importOperation, err)
	}
	payload, err := json.MarshalIndent(form, "", "  ")
	if err != nil {
		return fmt.Errorf("encode schema: %w", err)
	}
	return writeOutput(importOutput, payload)
}

func parseSource(raw string) openapi.Source {
	trimmed := strings.TrimSpace(raw)
	if strings.HasPrefix(trimmed, "http://") || strings.HasPrefix(trimmed, "https://") {
		return openapi.SourceFromURL(trimmed)
	}
	return openapi.SourceFromFile(trimmed)
}
