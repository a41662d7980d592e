package cli

import (
	"errors"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/goliatone/go-formschema/pkg/depgraph"
	"github.com/goliatone/go-formschema/pkg/migrate"
)

var validateCmd = &cobra.Command{
	Use:   "validate <document>",
	Short: "Check a schema document's structure and migrate it in memory",
	Args:  cobra.ExactArgs(1),
	RunE:  runValidate,
}

func runValidate(cmd *cobra.Command, args []string) error {
	log := logger()
	data, err := readDocument(args[0])
	if err != nil {
		return err
	}

	report, err := validateDocument(data)
	if err != nil {
		return err
	}

	log.Info().
		Str("id", report.ID).
		Str("version", report.Version).
		Int("fields", report.Fields).
		Msg("document is valid")
	for _, id := range report.CycleEntryPoints {
		log.Warn().Str("field", id).Msg("conditional rules form a dependency cycle")
	}
	return nil
}

// validationReport summarizes a structurally valid document.
type validationReport struct {
	ID               string
	Version          string
	Fields           int
	CycleEntryPoints []string
}

func validateDocument(data []byte) (validationReport, error) {
	form, err := migrate.ParseDocument(data)
	if err != nil {
		if errors.Is(err, migrate.ErrStructuralInvalid) {
			return validationReport{}, fmt.Errorf("document rejected: %w", err)
		}
		return validationReport{}, err
	}
	return validationReport{
		ID:               form.ID,
		Version:          form.Version,
		Fields:           len(form.Fields),
		CycleEntryPoints: depgraph.DetectCycles(form.Fields),
	}, nil
}
