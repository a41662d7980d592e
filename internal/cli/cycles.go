package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/goliatone/go-formschema/pkg/depgraph"
	"github.com/goliatone/go-formschema/pkg/migrate"
)

var cyclesStrict bool

var cyclesCmd = &cobra.Command{
	Use:   "cycles <document>",
	Short: "Lint conditional visibility rules for dependency cycles",
	Long: `cycles builds the conditional-dependency graph of a schema document and
reports the field ids at which cycles re-enter the traversal. Cycles are an
editor-facing warning, not a fatal condition; pass --strict to exit non-zero
when any are found.`,
	Args: cobra.ExactArgs(1),
	RunE: runCycles,
}

func init() {
	cyclesCmd.Flags().BoolVar(&cyclesStrict, "strict", false, "exit non-zero when cycles are found")
}

func runCycles(cmd *cobra.Command, args []string) error {
	log := logger()
	data, err := readDocument(args[0])
	if err != nil {
		return err
	}
	form, err := migrate.ParseDocument(data)
	if err != nil {
		return err
	}

	entryPoints := depgraph.DetectCycles(form.Fields)
	if len(entryPoints) == 0 {
		log.Info().Msg("no dependency cycles found")
		return nil
	}
	for _, id := range entryPoints {
		log.Warn().Str("field", id).Msg("conditional rules form a dependency cycle")
	}
	if cyclesStrict {
		return fmt.Errorf("%d dependency cycle(s) found", len(entryPoints))
	}
	return nil
}
