package cli

import (
	"encoding/json"
	"errors"
	"fmt"

	"github.com/AlecAivazis/survey/v2"
	"github.com/AlecAivazis/survey/v2/terminal"
	"github.com/spf13/cobra"

	"github.com/goliatone/go-formschema/pkg/catalog"
	"github.com/goliatone/go-formschema/pkg/model"
	"github.com/goliatone/go-formschema/pkg/schema"
)

var newOutput string

var newCmd = &cobra.Command{
	Use:   "new",
	Short: "Assemble a schema document interactively",
	RunE:  runNew,
}

func init() {
	newCmd.Flags().StringVarP(&newOutput, "output", "o", "form.json", "output file")
}

func runNew(cmd *cobra.Command, args []string) error {
	m := model.New()
	cat := catalog.Default()

	var title string
	if err := ask(&survey.Input{Message: "Form title:", Default: "Untitled Form"}, &title); err != nil {
		return err
	}

	form := m.NewSchema()
	form = m.UpdateMetadata(form, title, "")

	typeLabels, typesByLabel := typeChoices(cat)
	for {
		var more bool
		if err := ask(&survey.Confirm{Message: "Add a field?", Default: true}, &more); err != nil {
			return err
		}
		if !more {
			break
		}

		var typeLabel string
		if err := ask(&survey.Select{Message: "Field type:", Options: typeLabels, PageSize: 10}, &typeLabel); err != nil {
			return err
		}
		fieldType := typesByLabel[typeLabel]

		var field schema.FieldSchema
		var err error
		form, field, err = m.AddField(form, fieldType)
		if err != nil {
			return err
		}

		var label string
		if err := ask(&survey.Input{Message: "Label:", Default: field.Label}, &label); err != nil {
			return err
		}
		patch := model.FieldPatch{Label: &label}

		if fieldType.Interactive() && fieldType.HasValue() {
			var required bool
			if err := ask(&survey.Confirm{Message: "Required?"}, &required); err != nil {
				return err
			}
			patch.Config = withRequired(field.Config, required)
		}
		form = m.UpdateField(form, field.ID, patch)
	}

	payload, err := json.MarshalIndent(form, "", "  ")
	if err != nil {
		return fmt.Errorf("encode schema: %w", err)
	}
	if err := writeOutput(newOutput, payload); err != nil {
		return err
	}
	log := logger()
	log.Info().Str("path", newOutput).Int("fields", len(form.Fields)).Msg("schema written")
	return nil
}

func ask(prompt survey.Prompt, out any) error {
	if err := survey.AskOne(prompt, out); err != nil {
		if errors.Is(err, terminal.InterruptErr) {
			return errors.New("aborted")
		}
		return err
	}
	return nil
}

func typeChoices(cat *catalog.Catalog) ([]string, map[string]schema.FieldType) {
	labels := make([]string, 0, len(schema.Types()))
	byLabel := make(map[string]schema.FieldType)
	for _, fieldType := range schema.Types() {
		def, ok := cat.Lookup(fieldType)
		if !ok {
			continue
		}
		labels = append(labels, def.Label)
		byLabel[def.Label] = fieldType
	}
	return labels, byLabel
}

func withRequired(cfg schema.FieldConfig, required bool) schema.FieldConfig {
	switch typed := cfg.(type) {
	case schema.TextConfig:
		typed.Required = required
		return typed
	case schema.NumberConfig:
		typed.Required = required
		return typed
	case schema.ChoiceConfig:
		typed.Required = required
		return typed
	case schema.FileConfig:
		typed.Required = required
		return typed
	default:
		return cfg
	}
}
