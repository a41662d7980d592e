package openapi

import (
	"fmt"
	"strings"
	"unicode"

	"github.com/getkin/kin-openapi/openapi3"

	"github.com/goliatone/go-formschema/pkg/schema"
)

// mapProperty converts one OpenAPI property into a field type and config.
// Structures richer than the form vocabulary (nested objects, arrays of
// objects) degrade to a textarea so nothing is silently dropped.
func mapProperty(src *openapi3.Schema, required bool) (schema.FieldType, schema.FieldConfig) {
	switch {
	case src.Type.Is(openapi3.TypeString):
		return mapString(src, required)
	case src.Type.Is(openapi3.TypeInteger), src.Type.Is(openapi3.TypeNumber):
		return schema.FieldTypeNumber, numberConfig(src, required)
	case src.Type.Is(openapi3.TypeBoolean):
		return schema.FieldTypeRadio, schema.ChoiceConfig{
			Required: required,
			Options: []schema.Option{
				{Label: "Yes", Value: "true"},
				{Label: "No", Value: "false"},
			},
		}
	case src.Type.Is(openapi3.TypeArray):
		if src.Items != nil && src.Items.Value != nil && len(src.Items.Value.Enum) > 0 {
			return schema.FieldTypeCheckbox, schema.ChoiceConfig{
				Required: required,
				Options:  enumOptions(src.Items.Value.Enum),
			}
		}
		return schema.FieldTypeTextarea, schema.TextConfig{Required: required, HelpText: "One entry per line"}
	default:
		return schema.FieldTypeTextarea, schema.TextConfig{Required: required}
	}
}

func mapString(src *openapi3.Schema, required bool) (schema.FieldType, schema.FieldConfig) {
	if len(src.Enum) > 0 {
		return schema.FieldTypeSelect, schema.ChoiceConfig{
			Required: required,
			Options:  enumOptions(src.Enum),
		}
	}

	switch src.Format {
	case "email":
		return schema.FieldTypeEmail, schema.TextConfig{
			Required: required,
			Rules:    []schema.ValidationRule{{Kind: schema.ValidationEmail, Message: "Enter a valid email address"}},
		}
	case "uri", "url":
		return schema.FieldTypeURL, schema.TextConfig{
			Required: required,
			Rules:    []schema.ValidationRule{{Kind: schema.ValidationURL, Message: "Enter a valid URL"}},
		}
	case "date", "date-time":
		return schema.FieldTypeDate, schema.TextConfig{Required: required}
	case "time":
		return schema.FieldTypeTime, schema.TextConfig{Required: required}
	case "binary":
		return schema.FieldTypeFile, schema.FileConfig{Required: required}
	}

	cfg := schema.TextConfig{Required: required, Rules: stringRules(src)}
	if src.MaxLength != nil && *src.MaxLength > 160 {
		return schema.FieldTypeTextarea, cfg
	}
	return schema.FieldTypeText, cfg
}

func stringRules(src *openapi3.Schema) []schema.ValidationRule {
	var rules []schema.ValidationRule
	if src.MinLength > 0 {
		rules = append(rules, schema.ValidationRule{
			Kind:    schema.ValidationMinLength,
			Value:   float64(src.MinLength),
			Message: fmt.Sprintf("Must be at least %d characters", src.MinLength),
		})
	}
	if src.MaxLength != nil {
		rules = append(rules, schema.ValidationRule{
			Kind:    schema.ValidationMaxLength,
			Value:   float64(*src.MaxLength),
			Message: fmt.Sprintf("Must be at most %d characters", *src.MaxLength),
		})
	}
	if src.Pattern != "" {
		rules = append(rules, schema.ValidationRule{
			Kind:    schema.ValidationPattern,
			Value:   src.Pattern,
			Message: "Value does not match the expected format",
		})
	}
	return rules
}

func numberConfig(src *openapi3.Schema, required bool) schema.NumberConfig {
	cfg := schema.NumberConfig{Required: required}
	if src.Min != nil {
		value := *src.Min
		cfg.Min = &value
	}
	if src.Max != nil {
		value := *src.Max
		cfg.Max = &value
	}
	return cfg
}

func enumOptions(values []any) []schema.Option {
	options := make([]schema.Option, 0, len(values))
	for _, value := range values {
		raw := fmt.Sprint(value)
		options = append(options, schema.Option{Label: Label(raw), Value: raw})
	}
	return options
}

// Label humanizes a property name: snake_case, kebab-case, and camelCase all
// become spaced title case.
func Label(name string) string {
	if name == "" {
		return ""
	}
	var words []string
	var current strings.Builder
	flush := func() {
		if current.Len() > 0 {
			words = append(words, current.String())
			current.Reset()
		}
	}
	var prev rune
	for _, r := range name {
		switch {
		case r == '_' || r == '-' || r == '.' || r == ' ':
			flush()
		case unicode.IsUpper(r) && prev != 0 && !unicode.IsUpper(prev):
			flush()
			current.WriteRune(r)
		default:
			current.WriteRune(r)
		}
		prev = r
	}
	flush()

	for i, word := range words {
		runes := []rune(strings.ToLower(word))
		if len(runes) > 0 {
			runes[0] = unicode.ToUpper(runes[0])
		}
		words[i] = string(runes)
	}
	return strings.Join(words, " ")
}
