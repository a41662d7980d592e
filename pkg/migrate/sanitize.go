package migrate

import (
	"regexp"
	"strings"
	"sync"

	"github.com/microcosm-cc/bluemonday"

	"github.com/goliatone/go-formschema/pkg/schema"
)

var (
	textPolicyOnce sync.Once
	textPolicy     *bluemonday.Policy
)

// sanitizeSchema strips markup from user-authored display strings. Stored
// documents may come from untrusted editors; labels and help text end up in
// rendered pages verbatim.
func sanitizeSchema(s *schema.FormSchema) {
	s.Metadata.Title = sanitizeText(s.Metadata.Title)
	s.Metadata.Description = sanitizeText(s.Metadata.Description)
	s.Settings.SuccessMessage = sanitizeText(s.Settings.SuccessMessage)
	s.Settings.SubmitButton.Text = sanitizeText(s.Settings.SubmitButton.Text)

	for i := range s.Fields {
		field := &s.Fields[i]
		field.Label = sanitizeText(field.Label)
		field.Config = sanitizeConfig(field.Config)
	}
}

func sanitizeConfig(cfg schema.FieldConfig) schema.FieldConfig {
	switch typed := cfg.(type) {
	case schema.TextConfig:
		typed.HelpText = sanitizeText(typed.HelpText)
		typed.Placeholder = sanitizeText(typed.Placeholder)
		return typed
	case schema.NumberConfig:
		typed.HelpText = sanitizeText(typed.HelpText)
		typed.Placeholder = sanitizeText(typed.Placeholder)
		return typed
	case schema.ChoiceConfig:
		typed.HelpText = sanitizeText(typed.HelpText)
		if typed.Options != nil {
			options := make([]schema.Option, len(typed.Options))
			for i, option := range typed.Options {
				option.Label = sanitizeText(option.Label)
				options[i] = option
			}
			typed.Options = options
		}
		return typed
	case schema.FileConfig:
		typed.HelpText = sanitizeText(typed.HelpText)
		return typed
	case schema.LayoutConfig:
		typed.Description = sanitizeText(typed.Description)
		return typed
	default:
		return cfg
	}
}

// markupShape detects an actual tag opening: '<' followed by a tag name,
// closing slash, or declaration. A bare '<' in prose ("age < 18") is not
// markup and must round-trip untouched.
var markupShape = regexp.MustCompile(`<[a-zA-Z/!?]`)

// sanitizeText strips tags only when markup is present, so plain text like
// "Cats & Dogs" or "age < 18" round-trips byte for byte. Sanitized output
// never contains a raw '<', which keeps repeated migration stable.
func sanitizeText(raw string) string {
	if !markupShape.MatchString(raw) {
		return raw
	}
	return strings.TrimSpace(textSanitizer().Sanitize(raw))
}

func textSanitizer() *bluemonday.Policy {
	textPolicyOnce.Do(func() {
		textPolicy = bluemonday.StrictPolicy()
	})
	return textPolicy
}
