package schema

import "encoding/json"

// FieldConfig is the tagged union of per-type configuration variants. The
// field's Type selects the variant; consumers switch on the concrete type
// rather than probing for attribute presence.
type FieldConfig interface {
	isFieldConfig()
}

// TextConfig configures free-text fields (text, textarea, email, phone, url,
// date, time, signature, location).
type TextConfig struct {
	Placeholder string           `json:"placeholder,omitempty"`
	Required    bool             `json:"required,omitempty"`
	HelpText    string           `json:"helpText,omitempty"`
	Rules       []ValidationRule `json:"rules,omitempty"`
}

// NumberConfig configures numeric fields (number, rating, slider).
type NumberConfig struct {
	Placeholder string           `json:"placeholder,omitempty"`
	Required    bool             `json:"required,omitempty"`
	HelpText    string           `json:"helpText,omitempty"`
	Min         *float64         `json:"min,omitempty"`
	Max         *float64         `json:"max,omitempty"`
	Step        *float64         `json:"step,omitempty"`
	Rules       []ValidationRule `json:"rules,omitempty"`
}

// Option is one entry in a choice field's ordered option list.
type Option struct {
	Label    string `json:"label"`
	Value    string `json:"value"`
	Disabled bool   `json:"disabled,omitempty"`
}

// ChoiceConfig configures choice fields (select, radio, checkbox).
// MinSelections/MaxSelections bound the number of checked values and only
// apply to checkbox groups.
type ChoiceConfig struct {
	Required      bool     `json:"required,omitempty"`
	HelpText      string   `json:"helpText,omitempty"`
	Options       []Option `json:"options"`
	MinSelections *int     `json:"minSelections,omitempty"`
	MaxSelections *int     `json:"maxSelections,omitempty"`
}

// FileConfig configures file upload fields. Accept is a comma-separated list
// of extensions (".pdf") and MIME patterns ("image/png", "image/*"); MaxSize
// is a per-file limit in bytes. Zero values disable the respective check.
type FileConfig struct {
	Required bool   `json:"required,omitempty"`
	HelpText string `json:"helpText,omitempty"`
	Accept   string `json:"accept,omitempty"`
	MaxSize  int64  `json:"maxSize,omitempty"`
	Multiple bool   `json:"multiple,omitempty"`
}

// LayoutConfig configures section fields, which have no value semantics. The
// section heading is the field label.
type LayoutConfig struct {
	Description string `json:"description,omitempty"`
	Divider     bool   `json:"divider,omitempty"`
}

// HiddenConfig configures hidden carrier fields.
type HiddenConfig struct {
	Value string `json:"value,omitempty"`
}

func (TextConfig) isFieldConfig()   {}
func (NumberConfig) isFieldConfig() {}
func (ChoiceConfig) isFieldConfig() {}
func (FileConfig) isFieldConfig()   {}
func (LayoutConfig) isFieldConfig() {}
func (HiddenConfig) isFieldConfig() {}

func decodeConfig(t FieldType, raw json.RawMessage) (FieldConfig, error) {
	if len(raw) == 0 || string(raw) == "null" {
		return DefaultConfig(t), nil
	}
	switch t {
	case FieldTypeNumber, FieldTypeRating, FieldTypeSlider:
		var cfg NumberConfig
		if err := json.Unmarshal(raw, &cfg); err != nil {
			return nil, err
		}
		return cfg, nil
	case FieldTypeSelect, FieldTypeRadio, FieldTypeCheckbox:
		var cfg ChoiceConfig
		if err := json.Unmarshal(raw, &cfg); err != nil {
			return nil, err
		}
		return cfg, nil
	case FieldTypeFile:
		var cfg FileConfig
		if err := json.Unmarshal(raw, &cfg); err != nil {
			return nil, err
		}
		return cfg, nil
	case FieldTypeSection:
		var cfg LayoutConfig
		if err := json.Unmarshal(raw, &cfg); err != nil {
			return nil, err
		}
		return cfg, nil
	case FieldTypeHidden:
		var cfg HiddenConfig
		if err := json.Unmarshal(raw, &cfg); err != nil {
			return nil, err
		}
		return cfg, nil
	default:
		var cfg TextConfig
		if err := json.Unmarshal(raw, &cfg); err != nil {
			return nil, err
		}
		return cfg, nil
	}
}

// DefaultConfig returns the zero variant for a field type. The catalog layers
// richer per-type defaults on top of this shape.
func DefaultConfig(t FieldType) FieldConfig {
	switch t {
	case FieldTypeNumber, FieldTypeRating, FieldTypeSlider:
		return NumberConfig{}
	case FieldTypeSelect, FieldTypeRadio, FieldTypeCheckbox:
		return ChoiceConfig{}
	case FieldTypeFile:
		return FileConfig{}
	case FieldTypeSection:
		return LayoutConfig{}
	case FieldTypeHidden:
		return HiddenConfig{}
	default:
		return TextConfig{}
	}
}

func cloneConfig(cfg FieldConfig) FieldConfig {
	switch typed := cfg.(type) {
	case TextConfig:
		typed.Rules = cloneRules(typed.Rules)
		return typed
	case NumberConfig:
		typed.Min = cloneFloat(typed.Min)
		typed.Max = cloneFloat(typed.Max)
		typed.Step = cloneFloat(typed.Step)
		typed.Rules = cloneRules(typed.Rules)
		return typed
	case ChoiceConfig:
		typed.Options = append([]Option(nil), typed.Options...)
		typed.MinSelections = cloneInt(typed.MinSelections)
		typed.MaxSelections = cloneInt(typed.MaxSelections)
		return typed
	default:
		return cfg
	}
}

func cloneRules(rules []ValidationRule) []ValidationRule {
	if rules == nil {
		return nil
	}
	return append([]ValidationRule(nil), rules...)
}

func cloneFloat(v *float64) *float64 {
	if v == nil {
		return nil
	}
	out := *v
	return &out
}

func cloneInt(v *int) *int {
	if v == nil {
		return nil
	}
	out := *v
	return &out
}
