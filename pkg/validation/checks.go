package validation

import (
	"fmt"
	"path"
	"strings"

	"github.com/goliatone/go-formschema/pkg/schema"
)

// checkStructural runs the per-type checks that generic rules cannot
// express: numeric bounds, file size and accept constraints, and checkbox
// selection counts.
func (e *Engine) checkStructural(field schema.FieldSchema, value any) (bool, string) {
	switch cfg := field.Config.(type) {
	case schema.NumberConfig:
		return e.checkNumber(cfg, value)
	case schema.FileConfig:
		return e.checkFiles(field, cfg, value)
	case schema.ChoiceConfig:
		if field.Type == schema.FieldTypeCheckbox {
			return checkSelections(cfg, value)
		}
	}
	return true, ""
}

func (e *Engine) checkNumber(cfg schema.NumberConfig, value any) (bool, string) {
	number, ok := answerNumber(value)
	if !ok {
		return false, "Enter a valid number"
	}
	if cfg.Min != nil && number < *cfg.Min {
		return false, fmt.Sprintf("Must be at least %v", *cfg.Min)
	}
	if cfg.Max != nil && number > *cfg.Max {
		return false, fmt.Sprintf("Must be at most %v", *cfg.Max)
	}
	return true, ""
}

func (e *Engine) checkFiles(field schema.FieldSchema, cfg schema.FileConfig, value any) (bool, string) {
	for _, file := range fileValues(value) {
		if cfg.MaxSize > 0 && file.Size > cfg.MaxSize {
			return false, fmt.Sprintf("%s exceeds the %s limit", file.Name, byteSize(cfg.MaxSize))
		}
		if cfg.Accept != "" {
			matched, ok := acceptMatch(cfg.Accept, file)
			if !ok {
				e.logger.Warn().
					Str("field", field.ID).
					Str("file", file.Name).
					Str("accept", cfg.Accept).
					Msg("file type cannot be determined; accept check skipped")
				continue
			}
			if !matched {
				return false, fmt.Sprintf("%s is not an accepted file type", file.Name)
			}
		}
	}
	return true, ""
}

func fileValues(value any) []schema.FileValue {
	switch v := value.(type) {
	case schema.FileValue:
		return []schema.FileValue{v}
	case *schema.FileValue:
		if v == nil {
			return nil
		}
		return []schema.FileValue{*v}
	case []schema.FileValue:
		return v
	case []any:
		out := make([]schema.FileValue, 0, len(v))
		for _, item := range v {
			if file, ok := item.(schema.FileValue); ok {
				out = append(out, file)
			}
		}
		return out
	default:
		return nil
	}
}

// acceptMatch checks a file against a comma-separated accept list of
// extensions (".pdf") and MIME patterns ("image/png", "image/*"). The second
// return is false when the file exposes neither a usable name nor MIME type
// for the listed patterns, which callers treat as a configuration gap.
func acceptMatch(accept string, file schema.FileValue) (bool, bool) {
	ext := strings.ToLower(path.Ext(file.Name))
	mime := strings.ToLower(strings.TrimSpace(file.MIME))

	comparable := false
	for _, entry := range strings.Split(accept, ",") {
		entry = strings.ToLower(strings.TrimSpace(entry))
		if entry == "" {
			continue
		}
		if strings.HasPrefix(entry, ".") {
			if ext == "" {
				continue
			}
			comparable = true
			if ext == entry {
				return true, true
			}
			continue
		}
		if mime == "" {
			continue
		}
		comparable = true
		if category, ok := strings.CutSuffix(entry, "/*"); ok {
			if strings.HasPrefix(mime, category+"/") {
				return true, true
			}
			continue
		}
		if mime == entry {
			return true, true
		}
	}
	return false, comparable
}

func checkSelections(cfg schema.ChoiceConfig, value any) (bool, string) {
	count, ok := selectionCount(value)
	if !ok {
		return true, ""
	}
	if cfg.MinSelections != nil && count < *cfg.MinSelections {
		return false, fmt.Sprintf("Select at least %d options", *cfg.MinSelections)
	}
	if cfg.MaxSelections != nil && count > *cfg.MaxSelections {
		return false, fmt.Sprintf("Select at most %d options", *cfg.MaxSelections)
	}
	return true, ""
}

func selectionCount(value any) (int, bool) {
	switch v := value.(type) {
	case []any:
		return len(v), true
	case []string:
		return len(v), true
	default:
		return 0, false
	}
}

func byteSize(n int64) string {
	switch {
	case n >= 1<<20 && n%(1<<20) == 0:
		return fmt.Sprintf("%dMB", n>>20)
	case n >= 1<<10 && n%(1<<10) == 0:
		return fmt.Sprintf("%dKB", n>>10)
	default:
		return fmt.Sprintf("%d bytes", n)
	}
}
