package validation

import (
	"fmt"
	"net/url"
	"regexp"
	"strconv"
	"strings"

	"github.com/goliatone/go-formschema/pkg/schema"
	"github.com/goliatone/go-formschema/pkg/visibility/conditions"
)

// emailShape is a fixed-form shape check, not an RFC 5322 parser: something
// before an @, something after, and a dot in the domain part.
var emailShape = regexp.MustCompile(`^[^\s@]+@[^\s@]+\.[^\s@]+$`)

// runRule evaluates one declared rule. A misconfigured rule (bad pattern,
// non-numeric threshold) is inapplicable: it logs and passes.
func (e *Engine) runRule(field schema.FieldSchema, rule schema.ValidationRule, value any) (bool, string) {
	switch rule.Kind {
	case schema.ValidationRequired:
		if conditions.IsEmpty(value) {
			return false, message(rule, requiredMessage(field))
		}
	case schema.ValidationMinLength:
		length, isString := stringLength(value)
		threshold, ok := thresholdNumber(rule.Value)
		if isString && ok && float64(length) < threshold {
			return false, message(rule, fmt.Sprintf("Must be at least %d characters", int(threshold)))
		}
	case schema.ValidationMaxLength:
		length, isString := stringLength(value)
		threshold, ok := thresholdNumber(rule.Value)
		if isString && ok && float64(length) > threshold {
			return false, message(rule, fmt.Sprintf("Must be at most %d characters", int(threshold)))
		}
	case schema.ValidationMin:
		number, isNumber := answerNumber(value)
		threshold, ok := thresholdNumber(rule.Value)
		if isNumber && ok && number < threshold {
			return false, message(rule, fmt.Sprintf("Must be at least %v", threshold))
		}
	case schema.ValidationMax:
		number, isNumber := answerNumber(value)
		threshold, ok := thresholdNumber(rule.Value)
		if isNumber && ok && number > threshold {
			return false, message(rule, fmt.Sprintf("Must be at most %v", threshold))
		}
	case schema.ValidationPattern:
		text, isString := value.(string)
		if !isString {
			break
		}
		pattern, _ := rule.Value.(string)
		if pattern == "" {
			break
		}
		re, err := regexp.Compile(pattern)
		if err != nil {
			e.logger.Warn().
				Str("field", field.ID).
				Str("pattern", pattern).
				Err(err).
				Msg("pattern rule does not compile; skipping")
			break
		}
		if !re.MatchString(text) {
			return false, message(rule, "Value does not match the expected format")
		}
	case schema.ValidationEmail:
		text, isString := value.(string)
		if isString && !emailShape.MatchString(strings.TrimSpace(text)) {
			return false, message(rule, "Enter a valid email address")
		}
	case schema.ValidationURL:
		text, isString := value.(string)
		if isString {
			// Absolute parse is the whole contract; hostless schemes like
			// mailto: are legitimate answers.
			parsed, err := url.Parse(strings.TrimSpace(text))
			if err != nil || !parsed.IsAbs() {
				return false, message(rule, "Enter a valid URL")
			}
		}
	case schema.ValidationCustom:
		// Extension point: custom rules are resolved by the embedding
		// application, the engine always passes them.
	}
	return true, ""
}

func message(rule schema.ValidationRule, fallback string) string {
	if strings.TrimSpace(rule.Message) != "" {
		return rule.Message
	}
	return fallback
}

func stringLength(value any) (int, bool) {
	text, ok := value.(string)
	if !ok {
		return 0, false
	}
	return len([]rune(text)), true
}

// answerNumber accepts numeric answers and the numeric strings text inputs
// produce.
func answerNumber(value any) (float64, bool) {
	switch v := value.(type) {
	case float64:
		return v, true
	case float32:
		return float64(v), true
	case int:
		return float64(v), true
	case int32:
		return float64(v), true
	case int64:
		return float64(v), true
	case uint:
		return float64(v), true
	case uint64:
		return float64(v), true
	case string:
		parsed, err := strconv.ParseFloat(strings.TrimSpace(v), 64)
		if err != nil {
			return 0, false
		}
		return parsed, true
	default:
		return 0, false
	}
}

// thresholdNumber reads a rule threshold, which editors may store as a
// number or a numeric string.
func thresholdNumber(value any) (float64, bool) {
	return answerNumber(value)
}
