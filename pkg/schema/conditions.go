package schema

// ConditionLogic combines per-rule outcomes.
type ConditionLogic string

const (
	LogicAnd ConditionLogic = "AND"
	LogicOr  ConditionLogic = "OR"
)

// ConditionOperator enumerates the fixed comparison set for conditional
// visibility. There is no general expression language.
type ConditionOperator string

const (
	OperatorEquals             ConditionOperator = "equals"
	OperatorNotEquals          ConditionOperator = "notEquals"
	OperatorContains           ConditionOperator = "contains"
	OperatorNotContains        ConditionOperator = "notContains"
	OperatorGreaterThan        ConditionOperator = "greaterThan"
	OperatorLessThan           ConditionOperator = "lessThan"
	OperatorGreaterThanOrEqual ConditionOperator = "greaterThanOrEqual"
	OperatorLessThanOrEqual    ConditionOperator = "lessThanOrEqual"
	OperatorIsEmpty            ConditionOperator = "isEmpty"
	OperatorIsNotEmpty         ConditionOperator = "isNotEmpty"
)

// ConditionalRule compares another field's current value against a literal.
type ConditionalRule struct {
	Field    string            `json:"field"`
	Operator ConditionOperator `json:"operator"`
	Value    any               `json:"value,omitempty"`
}

// FieldConditions gates a field's visibility. Show is the default visibility
// when the rule list is empty; with rules present the combined rule outcome
// decides instead.
type FieldConditions struct {
	Show  bool              `json:"show"`
	Rules []ConditionalRule `json:"rules"`
	Logic ConditionLogic    `json:"logic"`
}

// Clone returns a deep copy of the conditions.
func (c FieldConditions) Clone() FieldConditions {
	out := c
	if c.Rules != nil {
		out.Rules = append([]ConditionalRule(nil), c.Rules...)
	}
	return out
}

// DependsOn returns the ids of fields referenced by the rule list, in rule
// order, without deduplication.
func (c FieldConditions) DependsOn() []string {
	if len(c.Rules) == 0 {
		return nil
	}
	out := make([]string, 0, len(c.Rules))
	for _, rule := range c.Rules {
		out = append(out, rule.Field)
	}
	return out
}

// ValidationType enumerates generic validation rule kinds.
type ValidationType string

const (
	ValidationRequired  ValidationType = "required"
	ValidationMinLength ValidationType = "minLength"
	ValidationMaxLength ValidationType = "maxLength"
	ValidationMin       ValidationType = "min"
	ValidationMax       ValidationType = "max"
	ValidationPattern   ValidationType = "pattern"
	ValidationEmail     ValidationType = "email"
	ValidationURL       ValidationType = "url"
	ValidationCustom    ValidationType = "custom"
)

// ValidationRule is a single declarative constraint on a field value. Rules
// are evaluated in list order; the first failure wins.
type ValidationRule struct {
	Kind    ValidationType `json:"kind"`
	Value   any            `json:"value,omitempty"`
	Message string         `json:"message"`
}
