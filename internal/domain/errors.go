package domain

import (
	"errors"
	"fmt"
	"strings"
)

// Sentinel errors for errors.Is() checking.
var (
	ErrValidation   = errors.New("validation error")
	ErrNotFound     = errors.New("not found")
	ErrBusinessRule = errors.New("business rule violation")
	ErrUnauthorized = errors.New("unauthorized")
	ErrConflict     = errors.New("conflict")
)

// Rule codes carried by BusinessRuleError. Every workflow invariant and task
// lifecycle guard raises exactly one of these, so callers and tests can match
// on the code instead of parsing messages.
const (
	RuleDuplicateStateName    = "duplicate_state_name"
	RuleMultipleInitialStates = "multiple_initial_states"
	RuleUnknownEndpoint       = "unknown_endpoint"
	RuleSourceStateFinal      = "source_state_final"
	RuleDuplicateTransition   = "duplicate_transition"
	RuleInitialStateProtected = "initial_state_protected"
	RuleStateInUse            = "state_in_use"
	RuleInitialStateStarved   = "initial_state_starved"
	RuleStateHasTasks         = "state_has_tasks"
	RuleWorkflowExists        = "workflow_exists"
	RuleWorkflowNotConfigured = "workflow_not_configured"
	RuleInvalidTransition     = "invalid_transition"
	RuleNotProjectMember      = "not_a_project_member"
	RuleUnknownRole           = "unknown_role"
	RuleTaskDeleted           = "task_deleted"
)

// ValidationError provides programmatic access to field-level validation failures.
// Use errors.Is(err, ErrValidation) for simple checks, or errors.As(err, &verr) to
// access verr.Fields for per-field error details.
type ValidationError struct {
	Fields map[string]string
}

func (e *ValidationError) Error() string {
	parts := make([]string, 0, len(e.Fields))
	for field, msg := range e.Fields {
		parts = append(parts, field+": "+msg)
	}
	return fmt.Sprintf("%s: %s", ErrValidation.Error(), strings.Join(parts, "; "))
}

func (e *ValidationError) Unwrap() error {
	return ErrValidation
}

// BusinessRuleError reports a violated domain invariant. Rule holds one of
// the Rule* codes; Detail adds the offending identifiers for diagnostics.
// Use errors.Is(err, ErrBusinessRule) for simple checks, or errors.As to
// inspect the code.
type BusinessRuleError struct {
	Rule   string
	Detail string
}

func (e *BusinessRuleError) Error() string {
	if e.Detail == "" {
		return fmt.Sprintf("%s: %s", ErrBusinessRule.Error(), e.Rule)
	}
	return fmt.Sprintf("%s: %s: %s", ErrBusinessRule.Error(), e.Rule, e.Detail)
}

func (e *BusinessRuleError) Unwrap() error {
	return ErrBusinessRule
}

// NewBusinessRuleError builds a BusinessRuleError with a formatted detail.
func NewBusinessRuleError(rule, format string, args ...any) *BusinessRuleError {
	return &BusinessRuleError{Rule: rule, Detail: fmt.Sprintf(format, args...)}
}

// IsRule reports whether err is a BusinessRuleError carrying the given code.
func IsRule(err error, rule string) bool {
	var bre *BusinessRuleError
	return errors.As(err, &bre) && bre.Rule == rule
}
