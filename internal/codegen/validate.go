package codegen

import (
	"regexp"

	"github.com/abap-tools/abaplens/internal/analyzer"
)

// ValidationSummary reports a heuristic coverage check: did the generated
// text keep at least as many conditional checks as the original had
// validation rules. It is a count comparison, not semantic equivalence.
type ValidationSummary struct {
	Status          string `json:"status"` // "ok" or "warning"
	OriginalChecks  int    `json:"originalChecks"`
	GeneratedChecks int    `json:"generatedChecks"`
	Message         string `json:"message,omitempty"`
}

var ifTokenRe = regexp.MustCompile(`(?i)\bif\b`)

// ValidateCoverage counts validation-kind business rules in the original
// ABAP text and "if" tokens in the candidate text. Status is "ok" when the
// candidate count is greater than or equal to the original count.
func ValidateCoverage(original, generated string) ValidationSummary {
	originalChecks := 0
	for _, r := range analyzer.Extract(original).BusinessRules {
		if r.Kind == analyzer.RuleValidation {
			originalChecks++
		}
	}

	generatedChecks := len(ifTokenRe.FindAllString(generated, -1))

	summary := ValidationSummary{
		Status:          "ok",
		OriginalChecks:  originalChecks,
		GeneratedChecks: generatedChecks,
	}
	if generatedChecks < originalChecks {
		summary.Status = "warning"
		summary.Message = "generated code may be missing validation checks from the original"
	}
	return summary
}
