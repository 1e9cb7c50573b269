// Package report renders extracted features into the human-readable
// documentation block returned by the analyze operation.
package report

import (
	"fmt"
	"strings"

	"github.com/abap-tools/abaplens/internal/analyzer"
)

// Render produces the formatted analysis report. Section headers are always
// emitted; a category that captured nothing simply has an empty body.
// Output is deterministic for identical input.
func Render(f *analyzer.Features, c analyzer.Classification) string {
	var b strings.Builder

	fmt.Fprintf(&b, "Module: %s\n", c.Module)
	fmt.Fprintf(&b, "Complexity: %d/10\n", c.Complexity)
	fmt.Fprintf(&b, "Lines of code: %d\n", c.LinesOfCode)

	section(&b, "Business logic", f.BusinessLogic)

	tables := make([]string, 0, len(f.Tables))
	for _, t := range f.Tables {
		tables = append(tables, fmt.Sprintf("%s (%s)", t, analyzer.TableDescription(t)))
	}
	section(&b, "Tables", tables)

	deps := make([]string, 0, len(f.Dependencies))
	for _, d := range f.Dependencies {
		deps = append(deps, fmt.Sprintf("%s (%s)", d, analyzer.DependencyDescription(d)))
	}
	section(&b, "Dependencies", deps)

	section(&b, "Patterns", f.Patterns)

	ops := make([]string, 0, len(f.DatabaseOps))
	for _, op := range f.DatabaseOps {
		ops = append(ops, fmt.Sprintf("%s on %s (%s)", op.Operation, op.Table, op.Description))
	}
	section(&b, "Database operations", ops)

	vars := make([]string, 0, len(f.Variables))
	for _, v := range f.Variables {
		vars = append(vars, fmt.Sprintf("%s: %s -> %s", v.Name, v.ABAPType, v.MappedType))
	}
	section(&b, "Variables", vars)

	rules := make([]string, 0, len(f.BusinessRules))
	for _, r := range f.BusinessRules {
		rules = append(rules, describeRule(r))
	}
	section(&b, "Business rules", rules)

	return b.String()
}

func section(b *strings.Builder, title string, items []string) {
	fmt.Fprintf(b, "\n%s:\n", title)
	for _, item := range items {
		fmt.Fprintf(b, "- %s\n", item)
	}
}

func describeRule(r analyzer.BusinessRule) string {
	switch r.Kind {
	case analyzer.RuleValidation:
		return fmt.Sprintf("validation: %s", r.Condition)
	case analyzer.RuleBranching:
		return fmt.Sprintf("branching on %s", r.Selector)
	case analyzer.RuleIteration:
		return fmt.Sprintf("iteration over %s", r.Table)
	default:
		return string(r.Kind)
	}
}
