package report

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/abap-tools/abaplens/internal/analyzer"
)

func TestRenderFullReport(t *testing.T) {
	t.Parallel()

	f := &analyzer.Features{
		BusinessLogic: []string{"Tax calculation"},
		Tables:        []string{"KONV", "ZTAB"},
		Dependencies:  []string{"BAPI_SALESORDER_CREATEFROMDAT2"},
		Patterns:      []string{"Pricing Procedure"},
		DatabaseOps: []analyzer.DatabaseOp{
			{Operation: "SELECT", Table: "KONV", Description: "Conditions (Transaction Data)", Fields: "kbetr"},
		},
		Variables: []analyzer.Variable{
			{Name: "lv_price", ABAPType: "p DECIMALS 2", MappedType: "number"},
		},
		BusinessRules: []analyzer.BusinessRule{
			{Kind: analyzer.RuleValidation, Condition: "lv_price > 0"},
			{Kind: analyzer.RuleBranching, Selector: "lv_status"},
			{Kind: analyzer.RuleIteration, Table: "lt_items"},
		},
	}
	c := analyzer.Classification{Module: "CUSTOM", Complexity: 2, LinesOfCode: 42}

	out := Render(f, c)

	assert.Contains(t, out, "Module: CUSTOM\n")
	assert.Contains(t, out, "Complexity: 2/10\n")
	assert.Contains(t, out, "Lines of code: 42\n")
	assert.Contains(t, out, "- Tax calculation\n")
	assert.Contains(t, out, "- KONV (Conditions (Transaction Data))\n")
	assert.Contains(t, out, "- ZTAB (Unknown)\n")
	assert.Contains(t, out, "- BAPI_SALESORDER_CREATEFROMDAT2 (Sales order processing)\n")
	assert.Contains(t, out, "- SELECT on KONV (Conditions (Transaction Data))\n")
	assert.Contains(t, out, "- lv_price: p DECIMALS 2 -> number\n")
	assert.Contains(t, out, "- validation: lv_price > 0\n")
	assert.Contains(t, out, "- branching on lv_status\n")
	assert.Contains(t, out, "- iteration over lt_items\n")
}

func TestRenderEmptyFeaturesKeepsSectionHeaders(t *testing.T) {
	t.Parallel()

	f := &analyzer.Features{}
	c := analyzer.Classification{Module: "CUSTOM", Complexity: 1}

	out := Render(f, c)

	for _, header := range []string{
		"Business logic:",
		"Tables:",
		"Dependencies:",
		"Patterns:",
		"Database operations:",
		"Variables:",
		"Business rules:",
	} {
		assert.Contains(t, out, header)
	}
	assert.NotContains(t, out, "- ")
}

func TestRenderDeterministic(t *testing.T) {
	t.Parallel()

	text := "SELECT kbetr FROM konv INTO lv_price."
	f := analyzer.Extract(text)
	c := analyzer.Classify(f, text)

	first := Render(f, c)
	second := Render(f, c)
	require.Equal(t, first, second)
	assert.True(t, strings.HasPrefix(first, "Module: "))
}
