package codegen

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

const validateOriginal = `
IF lv_price > lv_limit.
  MESSAGE 'too expensive' TYPE 'E'.
ENDIF.
IF lv_qty < 1.
  MESSAGE 'empty order' TYPE 'E'.
ENDIF.
`

func TestValidateCoverageOK(t *testing.T) {
	t.Parallel()

	generated := `
if (price > limit) { throw new Error('too expensive'); }
if (qty < 1) { throw new Error('empty order'); }
`
	summary := ValidateCoverage(validateOriginal, generated)

	assert.Equal(t, "ok", summary.Status)
	assert.Equal(t, 2, summary.OriginalChecks)
	assert.Equal(t, 2, summary.GeneratedChecks)
	assert.Empty(t, summary.Message)
}

func TestValidateCoverageWarning(t *testing.T) {
	t.Parallel()

	generated := "if (price > limit) { }"
	summary := ValidateCoverage(validateOriginal, generated)

	assert.Equal(t, "warning", summary.Status)
	assert.Equal(t, 2, summary.OriginalChecks)
	assert.Equal(t, 1, summary.GeneratedChecks)
	assert.NotEmpty(t, summary.Message)
}

func TestValidateCoverageCaseInsensitiveIfCount(t *testing.T) {
	t.Parallel()

	summary := ValidateCoverage(validateOriginal, "IF a\nIf b\nif c")
	assert.Equal(t, 3, summary.GeneratedChecks)
	assert.Equal(t, "ok", summary.Status)
}

func TestValidateCoverageEmptyOriginal(t *testing.T) {
	t.Parallel()

	summary := ValidateCoverage("", "")
	assert.Equal(t, "ok", summary.Status)
	assert.Zero(t, summary.OriginalChecks)
	assert.Zero(t, summary.GeneratedChecks)
}
