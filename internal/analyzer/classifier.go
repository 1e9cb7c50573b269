package analyzer

import "strings"

// complexityGranularity is the number of non-comment lines per complexity
// point before clamping to [1,10].
const complexityGranularity = 20

const commentSigil = "*"

// Classify derives a coarse module tag and a complexity score from the
// extracted features and the original text. The module tag is decided by
// first-matching-rule precedence over the detected tables: sales documents,
// then purchasing documents, then accounting documents, then CUSTOM.
func Classify(f *Features, text string) Classification {
	lines := CountCodeLines(text)

	score := lines / complexityGranularity
	if score < 1 {
		score = 1
	}
	if score > 10 {
		score = 10
	}

	detected := map[string]bool{}
	for _, t := range f.Tables {
		detected[strings.ToUpper(t)] = true
	}

	module := "CUSTOM"
	switch {
	case containsAny(detected, salesTables):
		module = "SD"
	case containsAny(detected, purchasingTables):
		module = "MM"
	case containsAny(detected, accountingTables):
		module = "FI"
	}

	return Classification{Module: module, Complexity: score, LinesOfCode: lines}
}

// CountCodeLines counts non-blank lines whose first non-whitespace
// character is not the ABAP full-line comment sigil.
func CountCodeLines(text string) int {
	count := 0
	for _, line := range strings.Split(text, "\n") {
		trimmed := strings.TrimSpace(line)
		if trimmed == "" || strings.HasPrefix(trimmed, commentSigil) {
			continue
		}
		count++
	}
	return count
}

func containsAny(detected map[string]bool, names []string) bool {
	for _, n := range names {
		if detected[n] {
			return true
		}
	}
	return false
}
