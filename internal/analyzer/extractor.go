package analyzer

import (
	"regexp"
	"sort"
	"strings"
)

// Extraction is pure regex and substring spotting over the raw text. There
// is deliberately no tokenizer and no grammar: absence of a pattern yields
// an empty result for that category, never an error.
var (
	fromTableRe    = regexp.MustCompile(`(?i)\bFROM\s+([A-Za-z][A-Za-z0-9_/]*)`)
	intoTableRe    = regexp.MustCompile(`(?i)\bINTO\s+TABLE\s+([A-Za-z][A-Za-z0-9_/]*)`)
	bapiCallRe     = regexp.MustCompile(`(?i)\bBAPI_[A-Za-z0-9_]+`)
	callFunctionRe = regexp.MustCompile(`(?i)\bCALL\s+FUNCTION\s+'?([A-Za-z][A-Za-z0-9_/]*)'?`)
	selectRe       = regexp.MustCompile(`(?is)\bSELECT\b(.*?)\bFROM\s+([A-Za-z][A-Za-z0-9_/]*)`)
	writeOpRe      = regexp.MustCompile(`(?i)\b(INSERT|UPDATE|MODIFY)\s+([A-Za-z][A-Za-z0-9_/]*)`)
	variableRe     = regexp.MustCompile(`(?i)\b([A-Za-z][A-Za-z0-9_]*)\s+TYPE\s+([A-Za-z][A-Za-z0-9_]*(?:\s+DECIMALS\s+\d+)?(?:\s+LENGTH\s+\d+)?)`)
	ifRe           = regexp.MustCompile(`(?is)\bIF\s+(.+?)\.`)
	caseRe         = regexp.MustCompile(`(?i)\bCASE\s+([A-Za-z][A-Za-z0-9_\-]*)`)
	loopAtRe       = regexp.MustCompile(`(?i)\bLOOP\s+AT\s+([A-Za-z][A-Za-z0-9_]*)`)
)

// Extract scans ABAP source text and returns every feature the pattern
// tables recognize. It is a pure function of the text and never fails:
// empty or non-matching input produces empty collections.
func Extract(text string) *Features {
	upper := strings.ToUpper(text)

	return &Features{
		BusinessLogic: matchTriggers(logicTriggers, upper),
		Tables:        collectTables(text, upper),
		Dependencies:  collectDependencies(text),
		Patterns:      matchTriggers(patternTriggers, upper),
		DatabaseOps:   collectDatabaseOps(text),
		Variables:     collectVariables(text),
		BusinessRules: collectBusinessRules(text),
	}
}

// matchTriggers evaluates a trigger table against the upper-cased text.
// Each trigger contributes its tag at most once, in table order.
func matchTriggers(triggers []trigger, upper string) []string {
	tags := []string{}
	for _, t := range triggers {
		if t.fires(upper) {
			tags = append(tags, t.tag)
		}
	}
	return tags
}

// collectTables unions three sources: FROM clauses, INTO TABLE clauses and
// well-known table names appearing anywhere in the text. Names are
// upper-cased and deduplicated; insertion order is kept for determinism.
func collectTables(text, upper string) []string {
	tables := []string{}
	seen := map[string]bool{}

	add := func(name string) {
		name = strings.ToUpper(name)
		if !seen[name] {
			seen[name] = true
			tables = append(tables, name)
		}
	}

	for _, m := range fromTableRe.FindAllStringSubmatch(text, -1) {
		add(m[1])
	}
	for _, m := range intoTableRe.FindAllStringSubmatch(text, -1) {
		add(m[1])
	}
	for _, t := range knownTables {
		if containsIdentifier(upper, t.Name) {
			add(t.Name)
		}
	}
	return tables
}

// containsIdentifier reports whether name occurs in text as a standalone
// identifier. A plain substring check would light up on composites such as
// the VBAK inside authorization object V_VBAK_VKO.
func containsIdentifier(text, name string) bool {
	for from := 0; ; {
		i := strings.Index(text[from:], name)
		if i < 0 {
			return false
		}
		start := from + i
		end := start + len(name)
		if (start == 0 || !isIdentChar(text[start-1])) && (end == len(text) || !isIdentChar(text[end])) {
			return true
		}
		from = start + 1
	}
}

func isIdentChar(c byte) bool {
	return c == '_' || (c >= '0' && c <= '9') || (c >= 'A' && c <= 'Z') || (c >= 'a' && c <= 'z')
}

// collectDependencies gathers called function modules: BAPI_* names anywhere
// in the text plus CALL FUNCTION targets (optionally quoted). Deduplicated.
func collectDependencies(text string) []string {
	deps := []string{}
	seen := map[string]bool{}

	add := func(name string) {
		name = strings.ToUpper(name)
		if !seen[name] {
			seen[name] = true
			deps = append(deps, name)
		}
	}

	for _, m := range bapiCallRe.FindAllString(text, -1) {
		add(m)
	}
	for _, m := range callFunctionRe.FindAllStringSubmatch(text, -1) {
		add(m[1])
	}
	return deps
}

// collectDatabaseOps emits one record per data-access statement, in order
// of appearance per operation kind. SELECT records keep the verbatim field
// list between SELECT and FROM, whitespace-trimmed.
func collectDatabaseOps(text string) []DatabaseOp {
	ops := []DatabaseOp{}

	for _, m := range selectRe.FindAllStringSubmatch(text, -1) {
		table := strings.ToUpper(m[2])
		ops = append(ops, DatabaseOp{
			Operation:   "SELECT",
			Table:       table,
			Description: TableDescription(table),
			Fields:      strings.TrimSpace(m[1]),
		})
	}
	for _, m := range writeOpRe.FindAllStringSubmatch(text, -1) {
		table := strings.ToUpper(m[2])
		ops = append(ops, DatabaseOp{
			Operation:   strings.ToUpper(m[1]),
			Table:       table,
			Description: TableDescription(table),
		})
	}
	return ops
}

// collectVariables emits one record per `<name> TYPE <token>` declaration,
// including the colon-prefixed batch form of DATA statements.
func collectVariables(text string) []Variable {
	vars := []Variable{}
	for _, m := range variableRe.FindAllStringSubmatch(text, -1) {
		abapType := strings.TrimSpace(m[2])
		vars = append(vars, Variable{
			Name:       m[1],
			ABAPType:   abapType,
			MappedType: MapType(abapType),
		})
	}
	return vars
}

// collectBusinessRules spots IF, CASE and LOOP AT constructs and returns
// them merged in order of appearance. Not deduplicated.
func collectBusinessRules(text string) []BusinessRule {
	type positioned struct {
		pos  int
		rule BusinessRule
	}
	found := []positioned{}

	for _, idx := range ifRe.FindAllStringSubmatchIndex(text, -1) {
		found = append(found, positioned{
			pos: idx[0],
			rule: BusinessRule{
				Kind:      RuleValidation,
				Condition: strings.TrimSpace(text[idx[2]:idx[3]]),
			},
		})
	}
	for _, idx := range caseRe.FindAllStringSubmatchIndex(text, -1) {
		found = append(found, positioned{
			pos:  idx[0],
			rule: BusinessRule{Kind: RuleBranching, Selector: text[idx[2]:idx[3]]},
		})
	}
	for _, idx := range loopAtRe.FindAllStringSubmatchIndex(text, -1) {
		found = append(found, positioned{
			pos:  idx[0],
			rule: BusinessRule{Kind: RuleIteration, Table: text[idx[2]:idx[3]]},
		})
	}

	sort.SliceStable(found, func(i, j int) bool { return found[i].pos < found[j].pos })

	rules := make([]BusinessRule, 0, len(found))
	for _, p := range found {
		rules = append(rules, p.rule)
	}
	return rules
}
