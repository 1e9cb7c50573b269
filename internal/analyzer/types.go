package analyzer

// Features holds everything the extractor recognized in an ABAP snippet.
// All fields are derived purely from the input text and never mutated after
// Extract returns. BusinessLogic, Tables and Dependencies are deduplicated;
// Patterns, DatabaseOps, Variables and BusinessRules preserve detection order.
type Features struct {
	BusinessLogic []string       `json:"businessLogic"`
	Tables        []string       `json:"tables"`
	Dependencies  []string       `json:"dependencies"`
	Patterns      []string       `json:"patterns"`
	DatabaseOps   []DatabaseOp   `json:"databaseOperations"`
	Variables     []Variable     `json:"variables"`
	BusinessRules []BusinessRule `json:"businessRules"`
}

// DatabaseOp records a single data-access statement. One record is emitted
// per occurrence in the source, so the same table can appear multiple times.
type DatabaseOp struct {
	Operation   string `json:"operation"` // SELECT, INSERT, UPDATE or MODIFY
	Table       string `json:"table"`
	Description string `json:"description"`
	Fields      string `json:"fields,omitempty"` // SELECT only, verbatim field list
}

// Variable records a DATA declaration together with its mapped target type.
type Variable struct {
	Name       string `json:"name"`
	ABAPType   string `json:"abapType"`
	MappedType string `json:"mappedType"`
}

// RuleKind discriminates the three business-rule record shapes.
type RuleKind string

const (
	RuleValidation RuleKind = "validation"
	RuleBranching  RuleKind = "branching"
	RuleIteration  RuleKind = "iteration"
)

// BusinessRule is one control-flow construct spotted in the source.
// Exactly one of Condition, Selector or Table is set, according to Kind.
type BusinessRule struct {
	Kind      RuleKind `json:"kind"`
	Condition string   `json:"condition,omitempty"` // validation: IF condition text
	Selector  string   `json:"selector,omitempty"`  // branching: CASE selector
	Table     string   `json:"table,omitempty"`     // iteration: LOOP AT target
}

// Classification is the coarse category assigned to a snippet.
type Classification struct {
	Module      string `json:"module"`     // SD, MM, FI or CUSTOM
	Complexity  int    `json:"complexity"` // 1..10
	LinesOfCode int    `json:"linesOfCode"`
}
