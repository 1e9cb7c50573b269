package analyzer

import "strings"

// TableInfo pairs a well-known SAP table name with its dictionary description.
type TableInfo struct {
	Name        string
	Description string
}

// knownTables lists the well-known SAP tables the analyzer can annotate.
// Kept as an ordered slice (not a map) so membership scans over the input
// text produce deterministic output.
var knownTables = []TableInfo{
	{"VBAK", "Sales Document: Header Data"},
	{"VBAP", "Sales Document: Item Data"},
	{"VBEP", "Sales Document: Schedule Line Data"},
	{"LIKP", "Delivery Header Data"},
	{"KNA1", "Customer Master: General Data"},
	{"KONV", "Conditions (Transaction Data)"},
	{"EKKO", "Purchasing Document Header"},
	{"EKPO", "Purchasing Document Item"},
	{"LFA1", "Vendor Master: General Data"},
	{"BKPF", "Accounting Document Header"},
	{"BSEG", "Accounting Document Segment"},
	{"MARA", "Material Master: General Data"},
	{"MARC", "Material Master: Plant Data"},
	{"T001", "Company Codes"},
}

// TableDescription returns the dictionary description for a table name, or
// "Unknown" when the table is not in the well-known set.
func TableDescription(name string) string {
	upper := strings.ToUpper(name)
	for _, t := range knownTables {
		if t.Name == upper {
			return t.Description
		}
	}
	return "Unknown"
}

// Module classification sets, checked by Classify in this exact precedence
// order: sales before purchasing before accounting. First match wins.
var (
	salesTables      = []string{"VBAK", "VBAP", "VBEP", "LIKP"}
	purchasingTables = []string{"EKKO", "EKPO", "LFA1"}
	accountingTables = []string{"BKPF", "BSEG", "T001"}
)

// typeMapping maps a fragment of an ABAP type token to a target type name.
// Lookup is substring-based and ordered: the first fragment contained in the
// token wins, so broader single-letter fragments come last.
type typeMapping struct {
	fragment string
	mapped   string
}

var typeMappings = []typeMapping{
	{"string", "string"},
	{"decfloat", "number"},
	{"timestamp", "string"},
	{"char", "string"},
	{"int", "number"},
	{"p", "number"},
	{"f", "number"},
	{"i", "number"},
	{"n", "string"},
	{"c", "string"},
	{"d", "Date"},
	{"t", "string"},
	{"x", "Buffer"},
}

// MapType resolves an ABAP type token to its target type name.
// Unrecognized tokens map to "any".
func MapType(abapType string) string {
	lower := strings.ToLower(abapType)
	for _, m := range typeMappings {
		if strings.Contains(lower, m.fragment) {
			return m.mapped
		}
	}
	return "any"
}

// bapiPrefixes annotates remote function modules by name prefix.
// First matching prefix wins.
var bapiPrefixes = []struct {
	prefix      string
	description string
}{
	{"BAPI_SALESORDER", "Sales order processing"},
	{"BAPI_PO", "Purchase order processing"},
	{"BAPI_MATERIAL", "Material master access"},
	{"BAPI_CUSTOMER", "Customer master access"},
	{"BAPI_ACC", "Accounting postings"},
	{"BAPI_USER", "User management"},
}

// DependencyDescription returns a short description for a called function
// module based on its name prefix.
func DependencyDescription(name string) string {
	upper := strings.ToUpper(name)
	for _, p := range bapiPrefixes {
		if strings.HasPrefix(upper, p.prefix) {
			return p.description
		}
	}
	return "Function module"
}

// trigger is one row of a declarative tagging table: when the predicate over
// the upper-cased input holds, the tag is appended exactly once.
// allOf takes precedence over anyOf when both are set.
type trigger struct {
	tag   string
	allOf []string
	anyOf []string
}

func (t trigger) fires(upper string) bool {
	if len(t.allOf) > 0 {
		for _, kw := range t.allOf {
			if !strings.Contains(upper, kw) {
				return false
			}
		}
		return true
	}
	for _, kw := range t.anyOf {
		if strings.Contains(upper, kw) {
			return true
		}
	}
	return false
}

// logicTriggers drive business-logic tagging. Triggers are independent:
// any subset may fire, each at most once.
var logicTriggers = []trigger{
	{tag: "Calculation logic", anyOf: []string{"CALCULATE", "COMPUTE"}},
	{tag: "Credit limit validation", allOf: []string{"CREDIT", "LIMIT"}},
	{tag: "Tax calculation", anyOf: []string{"TAX", "MWST"}},
	{tag: "Discount processing", anyOf: []string{"DISCOUNT", "RABATT"}},
	{tag: "Pricing logic", anyOf: []string{"PRICE", "KBETR"}},
	{tag: "Currency conversion", anyOf: []string{"CURRENCY", "WAERS"}},
	{tag: "Authorization checks", anyOf: []string{"AUTHORITY-CHECK"}},
}

// patternTriggers drive SAP pattern tagging. Evaluation order is fixed and
// defines the order of tags in the output.
var patternTriggers = []trigger{
	{tag: "Pricing Procedure", anyOf: []string{"KONV", "KONP", "KSCHL"}},
	{tag: "Authorization Object", anyOf: []string{"AUTHORITY-CHECK"}},
	{tag: "Number Range", anyOf: []string{"NUMBER_GET_NEXT"}},
	{tag: "Batch Input", anyOf: []string{"CALL TRANSACTION", "BDC_INSERT"}},
	{tag: "IDoc Processing", anyOf: []string{"IDOC_INPUT", "MASTER_IDOC_DISTRIBUTE"}},
	{tag: "Batch Processing", allOf: []string{"LOOP", "COMMIT WORK"}},
	{tag: "ALV Reporting", anyOf: []string{"REUSE_ALV", "CL_SALV"}},
}
