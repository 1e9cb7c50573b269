package rpc

import (
	"fmt"

	"github.com/abap-tools/abaplens/internal/analyzer"
	"github.com/abap-tools/abaplens/internal/codegen"
	"github.com/abap-tools/abaplens/internal/report"
)

// Metadata mirrors the metadata block of the analyze result.
type Metadata struct {
	Module      string `json:"module"`
	Complexity  int    `json:"complexity"`
	LinesOfCode int    `json:"linesOfCode"`
}

// AnalyzeData is the payload of the analyze method, wrapped in a "data"
// envelope for compatibility with existing clients.
type AnalyzeData struct {
	Metadata           Metadata                `json:"metadata"`
	BusinessLogic      []string                `json:"businessLogic"`
	Tables             []string                `json:"tables"`
	Dependencies       []string                `json:"dependencies"`
	Patterns           []string                `json:"patterns"`
	DatabaseOperations []analyzer.DatabaseOp   `json:"databaseOperations"`
	Variables          []analyzer.Variable     `json:"variables"`
	BusinessRules      []analyzer.BusinessRule `json:"businessRules"`
	Documentation      string                  `json:"documentation"`
}

// SchemaTable pairs a detected table with its dictionary description.
type SchemaTable struct {
	Name        string `json:"name"`
	Description string `json:"description"`
}

func stringParam(params map[string]any, key string) (string, error) {
	v, ok := params[key]
	if !ok {
		return "", fmt.Errorf("missing required parameter: %s", key)
	}
	s, ok := v.(string)
	if !ok {
		return "", fmt.Errorf("parameter %s must be a string", key)
	}
	return s, nil
}

func handleAnalyze(params map[string]any) (any, error) {
	code, err := stringParam(params, "code")
	if err != nil {
		return nil, err
	}

	features := analyzer.Extract(code)
	classification := analyzer.Classify(features, code)

	data := AnalyzeData{
		Metadata: Metadata{
			Module:      classification.Module,
			Complexity:  classification.Complexity,
			LinesOfCode: classification.LinesOfCode,
		},
		BusinessLogic:      features.BusinessLogic,
		Tables:             features.Tables,
		Dependencies:       features.Dependencies,
		Patterns:           features.Patterns,
		DatabaseOperations: features.DatabaseOps,
		Variables:          features.Variables,
		BusinessRules:      features.BusinessRules,
		Documentation:      report.Render(features, classification),
	}
	return map[string]any{"data": data}, nil
}

func handleDetectPatterns(params map[string]any) (any, error) {
	code, err := stringParam(params, "code")
	if err != nil {
		return nil, err
	}

	features := analyzer.Extract(code)
	return map[string]any{
		"patterns":      features.Patterns,
		"businessLogic": features.BusinessLogic,
	}, nil
}

func handleGenerateTemplate(params map[string]any) (any, error) {
	code, err := stringParam(params, "code")
	if err != nil {
		return nil, err
	}

	target := string(codegen.DefaultTarget)
	if v, ok := params["target"].(string); ok && v != "" {
		target = v
	}
	banner := true
	if v, ok := params["banner"].(bool); ok {
		banner = v
	}

	features := analyzer.Extract(code)
	rendered := codegen.Generate(features, codegen.Options{
		Target: codegen.Target(target),
		Banner: banner,
	})
	return map[string]any{"target": target, "template": rendered}, nil
}

func handleValidate(params map[string]any) (any, error) {
	original, err := stringParam(params, "original")
	if err != nil {
		return nil, err
	}
	generated, err := stringParam(params, "generated")
	if err != nil {
		return nil, err
	}
	return codegen.ValidateCoverage(original, generated), nil
}

func handleExtractSchema(params map[string]any) (any, error) {
	code, err := stringParam(params, "code")
	if err != nil {
		return nil, err
	}

	features := analyzer.Extract(code)
	tables := make([]SchemaTable, 0, len(features.Tables))
	for _, t := range features.Tables {
		tables = append(tables, SchemaTable{Name: t, Description: analyzer.TableDescription(t)})
	}
	return map[string]any{
		"tables":     tables,
		"operations": features.DatabaseOps,
	}, nil
}
