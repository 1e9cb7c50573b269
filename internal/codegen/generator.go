// Package codegen renders non-executable skeleton templates from extracted
// features. The output illustrates a possible translation shape; it is
// documentation, not generated code that compiles.
package codegen

import (
	"fmt"
	"strings"

	"github.com/abap-tools/abaplens/internal/analyzer"
)

// Target selects the skeleton flavor.
type Target string

const (
	TargetTypeScript Target = "typescript"
	TargetJavaScript Target = "javascript"
	TargetPython     Target = "python"
)

// DefaultTarget is used when a caller does not specify a target.
const DefaultTarget = TargetTypeScript

// Options control template rendering.
type Options struct {
	Target Target
	Banner bool
}

// Generate renders a skeleton for the given features. Unrecognized targets
// produce a single-line placeholder instead of an error.
func Generate(f *analyzer.Features, opts Options) string {
	switch opts.Target {
	case TargetTypeScript, TargetJavaScript:
		return renderScript(f, opts)
	case TargetPython:
		return renderPython(f, opts)
	default:
		return fmt.Sprintf("// unsupported template target: %s\n", opts.Target)
	}
}

func renderScript(f *analyzer.Features, opts Options) string {
	var b strings.Builder

	if opts.Banner {
		b.WriteString("// Generated skeleton from ABAP analysis.\n")
		b.WriteString("// Review and replace placeholder calls before use.\n\n")
	}

	for _, v := range f.Variables {
		if opts.Target == TargetTypeScript {
			fmt.Fprintf(&b, "let %s: %s;\n", v.Name, v.MappedType)
		} else {
			fmt.Fprintf(&b, "let %s; // %s\n", v.Name, v.MappedType)
		}
	}
	if len(f.Variables) > 0 {
		b.WriteString("\n")
	}

	for _, op := range f.DatabaseOps {
		table := strings.ToLower(op.Table)
		switch op.Operation {
		case "SELECT":
			fmt.Fprintf(&b, "const %sRows = await repository.readAll('%s');\n", table, table)
		case "INSERT":
			fmt.Fprintf(&b, "await repository.create('%s', record);\n", table)
		}
	}

	return b.String()
}

func renderPython(f *analyzer.Features, opts Options) string {
	var b strings.Builder

	if opts.Banner {
		b.WriteString("# Generated skeleton from ABAP analysis.\n")
		b.WriteString("# Review and replace placeholder calls before use.\n\n")
	}

	for _, v := range f.Variables {
		fmt.Fprintf(&b, "%s = None  # %s\n", v.Name, v.MappedType)
	}
	if len(f.Variables) > 0 {
		b.WriteString("\n")
	}

	for _, op := range f.DatabaseOps {
		table := strings.ToLower(op.Table)
		switch op.Operation {
		case "SELECT":
			fmt.Fprintf(&b, "%s_rows = repository.read_all('%s')\n", table, table)
		case "INSERT":
			fmt.Fprintf(&b, "repository.create('%s', record)\n", table)
		}
	}

	return b.String()
}
