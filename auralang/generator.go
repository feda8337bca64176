package auralang

import (
	"fmt"
	"strings"
)

// Options tunes generated-text rendering.
type Options struct {
	// Indent is the per-level indent unit. Empty means two spaces.
	Indent string
}

const defaultIndent = "  "

func (o Options) indentUnit() string {
	if o.Indent == "" {
		return defaultIndent
	}
	return o.Indent
}

// loopVar is the fixed iteration variable of the iterate-over form;
// the dialect has no way to name it.
const loopVar = "element"

// Generate renders a Program as target-language text. Pure: the only
// failure is an unknown node kind, which is an internal error and
// panics. Indentation accumulates with nesting depth.
func Generate(g *Grammar, prog *Program, opts Options) string {
	var sb strings.Builder
	for _, stmt := range prog.Stmts {
		genStmt(&sb, g, stmt, 0, opts, false)
	}
	return sb.String()
}

func genStmt(sb *strings.Builder, g *Grammar, stmt Node, depth int, opts Options, inClass bool) {
	indent := strings.Repeat(opts.indentUnit(), depth)

	switch n := stmt.(type) {

	case *FunctionDecl:
		sb.WriteString(indent)
		if !inClass {
			sb.WriteString("function ")
		}
		sb.WriteString(n.Name)
		sb.WriteString("(")
		sb.WriteString(strings.Join(n.Params, ", "))
		sb.WriteString(") {\n")
		for _, s := range n.Body {
			genStmt(sb, g, s, depth+1, opts, false)
		}
		sb.WriteString(indent)
		sb.WriteString("}\n")

	case *ClassDecl:
		sb.WriteString(indent)
		sb.WriteString("class ")
		sb.WriteString(n.Name)
		sb.WriteString(" {\n")
		for _, m := range n.Methods {
			genStmt(sb, g, m, depth+1, opts, true)
		}
		sb.WriteString(indent)
		sb.WriteString("}\n")

	case *Conditional:
		cond := g.Rewrite(n.Cond)
		sb.WriteString(indent)
		if n.Negate {
			sb.WriteString("if (!(" + cond + ")) {\n")
		} else {
			sb.WriteString("if (" + cond + ") {\n")
		}
		for _, s := range n.Body {
			genStmt(sb, g, s, depth+1, opts, false)
		}
		sb.WriteString(indent)
		sb.WriteString("}\n")

	case *Loop:
		cond := g.Rewrite(n.Cond)
		sb.WriteString(indent)
		if n.RepeatForm {
			sb.WriteString("while (" + cond + ") {\n")
		} else {
			sb.WriteString("for (const " + loopVar + " of " + cond + ") {\n")
		}
		for _, s := range n.Body {
			genStmt(sb, g, s, depth+1, opts, false)
		}
		sb.WriteString(indent)
		sb.WriteString("}\n")

	case *ExprStmt:
		sb.WriteString(indent)
		sb.WriteString(g.Rewrite(n.Text))
		sb.WriteString(";\n")

	default:
		panic(fmt.Errorf("unexpected node type %T", stmt))
	}
}
