package auralang

import (
	"io"
	"strings"
)

// Transpile is the single collaborator-facing entry point: full source
// text in, full generated text out, or a SyntaxError. Concurrent calls
// sharing one Grammar are safe; all per-call state is local.
func Transpile(g *Grammar, name string, source string, opts Options) (string, error) {
	src := NewSource(name, source)
	tokens := Tokenize(g, src)
	prog, err := Parse(tokens)
	if err != nil {
		return "", err
	}
	return Generate(g, prog, opts), nil
}

// TranspileReader reads the full source from r, then transpiles. There
// is no streaming: the pipeline wants the whole text.
func TranspileReader(g *Grammar, name string, r io.Reader, opts Options) (string, error) {
	var sb strings.Builder
	if _, err := io.Copy(&sb, r); err != nil {
		return "", err
	}
	return Transpile(g, name, sb.String(), opts)
}
