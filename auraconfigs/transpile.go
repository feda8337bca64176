package auraconfigs

import (
	"github.com/auralite/aura/auralang"
)

func (Module) Options(
	indent Indent,
) auralang.Options {
	return auralang.Options{
		Indent: string(indent),
	}
}

// Transpile is the configured entry point tools call: the grammar and
// options come from the scope, only source goes in.
type Transpile func(name string, source string) (string, error)

func (Module) Transpile(
	grammar *auralang.Grammar,
	options auralang.Options,
) Transpile {
	return func(name string, source string) (string, error) {
		return auralang.Transpile(grammar, name, source, options)
	}
}
