package debugs

import (
	"context"
	"maps"
	"slices"

	"github.com/auralite/aura/logs"
	"go.starlark.net/repl"
	"go.starlark.net/starlark"
	"go.starlark.net/syntax"
)

// Tap drops into a starlark REPL with the given values bound as
// globals, for poking at pipeline artifacts (token streams, syntax
// trees, generated text) interactively.
type Tap func(ctx context.Context, what string, globals map[string]any)

func (Module) Tap(
	logger logs.Logger,
) Tap {
	return func(ctx context.Context, what string, globals map[string]any) {
		logger.InfoContext(ctx, "tap",
			"what", what,
			"globals", slices.Sorted(maps.Keys(globals)),
		)
		defer logger.InfoContext(ctx, "tap end",
			"what", what,
		)

		env := make(starlark.StringDict, len(globals))
		for name, value := range globals {
			env[name] = starValue(value)
		}

		repl.REPLOptions(
			&syntax.FileOptions{
				Set:             true,
				While:           true,
				TopLevelControl: true,
			},
			&starlark.Thread{
				Name: "debugs",
			},
			env,
		)
	}
}
