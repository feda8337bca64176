package debugs

import (
	"testing"

	"github.com/auralite/aura/modes"
	"github.com/reusee/dscope"
)

func TestTap(t *testing.T) {
	// stdin is closed under go test, so the REPL returns at once
	dscope.New(
		new(Module),
		modes.ForTest(t),
	).Call(func(
		tap Tap,
	) {
		tap(t.Context(), "test", map[string]any{
			"answer": 42,
			"words":  []string{"give", "back"},
		})
	})
}
