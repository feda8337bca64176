package modes

import (
	"testing"

	"github.com/reusee/dscope"
)

// ForProduction wires production defaults into a scope. The *testing.T
// provider yields nil so code can tell the two worlds apart.
func ForProduction() ModuleForProduction {
	return ModuleForProduction{}
}

type ModuleForProduction struct {
	dscope.Module
}

func (ModuleForProduction) Mode() Mode {
	return ModeProduction
}

func (ModuleForProduction) T() *testing.T {
	return nil
}
