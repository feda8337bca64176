package modes

import (
	"testing"

	"github.com/reusee/dscope"
)

// ForTest wires the running test into a scope so providers can reach
// the *testing.T.
func ForTest(t *testing.T) ModuleForTest {
	return ModuleForTest{
		t: t,
	}
}

type ModuleForTest struct {
	dscope.Module
	t *testing.T
}

func (m ModuleForTest) Mode() Mode {
	return ModeDevelopment
}

func (m ModuleForTest) T() *testing.T {
	return m.t
}
