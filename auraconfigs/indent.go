package auraconfigs

import (
	"github.com/auralite/aura/cmds"
	"github.com/auralite/aura/configs"
	"github.com/auralite/aura/vars"
)

// Indent is the generated-text indent unit. Empty means the generator
// default.
type Indent string

var _ configs.Configurable = Indent("")

func (Indent) ConfigExpr() string {
	return "Indent"
}

var indentFlag = cmds.Var[string]("-indent")

func (Module) Indent(
	loader configs.Loader,
) Indent {
	return Indent(vars.FirstNonZero(
		*indentFlag,
		configs.First[string](loader, "indent"),
	))
}
