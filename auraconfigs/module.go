package auraconfigs

import (
	"github.com/auralite/aura/logs"
	"github.com/reusee/dscope"
)

type Module struct {
	dscope.Module
	Logs logs.Module
}
