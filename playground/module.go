package playground

import (
	"github.com/auralite/aura/auraconfigs"
	"github.com/reusee/dscope"
)

type Module struct {
	dscope.Module
	AuraConfigs auraconfigs.Module
}
