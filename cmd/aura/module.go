package main

import (
	"github.com/auralite/aura/auraconfigs"
	"github.com/auralite/aura/debugs"
	"github.com/reusee/dscope"
)

type Module struct {
	dscope.Module
	AuraConfigs auraconfigs.Module
	Debugs      debugs.Module
}
