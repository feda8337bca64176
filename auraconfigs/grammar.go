package auraconfigs

import (
	"github.com/auralite/aura/auralang"
	"github.com/auralite/aura/configs"
	"github.com/auralite/aura/logs"
)

// PhraseDef is one config-supplied idiom.
type PhraseDef struct {
	Phrase  string `json:"phrase"`
	Rewrite string `json:"rewrite"`
}

// RewriteDef is one config-supplied raw rewrite rule, appended after
// the built-in rules.
type RewriteDef struct {
	Pattern string `json:"pattern"`
	Replace string `json:"replace"`
}

func (Module) Grammar(
	loader configs.Loader,
	logger logs.Logger,
) *auralang.Grammar {
	g := auralang.DefaultGrammar()

	for defs := range configs.All[[]PhraseDef](loader, "phrases") {
		for _, def := range defs {
			if err := g.AddPhrase(def.Phrase, def.Rewrite); err != nil {
				logger.Warn("bad phrase in config",
					"phrase", def.Phrase,
					"error", err,
				)
				continue
			}
			logger.Debug("config phrase",
				"phrase", def.Phrase,
				"rewrite", def.Rewrite,
			)
		}
	}

	for defs := range configs.All[[]RewriteDef](loader, "rewrites") {
		for _, def := range defs {
			if err := g.AddRewrite(def.Pattern, def.Replace); err != nil {
				logger.Warn("bad rewrite in config",
					"pattern", def.Pattern,
					"error", err,
				)
			}
		}
	}

	return g
}
