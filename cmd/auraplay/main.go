package main

import (
	"context"
	"net/http"
	"os"

	"github.com/auralite/aura/cmds"
	"github.com/auralite/aura/logs"
	"github.com/auralite/aura/modes"
	"github.com/auralite/aura/playground"
	"github.com/auralite/aura/vars"
	"github.com/reusee/dscope"
	"github.com/reusee/e5"
)

var addrFlag = cmds.Var[string]("addr")

var ce = e5.Check.With(e5.WrapStacktrace)

func main() {
	cmds.Execute(os.Args[1:])

	scope := dscope.New(
		new(playground.Module),
		modes.ForProduction(),
	)

	scope.Call(func(
		handler playground.Handler,
		newSpan logs.NewSpan,
		logger logs.Logger,
	) {
		ctx, _ := newSpan(context.Background(), "")

		addr := vars.FirstNonZero(*addrFlag, "localhost:8650")
		logger.InfoContext(ctx, "playground listening",
			"addr", addr,
		)
		ce(http.ListenAndServe(addr, handler))
	})
}
