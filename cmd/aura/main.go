package main

import (
	"context"
	"fmt"
	"io"
	"os"

	"github.com/auralite/aura/auraconfigs"
	"github.com/auralite/aura/auralang"
	"github.com/auralite/aura/cmds"
	"github.com/auralite/aura/configs"
	"github.com/auralite/aura/debugs"
	"github.com/auralite/aura/logs"
	"github.com/auralite/aura/modes"
	"github.com/auralite/aura/vars"
	"github.com/reusee/dscope"
)

var (
	inFlag  = cmds.Var[string]("in")
	outFlag = cmds.Var[string]("out")

	doTokens  = cmds.Switch("-tokens")
	doRepl    = cmds.Switch("-repl")
	doConfigs = cmds.Switch("-config-keys")
)

func init() {
	cmds.GlobalExecutor.Define("-version", cmds.Func(func() {
		fmt.Println("aura " + version)
		os.Exit(0)
	}).Desc("print version"))
}

const version = "0.3.0"

func main() {
	cmds.Execute(os.Args[1:])

	scope := dscope.New(
		new(Module),
		modes.ForProduction(),
	)

	if *doConfigs {
		for _, expr := range configs.Exprs(scope) {
			fmt.Println(expr)
		}
		return
	}

	scope.Call(run)
}

func run(
	grammar *auralang.Grammar,
	transpile auraconfigs.Transpile,
	tap debugs.Tap,
	newSpan logs.NewSpan,
	logger logs.Logger,
) {
	ctx, _ := newSpan(context.Background(), "")

	if dir := vars.DerefOrZero(dirFlag); dir != "" {
		ce(runBatch(ctx, dir, transpile, logger))
		return
	}

	sourceName, source := readSource()

	if *doTokens {
		src := auralang.NewSource(sourceName, source)
		for _, token := range auralang.Tokenize(grammar, src) {
			fmt.Printf("%d:%d\t%s\t%s\n",
				token.Pos.Line, token.Pos.Column, token.Kind, token.Raw())
		}
		return
	}

	output, err := transpile(sourceName, source)
	if err != nil {
		logger.ErrorContext(ctx, "transpile failed",
			"source", sourceName,
		)
		os.Stderr.WriteString(err.Error())
		os.Stderr.WriteString("\n")
		os.Exit(-1)
	}

	if *doRepl {
		src := auralang.NewSource(sourceName, source)
		tokens := auralang.Tokenize(grammar, src)
		program, parseErr := auralang.Parse(tokens)
		ce(parseErr)
		tap(ctx, "transpile", map[string]any{
			"source":  source,
			"tokens":  tokens,
			"program": program,
			"output":  output,
		})
		return
	}

	writeOutput(output)

	logger.DebugContext(ctx, "transpiled",
		"source", sourceName,
		"bytes", len(output),
	)
}

func readSource() (string, string) {
	path := vars.DerefOrZero(inFlag)
	if path == "" {
		content, err := io.ReadAll(os.Stdin)
		ce(err)
		return "stdin", string(content)
	}
	content, err := os.ReadFile(path)
	ce(err)
	return path, string(content)
}

func writeOutput(output string) {
	path := vars.DerefOrZero(outFlag)
	if path == "" {
		os.Stdout.WriteString(output)
		return
	}
	ce(os.WriteFile(path, []byte(output), 0644))
}
