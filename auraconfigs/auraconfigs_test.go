package auraconfigs

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/auralite/aura/configs"
	"github.com/auralite/aura/modes"
	"github.com/reusee/dscope"
)

func testScope(t *testing.T, configSrc string) dscope.Scope {
	t.Helper()

	var paths []string
	if configSrc != "" {
		path := filepath.Join(t.TempDir(), "aura.cue")
		if err := os.WriteFile(path, []byte(configSrc), 0644); err != nil {
			t.Fatal(err)
		}
		paths = append(paths, path)
	}
	loader := configs.NewLoader(paths, schema)

	return dscope.New(
		new(Module),
		modes.ForTest(t),
	).Fork(
		&loader,
	)
}

func TestTranspileDefaults(t *testing.T) {
	testScope(t, "").Call(func(
		transpile Transpile,
	) {
		output, err := transpile("test", "when ok then send output ok end")
		if err != nil {
			t.Fatal(err)
		}
		if output != "if (ok) {\n  console.log(ok);\n}\n" {
			t.Fatalf("got %q", output)
		}
	})
}

func TestIndentFromConfig(t *testing.T) {
	testScope(t, `indent: "    "`).Call(func(
		transpile Transpile,
	) {
		output, err := transpile("test", "when ok then go end")
		if err != nil {
			t.Fatal(err)
		}
		if output != "if (ok) {\n    go;\n}\n" {
			t.Fatalf("got %q", output)
		}
	})
}

func TestPhrasesFromConfig(t *testing.T) {
	testScope(t, `
phrases: [{
	phrase:  "shout loudly"
	rewrite: "window.alert"
}]
`).Call(func(
		transpile Transpile,
	) {
		output, err := transpile("test", "shout loudly ( msg )")
		if err != nil {
			t.Fatal(err)
		}
		if output != "window.alert ( msg );\n" {
			t.Fatalf("got %q", output)
		}
	})
}

func TestRewritesFromConfig(t *testing.T) {
	testScope(t, `
rewrites: [{
	pattern: "\\bnothing\\b"
	replace: "null"
}]
`).Call(func(
		transpile Transpile,
	) {
		output, err := transpile("test", "give back nothing")
		if err != nil {
			t.Fatal(err)
		}
		if output != "return null;\n" {
			t.Fatalf("got %q", output)
		}
	})
}

func TestSchemaRejectsUnknownFields(t *testing.T) {
	path := filepath.Join(t.TempDir(), "aura.cue")
	if err := os.WriteFile(path, []byte(`unknown_knob: true`), 0644); err != nil {
		t.Fatal(err)
	}
	loader := configs.NewLoader([]string{path}, schema)
	var v bool
	err := loader.AssignFirst("unknown_knob", &v)
	if err == nil {
		t.Fatal("should error")
	}
	if !strings.Contains(err.Error(), "unknown_knob") {
		t.Fatalf("got %v", err)
	}
}

func TestConfigExprs(t *testing.T) {
	scope := testScope(t, "")
	exprs := configs.Exprs(scope)
	found := false
	for _, expr := range exprs {
		if expr == "Indent" {
			found = true
		}
	}
	if !found {
		t.Fatalf("got %v", exprs)
	}
}
