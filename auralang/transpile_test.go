package auralang

import (
	"errors"
	"fmt"
	"strings"
	"testing"
)

func TestTranspile(t *testing.T) {
	g := DefaultGrammar()

	output, err := Transpile(g, "greet.aura",
		`create function greet() give back "hi" end`, Options{})
	if err != nil {
		t.Fatal(err)
	}
	if !strings.Contains(output, "function greet() {") {
		t.Fatalf("got %q", output)
	}
	if !strings.Contains(output, `return "hi";`) {
		t.Fatalf("got %q", output)
	}
	if strings.Count(output, "{") != strings.Count(output, "}") {
		t.Fatalf("unbalanced braces: %q", output)
	}
}

func TestTranspileEmptyFunctionRoundTrip(t *testing.T) {
	g := DefaultGrammar()
	output, err := Transpile(g, "test", "create function noop() end", Options{})
	if err != nil {
		t.Fatal(err)
	}
	if !strings.Contains(output, "function noop(") {
		t.Fatalf("got %q", output)
	}
	if strings.Count(output, "{") != strings.Count(output, "}") {
		t.Fatalf("unbalanced braces: %q", output)
	}
}

func TestTranspileFailsAllOrNothing(t *testing.T) {
	g := DefaultGrammar()
	output, err := Transpile(g, "test",
		"when x > 5 send output x end", Options{})
	if !errors.Is(err, ErrUnterminatedConditional) {
		t.Fatalf("got %v", err)
	}
	if output != "" {
		t.Fatalf("partial output: %q", output)
	}
}

func TestTranspileReader(t *testing.T) {
	g := DefaultGrammar()
	output, err := TranspileReader(g, "test",
		strings.NewReader("send output total"), Options{})
	if err != nil {
		t.Fatal(err)
	}
	if output != "console.log(total);\n" {
		t.Fatalf("got %q", output)
	}
}

func TestTranspileConcurrent(t *testing.T) {
	// One read-only Grammar serves concurrent calls.
	g := DefaultGrammar()
	for i := range 8 {
		t.Run(fmt.Sprintf("call-%d", i), func(t *testing.T) {
			t.Parallel()
			output, err := Transpile(g, "test",
				"when x > 5 then send output x end", Options{})
			if err != nil {
				t.Fatal(err)
			}
			if output != "if (x > 5) {\n  console.log(x);\n}\n" {
				t.Fatalf("got %q", output)
			}
		})
	}
}

func TestTranspileMultipleTopLevelStatements(t *testing.T) {
	g := DefaultGrammar()
	output, err := Transpile(g, "test", `
		// set up
		create function ping() send output "ping" end

		build class Empty
		end

		send output "done"
	`, Options{})
	if err != nil {
		t.Fatal(err)
	}
	expected := "function ping() {\n" +
		"  console.log(\"ping\");\n" +
		"}\n" +
		"class Empty {\n" +
		"}\n" +
		"console.log(\"done\");\n"
	if output != expected {
		t.Fatalf("got %q", output)
	}
}
