package cmds

import (
	"errors"
	"strings"
	"testing"
)

func TestExecute(t *testing.T) {
	executor := NewExecutor()

	var level string
	executor.Define("level", Func(func(s string) {
		level = s
	}))
	var verbose bool
	executor.Define("-v", Func(func() {
		verbose = true
	}))

	if err := executor.Execute([]string{
		"level", "debug",
		"-v",
	}); err != nil {
		t.Fatal(err)
	}
	if level != "debug" {
		t.Fatalf("got %q", level)
	}
	if !verbose {
		t.Fatal()
	}

	err := executor.Execute([]string{"bogus"})
	if err == nil || !strings.Contains(err.Error(), "unknown command: bogus") {
		t.Fatalf("got %v", err)
	}
}

func TestExecuteError(t *testing.T) {
	executor := NewExecutor()
	boom := errors.New("boom")
	executor.Define("fail", Func(func() error {
		return boom
	}))
	if err := executor.Execute([]string{"fail"}); !errors.Is(err, boom) {
		t.Fatalf("got %v", err)
	}
}

func TestSubCommands(t *testing.T) {
	executor := NewExecutor()

	var phrase, rewrite string
	executor.Define("grammar", Sub(map[string]*Command{
		"phrase": Func(func(s string) {
			phrase = s
		}),
		"rewrite": Func(func(s string) {
			rewrite = s
		}),
	}))

	if err := executor.Execute([]string{
		"grammar",
		"phrase", "give back",
		"rewrite", "return",
	}); err != nil {
		t.Fatal(err)
	}
	if phrase != "give back" {
		t.Fatalf("got %q", phrase)
	}
	if rewrite != "return" {
		t.Fatalf("got %q", rewrite)
	}
}

func TestDuplicatedSubCommand(t *testing.T) {
	executor := NewExecutor()
	executor.Define("foo", Sub(map[string]*Command{
		"x": nil,
	}))
	executor.Define("bar", Sub(map[string]*Command{
		"x": nil,
	}))
	err := executor.Execute([]string{"foo", "bar"})
	if err == nil || !strings.Contains(err.Error(), "duplicated sub command: bar x") {
		t.Fatalf("got %v", err)
	}
}

func TestOptionalArgument(t *testing.T) {
	executor := NewExecutor()

	var n int
	var s string
	executor.Define("both", Func(func(arg *int, arg2 *string) {
		n = *arg
		s = *arg2
	}))

	if err := executor.Execute([]string{"both", "7", "x"}); err != nil {
		t.Fatal(err)
	}
	if n != 7 || s != "x" {
		t.Fatalf("got %v %q", n, s)
	}

	if err := executor.Execute([]string{"both", "8"}); err != nil {
		t.Fatal(err)
	}
	if n != 8 || s != "" {
		t.Fatalf("got %v %q", n, s)
	}

	if err := executor.Execute([]string{"both"}); err != nil {
		t.Fatal(err)
	}
	if n != 0 || s != "" {
		t.Fatalf("got %v %q", n, s)
	}
}

func TestArgumentKinds(t *testing.T) {
	executor := NewExecutor()

	var b bool
	var f float64
	var u uint8
	executor.Define("set", Func(func(argB bool, argF float64, argU uint8) {
		b = argB
		f = argF
		u = argU
	}))

	if err := executor.Execute([]string{"set", "yes", "1.5", "200"}); err != nil {
		t.Fatal(err)
	}
	if !b || f != 1.5 || u != 200 {
		t.Fatalf("got %v %v %v", b, f, u)
	}

	// out of range for uint8
	if err := executor.Execute([]string{"set", "no", "0", "300"}); err == nil {
		t.Fatal("should error")
	}
}

func TestMissingArgument(t *testing.T) {
	executor := NewExecutor()
	executor.Define("need", Func(func(int) {}))
	if err := executor.Execute([]string{"need"}); err == nil {
		t.Fatal("should error")
	}
}
