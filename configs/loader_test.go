package configs

import (
	"errors"
	"fmt"
	"testing"
)

var testSchema = `
indent?: string
limits?: [...int]
`

func TestAssignFirst(t *testing.T) {
	loader := NewLoader([]string{"test.cue"}, testSchema)

	var indent string
	if err := loader.AssignFirst("indent", &indent); err != nil {
		t.Fatal(err)
	}
	if indent != ">>" {
		t.Fatalf("got %q", indent)
	}

	var limits []int
	if err := loader.AssignFirst("limits", &limits); err != nil {
		t.Fatal(err)
	}
	if str := fmt.Sprintf("%v", limits); str != "[10 20]" {
		t.Fatalf("got %s", str)
	}

	err := loader.AssignFirst("missing", &limits)
	if !errors.Is(err, ErrValueNotFound) {
		t.Fatalf("got %v", err)
	}
}

func TestFileOrder(t *testing.T) {
	loader := NewLoader([]string{
		"test.cue",
		"test2.cue",
	}, testSchema)

	// AssignFirst takes the earliest file
	var indent string
	if err := loader.AssignFirst("indent", &indent); err != nil {
		t.Fatal(err)
	}
	if indent != ">>" {
		t.Fatalf("got %q", indent)
	}

	// iteration walks every file in order
	var all []string
	for value, err := range loader.IterCueValues("indent") {
		if err != nil {
			t.Fatal(err)
		}
		var s string
		if err := value.Decode(&s); err != nil {
			t.Fatal(err)
		}
		all = append(all, s)
	}
	if str := fmt.Sprintf("%q", all); str != `[">>" "  "]` {
		t.Fatalf("got %s", str)
	}

	all = all[:0]
	for s := range All[string](loader, "indent") {
		all = append(all, s)
	}
	if str := fmt.Sprintf("%q", all); str != `[">>" "  "]` {
		t.Fatalf("got %s", str)
	}
}

func TestSchemaRejectsUnknownField(t *testing.T) {
	loader := NewLoader([]string{"bad.cue"}, testSchema)
	var v bool
	if err := loader.AssignFirst("mystery", &v); err == nil {
		t.Fatal("should error")
	}
}

func TestMissingFile(t *testing.T) {
	loader := NewLoader([]string{"no-such-file.cue"}, "")
	var indent string
	if err := loader.AssignFirst("indent", &indent); err == nil {
		t.Fatal("should error")
	}
}
