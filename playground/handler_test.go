package playground

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/auralite/aura/modes"
	"github.com/reusee/dscope"
	"golang.org/x/net/websocket"
)

func testHandler(t *testing.T) Handler {
	t.Helper()
	var handler Handler
	dscope.New(
		new(Module),
		modes.ForTest(t),
	).Call(func(h Handler) {
		handler = h
	})
	return handler
}

func TestTranspileEndpoint(t *testing.T) {
	handler := testHandler(t)

	rec := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/transpile",
		strings.NewReader("when x > 5 then send output x end"))
	handler.ServeHTTP(rec, req)

	if rec.Code != http.StatusOK {
		t.Fatalf("got %d: %s", rec.Code, rec.Body.String())
	}
	var result Result
	if err := json.Unmarshal(rec.Body.Bytes(), &result); err != nil {
		t.Fatal(err)
	}
	if result.Error != "" {
		t.Fatalf("got %q", result.Error)
	}
	if result.Output != "if (x > 5) {\n  console.log(x);\n}\n" {
		t.Fatalf("got %q", result.Output)
	}
}

func TestTranspileEndpointSyntaxError(t *testing.T) {
	handler := testHandler(t)

	rec := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/transpile",
		strings.NewReader("when x > 5 send output x end"))
	handler.ServeHTTP(rec, req)

	if rec.Code != http.StatusUnprocessableEntity {
		t.Fatalf("got %d", rec.Code)
	}
	var result Result
	if err := json.Unmarshal(rec.Body.Bytes(), &result); err != nil {
		t.Fatal(err)
	}
	if !strings.Contains(result.Error, "missing 'then'") {
		t.Fatalf("got %q", result.Error)
	}
	if result.Output != "" {
		t.Fatalf("partial output: %q", result.Output)
	}
}

func TestTranspileEndpointMethod(t *testing.T) {
	handler := testHandler(t)

	rec := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/transpile", nil)
	handler.ServeHTTP(rec, req)
	if rec.Code == http.StatusOK {
		t.Fatal("GET must not transpile")
	}
}

func TestLiveEndpoint(t *testing.T) {
	server := httptest.NewServer(testHandler(t))
	defer server.Close()

	url := "ws" + strings.TrimPrefix(server.URL, "http") + "/live"
	conn, err := websocket.Dial(url, "", server.URL)
	if err != nil {
		t.Fatal(err)
	}
	defer conn.Close()

	sources := []struct {
		source string
		output string
		failed bool
	}{
		{source: "send output 42", output: "console.log(42);\n"},
		{source: "when x 5 end", failed: true},
		{source: "give back x", output: "return x;\n"},
	}
	for _, test := range sources {
		if err := websocket.Message.Send(conn, test.source); err != nil {
			t.Fatal(err)
		}
		var result Result
		if err := websocket.JSON.Receive(conn, &result); err != nil {
			t.Fatal(err)
		}
		if test.failed {
			if result.Error == "" {
				t.Fatalf("source %q: expected error", test.source)
			}
			continue
		}
		if result.Output != test.output {
			t.Fatalf("source %q: got %q", test.source, result.Output)
		}
	}
}
