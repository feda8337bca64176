package playground

import (
	"encoding/json"
	"errors"
	"io"
	"net/http"

	"github.com/auralite/aura/auraconfigs"
	"github.com/auralite/aura/logs"
	"golang.org/x/net/websocket"
)

// Result is what both endpoints send back: generated text, or the
// syntax error message verbatim.
type Result struct {
	Output string `json:"output,omitempty"`
	Error  string `json:"error,omitempty"`
}

const maxSourceBytes = 1 << 20

// Handler serves editor shells. POST /transpile takes the full source
// in the request body and returns a Result; /live is a websocket that
// re-transpiles every received source snapshot. Neither endpoint holds
// state between messages: full source in, full result out.
type Handler = http.Handler

func (Module) Handler(
	transpile auraconfigs.Transpile,
	logger logs.Logger,
) Handler {
	mux := http.NewServeMux()

	mux.HandleFunc("POST /transpile", func(w http.ResponseWriter, r *http.Request) {
		source, err := io.ReadAll(io.LimitReader(r.Body, maxSourceBytes))
		if err != nil {
			http.Error(w, err.Error(), http.StatusBadRequest)
			return
		}
		result, ok := runTranspile(transpile, string(source))
		w.Header().Set("Content-Type", "application/json")
		if !ok {
			w.WriteHeader(http.StatusUnprocessableEntity)
		}
		json.NewEncoder(w).Encode(result)
	})

	mux.Handle("/live", websocket.Handler(func(conn *websocket.Conn) {
		defer conn.Close()
		for {
			var source string
			if err := websocket.Message.Receive(conn, &source); err != nil {
				if !errors.Is(err, io.EOF) {
					logger.Debug("live receive", "error", err)
				}
				return
			}
			result, _ := runTranspile(transpile, source)
			if err := websocket.JSON.Send(conn, result); err != nil {
				logger.Debug("live send", "error", err)
				return
			}
		}
	}))

	return mux
}

func runTranspile(transpile auraconfigs.Transpile, source string) (Result, bool) {
	output, err := transpile("playground", source)
	if err != nil {
		return Result{Error: err.Error()}, false
	}
	return Result{Output: output}, true
}
