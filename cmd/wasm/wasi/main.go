//go:build wasip1

// Command goformula-wasm-wasi is the WASI (wasip1) entrypoint for use from
// any language that supports the WebAssembly System Interface.
//
// Protocol: single JSON object on stdin → single JSON object on stdout.
//
//	stdin:  { "formula": "<text>", "bindings": { "FC": 1000, ... } }
//	    or: { "template": "<text>", "terms": [ { "FC_1": 10, ... }, ... ] }
//	stdout: { "result": <number> }     on success
//	        { "error":  "<message>" }  on failure (exit code 1)
//
// Build:
//
//	GOOS=wasip1 GOARCH=wasm go build -o goformula.wasm ./cmd/wasm/wasi/
//
// Usage with wasmtime CLI:
//
//	echo '{"formula":"E = FC * EF","bindings":{"FC":1000,"EF":2.5}}' | wasmtime goformula.wasm
package main

import (
	"encoding/json"
	"os"

	"github.com/sandrolain/goformula"
)

type request struct {
	Formula  string               `json:"formula,omitempty"`
	Bindings goformula.Bindings   `json:"bindings,omitempty"`
	Template string               `json:"template,omitempty"`
	Terms    []goformula.Bindings `json:"terms,omitempty"`
}

type response struct {
	Result *float64 `json:"result,omitempty"`
	Error  string   `json:"error,omitempty"`
}

func writeResponse(r response, exitCode int) {
	_ = json.NewEncoder(os.Stdout).Encode(r)
	os.Exit(exitCode)
}

func main() {
	var req request
	if err := json.NewDecoder(os.Stdin).Decode(&req); err != nil {
		writeResponse(response{Error: "invalid request JSON: " + err.Error()}, 1)
	}

	var (
		result float64
		err    error
	)
	switch {
	case req.Template != "":
		result, err = goformula.EvalSum(req.Template, req.Terms)
	case req.Formula != "":
		result, err = goformula.Eval(req.Formula, req.Bindings)
	default:
		writeResponse(response{Error: "request must contain a formula or a template"}, 1)
	}
	if err != nil {
		writeResponse(response{Error: err.Error()}, 1)
	}

	writeResponse(response{Result: &result}, 0)
}
