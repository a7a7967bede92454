//go:build js && wasm

// Command goformula-wasm-js is the WebAssembly entrypoint for browser and
// Node.js, so calculator front-ends can run the formula engine client-side.
//
// It exposes a global `goformula` object with the following API:
//
//	goformula.version()                      → string
//	goformula.normalize(formula)             → canonical text
//	goformula.vars(formula)                  → namesJSON       (throws on error)
//	goformula.eval(formula, bindingsJSON)    → number          (throws on error)
//	goformula.evalSum(template, termsJSON)   → number          (throws on error)
//
// bindingsJSON is a JSON object mapping variable names to numbers;
// termsJSON is a JSON array of such objects, one per summation term.
//
// Build:
//
//	GOOS=js GOARCH=wasm go build -o goformula.wasm ./cmd/wasm/js/
//
// Usage in Node.js:
//
//	const gf = await load()
//	gf.eval('E = FC * EF * OF', JSON.stringify({FC:1000, EF:2.5, OF:0.98})) // 2450
package main

import (
	"encoding/json"
	"fmt"
	"syscall/js"

	"github.com/sandrolain/goformula"
)

// jsThrow panics with a JS Error so the caller receives a thrown exception.
func jsThrow(msg string) {
	js.Global().Get("Error").New(msg)
	panic(msg)
}

// jsNormalize implements goformula.normalize(formula) → canonical text.
func jsNormalize(_ js.Value, args []js.Value) interface{} {
	if len(args) < 1 {
		jsThrow("goformula.normalize requires 1 argument: formula (string)")
	}
	return goformula.Normalize(args[0].String())
}

// jsVars implements goformula.vars(formula) → namesJSON.
func jsVars(_ js.Value, args []js.Value) interface{} {
	if len(args) < 1 {
		jsThrow("goformula.vars requires 1 argument: formula (string)")
	}

	expr, err := goformula.Compile(args[0].String())
	if err != nil {
		jsThrow(fmt.Sprintf("goformula.vars: %v", err))
	}

	out, err := json.Marshal(goformula.Variables(expr))
	if err != nil {
		jsThrow(fmt.Sprintf("goformula.vars: marshal result: %v", err))
	}
	return string(out)
}

// jsEval implements goformula.eval(formula, bindingsJSON) → number.
func jsEval(_ js.Value, args []js.Value) interface{} {
	if len(args) < 2 {
		jsThrow("goformula.eval requires 2 arguments: formula (string) and bindings (JSON string)")
	}

	var bindings goformula.Bindings
	if err := json.Unmarshal([]byte(args[1].String()), &bindings); err != nil {
		jsThrow(fmt.Sprintf("goformula.eval: invalid bindings JSON: %v", err))
	}

	result, err := goformula.Eval(args[0].String(), bindings)
	if err != nil {
		jsThrow(fmt.Sprintf("goformula.eval: %v", err))
	}
	return result
}

// jsEvalSum implements goformula.evalSum(template, termsJSON) → number.
func jsEvalSum(_ js.Value, args []js.Value) interface{} {
	if len(args) < 2 {
		jsThrow("goformula.evalSum requires 2 arguments: template (string) and terms (JSON string)")
	}

	var terms []goformula.Bindings
	if err := json.Unmarshal([]byte(args[1].String()), &terms); err != nil {
		jsThrow(fmt.Sprintf("goformula.evalSum: invalid terms JSON: %v", err))
	}

	result, err := goformula.EvalSum(args[0].String(), terms)
	if err != nil {
		jsThrow(fmt.Sprintf("goformula.evalSum: %v", err))
	}
	return result
}

func main() {
	api := map[string]interface{}{
		"normalize": js.FuncOf(jsNormalize),
		"vars":      js.FuncOf(jsVars),
		"eval":      js.FuncOf(jsEval),
		"evalSum":   js.FuncOf(jsEvalSum),
		"version": js.FuncOf(func(_ js.Value, _ []js.Value) interface{} {
			return goformula.Version()
		}),
	}
	js.Global().Set("goformula", js.ValueOf(api))

	// Block forever — the JS event loop owns execution from here.
	select {}
}
