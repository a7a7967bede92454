// Package parser compiles canonical formula text into an immutable
// expression tree.
//
// The parser uses a hand-written recursive descent approach for maximum
// performance and control, with Pratt's "Top Down Operator Precedence"
// algorithm driving operator binding.
//
// # Architecture
//
// The parser consists of two main components:
//   - Lexer: Tokenizes the input expression into a stream of tokens
//   - Parser: Builds an Abstract Syntax Tree (AST) from tokens
//
// # Grammar
//
// From lowest to highest precedence: addition/subtraction,
// multiplication/division, unary minus, exponentiation (**,
// right-associative). Atoms are numeric literals, identifiers, the named
// constants pi and e, single-argument calls to the allow-listed functions
// (sqrt, exp, log, abs), and parenthesized sub-expressions. The grammar
// accepts nothing else: the restriction is what keeps user-entered formula
// text from ever being executed as code.
//
// # Example
//
//	expr, err := parser.Parse("FC * EF * OF")
//	if err != nil {
//	    log.Fatal(err)
//	}
//	ast := expr.AST()
package parser

import (
	"github.com/sandrolain/goformula/pkg/types"
)

// Parse parses canonical formula text and returns the compiled Expression.
//
// The function tokenizes the input, builds an AST, and validates the syntax.
// If parsing fails, it returns a *types.ParseError with position information
// and the offending source text.
//
// Example:
//
//	expr, err := parser.Parse("(a + b) / c")
//	if err != nil {
//	    var perr *types.ParseError
//	    errors.As(err, &perr)
//	    fmt.Printf("Parse error at position %d\n", perr.Position)
//	    return
//	}
func Parse(input string) (*types.Expression, error) {
	p := NewParser(input)
	return p.Parse()
}

// Compile is an alias for Parse, provided for API consistency.
func Compile(input string, opts ...CompileOption) (*types.Expression, error) {
	p := NewParser(input, opts...)
	return p.Parse()
}

// CompileOption configures compilation behavior.
type CompileOption func(*CompileOptions)

// CompileOptions holds parser configuration.
type CompileOptions struct {
	// MaxDepth limits recursion depth to prevent stack overflow on
	// pathologically nested input.
	MaxDepth int
}

// WithMaxDepth sets the maximum parsing depth.
func WithMaxDepth(depth int) CompileOption {
	return func(opts *CompileOptions) {
		opts.MaxDepth = depth
	}
}
