// Package types defines the core type system for GoFormula.
//
// This package contains type definitions for:
//   - Expression: Compiled formula expressions
//   - ASTNode: Abstract Syntax Tree nodes
//   - Bindings: Variable name to value mappings
//   - Error types: Structured errors with codes
package types

// Expression represents a compiled formula expression.
//
// An Expression can be evaluated multiple times against different bindings
// by passing it to [evaluator.Eval]. It is immutable and safe for concurrent
// use by multiple goroutines.
type Expression struct {
	ast    *ASTNode
	source string
}

// NewExpression creates a new Expression from an AST.
func NewExpression(ast *ASTNode, source string) *Expression {
	return &Expression{
		ast:    ast,
		source: source,
	}
}

// AST returns the Abstract Syntax Tree of the expression.
func (e *Expression) AST() *ASTNode {
	return e.ast
}

// Source returns the canonical source text of the expression.
func (e *Expression) Source() string {
	return e.source
}

// String returns a string representation of the expression.
func (e *Expression) String() string {
	return e.source
}
