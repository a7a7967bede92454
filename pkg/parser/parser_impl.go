package parser

import (
	"fmt"
	"strconv"

	"github.com/sandrolain/goformula/pkg/functions"
	"github.com/sandrolain/goformula/pkg/types"
)

// Parser implements a recursive descent parser for canonical formula text.
// It uses Pratt's "Top Down Operator Precedence" algorithm to handle
// operator precedence correctly.
type Parser struct {
	lexer   *Lexer
	current Token
	depth   int
	opts    CompileOptions
}

// NewParser creates a new parser for the given input string.
func NewParser(input string, opts ...CompileOption) *Parser {
	options := CompileOptions{
		MaxDepth: 100,
	}
	for _, opt := range opts {
		opt(&options)
	}

	p := &Parser{
		lexer: NewLexer(input),
		opts:  options,
	}

	// Read the first token
	p.advance()

	return p
}

// Parse parses the entire expression and returns the compiled Expression.
func (p *Parser) Parse() (*types.Expression, error) {
	if p.current.Type == TokenError {
		return nil, p.lexer.Error()
	}

	if p.current.Type == TokenEOF {
		return nil, p.error(types.ErrEmptyExpression, "Empty expression")
	}

	node, err := p.parseExpression(0)
	if err != nil {
		return nil, err
	}

	if p.current.Type == TokenError {
		return nil, p.lexer.Error()
	}
	if p.current.Type != TokenEOF {
		return nil, p.error(types.ErrUnexpectedToken, fmt.Sprintf("Unexpected token: %s", p.current.Value))
	}

	return types.NewExpression(node, p.lexer.input), nil
}

// Operator precedence table (binding power).
// Higher values bind more tightly. Unary minus binds at 65: tighter than
// multiplication, looser than exponentiation, so -a**2 is -(a**2).
var precedence = map[TokenType]int{
	TokenPlus:  50, // +
	TokenMinus: 50, // -
	TokenMult:  60, // *
	TokenDiv:   60, // /
	TokenPow:   70, // **
}

// unaryMinusPrecedence is the binding power of prefix minus.
const unaryMinusPrecedence = 65

// getPrecedence returns the precedence of a token type.
func (p *Parser) getPrecedence(tt TokenType) int {
	if prec, ok := precedence[tt]; ok {
		return prec
	}
	return 0
}

// advance moves to the next token.
func (p *Parser) advance() {
	p.current = p.lexer.Next()
}

// expect checks if the current token matches the expected type and advances.
func (p *Parser) expect(tt TokenType) error {
	if p.current.Type != tt {
		return p.error(types.ErrExpectedToken, fmt.Sprintf("Expected %s but got %s", tt.String(), p.current.Type.String()))
	}
	p.advance()
	return nil
}

// error creates a parser error carrying the source text.
func (p *Parser) error(code types.ErrorCode, message string) error {
	return (&types.ParseError{
		Code:     code,
		Message:  message,
		Position: p.current.Position,
	}).WithToken(p.current.Value).WithSource(p.lexer.input)
}

// parseExpression parses an expression with operator precedence.
// rbp is the right binding power (minimum precedence).
func (p *Parser) parseExpression(rbp int) (*types.ASTNode, error) {
	p.depth++
	defer func() { p.depth-- }()
	if p.depth > p.opts.MaxDepth {
		return nil, p.error(types.ErrDepthExceeded, "Expression too deeply nested")
	}

	// Parse prefix expression (nud - null denotation)
	left, err := p.parsePrefix()
	if err != nil {
		return nil, err
	}

	// Parse infix expressions while precedence allows (led - left denotation)
	for rbp < p.getPrecedence(p.current.Type) {
		left, err = p.parseInfix(left)
		if err != nil {
			return nil, err
		}
	}

	return left, nil
}

// parsePrefix parses a prefix expression (nud - null denotation).
// These are expressions that don't require a left-hand side.
func (p *Parser) parsePrefix() (*types.ASTNode, error) {
	switch p.current.Type {
	case TokenNumber:
		return p.parseNumber()
	case TokenName:
		return p.parseName()
	case TokenMinus:
		return p.parseUnaryMinus()
	case TokenParenOpen:
		return p.parseGrouping()
	case TokenEOF:
		return nil, p.error(types.ErrUnexpectedEnd, "Unexpected end of expression")
	case TokenError:
		return nil, p.lexer.Error()
	default:
		return nil, p.error(types.ErrUnexpectedToken, fmt.Sprintf("Unexpected token: %s", p.current.Value))
	}
}

// parseInfix parses an infix expression (led - left denotation) given its
// already-parsed left-hand side. The current token is the operator.
func (p *Parser) parseInfix(left *types.ASTNode) (*types.ASTNode, error) {
	op := p.current
	prec := p.getPrecedence(op.Type)
	p.advance()

	// Exponentiation is right-associative: parse the right side at one
	// precedence level lower so a ** b ** c groups as a ** (b ** c).
	rbp := prec
	if op.Type == TokenPow {
		rbp = prec - 1
	}

	right, err := p.parseExpression(rbp)
	if err != nil {
		return nil, err
	}

	node := types.NewASTNode(types.NodeBinary, op.Position)
	node.Value = op.Type.String()
	node.LHS = left
	node.RHS = right
	return node, nil
}

// parseNumber parses a number literal.
func (p *Parser) parseNumber() (*types.ASTNode, error) {
	node := types.NewASTNode(types.NodeNumber, p.current.Position)

	val, err := strconv.ParseFloat(p.current.Value, 64)
	if err != nil {
		return nil, p.error(types.ErrInvalidNumber, fmt.Sprintf("Invalid number: %s", p.current.Value))
	}

	node.Num = val
	p.advance()
	return node, nil
}

// parseName parses an identifier: a named constant, a function call when
// followed by an opening parenthesis, or a variable reference otherwise.
func (p *Parser) parseName() (*types.ASTNode, error) {
	name := p.current
	p.advance()

	if p.current.Type == TokenParenOpen {
		return p.parseFunctionCall(name)
	}

	if _, ok := functions.Constant(name.Value); ok {
		node := types.NewASTNode(types.NodeConstant, name.Position)
		node.Value = name.Value
		return node, nil
	}

	node := types.NewASTNode(types.NodeVariable, name.Position)
	node.Value = name.Value
	return node, nil
}

// parseFunctionCall parses fn(arg), with fn restricted to the fixed
// allow-list. The opening parenthesis is the current token.
func (p *Parser) parseFunctionCall(name Token) (*types.ASTNode, error) {
	if _, ok := functions.Lookup(name.Value); !ok {
		return nil, (&types.ParseError{
			Code:     types.ErrUnknownFunction,
			Message:  fmt.Sprintf("Unknown function: %s", name.Value),
			Position: name.Position,
		}).WithToken(name.Value).WithSource(p.lexer.input)
	}

	p.advance() // consume (

	arg, err := p.parseExpression(0)
	if err != nil {
		return nil, err
	}

	if err := p.expect(TokenParenClose); err != nil {
		return nil, err
	}

	node := types.NewASTNode(types.NodeFunction, name.Position)
	node.Value = name.Value
	node.LHS = arg
	return node, nil
}

// parseUnaryMinus parses a unary minus operator.
func (p *Parser) parseUnaryMinus() (*types.ASTNode, error) {
	pos := p.current.Position
	p.advance()

	expr, err := p.parseExpression(unaryMinusPrecedence)
	if err != nil {
		return nil, err
	}

	node := types.NewASTNode(types.NodeUnary, pos)
	node.Value = "-"
	node.LHS = expr
	return node, nil
}

// parseGrouping parses a parenthesized sub-expression.
func (p *Parser) parseGrouping() (*types.ASTNode, error) {
	p.advance() // consume (

	expr, err := p.parseExpression(0)
	if err != nil {
		return nil, err
	}

	if err := p.expect(TokenParenClose); err != nil {
		return nil, err
	}

	return expr, nil
}
