package parser

import (
	"fmt"
	"unicode"
	"unicode/utf8"

	"github.com/sandrolain/goformula/pkg/types"
)

const eof = -1

// Lexer converts canonical formula text into a sequence of tokens.
// The implementation is based on Rob Pike's "Lexical Scanning in Go" technique.
type Lexer struct {
	input   string // Input string being scanned
	length  int    // Length of input string
	start   int    // Start position of current token
	current int    // Current position in input
	width   int    // Width of last rune read
	err     error  // First error encountered
}

// NewLexer creates a new lexer from the provided input string.
// The input is tokenized by successive calls to the Next method.
func NewLexer(input string) *Lexer {
	return &Lexer{
		input:  input,
		length: len(input),
	}
}

// Next returns the next token from the input.
// When the end of the input is reached, Next returns TokenEOF for all
// subsequent calls.
func (l *Lexer) Next() Token {
	l.acceptAll(isWhitespace)
	l.ignore()

	ch := l.nextRune()
	if ch == eof {
		return l.eof()
	}

	// ** is the only two-character symbol
	if ch == '*' && l.acceptRune('*') {
		return l.newToken(TokenPow)
	}

	// Single-character symbols
	if tt := lookupSymbol1(ch); tt > 0 {
		return l.newToken(tt)
	}

	// Number literals
	if ch >= '0' && ch <= '9' {
		l.backup()
		return l.scanNumber()
	}

	// Identifiers: letters, digits and underscores, starting with a letter
	// or underscore
	if isNameStart(ch) {
		l.backup()
		return l.scanName()
	}

	return l.error(types.ErrUnexpectedChar, fmt.Sprintf("Unexpected character: %q", ch))
}

// Error returns the first error encountered during lexing, if any.
func (l *Lexer) Error() error {
	return l.err
}

// scanNumber reads a number literal from the current position.
// Supports integers, decimals, and scientific notation.
// Format: [0-9]+(\.[0-9]+)?([eE][+-]?[0-9]+)?
func (l *Lexer) scanNumber() Token {
	l.acceptAll(isDigit)

	// Decimal part
	if l.acceptRune('.') {
		// A dot with no digits after it stays in the token; the parser
		// rejects it as an invalid numeric literal.
		l.acceptAll(isDigit)
	}

	// Exponent part
	if mark := l.current; l.acceptRunes2('e', 'E') {
		l.acceptRunes2('+', '-')
		if !l.acceptAll(isDigit) {
			// "2e" without digits is not an exponent; back out so the
			// trailing e/E lexes as a separate name.
			l.current = mark
			l.width = 0
		}
	}

	return l.newToken(TokenNumber)
}

// scanName reads an identifier from the current position.
// Names can contain letters, digits, and underscores.
func (l *Lexer) scanName() Token {
	l.acceptAll(isNameRune)
	return l.newToken(TokenName)
}

// Helper methods

func (l *Lexer) eof() Token {
	return Token{
		Type:     TokenEOF,
		Position: l.current,
	}
}

func (l *Lexer) error(code types.ErrorCode, message string) Token {
	t := l.newToken(TokenError)
	l.err = (&types.ParseError{
		Code:     code,
		Message:  message,
		Position: t.Position,
	}).WithToken(t.Value).WithSource(l.input)
	return t
}

func (l *Lexer) newToken(tt TokenType) Token {
	t := Token{
		Type:     tt,
		Value:    l.input[l.start:l.current],
		Position: l.start,
	}
	l.width = 0
	l.start = l.current
	return t
}

func (l *Lexer) nextRune() rune {
	if l.err != nil || l.current >= l.length {
		l.width = 0
		return eof
	}

	r, w := utf8.DecodeRuneInString(l.input[l.current:])
	l.width = w
	l.current += w
	return r
}

func (l *Lexer) backup() {
	l.current -= l.width
	l.width = 0
}

func (l *Lexer) ignore() {
	l.start = l.current
	l.width = 0
}

func (l *Lexer) acceptRune(r rune) bool {
	return l.accept(func(c rune) bool {
		return c == r
	})
}

func (l *Lexer) acceptRunes2(r1, r2 rune) bool {
	return l.accept(func(c rune) bool {
		return c == r1 || c == r2
	})
}

func (l *Lexer) accept(isValid func(rune) bool) bool {
	if isValid(l.nextRune()) {
		return true
	}
	l.backup()
	return false
}

func (l *Lexer) acceptAll(isValid func(rune) bool) bool {
	var matched bool
	for l.accept(isValid) {
		matched = true
	}
	return matched
}

// Character classification functions

func isWhitespace(r rune) bool {
	switch r {
	case ' ', '\t', '\n', '\r', '\v':
		return true
	default:
		return false
	}
}

func isDigit(r rune) bool {
	return r >= '0' && r <= '9'
}

func isNameStart(r rune) bool {
	return r == '_' || unicode.IsLetter(r)
}

func isNameRune(r rune) bool {
	return r == '_' || unicode.IsLetter(r) || isDigit(r)
}
