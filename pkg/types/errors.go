package types

import "fmt"

// ErrorCode identifies a specific failure condition.
type ErrorCode string

// Error codes. S-codes are syntax-level failures raised while turning
// canonical text into a tree; D-codes are evaluation failures raised while
// reducing a valid tree to a number.
const (
	// S0xxx: Parse errors
	ErrEmptyExpression ErrorCode = "S0101"
	ErrInvalidNumber   ErrorCode = "S0102"
	ErrUnexpectedChar  ErrorCode = "S0103"
	ErrUnexpectedEnd   ErrorCode = "S0104"
	ErrUnexpectedToken ErrorCode = "S0201"
	ErrExpectedToken   ErrorCode = "S0202"
	ErrUnknownFunction ErrorCode = "S0203"
	ErrDepthExceeded   ErrorCode = "S0204"

	// D0xxx: Evaluation errors
	ErrUndefinedVariable ErrorCode = "D1001"
	ErrDivisionByZero    ErrorCode = "D2001"
	ErrSqrtDomain        ErrorCode = "D2002"
	ErrLogDomain         ErrorCode = "D2003"
	ErrPowDomain         ErrorCode = "D2004"
	ErrNonFinite         ErrorCode = "D2005"
)

// ParseError reports that canonical expression text could not be tokenized
// or parsed into a valid tree. It carries the offending source text for
// diagnostics.
type ParseError struct {
	Code     ErrorCode
	Message  string
	Position int
	Token    string
	Source   string
}

// NewParseError creates a new ParseError.
func NewParseError(code ErrorCode, message string, position int) *ParseError {
	return &ParseError{
		Code:     code,
		Message:  message,
		Position: position,
	}
}

// Error implements the error interface.
func (e *ParseError) Error() string {
	if e.Source != "" {
		return fmt.Sprintf("%s at position %d: %s (in %q)", e.Code, e.Position, e.Message, e.Source)
	}
	return fmt.Sprintf("%s at position %d: %s", e.Code, e.Position, e.Message)
}

// WithToken adds token information to the error.
func (e *ParseError) WithToken(token string) *ParseError {
	e.Token = token
	return e
}

// WithSource attaches the full source text being parsed.
func (e *ParseError) WithSource(source string) *ParseError {
	e.Source = source
	return e
}

// EvalError reports that a structurally valid tree could not be reduced to a
// finite number: either a referenced variable is missing from the bindings,
// or an operation is outside its mathematical domain.
type EvalError struct {
	Code     ErrorCode
	Message  string
	Variable string // name of the missing variable, when Code is ErrUndefinedVariable
}

// NewEvalError creates a new EvalError.
func NewEvalError(code ErrorCode, message string) *EvalError {
	return &EvalError{
		Code:    code,
		Message: message,
	}
}

// Error implements the error interface.
func (e *EvalError) Error() string {
	return fmt.Sprintf("%s: %s", e.Code, e.Message)
}

// WithVariable records the variable name that triggered the error.
func (e *EvalError) WithVariable(name string) *EvalError {
	e.Variable = name
	return e
}
