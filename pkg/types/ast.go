package types

// NodeType identifies the type of an AST node.
type NodeType string

// AST node types. The tree holds exactly the six kinds of the formula
// grammar; there is no statement, assignment or control-flow node.
const (
	NodeNumber   NodeType = "number"   // Numeric literal
	NodeVariable NodeType = "variable" // Identifier bound at evaluation time
	NodeConstant NodeType = "constant" // pi, e
	NodeBinary   NodeType = "binary"   // +, -, *, /, **
	NodeUnary    NodeType = "unary"    // Unary minus
	NodeFunction NodeType = "function" // Allow-listed single-argument call
)

// ASTNode represents a node in the expression tree.
//
// Fields are strongly typed: Num carries the literal value for NodeNumber,
// Value carries the operator symbol, identifier, constant or function name
// for every other kind. Nodes are never mutated after the parser returns.
type ASTNode struct {
	Type     NodeType
	Value    string  // Operator, identifier, constant or function name
	Num      float64 // Literal value; set only for NodeNumber
	Position int     // Starting position in the canonical text

	LHS *ASTNode // Binary left operand; unary operand; function argument
	RHS *ASTNode // Binary right operand
}

// NewASTNode creates a new AST node of the specified type.
func NewASTNode(nodeType NodeType, position int) *ASTNode {
	return &ASTNode{
		Type:     nodeType,
		Position: position,
	}
}

// String returns a string representation of the node type.
func (n *ASTNode) String() string {
	return string(n.Type)
}
