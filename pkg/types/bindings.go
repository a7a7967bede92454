package types

// Bindings maps variable names to their numeric values for evaluation.
//
// A binding set must supply a value for every variable the expression tree
// references; partial bindings cause evaluation to fail rather than default.
// Names are opaque and case-sensitive.
type Bindings map[string]float64
