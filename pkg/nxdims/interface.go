/*
 * Copyright (c) 2026-present unTill Software Development Group B.V.
 */

package nxdims

// Parsed dimension expression, like «nP», «2*n_slits» or «(nx+1)*ny».
//
// Ref. impl.go for implementation
type IExpr interface {
	// Evaluates expression with specified symbol bindings.
	//
	// Returns ErrUnbound if some symbol is not bound.
	Eval(Bindings) (int, error)

	// Returns symbol names used by expression in order of appearance, without duplicates
	Symbols() []string

	// Returns symbol name and true if expression is bare symbol
	Symbol() (string, bool)

	// Returns normalized expression text
	String() string
}

// Symbol to dimension size bindings
type Bindings map[string]int
