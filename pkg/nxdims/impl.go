/*
 * Copyright (c) 2026-present unTill Software Development Group B.V.
 */

package nxdims

import (
	"fmt"
	"strconv"
)

// Expression tree node
type node interface {
	eval(Bindings) (int, error)
	symbols(func(string))
	String() string
}

type numNode int

func (n numNode) eval(Bindings) (int, error) { return int(n), nil }

func (n numNode) symbols(func(string)) {}

func (n numNode) String() string { return strconv.Itoa(int(n)) }

type symNode string

func (n symNode) eval(b Bindings) (int, error) {
	if v, ok := b[string(n)]; ok {
		return v, nil
	}
	return 0, fmt.Errorf("«%s»: %w", string(n), ErrUnbound)
}

func (n symNode) symbols(cb func(string)) { cb(string(n)) }

func (n symNode) String() string { return string(n) }

type binNode struct {
	op          byte
	left, right node
}

func (n *binNode) eval(b Bindings) (int, error) {
	l, err := n.left.eval(b)
	if err != nil {
		return 0, err
	}
	r, err := n.right.eval(b)
	if err != nil {
		return 0, err
	}
	switch n.op {
	case '+':
		return l + r, nil
	case '-':
		return l - r, nil
	case '*':
		return l * r, nil
	default:
		if r == 0 {
			return 0, fmt.Errorf("%v: %w", n, ErrDivisionByZero)
		}
		return l / r, nil
	}
}

func (n *binNode) symbols(cb func(string)) {
	n.left.symbols(cb)
	n.right.symbols(cb)
}

func (n *binNode) String() string {
	l, r := n.left.String(), n.right.String()
	if lb, ok := n.left.(*binNode); ok && priority(lb.op) < priority(n.op) {
		l = "(" + l + ")"
	}
	if rb, ok := n.right.(*binNode); ok && priority(rb.op) <= priority(n.op) {
		r = "(" + r + ")"
	}
	return l + string(n.op) + r
}

func priority(op byte) int {
	if op == '*' || op == '/' {
		return 1
	}
	return 0
}

// # Implements:
//   - IExpr
type expr struct {
	root node
}

func (e *expr) Eval(b Bindings) (int, error) {
	return e.root.eval(b)
}

func (e *expr) String() string { return e.root.String() }

func (e *expr) Symbol() (string, bool) {
	s, ok := e.root.(symNode)
	return string(s), ok
}

func (e *expr) Symbols() []string {
	var list []string
	seen := map[string]bool{}
	e.root.symbols(func(s string) {
		if !seen[s] {
			seen[s] = true
			list = append(list, s)
		}
	})
	return list
}

func buildExpr(ast *exprAST) node {
	n := buildTerm(ast.Left)
	for _, r := range ast.Right {
		n = &binNode{op: r.Op[0], left: n, right: buildTerm(r.Term)}
	}
	return n
}

func buildTerm(ast *termAST) node {
	n := buildFactor(ast.Left)
	for _, r := range ast.Right {
		n = &binNode{op: r.Op[0], left: n, right: buildFactor(r.Factor)}
	}
	return n
}

func buildFactor(ast *factorAST) node {
	switch {
	case ast.Number != nil:
		return numNode(*ast.Number)
	case ast.Symbol != nil:
		return symNode(*ast.Symbol)
	default:
		return buildExpr(ast.Sub)
	}
}
