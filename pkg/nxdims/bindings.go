/*
 * Copyright (c) 2026-present unTill Software Development Group B.V.
 */

package nxdims

import (
	"errors"
	"fmt"

	"golang.org/x/exp/maps"
)

// Binds bare symbols of dimension expressions to sizes of specified shape.
//
// Scalar value (empty shape) is treated as shape of ones.
// Returns ErrDimMismatch if rank differs or if symbol is already bound to other size.
// On error bindings are not changed.
// Compound expressions are not bound, they are checked by Check.
func (b Bindings) Bind(dims []string, shape []int) error {
	shape, err := fitShape(dims, shape)
	if err != nil {
		return err
	}
	bound := b.Clone()
	for i, d := range dims {
		e, err := Parse(d)
		if err != nil {
			return err
		}
		sym, ok := e.Symbol()
		if !ok {
			continue
		}
		if v, ok := bound[sym]; ok && v != shape[i] {
			return fmt.Errorf("dimension %d «%s» is %d, but already bound to %d: %w", i, sym, shape[i], v, ErrDimMismatch)
		}
		bound[sym] = shape[i]
	}
	maps.Copy(b, bound)
	return nil
}

// Checks shape conforms dimension expressions.
//
// Bare symbols are bound first, then every expression is evaluated and compared with size.
// Returns joined ErrDimMismatch errors. Returns ErrUnbound if some compound expression
// can not be evaluated, so shape can not be verified completely.
func (b Bindings) Check(dims []string, shape []int) error {
	if err := b.Bind(dims, shape); err != nil {
		return err
	}
	shape, _ = fitShape(dims, shape)

	var errs []error
	for i, d := range dims {
		e, _ := Parse(d)
		v, err := e.Eval(b)
		if err != nil {
			errs = append(errs, fmt.Errorf("dimension %d: %w", i, err))
			continue
		}
		if v != shape[i] {
			errs = append(errs, fmt.Errorf("dimension %d «%v» must be %d, but is %d: %w", i, e, v, shape[i], ErrDimMismatch))
		}
	}
	return errors.Join(errs...)
}

// Returns copy of bindings
func (b Bindings) Clone() Bindings {
	c := make(Bindings, len(b))
	maps.Copy(c, b)
	return c
}

func fitShape(dims []string, shape []int) ([]int, error) {
	if len(shape) == 0 {
		ones := make([]int, len(dims))
		for i := range ones {
			ones[i] = 1
		}
		return ones, nil
	}
	if len(shape) != len(dims) {
		return nil, fmt.Errorf("rank is %d, but %v dimensions expected: %w", len(shape), dims, ErrDimMismatch)
	}
	return shape, nil
}
