/*
 * Copyright (c) 2026-present unTill Software Development Group B.V.
 */

package nxvalue

import "github.com/voedger/nxtree/pkg/nxdef"

// Immutable typed N-dimensional array.
//
// Data is stored flat in row-major order. Zero-dimensional array (empty shape) is scalar.
// Stored kind is one of int, uint, float, char, bool or datetime.
//
// Ref. array.go for constructors and methods
type Array struct {
	kind  nxdef.DataKind
	shape []int

	// one of []int64, []uint64, []float64, []string, []bool, []time.Time
	data any
}
