/*
 * Copyright (c) 2026-present unTill Software Development Group B.V.
 */

package nxvalue

import "errors"

// Stored value kind can not be coerced to requested kind
var ErrTypeMismatch = errors.New("type mismatch")

// Scalar requested from multi-element array or shape does not fit data
var ErrWrongCardinality = errors.New("wrong cardinality")

// Go value type is not supported
var ErrUnsupportedType = errors.New("unsupported type")
