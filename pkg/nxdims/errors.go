/*
 * Copyright (c) 2026-present unTill Software Development Group B.V.
 */

package nxdims

import "errors"

var ErrSyntax = errors.New("dimension expression syntax error")

var ErrUnbound = errors.New("unbound dimension symbol")

var ErrDimMismatch = errors.New("dimension mismatch")

var ErrDivisionByZero = errors.New("division by zero")
