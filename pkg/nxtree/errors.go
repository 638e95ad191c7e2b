/*
 * Copyright (c) 2026-present unTill Software Development Group B.V.
 */

package nxtree

import (
	"errors"
	"fmt"

	"github.com/voedger/nxtree/pkg/nxdims"
	"github.com/voedger/nxtree/pkg/nxstorage"
	"github.com/voedger/nxtree/pkg/nxvalue"
)

var ErrNotPresent = errors.New("not present")

var ErrTypeMismatch = nxvalue.ErrTypeMismatch

var ErrWrongCardinality = nxvalue.ErrWrongCardinality

var ErrNameCollision = nxstorage.ErrNameCollision

var ErrDimMismatch = nxdims.ErrDimMismatch

var ErrUnknownClass = errors.New("unknown class")

var ErrUnknownSlot = errors.New("unknown slot")

var ErrWrongClass = errors.New("wrong class")

var ErrNotDeclared = errors.New("not declared")

var ErrEnumViolation = errors.New("value out of enumeration")

var ErrOccursViolation = errors.New("occurs violation")

var ErrInvalidPath = errors.New("invalid path")

func enrichError(err error, msg string, args ...any) error {
	return fmt.Errorf("%s: %w", fmt.Sprintf(msg, args...), err)
}

var ErrCycle = nxstorage.ErrCycle

var ErrForeignGroup = nxstorage.ErrForeignGroup

// Used as return value from WalkFunc to skip children of node
var SkipChildren = errors.New("skip children")
