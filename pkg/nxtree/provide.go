/*
 * Copyright (c) 2026-present unTill Software Development Group B.V.
 */

package nxtree

import (
	"fmt"

	"github.com/untillpro/goutils/logger"

	"github.com/voedger/nxtree/pkg/nxdef"
	"github.com/voedger/nxtree/pkg/nxstorage"
)

type Option func(*tree)

// Sets validation mode for setters. Default is Validation_Types
func WithValidation(mode ValidationMode) Option {
	return func(t *tree) {
		if mode >= Validation_FakeLast {
			panic(enrichError(ErrNotDeclared, "validation mode %v", mode))
		}
		t.validation = mode
	}
}

// Creates new typed property tree over specified classes and storage
func New(classes nxdef.IClasses, storage nxstorage.IProvider, opts ...Option) ITree {
	t := newTree(classes, storage)
	for _, opt := range opts {
		opt(t)
	}
	if logger.IsVerbose() {
		logger.Verbose(fmt.Sprintf("new tree: %d classes, validation %s", classes.ClassCount(), t.validation.TrimString()))
	}
	return t
}
