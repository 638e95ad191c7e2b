/*
 * Copyright (c) 2026-present unTill Software Development Group B.V.
 */

package nxbase

import (
	"bytes"
	_ "embed"

	"github.com/voedger/nxtree/pkg/nxdef"
	"github.com/voedger/nxtree/pkg/nxstorage"
	"github.com/voedger/nxtree/pkg/nxtree"
)

//go:embed base_classes.yaml
var baseClassesYAML []byte

// Adds base classes to builder. Panics if builder already has some base class.
func AddBaseClasses(b nxdef.IClassesBuilder) {
	if err := nxdef.ReadCatalog(bytes.NewReader(baseClassesYAML), b); err != nil {
		panic(err)
	}
}

// Returns base classes catalog
func Provide() nxdef.IClasses {
	b := nxdef.New()
	AddBaseClasses(b)
	return b.MustBuild()
}

// Creates new tree of base classes over specified storage
func NewTree(storage nxstorage.IProvider, opts ...nxtree.Option) nxtree.ITree {
	return nxtree.New(Provide(), storage, opts...)
}
