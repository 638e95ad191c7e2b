/*
 * Copyright (c) 2026-present unTill Software Development Group B.V.
 */

package nxtree

import (
	"fmt"
	"sync"

	"github.com/untillpro/goutils/logger"

	"github.com/voedger/nxtree/pkg/nxdef"
	"github.com/voedger/nxtree/pkg/nxstorage"
	"github.com/voedger/nxtree/pkg/nxvalue"
)

// # Implements:
//   - ITree
type tree struct {
	classes    nxdef.IClasses
	storage    nxstorage.IProvider
	validation ValidationMode

	rootOnce sync.Once
	root     INode
	rootErr  error

	// deprecated fields already warned, key is «class.field»
	warned sync.Map
}

func newTree(classes nxdef.IClasses, storage nxstorage.IProvider) *tree {
	return &tree{
		classes:    classes,
		storage:    storage,
		validation: DefaultValidation,
	}
}

func (t *tree) Classes() nxdef.IClasses { return t.classes }

func (t *tree) NewNode(class string) (INode, error) {
	cls := t.classes.Class(class)
	if cls == nil {
		return nil, enrichError(ErrUnknownClass, "class «%s»", class)
	}
	g := t.storage.NewGroup(cls.Name())
	g.PutAttr(nxdef.Attr_NXClass, nxvalue.MustScalar(cls.Name()))
	if logger.IsVerbose() {
		logger.Verbose(fmt.Sprintf("new node %s %v", cls.Name(), g.ID()))
	}
	return t.wrap(cls, g), nil
}

func (t *tree) Root() (INode, error) {
	t.rootOnce.Do(func() {
		t.root, t.rootErr = t.NewNode(RootClass)
	})
	return t.root, t.rootErr
}

func (t *tree) Wrap(g nxstorage.IGroup) (INode, error) {
	cls := t.classes.Class(g.Class())
	if cls == nil {
		return nil, enrichError(ErrUnknownClass, "group %v class «%s»", g.ID(), g.Class())
	}
	return t.wrap(cls, g), nil
}

func (t *tree) wrap(cls nxdef.IClass, g nxstorage.IGroup) *node {
	return &node{tree: t, class: cls, group: g}
}

// Logs warning on first access to deprecated field of class
func (t *tree) warnDeprecated(cls nxdef.IClass, f nxdef.IField) {
	if f == nil || f.Deprecated() == "" {
		return
	}
	key := cls.Name() + "." + f.Name()
	if _, loaded := t.warned.LoadOrStore(key, struct{}{}); !loaded {
		logger.Warning(fmt.Sprintf("field «%s» of %s is deprecated: %s", f.Name(), cls.Name(), f.Deprecated()))
	}
}
