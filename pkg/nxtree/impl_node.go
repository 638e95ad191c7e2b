/*
 * Copyright (c) 2026-present unTill Software Development Group B.V.
 */

package nxtree

import (
	"fmt"

	"github.com/google/uuid"

	"github.com/voedger/nxtree/pkg/nxdef"
	"github.com/voedger/nxtree/pkg/nxstorage"
	"github.com/voedger/nxtree/pkg/nxvalue"
)

// # Implements:
//   - INode
//
// Node holds no values, every accessor reads and writes storage group.
type node struct {
	tree  *tree
	class nxdef.IClass
	group nxstorage.IGroup
}

func (n *node) ID() uuid.UUID { return n.group.ID() }

func (n *node) Tree() ITree { return n.tree }

func (n *node) Class() nxdef.IClass { return n.class }

func (n *node) Group() nxstorage.IGroup { return n.group }

func (n *node) String() string {
	return fmt.Sprintf("%s «%v»", n.class.Name(), n.group.ID())
}

func (n *node) Attr(name string) (nxvalue.Array, error) {
	v, ok := n.group.Attr(name)
	if !ok {
		return nxvalue.Array{}, enrichError(ErrNotPresent, "%v attribute «%s»", n, name)
	}
	return v, nil
}

func (n *node) SetAttr(name string, value nxvalue.Array) error {
	if ok, err := nxdef.ValidIdent(name); !ok {
		return enrichError(err, "%v attribute", n)
	}
	if name == nxdef.Attr_NXClass {
		return enrichError(ErrNameCollision, "%v attribute «%s» is reserved", n, name)
	}
	if err := checkAttr(n.tree.validation, n.class.Attr(name), value); err != nil {
		return enrichError(err, "%v attribute «%s»", n, name)
	}
	n.group.PutAttr(name, value)
	return nil
}

func (n *node) AttrNames() []string { return n.group.AttrNames() }
