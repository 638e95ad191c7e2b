/*
 * Copyright (c) 2026-present unTill Software Development Group B.V.
 */

package nxtree

import (
	"errors"
	"strings"

	"github.com/voedger/nxtree/pkg/nxdef"
)

// Called by Walk for every node. Path of start node is «/».
//
// If function returns SkipChildren, children of node are not visited.
// Other errors stop walking.
type WalkFunc func(path string, n INode) error

// Visits node and its descendants depth first, children in name order.
//
// Children of classes unknown to tree catalog are not visited.
func Walk(n INode, fn WalkFunc) error {
	err := walk(PathSeparator, n, fn)
	if errors.Is(err, SkipChildren) {
		return nil
	}
	return err
}

func walk(path string, n INode, fn WalkFunc) error {
	if err := fn(path, n); err != nil {
		if errors.Is(err, SkipChildren) {
			return nil
		}
		return err
	}
	for _, name := range n.ChildNames() {
		c, err := childOf(n, name)
		if err != nil {
			continue
		}
		if err := walk(joinPath(path, name), c, fn); err != nil {
			return err
		}
	}
	return nil
}

// Returns descendant by path of child names separated by «/», like «/entry/instrument».
//
// Empty path or «/» returns node itself.
// Returns ErrNotPresent if some child not found.
func Lookup(n INode, path string) (INode, error) {
	for _, name := range strings.Split(path, PathSeparator) {
		if name == "" {
			continue
		}
		if ok, err := nxdef.ValidIdent(name); !ok {
			return nil, enrichError(ErrInvalidPath, "«%s»: %v", path, err)
		}
		c, err := childOf(n, name)
		if err != nil {
			return nil, enrichError(err, "path «%s»", path)
		}
		n = c
	}
	return n, nil
}

// Returns child with specified name regardless of slots
func childOf(n INode, name string) (INode, error) {
	g, ok := n.Group().Group(name)
	if !ok {
		return nil, enrichError(ErrNotPresent, "child «%s»", name)
	}
	return n.Tree().Wrap(g)
}

func joinPath(parent, name string) string {
	if strings.HasSuffix(parent, PathSeparator) {
		return parent + name
	}
	return parent + PathSeparator + name
}
