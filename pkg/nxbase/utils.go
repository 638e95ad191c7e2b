/*
 * Copyright (c) 2026-present unTill Software Development Group B.V.
 */

package nxbase

import (
	"fmt"

	"github.com/voedger/nxtree/pkg/nxtree"
)

// Typed wrapper of node
type wrapper interface {
	~struct{ nxtree.INode }
}

func wrap[T wrapper](n nxtree.INode) T {
	return T(struct{ nxtree.INode }{n})
}

// Returns node as typed wrapper.
//
// Returns ErrWrongClass if node is not of specified class.
func as[T wrapper](n nxtree.INode, class string) (T, error) {
	if n == nil || !n.Class().Is(class) {
		var zero T
		return zero, fmt.Errorf("%v is not %s: %w", n, class, nxtree.ErrWrongClass)
	}
	return wrap[T](n), nil
}

// Creates new node of specified class and returns it as typed wrapper
func newAs[T wrapper](tree nxtree.ITree, class string) (T, error) {
	n, err := tree.NewNode(class)
	if err != nil {
		var zero T
		return zero, err
	}
	return wrap[T](n), nil
}

func child[T wrapper](n nxtree.INode, slot string) (T, error) {
	c, err := n.Child(slot)
	if err != nil {
		var zero T
		return zero, err
	}
	return wrap[T](c), nil
}

func childByName[T wrapper](n nxtree.INode, slot, name string) (T, error) {
	c, err := n.ChildByName(slot, name)
	if err != nil {
		var zero T
		return zero, err
	}
	return wrap[T](c), nil
}

func children[T wrapper](n nxtree.INode, slot string) (map[string]T, error) {
	all, err := n.Children(slot)
	if err != nil {
		return nil, err
	}
	res := make(map[string]T, len(all))
	for name, c := range all {
		res[name] = wrap[T](c)
	}
	return res, nil
}

func setChildren[T wrapper](n nxtree.INode, slot string, m map[string]T) error {
	nodes := make(map[string]nxtree.INode, len(m))
	for name, c := range m {
		nodes[name] = struct{ nxtree.INode }(c).INode
	}
	return n.SetChildren(slot, nodes)
}
