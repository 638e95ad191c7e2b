/*
 * Copyright (c) 2026-present unTill Software Development Group B.V.
 */

package nxtree

import (
	"fmt"
	"strings"

	"github.com/untillpro/goutils/logger"
	"golang.org/x/exp/maps"
	"golang.org/x/exp/slices"

	"github.com/voedger/nxtree/pkg/nxdef"
)

// Resolved child slot
type slotRef struct {
	name  string
	class nxdef.IClass
	def   nxdef.ISlot
}

func (s slotRef) maxOccurs() nxdef.Occurs {
	if s.def == nil {
		return nxdef.Occurs_Unbounded
	}
	return s.def.MaxOccurs()
}

// Resolves slot by slot name or by children class name.
//
// If class does not declare slot, any catalog class is accepted
// as undeclared slot unless validation mode is strict.
func (n *node) slot(name string) (slotRef, error) {
	if s := n.class.Slot(name); s != nil {
		return slotRef{name: s.Name(), class: s.Class(), def: s}, nil
	}
	if n.tree.validation != Validation_Strict {
		if cls := n.tree.classes.Class(name); cls != nil {
			return slotRef{name: strings.TrimPrefix(cls.Name(), nxdef.ClassNamePrefix), class: cls}, nil
		}
	}
	return slotRef{}, enrichError(ErrUnknownSlot, "%v slot «%s»", n, name)
}

func (n *node) Child(slot string) (INode, error) {
	s, err := n.slot(slot)
	if err != nil {
		return nil, err
	}
	return n.child(s, s.name)
}

func (n *node) ChildByName(slot, name string) (INode, error) {
	s, err := n.slot(slot)
	if err != nil {
		return nil, err
	}
	return n.child(s, name)
}

func (n *node) child(s slotRef, name string) (INode, error) {
	g, ok := n.group.Group(name)
	if !ok {
		return nil, enrichError(ErrNotPresent, "%v child «%s»", n, name)
	}
	c, err := n.tree.Wrap(g)
	if err != nil {
		return nil, err
	}
	if !c.Class().Is(s.class.Name()) {
		return nil, enrichError(ErrWrongClass, "%v child «%s» is %s, not %s", n, name, g.Class(), s.class.Name())
	}
	return c, nil
}

func (n *node) SetChild(slot string, child INode) error {
	s, err := n.slot(slot)
	if err != nil {
		return err
	}
	return n.setChild(s, s.name, child)
}

func (n *node) SetChildByName(slot, name string, child INode) error {
	s, err := n.slot(slot)
	if err != nil {
		return err
	}
	return n.setChild(s, name, child)
}

func (n *node) setChild(s slotRef, name string, child INode) error {
	if err := n.checkChild(s, name, child); err != nil {
		return err
	}
	if n.tree.validation == Validation_Strict {
		cnt := n.countOf(s.class)
		if !n.childOf(name, s.class) {
			cnt++
		}
		if maxOcc := s.maxOccurs(); maxOcc != nxdef.Occurs_Unbounded && nxdef.Occurs(cnt) > maxOcc {
			return enrichError(ErrOccursViolation, "%v slot «%s» max occurs is %v", n, s.name, maxOcc)
		}
	}
	if err := n.group.AttachGroup(name, child.Group()); err != nil {
		return enrichError(err, "%v child «%s»", n, name)
	}
	return nil
}

func (n *node) checkChild(s slotRef, name string, child INode) error {
	if child == nil {
		return enrichError(ErrWrongClass, "%v child «%s» is nil", n, name)
	}
	if ok, err := nxdef.ValidIdent(name); !ok {
		return enrichError(err, "%v child", n)
	}
	if !child.Class().Is(s.class.Name()) {
		return enrichError(ErrWrongClass, "%v slot «%s» accepts %s, not %s", n, s.name, s.class.Name(), child.Class().Name())
	}
	return nil
}

func (n *node) Children(slot string) (map[string]INode, error) {
	s, err := n.slot(slot)
	if err != nil {
		return nil, err
	}
	return n.children(s), nil
}

func (n *node) children(s slotRef) map[string]INode {
	res := make(map[string]INode)
	for _, name := range n.group.GroupNames() {
		if c, err := n.child(s, name); err == nil {
			res[name] = c
		}
	}
	return res
}

func (n *node) SetChildren(slot string, children map[string]INode) error {
	s, err := n.slot(slot)
	if err != nil {
		return err
	}

	names := maps.Keys(children)
	slices.Sort(names)

	for _, name := range names {
		if err := n.checkChild(s, name, children[name]); err != nil {
			return err
		}
		if _, ok := n.group.Dataset(name); ok {
			return enrichError(ErrNameCollision, "%v child «%s» is field name", n, name)
		}
		if g, ok := n.group.Group(name); ok && !n.childOf(name, s.class) {
			return enrichError(ErrNameCollision, "%v child «%s» is occupied by %s", n, name, g.Class())
		}
		if err := n.group.CanAttach(name, children[name].Group()); err != nil {
			return enrichError(err, "%v child «%s»", n, name)
		}
	}
	if maxOcc := s.maxOccurs(); n.tree.validation == Validation_Strict && maxOcc != nxdef.Occurs_Unbounded && nxdef.Occurs(len(children)) > maxOcc {
		return enrichError(ErrOccursViolation, "%v slot «%s» max occurs is %v, but %d children", n, s.name, maxOcc, len(children))
	}

	old := n.children(s)
	for name := range old {
		n.group.RemoveGroup(name)
	}
	for i, name := range names {
		if err := n.group.AttachGroup(name, children[name].Group()); err != nil {
			n.restoreChildren(names[:i], old)
			return enrichError(err, "%v child «%s»", n, name)
		}
	}

	if logger.IsVerbose() {
		logger.Verbose(fmt.Sprintf("%v slot «%s» children replaced: %v", n, s.name, names))
	}
	return nil
}

// Detaches attached children and attaches old ones back
func (n *node) restoreChildren(attached []string, old map[string]INode) {
	for _, name := range attached {
		n.group.RemoveGroup(name)
	}
	for name, c := range old {
		if err := n.group.AttachGroup(name, c.Group()); err != nil {
			logger.Error(fmt.Sprintf("%v can not restore child «%s»: %v", n, name, err))
		}
	}
}

func (n *node) RemoveChild(name string) bool { return n.group.RemoveGroup(name) }

func (n *node) ChildNames() []string { return n.group.GroupNames() }
