/*
 * Copyright (c) 2026-present unTill Software Development Group B.V.
 */

package nxtree

import (
	"errors"
	"fmt"

	"golang.org/x/exp/slices"

	"github.com/voedger/nxtree/pkg/nxdef"
	"github.com/voedger/nxtree/pkg/nxdims"
	"github.com/voedger/nxtree/pkg/nxvalue"
)

// Checks field value on set according to tree validation mode
func (n *node) checkField(name string, def nxdef.IField, v nxvalue.Array) error {
	if v.Kind() == nxdef.DataKind_null {
		return fmt.Errorf("null value: %w", ErrTypeMismatch)
	}
	mode := n.tree.validation
	if mode == Validation_None {
		return nil
	}
	if def == nil {
		if mode == Validation_Strict {
			return fmt.Errorf("field is not declared by %v: %w", n.class, ErrNotDeclared)
		}
		return nil
	}
	if err := checkKind(def.DataKind(), v); err != nil {
		return err
	}
	if mode < Validation_Strict {
		return nil
	}
	if err := checkEnum(def.Enum(), v); err != nil {
		return err
	}
	if len(def.Dims()) > 0 {
		return n.checkDims(name, def, v)
	}
	return nil
}

// Checks value shape against field dimensions, sizes of symbols are bound by other fields.
//
// Unbound compound dimensions are not errors.
func (n *node) checkDims(name string, def nxdef.IField, v nxvalue.Array) error {
	b := n.bindings(name)
	return dimsError(b.Check(def.Dims(), v.Shape()))
}

// Returns nil if error is caused by unbound symbols only
func dimsError(err error) error {
	if errors.Is(err, nxdims.ErrDimMismatch) || errors.Is(err, nxdims.ErrSyntax) {
		return err
	}
	return nil
}

// Returns sizes of dimension symbols bound by set fields except specified one.
// Conflicting fields are skipped.
func (n *node) bindings(except string) nxdims.Bindings {
	b := nxdims.Bindings{}
	for _, name := range n.group.DatasetNames() {
		if name == except {
			continue
		}
		def := n.class.Field(name)
		if def == nil || len(def.Dims()) == 0 {
			continue
		}
		if ds, ok := n.group.Dataset(name); ok {
			_ = b.Bind(def.Dims(), ds.Value().Shape())
		}
	}
	return b
}

// Checks attribute value on set according to validation mode
func checkAttr(mode ValidationMode, def nxdef.IAttr, v nxvalue.Array) error {
	if v.Kind() == nxdef.DataKind_null {
		return fmt.Errorf("null value: %w", ErrTypeMismatch)
	}
	if mode == Validation_None {
		return nil
	}
	if def == nil {
		if mode == Validation_Strict {
			return ErrNotDeclared
		}
		return nil
	}
	if err := checkKind(def.DataKind(), v); err != nil {
		return err
	}
	if mode == Validation_Strict {
		return checkEnum(def.Enum(), v)
	}
	return nil
}

// Checks field attribute value on set according to validation mode.
//
// Attributes «units» and «long_name» are implicitly declared for every field.
func checkFieldAttr(mode ValidationMode, field nxdef.IField, attr string, v nxvalue.Array) error {
	var def nxdef.IAttr
	if field != nil {
		def = field.Attr(attr)
	}
	if def == nil {
		switch attr {
		case nxdef.Attr_Units, nxdef.Attr_LongName:
			def = implicitFieldAttrs[attr]
		}
	}
	return checkAttr(mode, def, v)
}

func checkKind(declared nxdef.DataKind, v nxvalue.Array) error {
	if !declared.IsCompatible(v.Kind()) {
		return fmt.Errorf("%s value for %s: %w", v.Kind().TrimString(), declared.TrimString(), ErrTypeMismatch)
	}
	return nil
}

func checkEnum(enum []string, v nxvalue.Array) error {
	if len(enum) == 0 {
		return nil
	}
	for _, s := range enumValues(v) {
		if !slices.Contains(enum, s) {
			return fmt.Errorf("«%s» not in %v: %w", s, enum, ErrEnumViolation)
		}
	}
	return nil
}

// Returns count of children of specified class
func (n *node) countOf(class nxdef.IClass) (cnt int) {
	for _, name := range n.group.GroupNames() {
		if n.childOf(name, class) {
			cnt++
		}
	}
	return cnt
}

// Returns is child with specified name exists and is of specified class
func (n *node) childOf(name string, class nxdef.IClass) bool {
	g, ok := n.group.Group(name)
	if !ok {
		return false
	}
	cls := n.tree.classes.Class(g.Class())
	return cls != nil && cls.Is(class.Name())
}

func (n *node) Validate() error {
	errs := make([]error, 0)
	errs = append(errs, n.validateFields()...)
	errs = append(errs, n.validateAttrs()...)
	errs = append(errs, n.validateChildren()...)
	if len(errs) == 0 {
		return nil
	}
	return enrichError(errors.Join(errs...), "%v", n)
}

func (n *node) validateFields() (errs []error) {
	b := n.bindings("")
	for _, name := range n.group.DatasetNames() {
		ds, _ := n.group.Dataset(name)
		def := n.class.Field(name)
		if def == nil {
			errs = append(errs, enrichError(ErrNotDeclared, "field «%s»", name))
			continue
		}
		v := ds.Value()
		if err := checkKind(def.DataKind(), v); err != nil {
			errs = append(errs, enrichError(err, "field «%s»", name))
		}
		if err := checkEnum(def.Enum(), v); err != nil {
			errs = append(errs, enrichError(err, "field «%s»", name))
		}
		if len(def.Dims()) > 0 {
			if err := dimsError(b.Check(def.Dims(), v.Shape())); err != nil {
				errs = append(errs, enrichError(err, "field «%s»", name))
			}
		}
		for _, a := range ds.AttrNames() {
			av, _ := ds.Attr(a)
			if err := checkFieldAttr(Validation_Strict, def, a, av); err != nil {
				errs = append(errs, enrichError(err, "field «%s» attribute «%s»", name, a))
			}
		}
	}
	return errs
}

func (n *node) validateAttrs() (errs []error) {
	for _, name := range n.group.AttrNames() {
		if name == nxdef.Attr_NXClass {
			continue
		}
		v, _ := n.group.Attr(name)
		if err := checkAttr(Validation_Strict, n.class.Attr(name), v); err != nil {
			errs = append(errs, enrichError(err, "attribute «%s»", name))
		}
	}
	return errs
}

func (n *node) validateChildren() (errs []error) {
	slots := n.class.Slots()
	for _, s := range slots {
		cnt := nxdef.Occurs(n.countOf(s.Class()))
		if cnt < s.MinOccurs() || (s.MaxOccurs() != nxdef.Occurs_Unbounded && cnt > s.MaxOccurs()) {
			errs = append(errs, enrichError(ErrOccursViolation, "slot «%s» has %d children, expected %v..%v", s.Name(), cnt, s.MinOccurs(), s.MaxOccurs()))
		}
	}
	for _, name := range n.group.GroupNames() {
		declared := false
		for _, s := range slots {
			if n.childOf(name, s.Class()) {
				declared = true
				break
			}
		}
		if !declared {
			g, _ := n.group.Group(name)
			errs = append(errs, enrichError(ErrNotDeclared, "child «%s» of class «%s»", name, g.Class()))
		}
	}
	return errs
}
