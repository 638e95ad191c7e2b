/*
 * Copyright (c) 2026-present unTill Software Development Group B.V.
 */

package nxtree

import (
	"time"

	"github.com/google/uuid"

	"github.com/voedger/nxtree/pkg/nxdef"
	"github.com/voedger/nxtree/pkg/nxstorage"
	"github.com/voedger/nxtree/pkg/nxvalue"
)

// Validation mode for setters.
//
// Ref. validation-mode.go for constants and methods
type ValidationMode uint8

// Typed property tree.
//
// Ref. impl_tree.go for implementation
type ITree interface {
	// Returns classes catalog
	Classes() nxdef.IClasses

	// Creates new detached node of specified class.
	//
	// Returns ErrUnknownClass if class not found in catalog.
	NewNode(class string) (INode, error)

	// Returns root node of «NXroot» class. Root is created on first call.
	//
	// Returns ErrUnknownClass if catalog has no «NXroot» class.
	Root() (INode, error)

	// Returns node for existing storage group.
	//
	// Returns ErrUnknownClass if group class not found in catalog.
	Wrap(nxstorage.IGroup) (INode, error)
}

// Node of typed property tree: fields, attributes and child nodes of schema class.
//
// Ref. impl_node.go for implementation
type INode interface {
	ID() uuid.UUID

	// Returns tree node belongs to
	Tree() ITree

	Class() nxdef.IClass

	// Returns underlying storage group
	Group() nxstorage.IGroup

	// Returns field value.
	//
	// Returns ErrNotPresent if field was never set.
	Field(name string) (nxvalue.Array, error)

	// Returns field value as single scalar of field declared data kind.
	//
	// Undeclared and «number» fields are returned as stored Go type.
	// Returns:
	//   - ErrNotPresent if field was never set,
	//   - ErrWrongCardinality if field value has not exactly one element,
	//   - ErrTypeMismatch if value can not be coerced to declared kind.
	FieldScalar(name string) (any, error)

	FieldInt(name string) (int64, error)
	FieldUint(name string) (uint64, error)
	FieldFloat(name string) (float64, error)
	FieldString(name string) (string, error)
	FieldBool(name string) (bool, error)
	FieldTime(name string) (time.Time, error)

	// Stores field value, creating field if absent and replacing value if present.
	//
	// Returns handle to attach field attributes.
	// Returns ErrTypeMismatch, ErrNotDeclared, ErrEnumViolation or ErrDimMismatch
	// if value violates field definition, depending on validation mode.
	// Returns ErrNameCollision if name is occupied by child node.
	SetField(name string, value nxvalue.Array) (IFieldHandle, error)

	// Same as SetField with zero-dimensional array from Go scalar.
	SetFieldScalar(name string, value any) (IFieldHandle, error)

	// Returns handle of existing field. Returns ErrNotPresent if field was never set.
	FieldHandle(name string) (IFieldHandle, error)

	// Removes field. Returns false if field was not set.
	RemoveField(name string) bool

	// Returns names of set fields, sorted
	FieldNames() []string

	// Returns field attribute value.
	//
	// Returns ErrNotPresent if field or attribute was never set.
	FieldAttr(field, attr string) (nxvalue.Array, error)

	// Stores field attribute value.
	//
	// Returns ErrNotPresent if field was never set.
	SetFieldAttr(field, attr string, value nxvalue.Array) error

	// Returns node attribute value. Returns ErrNotPresent if attribute was never set.
	Attr(name string) (nxvalue.Array, error)

	// Stores node attribute value.
	SetAttr(name string, value nxvalue.Array) error

	// Returns names of set node attributes, sorted
	AttrNames() []string

	// Returns child of slot with default name, which is slot name.
	//
	// Slot is specified by slot name or by children class name.
	// Returns ErrNotPresent if child was never set, ErrUnknownSlot if slot not found.
	Child(slot string) (INode, error)

	// Returns child of slot with specified name.
	ChildByName(slot, name string) (INode, error)

	// Attaches child to slot with default name, replacing child with same name and class.
	//
	// Returns ErrWrongClass if child class does not fit slot,
	// ErrNameCollision if name is occupied by field or by child of other class.
	SetChild(slot string, child INode) error

	// Attaches child to slot with specified name.
	SetChildByName(slot, name string, child INode) error

	// Returns all children of slot class keyed by name.
	Children(slot string) (map[string]INode, error)

	// Replaces all children of slot class with specified ones.
	//
	// Previous children of slot class not found in map are removed.
	SetChildren(slot string, children map[string]INode) error

	// Removes child with specified name. Returns false if not found.
	RemoveChild(name string) bool

	// Returns names of all children, sorted
	ChildNames() []string

	// Checks node against class definition: declared names, data kinds,
	// enumerations, dimensions and slots occurs.
	//
	// Returns joined errors of all violations.
	Validate() error
}

// Field handle for attribute attachment.
//
// Handle observes current field value.
type IFieldHandle interface {
	Name() string

	// Returns field definition, nil if field is not declared by class
	Def() nxdef.IField

	// Returns current field value
	Value() nxvalue.Array

	// Returns attribute value. Returns ErrNotPresent if attribute was never set.
	Attr(name string) (nxvalue.Array, error)

	// Stores attribute value.
	SetAttr(name string, value nxvalue.Array) error

	// Returns «units» attribute value.
	Units() (string, error)

	// Stores «units» attribute value.
	SetUnits(units string) error
}
