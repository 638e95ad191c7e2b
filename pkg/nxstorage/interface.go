/*
 * Copyright (c) 2026-present unTill Software Development Group B.V.
 */

package nxstorage

import (
	"github.com/google/uuid"

	"github.com/voedger/nxtree/pkg/nxvalue"
)

// Hierarchical storage provider.
//
// Implemented by a certain driver, e.g. mem.Provide()
type IProvider interface {
	// Creates new detached group of specified class.
	NewGroup(class string) IGroup
}

// Storage group: named datasets, named attributes and named child groups.
//
// Datasets and child groups share one name namespace, attributes have their own.
// All methods are safe for concurrent use.
type IGroup interface {
	// Returns unique group ID
	ID() uuid.UUID

	// Returns group class name
	Class() string

	// Returns dataset by name. Returns false if not found.
	Dataset(name string) (IDataset, bool)

	// Stores value as dataset with specified name.
	//
	// If dataset exists, its value is replaced and attributes are kept.
	// Returns ErrNameCollision if name is occupied by child group.
	PutDataset(name string, value nxvalue.Array) (IDataset, error)

	// Removes dataset with its attributes. Returns false if not found.
	RemoveDataset(name string) bool

	// Returns dataset names sorted
	DatasetNames() []string

	// Returns attribute value by name. Returns false if not found.
	Attr(name string) (nxvalue.Array, bool)

	// Stores attribute value, replacing previous.
	PutAttr(name string, value nxvalue.Array)

	// Removes attribute. Returns false if not found.
	RemoveAttr(name string) bool

	// Returns attribute names sorted
	AttrNames() []string

	// Returns child group by name. Returns false if not found.
	Group(name string) (IGroup, bool)

	// Attaches group as child with specified name.
	//
	// If child group with the same class exists, it is replaced.
	// Returns:
	//   - ErrNameCollision if name is occupied by dataset or by child group of other class,
	//   - ErrCycle if group is this group or its ancestor,
	//   - ErrForeignGroup if group is created by other provider.
	AttachGroup(name string, group IGroup) error

	// Checks group can be attached as child with specified name.
	//
	// Returns the same errors as AttachGroup would, but changes nothing.
	CanAttach(name string, group IGroup) error

	// Detaches child group. Returns false if not found.
	RemoveGroup(name string) bool

	// Returns child group names sorted
	GroupNames() []string
}

// Storage dataset: named value with named attributes.
type IDataset interface {
	Name() string

	// Returns current dataset value
	Value() nxvalue.Array

	// Returns attribute value by name. Returns false if not found.
	Attr(name string) (nxvalue.Array, bool)

	// Stores attribute value, replacing previous.
	PutAttr(name string, value nxvalue.Array)

	// Returns attribute names sorted
	AttrNames() []string
}
