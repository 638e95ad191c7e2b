/*
 * Copyright (c) 2026-present unTill Software Development Group B.V.
 */

package nxtree

import (
	"time"

	"github.com/voedger/nxtree/pkg/nxdef"
	"github.com/voedger/nxtree/pkg/nxstorage"
	"github.com/voedger/nxtree/pkg/nxvalue"
)

func (n *node) Field(name string) (nxvalue.Array, error) {
	ds, err := n.dataset(name)
	if err != nil {
		return nxvalue.Array{}, err
	}
	return ds.Value(), nil
}

func (n *node) FieldScalar(name string) (any, error) {
	v, err := n.Field(name)
	if err != nil {
		return nil, err
	}
	kind := v.Kind()
	if def := n.class.Field(name); def != nil && def.DataKind() != nxdef.DataKind_number {
		kind = def.DataKind()
	}
	s, err := scalarOf(kind, v)
	if err != nil {
		return nil, enrichError(err, "%v field «%s»", n, name)
	}
	return s, nil
}

func (n *node) FieldInt(name string) (int64, error) { return fieldAs(n, name, nxvalue.Array.AsInt) }

func (n *node) FieldUint(name string) (uint64, error) { return fieldAs(n, name, nxvalue.Array.AsUint) }

func (n *node) FieldFloat(name string) (float64, error) {
	return fieldAs(n, name, nxvalue.Array.AsFloat)
}

func (n *node) FieldString(name string) (string, error) {
	return fieldAs(n, name, nxvalue.Array.AsString)
}

func (n *node) FieldBool(name string) (bool, error) { return fieldAs(n, name, nxvalue.Array.AsBool) }

func (n *node) FieldTime(name string) (time.Time, error) {
	return fieldAs(n, name, nxvalue.Array.AsTime)
}

func (n *node) SetField(name string, value nxvalue.Array) (IFieldHandle, error) {
	if ok, err := nxdef.ValidIdent(name); !ok {
		return nil, enrichError(err, "%v field", n)
	}
	def := n.class.Field(name)
	if err := n.checkField(name, def, value); err != nil {
		return nil, enrichError(err, "%v field «%s»", n, name)
	}
	n.tree.warnDeprecated(n.class, def)
	if _, err := n.group.PutDataset(name, value); err != nil {
		return nil, enrichError(err, "%v field «%s»", n, name)
	}
	return &fieldHandle{node: n, name: name, def: def}, nil
}

func (n *node) SetFieldScalar(name string, value any) (IFieldHandle, error) {
	v, err := nxvalue.Scalar(value)
	if err != nil {
		return nil, enrichError(err, "%v field «%s»", n, name)
	}
	return n.SetField(name, v)
}

func (n *node) FieldHandle(name string) (IFieldHandle, error) {
	if _, err := n.dataset(name); err != nil {
		return nil, err
	}
	return &fieldHandle{node: n, name: name, def: n.class.Field(name)}, nil
}

func (n *node) RemoveField(name string) bool { return n.group.RemoveDataset(name) }

func (n *node) FieldNames() []string { return n.group.DatasetNames() }

func (n *node) FieldAttr(field, attr string) (nxvalue.Array, error) {
	ds, err := n.dataset(field)
	if err != nil {
		return nxvalue.Array{}, err
	}
	v, ok := ds.Attr(attr)
	if !ok {
		return nxvalue.Array{}, enrichError(ErrNotPresent, "%v field «%s» attribute «%s»", n, field, attr)
	}
	return v, nil
}

func (n *node) SetFieldAttr(field, attr string, value nxvalue.Array) error {
	ds, err := n.dataset(field)
	if err != nil {
		return err
	}
	if ok, err := nxdef.ValidIdent(attr); !ok {
		return enrichError(err, "%v field «%s» attribute", n, field)
	}
	if err := checkFieldAttr(n.tree.validation, n.class.Field(field), attr, value); err != nil {
		return enrichError(err, "%v field «%s» attribute «%s»", n, field, attr)
	}
	ds.PutAttr(attr, value)
	return nil
}

// Returns dataset of field and warns if field is deprecated.
//
// Returns ErrNotPresent if field was never set.
func (n *node) dataset(name string) (nxstorage.IDataset, error) {
	ds, ok := n.group.Dataset(name)
	if !ok {
		return nil, enrichError(ErrNotPresent, "%v field «%s»", n, name)
	}
	n.tree.warnDeprecated(n.class, n.class.Field(name))
	return ds, nil
}

func fieldAs[T any](n *node, name string, as func(nxvalue.Array) (T, error)) (v T, err error) {
	a, err := n.Field(name)
	if err != nil {
		return v, err
	}
	if v, err = as(a); err != nil {
		return v, enrichError(err, "%v field «%s»", n, name)
	}
	return v, nil
}

// Returns single element coerced to data kind
func scalarOf(kind nxdef.DataKind, v nxvalue.Array) (s any, err error) {
	switch kind {
	case nxdef.DataKind_int:
		s, err = v.AsInt()
	case nxdef.DataKind_uint:
		s, err = v.AsUint()
	case nxdef.DataKind_float:
		s, err = v.AsFloat()
	case nxdef.DataKind_char:
		s, err = v.AsString()
	case nxdef.DataKind_bool:
		s, err = v.AsBool()
	case nxdef.DataKind_datetime:
		s, err = v.AsTime()
	default:
		return v.AsAny()
	}
	if err != nil {
		return nil, err
	}
	return s, nil
}

// # Implements:
//   - IFieldHandle
type fieldHandle struct {
	node *node
	name string
	def  nxdef.IField
}

func (h *fieldHandle) Name() string { return h.name }

func (h *fieldHandle) Def() nxdef.IField { return h.def }

func (h *fieldHandle) Value() nxvalue.Array {
	if ds, ok := h.node.group.Dataset(h.name); ok {
		return ds.Value()
	}
	return nxvalue.Array{}
}

func (h *fieldHandle) Attr(name string) (nxvalue.Array, error) {
	return h.node.FieldAttr(h.name, name)
}

func (h *fieldHandle) SetAttr(name string, value nxvalue.Array) error {
	return h.node.SetFieldAttr(h.name, name, value)
}

func (h *fieldHandle) Units() (string, error) {
	v, err := h.Attr(nxdef.Attr_Units)
	if err != nil {
		return "", err
	}
	return v.AsString()
}

func (h *fieldHandle) SetUnits(units string) error {
	return h.SetAttr(nxdef.Attr_Units, nxvalue.MustScalar(units))
}
