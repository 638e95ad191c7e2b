/*
 * Copyright (c) 2026-present unTill Software Development Group B.V.
 */

package nxbase

import (
	"strings"

	"github.com/voedger/nxtree/pkg/nxtree"
	"github.com/voedger/nxtree/pkg/nxvalue"
)

// Data to be plotted with its axes.
//
// Signal, axes and their uncertainties are fields with free-form names.
type Data struct{ nxtree.INode }

func NewData(tree nxtree.ITree) (Data, error) { return newAs[Data](tree, Class_NXdata) }

func AsData(n nxtree.INode) (Data, error) { return as[Data](n, Class_NXdata) }

// Returns signal field value
func (d Data) Signal(name string) (nxvalue.Array, error) { return d.Field(name) }

// Stores signal field value and marks it as default signal.
//
// If signal attribute is rejected, previous field value is restored.
func (d Data) SetSignal(name string, v nxvalue.Array) (nxtree.IFieldHandle, error) {
	prev, prevErr := d.Field(name)
	h, err := d.SetField(name, v)
	if err != nil {
		return nil, err
	}
	if err := d.SetAttr(Attr_Signal, nxvalue.MustScalar(name)); err != nil {
		if prevErr == nil {
			_, _ = d.SetField(name, prev)
		} else {
			d.RemoveField(name)
		}
		return nil, err
	}
	return h, nil
}

// Returns name of default signal field
func (d Data) SignalName() (string, error) {
	v, err := d.Attr(Attr_Signal)
	if err != nil {
		return "", err
	}
	return v.AsString()
}

func (d Data) Axis(name string) (nxvalue.Array, error) { return d.Field(name) }

func (d Data) SetAxis(name string, v nxvalue.Array) (nxtree.IFieldHandle, error) {
	return d.SetField(name, v)
}

// Returns names of signal dimension axes
func (d Data) Axes() ([]string, error) {
	v, err := d.Attr(Attr_Axes)
	if err != nil {
		return nil, err
	}
	return v.AsStrings()
}

// Stores names of signal dimension axes, «.» for dimension without axis
func (d Data) SetAxes(axes ...string) error {
	return d.SetAttr(Attr_Axes, nxvalue.Strings(axes...))
}

// Returns uncertainties of field
func (d Data) FieldErrors(field string) (nxvalue.Array, error) {
	return d.Field(errorsFieldName(field))
}

func (d Data) SetFieldErrors(field string, v nxvalue.Array) (nxtree.IFieldHandle, error) {
	return d.SetField(errorsFieldName(field), v)
}

func errorsFieldName(field string) string {
	if strings.HasSuffix(field, ErrorsSuffix) {
		return field
	}
	return field + ErrorsSuffix
}
