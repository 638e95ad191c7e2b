/*
 * Copyright (c) 2026-present unTill Software Development Group B.V.
 */

package nxbase

import (
	"time"

	"github.com/voedger/nxtree/pkg/nxtree"
	"github.com/voedger/nxtree/pkg/nxvalue"
)

// Information recorded as a function of time
type Log struct{ nxtree.INode }

func NewLog(tree nxtree.ITree) (Log, error) { return newAs[Log](tree, Class_NXlog) }

func AsLog(n nxtree.INode) (Log, error) { return as[Log](n, Class_NXlog) }

// Time offsets of logged values
func (l Log) Time() (nxvalue.Array, error) { return l.Field(Field_Time) }

func (l Log) SetTime(v nxvalue.Array) (nxtree.IFieldHandle, error) {
	return l.SetField(Field_Time, v)
}

// Returns start time of log, time offsets are relative to it
func (l Log) Start() (time.Time, error) {
	v, err := l.FieldAttr(Field_Time, Attr_Start)
	if err != nil {
		return time.Time{}, err
	}
	return v.AsTime()
}

func (l Log) SetStart(start time.Time) error {
	return l.SetFieldAttr(Field_Time, Attr_Start, nxvalue.MustScalar(start))
}

func (l Log) Value() (nxvalue.Array, error) { return l.Field(Field_Value) }

func (l Log) SetValue(v nxvalue.Array) (nxtree.IFieldHandle, error) {
	return l.SetField(Field_Value, v)
}

// Stores time offsets in seconds and values
func (l Log) SetSeries(offsets []float64, values nxvalue.Array) error {
	h, err := l.SetTime(nxvalue.Floats(offsets...))
	if err != nil {
		return err
	}
	if err := h.SetUnits("s"); err != nil {
		return err
	}
	_, err = l.SetValue(values)
	return err
}

func (l Log) Description() (nxvalue.Array, error) { return l.Field(Field_Description) }

func (l Log) DescriptionScalar() (string, error) { return l.FieldString(Field_Description) }

func (l Log) SetDescription(v nxvalue.Array) (nxtree.IFieldHandle, error) {
	return l.SetField(Field_Description, v)
}

func (l Log) SetDescriptionScalar(v string) (nxtree.IFieldHandle, error) {
	return l.SetFieldScalar(Field_Description, v)
}

func (l Log) AverageValue() (nxvalue.Array, error) { return l.Field(Field_AverageValue) }

func (l Log) AverageValueScalar() (float64, error) { return l.FieldFloat(Field_AverageValue) }

func (l Log) SetAverageValue(v nxvalue.Array) (nxtree.IFieldHandle, error) {
	return l.SetField(Field_AverageValue, v)
}

func (l Log) SetAverageValueScalar(v float64) (nxtree.IFieldHandle, error) {
	return l.SetFieldScalar(Field_AverageValue, v)
}

// Uncertainties of logged values.
//
// Deprecated: use FieldErrors with field name.
func (l Log) Errors() (nxvalue.Array, error) { return l.Field(Field_Errors) }

// Deprecated: use SetFieldErrors with field name.
func (l Log) SetErrors(v nxvalue.Array) (nxtree.IFieldHandle, error) {
	return l.SetField(Field_Errors, v)
}

// Returns uncertainties of field, like «value_errors» for «value»
func (l Log) FieldErrors(field string) (nxvalue.Array, error) {
	return l.Field(errorsFieldName(field))
}

func (l Log) SetFieldErrors(field string, v nxvalue.Array) (nxtree.IFieldHandle, error) {
	return l.SetField(errorsFieldName(field), v)
}

// Returns uncertainties of values: «value_errors» if set, deprecated «errors» otherwise
func (l Log) ValueErrors() (nxvalue.Array, error) {
	v, err := l.FieldErrors(Field_Value)
	if err == nil {
		return v, nil
	}
	if _, e := l.FieldHandle(Field_Errors); e != nil {
		return nxvalue.Array{}, err
	}
	return l.Errors()
}
