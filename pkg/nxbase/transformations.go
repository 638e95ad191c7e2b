/*
 * Copyright (c) 2026-present unTill Software Development Group B.V.
 */

package nxbase

import (
	"github.com/voedger/nxtree/pkg/nxtree"
	"github.com/voedger/nxtree/pkg/nxvalue"
)

// Collection of axis-based translations and rotations.
//
// Axes are fields with free-form names.
type Transformations struct{ nxtree.INode }

func NewTransformations(tree nxtree.ITree) (Transformations, error) {
	return newAs[Transformations](tree, Class_NXtransformations)
}

func AsTransformations(n nxtree.INode) (Transformations, error) {
	return as[Transformations](n, Class_NXtransformations)
}

// Returns names of axes, sorted
func (t Transformations) AxisNames() []string { return t.FieldNames() }

func (t Transformations) Axis(name string) (nxvalue.Array, error) { return t.Field(name) }

func (t Transformations) AxisScalar(name string) (float64, error) { return t.FieldFloat(name) }

func (t Transformations) SetAxis(name string, v nxvalue.Array) (nxtree.IFieldHandle, error) {
	return t.SetField(name, v)
}

func (t Transformations) SetAxisScalar(name string, v float64) (nxtree.IFieldHandle, error) {
	return t.SetFieldScalar(name, v)
}

// Adds translation axis along vector with value in units
func (t Transformations) SetTranslation(name string, v float64, units string, vector [3]float64) (nxtree.IFieldHandle, error) {
	return t.setTransformation(name, TransformationType_Translation, v, units, vector)
}

// Adds rotation axis around vector with angle in units
func (t Transformations) SetRotation(name string, angle float64, units string, vector [3]float64) (nxtree.IFieldHandle, error) {
	return t.setTransformation(name, TransformationType_Rotation, angle, units, vector)
}

func (t Transformations) setTransformation(name, kind string, v float64, units string, vector [3]float64) (nxtree.IFieldHandle, error) {
	h, err := t.SetAxisScalar(name, v)
	if err != nil {
		return nil, err
	}
	if err := h.SetUnits(units); err != nil {
		return nil, err
	}
	if err := h.SetAttr(Attr_TransformationType, nxvalue.MustScalar(kind)); err != nil {
		return nil, err
	}
	if err := h.SetAttr(Attr_Vector, nxvalue.Floats(vector[:]...)); err != nil {
		return nil, err
	}
	return h, nil
}

// Returns «translation» or «rotation»
func (t Transformations) TransformationType(axis string) (string, error) {
	v, err := t.FieldAttr(axis, Attr_TransformationType)
	if err != nil {
		return "", err
	}
	return v.AsString()
}

func (t Transformations) Vector(axis string) ([]float64, error) {
	v, err := t.FieldAttr(axis, Attr_Vector)
	if err != nil {
		return nil, err
	}
	return v.AsFloats()
}
