/*
 * Copyright (c) 2026-present unTill Software Development Group B.V.
 */

package nxbase

import (
	"github.com/voedger/nxtree/pkg/nxtree"
	"github.com/voedger/nxtree/pkg/nxvalue"
)

// Detector, detector bank or multidetector
type Detector struct{ nxtree.INode }

func NewDetector(tree nxtree.ITree) (Detector, error) {
	return newAs[Detector](tree, Class_NXdetector)
}

func AsDetector(n nxtree.INode) (Detector, error) { return as[Detector](n, Class_NXdetector) }

// Detector counts
func (d Detector) Data() (nxvalue.Array, error) { return d.Field(Field_Data) }

func (d Detector) SetData(v nxvalue.Array) (nxtree.IFieldHandle, error) {
	return d.SetField(Field_Data, v)
}

func (d Detector) DataErrors() (nxvalue.Array, error) { return d.Field(errorsFieldName(Field_Data)) }

func (d Detector) SetDataErrors(v nxvalue.Array) (nxtree.IFieldHandle, error) {
	return d.SetField(errorsFieldName(Field_Data), v)
}

func (d Detector) Distance() (nxvalue.Array, error) { return d.Field(Field_Distance) }

func (d Detector) DistanceScalar() (float64, error) { return d.FieldFloat(Field_Distance) }

func (d Detector) SetDistance(v nxvalue.Array) (nxtree.IFieldHandle, error) {
	return d.SetField(Field_Distance, v)
}

func (d Detector) SetDistanceScalar(v float64) (nxtree.IFieldHandle, error) {
	return d.SetFieldScalar(Field_Distance, v)
}

func (d Detector) PolarAngle() (nxvalue.Array, error) { return d.Field(Field_PolarAngle) }

func (d Detector) PolarAngleScalar() (float64, error) { return d.FieldFloat(Field_PolarAngle) }

func (d Detector) SetPolarAngle(v nxvalue.Array) (nxtree.IFieldHandle, error) {
	return d.SetField(Field_PolarAngle, v)
}

func (d Detector) SetPolarAngleScalar(v float64) (nxtree.IFieldHandle, error) {
	return d.SetFieldScalar(Field_PolarAngle, v)
}

func (d Detector) DescriptionScalar() (string, error) { return d.FieldString(Field_Description) }

func (d Detector) SetDescriptionScalar(v string) (nxtree.IFieldHandle, error) {
	return d.SetFieldScalar(Field_Description, v)
}

func (d Detector) Transformations() (Transformations, error) {
	return child[Transformations](d, Slot_Transformations)
}

func (d Detector) TransformationsByName(name string) (Transformations, error) {
	return childByName[Transformations](d, Slot_Transformations, name)
}

func (d Detector) SetTransformations(t Transformations) error {
	return d.SetChild(Slot_Transformations, t.INode)
}

func (d Detector) SetTransformationsByName(name string, t Transformations) error {
	return d.SetChildByName(Slot_Transformations, name, t.INode)
}

func (d Detector) AllTransformations() (map[string]Transformations, error) {
	return children[Transformations](d, Slot_Transformations)
}

func (d Detector) SetAllTransformations(m map[string]Transformations) error {
	return setChildren(d, Slot_Transformations, m)
}
