/*
 * Copyright (c) 2026-present unTill Software Development Group B.V.
 */

package nxbase

import (
	"github.com/voedger/nxtree/pkg/nxtree"
	"github.com/voedger/nxtree/pkg/nxvalue"
)

// Properties of the neutron or X-ray beam at a given location
type Beam struct{ nxtree.INode }

func NewBeam(tree nxtree.ITree) (Beam, error) { return newAs[Beam](tree, Class_NXbeam) }

func AsBeam(n nxtree.INode) (Beam, error) { return as[Beam](n, Class_NXbeam) }

// Distance from sample. Negative if upstream of sample
func (b Beam) Distance() (nxvalue.Array, error) { return b.Field(Field_Distance) }

func (b Beam) DistanceScalar() (float64, error) { return b.FieldFloat(Field_Distance) }

func (b Beam) SetDistance(v nxvalue.Array) (nxtree.IFieldHandle, error) {
	return b.SetField(Field_Distance, v)
}

func (b Beam) SetDistanceScalar(v float64) (nxtree.IFieldHandle, error) {
	return b.SetFieldScalar(Field_Distance, v)
}

// Energy carried by each particle of beam on entering beamline component
func (b Beam) IncidentEnergy() (nxvalue.Array, error) { return b.Field(Field_IncidentEnergy) }

func (b Beam) IncidentEnergyScalar() (float64, error) { return b.FieldFloat(Field_IncidentEnergy) }

func (b Beam) SetIncidentEnergy(v nxvalue.Array) (nxtree.IFieldHandle, error) {
	return b.SetField(Field_IncidentEnergy, v)
}

func (b Beam) SetIncidentEnergyScalar(v float64) (nxtree.IFieldHandle, error) {
	return b.SetFieldScalar(Field_IncidentEnergy, v)
}

func (b Beam) IncidentWavelength() (nxvalue.Array, error) {
	return b.Field(Field_IncidentWavelength)
}

func (b Beam) IncidentWavelengthScalar() (float64, error) {
	return b.FieldFloat(Field_IncidentWavelength)
}

func (b Beam) SetIncidentWavelength(v nxvalue.Array) (nxtree.IFieldHandle, error) {
	return b.SetField(Field_IncidentWavelength, v)
}

func (b Beam) SetIncidentWavelengthScalar(v float64) (nxtree.IFieldHandle, error) {
	return b.SetFieldScalar(Field_IncidentWavelength, v)
}

func (b Beam) Flux() (nxvalue.Array, error) { return b.Field(Field_Flux) }

func (b Beam) FluxScalar() (float64, error) { return b.FieldFloat(Field_Flux) }

func (b Beam) SetFlux(v nxvalue.Array) (nxtree.IFieldHandle, error) {
	return b.SetField(Field_Flux, v)
}

func (b Beam) SetFluxScalar(v float64) (nxtree.IFieldHandle, error) {
	return b.SetFieldScalar(Field_Flux, v)
}

func (b Beam) Transformations() (Transformations, error) {
	return child[Transformations](b, Slot_Transformations)
}

func (b Beam) TransformationsByName(name string) (Transformations, error) {
	return childByName[Transformations](b, Slot_Transformations, name)
}

func (b Beam) SetTransformations(t Transformations) error {
	return b.SetChild(Slot_Transformations, t.INode)
}

func (b Beam) SetTransformationsByName(name string, t Transformations) error {
	return b.SetChildByName(Slot_Transformations, name, t.INode)
}

func (b Beam) AllTransformations() (map[string]Transformations, error) {
	return children[Transformations](b, Slot_Transformations)
}

func (b Beam) SetAllTransformations(m map[string]Transformations) error {
	return setChildren(b, Slot_Transformations, m)
}
