/*
 * Copyright (c) 2026-present unTill Software Development Group B.V.
 */

package nxbase

import (
	"github.com/voedger/nxtree/pkg/nxtree"
	"github.com/voedger/nxtree/pkg/nxvalue"
)

// Collection of the components of the instrument or beamline
type Instrument struct{ nxtree.INode }

func NewInstrument(tree nxtree.ITree) (Instrument, error) {
	return newAs[Instrument](tree, Class_NXinstrument)
}

func AsInstrument(n nxtree.INode) (Instrument, error) { return as[Instrument](n, Class_NXinstrument) }

func (i Instrument) Name() (nxvalue.Array, error) { return i.Field(Field_Name) }

func (i Instrument) NameScalar() (string, error) { return i.FieldString(Field_Name) }

func (i Instrument) SetName(v nxvalue.Array) (nxtree.IFieldHandle, error) {
	return i.SetField(Field_Name, v)
}

func (i Instrument) SetNameScalar(v string) (nxtree.IFieldHandle, error) {
	return i.SetFieldScalar(Field_Name, v)
}

func (i Instrument) Beam() (Beam, error) { return child[Beam](i, Slot_Beam) }

func (i Instrument) BeamByName(name string) (Beam, error) {
	return childByName[Beam](i, Slot_Beam, name)
}

func (i Instrument) SetBeam(b Beam) error { return i.SetChild(Slot_Beam, b.INode) }

func (i Instrument) SetBeamByName(name string, b Beam) error {
	return i.SetChildByName(Slot_Beam, name, b.INode)
}

func (i Instrument) AllBeams() (map[string]Beam, error) { return children[Beam](i, Slot_Beam) }

func (i Instrument) SetAllBeams(m map[string]Beam) error { return setChildren(i, Slot_Beam, m) }

func (i Instrument) Detector() (Detector, error) { return child[Detector](i, Slot_Detector) }

func (i Instrument) DetectorByName(name string) (Detector, error) {
	return childByName[Detector](i, Slot_Detector, name)
}

func (i Instrument) SetDetector(d Detector) error { return i.SetChild(Slot_Detector, d.INode) }

func (i Instrument) SetDetectorByName(name string, d Detector) error {
	return i.SetChildByName(Slot_Detector, name, d.INode)
}

func (i Instrument) AllDetectors() (map[string]Detector, error) {
	return children[Detector](i, Slot_Detector)
}

func (i Instrument) SetAllDetectors(m map[string]Detector) error {
	return setChildren(i, Slot_Detector, m)
}
