/*
 * Copyright (c) 2026-present unTill Software Development Group B.V.
 */

package nxbase

import (
	"github.com/voedger/nxtree/pkg/nxtree"
	"github.com/voedger/nxtree/pkg/nxvalue"
)

// Monitor of incident beam data
type Monitor struct{ nxtree.INode }

func NewMonitor(tree nxtree.ITree) (Monitor, error) { return newAs[Monitor](tree, Class_NXmonitor) }

func AsMonitor(n nxtree.INode) (Monitor, error) { return as[Monitor](n, Class_NXmonitor) }

// Count to monitor or timer preset, «monitor» or «timer»
func (m Monitor) Mode() (nxvalue.Array, error) { return m.Field(Field_Mode) }

func (m Monitor) ModeScalar() (string, error) { return m.FieldString(Field_Mode) }

func (m Monitor) SetMode(v nxvalue.Array) (nxtree.IFieldHandle, error) {
	return m.SetField(Field_Mode, v)
}

func (m Monitor) SetModeScalar(v string) (nxtree.IFieldHandle, error) {
	return m.SetFieldScalar(Field_Mode, v)
}

func (m Monitor) Preset() (nxvalue.Array, error) { return m.Field(Field_Preset) }

func (m Monitor) PresetScalar() (any, error) { return m.FieldScalar(Field_Preset) }

func (m Monitor) SetPreset(v nxvalue.Array) (nxtree.IFieldHandle, error) {
	return m.SetField(Field_Preset, v)
}

func (m Monitor) SetPresetScalar(v any) (nxtree.IFieldHandle, error) {
	return m.SetFieldScalar(Field_Preset, v)
}

func (m Monitor) Integral() (nxvalue.Array, error) { return m.Field(Field_Integral) }

func (m Monitor) IntegralScalar() (any, error) { return m.FieldScalar(Field_Integral) }

func (m Monitor) SetIntegral(v nxvalue.Array) (nxtree.IFieldHandle, error) {
	return m.SetField(Field_Integral, v)
}

func (m Monitor) SetIntegralScalar(v any) (nxtree.IFieldHandle, error) {
	return m.SetFieldScalar(Field_Integral, v)
}

// Monitor counts
func (m Monitor) Data() (nxvalue.Array, error) { return m.Field(Field_Data) }

func (m Monitor) SetData(v nxvalue.Array) (nxtree.IFieldHandle, error) {
	return m.SetField(Field_Data, v)
}

// Distance of monitor from sample.
//
// Deprecated: use Transformations.
func (m Monitor) Distance() (nxvalue.Array, error) { return m.Field(Field_Distance) }

// Deprecated: use Transformations.
func (m Monitor) DistanceScalar() (float64, error) { return m.FieldFloat(Field_Distance) }

// Deprecated: use SetTransformations.
func (m Monitor) SetDistance(v nxvalue.Array) (nxtree.IFieldHandle, error) {
	return m.SetField(Field_Distance, v)
}

// Deprecated: use SetTransformations.
func (m Monitor) SetDistanceScalar(v float64) (nxtree.IFieldHandle, error) {
	return m.SetFieldScalar(Field_Distance, v)
}

func (m Monitor) Transformations() (Transformations, error) {
	return child[Transformations](m, Slot_Transformations)
}

func (m Monitor) TransformationsByName(name string) (Transformations, error) {
	return childByName[Transformations](m, Slot_Transformations, name)
}

func (m Monitor) SetTransformations(t Transformations) error {
	return m.SetChild(Slot_Transformations, t.INode)
}

func (m Monitor) SetTransformationsByName(name string, t Transformations) error {
	return m.SetChildByName(Slot_Transformations, name, t.INode)
}

func (m Monitor) AllTransformations() (map[string]Transformations, error) {
	return children[Transformations](m, Slot_Transformations)
}

func (m Monitor) SetAllTransformations(all map[string]Transformations) error {
	return setChildren(m, Slot_Transformations, all)
}

func (m Monitor) Log() (Log, error) { return child[Log](m, Slot_Log) }

func (m Monitor) LogByName(name string) (Log, error) { return childByName[Log](m, Slot_Log, name) }

func (m Monitor) SetLog(l Log) error { return m.SetChild(Slot_Log, l.INode) }

func (m Monitor) SetLogByName(name string, l Log) error {
	return m.SetChildByName(Slot_Log, name, l.INode)
}

func (m Monitor) AllLogs() (map[string]Log, error) { return children[Log](m, Slot_Log) }

func (m Monitor) SetAllLogs(all map[string]Log) error { return setChildren(m, Slot_Log, all) }
