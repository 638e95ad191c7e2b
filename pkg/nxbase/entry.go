/*
 * Copyright (c) 2026-present unTill Software Development Group B.V.
 */

package nxbase

import (
	"time"

	"github.com/voedger/nxtree/pkg/nxtree"
	"github.com/voedger/nxtree/pkg/nxvalue"
)

// Measurement entry
type Entry struct{ nxtree.INode }

func NewEntry(tree nxtree.ITree) (Entry, error) { return newAs[Entry](tree, Class_NXentry) }

func AsEntry(n nxtree.INode) (Entry, error) { return as[Entry](n, Class_NXentry) }

func (e Entry) Title() (nxvalue.Array, error) { return e.Field(Field_Title) }

func (e Entry) TitleScalar() (string, error) { return e.FieldString(Field_Title) }

func (e Entry) SetTitle(v nxvalue.Array) (nxtree.IFieldHandle, error) {
	return e.SetField(Field_Title, v)
}

func (e Entry) SetTitleScalar(v string) (nxtree.IFieldHandle, error) {
	return e.SetFieldScalar(Field_Title, v)
}

// Application definition entry conforms to
func (e Entry) DefinitionScalar() (string, error) { return e.FieldString(Field_Definition) }

func (e Entry) SetDefinitionScalar(v string) (nxtree.IFieldHandle, error) {
	return e.SetFieldScalar(Field_Definition, v)
}

func (e Entry) StartTime() (nxvalue.Array, error) { return e.Field(Field_StartTime) }

func (e Entry) StartTimeScalar() (time.Time, error) { return e.FieldTime(Field_StartTime) }

func (e Entry) SetStartTime(v nxvalue.Array) (nxtree.IFieldHandle, error) {
	return e.SetField(Field_StartTime, v)
}

func (e Entry) SetStartTimeScalar(v time.Time) (nxtree.IFieldHandle, error) {
	return e.SetFieldScalar(Field_StartTime, v)
}

func (e Entry) EndTimeScalar() (time.Time, error) { return e.FieldTime(Field_EndTime) }

func (e Entry) SetEndTimeScalar(v time.Time) (nxtree.IFieldHandle, error) {
	return e.SetFieldScalar(Field_EndTime, v)
}

func (e Entry) Instrument() (Instrument, error) { return child[Instrument](e, Slot_Instrument) }

func (e Entry) InstrumentByName(name string) (Instrument, error) {
	return childByName[Instrument](e, Slot_Instrument, name)
}

func (e Entry) SetInstrument(i Instrument) error { return e.SetChild(Slot_Instrument, i.INode) }

func (e Entry) SetInstrumentByName(name string, i Instrument) error {
	return e.SetChildByName(Slot_Instrument, name, i.INode)
}

func (e Entry) AllInstruments() (map[string]Instrument, error) {
	return children[Instrument](e, Slot_Instrument)
}

func (e Entry) SetAllInstruments(m map[string]Instrument) error {
	return setChildren(e, Slot_Instrument, m)
}

func (e Entry) Data() (Data, error) { return child[Data](e, Slot_Data) }

func (e Entry) DataByName(name string) (Data, error) { return childByName[Data](e, Slot_Data, name) }

func (e Entry) SetData(d Data) error { return e.SetChild(Slot_Data, d.INode) }

func (e Entry) SetDataByName(name string, d Data) error {
	return e.SetChildByName(Slot_Data, name, d.INode)
}

func (e Entry) AllData() (map[string]Data, error) { return children[Data](e, Slot_Data) }

func (e Entry) SetAllData(m map[string]Data) error { return setChildren(e, Slot_Data, m) }

func (e Entry) Monitor() (Monitor, error) { return child[Monitor](e, Slot_Monitor) }

func (e Entry) MonitorByName(name string) (Monitor, error) {
	return childByName[Monitor](e, Slot_Monitor, name)
}

func (e Entry) SetMonitor(m Monitor) error { return e.SetChild(Slot_Monitor, m.INode) }

func (e Entry) SetMonitorByName(name string, m Monitor) error {
	return e.SetChildByName(Slot_Monitor, name, m.INode)
}

func (e Entry) AllMonitors() (map[string]Monitor, error) { return children[Monitor](e, Slot_Monitor) }

func (e Entry) SetAllMonitors(m map[string]Monitor) error { return setChildren(e, Slot_Monitor, m) }
