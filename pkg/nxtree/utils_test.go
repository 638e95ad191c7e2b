/*
 * Copyright (c) 2026-present unTill Software Development Group B.V.
 */

package nxtree

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/voedger/nxtree/pkg/nxdef"
	"github.com/voedger/nxtree/pkg/nxstorage/mem"
)

func testClasses(t *testing.T) nxdef.IClasses {
	b := nxdef.New()

	b.AddClass("NXobject", nxdef.ClassCategory_base).
		AddAttr(nxdef.Attr_Default, nxdef.DataKind_char)

	b.AddClass("NXroot", nxdef.ClassCategory_base).
		SetExtends("NXobject").
		AddSlot("", "NXentry", 1, nxdef.Occurs_Unbounded)

	entry := b.AddClass("NXentry", nxdef.ClassCategory_base).
		SetExtends("NXobject").
		AddAttr("mode", nxdef.DataKind_char, "single", "scan").
		AddSlot("", "NXbeam", 0, nxdef.Occurs_Unbounded).
		AddSlot("", "NXdata", 0, 1)
	entry.AddField("title", nxdef.DataKind_char)
	entry.AddField("start_time", nxdef.DataKind_datetime)
	entry.AddField("run_cycle", nxdef.DataKind_int)

	tx := b.AddClass("NXtransformations", nxdef.ClassCategory_base).
		SetExtends("NXobject")
	tx.AddField("AXISNAME", nxdef.DataKind_number).
		SetUnits(nxdef.Units_Transformation).
		AddAttr("transformation_type", nxdef.DataKind_char, "translation", "rotation")

	beam := b.AddClass("NXbeam", nxdef.ClassCategory_base).
		SetExtends("NXobject").
		AddSlot("", "NXtransformations", 0, nxdef.Occurs_Unbounded)
	beam.AddField("incident_energy", nxdef.DataKind_float).
		SetUnits(nxdef.Units_Energy).
		SetDims("i")
	beam.AddField("incident_wavelength", nxdef.DataKind_float).
		SetUnits(nxdef.Units_Wavelength).
		SetDims("i")
	beam.AddField("incident_polarization", nxdef.DataKind_number).
		SetDims("i", "2")
	beam.AddField("size_map", nxdef.DataKind_number).
		SetDims("j", "i")
	beam.AddField("slit_widths", nxdef.DataKind_number).
		SetDims("j")
	beam.AddField("mode", nxdef.DataKind_char).
		SetEnum("pulsed", "continuous")
	beam.AddField("distance", nxdef.DataKind_float).
		SetDeprecated("use transformations")

	data := b.AddClass("NXdata", nxdef.ClassCategory_base).
		SetExtends("NXobject")
	data.AddField("DATA", nxdef.DataKind_number)
	data.AddField("FIELDNAME_errors", nxdef.DataKind_number)

	b.AddClass("NXnote", nxdef.ClassCategory_base).
		SetExtends("NXobject").
		AddField("data", nxdef.DataKind_char)

	classes, err := b.Build()
	require.NoError(t, err)
	return classes
}

func testTree(t *testing.T, opts ...Option) ITree {
	return New(testClasses(t), mem.Provide(), opts...)
}

func newNode(t *testing.T, tree ITree, class string) INode {
	n, err := tree.NewNode(class)
	require.NoError(t, err)
	return n
}
