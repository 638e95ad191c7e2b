/*
 * Copyright (c) 2026-present unTill Software Development Group B.V.
 */

package nxbase

import (
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"github.com/voedger/nxtree/pkg/nxdef"
	"github.com/voedger/nxtree/pkg/nxstorage/mem"
	"github.com/voedger/nxtree/pkg/nxtree"
	"github.com/voedger/nxtree/pkg/nxvalue"
)

func TestProvide(t *testing.T) {
	require := require.New(t)
	classes := Provide()

	names := []string{
		Class_NXobject, Class_NXroot, Class_NXentry, Class_NXinstrument, Class_NXsource,
		Class_NXbeam, Class_NXtransformations, Class_NXdata, Class_NXlog, Class_NXmonitor,
		Class_NXdetector, Class_NXsample, Class_NXslit, Class_NXdiskChopper, Class_NXmirror,
		Class_NXnote, Class_NXcollection, Class_NXuser,
	}
	require.Equal(len(names), classes.ClassCount())
	for _, n := range names {
		c := classes.Class(n)
		require.NotNil(c, n)
		require.Equal(nxdef.ClassCategory_base, c.Category())
		require.True(c.Is(Class_NXobject), n)
	}

	t.Run("beam definition", func(t *testing.T) {
		beam := classes.Class(Class_NXbeam)
		f := beam.Field(Field_IncidentEnergy)
		require.NotNil(f)
		require.Equal(nxdef.DataKind_float, f.DataKind())
		require.Equal(nxdef.Units_Energy, f.Units())
		require.Equal([]string{"i"}, f.Dims())

		s := beam.Slot(Slot_Transformations)
		require.NotNil(s)
		require.Equal(Class_NXtransformations, s.Class().Name())
		require.Equal(nxdef.Occurs_Unbounded, s.MaxOccurs())

		require.NotNil(beam.Attr("default"), "inherited from NXobject")
	})

	t.Run("deprecated fields", func(t *testing.T) {
		require.NotEmpty(classes.Class(Class_NXlog).Field(Field_Errors).Deprecated())
		require.NotEmpty(classes.Class(Class_NXmonitor).Field(Field_Distance).Deprecated())
		require.Empty(classes.Class(Class_NXbeam).Field(Field_Distance).Deprecated())
		require.Equal("FIELDNAME_errors", classes.Class(Class_NXlog).Field("value_errors").Name())
	})

	t.Run("root requires entry", func(t *testing.T) {
		s := classes.Class(Class_NXroot).Slot(Class_NXentry)
		require.NotNil(s)
		require.Equal(nxdef.Occurs(1), s.MinOccurs())
	})

	t.Run("base classes can not be added twice", func(t *testing.T) {
		b := nxdef.New()
		AddBaseClasses(b)
		require.Panics(func() { AddBaseClasses(b) })
	})
}

func TestBeam(t *testing.T) {
	require := require.New(t)
	tree := NewTree(mem.Provide())

	beam, err := NewBeam(tree)
	require.NoError(err)

	_, err = beam.IncidentEnergy()
	require.ErrorIs(err, nxtree.ErrNotPresent)

	_, err = beam.SetIncidentEnergyScalar(12.4)
	require.NoError(err)

	e, err := beam.IncidentEnergyScalar()
	require.NoError(err)
	require.Equal(12.4, e)

	a, err := beam.IncidentEnergy()
	require.NoError(err)
	require.Equal(1, a.Len())
	ff, err := a.AsFloats()
	require.NoError(err)
	require.Equal([]float64{12.4}, ff)

	tx, err := NewTransformations(tree)
	require.NoError(err)
	require.NoError(beam.SetTransformationsByName("primary", tx))

	all, err := beam.AllTransformations()
	require.NoError(err)
	require.Equal(map[string]Transformations{"primary": tx}, all)

	t.Run("array accessors", func(t *testing.T) {
		_, err := beam.SetIncidentWavelength(nxvalue.Floats(1.1, 1.2))
		require.NoError(err)
		w, err := beam.IncidentWavelength()
		require.NoError(err)
		require.True(nxvalue.Floats(1.1, 1.2).Equal(w))

		_, err = beam.IncidentWavelengthScalar()
		require.ErrorIs(err, nxtree.ErrWrongCardinality)

		_, err = beam.SetFluxScalar(1e12)
		require.NoError(err)
		f, err := beam.FluxScalar()
		require.NoError(err)
		require.Equal(1e12, f)

		_, err = beam.SetDistanceScalar(-0.5)
		require.NoError(err)
		d, err := beam.DistanceScalar()
		require.NoError(err)
		require.Equal(-0.5, d)
	})

	t.Run("default transformations child", func(t *testing.T) {
		_, err := beam.Transformations()
		require.ErrorIs(err, nxtree.ErrNotPresent)

		tx2, err := NewTransformations(tree)
		require.NoError(err)
		require.NoError(beam.SetTransformations(tx2))

		c, err := beam.Transformations()
		require.NoError(err)
		byName, err := beam.TransformationsByName(Slot_Transformations)
		require.NoError(err)
		require.Equal(c, byName)
		require.Equal(tx2.ID(), c.ID())
	})

	t.Run("set all transformations", func(t *testing.T) {
		a, err := NewTransformations(tree)
		require.NoError(err)
		require.NoError(beam.SetAllTransformations(map[string]Transformations{"a": a}))

		all, err := beam.AllTransformations()
		require.NoError(err)
		require.Equal(map[string]Transformations{"a": a}, all)
		require.Equal([]string{"a"}, beam.ChildNames())
	})

	t.Run("type mismatch", func(t *testing.T) {
		_, err := beam.SetIncidentEnergy(nxvalue.Strings("high"))
		require.ErrorIs(err, nxtree.ErrTypeMismatch)
	})
}

func TestAs(t *testing.T) {
	require := require.New(t)
	tree := NewTree(mem.Provide())

	n, err := tree.NewNode(Class_NXbeam)
	require.NoError(err)

	beam, err := AsBeam(n)
	require.NoError(err)
	require.Equal(n.ID(), beam.ID())

	_, err = AsEntry(n)
	require.ErrorIs(err, nxtree.ErrWrongClass)
	_, err = AsBeam(nil)
	require.ErrorIs(err, nxtree.ErrWrongClass)

	_, err = AsTransformations(n)
	require.ErrorIs(err, nxtree.ErrWrongClass)
}

func TestTransformations(t *testing.T) {
	require := require.New(t)
	tree := NewTree(mem.Provide(), nxtree.WithValidation(nxtree.Validation_Strict))

	tx, err := NewTransformations(tree)
	require.NoError(err)

	_, err = tx.SetTranslation("z", 1.5, "m", [3]float64{0, 0, 1})
	require.NoError(err)
	_, err = tx.SetRotation("phi", 90, "deg", [3]float64{0, 1, 0})
	require.NoError(err)

	require.Equal([]string{"phi", "z"}, tx.AxisNames())

	typ, err := tx.TransformationType("phi")
	require.NoError(err)
	require.Equal(TransformationType_Rotation, typ)

	v, err := tx.Vector("z")
	require.NoError(err)
	require.Equal([]float64{0, 0, 1}, v)

	z, err := tx.AxisScalar("z")
	require.NoError(err)
	require.Equal(1.5, z)

	h, err := tx.SetAxis("omega", nxvalue.Floats(0, 10, 20))
	require.NoError(err)
	require.Equal("AXISNAME", h.Def().Name())

	require.ErrorIs(h.SetAttr(Attr_TransformationType, nxvalue.MustScalar("shear")), nxtree.ErrEnumViolation)
	require.NoError(tx.Validate())
}

func TestDataSignalRejected(t *testing.T) {
	require := require.New(t)

	b := nxdef.New()
	b.AddClass(Class_NXdata, nxdef.ClassCategory_base).
		AddField("DATA", nxdef.DataKind_number)
	classes, err := b.Build()
	require.NoError(err)

	tree := nxtree.New(classes, mem.Provide(), nxtree.WithValidation(nxtree.Validation_Strict))
	data, err := NewData(tree)
	require.NoError(err)

	t.Run("new field should be removed", func(t *testing.T) {
		_, err := data.SetSignal("counts", nxvalue.Ints(1, 2))
		require.ErrorIs(err, nxtree.ErrNotDeclared)

		_, err = data.Field("counts")
		require.ErrorIs(err, nxtree.ErrNotPresent)
	})

	t.Run("previous value should be restored", func(t *testing.T) {
		_, err := data.SetField("counts", nxvalue.Ints(7))
		require.NoError(err)

		_, err = data.SetSignal("counts", nxvalue.Ints(1, 2))
		require.ErrorIs(err, nxtree.ErrNotDeclared)

		v, err := data.Field("counts")
		require.NoError(err)
		require.True(nxvalue.Ints(7).Equal(v))
	})
}

func TestData(t *testing.T) {
	require := require.New(t)
	tree := NewTree(mem.Provide(), nxtree.WithValidation(nxtree.Validation_Strict))

	data, err := NewData(tree)
	require.NoError(err)

	_, err = data.SetSignal("counts", nxvalue.Ints(10, 20, 15))
	require.NoError(err)
	_, err = data.SetAxis("two_theta", nxvalue.Floats(10, 20, 30))
	require.NoError(err)
	require.NoError(data.SetAxes("two_theta"))
	_, err = data.SetFieldErrors("counts", nxvalue.Floats(3.1, 4.4, 3.8))
	require.NoError(err)

	name, err := data.SignalName()
	require.NoError(err)
	require.Equal("counts", name)

	s, err := data.Signal(name)
	require.NoError(err)
	require.True(nxvalue.Ints(10, 20, 15).Equal(s))

	axes, err := data.Axes()
	require.NoError(err)
	require.Equal([]string{"two_theta"}, axes)

	ax, err := data.Axis("two_theta")
	require.NoError(err)
	require.Equal(3, ax.Len())

	e, err := data.FieldErrors("counts")
	require.NoError(err)
	require.True(nxvalue.Floats(3.1, 4.4, 3.8).Equal(e))

	e2, err := data.FieldErrors("counts_errors")
	require.NoError(err)
	require.Equal(e, e2)

	_, err = data.FieldErrors("two_theta")
	require.ErrorIs(err, nxtree.ErrNotPresent)

	require.NoError(data.Validate())
}

func TestLog(t *testing.T) {
	require := require.New(t)
	tree := NewTree(mem.Provide(), nxtree.WithValidation(nxtree.Validation_Strict))
	start := time.Date(2026, 10, 18, 8, 30, 0, 0, time.UTC)

	log, err := NewLog(tree)
	require.NoError(err)

	require.NoError(log.SetSeries([]float64{0, 60, 120}, nxvalue.Floats(293.1, 293.4, 293.2)))
	require.NoError(log.SetStart(start))
	_, err = log.SetDescriptionScalar("sample temperature")
	require.NoError(err)
	_, err = log.SetAverageValueScalar(293.23)
	require.NoError(err)

	st, err := log.Start()
	require.NoError(err)
	require.True(start.Equal(st))

	tm, err := log.Time()
	require.NoError(err)
	require.Equal(3, tm.Len())

	d, err := log.DescriptionScalar()
	require.NoError(err)
	require.Equal("sample temperature", d)

	avg, err := log.AverageValueScalar()
	require.NoError(err)
	require.Equal(293.23, avg)

	t.Run("value count should match time count", func(t *testing.T) {
		_, err := log.SetValue(nxvalue.Floats(1, 2))
		require.ErrorIs(err, nxtree.ErrDimMismatch)
	})

	t.Run("deprecated errors coexist with field errors", func(t *testing.T) {
		_, err := log.ValueErrors()
		require.ErrorIs(err, nxtree.ErrNotPresent)

		_, err = log.SetErrors(nxvalue.Floats(0.1, 0.1, 0.2))
		require.NoError(err)
		legacy, err := log.ValueErrors()
		require.NoError(err)
		require.True(nxvalue.Floats(0.1, 0.1, 0.2).Equal(legacy))

		_, err = log.SetFieldErrors(Field_Value, nxvalue.Floats(0.05, 0.05, 0.05))
		require.NoError(err)
		errs, err := log.ValueErrors()
		require.NoError(err)
		require.True(nxvalue.Floats(0.05, 0.05, 0.05).Equal(errs))

		legacy, err = log.Errors()
		require.NoError(err)
		require.True(nxvalue.Floats(0.1, 0.1, 0.2).Equal(legacy))
	})

	require.NoError(log.Validate())
}

func TestMonitor(t *testing.T) {
	require := require.New(t)
	tree := NewTree(mem.Provide())

	m, err := NewMonitor(tree)
	require.NoError(err)

	_, err = m.SetModeScalar("monitor")
	require.NoError(err)
	_, err = m.SetPresetScalar(uint64(100000))
	require.NoError(err)
	_, err = m.SetIntegralScalar(int64(99876))
	require.NoError(err)
	_, err = m.SetData(nxvalue.Ints(1, 5, 9))
	require.NoError(err)
	_, err = m.SetDistanceScalar(-1.75)
	require.NoError(err)

	mode, err := m.ModeScalar()
	require.NoError(err)
	require.Equal("monitor", mode)

	p, err := m.PresetScalar()
	require.NoError(err)
	require.Equal(uint64(100000), p)

	i, err := m.IntegralScalar()
	require.NoError(err)
	require.Equal(int64(99876), i)

	d, err := m.DistanceScalar()
	require.NoError(err)
	require.Equal(-1.75, d)

	log, err := NewLog(tree)
	require.NoError(err)
	require.NoError(m.SetLogByName("integral_log", log))
	logs, err := m.AllLogs()
	require.NoError(err)
	require.Equal(map[string]Log{"integral_log": log}, logs)

	tx, err := NewTransformations(tree)
	require.NoError(err)
	require.NoError(m.SetTransformations(tx))
	c, err := m.Transformations()
	require.NoError(err)
	require.Equal(tx.ID(), c.ID())

	require.NoError(m.Validate())
}

func TestEntryTree(t *testing.T) {
	require := require.New(t)
	tree := NewTree(mem.Provide(), nxtree.WithValidation(nxtree.Validation_Strict))

	root, err := tree.Root()
	require.NoError(err)
	require.ErrorIs(root.Validate(), nxtree.ErrOccursViolation)

	entry, err := NewEntry(tree)
	require.NoError(err)
	require.NoError(root.SetChild(Class_NXentry, entry))

	_, err = entry.SetTitleScalar("powder diffraction")
	require.NoError(err)
	_, err = entry.SetDefinitionScalar("NXmonopd")
	require.NoError(err)
	start := time.Date(2026, 10, 18, 9, 0, 0, 0, time.UTC)
	_, err = entry.SetStartTimeScalar(start)
	require.NoError(err)
	_, err = entry.SetEndTimeScalar(start.Add(time.Hour))
	require.NoError(err)

	instr, err := NewInstrument(tree)
	require.NoError(err)
	require.NoError(entry.SetInstrument(instr))
	_, err = instr.SetNameScalar("POWGEN")
	require.NoError(err)

	beam, err := NewBeam(tree)
	require.NoError(err)
	require.NoError(instr.SetBeam(beam))
	_, err = beam.SetIncidentWavelengthScalar(1.5)
	require.NoError(err)

	det, err := NewDetector(tree)
	require.NoError(err)
	require.NoError(instr.SetDetectorByName("bank1", det))
	_, err = det.SetData(nxvalue.Ints(4, 8, 15, 16, 23, 42))
	require.NoError(err)
	_, err = det.SetDataErrors(nxvalue.Floats(2, 2.8, 3.9, 4, 4.8, 6.5))
	require.NoError(err)
	_, err = det.SetPolarAngleScalar(90)
	require.NoError(err)
	_, err = det.SetDistanceScalar(2.5)
	require.NoError(err)
	_, err = det.SetDescriptionScalar("He3 tubes")
	require.NoError(err)

	mon, err := NewMonitor(tree)
	require.NoError(err)
	require.NoError(entry.SetMonitor(mon))

	data, err := NewData(tree)
	require.NoError(err)
	require.NoError(entry.SetData(data))

	t.Run("data max occurs", func(t *testing.T) {
		other, err := NewData(tree)
		require.NoError(err)
		require.NoError(entry.SetDataByName("data", other), "replace")
		require.NoError(entry.SetAllData(map[string]Data{"data": data}))
	})

	require.NoError(nxtree.Walk(root, func(path string, n nxtree.INode) error { return n.Validate() }))

	paths := []string{}
	require.NoError(nxtree.Walk(root, func(path string, n nxtree.INode) error {
		paths = append(paths, path)
		return nil
	}))
	require.Equal([]string{
		"/",
		"/entry",
		"/entry/data",
		"/entry/instrument",
		"/entry/instrument/bank1",
		"/entry/instrument/beam",
		"/entry/monitor",
	}, paths)

	n, err := nxtree.Lookup(root, "/entry/instrument/bank1")
	require.NoError(err)
	d, err := AsDetector(n)
	require.NoError(err)
	a, err := d.PolarAngleScalar()
	require.NoError(err)
	require.Equal(90.0, a)

	e, err := AsEntry(root)
	require.ErrorIs(err, nxtree.ErrWrongClass)
	require.Zero(e)

	t.Run("typed children", func(t *testing.T) {
		i, err := entry.Instrument()
		require.NoError(err)
		beams, err := i.AllBeams()
		require.NoError(err)
		require.Equal(map[string]Beam{"beam": beam}, beams)

		dets, err := i.AllDetectors()
		require.NoError(err)
		require.Len(dets, 1)
		byName, err := i.DetectorByName("bank1")
		require.NoError(err)
		require.Equal(dets["bank1"], byName)

		title, err := entry.TitleScalar()
		require.NoError(err)
		require.Equal("powder diffraction", title)

		st, err := entry.StartTimeScalar()
		require.NoError(err)
		require.True(start.Equal(st))
	})
}
