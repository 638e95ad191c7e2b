/*
 * Copyright (c) 2026-present unTill Software Development Group B.V.
 */

package nxtree

import (
	"testing"
	"time"

	fuzz "github.com/google/gofuzz"
	"github.com/stretchr/testify/require"

	"github.com/voedger/nxtree/pkg/nxdef"
	"github.com/voedger/nxtree/pkg/nxdims"
	"github.com/voedger/nxtree/pkg/nxstorage/mem"
	"github.com/voedger/nxtree/pkg/nxvalue"
)

func TestNewNode(t *testing.T) {
	require := require.New(t)
	tree := testTree(t)

	beam := newNode(t, tree, "beam")
	require.Equal("NXbeam", beam.Class().Name())
	require.Equal(beam.ID(), beam.Group().ID())

	cls, err := beam.Attr(nxdef.Attr_NXClass)
	require.NoError(err)
	require.Equal(nxvalue.MustScalar("NXbeam"), cls)

	t.Run("unknown class", func(t *testing.T) {
		_, err := tree.NewNode("NXunknown")
		require.ErrorIs(err, ErrUnknownClass)
	})

	t.Run("root is created once", func(t *testing.T) {
		r1, err := tree.Root()
		require.NoError(err)
		r2, err := tree.Root()
		require.NoError(err)
		require.Equal(r1.ID(), r2.ID())
		require.Equal(RootClass, r1.Class().Name())
	})

	t.Run("wrap storage group", func(t *testing.T) {
		n, err := tree.Wrap(beam.Group())
		require.NoError(err)
		require.Equal(beam, n)

		_, err = tree.Wrap(mem.Provide().NewGroup("NXunknown"))
		require.ErrorIs(err, ErrUnknownClass)
	})
}

func TestField(t *testing.T) {
	require := require.New(t)
	tree := testTree(t)
	beam := newNode(t, tree, "NXbeam")

	t.Run("never set field should be not present", func(t *testing.T) {
		_, err := beam.Field("incident_energy")
		require.ErrorIs(err, ErrNotPresent)
		_, err = beam.FieldScalar("incident_energy")
		require.ErrorIs(err, ErrNotPresent)
		_, err = beam.FieldFloat("incident_energy")
		require.ErrorIs(err, ErrNotPresent)
		_, err = beam.FieldHandle("incident_energy")
		require.ErrorIs(err, ErrNotPresent)
		_, err = beam.FieldAttr("incident_energy", nxdef.Attr_Units)
		require.ErrorIs(err, ErrNotPresent)
		require.ErrorIs(beam.SetFieldAttr("incident_energy", nxdef.Attr_Units, nxvalue.MustScalar("keV")), ErrNotPresent)
	})

	t.Run("set array then get returns same array", func(t *testing.T) {
		v := nxvalue.Floats(1.5, 2, 3)
		h, err := beam.SetField("incident_energy", v)
		require.NoError(err)
		require.Equal("incident_energy", h.Name())
		require.Equal("incident_energy", h.Def().Name())

		got, err := beam.Field("incident_energy")
		require.NoError(err)
		require.True(v.Equal(got), got)
		require.True(v.Equal(h.Value()))
	})

	t.Run("overwrite leaves no trace of old value", func(t *testing.T) {
		h, err := beam.FieldHandle("incident_energy")
		require.NoError(err)

		_, err = beam.SetField("incident_energy", nxvalue.Floats(7))
		require.NoError(err)

		got, err := beam.Field("incident_energy")
		require.NoError(err)
		require.True(nxvalue.Floats(7).Equal(got), got)
		require.True(nxvalue.Floats(7).Equal(h.Value()), "handle should observe current value")
		require.Equal([]string{"incident_energy"}, beam.FieldNames())
	})

	t.Run("set scalar then get one element array", func(t *testing.T) {
		_, err := beam.SetFieldScalar("incident_energy", 12.4)
		require.NoError(err)

		got, err := beam.Field("incident_energy")
		require.NoError(err)
		require.Equal(1, got.Len())
		f, err := got.AsFloat()
		require.NoError(err)
		require.Equal(12.4, f)

		s, err := beam.FieldScalar("incident_energy")
		require.NoError(err)
		require.Equal(12.4, s)

		f, err = beam.FieldFloat("incident_energy")
		require.NoError(err)
		require.Equal(12.4, f)
	})

	t.Run("scalar is coerced to declared kind", func(t *testing.T) {
		_, err := beam.SetFieldScalar("incident_energy", 12)
		require.NoError(err)

		s, err := beam.FieldScalar("incident_energy")
		require.NoError(err)
		require.Equal(float64(12), s)

		i, err := beam.FieldInt("incident_energy")
		require.NoError(err)
		require.EqualValues(12, i)
	})

	t.Run("scalar accessor on many elements is wrong cardinality", func(t *testing.T) {
		_, err := beam.SetField("incident_energy", nxvalue.Floats(1, 2))
		require.NoError(err)

		_, err = beam.FieldScalar("incident_energy")
		require.ErrorIs(err, ErrWrongCardinality)
		_, err = beam.FieldFloat("incident_energy")
		require.ErrorIs(err, ErrWrongCardinality)
	})

	t.Run("remove field", func(t *testing.T) {
		require.True(beam.RemoveField("incident_energy"))
		require.False(beam.RemoveField("incident_energy"))
		_, err := beam.Field("incident_energy")
		require.ErrorIs(err, ErrNotPresent)
	})

	t.Run("typed accessors", func(t *testing.T) {
		entry := newNode(t, tree, "NXentry")
		start := time.Date(2026, 10, 18, 12, 0, 0, 0, time.UTC)

		_, err := entry.SetFieldScalar("title", "powder run")
		require.NoError(err)
		_, err = entry.SetFieldScalar("start_time", start)
		require.NoError(err)
		_, err = entry.SetFieldScalar("run_cycle", uint8(7))
		require.NoError(err)

		title, err := entry.FieldString("title")
		require.NoError(err)
		require.Equal("powder run", title)

		st, err := entry.FieldTime("start_time")
		require.NoError(err)
		require.True(start.Equal(st))

		rc, err := entry.FieldScalar("run_cycle")
		require.NoError(err)
		require.Equal(int64(7), rc)

		u, err := entry.FieldUint("run_cycle")
		require.NoError(err)
		require.EqualValues(7, u)

		_, err = entry.FieldBool("title")
		require.ErrorIs(err, ErrTypeMismatch)
	})

	t.Run("unsupported scalar type", func(t *testing.T) {
		_, err := beam.SetFieldScalar("incident_energy", struct{}{})
		require.ErrorIs(err, nxvalue.ErrUnsupportedType)
	})

	t.Run("invalid field name", func(t *testing.T) {
		_, err := beam.SetFieldScalar("bad name", 1)
		require.ErrorIs(err, nxdef.ErrInvalidName)
		_, err = beam.SetFieldScalar("", 1)
		require.ErrorIs(err, nxdef.ErrNameMissed)
	})
}

func TestFieldAttrs(t *testing.T) {
	require := require.New(t)
	tree := testTree(t)
	tx := newNode(t, tree, "NXtransformations")

	h, err := tx.SetField("phi", nxvalue.Floats(0, 90, 180))
	require.NoError(err)
	require.Equal("AXISNAME", h.Def().Name())

	require.NoError(h.SetUnits("deg"))
	require.NoError(h.SetAttr("transformation_type", nxvalue.MustScalar("rotation")))
	require.NoError(tx.SetFieldAttr("phi", "vector", nxvalue.Floats(0, 0, 1)))

	units, err := h.Units()
	require.NoError(err)
	require.Equal("deg", units)

	v, err := tx.FieldAttr("phi", "transformation_type")
	require.NoError(err)
	require.Equal(nxvalue.MustScalar("rotation"), v)

	v, err = h.Attr("vector")
	require.NoError(err)
	require.True(nxvalue.Floats(0, 0, 1).Equal(v))

	_, err = h.Attr("offset")
	require.ErrorIs(err, ErrNotPresent)

	t.Run("attributes survive value overwrite", func(t *testing.T) {
		_, err := tx.SetField("phi", nxvalue.Floats(45))
		require.NoError(err)
		units, err := h.Units()
		require.NoError(err)
		require.Equal("deg", units)
	})

	t.Run("declared attribute kind is checked", func(t *testing.T) {
		err := h.SetAttr("transformation_type", nxvalue.MustScalar(1))
		require.ErrorIs(err, ErrTypeMismatch)
		require.ErrorIs(h.SetAttr(nxdef.Attr_Units, nxvalue.MustScalar(1.5)), ErrTypeMismatch)
	})
}

func TestNodeAttrs(t *testing.T) {
	require := require.New(t)
	tree := testTree(t)
	entry := newNode(t, tree, "NXentry")

	_, err := entry.Attr("default")
	require.ErrorIs(err, ErrNotPresent)

	require.NoError(entry.SetAttr("default", nxvalue.MustScalar("data")))
	v, err := entry.Attr("default")
	require.NoError(err)
	require.Equal(nxvalue.MustScalar("data"), v)

	require.NoError(entry.SetAttr("default", nxvalue.MustScalar("beam")))
	v, err = entry.Attr("default")
	require.NoError(err)
	require.Equal(nxvalue.MustScalar("beam"), v)

	require.Equal([]string{nxdef.Attr_NXClass, "default"}, entry.AttrNames())

	t.Run("attributes and fields are separate namespaces", func(t *testing.T) {
		_, err := entry.SetFieldScalar("default", "field")
		require.NoError(err)
		v, err := entry.Attr("default")
		require.NoError(err)
		require.Equal(nxvalue.MustScalar("beam"), v)
		require.True(entry.RemoveField("default"))
	})

	t.Run("class attribute is reserved", func(t *testing.T) {
		require.ErrorIs(entry.SetAttr(nxdef.Attr_NXClass, nxvalue.MustScalar("NXdata")), ErrNameCollision)
	})

	t.Run("declared attribute kind is checked", func(t *testing.T) {
		require.ErrorIs(entry.SetAttr("mode", nxvalue.MustScalar(true)), ErrTypeMismatch)
		require.ErrorIs(entry.SetAttr("mode", nxvalue.Array{}), ErrTypeMismatch)
	})
}

func TestChildren(t *testing.T) {
	require := require.New(t)
	tree := testTree(t)
	beam := newNode(t, tree, "NXbeam")

	t.Run("never set child should be not present", func(t *testing.T) {
		_, err := beam.Child("transformations")
		require.ErrorIs(err, ErrNotPresent)
		_, err = beam.ChildByName("NXtransformations", "primary")
		require.ErrorIs(err, ErrNotPresent)

		all, err := beam.Children("transformations")
		require.NoError(err)
		require.Empty(all)
	})

	t.Run("set default child then get by default name", func(t *testing.T) {
		tx := newNode(t, tree, "NXtransformations")
		require.NoError(beam.SetChild("transformations", tx))

		c1, err := beam.Child("transformations")
		require.NoError(err)
		c2, err := beam.ChildByName("transformations", "transformations")
		require.NoError(err)
		require.Equal(c1, c2)
		require.Equal(tx.ID(), c1.ID())

		require.True(beam.RemoveChild("transformations"))
		require.False(beam.RemoveChild("transformations"))
	})

	t.Run("slot by class name", func(t *testing.T) {
		tx := newNode(t, tree, "NXtransformations")
		require.NoError(beam.SetChildByName("NXtransformations", "primary", tx))

		all, err := beam.Children("transformations")
		require.NoError(err)
		require.Equal(map[string]INode{"primary": tx}, all)
	})

	t.Run("set all replaces all", func(t *testing.T) {
		m1 := map[string]INode{
			"a": newNode(t, tree, "NXtransformations"),
			"b": newNode(t, tree, "NXtransformations"),
		}
		m2 := map[string]INode{
			"b": newNode(t, tree, "NXtransformations"),
			"c": newNode(t, tree, "NXtransformations"),
		}
		require.NoError(beam.SetChildren("transformations", m1))
		all, err := beam.Children("transformations")
		require.NoError(err)
		require.Equal(m1, all)

		require.NoError(beam.SetChildren("transformations", m2))
		all, err = beam.Children("transformations")
		require.NoError(err)
		require.Equal(m2, all)

		require.NoError(beam.SetChildren("transformations", nil))
		require.Empty(beam.ChildNames())
	})

	t.Run("same name and class replaces child", func(t *testing.T) {
		tx1 := newNode(t, tree, "NXtransformations")
		tx2 := newNode(t, tree, "NXtransformations")
		require.NoError(beam.SetChildByName("transformations", "primary", tx1))
		require.NoError(beam.SetChildByName("transformations", "primary", tx2))

		c, err := beam.ChildByName("transformations", "primary")
		require.NoError(err)
		require.Equal(tx2.ID(), c.ID())
	})

	t.Run("undeclared slot of catalog class", func(t *testing.T) {
		note := newNode(t, tree, "NXnote")
		require.NoError(beam.SetChild("NXnote", note))
		require.Equal([]string{"note"}, beam.ChildNames())
		c, err := beam.Child("NXnote")
		require.NoError(err)
		require.Equal(note.ID(), c.ID())
		require.True(beam.RemoveChild("note"))
	})
}

func TestChildErrors(t *testing.T) {
	require := require.New(t)
	tree := testTree(t)
	beam := newNode(t, tree, "NXbeam")
	tx := newNode(t, tree, "NXtransformations")
	note := newNode(t, tree, "NXnote")
	require.NoError(beam.SetChildByName("transformations", "primary", tx))

	t.Run("unknown slot", func(t *testing.T) {
		_, err := beam.Child("NXunknown")
		require.ErrorIs(err, ErrUnknownSlot)
		require.ErrorIs(beam.SetChild("unknown", tx), ErrUnknownSlot)
		_, err = beam.Children("unknown")
		require.ErrorIs(err, ErrUnknownSlot)
		require.ErrorIs(beam.SetChildren("unknown", nil), ErrUnknownSlot)
	})

	t.Run("child of other class should be rejected", func(t *testing.T) {
		require.ErrorIs(beam.SetChild("transformations", note), ErrWrongClass)
		require.ErrorIs(beam.SetChildren("transformations", map[string]INode{"n": note}), ErrWrongClass)
		require.ErrorIs(beam.SetChild("transformations", nil), ErrWrongClass)

		_, err := beam.ChildByName("NXnote", "primary")
		require.ErrorIs(err, ErrWrongClass)
	})

	t.Run("name occupied by child of other class", func(t *testing.T) {
		require.ErrorIs(beam.SetChildByName("NXnote", "primary", note), ErrNameCollision)
		require.ErrorIs(beam.SetChildren("NXnote", map[string]INode{"primary": note}), ErrNameCollision)
	})

	t.Run("name occupied by field", func(t *testing.T) {
		_, err := beam.SetFieldScalar("primary", 1.0)
		require.ErrorIs(err, ErrNameCollision)

		_, err = beam.SetFieldScalar("incident_energy", 1.0)
		require.NoError(err)
		require.ErrorIs(beam.SetChildByName("transformations", "incident_energy", newNode(t, tree, "NXtransformations")), ErrNameCollision)
		require.ErrorIs(beam.SetChildren("transformations", map[string]INode{"incident_energy": tx}), ErrNameCollision)
	})

	t.Run("failed set all keeps children", func(t *testing.T) {
		owner := newNode(t, tree, "NXtransformations")
		require.NoError(owner.SetChildByName("NXbeam", "owner", beam))

		foreign := newNode(t, testTree(t), "NXtransformations")

		tests := []struct {
			name     string
			children map[string]INode
			err      error
		}{
			{"wrong class", map[string]INode{"a": newNode(t, tree, "NXtransformations"), "n": note}, ErrWrongClass},
			{"field name", map[string]INode{"a": newNode(t, tree, "NXtransformations"), "incident_energy": tx}, ErrNameCollision},
			{"cycle", map[string]INode{"a": newNode(t, tree, "NXtransformations"), "b": owner}, ErrCycle},
			{"foreign storage", map[string]INode{"a": newNode(t, tree, "NXtransformations"), "b": foreign}, ErrForeignGroup},
			{"self", map[string]INode{"a": newNode(t, tree, "NXtransformations"), "b": beam}, ErrWrongClass},
		}
		for _, tt := range tests {
			t.Run(tt.name, func(t *testing.T) {
				require.ErrorIs(beam.SetChildren("transformations", tt.children), tt.err)

				all, err := beam.Children("transformations")
				require.NoError(err)
				require.Equal(map[string]INode{"primary": tx}, all)
				require.NotContains(beam.ChildNames(), "a")
			})
		}
	})

	t.Run("cycle", func(t *testing.T) {
		require.ErrorIs(tx.SetChild("NXbeam", beam), ErrCycle)
	})

	t.Run("invalid child name", func(t *testing.T) {
		require.ErrorIs(beam.SetChildByName("transformations", "1st", tx), nxdef.ErrInvalidName)
	})
}

func TestValidationModes(t *testing.T) {
	t.Run("none", func(t *testing.T) {
		require := require.New(t)
		beam := newNode(t, testTree(t, WithValidation(Validation_None)), "NXbeam")

		_, err := beam.SetFieldScalar("incident_energy", "high")
		require.NoError(err)
		_, err = beam.FieldFloat("incident_energy")
		require.ErrorIs(err, ErrTypeMismatch)
		_, err = beam.FieldScalar("incident_energy")
		require.ErrorIs(err, ErrTypeMismatch)

		_, err = beam.SetField("incident_energy", nxvalue.Array{})
		require.ErrorIs(err, ErrTypeMismatch, "null value is never accepted")
	})

	t.Run("types", func(t *testing.T) {
		require := require.New(t)
		beam := newNode(t, testTree(t), "NXbeam")

		_, err := beam.SetFieldScalar("incident_energy", "high")
		require.ErrorIs(err, ErrTypeMismatch)

		_, err = beam.SetFieldScalar("mode", "bogus")
		require.NoError(err)
		_, err = beam.SetFieldScalar("undeclared", 1)
		require.NoError(err)
		require.NoError(beam.SetAttr("undeclared", nxvalue.MustScalar(1)))
	})

	t.Run("strict", func(t *testing.T) {
		tree := testTree(t, WithValidation(Validation_Strict))

		t.Run("undeclared names", func(t *testing.T) {
			require := require.New(t)
			beam := newNode(t, tree, "NXbeam")
			_, err := beam.SetFieldScalar("undeclared", 1)
			require.ErrorIs(err, ErrNotDeclared)
			require.ErrorIs(beam.SetAttr("undeclared", nxvalue.MustScalar(1)), ErrNotDeclared)
			require.ErrorIs(beam.SetChild("NXnote", newNode(t, tree, "NXnote")), ErrUnknownSlot)

			h, err := beam.SetFieldScalar("incident_energy", 12.4)
			require.NoError(err)
			require.NoError(h.SetUnits("keV"))
			require.NoError(h.SetAttr(nxdef.Attr_LongName, nxvalue.MustScalar("Energy")))
			require.ErrorIs(h.SetAttr("offset", nxvalue.MustScalar(1.0)), ErrNotDeclared)
		})

		t.Run("enumerations", func(t *testing.T) {
			require := require.New(t)
			beam := newNode(t, tree, "NXbeam")
			_, err := beam.SetFieldScalar("mode", "bogus")
			require.ErrorIs(err, ErrEnumViolation)
			_, err = beam.SetFieldScalar("mode", "pulsed")
			require.NoError(err)

			entry := newNode(t, tree, "NXentry")
			require.ErrorIs(entry.SetAttr("mode", nxvalue.MustScalar("bogus")), ErrEnumViolation)
			require.NoError(entry.SetAttr("mode", nxvalue.MustScalar("scan")))
		})

		t.Run("dimensions", func(t *testing.T) {
			require := require.New(t)
			beam := newNode(t, tree, "NXbeam")
			_, err := beam.SetField("incident_wavelength", nxvalue.Floats(1, 2, 3))
			require.NoError(err)

			_, err = beam.SetField("incident_energy", nxvalue.Floats(1, 2))
			require.ErrorIs(err, ErrDimMismatch)
			_, err = beam.SetField("incident_energy", nxvalue.Floats(1, 2, 3))
			require.NoError(err)

			pol, err := nxvalue.Floats(1, 0, 0, 1, 1, 1).Reshape(3, 2)
			require.NoError(err)
			_, err = beam.SetField("incident_polarization", pol)
			require.NoError(err)

			_, err = beam.SetField("incident_polarization", nxvalue.Floats(1, 0, 0))
			require.ErrorIs(err, ErrDimMismatch)
		})

		t.Run("max occurs", func(t *testing.T) {
			require := require.New(t)
			entry := newNode(t, tree, "NXentry")
			require.NoError(entry.SetChildByName("data", "d1", newNode(t, tree, "NXdata")))
			require.ErrorIs(entry.SetChildByName("data", "d2", newNode(t, tree, "NXdata")), ErrOccursViolation)
			require.NoError(entry.SetChildByName("data", "d1", newNode(t, tree, "NXdata")), "replace should not exceed max occurs")

			err := entry.SetChildren("data", map[string]INode{
				"d1": newNode(t, tree, "NXdata"),
				"d2": newNode(t, tree, "NXdata"),
			})
			require.ErrorIs(err, ErrOccursViolation)
		})
	})

	t.Run("invalid mode", func(t *testing.T) {
		require.Panics(t, func() { testTree(t, WithValidation(Validation_FakeLast)) })
	})
}

func TestPlaceholderFields(t *testing.T) {
	require := require.New(t)
	tree := testTree(t)
	data := newNode(t, tree, "NXdata")

	h, err := data.SetField("temperature", nxvalue.Floats(300, 301))
	require.NoError(err)
	require.Equal("DATA", h.Def().Name())

	h, err = data.SetField("temperature_errors", nxvalue.Floats(0.1, 0.2))
	require.NoError(err)
	require.Equal("FIELDNAME_errors", h.Def().Name())

	_, err = data.SetField("pressure_errors", nxvalue.Strings("low"))
	require.ErrorIs(err, ErrTypeMismatch)
}

func TestDeprecatedField(t *testing.T) {
	require := require.New(t)
	tr := testTree(t)
	beam := newNode(t, tr, "NXbeam")

	_, err := beam.SetFieldScalar("distance", 2.5)
	require.NoError(err)

	for i := 0; i < 3; i++ {
		d, err := beam.FieldFloat("distance")
		require.NoError(err)
		require.Equal(2.5, d)
	}

	_, warned := tr.(*tree).warned.Load("NXbeam.distance")
	require.True(warned)
	_, warned = tr.(*tree).warned.Load("NXbeam.incident_energy")
	require.False(warned)
}

func TestValidate(t *testing.T) {
	require := require.New(t)
	tree := testTree(t, WithValidation(Validation_None))

	root, err := tree.Root()
	require.NoError(err)

	err = root.Validate()
	require.ErrorIs(err, ErrOccursViolation, "root requires entry")

	entry := newNode(t, tree, "NXentry")
	require.NoError(root.SetChild("entry", entry))
	require.NoError(root.Validate())

	_, err = entry.SetFieldScalar("title", "ok")
	require.NoError(err)
	require.NoError(entry.Validate())

	_, err = entry.SetFieldScalar("undeclared", 1)
	require.NoError(err)
	_, err = entry.SetFieldScalar("run_cycle", "first")
	require.NoError(err)
	require.NoError(entry.SetAttr("mode", nxvalue.MustScalar("bogus")))
	require.NoError(entry.SetChild("NXnote", newNode(t, tree, "NXnote")))
	require.NoError(entry.SetChildByName("data", "d1", newNode(t, tree, "NXdata")))
	require.NoError(entry.SetChildByName("data", "d2", newNode(t, tree, "NXdata")))

	err = entry.Validate()
	require.ErrorIs(err, ErrNotDeclared)
	require.ErrorIs(err, ErrTypeMismatch)
	require.ErrorIs(err, ErrEnumViolation)
	require.ErrorIs(err, ErrOccursViolation)
	require.ErrorContains(err, "undeclared")
	require.ErrorContains(err, "note")

	t.Run("dimensions", func(t *testing.T) {
		beam := newNode(t, tree, "NXbeam")
		_, err := beam.SetField("incident_energy", nxvalue.Floats(1, 2))
		require.NoError(err)
		_, err = beam.SetField("incident_wavelength", nxvalue.Floats(1, 2, 3))
		require.NoError(err)
		require.ErrorIs(beam.Validate(), ErrDimMismatch)

		_, err = beam.SetField("incident_wavelength", nxvalue.Floats(1, 2))
		require.NoError(err)
		require.NoError(beam.Validate())
	})

	t.Run("conflicting field should not bind its other symbols", func(t *testing.T) {
		beam := newNode(t, tree, "NXbeam")
		_, err := beam.SetField("incident_energy", nxvalue.Floats(1, 2))
		require.NoError(err)
		m, err := nxvalue.Floats(1, 2, 3, 4, 5, 6, 7, 8, 9, 10, 11, 12, 13, 14, 15).Reshape(5, 3)
		require.NoError(err)
		_, err = beam.SetField("size_map", m)
		require.NoError(err)
		_, err = beam.SetField("slit_widths", nxvalue.Floats(1, 2, 3, 4))
		require.NoError(err)

		require.Equal(nxdims.Bindings{"i": 2}, beam.(*node).bindings(""))

		err = beam.Validate()
		require.ErrorIs(err, ErrDimMismatch)
		require.ErrorContains(err, "size_map")
		require.NotContains(err.Error(), "slit_widths")
	})
}

func TestFuzzFieldRoundTrip(t *testing.T) {
	require := require.New(t)
	tree := testTree(t)
	note := newNode(t, tree, "NXnote")
	data := newNode(t, tree, "NXdata")
	f := fuzz.New().NilChance(0).NumElements(0, 32)

	for i := 0; i < 100; i++ {
		var (
			text   string
			floats []float64
			ints   []int64
		)
		f.Fuzz(&text)
		f.Fuzz(&floats)
		f.Fuzz(&ints)

		_, err := note.SetFieldScalar("data", text)
		require.NoError(err)
		s, err := note.FieldString("data")
		require.NoError(err)
		require.Equal(text, s)

		_, err = data.SetField("counts", nxvalue.Ints(ints...))
		require.NoError(err)
		got, err := data.Field("counts")
		require.NoError(err)
		gotInts, err := got.AsInts()
		require.NoError(err)
		require.Equal(len(ints), len(gotInts))
		require.True(nxvalue.Ints(ints...).Equal(got))

		_, err = data.SetField("x", nxvalue.Floats(floats...))
		require.NoError(err)
		got, err = data.Field("x")
		require.NoError(err)
		require.True(nxvalue.Floats(floats...).Equal(got))
	}
}
