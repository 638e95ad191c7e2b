/*
 * Copyright (c) 2026-present unTill Software Development Group B.V.
 */

package nxstorage

import (
	"fmt"
	"sync"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/voedger/nxtree/pkg/nxvalue"
)

// TechnologyCompatibilityKit test suit
func TechnologyCompatibilityKit(t *testing.T, provider IProvider) {
	t.Run("TestGroup_Datasets", func(t *testing.T) { testGroup_Datasets(t, provider) })
	t.Run("TestGroup_Attrs", func(t *testing.T) { testGroup_Attrs(t, provider) })
	t.Run("TestGroup_Groups", func(t *testing.T) { testGroup_Groups(t, provider) })
	t.Run("TestGroup_Collisions", func(t *testing.T) { testGroup_Collisions(t, provider) })
	t.Run("TestGroup_Cycles", func(t *testing.T) { testGroup_Cycles(t, provider) })
	t.Run("TestGroup_Concurrent", func(t *testing.T) { testGroup_Concurrent(t, provider) })
}

func testGroup_Datasets(t *testing.T, provider IProvider) {
	require := require.New(t)

	g := provider.NewGroup("NXbeam")
	require.Equal("NXbeam", g.Class())
	require.NotEqual(g.ID(), provider.NewGroup("NXbeam").ID())

	_, ok := g.Dataset("energy")
	require.False(ok)

	ds, err := g.PutDataset("energy", nxvalue.Floats(1, 2))
	require.NoError(err)
	require.Equal("energy", ds.Name())
	require.True(nxvalue.Floats(1, 2).Equal(ds.Value()))

	ds.PutAttr("units", nxvalue.MustScalar("keV"))

	t.Run("overwrite should replace value and keep attributes", func(t *testing.T) {
		ds2, err := g.PutDataset("energy", nxvalue.MustScalar(3.0))
		require.NoError(err)
		require.True(nxvalue.MustScalar(3.0).Equal(ds2.Value()))
		require.True(nxvalue.MustScalar(3.0).Equal(ds.Value()), "old handle should observe new value")

		u, ok := ds2.Attr("units")
		require.True(ok)
		require.True(nxvalue.MustScalar("keV").Equal(u))
		require.Equal([]string{"units"}, ds2.AttrNames())
	})

	_, err = g.PutDataset("a_first", nxvalue.Ints(1))
	require.NoError(err)
	require.Equal([]string{"a_first", "energy"}, g.DatasetNames())

	require.True(g.RemoveDataset("energy"))
	require.False(g.RemoveDataset("energy"))
	_, ok = g.Dataset("energy")
	require.False(ok)

	_, err = g.PutDataset("", nxvalue.Ints(1))
	require.ErrorIs(err, ErrNameMissed)
}

func testGroup_Attrs(t *testing.T, provider IProvider) {
	require := require.New(t)

	g := provider.NewGroup("NXentry")
	_, ok := g.Attr("default")
	require.False(ok)

	g.PutAttr("default", nxvalue.MustScalar("data"))
	g.PutAttr("default", nxvalue.MustScalar("data2"))
	g.PutAttr("NX_class", nxvalue.MustScalar("NXentry"))

	v, ok := g.Attr("default")
	require.True(ok)
	require.True(nxvalue.MustScalar("data2").Equal(v))
	require.Equal([]string{"NX_class", "default"}, g.AttrNames())

	t.Run("attributes and datasets should have separate namespaces", func(t *testing.T) {
		_, err := g.PutDataset("default", nxvalue.Ints(1))
		require.NoError(err)
		_, ok := g.Attr("default")
		require.True(ok)
	})

	require.True(g.RemoveAttr("default"))
	require.False(g.RemoveAttr("default"))
	require.Equal([]string{"NX_class"}, g.AttrNames())
}

func testGroup_Groups(t *testing.T, provider IProvider) {
	require := require.New(t)

	entry := provider.NewGroup("NXentry")
	data1 := provider.NewGroup("NXdata")
	data2 := provider.NewGroup("NXdata")

	require.NoError(entry.AttachGroup("data", data1))
	g, ok := entry.Group("data")
	require.True(ok)
	require.Equal(data1.ID(), g.ID())

	t.Run("same class group should be replaced", func(t *testing.T) {
		require.NoError(entry.AttachGroup("data", data2))
		g, ok := entry.Group("data")
		require.True(ok)
		require.Equal(data2.ID(), g.ID())
	})

	require.NoError(entry.AttachGroup("data1", data1))
	require.Equal([]string{"data", "data1"}, entry.GroupNames())

	t.Run("group may be attached to many parents", func(t *testing.T) {
		other := provider.NewGroup("NXentry")
		require.NoError(other.AttachGroup("linked", data1))
		g, _ := other.Group("linked")
		require.Equal(data1.ID(), g.ID())
	})

	require.True(entry.RemoveGroup("data"))
	require.False(entry.RemoveGroup("data"))
	require.Equal([]string{"data1"}, entry.GroupNames())

	require.ErrorIs(entry.AttachGroup("", data1), ErrNameMissed)
}

func testGroup_Collisions(t *testing.T, provider IProvider) {
	require := require.New(t)

	entry := provider.NewGroup("NXentry")
	_, err := entry.PutDataset("title", nxvalue.Strings("run 1"))
	require.NoError(err)

	err = entry.AttachGroup("title", provider.NewGroup("NXnote"))
	require.ErrorIs(err, ErrNameCollision)

	require.NoError(entry.AttachGroup("sample", provider.NewGroup("NXsample")))
	_, err = entry.PutDataset("sample", nxvalue.Ints(1))
	require.ErrorIs(err, ErrNameCollision)

	err = entry.AttachGroup("sample", provider.NewGroup("NXdata"))
	require.ErrorIs(err, ErrNameCollision)
	require.ErrorContains(err, "NXsample")

	require.ErrorIs(entry.CanAttach("title", provider.NewGroup("NXnote")), ErrNameCollision)
	require.ErrorIs(entry.CanAttach("sample", provider.NewGroup("NXdata")), ErrNameCollision)
	require.NoError(entry.CanAttach("sample", provider.NewGroup("NXsample")))
	require.ErrorIs(entry.CanAttach("", provider.NewGroup("NXsample")), ErrNameMissed)
}

func testGroup_Cycles(t *testing.T, provider IProvider) {
	require := require.New(t)

	a := provider.NewGroup("NXentry")
	b := provider.NewGroup("NXinstrument")
	c := provider.NewGroup("NXdetector")

	require.NoError(a.AttachGroup("b", b))
	require.NoError(b.AttachGroup("c", c))

	require.ErrorIs(a.AttachGroup("self", a), ErrCycle)
	require.ErrorIs(c.AttachGroup("a", a), ErrCycle)
	require.ErrorIs(c.AttachGroup("b", b), ErrCycle)

	require.NoError(a.AttachGroup("c", c), "diamond is not a cycle")

	t.Run("dry run should report cycle and change nothing", func(t *testing.T) {
		require.ErrorIs(c.CanAttach("a", a), ErrCycle)
		require.Empty(c.GroupNames())

		d := provider.NewGroup("NXdetector")
		require.NoError(c.CanAttach("d", d))
		require.Empty(c.GroupNames())
	})
}

func testGroup_Concurrent(t *testing.T, provider IProvider) {
	require := require.New(t)

	g := provider.NewGroup("NXlog")
	const workers, count = 8, 100

	wg := sync.WaitGroup{}
	for w := 0; w < workers; w++ {
		wg.Add(1)
		go func(w int) {
			defer wg.Done()
			for i := 0; i < count; i++ {
				name := fmt.Sprintf("v_%d_%d", w, i)
				ds, err := g.PutDataset(name, nxvalue.Ints(int64(i)))
				if err != nil {
					panic(err)
				}
				ds.PutAttr("units", nxvalue.MustScalar("s"))
				_ = g.DatasetNames()
				g.PutAttr("count", nxvalue.MustScalar(i))
			}
		}(w)
	}
	wg.Wait()

	require.Len(g.DatasetNames(), workers*count)
}
