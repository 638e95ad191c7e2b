/*
 * Copyright (c) 2026-present unTill Software Development Group B.V.
 */

package mem

import (
	"fmt"
	"sync"

	"github.com/google/uuid"
	"golang.org/x/exp/maps"
	"golang.org/x/exp/slices"

	"github.com/voedger/nxtree/pkg/nxstorage"
	"github.com/voedger/nxtree/pkg/nxvalue"
)

// In-memory storage. One lock guards all groups created by provider.
//
// # Implements:
//   - nxstorage.IProvider
type provider struct {
	lock sync.RWMutex
}

func (p *provider) NewGroup(class string) nxstorage.IGroup {
	return &group{
		p:        p,
		id:       uuid.New(),
		class:    class,
		datasets: make(map[string]*dataset),
		attrs:    make(map[string]nxvalue.Array),
		groups:   make(map[string]*group),
	}
}

// # Implements:
//   - nxstorage.IGroup
type group struct {
	p        *provider
	id       uuid.UUID
	class    string
	datasets map[string]*dataset
	attrs    map[string]nxvalue.Array
	groups   map[string]*group
}

func (g *group) AttachGroup(name string, child nxstorage.IGroup) error {
	c, err := g.attachable(name, child)
	if err != nil {
		return err
	}

	g.p.lock.Lock()
	defer g.p.lock.Unlock()

	if err := g.checkAttach(name, c); err != nil {
		return err
	}
	g.groups[name] = c
	return nil
}

func (g *group) CanAttach(name string, child nxstorage.IGroup) error {
	c, err := g.attachable(name, child)
	if err != nil {
		return err
	}

	g.p.lock.RLock()
	defer g.p.lock.RUnlock()

	return g.checkAttach(name, c)
}

// Checks name and provider of child, no lock required
func (g *group) attachable(name string, child nxstorage.IGroup) (*group, error) {
	if name == "" {
		return nil, fmt.Errorf("%v child group: %w", g, nxstorage.ErrNameMissed)
	}
	c, ok := child.(*group)
	if !ok || c.p != g.p {
		return nil, fmt.Errorf("%v child «%s»: %w", g, name, nxstorage.ErrForeignGroup)
	}
	return c, nil
}

// Checks name collisions and cycles. Should be called under lock
func (g *group) checkAttach(name string, c *group) error {
	if _, ok := g.datasets[name]; ok {
		return fmt.Errorf("%v child «%s» of class %s: name is occupied by dataset: %w", g, name, c.class, nxstorage.ErrNameCollision)
	}
	if exists, ok := g.groups[name]; ok && exists.class != c.class {
		return fmt.Errorf("%v child «%s» of class %s: name is occupied by group of class %s: %w", g, name, c.class, exists.class, nxstorage.ErrNameCollision)
	}
	if c == g || c.reaches(g, map[*group]bool{}) {
		return fmt.Errorf("%v child «%s»: %v is ancestor: %w", g, name, c, nxstorage.ErrCycle)
	}
	return nil
}

func (g *group) Attr(name string) (nxvalue.Array, bool) {
	g.p.lock.RLock()
	defer g.p.lock.RUnlock()

	v, ok := g.attrs[name]
	return v, ok
}

func (g *group) AttrNames() []string {
	g.p.lock.RLock()
	defer g.p.lock.RUnlock()

	return sortedKeys(g.attrs)
}

func (g *group) Class() string { return g.class }

func (g *group) Dataset(name string) (nxstorage.IDataset, bool) {
	g.p.lock.RLock()
	defer g.p.lock.RUnlock()

	if ds, ok := g.datasets[name]; ok {
		return ds, true
	}
	return nil, false
}

func (g *group) DatasetNames() []string {
	g.p.lock.RLock()
	defer g.p.lock.RUnlock()

	return sortedKeys(g.datasets)
}

func (g *group) Group(name string) (nxstorage.IGroup, bool) {
	g.p.lock.RLock()
	defer g.p.lock.RUnlock()

	if c, ok := g.groups[name]; ok {
		return c, true
	}
	return nil, false
}

func (g *group) GroupNames() []string {
	g.p.lock.RLock()
	defer g.p.lock.RUnlock()

	return sortedKeys(g.groups)
}

func (g *group) ID() uuid.UUID { return g.id }

func (g *group) PutAttr(name string, value nxvalue.Array) {
	g.p.lock.Lock()
	defer g.p.lock.Unlock()

	g.attrs[name] = value
}

func (g *group) PutDataset(name string, value nxvalue.Array) (nxstorage.IDataset, error) {
	if name == "" {
		return nil, fmt.Errorf("%v dataset: %w", g, nxstorage.ErrNameMissed)
	}

	g.p.lock.Lock()
	defer g.p.lock.Unlock()

	if c, ok := g.groups[name]; ok {
		return nil, fmt.Errorf("%v dataset «%s»: name is occupied by group of class %s: %w", g, name, c.class, nxstorage.ErrNameCollision)
	}

	ds, ok := g.datasets[name]
	if !ok {
		ds = &dataset{
			p:     g.p,
			name:  name,
			attrs: make(map[string]nxvalue.Array),
		}
		g.datasets[name] = ds
	}
	ds.value = value
	return ds, nil
}

func (g *group) RemoveAttr(name string) bool {
	g.p.lock.Lock()
	defer g.p.lock.Unlock()

	_, ok := g.attrs[name]
	delete(g.attrs, name)
	return ok
}

func (g *group) RemoveDataset(name string) bool {
	g.p.lock.Lock()
	defer g.p.lock.Unlock()

	_, ok := g.datasets[name]
	delete(g.datasets, name)
	return ok
}

func (g *group) RemoveGroup(name string) bool {
	g.p.lock.Lock()
	defer g.p.lock.Unlock()

	_, ok := g.groups[name]
	delete(g.groups, name)
	return ok
}

func (g *group) String() string {
	return fmt.Sprintf("%s group %v", g.class, g.id)
}

// Returns is target is reachable from group. Should be called under lock
func (g *group) reaches(target *group, visited map[*group]bool) bool {
	if visited[g] {
		return false
	}
	visited[g] = true
	for _, c := range g.groups {
		if c == target || c.reaches(target, visited) {
			return true
		}
	}
	return false
}

// # Implements:
//   - nxstorage.IDataset
type dataset struct {
	p     *provider
	name  string
	value nxvalue.Array
	attrs map[string]nxvalue.Array
}

func (ds *dataset) Attr(name string) (nxvalue.Array, bool) {
	ds.p.lock.RLock()
	defer ds.p.lock.RUnlock()

	v, ok := ds.attrs[name]
	return v, ok
}

func (ds *dataset) AttrNames() []string {
	ds.p.lock.RLock()
	defer ds.p.lock.RUnlock()

	return sortedKeys(ds.attrs)
}

func (ds *dataset) Name() string { return ds.name }

func (ds *dataset) PutAttr(name string, value nxvalue.Array) {
	ds.p.lock.Lock()
	defer ds.p.lock.Unlock()

	ds.attrs[name] = value
}

func (ds *dataset) Value() nxvalue.Array {
	ds.p.lock.RLock()
	defer ds.p.lock.RUnlock()

	return ds.value
}

func sortedKeys[V any](m map[string]V) []string {
	keys := maps.Keys(m)
	slices.Sort(keys)
	return keys
}
