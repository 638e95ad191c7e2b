/*
 * Copyright (c) 2026-present unTill Software Development Group B.V.
 */

package nxdef

import (
	"errors"

	"golang.org/x/exp/maps"
	"golang.org/x/exp/slices"

	"github.com/voedger/nxtree/pkg/objcache"
)

// # Implements:
//   - IClasses
//   - IClassesBuilder
type classes struct {
	classes map[string]*class
	cache   objcache.ICache[string, *class]
}

func newClasses() *classes {
	return &classes{
		classes: make(map[string]*class),
		cache:   objcache.NewUnbounded[string, *class](),
	}
}

func (cc *classes) AddClass(name string, category ClassCategory) IClassBuilder {
	c := newClass(cc, name, category)
	key := classKey(name)
	if exists, ok := cc.classes[key]; ok {
		panic(enrichError(ErrNameUniqueViolation, "class «%s» already exists as %v", name, exists))
	}
	cc.classes[key] = c
	return c
}

func (cc *classes) Build() (IClasses, error) {
	var errs []error
	for _, c := range cc.ordered() {
		if err := c.resolve(); err != nil {
			errs = append(errs, err)
		}
	}
	if len(errs) == 0 {
		for _, c := range cc.ordered() {
			if err := c.checkInheritance(); err != nil {
				errs = append(errs, err)
			}
		}
	}
	if err := errors.Join(errs...); err != nil {
		return nil, err
	}
	return cc, nil
}

func (cc *classes) Class(name string) IClass {
	if c := cc.find(name); c != nil {
		return c
	}
	return nil
}

func (cc *classes) ClassBuilder(name string) IClassBuilder {
	if c := cc.find(name); c != nil {
		return c
	}
	return nil
}

func (cc *classes) ClassCount() int {
	return len(cc.classes)
}

func (cc *classes) Classes() []IClass {
	list := make([]IClass, 0, len(cc.classes))
	for _, c := range cc.ordered() {
		list = append(list, c)
	}
	return list
}

func (cc *classes) MustBuild() IClasses {
	c, err := cc.Build()
	if err != nil {
		panic(err)
	}
	return c
}

func (cc *classes) find(name string) *class {
	if c, ok := cc.cache.Get(name); ok {
		return c
	}
	c, ok := cc.classes[classKey(name)]
	if ok {
		cc.cache.Put(name, c)
	}
	return c
}

// Returns classes sorted by case folded name
func (cc *classes) ordered() []*class {
	keys := maps.Keys(cc.classes)
	slices.Sort(keys)
	list := make([]*class, 0, len(keys))
	for _, k := range keys {
		list = append(list, cc.classes[k])
	}
	return list
}
