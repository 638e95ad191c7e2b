/*
 * Copyright (c) 2026-present unTill Software Development Group B.V.
 */

package nxdef

import (
	"errors"
	"fmt"
)

// # Implements:
//   - IClass
//   - IClassBuilder
type class struct {
	withDoc
	classes     *classes
	name        string
	category    ClassCategory
	extendsName string
	extends     *class
	fields      []*field
	attrs       []*attr
	slots       []*slot
}

func newClass(classes *classes, name string, category ClassCategory) *class {
	if ok, err := ValidIdent(name); !ok {
		panic(fmt.Errorf("class name: %w", err))
	}
	if category == ClassCategory_null || category >= ClassCategory_FakeLast {
		panic(enrichError(ErrInvalidClassCategory, "class «%s» category %v", name, category))
	}
	return &class{
		classes:  classes,
		name:     name,
		category: category,
	}
}

func (c *class) AddAttr(name string, kind DataKind, enum ...string) IClassBuilder {
	checkNewIdent(c.attrs, name, "attribute", c)
	c.attrs = append(c.attrs, newAttr(name, kind, enum...))
	return c
}

func (c *class) AddField(name string, kind DataKind) IFieldBuilder {
	checkNewIdent(c.fields, name, "field", c)
	f := newField(c, name, kind)
	c.fields = append(c.fields, f)
	return f
}

func (c *class) AddSlot(name, className string, minOccurs, maxOccurs Occurs) IClassBuilder {
	if name == "" {
		name = defaultSlotName(className)
	}
	if ok, err := ValidIdent(name); !ok {
		panic(fmt.Errorf("%v: slot name: %w", c, err))
	}
	for _, s := range c.slots {
		if s.name == name {
			panic(enrichError(ErrNameUniqueViolation, "%v: slot «%s» already exists", c, name))
		}
	}
	c.slots = append(c.slots, newSlot(c, name, className, minOccurs, maxOccurs))
	return c
}

func (c *class) Attr(name string) IAttr {
	for cls := c; cls != nil; cls = cls.extends {
		if a, ok := findIdent(cls.attrs, name); ok {
			return a
		}
	}
	return nil
}

func (c *class) Attrs() []IAttr {
	var aa []IAttr
	if c.extends != nil {
		aa = c.extends.Attrs()
	}
	for _, a := range c.attrs {
		aa = append(aa, a)
	}
	return aa
}

func (c *class) Category() ClassCategory { return c.category }

func (c *class) Extends() IClass {
	if c.extends == nil {
		return nil
	}
	return c.extends
}

func (c *class) Field(name string) IField {
	for cls := c; cls != nil; cls = cls.extends {
		if f, ok := findIdent(cls.fields, name); ok {
			return f
		}
	}
	return nil
}

func (c *class) Fields() []IField {
	var ff []IField
	if c.extends != nil {
		ff = c.extends.Fields()
	}
	for _, f := range c.fields {
		ff = append(ff, f)
	}
	return ff
}

func (c *class) Is(name string) bool {
	key := classKey(name)
	for cls := c; cls != nil; cls = cls.extends {
		if classKey(cls.name) == key {
			return true
		}
	}
	return false
}

func (c *class) Name() string { return c.name }

func (c *class) SetDoc(doc string) IClassBuilder {
	c.setDoc(doc)
	return c
}

func (c *class) SetExtends(ancestor string) IClassBuilder {
	c.extendsName = ancestor
	return c
}

func (c *class) Slot(name string) ISlot {
	for cls := c; cls != nil; cls = cls.extends {
		for _, s := range cls.slots {
			if s.name == name {
				return s
			}
		}
	}
	for cls := c; cls != nil; cls = cls.extends {
		for _, s := range cls.slots {
			if s.className == name {
				return s
			}
		}
	}
	return nil
}

func (c *class) Slots() []ISlot {
	var ss []ISlot
	if c.extends != nil {
		ss = c.extends.Slots()
	}
	for _, s := range c.slots {
		ss = append(ss, s)
	}
	return ss
}

func (c *class) String() string {
	return fmt.Sprintf("%s-class «%s»", c.category.TrimString(), c.name)
}

// Resolves ancestor and slot classes
func (c *class) resolve() (err error) {
	var errs []error

	if c.extendsName != "" {
		if c.extends = c.classes.find(c.extendsName); c.extends == nil {
			errs = append(errs, enrichError(ErrNameNotFound, "%v: ancestor class «%s»", c, c.extendsName))
		}
	}

	for _, s := range c.slots {
		if s.class = c.classes.find(s.className); s.class == nil {
			errs = append(errs, enrichError(ErrNameNotFound, "%v: class «%s»", s, s.className))
		}
	}

	return errors.Join(errs...)
}

// Checks ancestor chain has no cycles
func (c *class) checkInheritance() error {
	visited := map[*class]bool{}
	for cls := c; cls != nil; cls = cls.extends {
		if visited[cls] {
			return enrichError(ErrCyclicInheritance, "%v", c)
		}
		visited[cls] = true
	}
	return nil
}
