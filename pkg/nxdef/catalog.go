/*
 * Copyright (c) 2026-present unTill Software Development Group B.V.
 */

package nxdef

import (
	"fmt"
	"io"

	"gopkg.in/yaml.v2"
)

// YAML catalog document
type catalogYAML struct {
	Classes []classYAML `yaml:"classes"`
}

type classYAML struct {
	Name     string      `yaml:"name"`
	Category string      `yaml:"category,omitempty"`
	Extends  string      `yaml:"extends,omitempty"`
	Doc      string      `yaml:"doc,omitempty"`
	Attrs    []attrYAML  `yaml:"attrs,omitempty"`
	Fields   []fieldYAML `yaml:"fields,omitempty"`
	Groups   []slotYAML  `yaml:"groups,omitempty"`
}

type attrYAML struct {
	Name string   `yaml:"name"`
	Type string   `yaml:"type"`
	Doc  string   `yaml:"doc,omitempty"`
	Enum []string `yaml:"enum,omitempty"`
}

type fieldYAML struct {
	Name       string     `yaml:"name"`
	Type       string     `yaml:"type"`
	Units      string     `yaml:"units,omitempty"`
	Dims       []string   `yaml:"dims,omitempty"`
	Enum       []string   `yaml:"enum,omitempty"`
	Deprecated string     `yaml:"deprecated,omitempty"`
	Doc        string     `yaml:"doc,omitempty"`
	Attrs      []attrYAML `yaml:"attrs,omitempty"`
}

type slotYAML struct {
	Name      string  `yaml:"name,omitempty"`
	Type      string  `yaml:"type"`
	MinOccurs *Occurs `yaml:"minOccurs,omitempty"`
	MaxOccurs *Occurs `yaml:"maxOccurs,omitempty"`
}

// Reads classes from YAML catalog and adds them to builder.
//
// Category «application» is used if class category is omitted.
// Slot occurs defaults are zero and unbounded.
// Whole catalog is checked first, so on error builder is not changed.
func ReadCatalog(r io.Reader, builder IClassesBuilder) error {
	doc := catalogYAML{}
	if err := yaml.NewDecoder(r).Decode(&doc); err != nil {
		return fmt.Errorf("can not decode catalog: %w", err)
	}

	for _, c := range doc.Classes {
		if exists := builder.ClassBuilder(c.Name); exists != nil {
			return enrichError(ErrNameUniqueViolation, "invalid catalog: class «%s» already exists as %v", c.Name, exists)
		}
	}
	if err := addCatalogYAML(New(), doc); err != nil {
		return err
	}
	return addCatalogYAML(builder, doc)
}

func addCatalogYAML(builder IClassesBuilder, doc catalogYAML) (err error) {
	defer func() {
		if r := recover(); r != nil {
			if e, ok := r.(error); ok {
				err = fmt.Errorf("invalid catalog: %w", e)
				return
			}
			err = fmt.Errorf("invalid catalog: %v", r)
		}
	}()

	for _, c := range doc.Classes {
		if err := addClassYAML(builder, c); err != nil {
			return err
		}
	}
	return nil
}

func addClassYAML(builder IClassesBuilder, c classYAML) error {
	category := ClassCategory_application
	if c.Category != "" {
		var err error
		if category, err = ParseClassCategory(c.Category); err != nil {
			return fmt.Errorf("class «%s»: %w", c.Name, err)
		}
	}

	cls := builder.AddClass(c.Name, category)
	cls.SetDoc(c.Doc)
	if c.Extends != "" {
		cls.SetExtends(c.Extends)
	}

	for _, a := range c.Attrs {
		kind, err := ParseDataKind(a.Type)
		if err != nil {
			return fmt.Errorf("class «%s» attribute «%s»: %w", c.Name, a.Name, err)
		}
		cls.AddAttr(a.Name, kind, a.Enum...)
	}

	for _, f := range c.Fields {
		kind, err := ParseDataKind(f.Type)
		if err != nil {
			return fmt.Errorf("class «%s» field «%s»: %w", c.Name, f.Name, err)
		}
		fld := cls.AddField(f.Name, kind).
			SetDoc(f.Doc).
			SetUnits(UnitCategory(f.Units))
		if len(f.Dims) > 0 {
			fld.SetDims(f.Dims...)
		}
		if len(f.Enum) > 0 {
			fld.SetEnum(f.Enum...)
		}
		if f.Deprecated != "" {
			fld.SetDeprecated(f.Deprecated)
		}
		for _, a := range f.Attrs {
			kind, err := ParseDataKind(a.Type)
			if err != nil {
				return fmt.Errorf("class «%s» field «%s» attribute «%s»: %w", c.Name, f.Name, a.Name, err)
			}
			fld.AddAttr(a.Name, kind, a.Enum...)
		}
	}

	for _, s := range c.Groups {
		minOccurs, maxOccurs := Occurs(0), Occurs_Unbounded
		if s.MinOccurs != nil {
			minOccurs = *s.MinOccurs
		}
		if s.MaxOccurs != nil {
			maxOccurs = *s.MaxOccurs
		}
		cls.AddSlot(s.Name, s.Type, minOccurs, maxOccurs)
	}

	return nil
}

// Writes classes to YAML catalog.
func WriteCatalog(w io.Writer, classes ...IClass) error {
	doc := catalogYAML{}
	for _, c := range classes {
		doc.Classes = append(doc.Classes, classToYAML(c))
	}
	enc := yaml.NewEncoder(w)
	if err := enc.Encode(&doc); err != nil {
		return err
	}
	return enc.Close()
}

func classToYAML(c IClass) classYAML {
	y := classYAML{
		Name:     c.Name(),
		Category: c.Category().TrimString(),
		Doc:      c.Doc(),
	}
	if anc := c.Extends(); anc != nil {
		y.Extends = anc.Name()
	}

	for _, a := range c.Attrs() {
		if anc := c.Extends(); anc != nil && anc.Attr(a.Name()) == a {
			continue
		}
		y.Attrs = append(y.Attrs, attrToYAML(a))
	}

	for _, f := range c.Fields() {
		if anc := c.Extends(); anc != nil && anc.Field(f.Name()) == f {
			continue
		}
		fy := fieldYAML{
			Name:       f.Name(),
			Type:       f.DataKind().NXType(),
			Units:      string(f.Units()),
			Dims:       f.Dims(),
			Enum:       f.Enum(),
			Deprecated: f.Deprecated(),
			Doc:        f.Doc(),
		}
		for _, a := range f.Attrs() {
			fy.Attrs = append(fy.Attrs, attrToYAML(a))
		}
		y.Fields = append(y.Fields, fy)
	}

	for _, s := range c.Slots() {
		if anc := c.Extends(); anc != nil && anc.Slot(s.Name()) == s {
			continue
		}
		minOccurs, maxOccurs := s.MinOccurs(), s.MaxOccurs()
		sy := slotYAML{Name: s.Name(), MaxOccurs: &maxOccurs}
		if cls := s.Class(); cls != nil {
			sy.Type = cls.Name()
		}
		if minOccurs > 0 {
			sy.MinOccurs = &minOccurs
		}
		y.Groups = append(y.Groups, sy)
	}

	return y
}

func attrToYAML(a IAttr) attrYAML {
	return attrYAML{
		Name: a.Name(),
		Type: a.DataKind().NXType(),
		Doc:  a.Doc(),
		Enum: a.Enum(),
	}
}
