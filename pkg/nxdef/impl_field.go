/*
 * Copyright (c) 2026-present unTill Software Development Group B.V.
 */

package nxdef

import (
	"fmt"
)

// # Implements:
//   - IField
//   - IFieldBuilder
type field struct {
	withDoc
	ident
	owner      *class
	kind       DataKind
	units      UnitCategory
	dims       []string
	enum       []string
	deprecated string
	attrs      []*attr
}

func newField(owner *class, name string, kind DataKind) *field {
	if kind == DataKind_null || kind >= DataKind_FakeLast {
		panic(enrichError(ErrInvalidDataKind, "%v: field «%s» data kind %v", owner, name, kind))
	}
	return &field{
		ident: makeIdent(name),
		owner: owner,
		kind:  kind,
	}
}

func (f *field) AddAttr(name string, kind DataKind, enum ...string) IFieldBuilder {
	checkNewIdent(f.attrs, name, "attribute", f)
	f.attrs = append(f.attrs, newAttr(name, kind, enum...))
	return f
}

func (f *field) Attr(name string) IAttr {
	if a, ok := findIdent(f.attrs, name); ok {
		return a
	}
	return nil
}

func (f *field) Attrs() []IAttr {
	aa := make([]IAttr, 0, len(f.attrs))
	for _, a := range f.attrs {
		aa = append(aa, a)
	}
	return aa
}

func (f *field) DataKind() DataKind { return f.kind }

func (f *field) Deprecated() string { return f.deprecated }

func (f *field) Dims() []string { return f.dims }

func (f *field) Enum() []string { return f.enum }

func (f *field) SetDeprecated(notice string) IFieldBuilder {
	f.deprecated = notice
	return f
}

func (f *field) SetDims(dims ...string) IFieldBuilder {
	f.dims = append([]string(nil), dims...)
	return f
}

func (f *field) SetDoc(doc string) IFieldBuilder {
	f.setDoc(doc)
	return f
}

func (f *field) SetEnum(values ...string) IFieldBuilder {
	f.enum = append([]string(nil), values...)
	return f
}

func (f *field) SetUnits(units UnitCategory) IFieldBuilder {
	f.units = units
	return f
}

func (f *field) String() string {
	return fmt.Sprintf("%v %s-field «%s»", f.owner, f.kind.TrimString(), f.name)
}

func (f *field) Units() UnitCategory { return f.units }
