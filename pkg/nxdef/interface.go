/*
 * Copyright (c) 2026-present unTill Software Development Group B.V.
 */

package nxdef

// Logical type of field or attribute value.
//
// Ref. data-kind.go for constants and methods
type DataKind uint8

// Numeric with Occurs_Unbounded value.
//
// Ref. occurs.go for constants and methods
type Occurs uint16

// Name type of field: fixed name or free-form placeholder.
//
// Ref. name-type.go for constants and methods
type NameType uint8

// Class category enumeration.
//
// Ref. class-category.go for constants and methods
type ClassCategory uint8

// Physical unit category, documentation only.
//
// Ref. units.go for constants
type UnitCategory string

type IWithDoc interface {
	// Returns documentation text. Empty if no documentation.
	Doc() string
}

// Attribute definition.
//
// Attribute is a named scalar annotation on a group or on a field.
type IAttr interface {
	IWithDoc

	Name() string

	DataKind() DataKind

	// Returns legal values. Empty if attribute value is not enumerated.
	Enum() []string
}

// Field (dataset) definition.
//
// Ref. impl_field.go for implementation
type IField interface {
	IWithDoc

	// Returns declared field name.
	//
	// For free-form fields name is a placeholder like «AXISNAME» or «FIELDNAME_errors»
	Name() string

	NameType() NameType

	// Returns is specified instance name matches field name.
	//
	// For fixed name fields returns true if names are equal.
	// For free-form fields uppercase segments of declared name match any identifier chars.
	Match(name string) bool

	DataKind() DataKind

	// Returns physical unit category. Empty if units are not specified.
	Units() UnitCategory

	// Returns symbolic dimension expressions, one per array dimension.
	//
	// Returns nil if field dimensions are not specified
	Dims() []string

	// Returns legal values. Empty if field value is not enumerated.
	Enum() []string

	// Returns deprecation notice. Empty if field is not deprecated.
	Deprecated() string

	// Returns field attribute by name, nil if not found
	Attr(name string) IAttr

	// Returns field attributes in add order
	Attrs() []IAttr
}

// Child group slot definition.
//
// Slot allows a group to own zero, one or many child groups of fixed class.
type ISlot interface {
	IWithDoc

	// Returns slot name. Slot name is default child name.
	Name() string

	// Returns class of children.
	Class() IClass

	MinOccurs() Occurs

	MaxOccurs() Occurs
}

// Schema class definition.
//
// Ref. impl_class.go for implementation
type IClass interface {
	IWithDoc

	// Returns class name, like «NXbeam»
	Name() string

	Category() ClassCategory

	// Returns ancestor class, nil if class has no ancestor
	Extends() IClass

	// Returns is class is specified class or descendant of specified class.
	Is(name string) bool

	// Finds field definition by instance name.
	//
	// Fixed name fields are matched first, then free-form fields, most specific first.
	// Ancestor fields are inspected after own fields.
	// Returns nil if not found.
	Field(name string) IField

	// Returns all fields, ancestor fields first
	Fields() []IField

	// Finds group attribute by name. Returns nil if not found.
	Attr(name string) IAttr

	// Returns all group attributes, ancestor attributes first
	Attrs() []IAttr

	// Finds slot by slot name or by children class name.
	//
	// Returns nil if not found.
	Slot(name string) ISlot

	// Returns all slots, ancestor slots first
	Slots() []ISlot
}

// Classes catalog.
//
// Ref. impl_classes.go for implementation
type IClasses interface {
	// Finds class by name.
	//
	// Lookup is case insensitive and «NX» prefix is optional, so «NXbeam», «nxbeam» and «beam» are the same.
	// Returns nil if not found.
	Class(name string) IClass

	ClassCount() int

	// Returns all classes sorted by name
	Classes() []IClass
}

// Classes catalog builder.
//
// Ref. impl_classes.go for implementation
type IClassesBuilder interface {
	// Adds new class.
	//
	// # Panics:
	//   - if name is empty or invalid,
	//   - if class with name already exists.
	AddClass(name string, category ClassCategory) IClassBuilder

	// Returns builder for existing class, nil if not found
	ClassBuilder(name string) IClassBuilder

	// Checks and returns classes catalog.
	//
	// Returns error if some slot class or ancestor not found or if inheritance is cyclic.
	Build() (IClasses, error)

	// Same as Build, but panics if error.
	MustBuild() IClasses
}

type IClassBuilder interface {
	SetDoc(doc string) IClassBuilder

	// Sets ancestor class name. Ancestor is resolved by Build.
	SetExtends(ancestor string) IClassBuilder

	// Adds new field.
	//
	// Names with uppercase letters are free-form placeholders.
	//
	// # Panics:
	//   - if name is empty or invalid,
	//   - if field with name already exists,
	//   - if data kind is invalid.
	AddField(name string, kind DataKind) IFieldBuilder

	// Adds new group attribute.
	//
	// # Panics:
	//   - if name is empty or invalid,
	//   - if attribute with name already exists,
	//   - if data kind is invalid.
	AddAttr(name string, kind DataKind, enum ...string) IClassBuilder

	// Adds new slot for children of specified class.
	//
	// If name is empty, then class name without «NX» prefix is used.
	// Class is resolved by Build.
	//
	// # Panics:
	//   - if name is invalid,
	//   - if slot with name already exists,
	//   - if maxOccurs is zero or less then minOccurs.
	AddSlot(name, class string, minOccurs, maxOccurs Occurs) IClassBuilder
}

type IFieldBuilder interface {
	SetDoc(doc string) IFieldBuilder

	SetUnits(units UnitCategory) IFieldBuilder

	// Sets symbolic dimension expressions, one per dimension.
	SetDims(dims ...string) IFieldBuilder

	SetEnum(values ...string) IFieldBuilder

	SetDeprecated(notice string) IFieldBuilder

	// Adds new field attribute.
	//
	// # Panics:
	//   - if name is empty or invalid,
	//   - if attribute with name already exists,
	//   - if data kind is invalid.
	AddAttr(name string, kind DataKind, enum ...string) IFieldBuilder
}
