/*
 * Copyright (c) 2026-present unTill Software Development Group B.V.
 */

package nxdef

// Maximum identifier length
const MaxIdentLen = 255

// Class name prefix
const ClassNamePrefix = "NX"

// Well known attribute names
const (
	Attr_Units    = "units"
	Attr_LongName = "long_name"
	Attr_NXClass  = "NX_class"
	Attr_Default  = "default"
)
