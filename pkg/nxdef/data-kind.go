/*
 * Copyright (c) 2026-present unTill Software Development Group B.V.
 */

package nxdef

import (
	"fmt"
	"strconv"
	"strings"
)

//go:generate stringer -type=DataKind -output=stringer_datakind.go

const (
	DataKind_null DataKind = iota
	DataKind_int
	DataKind_uint
	DataKind_float
	DataKind_char
	DataKind_bool
	DataKind_datetime

	// Opaque numeric kind. Accepts int, uint and float values
	DataKind_number

	DataKind_FakeLast
)

// NeXus type names
var nxTypeNames = map[string]DataKind{
	"NX_INT":       DataKind_int,
	"NX_UINT":      DataKind_uint,
	"NX_POSINT":    DataKind_uint,
	"NX_FLOAT":     DataKind_float,
	"NX_CHAR":      DataKind_char,
	"NX_BOOLEAN":   DataKind_bool,
	"NX_DATE_TIME": DataKind_datetime,
	"ISO8601":      DataKind_datetime,
	"NX_NUMBER":    DataKind_number,
}

// Parses data kind from NeXus type name («NX_FLOAT») or from data kind name («float»).
func ParseDataKind(s string) (DataKind, error) {
	if k, ok := nxTypeNames[strings.ToUpper(s)]; ok {
		return k, nil
	}
	for k := DataKind_null + 1; k < DataKind_FakeLast; k++ {
		if k.TrimString() == s {
			return k, nil
		}
	}
	return DataKind_null, fmt.Errorf("unknown data kind «%s»: %w", s, ErrInvalidDataKind)
}

// Returns is data kind is numeric. Numeric kinds are int, uint, float and number.
func (k DataKind) IsNumeric() bool {
	switch k {
	case DataKind_int, DataKind_uint, DataKind_float, DataKind_number:
		return true
	}
	return false
}

// Returns is value of stored data kind is acceptable for field of declared data kind k.
//
//   - number accepts any numeric,
//   - float accepts int and uint,
//   - int accepts uint,
//   - char accepts datetime.
func (k DataKind) IsCompatible(stored DataKind) bool {
	if k == stored {
		return true
	}
	switch k {
	case DataKind_number:
		return stored.IsNumeric()
	case DataKind_float:
		return stored == DataKind_int || stored == DataKind_uint
	case DataKind_int:
		return stored == DataKind_uint
	case DataKind_char:
		return stored == DataKind_datetime
	}
	return false
}

func (k DataKind) MarshalText() ([]byte, error) {
	var s string
	if k < DataKind_FakeLast {
		s = k.String()
	} else {
		const base = 10
		s = strconv.FormatUint(uint64(k), base)
	}
	return []byte(s), nil
}

// Renders an DataKind in human-readable form, without "DataKind_" prefix,
// suitable for debugging or error messages
func (k DataKind) TrimString() string {
	const pref = "DataKind_"
	return strings.TrimPrefix(k.String(), pref)
}

// Returns NeXus type name, like «NX_FLOAT»
func (k DataKind) NXType() string {
	switch k {
	case DataKind_int:
		return "NX_INT"
	case DataKind_uint:
		return "NX_UINT"
	case DataKind_float:
		return "NX_FLOAT"
	case DataKind_char:
		return "NX_CHAR"
	case DataKind_bool:
		return "NX_BOOLEAN"
	case DataKind_datetime:
		return "NX_DATE_TIME"
	case DataKind_number:
		return "NX_NUMBER"
	}
	return k.TrimString()
}
