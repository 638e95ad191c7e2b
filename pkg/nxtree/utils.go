/*
 * Copyright (c) 2026-present unTill Software Development Group B.V.
 */

package nxtree

import (
	"strconv"
	"time"

	"github.com/voedger/nxtree/pkg/nxdef"
	"github.com/voedger/nxtree/pkg/nxvalue"
)

// Field attributes declared for every field
var implicitFieldAttrs = map[string]nxdef.IAttr{
	nxdef.Attr_Units:    implicitAttr{nxdef.Attr_Units},
	nxdef.Attr_LongName: implicitAttr{nxdef.Attr_LongName},
}

type implicitAttr struct{ name string }

func (a implicitAttr) Doc() string              { return "" }
func (a implicitAttr) Name() string             { return a.name }
func (a implicitAttr) DataKind() nxdef.DataKind { return nxdef.DataKind_char }
func (a implicitAttr) Enum() []string           { return nil }

// Returns array elements as strings to compare with enumeration
func enumValues(v nxvalue.Array) []string {
	switch v.Kind() {
	case nxdef.DataKind_int:
		d, _ := v.AsInts()
		return formatAll(d, func(i int64) string { return strconv.FormatInt(i, 10) })
	case nxdef.DataKind_uint:
		d, _ := v.AsUints()
		return formatAll(d, func(u uint64) string { return strconv.FormatUint(u, 10) })
	case nxdef.DataKind_float:
		d, _ := v.AsFloats()
		return formatAll(d, func(f float64) string { return strconv.FormatFloat(f, 'g', -1, 64) })
	case nxdef.DataKind_bool:
		d, _ := v.AsBools()
		return formatAll(d, strconv.FormatBool)
	case nxdef.DataKind_datetime:
		d, _ := v.AsTimes()
		return formatAll(d, func(t time.Time) string { return t.Format(time.RFC3339Nano) })
	}
	d, _ := v.AsStrings()
	return d
}

func formatAll[T any](d []T, f func(T) string) []string {
	s := make([]string, len(d))
	for i, v := range d {
		s[i] = f(v)
	}
	return s
}
