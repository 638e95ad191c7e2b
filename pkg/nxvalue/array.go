/*
 * Copyright (c) 2026-present unTill Software Development Group B.V.
 */

package nxvalue

import (
	"fmt"
	"strings"
	"time"

	"golang.org/x/exp/slices"

	"github.com/voedger/nxtree/pkg/nxdef"
)

// Returns one-dimensional int array
func Ints(v ...int64) Array { return vector(nxdef.DataKind_int, v) }

// Returns one-dimensional uint array
func Uints(v ...uint64) Array { return vector(nxdef.DataKind_uint, v) }

// Returns one-dimensional float array
func Floats(v ...float64) Array { return vector(nxdef.DataKind_float, v) }

// Returns one-dimensional char array
func Strings(v ...string) Array { return vector(nxdef.DataKind_char, v) }

// Returns one-dimensional bool array
func Bools(v ...bool) Array { return vector(nxdef.DataKind_bool, v) }

// Returns one-dimensional datetime array
func Times(v ...time.Time) Array { return vector(nxdef.DataKind_datetime, v) }

func vector[T any](kind nxdef.DataKind, v []T) Array {
	return Array{
		kind:  kind,
		shape: []int{len(v)},
		data:  clone(v),
	}
}

// Returns zero-dimensional array from Go scalar value.
//
// Supported types are signed and unsigned integers, floats, string, bool and time.Time.
// Returns ErrUnsupportedType for other types.
func Scalar(v any) (Array, error) {
	a, err := FromAny(v)
	if err != nil {
		return Array{}, err
	}
	if a.Len() != 1 {
		return Array{}, fmt.Errorf("%T is not scalar: %w", v, ErrWrongCardinality)
	}
	return a.Reshape()
}

// Same as Scalar, but panics if error
func MustScalar(v any) Array {
	a, err := Scalar(v)
	if err != nil {
		panic(err)
	}
	return a
}

// Returns array from Go value.
//
// Scalars give zero-dimensional arrays, slices give one-dimensional arrays, Array is returned as is.
func FromAny(v any) (Array, error) {
	switch v := v.(type) {
	case Array:
		return v, nil
	case int:
		return scalar(nxdef.DataKind_int, int64(v)), nil
	case int8:
		return scalar(nxdef.DataKind_int, int64(v)), nil
	case int16:
		return scalar(nxdef.DataKind_int, int64(v)), nil
	case int32:
		return scalar(nxdef.DataKind_int, int64(v)), nil
	case int64:
		return scalar(nxdef.DataKind_int, v), nil
	case uint:
		return scalar(nxdef.DataKind_uint, uint64(v)), nil
	case uint8:
		return scalar(nxdef.DataKind_uint, uint64(v)), nil
	case uint16:
		return scalar(nxdef.DataKind_uint, uint64(v)), nil
	case uint32:
		return scalar(nxdef.DataKind_uint, uint64(v)), nil
	case uint64:
		return scalar(nxdef.DataKind_uint, v), nil
	case float32:
		return scalar(nxdef.DataKind_float, float64(v)), nil
	case float64:
		return scalar(nxdef.DataKind_float, v), nil
	case string:
		return scalar(nxdef.DataKind_char, v), nil
	case bool:
		return scalar(nxdef.DataKind_bool, v), nil
	case time.Time:
		return scalar(nxdef.DataKind_datetime, v), nil
	case []int:
		return Ints(convertSlice[int, int64](v)...), nil
	case []int32:
		return Ints(convertSlice[int32, int64](v)...), nil
	case []int64:
		return Ints(v...), nil
	case []uint:
		return Uints(convertSlice[uint, uint64](v)...), nil
	case []uint8:
		return Uints(convertSlice[uint8, uint64](v)...), nil
	case []uint32:
		return Uints(convertSlice[uint32, uint64](v)...), nil
	case []uint64:
		return Uints(v...), nil
	case []float32:
		return Floats(convertSlice[float32, float64](v)...), nil
	case []float64:
		return Floats(v...), nil
	case []string:
		return Strings(v...), nil
	case []bool:
		return Bools(v...), nil
	case []time.Time:
		return Times(v...), nil
	}
	return Array{}, fmt.Errorf("%T: %w", v, ErrUnsupportedType)
}

func scalar[T any](kind nxdef.DataKind, v T) Array {
	return Array{kind: kind, shape: []int{}, data: []T{v}}
}

// Returns array with same data and new shape.
//
// Empty dims gives zero-dimensional array, which is allowed for one-element arrays only.
// Returns ErrWrongCardinality if dims product does not equal Len().
func (a Array) Reshape(dims ...int) (Array, error) {
	size := 1
	for _, d := range dims {
		if d < 0 {
			return Array{}, fmt.Errorf("negative dimension %d: %w", d, ErrWrongCardinality)
		}
		size *= d
	}
	if size != a.Len() {
		return Array{}, fmt.Errorf("can not reshape %d elements to %v: %w", a.Len(), dims, ErrWrongCardinality)
	}
	return Array{
		kind:  a.kind,
		shape: append([]int{}, dims...),
		data:  a.data,
	}, nil
}

// Returns stored data kind
func (a Array) Kind() nxdef.DataKind { return a.kind }

// Returns copy of array shape. Scalar has empty shape.
func (a Array) Shape() []int { return append([]int{}, a.shape...) }

// Returns count of dimensions
func (a Array) Rank() int { return len(a.shape) }

// Returns count of elements
func (a Array) Len() int {
	switch d := a.data.(type) {
	case []int64:
		return len(d)
	case []uint64:
		return len(d)
	case []float64:
		return len(d)
	case []string:
		return len(d)
	case []bool:
		return len(d)
	case []time.Time:
		return len(d)
	}
	return 0
}

// Returns is array is zero-dimensional
func (a Array) IsScalar() bool { return a.kind != nxdef.DataKind_null && len(a.shape) == 0 }

// Returns is array has no elements
func (a Array) IsEmpty() bool { return a.Len() == 0 }

// Returns copy of flat data as Go slice:
// []int64, []uint64, []float64, []string, []bool or []time.Time. Returns nil for zero Array.
func (a Array) Values() any {
	switch d := a.data.(type) {
	case []int64:
		return clone(d)
	case []uint64:
		return clone(d)
	case []float64:
		return clone(d)
	case []string:
		return clone(d)
	case []bool:
		return clone(d)
	case []time.Time:
		return clone(d)
	}
	return nil
}

// Returns is arrays have same kind, shape and elements
func (a Array) Equal(b Array) bool {
	if a.kind != b.kind || !slices.Equal(a.shape, b.shape) {
		return false
	}
	switch d := a.data.(type) {
	case []int64:
		return slices.Equal(d, b.data.([]int64))
	case []uint64:
		return slices.Equal(d, b.data.([]uint64))
	case []float64:
		return slices.Equal(d, b.data.([]float64))
	case []string:
		return slices.Equal(d, b.data.([]string))
	case []bool:
		return slices.Equal(d, b.data.([]bool))
	case []time.Time:
		return slices.EqualFunc(d, b.data.([]time.Time), time.Time.Equal)
	}
	return b.data == nil
}

// Renders array in human-readable form, like «float[2]{1.5, 2}» or «char "text"»
func (a Array) String() string {
	if a.kind == nxdef.DataKind_null {
		return "null"
	}
	items := make([]string, 0, a.Len())
	switch d := a.data.(type) {
	case []string:
		for _, s := range d {
			items = append(items, fmt.Sprintf("%q", s))
		}
	case []time.Time:
		for _, t := range d {
			items = append(items, t.Format(time.RFC3339Nano))
		}
	case []int64:
		items = formatAll(d)
	case []uint64:
		items = formatAll(d)
	case []float64:
		items = formatAll(d)
	case []bool:
		items = formatAll(d)
	}
	if a.IsScalar() {
		return fmt.Sprintf("%s %s", a.kind.TrimString(), items[0])
	}
	return fmt.Sprintf("%s%v{%s}", a.kind.TrimString(), a.shape, strings.Join(items, ", "))
}

func formatAll[T any](d []T) []string {
	ss := make([]string, len(d))
	for i, v := range d {
		ss[i] = fmt.Sprint(v)
	}
	return ss
}
