/*
 * Copyright (c) 2026-present unTill Software Development Group B.V.
 */

package nxvalue

import (
	"fmt"
	"math"
	"time"

	"github.com/voedger/nxtree/pkg/nxdef"
)

// ISO8601 layouts accepted for datetime conversion, most precise first
var timeLayouts = []string{
	time.RFC3339Nano,
	"2006-01-02T15:04:05.999999999",
	"2006-01-02 15:04:05.999999999Z07:00",
	"2006-01-02 15:04:05.999999999",
	"2006-01-02",
}

func (a Array) mismatch(to nxdef.DataKind) error {
	return fmt.Errorf("can not convert %s to %s: %w", a.kind.TrimString(), to.TrimString(), ErrTypeMismatch)
}

// Returns elements as int64.
//
// Uint and integral float values are converted if fit to int64.
func (a Array) AsInts() ([]int64, error) {
	switch d := a.data.(type) {
	case []int64:
		return clone(d), nil
	case []uint64:
		res := make([]int64, len(d))
		for i, v := range d {
			if v > math.MaxInt64 {
				return nil, fmt.Errorf("%d overflows int: %w", v, a.mismatch(nxdef.DataKind_int))
			}
			res[i] = int64(v)
		}
		return res, nil
	case []float64:
		res := make([]int64, len(d))
		for i, v := range d {
			if v != math.Trunc(v) || v < math.MinInt64 || v >= math.MaxInt64 {
				return nil, fmt.Errorf("%v is not integral: %w", v, a.mismatch(nxdef.DataKind_int))
			}
			res[i] = int64(v)
		}
		return res, nil
	}
	return nil, a.mismatch(nxdef.DataKind_int)
}

// Returns elements as uint64.
//
// Non negative int and integral float values are converted.
func (a Array) AsUints() ([]uint64, error) {
	switch d := a.data.(type) {
	case []uint64:
		return clone(d), nil
	case []int64:
		res := make([]uint64, len(d))
		for i, v := range d {
			if v < 0 {
				return nil, fmt.Errorf("%d is negative: %w", v, a.mismatch(nxdef.DataKind_uint))
			}
			res[i] = uint64(v)
		}
		return res, nil
	case []float64:
		res := make([]uint64, len(d))
		for i, v := range d {
			if v != math.Trunc(v) || v < 0 || v >= math.MaxUint64 {
				return nil, fmt.Errorf("%v is not non negative integral: %w", v, a.mismatch(nxdef.DataKind_uint))
			}
			res[i] = uint64(v)
		}
		return res, nil
	}
	return nil, a.mismatch(nxdef.DataKind_uint)
}

// Returns elements as float64. Int and uint values are converted.
func (a Array) AsFloats() ([]float64, error) {
	switch d := a.data.(type) {
	case []float64:
		return clone(d), nil
	case []int64:
		return convertSlice[int64, float64](d), nil
	case []uint64:
		return convertSlice[uint64, float64](d), nil
	}
	return nil, a.mismatch(nxdef.DataKind_float)
}

// Returns elements as strings. Datetime values are formatted as RFC3339.
func (a Array) AsStrings() ([]string, error) {
	switch d := a.data.(type) {
	case []string:
		return clone(d), nil
	case []time.Time:
		res := make([]string, len(d))
		for i, v := range d {
			res[i] = v.Format(time.RFC3339Nano)
		}
		return res, nil
	}
	return nil, a.mismatch(nxdef.DataKind_char)
}

// Returns elements as bools. Int and uint values 0 and 1 are converted.
func (a Array) AsBools() ([]bool, error) {
	switch d := a.data.(type) {
	case []bool:
		return clone(d), nil
	case []int64:
		return intsToBools(d, a)
	case []uint64:
		return intsToBools(d, a)
	}
	return nil, a.mismatch(nxdef.DataKind_bool)
}

func intsToBools[T int64 | uint64](d []T, a Array) ([]bool, error) {
	res := make([]bool, len(d))
	for i, v := range d {
		switch v {
		case 0:
		case 1:
			res[i] = true
		default:
			return nil, fmt.Errorf("%d is not boolean: %w", v, a.mismatch(nxdef.DataKind_bool))
		}
	}
	return res, nil
}

// Returns elements as times. Strings in ISO8601 format are parsed.
func (a Array) AsTimes() ([]time.Time, error) {
	switch d := a.data.(type) {
	case []time.Time:
		return clone(d), nil
	case []string:
		res := make([]time.Time, len(d))
		for i, v := range d {
			t, err := parseTime(v)
			if err != nil {
				return nil, fmt.Errorf("%q: %w", v, a.mismatch(nxdef.DataKind_datetime))
			}
			res[i] = t
		}
		return res, nil
	}
	return nil, a.mismatch(nxdef.DataKind_datetime)
}

func parseTime(s string) (t time.Time, err error) {
	for _, layout := range timeLayouts {
		if t, err = time.Parse(layout, s); err == nil {
			return t, nil
		}
	}
	return t, err
}

// Returns is array can be read as specified kind.
//
// Checks kinds only, values like fractional floats for int may still fail conversion.
func (a Array) ConvertibleTo(kind nxdef.DataKind) bool {
	if kind.IsCompatible(a.kind) {
		return true
	}
	switch kind {
	case nxdef.DataKind_int, nxdef.DataKind_uint:
		return a.kind.IsNumeric()
	case nxdef.DataKind_bool:
		return a.kind == nxdef.DataKind_int || a.kind == nxdef.DataKind_uint
	case nxdef.DataKind_datetime:
		return a.kind == nxdef.DataKind_char
	}
	return false
}

func single[T any](a Array, get func() ([]T, error)) (v T, err error) {
	if n := a.Len(); n != 1 {
		return v, fmt.Errorf("%d elements of %s for scalar: %w", n, a.kind.TrimString(), ErrWrongCardinality)
	}
	list, err := get()
	if err != nil {
		return v, err
	}
	return list[0], nil
}

// Returns single element as int64.
//
// Returns ErrWrongCardinality if array has not exactly one element.
func (a Array) AsInt() (int64, error) { return single(a, a.AsInts) }

// Returns single element as uint64.
func (a Array) AsUint() (uint64, error) { return single(a, a.AsUints) }

// Returns single element as float64.
func (a Array) AsFloat() (float64, error) { return single(a, a.AsFloats) }

// Returns single element as string.
func (a Array) AsString() (string, error) { return single(a, a.AsStrings) }

// Returns single element as bool.
func (a Array) AsBool() (bool, error) { return single(a, a.AsBools) }

// Returns single element as time.
func (a Array) AsTime() (time.Time, error) { return single(a, a.AsTimes) }

// Returns single element as stored Go type:
// int64, uint64, float64, string, bool or time.Time.
func (a Array) AsAny() (any, error) {
	switch a.kind {
	case nxdef.DataKind_int:
		return a.AsInt()
	case nxdef.DataKind_uint:
		return a.AsUint()
	case nxdef.DataKind_float:
		return a.AsFloat()
	case nxdef.DataKind_char:
		return a.AsString()
	case nxdef.DataKind_bool:
		return a.AsBool()
	case nxdef.DataKind_datetime:
		return a.AsTime()
	}
	return nil, fmt.Errorf("empty value: %w", ErrWrongCardinality)
}
