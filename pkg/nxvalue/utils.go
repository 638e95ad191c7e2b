/*
 * Copyright (c) 2026-present unTill Software Development Group B.V.
 */

package nxvalue

func clone[T any](s []T) []T {
	return append(make([]T, 0, len(s)), s...)
}

type integer interface {
	~int | ~int8 | ~int16 | ~int32 | ~int64 | ~uint | ~uint8 | ~uint16 | ~uint32 | ~uint64
}

type number interface {
	integer | ~float32 | ~float64
}

func convertSlice[S, D number](s []S) []D {
	d := make([]D, len(s))
	for i, v := range s {
		d[i] = D(v)
	}
	return d
}
