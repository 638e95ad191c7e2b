/*
 * Copyright (c) 2026-present unTill Software Development Group B.V.
 */

package nxdef

import "strings"

//go:generate stringer -type=NameType -output=stringer_nametype.go

const (
	// Field has fixed name
	NameType_specified NameType = iota

	// Field name is placeholder, instance name is chosen by caller
	NameType_any

	NameType_FakeLast
)

// Renders an NameType in human-readable form, without "NameType_" prefix,
// suitable for debugging or error messages
func (t NameType) TrimString() string {
	const pref = "NameType_"
	return strings.TrimPrefix(t.String(), pref)
}
