/*
 * Copyright (c) 2026-present unTill Software Development Group B.V.
 */

package nxtree

import "strings"

//go:generate stringer -type=ValidationMode -output=stringer_validationmode.go

const (
	// No checks on set
	Validation_None ValidationMode = iota

	// Data kinds of declared fields and attributes are checked on set
	Validation_Types

	// Data kinds, declared names, enumerations, dimensions and slots max occurs are checked on set
	Validation_Strict

	Validation_FakeLast
)

// Renders an ValidationMode in human-readable form, without "Validation_" prefix,
// suitable for debugging or error messages
func (m ValidationMode) TrimString() string {
	const pref = "Validation_"
	return strings.TrimPrefix(m.String(), pref)
}
