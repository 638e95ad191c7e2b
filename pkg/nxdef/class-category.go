/*
 * Copyright (c) 2026-present unTill Software Development Group B.V.
 */

package nxdef

import (
	"fmt"
	"strings"
)

//go:generate stringer -type=ClassCategory -output=stringer_classcategory.go

const (
	ClassCategory_null ClassCategory = iota
	ClassCategory_base
	ClassCategory_application
	ClassCategory_contributed

	ClassCategory_FakeLast
)

// Parses class category from its trimmed name, like «base».
func ParseClassCategory(s string) (ClassCategory, error) {
	for c := ClassCategory_null + 1; c < ClassCategory_FakeLast; c++ {
		if c.TrimString() == s {
			return c, nil
		}
	}
	return ClassCategory_null, fmt.Errorf("unknown class category «%s»: %w", s, ErrInvalidClassCategory)
}

// Renders an ClassCategory in human-readable form, without "ClassCategory_" prefix,
// suitable for debugging or error messages
func (c ClassCategory) TrimString() string {
	const pref = "ClassCategory_"
	return strings.TrimPrefix(c.String(), pref)
}
