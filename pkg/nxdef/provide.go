/*
 * Copyright (c) 2026-present unTill Software Development Group B.V.
 */

package nxdef

// Creates and returns new classes catalog builder
func New() IClassesBuilder {
	return newClasses()
}
