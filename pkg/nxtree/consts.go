/*
 * Copyright (c) 2026-present unTill Software Development Group B.V.
 */

package nxtree

// Class of tree root node
const RootClass = "NXroot"

// Path separator for Walk and Lookup
const PathSeparator = "/"

const DefaultValidation = Validation_Types

// Dump indent per tree level
const dumpIndent = "  "
