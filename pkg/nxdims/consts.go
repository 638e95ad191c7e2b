/*
 * Copyright (c) 2026-present unTill Software Development Group B.V.
 */

package nxdims

// Parsed expressions cache size
const exprCacheSize = 1024
