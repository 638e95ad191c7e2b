/*
 * Copyright (c) 2026-present unTill Software Development Group B.V.
 */

package mem

import "github.com/voedger/nxtree/pkg/nxstorage"

// Returns new in-memory storage provider
func Provide() nxstorage.IProvider {
	return &provider{}
}
