/*
 * Copyright (c) 2026-present unTill Software Development Group B.V.
 */

package nxstorage

import "errors"

var ErrNameCollision = errors.New("name collision")

var ErrCycle = errors.New("group cycle")

var ErrForeignGroup = errors.New("group belongs to other storage")

var ErrNameMissed = errors.New("name is empty")
