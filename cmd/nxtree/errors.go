/*
 * Copyright (c) 2026-present unTill Software Development Group B.V.
 */

package main

import "errors"

var errUnknownFormat = errors.New("unknown output format")

var errInvalidBinding = errors.New("invalid dimension binding")
