/*
 * Copyright (c) 2026-present unTill Software Development Group B.V.
 */

package main

type cliParams struct {
	// YAML catalog path, flag --catalog
	catalog string
}
