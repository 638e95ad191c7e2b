/*
 * Copyright (c) 2026-present unTill Software Development Group B.V.
 */

package main

import (
	"fmt"
	"os"

	"github.com/untillpro/goutils/logger"

	"github.com/voedger/nxtree/pkg/nxbase"
	"github.com/voedger/nxtree/pkg/nxdef"
)

// Returns base classes with classes from catalog file, if specified
func loadClasses(catalog string) (nxdef.IClasses, error) {
	b := nxdef.New()
	nxbase.AddBaseClasses(b)
	if catalog != "" {
		if err := readCatalogFile(catalog, b); err != nil {
			return nil, err
		}
	}
	classes, err := b.Build()
	if err != nil {
		return nil, fmt.Errorf("can not build classes: %w", err)
	}
	logger.Verbose(fmt.Sprintf("%d classes loaded", classes.ClassCount()))
	return classes, nil
}

func readCatalogFile(path string, b nxdef.IClassesBuilder) error {
	f, err := os.Open(path)
	if err != nil {
		return err
	}
	defer f.Close()

	logger.Verbose("reading catalog " + path)
	if err := nxdef.ReadCatalog(f, b); err != nil {
		return fmt.Errorf("%s: %w", path, err)
	}
	return nil
}
