/*
 * Copyright (c) 2026-present unTill Software Development Group B.V.
 */

package nxdef

import (
	"errors"
	"fmt"
)

var ErrNameMissed = errors.New("name is empty")

var ErrInvalidName = errors.New("name not valid")

var ErrNameUniqueViolation = errors.New("duplicate name")

var ErrNameNotFound = errors.New("name not found")

var ErrInvalidDataKind = errors.New("invalid data kind")

var ErrInvalidClassCategory = errors.New("invalid class category")

var ErrInvalidOccurs = errors.New("invalid occurs")

var ErrCyclicInheritance = errors.New("cyclic inheritance")

func enrichError(err error, msg string, args ...any) error {
	s := msg
	if len(args) > 0 {
		s = fmt.Sprintf(msg, args...)
	}
	return fmt.Errorf("%s: %w", s, err)
}
