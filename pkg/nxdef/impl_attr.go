/*
 * Copyright (c) 2026-present unTill Software Development Group B.V.
 */

package nxdef

import (
	"fmt"
	"strings"
)

// # Implements:
//   - IAttr
type attr struct {
	withDoc
	ident
	kind DataKind
	enum []string
}

func newAttr(name string, kind DataKind, enum ...string) *attr {
	if kind == DataKind_null || kind >= DataKind_FakeLast {
		panic(enrichError(ErrInvalidDataKind, "attribute «%s» data kind %v", name, kind))
	}
	return &attr{
		ident: makeIdent(name),
		kind:  kind,
		enum:  append([]string(nil), enum...),
	}
}

func (a *attr) DataKind() DataKind { return a.kind }

func (a *attr) Enum() []string { return a.enum }

func (a *attr) String() string {
	return fmt.Sprintf("%s-attribute «%s»", a.kind.TrimString(), a.name)
}

// Renders enumeration in human-readable form, like «[a, b]»
func enumString(enum []string) string {
	return "[" + strings.Join(enum, ", ") + "]"
}
