/*
 * Copyright (c) 2026-present unTill Software Development Group B.V.
 */

package nxdef

import (
	"fmt"
	"regexp"
)

type withDoc struct {
	doc string
}

func (d withDoc) Doc() string { return d.doc }

func (d *withDoc) setDoc(doc string) { d.doc = doc }

// Declared name of field or attribute.
//
// Fixed names match exactly, placeholder names match by pattern.
type ident struct {
	name     string
	nameType NameType
	pattern  *regexp.Regexp
	literal  int
}

// Panics if name is invalid
func makeIdent(name string) ident {
	if ok, err := ValidIdent(name); !ok {
		panic(err)
	}
	id := ident{name: name, nameType: NameTypeOf(name)}
	if id.nameType == NameType_any {
		id.pattern, id.literal = placeholderPattern(name)
	}
	return id
}

func (id ident) Name() string { return id.name }

func (id ident) NameType() NameType { return id.nameType }

func (id ident) Match(name string) bool {
	if id.nameType == NameType_any {
		return id.pattern.MatchString(name)
	}
	return id.name == name
}

type identified interface {
	comparable
	Name() string
	NameType() NameType
	Match(string) bool
	specificity() int
}

func (id ident) specificity() int { return id.literal }

// Finds item by instance name.
//
// Exact name match is preferred, then placeholder with most literal chars.
func findIdent[T identified](list []T, name string) (found T, ok bool) {
	best := -1
	for _, item := range list {
		if item.Name() == name {
			return item, true
		}
		if item.NameType() == NameType_any && item.Match(name) {
			if s := item.specificity(); s > best {
				found, best = item, s
			}
		}
	}
	return found, best >= 0
}

// Panics if name is invalid or duplicated in list
func checkNewIdent[T identified](list []T, name, what string, owner fmt.Stringer) {
	if ok, err := ValidIdent(name); !ok {
		panic(fmt.Errorf("%v: %s name: %w", owner, what, err))
	}
	for _, item := range list {
		if item.Name() == name {
			panic(enrichError(ErrNameUniqueViolation, "%v: %s «%s» already exists", owner, what, name))
		}
	}
}
