/*
 * Copyright (c) 2026-present unTill Software Development Group B.V.
 */

package nxdef

import (
	"regexp"
	"strings"
	"unicode"

	"golang.org/x/text/cases"
)

// Returns is string is valid identifier and error if not
func ValidIdent(ident string) (bool, error) {
	if len(ident) < 1 {
		return false, ErrNameMissed
	}

	if l := len(ident); l > MaxIdentLen {
		return false, enrichError(ErrInvalidName, "ident «%s» too long (%d chars, max is %d)", ident, l, MaxIdentLen)
	}

	const (
		char_a rune = 97
		char_A rune = 65
		char_z rune = 122
		char_Z rune = 90
		char_0 rune = 48
		char_9 rune = 57
		char__ rune = 95
	)

	digit := func(r rune) bool { return (char_0 <= r) && (r <= char_9) }

	letter := func(r rune) bool { return ((char_a <= r) && (r <= char_z)) || ((char_A <= r) && (r <= char_Z)) }

	underScore := func(r rune) bool { return r == char__ }

	for p, c := range ident {
		if !letter(c) && !underScore(c) {
			if (p == 0) || !digit(c) {
				return false, enrichError(ErrInvalidName, "ident «%s» has invalid char «%c» at pos %d", ident, c, p)
			}
		}
	}

	return true, nil
}

// Returns name type for declared name.
//
// Names with uppercase letters are placeholders, except names with «NX_» prefix, like «NX_class».
func NameTypeOf(name string) NameType {
	if strings.HasPrefix(name, ClassNamePrefix+"_") {
		return NameType_specified
	}
	for _, r := range name {
		if unicode.IsUpper(r) {
			return NameType_any
		}
	}
	return NameType_specified
}

// Returns class lookup key: case folded name with «nx» prefix
func classKey(name string) string {
	k := cases.Fold().String(name)
	if pref := cases.Fold().String(ClassNamePrefix); !strings.HasPrefix(k, pref) {
		k = pref + k
	}
	return k
}

// Returns default slot name for class name: class name without «NX» prefix
func defaultSlotName(class string) string {
	return strings.TrimPrefix(class, ClassNamePrefix)
}

// Compiles placeholder name to regular expression.
//
// Every run of uppercase letters and digits starting from uppercase letter matches any
// identifier chars, other chars are matched literally. Returns expression and count of literal chars.
func placeholderPattern(name string) (*regexp.Regexp, int) {
	const anyChars = `\w+`

	b := strings.Builder{}
	b.WriteString("^")
	literal := 0
	inRun := false
	for _, r := range name {
		switch {
		case unicode.IsUpper(r):
			if !inRun {
				b.WriteString(anyChars)
				inRun = true
			}
		case inRun && unicode.IsDigit(r):
		default:
			inRun = false
			b.WriteString(regexp.QuoteMeta(string(r)))
			literal++
		}
	}
	b.WriteString("$")
	return regexp.MustCompile(b.String()), literal
}
