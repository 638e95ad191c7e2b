/*
 * Copyright (c) 2026-present unTill Software Development Group B.V.
 */

package nxdef

import (
	"fmt"
	"strconv"
)

const (
	Occurs_Unbounded    = Occurs(0xffff)
	Occurs_UnboundedStr = "unbounded"
)

func (o Occurs) String() string {
	switch o {
	case Occurs_Unbounded:
		return Occurs_UnboundedStr
	default:
		const base = 10
		return strconv.FormatUint(uint64(o), base)
	}
}

func (o Occurs) MarshalYAML() (interface{}, error) {
	if o == Occurs_Unbounded {
		return Occurs_UnboundedStr, nil
	}
	return uint64(o), nil
}

func (o *Occurs) UnmarshalYAML(unmarshal func(interface{}) error) error {
	var s string
	if err := unmarshal(&s); err != nil {
		return err
	}
	v, err := ParseOccurs(s)
	if err != nil {
		return err
	}
	*o = v
	return nil
}

// Parses occurs from decimal string or from «unbounded».
func ParseOccurs(s string) (Occurs, error) {
	if s == Occurs_UnboundedStr {
		return Occurs_Unbounded, nil
	}
	const base, wordBits = 10, 16
	i, err := strconv.ParseUint(s, base, wordBits)
	if err != nil {
		return 0, fmt.Errorf("invalid occurs «%s»: %w", s, ErrInvalidOccurs)
	}
	return Occurs(i), nil
}
