/*
 * Copyright (c) 2026-present unTill Software Development Group B.V.
 */

package nxdef

import "fmt"

// # Implements:
//   - ISlot
type slot struct {
	withDoc
	owner     *class
	name      string
	className string
	class     *class
	minOccurs Occurs
	maxOccurs Occurs
}

func newSlot(owner *class, name, className string, minOccurs, maxOccurs Occurs) *slot {
	if maxOccurs == 0 {
		panic(enrichError(ErrInvalidOccurs, "%v: slot «%s» max occurs is zero", owner, name))
	}
	if maxOccurs < minOccurs {
		panic(enrichError(ErrInvalidOccurs, "%v: slot «%s» max occurs %v is less than min occurs %v", owner, name, maxOccurs, minOccurs))
	}
	return &slot{
		owner:     owner,
		name:      name,
		className: className,
		minOccurs: minOccurs,
		maxOccurs: maxOccurs,
	}
}

func (s *slot) Class() IClass {
	if s.class == nil {
		return nil
	}
	return s.class
}

func (s *slot) MaxOccurs() Occurs { return s.maxOccurs }

func (s *slot) MinOccurs() Occurs { return s.minOccurs }

func (s *slot) Name() string { return s.name }

func (s *slot) String() string {
	return fmt.Sprintf("%v slot «%s: %s»", s.owner, s.name, s.className)
}
