/*
 * Copyright (c) 2026-present unTill Software Development Group B.V.
 */

package nxdims

import (
	"fmt"
	"strings"

	"github.com/voedger/nxtree/pkg/objcache"
)

var exprCache = objcache.New[string, IExpr](exprCacheSize)

// Parses dimension expression.
//
// Parsed expressions are cached, so repeated parsing of same text is cheap.
func Parse(s string) (IExpr, error) {
	s = strings.TrimSpace(s)
	if e, ok := exprCache.Get(s); ok {
		return e, nil
	}
	ast, err := exprParser.ParseString("", s)
	if err != nil {
		return nil, fmt.Errorf("«%s»: %w: %v", s, ErrSyntax, err)
	}
	e := &expr{root: buildExpr(ast)}
	exprCache.Put(s, e)
	return e, nil
}

// Same as Parse, but panics if error
func MustParse(s string) IExpr {
	e, err := Parse(s)
	if err != nil {
		panic(err)
	}
	return e
}
