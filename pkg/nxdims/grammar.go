/*
 * Copyright (c) 2026-present unTill Software Development Group B.V.
 */

package nxdims

import (
	"github.com/alecthomas/participle/v2"
	"github.com/alecthomas/participle/v2/lexer"
)

type exprAST struct {
	Left  *termAST     `parser:"@@"`
	Right []*opTermAST `parser:"@@*"`
}

type opTermAST struct {
	Op   string   `parser:"@('+' | '-')"`
	Term *termAST `parser:"@@"`
}

type termAST struct {
	Left  *factorAST     `parser:"@@"`
	Right []*opFactorAST `parser:"@@*"`
}

type opFactorAST struct {
	Op     string     `parser:"@('*' | '/')"`
	Factor *factorAST `parser:"@@"`
}

type factorAST struct {
	Number *int     `parser:"  @Int"`
	Symbol *string  `parser:"| @Ident"`
	Sub    *exprAST `parser:"| '(' @@ ')'"`
}

var dimsLexer = lexer.MustSimple([]lexer.SimpleRule{
	{Name: "Int", Pattern: `\d+`},
	{Name: "Ident", Pattern: `[a-zA-Z_]\w*`},
	{Name: "Punct", Pattern: `[-+*/()]`},
	{Name: "Whitespace", Pattern: `[ \t\r\n]+`},
})

var exprParser = participle.MustBuild[exprAST](
	participle.Lexer(dimsLexer),
	participle.Elide("Whitespace"),
)
