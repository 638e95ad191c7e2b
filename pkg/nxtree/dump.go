/*
 * Copyright (c) 2026-present unTill Software Development Group B.V.
 */

package nxtree

import (
	"io"
	"strings"

	"github.com/valyala/bytebufferpool"

	"github.com/voedger/nxtree/pkg/nxdef"
)

// Writes indented text listing of node and its descendants:
//
//	NXbeam
//	  @default = char "data"
//	  incident_energy = float 12.4
//	    @units = char "keV"
//	  primary:NXtransformations
//	    ...
//
// Class attribute «NX_class» is not listed.
func Dump(w io.Writer, n INode) error {
	buf := bytebufferpool.Get()
	defer bytebufferpool.Put(buf)

	_, _ = buf.WriteString(n.Class().Name())
	_ = buf.WriteByte('\n')

	err := Walk(n, func(path string, c INode) error {
		level := 0
		if path != PathSeparator {
			level = strings.Count(path, PathSeparator)
			name := path[strings.LastIndex(path, PathSeparator)+1:]
			writeLine(buf, level, name+":"+c.Class().Name())
		}
		dumpProps(buf, level+1, c)
		return nil
	})
	if err != nil {
		return err
	}

	_, err = w.Write(buf.B)
	return err
}

func dumpProps(buf *bytebufferpool.ByteBuffer, level int, n INode) {
	g := n.Group()
	for _, a := range g.AttrNames() {
		if a == nxdef.Attr_NXClass {
			continue
		}
		v, _ := g.Attr(a)
		writeLine(buf, level, "@"+a+" = "+v.String())
	}
	for _, f := range g.DatasetNames() {
		ds, _ := g.Dataset(f)
		writeLine(buf, level, f+" = "+ds.Value().String())
		for _, a := range ds.AttrNames() {
			v, _ := ds.Attr(a)
			writeLine(buf, level+1, "@"+a+" = "+v.String())
		}
	}
}

func writeLine(buf *bytebufferpool.ByteBuffer, level int, s string) {
	for i := 0; i < level; i++ {
		_, _ = buf.WriteString(dumpIndent)
	}
	_, _ = buf.WriteString(s)
	_ = buf.WriteByte('\n')
}
