/*
 * Copyright (c) 2026-present unTill Software Development Group B.V.
 */

package main

import (
	"fmt"
	"io"
	"strings"

	"github.com/spf13/cobra"

	"github.com/voedger/nxtree/pkg/nxdef"
	"github.com/voedger/nxtree/pkg/nxtree"
)

func newDescribeCmd(params *cliParams) *cobra.Command {
	format := formatText
	cmd := &cobra.Command{
		Use:   "describe <class>",
		Short: "print class fields, attributes and groups",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			classes, err := loadClasses(params.catalog)
			if err != nil {
				return err
			}
			cls := classes.Class(args[0])
			if cls == nil {
				return fmt.Errorf("class «%s»: %w", args[0], nxtree.ErrUnknownClass)
			}
			switch format {
			case formatText:
				describeText(cmd.OutOrStdout(), cls)
				return nil
			case formatYAML:
				return nxdef.WriteCatalog(cmd.OutOrStdout(), cls)
			}
			return fmt.Errorf("«%s»: %w", format, errUnknownFormat)
		},
	}
	cmd.Flags().StringVarP(&format, "format", "f", formatText, "output format: text or yaml")
	return cmd
}

func describeText(w io.Writer, cls nxdef.IClass) {
	fmt.Fprintf(w, "%s (%s)", cls.Name(), cls.Category().TrimString())
	if e := cls.Extends(); e != nil {
		fmt.Fprintf(w, " extends %s", e.Name())
	}
	fmt.Fprintln(w)
	if doc := cls.Doc(); doc != "" {
		fmt.Fprintf(w, "  %s\n", doc)
	}

	if attrs := cls.Attrs(); len(attrs) > 0 {
		fmt.Fprintln(w, "attributes:")
		for _, a := range attrs {
			fmt.Fprintf(w, "  @%s: %s%s\n", a.Name(), a.DataKind().TrimString(), enumText(a.Enum()))
		}
	}

	if fields := cls.Fields(); len(fields) > 0 {
		fmt.Fprintln(w, "fields:")
		for _, f := range fields {
			fmt.Fprintf(w, "  %s: %s", f.Name(), f.DataKind().TrimString())
			if dims := f.Dims(); len(dims) > 0 {
				fmt.Fprintf(w, "[%s]", strings.Join(dims, ", "))
			}
			if u := f.Units(); u != nxdef.Units_null {
				fmt.Fprintf(w, " %s", u)
			}
			fmt.Fprint(w, enumText(f.Enum()))
			if d := f.Deprecated(); d != "" {
				fmt.Fprintf(w, " (deprecated: %s)", d)
			}
			fmt.Fprintln(w)
			for _, a := range f.Attrs() {
				fmt.Fprintf(w, "    @%s: %s%s\n", a.Name(), a.DataKind().TrimString(), enumText(a.Enum()))
			}
		}
	}

	if slots := cls.Slots(); len(slots) > 0 {
		fmt.Fprintln(w, "groups:")
		for _, s := range slots {
			fmt.Fprintf(w, "  %s: %s [%v..%v]\n", s.Name(), s.Class().Name(), s.MinOccurs(), s.MaxOccurs())
		}
	}
}

func enumText(enum []string) string {
	if len(enum) == 0 {
		return ""
	}
	return " {" + strings.Join(enum, ", ") + "}"
}
