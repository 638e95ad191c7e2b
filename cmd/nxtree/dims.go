/*
 * Copyright (c) 2026-present unTill Software Development Group B.V.
 */

package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/voedger/nxtree/pkg/nxdims"
)

func newDimsCmd() *cobra.Command {
	bind := map[string]int{}
	cmd := &cobra.Command{
		Use:   "dims <expr>",
		Short: "parse dimension expression and evaluate it with bound symbols",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			e, err := nxdims.Parse(args[0])
			if err != nil {
				return err
			}
			b := nxdims.Bindings{}
			for sym, size := range bind {
				if size < 0 {
					return fmt.Errorf("%s=%d: %w", sym, size, errInvalidBinding)
				}
				b[sym] = size
			}

			out := cmd.OutOrStdout()
			fmt.Fprintln(out, "expression:", e)
			fmt.Fprintln(out, "symbols:", e.Symbols())
			if len(b) == 0 && len(e.Symbols()) > 0 {
				return nil
			}
			v, err := e.Eval(b)
			if err != nil {
				return err
			}
			fmt.Fprintln(out, "value:", v)
			return nil
		},
	}
	cmd.Flags().StringToIntVarP(&bind, "bind", "b", nil, "symbol sizes, like i=3,j=4")
	return cmd
}
