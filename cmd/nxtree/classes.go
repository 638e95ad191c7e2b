/*
 * Copyright (c) 2026-present unTill Software Development Group B.V.
 */

package main

import (
	"fmt"

	"github.com/spf13/cobra"
)

func newClassesCmd(params *cliParams) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "classes",
		Short: "list known classes",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			classes, err := loadClasses(params.catalog)
			if err != nil {
				return err
			}
			out := cmd.OutOrStdout()
			for _, c := range classes.Classes() {
				ext := ""
				if e := c.Extends(); e != nil {
					ext = e.Name()
				}
				fmt.Fprintf(out, "%-20s %-12s %s\n", c.Name(), c.Category().TrimString(), ext)
			}
			return nil
		},
	}
	return cmd
}
