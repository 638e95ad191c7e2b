/*
 * Copyright (c) 2026-present unTill Software Development Group B.V.
 */

package main

import (
	_ "embed"
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"github.com/untillpro/goutils/cobrau"
)

//go:embed version
var version string

func main() {
	if err := execRootCmd(os.Args, version); err != nil {
		fmt.Println(err)
		os.Exit(1)
	}
}

func execRootCmd(args []string, ver string) error {
	return cobrau.ExecCommandAndCatchInterrupt(prepareRootCmd(args, ver))
}

func prepareRootCmd(args []string, ver string) *cobra.Command {
	params := &cliParams{}
	rootCmd := cobrau.PrepareRootCmd(
		"nxtree",
		"NeXus class catalog utility",
		args,
		ver,
		newClassesCmd(params),
		newDescribeCmd(params),
		newDimsCmd(),
		newCheckCmd(),
	)
	rootCmd.PersistentFlags().StringVar(&params.catalog, "catalog", "", "YAML catalog with classes to add to base classes")
	return rootCmd
}
