/*
 * Copyright (c) 2026-present unTill Software Development Group B.V.
 */

package nxbase_test

import (
	"fmt"

	"github.com/voedger/nxtree/pkg/nxbase"
	"github.com/voedger/nxtree/pkg/nxstorage/mem"
)

func Example() {
	tree := nxbase.NewTree(mem.Provide())

	beam, err := nxbase.NewBeam(tree)
	if err != nil {
		panic(err)
	}

	if _, err := beam.SetIncidentEnergyScalar(12.4); err != nil {
		panic(err)
	}

	energy, _ := beam.IncidentEnergyScalar()
	fmt.Println("scalar:", energy)

	arr, _ := beam.IncidentEnergy()
	values, _ := arr.AsFloats()
	fmt.Println("array:", values)

	tx, err := nxbase.NewTransformations(tree)
	if err != nil {
		panic(err)
	}
	if err := beam.SetTransformationsByName("primary", tx); err != nil {
		panic(err)
	}

	all, _ := beam.AllTransformations()
	for name, t := range all {
		fmt.Println("transformations:", name, t.ID() == tx.ID())
	}

	// Output:
	// scalar: 12.4
	// array: [12.4]
	// transformations: primary true
}
