package main

import (
	_ "embed"
	"fmt"
	"os"

	"github.com/sarchlab/akita/v4/sim"
	"github.com/sarchlab/esobox/api"
	"github.com/sarchlab/esobox/core"
	"github.com/sarchlab/esobox/verify"
	"github.com/tebeka/atexit"
)

//go:embed square.bf
var program string

func main() {
	prog, err := core.Compile(program)
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		atexit.Exit(1)
	}

	issues := verify.RunLint(prog, core.ClassicTape)
	if verify.HasFatal(issues) {
		verify.WriteReport(os.Stderr, issues)
		atexit.Exit(1)
	}

	driver := api.MakeDriverBuilder().
		WithFreq(1 * sim.GHz).
		WithTape(core.ClassicTape).
		Build("Driver")

	if err := driver.Load(program, nil, os.Stdout); err != nil {
		fmt.Fprintln(os.Stderr, err)
		atexit.Exit(1)
	}

	res, err := driver.Run()
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		core.PrintState(os.Stderr, driver.State())
		atexit.Exit(1)
	}

	fmt.Printf("blocks: %d\n", res.Blocks)
	atexit.Exit(0)
}
