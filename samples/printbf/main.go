package main

import (
	_ "embed"
	"fmt"
	"log/slog"
	"os"

	"github.com/sarchlab/akita/v4/sim"
	"github.com/sarchlab/esobox/api"
	"github.com/sarchlab/esobox/core"
	"github.com/tebeka/atexit"
)

//go:embed print.bf
var program string

func main() {
	handler := slog.NewJSONHandler(os.Stderr, &slog.HandlerOptions{
		Level: api.LevelTrace,
	})
	slog.SetDefault(slog.New(handler))

	engine := sim.NewSerialEngine()

	driver := api.MakeDriverBuilder().
		WithEngine(engine).
		WithFreq(1 * sim.GHz).
		WithTape(core.RingTape).
		Build("Driver")

	if err := driver.Load(program, nil, os.Stdout); err != nil {
		fmt.Fprintln(os.Stderr, err)
		atexit.Exit(1)
	}

	res, err := driver.Run()
	fmt.Println()
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		atexit.Exit(1)
	}

	fmt.Printf("blocks: %d, time: %.0f ns\n", res.Blocks, float64(res.Time*1e9))
	atexit.Exit(0)
}
