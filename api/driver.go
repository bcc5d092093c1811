// Package api defines the driver that runs programs on a simulation engine,
// one basic block per cycle.
package api

import (
	"errors"
	"io"

	"github.com/sarchlab/akita/v4/sim"
	"github.com/sarchlab/esobox/core"
)

// ErrNotLoaded is returned by Run before a program is loaded.
var ErrNotLoaded = errors.New("no program loaded")

// Driver provides the interface to run a program on the engine.
type Driver interface {
	// Load compiles the source and prepares a machine reading `,` from in
	// and writing `.` to out. A syntax error leaves the driver unloaded.
	Load(source string, in io.Reader, out io.Writer) error

	// Run ticks the engine until the loaded program halts or fails.
	Run() (Result, error)

	// State returns a snapshot of the loaded machine.
	State() core.State
}

// Result reports how long a run took.
type Result struct {
	// Blocks is the number of basic blocks executed, one per cycle.
	Blocks uint64
	// Time is the engine time when the machine stopped.
	Time sim.VTimeInSec
}

type driverImpl struct {
	*sim.TickingComponent

	engine  sim.Engine
	tape    core.Tape
	machine *core.Machine

	blocks uint64
	err    error
}

// Load compiles source and replaces any previously loaded machine.
func (d *driverImpl) Load(source string, in io.Reader, out io.Writer) error {
	prog, err := core.Compile(source)
	if err != nil {
		return err
	}

	m, err := core.NewBuilder().
		WithTape(d.tape).
		WithInput(in).
		WithOutput(out).
		Build(prog)
	if err != nil {
		return err
	}

	d.machine = m
	d.blocks = 0
	d.err = nil

	Trace("Load",
		"Driver", d.Name(),
		"Blocks", len(prog.Blocks),
		"Ops", prog.NumOps(),
		"TapeLength", d.tape.Length,
		"TapePolicy", d.tape.Policy.String(),
	)

	return nil
}

// Tick runs one basic block.
func (d *driverImpl) Tick() (madeProgress bool) {
	if d.machine == nil || d.err != nil || d.machine.Halted() {
		return false
	}

	block := d.machine.Block()
	halted, err := d.machine.Step()
	if err != nil {
		d.err = err
		Trace("Fault",
			"Time", float64(d.Engine.CurrentTime()*1e9),
			"Block", block,
			"Cursor", d.machine.Cursor(),
			"Error", err.Error(),
		)
		return false
	}

	d.blocks++

	Trace("Tick",
		"Time", float64(d.Engine.CurrentTime()*1e9),
		"Block", block,
		"Next", d.machine.Block(),
		"Cursor", d.machine.Cursor(),
		"Cell", d.machine.Cell(),
	)

	if halted {
		Trace("Halt",
			"Time", float64(d.Engine.CurrentTime()*1e9),
			"Blocks", d.blocks,
		)
		return false
	}

	return true
}

// Run starts ticking and drives the engine until the machine stops.
func (d *driverImpl) Run() (Result, error) {
	if d.machine == nil {
		return Result{}, ErrNotLoaded
	}

	d.TickNow()
	if err := d.engine.Run(); err != nil {
		return Result{}, err
	}

	res := Result{
		Blocks: d.blocks,
		Time:   d.engine.CurrentTime(),
	}

	return res, d.err
}

// State returns a snapshot of the loaded machine.
func (d *driverImpl) State() core.State {
	if d.machine == nil {
		return core.State{}
	}
	return d.machine.State()
}
