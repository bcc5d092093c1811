package api

import (
	"github.com/sarchlab/akita/v4/sim"
	"github.com/sarchlab/esobox/core"
)

// DriverBuilder creates a new instance of Driver.
type DriverBuilder struct {
	engine sim.Engine
	freq   sim.Freq
	tape   core.Tape
}

// MakeDriverBuilder returns a builder with a 1 GHz clock and the ring tape.
func MakeDriverBuilder() DriverBuilder {
	return DriverBuilder{
		freq: 1 * sim.GHz,
		tape: core.RingTape,
	}
}

// WithEngine sets the engine. Without one, Build creates a serial engine.
func (b DriverBuilder) WithEngine(engine sim.Engine) DriverBuilder {
	b.engine = engine
	return b
}

// WithFreq sets the frequency of the driver.
func (b DriverBuilder) WithFreq(freq sim.Freq) DriverBuilder {
	b.freq = freq
	return b
}

// WithTape sets the tape of the machines the driver loads.
func (b DriverBuilder) WithTape(tape core.Tape) DriverBuilder {
	b.tape = tape
	return b
}

// Build creates a driver.
func (b DriverBuilder) Build(name string) Driver {
	engine := b.engine
	if engine == nil {
		engine = sim.NewSerialEngine()
	}

	freq := b.freq
	if freq == 0 {
		freq = 1 * sim.GHz
	}

	d := &driverImpl{
		engine: engine,
		tape:   b.tape,
	}

	d.TickingComponent = sim.NewTickingComponent(name, engine, freq, d)

	return d
}
