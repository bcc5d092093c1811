package core

import (
	"bufio"
	"io"
	"strings"
)

// Builder can create new machines.
type Builder struct {
	tape Tape
	in   io.Reader
	out  io.Writer
}

// NewBuilder returns a builder for machines on the ring tape with no input
// and discarded output.
func NewBuilder() Builder {
	return Builder{
		tape: RingTape,
	}
}

// WithTape sets the tape length and addressing policy.
func (b Builder) WithTape(tape Tape) Builder {
	b.tape = tape
	return b
}

// WithInput sets the source that `,` reads from.
func (b Builder) WithInput(in io.Reader) Builder {
	b.in = in
	return b
}

// WithOutput sets the sink that `.` writes to.
func (b Builder) WithOutput(out io.Writer) Builder {
	b.out = out
	return b
}

// Build creates a machine positioned at the entry block of prog.
func (b Builder) Build(prog *Program) (*Machine, error) {
	if err := b.tape.Validate(); err != nil {
		return nil, err
	}
	if err := prog.Validate(); err != nil {
		return nil, err
	}

	m := &Machine{
		prog: prog,
		tape: b.tape,
		mem:  make([]byte, b.tape.Length),
		in:   byteReader(b.in),
		out:  b.out,
	}
	if m.out == nil {
		m.out = io.Discard
	}

	return m, nil
}

func byteReader(r io.Reader) io.ByteReader {
	if r == nil {
		return strings.NewReader("")
	}
	if br, ok := r.(io.ByteReader); ok {
		return br
	}
	return bufio.NewReader(r)
}
