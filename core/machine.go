package core

import (
	"errors"
	"io"
)

// Machine executes a compiled program against a zeroed tape. A machine is
// used for one run and is not safe for concurrent use.
type Machine struct {
	prog *Program
	tape Tape
	mem  []byte

	cursor int
	block  BlockID
	steps  uint64

	in  io.ByteReader
	out io.Writer
	buf [1]byte

	halted bool
	err    error
}

// Step executes the current block and follows its branch. It reports
// whether the machine reached a Halt target. After the machine halts or
// fails, Step returns the same result without executing anything.
func (m *Machine) Step() (halted bool, err error) {
	if m.halted || m.err != nil {
		return m.halted, m.err
	}

	b := &m.prog.Blocks[m.block]
	for _, op := range b.Ops {
		if err := m.exec(op); err != nil {
			m.err = err
			return false, err
		}
	}
	m.steps++

	next := b.JNZ
	if m.mem[m.cursor] == 0 {
		next = b.JZ
	}

	if next == Halt {
		m.halted = true
		return true, nil
	}

	m.block = next

	return false, nil
}

// Run steps the machine until it halts or fails.
func (m *Machine) Run() error {
	for {
		halted, err := m.Step()
		if err != nil {
			return err
		}
		if halted {
			return nil
		}
	}
}

func (m *Machine) exec(op Op) error {
	switch op {
	case Increment:
		m.mem[m.cursor]++
	case Decrement:
		m.mem[m.cursor]--
	case MoveLeft:
		c, err := m.tape.left(m.cursor)
		if err != nil {
			return err
		}
		m.cursor = c
	case MoveRight:
		c, err := m.tape.right(m.cursor)
		if err != nil {
			return err
		}
		m.cursor = c
	case ReadByte:
		return m.readByte()
	case WriteByte:
		return m.writeByte()
	}

	return nil
}

// readByte leaves the cell unchanged at end of input.
func (m *Machine) readByte() error {
	c, err := m.in.ReadByte()
	if errors.Is(err, io.EOF) {
		return nil
	}
	if err != nil {
		return newIOError(err)
	}

	m.mem[m.cursor] = c

	return nil
}

func (m *Machine) writeByte() error {
	m.buf[0] = m.mem[m.cursor]

	n, err := m.out.Write(m.buf[:])
	if err != nil {
		return newIOError(err)
	}
	if n != 1 {
		return newIOError(io.ErrShortWrite)
	}

	return nil
}

// Cell returns the value at the cursor.
func (m *Machine) Cell() byte {
	return m.mem[m.cursor]
}

// Cursor returns the current tape index.
func (m *Machine) Cursor() int {
	return m.cursor
}

// Block returns the block that the next Step executes.
func (m *Machine) Block() BlockID {
	return m.block
}

// Steps returns the number of blocks completed so far.
func (m *Machine) Steps() uint64 {
	return m.steps
}

// Halted reports whether the run finished successfully.
func (m *Machine) Halted() bool {
	return m.halted
}

// Err returns the failure that stopped the run, if any.
func (m *Machine) Err() error {
	return m.err
}
