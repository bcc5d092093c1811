// Package core compiles Brainfuck source into basic blocks and runs them on
// a tape machine.
//
// Source text is compiled in one pass. Commands other than brackets are
// appended to the block being built; `[` and `]` seal the block and become
// its branch targets:
//
//	++[>+<-]>.
//
//	bb0: ++    jz=bb2 jnz=bb1
//	bb1: >+<-  jz=bb2 jnz=bb1
//	bb2: >.    jz=halt jnz=halt
//
// After a block's ops run, the machine follows jz if the current cell is
// zero and jnz otherwise. Following halt ends the run.
package core

import "io"

// Run compiles source and executes it on a fresh tape, reading `,` from in
// and writing `.` to out. Bytes written before a failure stay written.
func Run(source string, in io.Reader, out io.Writer, tape Tape) error {
	prog, err := Compile(source)
	if err != nil {
		return err
	}

	m, err := NewBuilder().
		WithTape(tape).
		WithInput(in).
		WithOutput(out).
		Build(prog)
	if err != nil {
		return err
	}

	return m.Run()
}
