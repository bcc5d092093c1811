package core

import (
	"fmt"
	"io"
	"strconv"

	"github.com/jedib0t/go-pretty/v6/table"
)

const stateWindow = 8

// State is a snapshot of a machine for dumps and traces.
type State struct {
	Block  BlockID
	Cursor int
	Steps  uint64
	Halted bool

	// Cells holds the tape from WindowStart around the cursor.
	WindowStart int
	Cells       []byte
}

// State captures the machine around the cursor.
func (m *Machine) State() State {
	lo := m.cursor - stateWindow
	if lo < 0 {
		lo = 0
	}
	hi := m.cursor + stateWindow + 1
	if hi > len(m.mem) {
		hi = len(m.mem)
	}

	return State{
		Block:       m.block,
		Cursor:      m.cursor,
		Steps:       m.steps,
		Halted:      m.halted,
		WindowStart: lo,
		Cells:       append([]byte(nil), m.mem[lo:hi]...),
	}
}

// PrintState renders s as a table of cells with the cursor marked.
func PrintState(w io.Writer, s State) {
	fmt.Fprintf(w, "block=%s cursor=%d steps=%d halted=%t\n",
		target(s.Block), s.Cursor, s.Steps, s.Halted)

	t := table.NewWriter()
	t.SetOutputMirror(w)
	t.SetTitle("Tape")
	t.AppendHeader(table.Row{"", "Addr", "Value", "Char"})

	for i, v := range s.Cells {
		addr := s.WindowStart + i
		mark := ""
		if addr == s.Cursor {
			mark = ">"
		}
		t.AppendRow(table.Row{mark, addr, v, printable(v)})
	}

	t.Render()
}

func printable(v byte) string {
	if v >= 0x20 && v < 0x7f {
		return string(rune(v))
	}
	return strconv.QuoteRuneToASCII(rune(v))
}
