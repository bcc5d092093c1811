package core

import (
	"fmt"
	"strings"
)

// BlockID indexes Program.Blocks.
type BlockID int

// Halt is the absent branch target. Following it ends the run.
const Halt BlockID = -1

// BasicBlock is a run of ops with no internal control transfer. After the
// ops execute, control goes to JZ if the current cell is zero and to JNZ
// otherwise.
type BasicBlock struct {
	Ops []Op
	JZ  BlockID
	JNZ BlockID
}

// IsTerminal reports whether both branch targets are absent.
func (b BasicBlock) IsTerminal() bool {
	return b.JZ == Halt && b.JNZ == Halt
}

// Program is a compiled source. Blocks[0] is the entry block.
type Program struct {
	Blocks []BasicBlock
}

type pendingLoop struct {
	block     BlockID
	line, col int
}

// Compile translates source text into basic blocks. Characters other than
// the eight commands are ignored. Unmatched brackets are reported as a
// SyntaxError naming the bracket.
func Compile(source string) (*Program, error) {
	var (
		blocks  []BasicBlock
		pending []pendingLoop
		ops     []Op
	)

	line, col := 1, 0
	for _, c := range source {
		col++

		switch c {
		case '\n':
			line++
			col = 0
		case '[':
			id := BlockID(len(blocks))
			blocks = append(blocks, BasicBlock{
				Ops: ops,
				JZ:  Halt,
				JNZ: id + 1,
			})
			pending = append(pending, pendingLoop{block: id, line: line, col: col})
			ops = nil
		case ']':
			if len(pending) == 0 {
				return nil, newSyntaxError(']', line, col)
			}

			open := pending[len(pending)-1]
			pending = pending[:len(pending)-1]

			next := BlockID(len(blocks) + 1)
			blocks = append(blocks, BasicBlock{
				Ops: ops,
				JZ:  next,
				JNZ: open.block + 1,
			})
			blocks[open.block].JZ = next
			ops = nil
		default:
			if op, ok := opFromRune(c); ok {
				ops = append(ops, op)
			}
		}
	}

	if len(pending) > 0 {
		open := pending[len(pending)-1]
		return nil, newSyntaxError('[', open.line, open.col)
	}

	blocks = append(blocks, BasicBlock{Ops: ops, JZ: Halt, JNZ: Halt})

	return &Program{Blocks: blocks}, nil
}

// Entry returns the entry block.
func (p *Program) Entry() BasicBlock {
	return p.Blocks[0]
}

// NumOps counts the leaf instructions across all blocks.
func (p *Program) NumOps() int {
	n := 0
	for _, b := range p.Blocks {
		n += len(b.Ops)
	}
	return n
}

// Validate checks that every branch target is Halt or a block of p.
func (p *Program) Validate() error {
	if len(p.Blocks) == 0 {
		return fmt.Errorf("program has no entry block")
	}

	for i, b := range p.Blocks {
		for _, t := range [2]BlockID{b.JZ, b.JNZ} {
			if t != Halt && (t < 0 || int(t) >= len(p.Blocks)) {
				return fmt.Errorf("block %d branches to missing block %d", i, t)
			}
		}
	}

	return nil
}

func (p *Program) String() string {
	var sb strings.Builder
	for i, b := range p.Blocks {
		fmt.Fprintf(&sb, "bb%d:", i)
		if len(b.Ops) > 0 {
			sb.WriteByte(' ')
			for _, op := range b.Ops {
				sb.WriteRune(op.Char())
			}
		}
		fmt.Fprintf(&sb, " jz=%s jnz=%s\n", target(b.JZ), target(b.JNZ))
	}
	return sb.String()
}

func target(id BlockID) string {
	if id == Halt {
		return "halt"
	}
	return fmt.Sprintf("bb%d", id)
}
