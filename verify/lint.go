package verify

import (
	"fmt"

	"github.com/sarchlab/esobox/core"
)

// RunLint performs static lint checks on a compiled program for the given
// tape. Returns a list of issues found, or an empty list if there are none.
func RunLint(prog *core.Program, tape core.Tape) []Issue {
	var issues []Issue

	issues = append(issues, lintLoops(prog)...)

	if tape.Policy == core.BoundsChecked {
		if issue, ok := lintEntryBounds(prog, tape); ok {
			issues = append(issues, issue)
		}
	}

	return issues
}

// opensLoop reports whether block id was sealed by `[`. Such a block always
// falls through to the loop body on a non-zero cell.
func opensLoop(prog *core.Program, id core.BlockID) bool {
	return prog.Blocks[id].JNZ == id+1
}

// closesLoop reports whether block id was sealed by `]`. Its JNZ jumps back
// to the first body block of the loop.
func closesLoop(prog *core.Program, id core.BlockID) bool {
	jnz := prog.Blocks[id].JNZ
	return jnz != core.Halt && jnz <= id
}

func lintLoops(prog *core.Program) []Issue {
	var issues []Issue

	for i, b := range prog.Blocks {
		id := core.BlockID(i)

		if opensLoop(prog, id) && len(b.Ops) == 0 &&
			(id == 0 || closesLoop(prog, id-1)) {
			where := "at program start"
			if id > 0 {
				where = "right after a loop"
			}
			issues = append(issues, Issue{
				Type:    IssueDeadLoop,
				Block:   id,
				Op:      -1,
				Message: fmt.Sprintf("loop %s is never entered: the cell is always zero", where),
			})
		}

		if closesLoop(prog, id) && b.JNZ == id && len(b.Ops) == 0 {
			issues = append(issues, Issue{
				Type:    IssueSpinLoop,
				Block:   id,
				Op:      -1,
				Message: "empty loop never terminates on a non-zero cell",
			})
		}
	}

	return issues
}

// lintEntryBounds follows the cursor through the entry block, which always
// runs in full before the first branch.
func lintEntryBounds(prog *core.Program, tape core.Tape) (Issue, bool) {
	cursor := 0

	for i, op := range prog.Entry().Ops {
		switch op {
		case core.MoveLeft:
			cursor--
		case core.MoveRight:
			cursor++
		default:
			continue
		}

		if cursor < 0 {
			return Issue{
				Type:    IssueUnderflow,
				Block:   0,
				Op:      i,
				Message: "cursor moves left of cell 0",
			}, true
		}
		if cursor >= tape.Length {
			return Issue{
				Type:    IssueOverflow,
				Block:   0,
				Op:      i,
				Message: fmt.Sprintf("cursor moves right of cell %d", tape.Length-1),
			}, true
		}
	}

	return Issue{}, false
}
