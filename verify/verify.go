// Package verify provides static checks over compiled programs.
//
// RunLint inspects the block graph produced by core.Compile without running
// it. It reports:
//
//   - DEAD_LOOP: a loop that can only be reached with a zero cell, at the
//     start of the program or right after another loop closes. These are
//     usually comment loops and are harmless.
//   - SPIN_LOOP: an empty loop `[]`, which never terminates when entered on
//     a non-zero cell.
//   - UNDERFLOW / OVERFLOW: on a bounds-checked tape, the entry block moves
//     the cursor past an edge before the first branch, so every run fails.
//
// # Usage Example
//
//	prog, err := core.Compile(source)
//	if err != nil {
//	    return err
//	}
//	issues := verify.RunLint(prog, core.ClassicTape)
//	verify.WriteReport(os.Stderr, issues)
package verify

import (
	"fmt"

	"github.com/sarchlab/esobox/core"
)

// IssueType categorizes lint issues
type IssueType string

const (
	IssueDeadLoop  IssueType = "DEAD_LOOP"
	IssueSpinLoop  IssueType = "SPIN_LOOP"
	IssueUnderflow IssueType = "UNDERFLOW"
	IssueOverflow  IssueType = "OVERFLOW"
)

// Issue represents a single lint issue
type Issue struct {
	Type    IssueType
	Block   core.BlockID // block the issue was found in
	Op      int          // op index within the block, or -1
	Message string
}

func (i Issue) String() string {
	if i.Op >= 0 {
		return fmt.Sprintf("[%s] bb%d op %d: %s", i.Type, i.Block, i.Op, i.Message)
	}
	return fmt.Sprintf("[%s] bb%d: %s", i.Type, i.Block, i.Message)
}

// Fatal reports whether the issue makes every run fail.
func (i Issue) Fatal() bool {
	return i.Type == IssueUnderflow || i.Type == IssueOverflow
}
