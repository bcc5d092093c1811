package core

import (
	"errors"
	"fmt"
)

// Policy decides what happens when the cursor moves past a tape edge.
type Policy int

const (
	// Wraparound makes the tape a ring.
	Wraparound Policy = iota
	// BoundsChecked fails the run with PointerOutOfBounds.
	BoundsChecked
)

func (p Policy) String() string {
	switch p {
	case Wraparound:
		return "wraparound"
	case BoundsChecked:
		return "bounds_checked"
	default:
		return fmt.Sprintf("Policy(%d)", int(p))
	}
}

// ParsePolicy accepts the names produced by Policy.String.
func ParsePolicy(s string) (Policy, error) {
	switch s {
	case "wraparound":
		return Wraparound, nil
	case "bounds_checked":
		return BoundsChecked, nil
	}
	return 0, fmt.Errorf("unknown tape policy %q", s)
}

// Tape configures the memory of a machine.
type Tape struct {
	Length int
	Policy Policy
}

var (
	// RingTape is 65536 cells with wraparound addressing.
	RingTape = Tape{Length: 65536, Policy: Wraparound}

	// ClassicTape is 30000 cells with bounds-checked addressing.
	ClassicTape = Tape{Length: 30000, Policy: BoundsChecked}
)

// ErrBadTape is returned for a tape that no machine can use.
var ErrBadTape = errors.New("invalid tape configuration")

// Validate rejects non-positive lengths and unknown policies.
func (t Tape) Validate() error {
	if t.Length <= 0 {
		return fmt.Errorf("%w: length %d", ErrBadTape, t.Length)
	}
	if t.Policy != Wraparound && t.Policy != BoundsChecked {
		return fmt.Errorf("%w: %s", ErrBadTape, t.Policy)
	}
	return nil
}

func (t Tape) String() string {
	return fmt.Sprintf("%d cells, %s", t.Length, t.Policy)
}

// left returns the cursor after a MoveLeft from c.
func (t Tape) left(c int) (int, error) {
	if c > 0 {
		return c - 1, nil
	}
	if t.Policy == BoundsChecked {
		return c, newBoundsError('<')
	}
	return t.Length - 1, nil
}

// right returns the cursor after a MoveRight from c.
func (t Tape) right(c int) (int, error) {
	if c < t.Length-1 {
		return c + 1, nil
	}
	if t.Policy == BoundsChecked {
		return c, newBoundsError('>')
	}
	return 0, nil
}
