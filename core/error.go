package core

import (
	"errors"
	"fmt"
)

// Kind describes the nature of a failed run.
type Kind int

// List of failure kinds for Kind.
const (
	SyntaxError Kind = iota
	PointerOutOfBounds
	IOError
)

var strKind = []string{
	"syntax error",
	"pointer out of bounds",
	"I/O error",
}

func (k Kind) String() string {
	if k < 0 || int(k) >= len(strKind) {
		return fmt.Sprintf("Kind(%d)", int(k))
	}
	return strKind[k]
}

// Error describes why a program could not be compiled or run.
type Error struct {
	Kind Kind  // nature of the failure
	Char rune  // offending bracket or direction; zero for IOError
	Line int   // source line of the bracket when Kind is SyntaxError
	Col  int   // source column of the bracket when Kind is SyntaxError
	Err  error // underlying error when Kind is IOError
}

func (e *Error) Error() string {
	switch e.Kind {
	case SyntaxError:
		if e.Line > 0 {
			return fmt.Sprintf("unmatched bracket `%c` at %d:%d", e.Char, e.Line, e.Col)
		}
		return fmt.Sprintf("unmatched bracket `%c`", e.Char)
	case PointerOutOfBounds:
		return fmt.Sprintf("pointer out of bounds moving `%c`", e.Char)
	default:
		if e.Err != nil {
			return "unexpected I/O error: " + e.Err.Error()
		}
		return "unexpected I/O error"
	}
}

func (e *Error) Unwrap() error {
	return e.Err
}

func newSyntaxError(bracket rune, line, col int) error {
	return &Error{Kind: SyntaxError, Char: bracket, Line: line, Col: col}
}

func newBoundsError(dir rune) error {
	return &Error{Kind: PointerOutOfBounds, Char: dir}
}

func newIOError(err error) error {
	return &Error{Kind: IOError, Err: err}
}

// KindOf returns the kind of a core failure found in err's chain.
func KindOf(err error) (Kind, bool) {
	var e *Error
	if errors.As(err, &e) {
		return e.Kind, true
	}
	return 0, false
}

// IsSyntaxError reports whether err is an unmatched bracket.
func IsSyntaxError(err error) bool {
	k, ok := KindOf(err)
	return ok && k == SyntaxError
}

// IsOutOfBounds reports whether err is a cursor move past a tape edge.
func IsOutOfBounds(err error) bool {
	k, ok := KindOf(err)
	return ok && k == PointerOutOfBounds
}

// IsIOError reports whether err is an input or output failure.
func IsIOError(err error) bool {
	k, ok := KindOf(err)
	return ok && k == IOError
}
