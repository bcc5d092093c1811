package core

// Op is a leaf instruction inside a basic block. Loop brackets are not
// instructions; the compiler turns them into branch targets.
type Op uint8

const (
	Increment Op = iota
	Decrement
	MoveLeft
	MoveRight
	ReadByte
	WriteByte
)

var opChars = [...]rune{'+', '-', '<', '>', ',', '.'}

// Char returns the source command the op was compiled from.
func (op Op) Char() rune {
	if int(op) < len(opChars) {
		return opChars[op]
	}
	return '?'
}

func (op Op) String() string {
	return string(op.Char())
}

func opFromRune(c rune) (Op, bool) {
	switch c {
	case '+':
		return Increment, true
	case '-':
		return Decrement, true
	case '<':
		return MoveLeft, true
	case '>':
		return MoveRight, true
	case ',':
		return ReadByte, true
	case '.':
		return WriteByte, true
	}
	return 0, false
}
