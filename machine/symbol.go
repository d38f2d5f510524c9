package machine

import (
	"fmt"
)

// State is a machine state. Its identity is its position in the
// machine's state list; the label is cosmetic.
type State struct {
	Label string
}

func (st State) String() string {
	return st.Label
}

// Symbol is a tape or language symbol.
type Symbol struct {
	Char rune
}

func (sym Symbol) String() string {
	return string(sym.Char)
}

// Transition is the action taken on reading a symbol in a state.
type Transition struct {
	Next  int // Next state index.
	Write int // Unified symbol index written at the old head position.
	Move  int // Signed head displacement, any magnitude.
}

// String renders the transition as "next,write,move".
func (tr Transition) String() string {
	return fmt.Sprintf("%d,%d,%s", tr.Next, tr.Write, MoveString(tr.Move))
}

// MoveString renders a head displacement: S for none, Ln for n cells
// left, Rn for n cells right.
func MoveString(move int) string {
	switch {
	case move == 0:
		return "S"
	case move < 0:
		return fmt.Sprintf("L%d", uint(-(move+1))+1)
	default:
		return fmt.Sprintf("R%d", move)
	}
}
