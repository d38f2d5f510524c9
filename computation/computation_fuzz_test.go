package computation

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/ezrec/tm/machine"
)

// randomMachine builds a well-formed 5 state machine over _ > 0 1 from
// a byte table. Moves range over -2..+2.
func randomMachine(table []byte) *machine.Machine {
	states := []machine.State{{Label: "q0"}, {Label: "y"}, {Label: "n"}, {Label: "q3"}, {Label: "q4"}}
	tape := []machine.Symbol{{Char: '_'}, {Char: '>'}}
	language := []machine.Symbol{{Char: '0'}, {Char: '1'}}

	transitions := make([][]machine.Transition, len(states))
	n := 0
	next := func() int {
		var b byte
		if len(table) > 0 {
			b = table[n%len(table)]
		}
		n++
		return int(b)
	}

	for _, state := range []int{0, 3, 4} {
		transitions[state] = make([]machine.Transition, 4)
		for symbol := range 4 {
			transitions[state][symbol] = machine.Transition{
				Next:  next() % len(states),
				Write: next() % 4,
				Move:  next()%5 - 2,
			}
		}
	}

	return machine.New(states, language, tape, transitions, 0, 1, 2)
}

func FuzzComputation(f *testing.F) {
	f.Add([]byte{}, "", 10, 0)
	f.Add([]byte{3, 1, 4, 1, 5, 9, 2, 6}, "0110", 50, 8)
	f.Add([]byte{0xff, 0x00, 0x7f}, "1x0", 100, 3)
	f.Add([]byte{1, 2, 3}, "_>01", 1, 1)

	f.Fuzz(func(t *testing.T, table []byte, word string, maxTime int, maxSpace int) {
		assert := assert.New(t)

		// Always bound time so every run terminates.
		maxTime = 1 + (maxTime&0x7fffffff)%500

		m := randomMachine(table)
		c, err := BoundedStart(m, word, Limits{MaxTime: maxTime, MaxSpace: maxSpace})

		position := 0
		for _, char := range word {
			if _, ok := m.SymbolIndex(char); !ok {
				break
			}
			position++
		}

		if position < len([]rune(word)) {
			assert.Nil(c)
			var serr *ErrInvalidSymbol
			assert.True(errors.As(err, &serr))
			assert.Equal(position, serr.Position)
			return
		}

		assert.NoError(err)
		assert.Equal(1+position, len(c.Tape()))

		halts := 0
		c.Hooks.OnHalt = func(*Computation) { halts++ }

		for c.Status() == Executing {
			c.Step()
			assert.GreaterOrEqual(c.Head(), 0)
			if c.Status() == Spaceout {
				// Growth stops at the bound once it is reached.
				assert.LessOrEqual(len(c.Tape()), c.Clock().Space)
				break
			}
			assert.Less(c.Head(), len(c.Tape()))
			assert.Equal(len(c.Tape()), c.Clock().Space)
		}

		assert.Equal(1, halts)
		assert.LessOrEqual(c.Clock().Time, maxTime)
		if c.Status() == Timeout {
			assert.Equal(maxTime, c.Clock().Time)
		}
		if c.Status() == Spaceout {
			assert.GreaterOrEqual(c.Clock().Space, maxSpace)
		}

		tape, clock := c.Tape(), c.Clock()
		c.Step()
		assert.Equal(tape, c.Tape())
		assert.Equal(clock, c.Clock())
	})
}
