// Copyright 2025, Jason S. McMullan <jason.mcmullan@gmail.com>

package computation

import (
	"fmt"
	"log/slog"
	"math"
	"slices"
	"strings"

	"github.com/ezrec/tm/machine"
)

// Computation is the execution of a machine on one input word.
type Computation struct {
	Hooks  Hooks        // Observers of steps and halting.
	Logger *slog.Logger // If set, enables step tracing at debug level.

	machine *machine.Machine
	state   int
	head    int
	tape    []int
	status  Status
	clock   Clock
}

// Start creates an unbounded computation of a machine on a word.
func Start(m *machine.Machine, word string) (*Computation, error) {
	return BoundedStart(m, word, Limits{})
}

// BoundedStart creates a computation of a machine on a word, subject to
// the limits. The word is encoded after a left-end marker; the first
// character found in neither symbol collection fails the start.
//
// A zero or negative limit leaves that resource unbounded; a bound of 0
// therefore behaves like no bound at all, not like a bound reached at once.
func BoundedStart(m *machine.Machine, word string, limits Limits) (c *Computation, err error) {
	tape, err := Encode(m, word)
	if err != nil {
		return
	}

	c = &Computation{
		machine: m,
		state:   m.StartState(),
		head:    0,
		tape:    tape,
		status:  Executing,
		clock:   newClock(limits, len(tape)),
	}

	return
}

// Encode converts a word to an initial tape: the left-end marker
// followed by the unified index of every character.
func Encode(m *machine.Machine, word string) (tape []int, err error) {
	tape = make([]int, 1, 1+len(word))
	tape[0] = machine.LEFT_MARKER

	position := 0
	for _, char := range word {
		index, ok := m.SymbolIndex(char)
		if !ok {
			return nil, &ErrInvalidSymbol{Symbol: char, Position: position}
		}
		tape = append(tape, index)
		position++
	}

	return
}

// Machine returns the machine being run.
func (c *Computation) Machine() *machine.Machine { return c.machine }

// State returns the current state index.
func (c *Computation) State() int { return c.state }

// Head returns the head position.
func (c *Computation) Head() int { return c.head }

// Tape returns a copy of the tape contents, as unified symbol indices.
func (c *Computation) Tape() []int { return slices.Clone(c.tape) }

// Status returns the execution status.
func (c *Computation) Status() Status { return c.status }

// Clock returns the resource clock.
func (c *Computation) Clock() Clock { return c.clock }

// Step executes the next transition from the current configuration.
// It does nothing once the computation has halted.
//
// When the head moves past the end of the tape, the tape grows with blank
// cells until it covers the head, and the space clock advances by the
// number of cells added. If that reaches the space bound, the computation
// halts with Spaceout and the tape is grown no further than the bound.
func (c *Computation) Step() {
	if c.status.Halted() {
		return
	}

	c.step()

	if c.Logger != nil {
		c.Logger.Debug("step",
			"steps", c.clock.Time,
			"state", c.state,
			"head", c.head,
			"space", c.clock.Space,
			"status", c.status)
	}

	c.Hooks.step(c)
	if c.status.Halted() {
		c.Hooks.halt(c)
	}
}

func (c *Computation) step() {
	// The time bound halts before the transition takes effect.
	if c.clock.timeout() {
		c.status = Timeout
		return
	}

	tr := c.machine.Transition(c.state, c.tape[c.head])

	head := c.head
	if tr.Move > 0 {
		if head > math.MaxInt-tr.Move {
			panic("computation: head position overflow")
		}
		head += tr.Move
	} else {
		head = max(head+tr.Move, 0)
	}

	c.state = tr.Next
	c.tape[c.head] = tr.Write
	c.head = head

	if c.head >= len(c.tape) {
		cells := c.head - len(c.tape) + 1
		if c.clock.grow(cells) {
			// Only the cells within the space bound are allocated.
			cells = min(cells, max(c.clock.MaxSpace-len(c.tape), 1))
			c.tape = append(c.tape, make([]int, cells)...)
			c.status = Spaceout
			return
		}
		c.tape = append(c.tape, make([]int, cells)...)
	}

	switch tr.Next {
	case c.machine.AcceptState():
		c.status = Accept
	case c.machine.RejectState():
		c.status = Reject
	}
}

// Run steps the computation until it halts.
func (c *Computation) Run() {
	for c.status == Executing {
		c.Step()
	}
}

// String returns the current configuration as text.
func (c *Computation) String() (text string) {
	m := c.machine

	cells := make([]string, len(c.tape))
	for n, index := range c.tape {
		cells[n] = m.Symbol(index).String()
		if n == c.head {
			cells[n] = "[" + cells[n] + "]"
		}
	}

	var state string
	if c.state < len(m.States()) {
		state = m.States()[c.state].String()
	}

	text += fmt.Sprintf("% 6s: %d:%v\n", "state", c.state, state)
	text += fmt.Sprintf("% 6s: %d\n", "head", c.head)
	text += fmt.Sprintf("% 6s: %v\n", "status", c.status)
	text += fmt.Sprintf("% 6s: %d\n", "time", c.clock.Time)
	text += fmt.Sprintf("% 6s: %d\n", "space", c.clock.Space)
	text += fmt.Sprintf("% 6s: %s\n", "tape", strings.Join(cells, " "))

	return
}
