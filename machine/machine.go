// Copyright 2025, Jason S. McMullan <jason.mcmullan@gmail.com>

package machine

import (
	"fmt"
	"iter"
	"slices"
	"strings"
	"text/tabwriter"

	"github.com/ezrec/tm/internal"
)

const (
	BLANK       = 0 // Unified index of the blank symbol.
	LEFT_MARKER = 1 // Unified index of the left-end marker.
)

// Machine is the immutable description of a deterministic Turing machine.
type Machine struct {
	states          []State
	tapeSymbols     []Symbol
	languageSymbols []Symbol
	transitions     [][]Transition
	start           int
	accept          int
	reject          int
}

// New creates a machine from its parts. No cross-field validation is
// performed; out-of-range indices surface when a computation uses them.
func New(states []State, languageSymbols []Symbol, tapeSymbols []Symbol, transitions [][]Transition, start, accept, reject int) *Machine {
	return &Machine{
		states:          states,
		tapeSymbols:     tapeSymbols,
		languageSymbols: languageSymbols,
		transitions:     transitions,
		start:           start,
		accept:          accept,
		reject:          reject,
	}
}

// Default returns the minimal well-formed machine: every transition from
// the start state goes directly to the accept state.
func Default() *Machine {
	return &Machine{
		states:          []State{{"q0"}, {"q1"}, {"q2"}},
		tapeSymbols:     []Symbol{{'_'}, {'>'}},
		languageSymbols: []Symbol{{'0'}, {'1'}},
		transitions: [][]Transition{
			{
				{Next: 1, Write: 0, Move: 1},
				{Next: 1, Write: 1, Move: 1},
				{Next: 1, Write: 2, Move: 1},
				{Next: 1, Write: 3, Move: 1},
			},
		},
		start:  0,
		accept: 1,
		reject: 2,
	}
}

// States returns the state list. The slice must not be modified.
func (m *Machine) States() []State { return m.states }

// TapeSymbols returns the tape symbols. The slice must not be modified.
func (m *Machine) TapeSymbols() []Symbol { return m.tapeSymbols }

// LanguageSymbols returns the language symbols. The slice must not be modified.
func (m *Machine) LanguageSymbols() []Symbol { return m.languageSymbols }

// Transitions returns the transition table, indexed [state][symbol].
// The table must not be modified.
func (m *Machine) Transitions() [][]Transition { return m.transitions }

func (m *Machine) StartState() int  { return m.start }
func (m *Machine) AcceptState() int { return m.accept }
func (m *Machine) RejectState() int { return m.reject }

// Transition returns the transition for a state and unified symbol
// index. Like a direct table access, it panics on a missing entry.
func (m *Machine) Transition(state, symbol int) Transition {
	return m.transitions[state][symbol]
}

// Terminal reports if the state is the accept or reject state.
func (m *Machine) Terminal(state int) bool {
	return state == m.accept || state == m.reject
}

// Alphabet iterates over the unified symbol index space.
func (m *Machine) Alphabet() iter.Seq2[int, Symbol] {
	return internal.IterEnumerate(internal.IterSeqConcat(
		slices.Values(m.tapeSymbols),
		slices.Values(m.languageSymbols),
	))
}

// Symbol returns the symbol at a unified index.
func (m *Machine) Symbol(index int) Symbol {
	if index < len(m.tapeSymbols) {
		return m.tapeSymbols[index]
	}
	return m.languageSymbols[index-len(m.tapeSymbols)]
}

// SymbolIndex resolves a character to its unified index. Language
// symbols take priority over tape symbols.
func (m *Machine) SymbolIndex(char rune) (index int, ok bool) {
	sym := Symbol{char}

	index = slices.Index(m.languageSymbols, sym)
	if index >= 0 {
		return len(m.tapeSymbols) + index, true
	}

	index = slices.Index(m.tapeSymbols, sym)
	if index >= 0 {
		return index, true
	}

	return 0, false
}

// String renders the transition table, one row per state.
func (m *Machine) String() string {
	var sb strings.Builder

	tw := tabwriter.NewWriter(&sb, 0, 4, 2, ' ', 0)

	fmt.Fprint(tw, "state")
	for _, sym := range m.Alphabet() {
		fmt.Fprintf(tw, "\t%v", sym)
	}
	fmt.Fprintln(tw)

	for n, st := range m.states {
		var mark string
		switch n {
		case m.start:
			mark = "-> "
		case m.accept:
			mark = "+ "
		case m.reject:
			mark = "- "
		}
		fmt.Fprintf(tw, "%s%d:%v", mark, n, st)
		if n < len(m.transitions) {
			for _, tr := range m.transitions[n] {
				fmt.Fprintf(tw, "\t%v", tr)
			}
		}
		fmt.Fprintln(tw)
	}

	tw.Flush()

	return sb.String()
}
