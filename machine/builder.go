package machine

import (
	"slices"
)

type rule struct {
	state string
	read  rune
	next  string
	write rune
	move  int
}

// Builder assembles a Machine from state labels and symbol characters.
//
// Labels and characters are resolved in Build, so states may be
// referenced before they are declared. OnAll is the exception: it
// expands over the symbols declared so far.
type Builder struct {
	states          []State
	tapeSymbols     []Symbol
	languageSymbols []Symbol

	start  string
	accept string
	reject string

	rules []rule
}

// NewBuilder creates an empty builder.
func NewBuilder() *Builder {
	return &Builder{}
}

// States appends states, in index order.
func (b *Builder) States(labels ...string) *Builder {
	for _, label := range labels {
		b.states = append(b.states, State{label})
	}
	return b
}

// TapeSymbols appends tape symbols. The first is the blank, the
// second the left-end marker.
func (b *Builder) TapeSymbols(chars ...rune) *Builder {
	for _, char := range chars {
		b.tapeSymbols = append(b.tapeSymbols, Symbol{char})
	}
	return b
}

// LanguageSymbols appends input alphabet symbols.
func (b *Builder) LanguageSymbols(chars ...rune) *Builder {
	for _, char := range chars {
		b.languageSymbols = append(b.languageSymbols, Symbol{char})
	}
	return b
}

func (b *Builder) Start(label string) *Builder {
	b.start = label
	return b
}

func (b *Builder) Accept(label string) *Builder {
	b.accept = label
	return b
}

func (b *Builder) Reject(label string) *Builder {
	b.reject = label
	return b
}

// On adds the rule: in state, reading read, go to next, write write and
// move the head by move cells.
func (b *Builder) On(state string, read rune, next string, write rune, move int) *Builder {
	b.rules = append(b.rules, rule{
		state: state,
		read:  read,
		next:  next,
		write: write,
		move:  move,
	})
	return b
}

// OnAll adds a rule for every symbol declared so far, leaving the
// symbol unchanged.
func (b *Builder) OnAll(state string, next string, move int) *Builder {
	for _, sym := range slices.Concat(b.tapeSymbols, b.languageSymbols) {
		b.On(state, sym.Char, next, sym.Char, move)
	}
	return b
}

func (b *Builder) stateIndex(label string) (index int, err error) {
	index = slices.Index(b.states, State{label})
	if index < 0 {
		err = ErrStateUnknown(label)
	}
	return
}

// Build resolves the description into a Machine.
func (b *Builder) Build() (m *Machine, err error) {
	for n, st := range b.states {
		if slices.Contains(b.states[:n], st) {
			err = ErrStateDuplicate(st.Label)
			return
		}
	}

	for _, symbols := range [][]Symbol{b.tapeSymbols, b.languageSymbols} {
		for n, sym := range symbols {
			if slices.Contains(symbols[:n], sym) {
				err = ErrSymbolDuplicate(sym.Char)
				return
			}
		}
	}

	if len(b.tapeSymbols) < 2 {
		err = ErrTapeSymbols
		return
	}

	m = &Machine{
		states:          slices.Clone(b.states),
		tapeSymbols:     slices.Clone(b.tapeSymbols),
		languageSymbols: slices.Clone(b.languageSymbols),
	}

	for _, distinguished := range []struct {
		label   string
		index   *int
		missing error
	}{
		{b.start, &m.start, ErrStartMissing},
		{b.accept, &m.accept, ErrAcceptMissing},
		{b.reject, &m.reject, ErrRejectMissing},
	} {
		if len(distinguished.label) == 0 {
			return nil, distinguished.missing
		}
		*distinguished.index, err = b.stateIndex(distinguished.label)
		if err != nil {
			return nil, err
		}
	}

	width := len(m.tapeSymbols) + len(m.languageSymbols)
	m.transitions = make([][]Transition, len(m.states))
	defined := make([][]bool, len(m.states))

	for n, r := range b.rules {
		var tr Transition
		var state, read int
		var ok bool

		state, err = b.stateIndex(r.state)
		if err == nil {
			tr.Next, err = b.stateIndex(r.next)
		}
		if err == nil {
			read, ok = m.SymbolIndex(r.read)
			if !ok {
				err = ErrSymbolUnknown(r.read)
			}
		}
		if err == nil {
			tr.Write, ok = m.SymbolIndex(r.write)
			if !ok {
				err = ErrSymbolUnknown(r.write)
			}
		}
		if err == nil && defined[state] != nil && defined[state][read] {
			err = ErrTransitionDuplicate{State: r.state, Symbol: r.read}
		}
		if err != nil {
			return nil, &ErrRule{Rule: n + 1, Err: err}
		}

		if m.transitions[state] == nil {
			m.transitions[state] = make([]Transition, width)
			defined[state] = make([]bool, width)
		}

		tr.Move = r.move
		m.transitions[state][read] = tr
		defined[state][read] = true
	}

	for state, st := range m.states {
		if m.Terminal(state) {
			continue
		}
		for index, sym := range m.Alphabet() {
			if defined[state] == nil || !defined[state][index] {
				return nil, ErrTransitionMissing{State: st.Label, Symbol: sym.Char}
			}
		}
	}

	return
}
