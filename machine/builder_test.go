package machine

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
)

func lastZeroBuilder() *Builder {
	return NewBuilder().
		States("start", "accept", "reject", "iterate_to_end", "last_symbol_check").
		TapeSymbols('_', '>').
		LanguageSymbols('0', '1').
		Start("start").
		Accept("accept").
		Reject("reject").
		OnAll("start", "iterate_to_end", 1).
		On("iterate_to_end", '_', "last_symbol_check", '_', -1).
		On("iterate_to_end", '>', "iterate_to_end", '>', 1).
		On("iterate_to_end", '0', "iterate_to_end", '0', 1).
		On("iterate_to_end", '1', "iterate_to_end", '1', 1).
		On("last_symbol_check", '_', "reject", '_', 1).
		On("last_symbol_check", '>', "reject", '>', 1).
		On("last_symbol_check", '0', "accept", '0', 1).
		On("last_symbol_check", '1', "reject", '1', 1)
}

func TestBuilder_Build(t *testing.T) {
	assert := assert.New(t)

	m, err := lastZeroBuilder().Build()
	assert.NoError(err)
	if err != nil {
		t.FailNow()
	}

	assert.Equal(0, m.StartState())
	assert.Equal(1, m.AcceptState())
	assert.Equal(2, m.RejectState())
	assert.Len(m.States(), 5)

	expected := [][]Transition{
		{{3, 0, 1}, {3, 1, 1}, {3, 2, 1}, {3, 3, 1}},
		nil,
		nil,
		{{4, 0, -1}, {3, 1, 1}, {3, 2, 1}, {3, 3, 1}},
		{{2, 0, 1}, {2, 1, 1}, {1, 2, 1}, {2, 3, 1}},
	}
	assert.Equal(expected, m.Transitions())
}

func TestBuilder_Errors(t *testing.T) {
	assert := assert.New(t)

	base := func() *Builder {
		return NewBuilder().
			States("s", "y", "n").
			TapeSymbols('_', '>').
			LanguageSymbols('a').
			Start("s").Accept("y").Reject("n")
	}

	table := []struct {
		name    string
		builder *Builder
		err     error
	}{
		{"state dup", base().States("s"), ErrStateDuplicate("s")},
		{"symbol dup", base().LanguageSymbols('a'), ErrSymbolDuplicate('a')},
		{"tape short", NewBuilder().States("s").TapeSymbols('_'), ErrTapeSymbols},
		{"start missing", base().Start(""), ErrStartMissing},
		{"accept missing", base().Accept(""), ErrAcceptMissing},
		{"reject missing", base().Reject(""), ErrRejectMissing},
		{"start unknown", base().Start("x"), ErrStateUnknown("x")},
		{"rule state", base().On("x", 'a', "y", 'a', 1), ErrStateUnknown("x")},
		{"rule next", base().On("s", 'a', "x", 'a', 1), ErrStateUnknown("x")},
		{"rule read", base().On("s", 'b', "y", 'a', 1), ErrSymbolUnknown('b')},
		{"rule write", base().On("s", 'a', "y", 'b', 1), ErrSymbolUnknown('b')},
		{"rule dup", base().OnAll("s", "y", 1).On("s", 'a', "n", 'a', 1), ErrTransitionDuplicate{"s", 'a'}},
		{"missing", base().On("s", 'a', "y", 'a', 1), ErrTransitionMissing{"s", '_'}},
	}

	for _, entry := range table {
		m, err := entry.builder.Build()
		assert.Nil(m, entry.name)
		assert.True(errors.Is(err, entry.err), "%v: %v", entry.name, err)
	}

	// Rule errors carry the rule number.
	_, err := base().OnAll("s", "y", 1).On("s", 'q', "y", 'a', 1).Build()
	var rerr *ErrRule
	assert.True(errors.As(err, &rerr))
	assert.Equal(4, rerr.Rule)
	assert.Contains(err.Error(), "rule 4")
}

func TestBuilder_TerminalRules(t *testing.T) {
	assert := assert.New(t)

	m, err := NewBuilder().
		States("s", "y", "n").
		TapeSymbols('_', '>').
		Start("s").Accept("y").Reject("n").
		OnAll("s", "y", 0).
		On("y", '_', "n", '_', 1).
		Build()
	assert.NoError(err)

	// A terminal row may be partially defined.
	assert.Equal(Transition{Next: 2, Write: 0, Move: 1}, m.Transition(1, 0))
	assert.Nil(m.Transitions()[2])
}
