package machine

import (
	"errors"

	"github.com/ezrec/tm/translate"
)

var f = translate.From

var (
	// Builder errors
	ErrStartMissing  = errors.New(f("start state missing"))
	ErrAcceptMissing = errors.New(f("accept state missing"))
	ErrRejectMissing = errors.New(f("reject state missing"))
	ErrTapeSymbols   = errors.New(f("tape symbols must include blank and left marker"))
)

type ErrStateUnknown string

func (err ErrStateUnknown) Error() string {
	return f("state %q unknown", string(err))
}

type ErrStateDuplicate string

func (err ErrStateDuplicate) Error() string {
	return f("state %q duplicated", string(err))
}

type ErrSymbolUnknown rune

func (err ErrSymbolUnknown) Error() string {
	return f("symbol %q unknown", rune(err))
}

type ErrSymbolDuplicate rune

func (err ErrSymbolDuplicate) Error() string {
	return f("symbol %q duplicated", rune(err))
}

// ErrTransitionDuplicate is a second transition for a (state, symbol) pair.
type ErrTransitionDuplicate struct {
	State  string
	Symbol rune
}

func (err ErrTransitionDuplicate) Error() string {
	return f("transition %v,%q duplicated", err.State, err.Symbol)
}

// ErrTransitionMissing is a non-terminal state without a transition
// for some symbol.
type ErrTransitionMissing struct {
	State  string
	Symbol rune
}

func (err ErrTransitionMissing) Error() string {
	return f("transition %v,%q missing", err.State, err.Symbol)
}

// ErrRule indicates the transition rule that introduced an error.
type ErrRule struct {
	Rule int // One-based rule number, in Builder.On call order.
	Err  error
}

func (err *ErrRule) Error() string {
	return f("rule %d %v", err.Rule, err.Err)
}

func (err *ErrRule) Unwrap() error {
	return err.Err
}
