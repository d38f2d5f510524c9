package computation

import (
	"errors"

	"github.com/ezrec/tm/translate"
)

var f = translate.From

var (
	// ErrEncoding matches any failure to encode a word onto a tape.
	ErrEncoding = errors.New(f("invalid input symbol"))
)

// ErrInvalidSymbol is a word character found in neither the language
// nor the tape symbols.
type ErrInvalidSymbol struct {
	Symbol   rune
	Position int // Zero-based character position in the word.
}

func (err *ErrInvalidSymbol) Error() string {
	return f("invalid symbol %c found at position %d", err.Symbol, err.Position)
}

func (err *ErrInvalidSymbol) Is(target error) bool {
	return target == ErrEncoding
}
