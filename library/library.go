// Package library holds ready-made machines.
package library

import (
	"iter"
	"maps"
	"slices"

	"github.com/ezrec/tm/machine"
)

var _library = map[string]func() *machine.Machine{
	"default":   machine.Default,
	"last-zero": mustBuild(lastZero),
	"even-ones": mustBuild(evenOnes),
	"odd-ones":  mustBuild(oddOnes),
}

var _docs = map[string]string{
	"default":   "accepts every word in one step",
	"last-zero": "accepts words whose last symbol is 0",
	"even-ones": "accepts words with an even number of 1s",
	"odd-ones":  "accepts words whose 1st, 3rd, 5th... symbols are all 1",
}

func mustBuild(b func() *machine.Builder) func() *machine.Machine {
	m, err := b().Build()
	if err != nil {
		panic(err)
	}
	return func() *machine.Machine { return m }
}

// Names returns the sorted machine names.
func Names() []string {
	return slices.Sorted(maps.Keys(_library))
}

// Lookup returns a machine by name.
func Lookup(name string) (m *machine.Machine, ok bool) {
	fn, ok := _library[name]
	if ok {
		m = fn()
	}
	return
}

// Doc returns the one-line description of a machine.
func Doc(name string) string {
	return _docs[name]
}

// All iterates over the machines in name order.
func All() iter.Seq2[string, *machine.Machine] {
	return func(yield func(string, *machine.Machine) bool) {
		for _, name := range Names() {
			m, _ := Lookup(name)
			if !yield(name, m) {
				return
			}
		}
	}
}

func binary() *machine.Builder {
	return machine.NewBuilder().
		TapeSymbols('_', '>').
		LanguageSymbols('0', '1').
		Start("start").
		Accept("accept").
		Reject("reject")
}

func lastZero() *machine.Builder {
	return binary().
		States("start", "accept", "reject", "iterate_to_end", "last_symbol_check").
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

func evenOnes() *machine.Builder {
	return binary().
		States("start", "accept", "reject", "even", "odd").
		OnAll("start", "even", 1).
		On("even", '_', "accept", '_', 0).
		On("even", '>', "reject", '>', 0).
		On("even", '0', "even", '0', 1).
		On("even", '1', "odd", '1', 1).
		On("odd", '_', "reject", '_', 0).
		On("odd", '>', "reject", '>', 0).
		On("odd", '0', "odd", '0', 1).
		On("odd", '1', "even", '1', 1)
}

func oddOnes() *machine.Builder {
	return binary().
		States("start", "accept", "reject", "scan").
		OnAll("start", "scan", 1).
		On("scan", '_', "accept", '_', 0).
		On("scan", '>', "reject", '>', 0).
		On("scan", '0', "reject", '0', 0).
		On("scan", '1', "scan", '1', 2)
}
