// Package machine describes deterministic single-tape Turing machines.
//
// A Machine is the 7-tuple of states, tape symbols, language symbols,
// transition table, and the start, accept and reject states. Every
// symbol is addressed by its unified index: tape symbols occupy the
// low range, language symbols follow them. By convention tape symbol 0
// is the blank and tape symbol 1 is the left-end marker.
//
// A Machine is immutable once built and may be shared by any number of
// concurrent computations. New performs no validation; the Builder
// resolves labels to indices and rejects incomplete tables.
package machine
