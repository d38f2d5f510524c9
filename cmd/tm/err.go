package main

import (
	"github.com/ezrec/tm/translate"
)

var f = translate.From

type ErrMachineUnknown string

func (err ErrMachineUnknown) Error() string {
	return f("machine %v unknown", string(err))
}

// ErrWords counts the words that could not be run.
type ErrWords int

func (err ErrWords) Error() string {
	return f("%d words not run", int(err))
}
