// Package computation runs a machine.Machine on an input word.
//
// A Computation owns its tape, head, current state, status and clock,
// and only references the machine it runs. Start encodes the word onto
// a fresh tape; Step applies one transition; Run steps until the
// computation halts. Once the status leaves Executing the computation
// never changes again.
//
// Bounds on time (steps) and space (tape cells) are optional and
// cooperative: a computation that reaches one halts with Timeout or
// Spaceout, which are ordinary outcomes rather than errors.
package computation
