package computation

// Status is the execution status of a computation.
type Status int

//go:generate go tool stringer -linecomment -type=Status
const (
	Executing = Status(iota) // executing
	Accept                   // accept
	Reject                   // reject
	Timeout                  // timeout
	Spaceout                 // spaceout
)

// Halted reports if the status is terminal.
func (st Status) Halted() bool {
	return st != Executing
}
