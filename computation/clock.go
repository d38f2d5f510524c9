package computation

import "math"

// Limits are optional bounds for a computation. A non-positive value
// leaves that resource unbounded.
type Limits struct {
	MaxTime  int // Maximum steps.
	MaxSpace int // Maximum tape cells.
}

// Clock counts the resources used by a computation.
type Clock struct {
	Time     int // Steps taken, including one that timed out.
	Space    int // Tape length high-water mark.
	MaxTime  int // Time bound, if positive.
	MaxSpace int // Space bound, if positive.
}

func newClock(limits Limits, tapeLength int) Clock {
	return Clock{
		Space:    tapeLength,
		MaxTime:  max(limits.MaxTime, 0),
		MaxSpace: max(limits.MaxSpace, 0),
	}
}

// TimeBounded reports if a time bound is configured.
func (clk Clock) TimeBounded() bool {
	return clk.MaxTime > 0
}

// SpaceBounded reports if a space bound is configured.
func (clk Clock) SpaceBounded() bool {
	return clk.MaxSpace > 0
}

// timeout ticks the clock and reports if the time bound was reached.
func (clk *Clock) timeout() bool {
	clk.Time++
	return clk.TimeBounded() && clk.Time >= clk.MaxTime
}

// grow accounts for new tape cells and reports if the space bound was
// reached.
func (clk *Clock) grow(cells int) bool {
	if cells > math.MaxInt-clk.Space {
		clk.Space = math.MaxInt
	} else {
		clk.Space += cells
	}
	return clk.SpaceBounded() && clk.Space >= clk.MaxSpace
}
