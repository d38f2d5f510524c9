package computation

// Hooks observe a computation. Hooks must not step the computation.
type Hooks struct {
	// OnStep is called after every step taken while executing.
	OnStep func(c *Computation)
	// OnHalt is called once, when the status leaves Executing.
	OnHalt func(c *Computation)
}

func (h *Hooks) step(c *Computation) {
	if h.OnStep != nil {
		h.OnStep(c)
	}
}

func (h *Hooks) halt(c *Computation) {
	if h.OnHalt != nil {
		h.OnHalt(c)
	}
}
