package javarand

// State is the persisted form of a generator: the scrambled 48-bit
// seed and the cached second half of a Gaussian pair, when one is
// pending. Restoring a State reproduces the identical future output
// sequence of the generator it was taken from.
type State struct {
	Seed            int64
	PendingGaussian *float64
}

// State snapshots the generator. The snapshot owns its own copy of
// the pending value; later draws do not mutate it.
func (r *Random) State() State {
	s := State{Seed: r.seed}
	if r.pendingGaussian != nil {
		pending := *r.pendingGaussian
		s.PendingGaussian = &pending
	}
	return s
}

// FromState reconstructs a generator from a snapshot. The seed is
// masked to its low 48 bits so a hand-built State cannot violate the
// state invariant; an absent pending value loads as empty.
func FromState(s State) *Random {
	r := &Random{seed: s.Seed & mask}
	if s.PendingGaussian != nil {
		pending := *s.PendingGaussian
		r.pendingGaussian = &pending
	}
	return r
}
