package buffer

// Pair holds two equally sized buffers playing the "old" and "new" roles of
// a double-buffered stream. Swap exchanges the roles; no data is copied.
type Pair struct {
	bufs [2]*Buffer
	old  int
}

// NewPair returns a Pair of two buffers with the given capacity.
func NewPair(capacity int) *Pair {
	return &Pair{bufs: [2]*Buffer{New(capacity), New(capacity)}}
}

// Old returns the buffer currently in the old role.
func (p *Pair) Old() *Buffer { return p.bufs[p.old] }

// New returns the buffer currently in the new role.
func (p *Pair) New() *Buffer { return p.bufs[1-p.old] }

// Swap makes the new buffer old and recycles the old one as new.
func (p *Pair) Swap() { p.old = 1 - p.old }

// Reset empties both buffers and restores the initial roles.
func (p *Pair) Reset() {
	p.bufs[0].Reset()
	p.bufs[1].Reset()
	p.old = 0
}
