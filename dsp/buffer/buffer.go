package buffer

import "fmt"

// Buffer is a fixed-capacity run of complex spectrum bins.
type Buffer struct {
	bins []complex128
	n    int
}

// New returns an empty Buffer able to hold capacity bins.
func New(capacity int) *Buffer {
	if capacity < 0 {
		capacity = 0
	}
	return &Buffer{bins: make([]complex128, capacity)}
}

// Bins returns the valid bins. The slice aliases the buffer's storage.
func (b *Buffer) Bins() []complex128 {
	return b.bins[:b.n]
}

// Len returns the number of valid bins.
func (b *Buffer) Len() int {
	return b.n
}

// Cap returns the fixed capacity.
func (b *Buffer) Cap() int {
	return len(b.bins)
}

// Resize sets the valid length to n and returns the resized view. It
// panics if n is outside [0, Cap()]; the storage is never grown. Bins
// beyond the previous length keep stale data.
func (b *Buffer) Resize(n int) []complex128 {
	if n < 0 || n > len(b.bins) {
		panic(fmt.Sprintf("buffer: resize to %d outside capacity %d", n, len(b.bins)))
	}
	b.n = n
	return b.bins[:n]
}

// Truncate shortens the valid length to n when n is smaller.
func (b *Buffer) Truncate(n int) {
	if n >= 0 && n < b.n {
		b.n = n
	}
}

// Reset empties the buffer without touching its storage.
func (b *Buffer) Reset() {
	b.n = 0
}
