// Package buffer provides fixed-capacity bin buffers for streaming spectrum
// processing. A Buffer never reallocates after construction; its valid
// length is tracked separately from its capacity. A Pair holds two buffers
// whose old/new roles rotate without copying data.
package buffer
