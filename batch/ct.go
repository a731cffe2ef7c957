package batch

// Constant-time helpers. Values are assumed to be below 2^31 so that
// subtraction results can be read as signed.

// Return 0xFFFFFFFF if x >= y, 0 otherwise.
func ct_geq(x, y uint32) uint32 {
	return ^uint32(int32(x-y) >> 31)
}

// Reduce x from [0, 2q-1] to [0, q-1].
func ct_reduce_once(x, q uint32) uint32 {
	return x - (q & ct_geq(x, q))
}

// Return 1 if all words of x equal those of y, 0 otherwise. The running
// time depends only on the lengths.
func ct_equal_words(x, y []uint64) uint32 {
	r := uint64(0)
	for i := range x {
		r |= x[i] ^ y[i]
	}
	r |= r >> 32
	return uint32(((r & 0xFFFFFFFF) - 1) >> 63)
}
