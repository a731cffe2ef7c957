package batch

// Bit cursors over byte slices. Bits are numbered least significant
// first within each byte, so that bit b of the stream is bit (b & 7) of
// byte (b >> 3). Bounds are checked once, when the cursor is positioned
// for a run of values, rather than per value.

type bitReader struct {
	buf []byte
	pos int
}

// Create a reader positioned at bit offset pos, which must be able to
// read nbits bits.
func newBitReader(buf []byte, pos int, nbits int) *bitReader {
	if pos < 0 || nbits < 0 || pos+nbits > len(buf)<<3 {
		panic("batch: source too short for import")
	}
	return &bitReader{buf: buf, pos: pos}
}

// Read the next w bits (w <= 16).
func (r *bitReader) read(w int) uint32 {
	v := uint32(0)
	got := 0
	for got < w {
		off := r.pos & 7
		k := 8 - off
		if k > w-got {
			k = w - got
		}
		b := uint32(r.buf[r.pos>>3]>>off) & ((uint32(1) << k) - 1)
		v |= b << got
		got += k
		r.pos += k
	}
	return v
}

type bitWriter struct {
	buf []byte
	pos int
}

func newBitWriter(buf []byte, pos int, nbits int) *bitWriter {
	if pos < 0 || nbits < 0 || pos+nbits > len(buf)<<3 {
		panic("batch: destination too short for export")
	}
	return &bitWriter{buf: buf, pos: pos}
}

// Write the low w bits of v (w <= 16). Target bits are replaced; all
// other bits of the buffer are left untouched.
func (bw *bitWriter) write(v uint32, w int) {
	for w > 0 {
		off := bw.pos & 7
		k := 8 - off
		if k > w {
			k = w
		}
		m := byte((1<<k)-1) << off
		i := bw.pos >> 3
		bw.buf[i] = (bw.buf[i] &^ m) | (byte(v<<off) & m)
		v >>= k
		w -= k
		bw.pos += k
	}
}

// TrailingBitsZero returns true if all bits of buf from bit offset nbits
// onwards are zero. It is used to reject encodings with non-zero padding.
func TrailingBitsZero(buf []byte, nbits int) bool {
	i := nbits >> 3
	if i >= len(buf) {
		return true
	}
	r := buf[i] >> (nbits & 7)
	for _, b := range buf[i+1:] {
		r |= b
	}
	return r == 0
}
