package batch

import (
	"io"
)

// Generate fills v with uniformly distributed elements read from r.
//
// The number of bytes consumed from r is fixed by the field and the
// vector length for binary fields: exactly ByteLen(n) bytes are read,
// and the unused high bits of the last byte are discarded. For GF(251),
// candidates are single bytes; for GF(65521), candidates are 16-bit
// little-endian values. Candidates which are not lower than q are
// discarded and another one is read.
//
// An error is returned only if r fails.
func (v *Vector) Generate(r io.Reader) error {
	clear(v.w)
	switch v.f {
	case GF2, GF4, GF16, GF256:
		buf := make([]byte, v.f.ByteLen(v.n))
		if _, err := io.ReadFull(r, buf); err != nil {
			return err
		}
		for i, b := range buf {
			v.w[i>>3] |= uint64(b) << ((i & 7) << 3)
		}
		if rem := v.f.BitLen(v.n) & 63; rem != 0 {
			v.w[len(v.w)-1] &= (uint64(1) << rem) - 1
		}
		return nil
	case GF251:
		var b [1]byte
		for j := 0; j < v.n; {
			if _, err := io.ReadFull(r, b[:]); err != nil {
				return err
			}
			if b[0] < p251 {
				v.w[j>>3] |= uint64(b[0]) << ((j & 7) << 3)
				j++
			}
		}
		return nil
	case GF65521:
		var b [2]byte
		for j := 0; j < v.n; {
			if _, err := io.ReadFull(r, b[:]); err != nil {
				return err
			}
			x := uint32(b[0]) | (uint32(b[1]) << 8)
			if x < p65521 {
				v.w[j>>2] |= uint64(x) << ((j & 3) << 4)
				j++
			}
		}
		return nil
	}
	panic(errUnsupported(v.f))
}
