package batch

// Binary extension fields. All four fields share XOR addition; they
// differ in lane width and reduction polynomial. Multiplication processes
// a full word at a time: for each bit position i of the lanes of y, the
// lanes of x (already multiplied by X^i) are conditionally added to the
// result, then x is multiplied by X and reduced lane-wise.

const (
	lanes2lo  = 0x5555555555555555
	lanes2hi  = 0xAAAAAAAAAAAAAAAA
	lanes4lo  = 0x1111111111111111
	lanes4hi  = 0x8888888888888888
	lanes4low = 0x7777777777777777
	lanes8lo  = 0x0101010101010101
	lanes8hi  = 0x8080808080808080
	lanes8low = 0x7F7F7F7F7F7F7F7F
)

// Fold a word so that its low w bits hold the XOR of all w-bit lanes.
func xor_fold(x uint64, w uint) uint64 {
	for s := uint(32); s >= w; s >>= 1 {
		x ^= x >> s
	}
	return x & ((uint64(1) << w) - 1)
}

func xor_all(w []uint64) uint64 {
	x := uint64(0)
	for _, v := range w {
		x ^= v
	}
	return x
}

type gf2 struct{}

func (gf2) add(x, y uint64) uint64 { return x ^ y }
func (gf2) sub(x, y uint64) uint64 { return x ^ y }
func (gf2) mul(x, y uint64) uint64 { return x & y }
func (gf2) add1(x, y uint32) uint32 {
	return (x ^ y) & 1
}
func (gf2) fold(w []uint64) uint32 {
	return uint32(xor_fold(xor_all(w), 1))
}

// GF(4) = GF(2)[X]/(X^2+X+1).
type gf4 struct{}

func (gf4) add(x, y uint64) uint64 { return x ^ y }
func (gf4) sub(x, y uint64) uint64 { return x ^ y }
func (gf4) add1(x, y uint32) uint32 {
	return (x ^ y) & 3
}
func (gf4) fold(w []uint64) uint32 {
	return uint32(xor_fold(xor_all(w), 2))
}

func (gf4) mul(x, y uint64) uint64 {
	z := uint64(0)
	for i := 0; i < 2; i++ {
		m := (y >> i) & lanes2lo
		z ^= x & (m * 0x3)
		h := x & lanes2hi
		x = ((x & lanes2lo) << 1) ^ ((h >> 1) * 0x3)
	}
	return z
}

// GF(16) = GF(2)[X]/(X^4+X+1).
type gf16 struct{}

func (gf16) add(x, y uint64) uint64 { return x ^ y }
func (gf16) sub(x, y uint64) uint64 { return x ^ y }
func (gf16) add1(x, y uint32) uint32 {
	return (x ^ y) & 0xF
}
func (gf16) fold(w []uint64) uint32 {
	return uint32(xor_fold(xor_all(w), 4))
}

func (gf16) mul(x, y uint64) uint64 {
	z := uint64(0)
	for i := 0; i < 4; i++ {
		m := (y >> i) & lanes4lo
		z ^= x & (m * 0xF)
		h := x & lanes4hi
		x = ((x & lanes4low) << 1) ^ ((h >> 3) * 0x3)
	}
	return z
}

// GF(256) = GF(2)[X]/(X^8+X^4+X^3+X^2+1).
type gf256 struct{}

func (gf256) add(x, y uint64) uint64 { return x ^ y }
func (gf256) sub(x, y uint64) uint64 { return x ^ y }
func (gf256) add1(x, y uint32) uint32 {
	return (x ^ y) & 0xFF
}
func (gf256) fold(w []uint64) uint32 {
	return uint32(xor_fold(xor_all(w), 8))
}

func (gf256) mul(x, y uint64) uint64 {
	z := uint64(0)
	for i := 0; i < 8; i++ {
		m := (y >> i) & lanes8lo
		z ^= x & (m * 0xFF)
		h := x & lanes8hi
		x = ((x & lanes8low) << 1) ^ ((h >> 7) * 0x1D)
	}
	return z
}
