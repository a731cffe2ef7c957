package batch

// Prime fields. Elements are processed lane by lane inside each word;
// the moduli are compile-time constants so that the remainder
// operations are compiled into multiplications and shifts.

const (
	p251   = 251
	p65521 = 65521
)

// Apply op to each w-bit lane of x and y.
func lanewise(x, y uint64, w uint, op func(a, b uint32) uint32) uint64 {
	mask := (uint64(1) << w) - 1
	z := uint64(0)
	for s := uint(0); s < 64; s += w {
		a := uint32((x >> s) & mask)
		b := uint32((y >> s) & mask)
		z |= (uint64(op(a, b)) & mask) << s
	}
	return z
}

// Modular sum of all w-bit lanes.
func lanesum(ws []uint64, w uint, op func(a, b uint32) uint32) uint32 {
	mask := (uint64(1) << w) - 1
	r := uint32(0)
	for _, x := range ws {
		for s := uint(0); s < 64; s += w {
			r = op(r, uint32((x>>s)&mask))
		}
	}
	return r
}

type mod251 struct{}

func (mod251) add1(x, y uint32) uint32 {
	return ct_reduce_once(x+y, p251)
}

func (mod251) sub1(x, y uint32) uint32 {
	return ct_reduce_once(x+p251-y, p251)
}

func (mod251) mul1(x, y uint32) uint32 {
	return (x * y) % p251
}

func (f mod251) add(x, y uint64) uint64 { return lanewise(x, y, 8, f.add1) }
func (f mod251) sub(x, y uint64) uint64 { return lanewise(x, y, 8, f.sub1) }
func (f mod251) mul(x, y uint64) uint64 { return lanewise(x, y, 8, f.mul1) }
func (f mod251) fold(w []uint64) uint32 { return lanesum(w, 8, f.add1) }

type mod65521 struct{}

func (mod65521) add1(x, y uint32) uint32 {
	return ct_reduce_once(x+y, p65521)
}

func (mod65521) sub1(x, y uint32) uint32 {
	return ct_reduce_once(x+p65521-y, p65521)
}

func (mod65521) mul1(x, y uint32) uint32 {
	return uint32((uint64(x) * uint64(y)) % p65521)
}

func (f mod65521) add(x, y uint64) uint64 { return lanewise(x, y, 16, f.add1) }
func (f mod65521) sub(x, y uint64) uint64 { return lanewise(x, y, 16, f.sub1) }
func (f mod65521) mul(x, y uint64) uint64 { return lanewise(x, y, 16, f.mul1) }
func (f mod65521) fold(w []uint64) uint32 { return lanesum(w, 16, f.add1) }
