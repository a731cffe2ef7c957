package batch

import (
	"strconv"
)

// Field identifies one of the supported finite fields by its order.
type Field uint32

const (
	GF2     Field = 2
	GF4     Field = 4
	GF16    Field = 16
	GF256   Field = 256
	GF251   Field = 251
	GF65521 Field = 65521
)

// Valid returns true if f is one of the supported fields.
func (f Field) Valid() bool {
	switch f {
	case GF2, GF4, GF16, GF256, GF251, GF65521:
		return true
	default:
		return false
	}
}

// IsBinary returns true for the characteristic-2 fields, in which
// addition and subtraction are the same operation.
func (f Field) IsBinary() bool {
	switch f {
	case GF2, GF4, GF16, GF256:
		return true
	case GF251, GF65521:
		return false
	}
	panic(errUnsupported(f))
}

// ElemBits returns the number of bits used to store one element.
func (f Field) ElemBits() int {
	switch f {
	case GF2:
		return 1
	case GF4:
		return 2
	case GF16:
		return 4
	case GF256, GF251:
		return 8
	case GF65521:
		return 16
	}
	panic(errUnsupported(f))
}

// BitLen returns the exact size, in bits, of n packed elements.
func (f Field) BitLen(n int) int {
	return n * f.ElemBits()
}

// ByteLen returns the size, in bytes, of n packed elements (rounded up).
func (f Field) ByteLen(n int) int {
	return (f.BitLen(n) + 7) >> 3
}

func (f Field) String() string {
	return "GF(" + strconv.FormatUint(uint64(f), 10) + ")"
}

// Number of 64-bit words needed to store n elements.
func (f Field) words(n int) int {
	return (f.BitLen(n) + 63) >> 6
}

// Mask for a single element.
func (f Field) elemMask() uint64 {
	return (uint64(1) << f.ElemBits()) - 1
}

// Word-level arithmetic for one field. Lanes that hold zero on both
// inputs hold zero on output, which keeps the unused tail bits clear.
type arith interface {
	add(x, y uint64) uint64
	sub(x, y uint64) uint64
	mul(x, y uint64) uint64

	// Sum of all lanes of all words, as a single reduced element.
	fold(w []uint64) uint32

	// Single-element addition.
	add1(x, y uint32) uint32
}

func (f Field) arith() arith {
	switch f {
	case GF2:
		return gf2{}
	case GF4:
		return gf4{}
	case GF16:
		return gf16{}
	case GF256:
		return gf256{}
	case GF251:
		return mod251{}
	case GF65521:
		return mod65521{}
	}
	panic(errUnsupported(f))
}

type errUnsupported Field

func (e errUnsupported) Error() string {
	return "batch: unsupported field size " + strconv.FormatUint(uint64(e), 10)
}
