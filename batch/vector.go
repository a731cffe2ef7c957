package batch

// Vector is a fixed-length sequence of elements of one field, stored in
// packed form. The zero Vector is not usable; vectors are created with
// NewVector.
type Vector struct {
	f Field
	n int
	w []uint64
}

// NewVector returns a zero vector of n elements of field f.
func NewVector(f Field, n int) *Vector {
	if !f.Valid() {
		panic(errUnsupported(f))
	}
	if n < 0 {
		panic("batch: negative vector length")
	}
	return &Vector{f: f, n: n, w: make([]uint64, f.words(n))}
}

// Field returns the field of the vector elements.
func (v *Vector) Field() Field {
	return v.f
}

// Len returns the number of elements.
func (v *Vector) Len() int {
	return v.n
}

// Get returns element j.
func (v *Vector) Get(j int) uint32 {
	v.check_index(j)
	b := v.f.ElemBits() * j
	return uint32((v.w[b>>6] >> (b & 63)) & v.f.elemMask())
}

// Set sets element j to x. Only the low bits of x that fit in one
// element are used; the caller is responsible for providing a value
// in the [0,q-1] range.
func (v *Vector) Set(j int, x uint32) {
	v.check_index(j)
	b := v.f.ElemBits() * j
	m := v.f.elemMask() << (b & 63)
	v.w[b>>6] = (v.w[b>>6] &^ m) | ((uint64(x) << (b & 63)) & m)
}

// Clear sets all elements to zero.
func (v *Vector) Clear() {
	clear(v.w)
}

// Wipe erases the vector contents. It is meant to be deferred on vectors
// holding secret values.
func (v *Vector) Wipe() {
	if v != nil {
		clear(v.w)
	}
}

// CopyFrom sets v to a copy of src.
func (v *Vector) CopyFrom(src *Vector) {
	v.check_same(src)
	copy(v.w, src.w)
}

// Clone returns a new vector with the same contents as v.
func (v *Vector) Clone() *Vector {
	c := NewVector(v.f, v.n)
	copy(c.w, v.w)
	return c
}

// SetRange copies src into elements k to k+src.Len()-1 of v.
func (v *Vector) SetRange(k int, src *Vector) {
	if v.f != src.f || k < 0 || k+src.n > v.n {
		panic("batch: invalid range")
	}
	for j := 0; j < src.n; j++ {
		v.Set(k+j, src.Get(j))
	}
}

// GetRange copies elements k to k+dst.Len()-1 of v into dst.
func (v *Vector) GetRange(k int, dst *Vector) {
	if v.f != dst.f || k < 0 || k+dst.n > v.n {
		panic("batch: invalid range")
	}
	for j := 0; j < dst.n; j++ {
		dst.Set(j, v.Get(k+j))
	}
}

// Add sets v to v + src (element-wise).
func (v *Vector) Add(src *Vector) {
	v.check_same(src)
	a := v.f.arith()
	for i := range v.w {
		v.w[i] = a.add(v.w[i], src.w[i])
	}
}

// Sub sets v to v - src (element-wise).
func (v *Vector) Sub(src *Vector) {
	v.check_same(src)
	a := v.f.arith()
	for i := range v.w {
		v.w[i] = a.sub(v.w[i], src.w[i])
	}
}

// Mul sets v to v * src (element-wise).
func (v *Vector) Mul(src *Vector) {
	v.check_same(src)
	a := v.f.arith()
	for i := range v.w {
		v.w[i] = a.mul(v.w[i], src.w[i])
	}
}

// Sum returns the sum of all elements of v.
func (v *Vector) Sum() uint32 {
	return v.f.arith().fold(v.w)
}

// SumInto adds the sum of all elements of v into element j of dst.
func (v *Vector) SumInto(dst *Vector, j int) {
	if dst.f != v.f {
		panic("batch: field mismatch")
	}
	a := v.f.arith()
	dst.Set(j, a.add1(dst.Get(j), a.fold(v.w)))
}

// Dot sets element j of v to v[j] + sum(x[i] * y[i]). The temporary
// vector tmp must have the same field and length as x and y; it is
// overwritten.
func (v *Vector) Dot(j int, x, y, tmp *Vector) {
	tmp.CopyFrom(x)
	tmp.Mul(y)
	tmp.SumInto(v, j)
}

// Equal returns true if v and o hold the same elements. Comparison time
// depends only on the vector length.
func (v *Vector) Equal(o *Vector) bool {
	v.check_same(o)
	return ct_equal_words(v.w, o.w) == 1
}

// InRange returns true if all elements are in the [0,q-1] range. This
// only matters for prime fields, where the storage width allows larger
// values; decoded vectors must be checked before any arithmetic is
// performed on them.
func (v *Vector) InRange() bool {
	if v.f.IsBinary() {
		return true
	}
	q := uint32(v.f)
	bad := uint32(0)
	for j := 0; j < v.n; j++ {
		bad |= ct_geq(v.Get(j), q)
	}
	return bad == 0
}

// Import decodes the vector from the packed bytes of src, starting at
// element offset k (bit offset k*w, with w bits per element).
func (v *Vector) Import(src []byte, k int) {
	w := v.f.ElemBits()
	r := newBitReader(src, k*w, v.n*w)
	clear(v.w)
	for j := 0; j < v.n; j++ {
		b := j * w
		v.w[b>>6] |= uint64(r.read(w)) << (b & 63)
	}
}

// Export encodes the vector into dst, starting at element offset k. Bits
// of dst outside of the written range are not modified.
func (v *Vector) Export(dst []byte, k int) {
	w := v.f.ElemBits()
	bw := newBitWriter(dst, k*w, v.n*w)
	m := v.f.elemMask()
	for j := 0; j < v.n; j++ {
		b := j * w
		bw.write(uint32((v.w[b>>6]>>(b&63))&m), w)
	}
}

// Bytes returns the packed encoding of v, over f.ByteLen(n) bytes.
func (v *Vector) Bytes() []byte {
	d := make([]byte, v.f.ByteLen(v.n))
	v.Export(d, 0)
	return d
}

func (v *Vector) check_index(j int) {
	if j < 0 || j >= v.n {
		panic("batch: element index out of range")
	}
}

func (v *Vector) check_same(o *Vector) {
	if v.f != o.f || v.n != o.n {
		panic("batch: vector field or length mismatch")
	}
}
