package batch

import (
	"bytes"
	"testing"

	sha3 "golang.org/x/crypto/sha3"
)

func random_vector(f Field, n int, label string) *Vector {
	sh := sha3.NewShake256()
	sh.Write([]byte(label))
	v := NewVector(f, n)
	if err := v.Generate(sh); err != nil {
		panic(err)
	}
	return v
}

func TestImportExport(t *testing.T) {
	for _, f := range allFields {
		for _, n := range []int{1, 3, 8, 67, 130} {
			for _, k := range []int{0, 1, 5, 13} {
				x := random_vector(f, n, "codec")
				buf := make([]byte, f.ByteLen(n+k+3))
				x.Export(buf, k)
				y := NewVector(f, n)
				y.Import(buf, k)
				if !y.Equal(x) {
					t.Fatalf("ERR %v: round trip failed (n=%d, k=%d)", f, n, k)
				}
			}
		}
	}
}

func TestExportPreservesNeighbours(t *testing.T) {
	for _, f := range allFields {
		n := 11
		k := 3
		x := random_vector(f, n, "neighbours")
		buf := make([]byte, f.ByteLen(n+2*k))
		for i := range buf {
			buf[i] = 0xFF
		}
		x.Export(buf, k)

		// Elements before and after the written range still read as
		// all-ones.
		w := f.ElemBits()
		ones := uint32((1 << w) - 1)
		r := newBitReader(buf, 0, len(buf)<<3)
		for j := 0; j < k; j++ {
			if v := r.read(w); v != ones {
				t.Fatalf("ERR %v: leading element %d modified: %x", f, j, v)
			}
		}
		for j := 0; j < n; j++ {
			if v := r.read(w); v != x.Get(j) {
				t.Fatalf("ERR %v: element %d: %x (exp: %x)", f, j, v, x.Get(j))
			}
		}
		for r.pos < len(buf)<<3 {
			if r.read(1) != 1 {
				t.Fatalf("ERR %v: trailing bit %d modified", f, r.pos-1)
			}
		}
	}
}

func TestImportMasksTail(t *testing.T) {
	buf := []byte{0xFF, 0xFF}
	v := NewVector(GF16, 3)
	v.Import(buf, 0)
	if v.w[0] != 0xFFF {
		t.Fatalf("ERR: tail not masked: %x", v.w[0])
	}
	if !bytes.Equal(v.Bytes(), []byte{0xFF, 0x0F}) {
		t.Fatalf("ERR: wrong encoding: %x", v.Bytes())
	}
}

func TestBitOrder(t *testing.T) {
	// Element j is stored at bit j*w, least significant bits first.
	v := NewVector(GF4, 4)
	v.Set(0, 1)
	v.Set(1, 2)
	v.Set(2, 3)
	v.Set(3, 0)
	if b := v.Bytes(); len(b) != 1 || b[0] != 0x39 {
		t.Fatalf("ERR: GF(4) encoding: %x", b)
	}
	u := NewVector(GF65521, 2)
	u.Set(0, 0x1234)
	u.Set(1, 0xFFF0)
	if !bytes.Equal(u.Bytes(), []byte{0x34, 0x12, 0xF0, 0xFF}) {
		t.Fatalf("ERR: GF(65521) encoding: %x", u.Bytes())
	}
}

// Reader that counts consumed bytes.
type countingReader struct {
	r *bytes.Reader
	n int
}

func (c *countingReader) Read(p []byte) (int, error) {
	k, err := c.r.Read(p)
	c.n += k
	return k, err
}

func TestGenerate(t *testing.T) {
	for _, f := range []Field{GF2, GF4, GF16, GF256} {
		for _, n := range []int{1, 5, 67, 130} {
			src := bytes.Repeat([]byte{0xFF}, 1024)
			cr := &countingReader{r: bytes.NewReader(src)}
			v := NewVector(f, n)
			if err := v.Generate(cr); err != nil {
				t.Fatal(err)
			}
			if cr.n != f.ByteLen(n) {
				t.Fatalf("ERR %v: consumed %d bytes (exp: %d)", f, cr.n, f.ByteLen(n))
			}
			for j := 0; j < n; j++ {
				if v.Get(j) != uint32(f)-1 {
					t.Fatalf("ERR %v: element %d = %d", f, j, v.Get(j))
				}
			}
			if !TrailingBitsZero(v.Bytes(), f.BitLen(n)) {
				t.Fatalf("ERR %v: non-zero tail", f)
			}
		}
	}

	// Rejected candidates are skipped.
	src := []byte{251, 255, 250, 0, 252, 7}
	cr := &countingReader{r: bytes.NewReader(src)}
	v := NewVector(GF251, 3)
	if err := v.Generate(cr); err != nil {
		t.Fatal(err)
	}
	if v.Get(0) != 250 || v.Get(1) != 0 || v.Get(2) != 7 || cr.n != 6 {
		t.Fatalf("ERR GF(251) rejection: %d %d %d (%d bytes)",
			v.Get(0), v.Get(1), v.Get(2), cr.n)
	}
	src = []byte{0xF1, 0xFF, 0xF0, 0xFF, 0xFF, 0xFF, 0x01, 0x00}
	cr = &countingReader{r: bytes.NewReader(src)}
	u := NewVector(GF65521, 2)
	if err := u.Generate(cr); err != nil {
		t.Fatal(err)
	}
	if u.Get(0) != 65520 || u.Get(1) != 1 || cr.n != 8 {
		t.Fatalf("ERR GF(65521) rejection: %d %d (%d bytes)",
			u.Get(0), u.Get(1), cr.n)
	}

	// Exhausted source.
	w := NewVector(GF251, 4)
	if err := w.Generate(bytes.NewReader([]byte{1, 2, 3})); err == nil {
		t.Fatalf("no error on short source")
	}
}

func TestGenerateRange(t *testing.T) {
	for _, f := range []Field{GF251, GF65521} {
		v := random_vector(f, 5000, "range")
		if !v.InRange() {
			t.Fatalf("ERR %v: out-of-range element", f)
		}
	}
	v := NewVector(GF251, 4)
	v.Import([]byte{1, 2, 251, 3}, 0)
	if v.InRange() {
		t.Fatalf("ERR: non-canonical GF(251) element accepted")
	}
}

func TestTrailingBitsZero(t *testing.T) {
	if !TrailingBitsZero([]byte{0xFF, 0x0F}, 12) {
		t.Fatal("ERR: 12 bits")
	}
	if TrailingBitsZero([]byte{0xFF, 0x1F}, 12) {
		t.Fatal("ERR: bit 12 set")
	}
	if !TrailingBitsZero([]byte{0xFF, 0xFF}, 16) {
		t.Fatal("ERR: full buffer")
	}
	if TrailingBitsZero([]byte{0x00, 0x00, 0x80}, 3) {
		t.Fatal("ERR: last byte")
	}
}

func BenchmarkMulGF16(b *testing.B) {
	bench_mul(b, GF16)
}

func BenchmarkMulGF251(b *testing.B) {
	bench_mul(b, GF251)
}

func bench_mul(b *testing.B, f Field) {
	x := random_vector(f, 1024, "x")
	y := random_vector(f, 1024, "y")
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		x.Mul(y)
	}
}
