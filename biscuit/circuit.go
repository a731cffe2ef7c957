package biscuit

import (
	"io"

	"github.com/pqsig/go-biscuit/batch"
)

// Public polynomial system of degree d, in n variables and m equations.
//
// It is represented as d+1 affine layers; layer k maps the secret
// input s to ct_k = cst_k + L_k*s, where cst_k has m elements and L_k is
// an m x n matrix (one row per equation). The system output is:
//
//	t = ct_d + ct_0*ct_1*...*ct_(d-1)
//
// with element-wise products. The d-1 products are the multiplications
// checked by the MPC protocol: multiplication k (1 <= k <= d-1) has
// inputs x_k = ct_0*...*ct_(k-1) and y_k = ct_k, and output z_k = x_(k+1)
// (or t - ct_d for the last one).
type circuit struct {
	q    batch.Field
	n    int
	m    int
	d    int
	cst  []*batch.Vector
	rows [][]*batch.Vector
}

// Generate the system from a public random stream. Layers are drawn in
// order, each as its constant vector followed by its m rows.
func generate_circuit(p *Params, r io.Reader) (*circuit, error) {
	f := &circuit{
		q:    p.Q,
		n:    p.NVars,
		m:    p.MEqs,
		d:    p.Degree,
		cst:  make([]*batch.Vector, p.Degree+1),
		rows: make([][]*batch.Vector, p.Degree+1),
	}
	for k := 0; k <= f.d; k++ {
		f.cst[k] = batch.NewVector(f.q, f.m)
		if err := f.cst[k].Generate(r); err != nil {
			return nil, err
		}
		f.rows[k] = make([]*batch.Vector, f.m)
		for j := 0; j < f.m; j++ {
			f.rows[k][j] = batch.NewVector(f.q, f.n)
			if err := f.rows[k][j].Generate(r); err != nil {
				return nil, err
			}
		}
	}
	return f, nil
}

// Compute layer k on input s into w (m elements). The constant is
// included only if withConst is set. tmp has n elements.
func (f *circuit) layer(w *batch.Vector, k int, s *batch.Vector, withConst bool, tmp *batch.Vector) {
	if withConst {
		w.CopyFrom(f.cst[k])
	} else {
		w.Clear()
	}
	for j := 0; j < f.m; j++ {
		w.Dot(j, f.rows[k][j], s, tmp)
	}
}

// Evaluate the system on the secret input s. Returned values are the
// public output t (m elements), the second inputs y of all
// multiplications ((d-1)*m elements) and the outputs z of all
// multiplications except the last one ((d-2)*m elements).
func (f *circuit) eval(s *batch.Vector) (t, y, z *batch.Vector) {
	m := f.m
	t = batch.NewVector(f.q, m)
	y = batch.NewVector(f.q, (f.d-1)*m)
	z = batch.NewVector(f.q, (f.d-2)*m)
	x := batch.NewVector(f.q, m)
	tmp := batch.NewVector(f.q, f.n)
	defer x.Wipe()
	defer tmp.Wipe()

	for k := 0; k <= f.d; k++ {
		f.layer(t, k, s, true, tmp)
		switch {
		case k == 0:
			x.CopyFrom(t)
		case k < f.d:
			y.SetRange((k-1)*m, t)
			x.Mul(t)
			if k < f.d-1 {
				z.SetRange((k-1)*m, x)
			}
		}
	}
	t.Add(x)
	return
}

// Evaluate the system on the additive share s of party i. The chain
// share zc holds the party's share of the (d-2)*m non-final
// multiplication outputs. Returned values are the party's shares of the
// inputs x and y and of the outputs z of all (d-1)*m multiplications.
// The constants and the public output t are used only by party 0.
func (f *circuit) eval_shared(s *batch.Vector, zc *batch.Vector, t *batch.Vector, i int) (x, y, z *batch.Vector) {
	m := f.m
	nm := (f.d - 1) * m
	x = batch.NewVector(f.q, nm)
	y = batch.NewVector(f.q, nm)
	z = batch.NewVector(f.q, nm)
	w := batch.NewVector(f.q, m)
	tmp := batch.NewVector(f.q, f.n)
	defer w.Wipe()
	defer tmp.Wipe()

	z.SetRange(0, zc)
	for k := 0; k <= f.d; k++ {
		f.layer(w, k, s, i == 0, tmp)
		switch {
		case k == 0:
			x.SetRange(0, w)
		case k < f.d:
			y.SetRange((k-1)*m, w)
			if k < f.d-1 {
				zc.GetRange((k-1)*m, w)
				x.SetRange(k*m, w)
			}
		}
	}

	// Last multiplication output: t - ct_d.
	last := batch.NewVector(f.q, m)
	defer last.Wipe()
	if i == 0 {
		last.CopyFrom(t)
	}
	last.Sub(w)
	z.SetRange((f.d-2)*m, last)
	return
}
