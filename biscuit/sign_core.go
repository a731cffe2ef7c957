package biscuit

import (
	"errors"
	"runtime"

	sha3 "golang.org/x/crypto/sha3"
	"golang.org/x/sync/errgroup"

	"github.com/pqsig/go-biscuit/batch"
)

// Error used internally when a decoded signature field holds an
// out-of-range value. It never leaves this package.
var errNonCanonical = errors.New("non-canonical field element")

// View of one simulated party in one repetition.
//
//	s       share of the secret input (n elements)
//	zc      share of the non-final multiplication outputs ((d-2)*m)
//	a, c    multiplication triple shares ((d-1)*m each)
//	x, y, z shares of the multiplication inputs and outputs ((d-1)*m each)
//	alpha   broadcast value x*eps + a
//	v       broadcast value y*sum(alpha) - z*eps - c
type party struct {
	s, zc, a, c *batch.Vector
	x, y, z     *batch.Vector
	alpha, v    *batch.Vector
}

func (pt *party) wipe() {
	if pt != nil {
		wipe_vectors(pt.s, pt.zc, pt.a, pt.c, pt.x, pt.y, pt.z, pt.alpha, pt.v)
	}
}

// State of one repetition of the MPC protocol. For a verifier, the
// hidden party (index hidden) has no view: only its commitment and its
// alpha and v values are set.
type repetition struct {
	hidden  int
	tree    *seedTree
	com     [][]byte
	parties []*party

	// Public corrections: s_0 += ds, zc_0 += dz, c_0 += dc.
	ds, dz, dc *batch.Vector
}

func (r *repetition) wipe() {
	if r == nil {
		return
	}
	if r.tree != nil {
		r.tree.wipe()
	}
	for _, pt := range r.parties {
		pt.wipe()
	}
}

func new_repetition(p *Params, hidden int) *repetition {
	r := &repetition{
		hidden:  hidden,
		com:     make([][]byte, p.N),
		parties: make([]*party, p.N),
		ds:      batch.NewVector(p.Q, p.NVars),
		dz:      batch.NewVector(p.Q, p.num_chain()),
		dc:      batch.NewVector(p.Q, p.num_mul()),
	}
	for i := range r.com {
		r.com[i] = make([]byte, p.hash_len())
	}
	return r
}

// Commit to the seed of party i and expand its random tape into its
// input share and triple, in the order s, zc (degree > 2 only), a, c.
func expand_party(p *Params, salt []byte, e int, i int, seed []byte, com []byte) (*party, error) {
	commit(com, salt, e, i, seed)
	tape := expand_tape(salt, e, i, seed)
	pt := &party{
		s:  batch.NewVector(p.Q, p.NVars),
		zc: batch.NewVector(p.Q, p.num_chain()),
		a:  batch.NewVector(p.Q, p.num_mul()),
		c:  batch.NewVector(p.Q, p.num_mul()),
	}
	for _, v := range []*batch.Vector{pt.s, pt.zc, pt.a, pt.c} {
		if err := v.Generate(tape); err != nil {
			pt.wipe()
			return nil, err
		}
	}
	return pt, nil
}

// Add the public corrections into the view of party 0.
func (r *repetition) correct(pt *party) {
	pt.s.Add(r.ds)
	pt.zc.Add(r.dz)
	pt.c.Add(r.dc)
}

// Phase 1 for the signer: expand all party seeds from the root seed,
// compute the corrections so that the shares sum to the secret values
// and the triples are consistent with y, and evaluate the circuit on
// every share.
func commit_repetition(p *Params, sk *signingKey, salt []byte, e int, root []byte) (*repetition, error) {
	r := new_repetition(p, -1)
	r.tree = build_seed_tree(p, root, salt, e)

	sum_a := batch.NewVector(p.Q, p.num_mul())
	defer sum_a.Wipe()
	r.ds.CopyFrom(sk.s)
	r.dz.CopyFrom(sk.z)
	for i, seed := range r.tree.leaves() {
		pt, err := expand_party(p, salt, e, i, seed, r.com[i])
		if err != nil {
			r.wipe()
			return nil, err
		}
		r.parties[i] = pt
		r.ds.Sub(pt.s)
		r.dz.Sub(pt.zc)
		sum_a.Add(pt.a)
		r.dc.Sub(pt.c)
	}

	// dc = y*sum(a) - sum(c)
	sum_a.Mul(sk.y)
	r.dc.Add(sum_a)

	r.correct(r.parties[0])
	for i, pt := range r.parties {
		pt.x, pt.y, pt.z = sk.f.eval_shared(pt.s, pt.zc, sk.t, i)
	}
	return r, nil
}

// Phase 1 for the verifier: rebuild all views except the hidden one
// from the revealed path and the corrections read from the signature.
func open_repetition(p *Params, f *circuit, t *batch.Vector, salt []byte, e int, ibar int,
	proof []byte, sigma []byte) (*repetition, error) {

	r := new_repetition(p, ibar)
	off := e * p.num_delta()
	r.ds.Import(sigma, off)
	r.dz.Import(sigma, off+p.NVars)
	r.dc.Import(sigma, off+p.NVars+p.num_chain())
	if !r.ds.InRange() || !r.dz.InRange() || !r.dc.InRange() {
		return nil, errNonCanonical
	}

	plen := p.log_n() * p.seed_len()
	r.tree = reconstruct_seed_tree(p, proof[:plen], salt, e, ibar)
	copy(r.com[ibar], proof[plen:plen+p.hash_len()])
	for i, seed := range r.tree.leaves() {
		if i == ibar {
			continue
		}
		pt, err := expand_party(p, salt, e, i, seed, r.com[i])
		if err != nil {
			r.wipe()
			return nil, err
		}
		r.parties[i] = pt
		if i == 0 {
			r.correct(pt)
		}
		pt.x, pt.y, pt.z = f.eval_shared(pt.s, pt.zc, t, i)
	}

	hp := &party{
		alpha: batch.NewVector(p.Q, p.num_mul()),
		v:     batch.NewVector(p.Q, p.num_mul()),
	}
	hp.alpha.Import(sigma, p.Tau*p.num_delta()+e*p.num_mul())
	if !hp.alpha.InRange() {
		r.wipe()
		return nil, errNonCanonical
	}
	r.parties[ibar] = hp
	return r, nil
}

// Phases 3 (signer) and verification: compute the broadcast values of
// the multiplication check for challenge eps. For the hidden party,
// alpha is already known and v is set so that all v values sum to zero.
func (r *repetition) check(eps *batch.Vector) {
	q := eps.Field()
	open := batch.NewVector(q, eps.Len())
	tmp := batch.NewVector(q, eps.Len())
	defer tmp.Wipe()

	for i, pt := range r.parties {
		if i != r.hidden {
			pt.alpha = pt.x.Clone()
			pt.alpha.Mul(eps)
			pt.alpha.Add(pt.a)
		}
		open.Add(pt.alpha)
	}
	var sum_v *batch.Vector
	if r.hidden >= 0 {
		sum_v = r.parties[r.hidden].v
		sum_v.Clear()
	}
	for i, pt := range r.parties {
		if i == r.hidden {
			continue
		}
		pt.v = pt.y.Clone()
		pt.v.Mul(open)
		tmp.CopyFrom(pt.z)
		tmp.Mul(eps)
		pt.v.Sub(tmp)
		pt.v.Sub(pt.c)
		if sum_v != nil {
			sum_v.Sub(pt.v)
		}
	}
}

// Absorb the commitments and corrections into the first hash.
func (r *repetition) absorb_h1(h sha3.ShakeHash) {
	for _, c := range r.com {
		h.Write(c)
	}
	h.Write(r.ds.Bytes())
	h.Write(r.dz.Bytes())
	h.Write(r.dc.Bytes())
}

// Absorb the broadcast values into the second hash.
func (r *repetition) absorb_h2(h sha3.ShakeHash) {
	for _, pt := range r.parties {
		h.Write(pt.alpha.Bytes())
	}
	for _, pt := range r.parties {
		h.Write(pt.v.Bytes())
	}
}

// Run fn(e) for all repetitions, with at most par concurrent calls.
func for_each_repetition(tau int, par int, fn func(e int) error) error {
	if par <= 0 {
		par = runtime.GOMAXPROCS(0)
	}
	var g errgroup.Group
	g.SetLimit(par)
	for e := 0; e < tau; e++ {
		e := e
		g.Go(func() error {
			return fn(e)
		})
	}
	return g.Wait()
}
