package biscuit

import (
	"crypto/rand"
	"io"

	"github.com/pqsig/go-biscuit/batch"
)

// Sign a message using a given signing key.
//
//	- p is the parameter set the key was generated with
//	- rng is the random source to use (nil to use the OS RNG)
//	- skey is the signing key (private)
//	- msg is the message to sign
//
// Using the OS RNG (i.e. setting rng to nil) is recommended. Lambda/4
// bytes are read from rng; the signature is a deterministic function of
// these bytes, the key and the message. An error is returned if the
// parameters or the key are invalid, or if rng fails.
func Sign(p Params, rng io.Reader, skey []byte, msg []byte) ([]byte, error) {
	return sign_inner(&p, 0, rng, skey, msg)
}

// Inner signature function; par is the maximum number of repetitions
// processed concurrently (0 for one per CPU).
func sign_inner(p *Params, par int, rng io.Reader, skey []byte, msg []byte) ([]byte, error) {
	if err := p.Validate(); err != nil {
		return nil, err
	}
	if rng == nil {
		rng = rand.Reader
	}
	entropy := make([]byte, p.hash_len())
	defer wipe_bytes(entropy)
	if _, err := io.ReadFull(rng, entropy); err != nil {
		return nil, err
	}
	return sign_inner_seeded(p, par, entropy, skey, msg)
}

// Inner signature function with explicit entropy; this is used for
// reproducible test vectors.
func sign_inner_seeded(p *Params, par int, entropy []byte, skey []byte, msg []byte) ([]byte, error) {
	sk, err := decode_signing_key(p, skey)
	if err != nil {
		return nil, err
	}
	defer sk.wipe()

	hl := p.hash_len()
	sl := p.seed_len()
	tau := p.Tau
	sig := make([]byte, p.SignatureSize())
	salt := sig[:hl]
	h1 := sig[hl : 2*hl]
	h2 := sig[2*hl : 3*hl]
	proofs := sig[3*hl : 3*hl+tau*p.proof_len()]
	sigma := sig[3*hl+tau*p.proof_len():]

	// Salt and per-repetition root seeds.
	prf := new_prf(entropy, sk.raw, msg)
	prf.Read(salt)
	roots := make([]byte, tau*sl)
	defer wipe_bytes(roots)
	prf.Read(roots)

	// Phase 1: commit to the seeds and views of all parties.
	reps := make([]*repetition, tau)
	defer func() {
		for _, r := range reps {
			r.wipe()
		}
	}()
	err = for_each_repetition(tau, par, func(e int) error {
		r, err := commit_repetition(p, sk, salt, e, roots[e*sl:(e+1)*sl])
		reps[e] = r
		return err
	})
	if err != nil {
		return nil, err
	}
	hs := new_h1(salt, msg)
	for e, r := range reps {
		r.absorb_h1(hs)
		off := e * p.num_delta()
		r.ds.Export(sigma, off)
		r.dz.Export(sigma, off+p.NVars)
		r.dc.Export(sigma, off+p.NVars+p.num_chain())
	}
	hs.Read(h1)

	// Phase 2: challenges of the multiplication check.
	eps, err := expand_eps(p, h1)
	if err != nil {
		return nil, err
	}

	// Phase 3: simulate the multiplication check.
	err = for_each_repetition(tau, par, func(e int) error {
		reps[e].check(eps[e])
		return nil
	})
	if err != nil {
		return nil, err
	}
	hs = new_h2(salt, h1)
	for _, r := range reps {
		r.absorb_h2(hs)
	}
	hs.Read(h2)

	// Phases 4 and 5: choose the hidden party of each repetition and
	// open all other views.
	xi := expand(h2)
	logn := p.log_n()
	for e, r := range reps {
		ibar := index_sample(xi, p.N, logn)
		proof := proofs[e*p.proof_len() : (e+1)*p.proof_len()]
		r.tree.path(proof, ibar)
		copy(proof[logn*sl:], r.com[ibar])
		r.parties[ibar].alpha.Export(sigma, tau*p.num_delta()+e*p.num_mul())
	}
	return sig, nil
}

// Expand the challenges eps_e (one vector of (d-1)*m elements per
// repetition) from h1.
func expand_eps(p *Params, h1 []byte) ([]*batch.Vector, error) {
	xe := expand(h1)
	eps := make([]*batch.Vector, p.Tau)
	for e := range eps {
		eps[e] = batch.NewVector(p.Q, p.num_mul())
		if err := eps[e].Generate(xe); err != nil {
			return nil, err
		}
	}
	return eps, nil
}
