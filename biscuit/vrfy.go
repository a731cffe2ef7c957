package biscuit

import (
	"crypto/subtle"

	"github.com/pqsig/go-biscuit/batch"
)

// Verify a signature.
//
//	- p is the parameter set
//	- vkey is the verifying key (public)
//	- msg is the signed message
//	- sig is the signature to verify
//
// Returned value is true for a valid signature, false otherwise. If the
// parameters are invalid, if the key or signature does not have the
// expected length, or if they contain non-canonical encodings, then false
// is returned.
func Verify(p Params, vkey []byte, msg []byte, sig []byte) bool {
	return verify_inner(&p, 0, vkey, msg, sig)
}

// Inner verification function; par is the maximum number of repetitions
// processed concurrently (0 for one per CPU).
func verify_inner(p *Params, par int, vkey []byte, msg []byte, sig []byte) bool {
	if p.Validate() != nil {
		return false
	}
	if len(vkey) != p.VerifyingKeySize() || len(sig) != p.SignatureSize() {
		return false
	}

	// Decode the public output.
	sl := p.seed_len()
	hl := p.hash_len()
	tau := p.Tau
	if !batch.TrailingBitsZero(vkey[sl:], p.Q.BitLen(p.MEqs)) {
		return false
	}
	t := batch.NewVector(p.Q, p.MEqs)
	t.Import(vkey[sl:], 0)
	if !t.InRange() {
		return false
	}

	salt := sig[:hl]
	h1 := sig[hl : 2*hl]
	h2 := sig[2*hl : 3*hl]
	proofs := sig[3*hl : 3*hl+tau*p.proof_len()]
	sigma := sig[3*hl+tau*p.proof_len():]
	if !batch.TrailingBitsZero(sigma, p.Q.BitLen(tau*(p.num_delta()+p.num_mul()))) {
		return false
	}

	f, err := generate_circuit(p, expand(vkey[:sl]))
	if err != nil {
		return false
	}

	// Both challenges are taken from the signature; the recomputed
	// hashes must match them.
	eps, err := expand_eps(p, h1)
	if err != nil {
		return false
	}
	xi := expand(h2)
	logn := p.log_n()
	ibar := make([]int, tau)
	for e := range ibar {
		ibar[e] = index_sample(xi, p.N, logn)
	}

	reps := make([]*repetition, tau)
	defer func() {
		for _, r := range reps {
			r.wipe()
		}
	}()
	err = for_each_repetition(tau, par, func(e int) error {
		proof := proofs[e*p.proof_len() : (e+1)*p.proof_len()]
		r, err := open_repetition(p, f, t, salt, e, ibar[e], proof, sigma)
		if err != nil {
			return err
		}
		r.check(eps[e])
		reps[e] = r
		return nil
	})
	if err != nil {
		return false
	}

	h1p := make([]byte, hl)
	h2p := make([]byte, hl)
	hs := new_h1(salt, msg)
	for _, r := range reps {
		r.absorb_h1(hs)
	}
	hs.Read(h1p)
	hs = new_h2(salt, h1)
	for _, r := range reps {
		r.absorb_h2(hs)
	}
	hs.Read(h2p)

	return (subtle.ConstantTimeCompare(h1, h1p) & subtle.ConstantTimeCompare(h2, h2p)) == 1
}
