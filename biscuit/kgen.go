package biscuit

import (
	"crypto/rand"
	"io"

	"github.com/pqsig/go-biscuit/batch"
)

// Generate a new key pair.
//
//	- p is the parameter set.
//	- rng is the random source to use (nil to use the OS RNG).
//
// Output is the new key pair (signing and verifying keys, both encoded).
// An error is reported if the parameters are invalid, or if the random
// source fails. Exactly Lambda/4 bytes are read from rng.
func KeyGen(p Params, rng io.Reader) (skey []byte, vkey []byte, err error) {
	if err = p.Validate(); err != nil {
		return
	}
	if rng == nil {
		rng = rand.Reader
	}
	entropy := make([]byte, p.hash_len())
	defer wipe_bytes(entropy)
	if _, err = io.ReadFull(rng, entropy); err != nil {
		return
	}
	return keygen_inner(&p, entropy)
}

// Inner function; parameters are assumed to be correct, and the output
// is deterministic for the provided entropy (Lambda/4 bytes). The first
// half of the entropy is the public seed of the polynomial system, the
// second half the seed of the secret input.
func keygen_inner(p *Params, entropy []byte) (skey []byte, vkey []byte, err error) {
	sl := p.seed_len()
	seedF := entropy[:sl]
	seedS := entropy[sl:p.hash_len()]

	s := batch.NewVector(p.Q, p.NVars)
	defer s.Wipe()
	if err = s.Generate(expand(seedS)); err != nil {
		return
	}
	f, err := generate_circuit(p, expand(seedF))
	if err != nil {
		return
	}
	t, y, z := f.eval(s)
	defer wipe_vectors(y, z)

	vkey = make([]byte, p.VerifyingKeySize())
	copy(vkey, seedF)
	t.Export(vkey[sl:], 0)

	if p.Compact {
		skey = make([]byte, p.hash_len())
		copy(skey, entropy)
		return
	}
	skey = make([]byte, p.SigningKeySize())
	copy(skey, seedF)
	sk := &signingKey{s: s, t: t, y: y, z: z}
	sk.encode(p, skey[sl:])
	return
}

// Decoded signing key. The circuit is regenerated from the public seed.
// raw is the encoded key, as provided by the caller; it is absorbed by the
// signer's PRF.
type signingKey struct {
	raw        []byte
	f          *circuit
	s, t, y, z *batch.Vector
}

func (sk *signingKey) wipe() {
	if sk != nil {
		wipe_vectors(sk.s, sk.y, sk.z)
	}
}

// Write s, t, y and z consecutively (as packed field elements).
func (sk *signingKey) encode(p *Params, dst []byte) {
	n, m, nm := p.NVars, p.MEqs, p.num_mul()
	sk.s.Export(dst, 0)
	sk.t.Export(dst, n)
	sk.y.Export(dst, n+m)
	sk.z.Export(dst, n+m+nm)
}

func decode_signing_key(p *Params, skey []byte) (*signingKey, error) {
	if len(skey) != p.SigningKeySize() {
		return nil, ErrInvalidSigningKey
	}
	sl := p.seed_len()
	f, err := generate_circuit(p, expand(skey[:sl]))
	if err != nil {
		return nil, err
	}
	sk := &signingKey{raw: skey, f: f, s: batch.NewVector(p.Q, p.NVars)}

	if p.Compact {
		if err := sk.s.Generate(expand(skey[sl:])); err != nil {
			sk.wipe()
			return nil, err
		}
		sk.t, sk.y, sk.z = f.eval(sk.s)
		return sk, nil
	}

	n, m, nm, nc := p.NVars, p.MEqs, p.num_mul(), p.num_chain()
	data := skey[sl:]
	if !batch.TrailingBitsZero(data, p.Q.BitLen(n+m+nm+nc)) {
		return nil, ErrInvalidSigningKey
	}
	sk.t = batch.NewVector(p.Q, m)
	sk.y = batch.NewVector(p.Q, nm)
	sk.z = batch.NewVector(p.Q, nc)
	sk.s.Import(data, 0)
	sk.t.Import(data, n)
	sk.y.Import(data, n+m)
	sk.z.Import(data, n+m+nm)
	if !sk.s.InRange() || !sk.t.InRange() || !sk.y.InRange() || !sk.z.InRange() {
		sk.wipe()
		return nil, ErrInvalidSigningKey
	}
	return sk, nil
}
