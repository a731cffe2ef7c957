package biscuit

import (
	"errors"

	sha3 "golang.org/x/crypto/sha3"
)

var (
	// ErrInvalidParams is returned (wrapped) when a parameter set fails
	// validation.
	ErrInvalidParams = errors.New("biscuit: invalid parameters")

	// ErrInvalidSigningKey is returned when a signing key has the wrong
	// length or does not decode properly.
	ErrInvalidSigningKey = errors.New("biscuit: invalid signing key")
)

// Domain separation bytes for the SHAKE256-based oracles.
const (
	dom_commit = 0x00
	dom_h1     = 0x01
	dom_h2     = 0x02
	dom_tree   = 0x03
	dom_tape   = 0x04
)

func le16(dst []byte, x int) []byte {
	return append(dst, uint8(x), uint8(x>>8))
}

// Commitment on the seed of party i in repetition e:
//
//	SHAKE256(0x00 || salt || e || i || seed)
//
// with e and i over 16 bits (little-endian). Output has length
// len(salt) and is written into dst.
func commit(dst []byte, salt []byte, e int, i int, seed []byte) {
	var hdr [5]byte
	hdr[0] = dom_commit
	le16(le16(hdr[:1], e), i)
	sh := sha3.NewShake256()
	sh.Write(hdr[:1])
	sh.Write(salt)
	sh.Write(hdr[1:])
	sh.Write(seed)
	sh.Read(dst[:len(salt)])
}

// Random tape of party i in repetition e:
//
//	SHAKE256(0x04 || salt || e || i || seed)
func expand_tape(salt []byte, e int, i int, seed []byte) sha3.ShakeHash {
	var hdr [5]byte
	hdr[0] = dom_tape
	le16(le16(hdr[:1], e), i)
	sh := sha3.NewShake256()
	sh.Write(hdr[:1])
	sh.Write(salt)
	sh.Write(hdr[1:])
	sh.Write(seed)
	return sh
}

// Seed expansion (public system, secret input, challenges).
func expand(seed []byte) sha3.ShakeHash {
	sh := sha3.NewShake256()
	sh.Write(seed)
	return sh
}

// Children of the seed-tree node (layer, index) in repetition e:
//
//	SHAKE256(0x03 || salt || e || layer || index || parent)
//
// The two child seeds (left then right) are written in dst, which has
// length 2*len(parent).
func child_seeds(dst []byte, salt []byte, e int, layer int, index int, parent []byte) {
	var hdr [7]byte
	hdr[0] = dom_tree
	le16(le16(le16(hdr[:1], e), layer), index)
	sh := sha3.NewShake256()
	sh.Write(hdr[:1])
	sh.Write(salt)
	sh.Write(hdr[1:])
	sh.Write(parent)
	sh.Read(dst[:2*len(parent)])
}

// First Fiat-Shamir hash: SHAKE256(0x01 || salt || msg || ...), the
// caller then absorbs commitments and deltas.
func new_h1(salt []byte, msg []byte) sha3.ShakeHash {
	sh := sha3.NewShake256()
	sh.Write([]byte{dom_h1})
	sh.Write(salt)
	sh.Write(msg)
	return sh
}

// Second Fiat-Shamir hash: SHAKE256(0x02 || salt || h1 || ...), the
// caller then absorbs the broadcast values of the checking protocol.
func new_h2(salt []byte, h1 []byte) sha3.ShakeHash {
	sh := sha3.NewShake256()
	sh.Write([]byte{dom_h2})
	sh.Write(salt)
	sh.Write(h1)
	return sh
}

// Derivation of the salt and root seeds from the signer's entropy, the
// complete signing key and the message.
func new_prf(entropy []byte, skey []byte, msg []byte) sha3.ShakeHash {
	sh := sha3.NewShake256()
	sh.Write(entropy)
	sh.Write(skey)
	sh.Write(msg)
	return sh
}

// Sample an index in [0, N-1] from the provided stream. One byte is
// used per candidate if N <= 256, two bytes (little-endian) otherwise;
// candidates are truncated to logN bits and rejected if out of range.
func index_sample(sh sha3.ShakeHash, n int, logn int) int {
	mask := (1 << logn) - 1
	var buf [2]byte
	k := 1
	if logn > 8 {
		k = 2
	}
	for {
		buf[1] = 0
		sh.Read(buf[:k])
		v := (int(buf[0]) | (int(buf[1]) << 8)) & mask
		if v < n {
			return v
		}
	}
}
