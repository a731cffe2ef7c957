package biscuit

import (
	"fmt"

	"github.com/pqsig/go-biscuit/batch"
)

// Params is a complete parameter set. Parameter sets are plain values;
// they are validated when used.
type Params struct {
	// Name is informative only (used in logs and metrics).
	Name string

	// Security level in bits: 128, 192 or 256. Seeds are Lambda/8 bytes;
	// salts, commitments and challenge digests are Lambda/4 bytes.
	Lambda int

	// Number of repetitions (tau) and number of simulated parties (N).
	Tau int
	N   int

	// Field, number of variables (n), number of equations (m) and
	// degree (d) of the public polynomial system.
	Q      batch.Field
	NVars  int
	MEqs   int
	Degree int

	// If Compact is set, signing keys hold only the two seeds, and the
	// secret input and intermediate values are recomputed for each
	// signature. Otherwise, they are stored in the key.
	Compact bool
}

// Toy parameters. They offer no security at all and are meant for tests.
var Toy = Params{
	Name: "toy", Lambda: 128, Tau: 1, N: 2,
	Q: batch.GF2, NVars: 8, MEqs: 4, Degree: 2,
}

// Standard parameter sets, over GF(16) with a degree-3 system. The "s"
// variants use 256 parties (shorter signatures), the "f" variants use 16
// parties (faster signing and verification).
//
// These sets are defined by this package. They are not the parameter sets
// of the Biscuit submission, and keys and signatures do not interoperate
// with its reference implementation.
var (
	Biscuit128S = Params{
		Name: "biscuit128s", Lambda: 128, Tau: 33, N: 256,
		Q: batch.GF16, NVars: 64, MEqs: 67, Degree: 3,
	}
	Biscuit128F = Params{
		Name: "biscuit128f", Lambda: 128, Tau: 42, N: 16,
		Q: batch.GF16, NVars: 64, MEqs: 67, Degree: 3,
	}
	Biscuit192S = Params{
		Name: "biscuit192s", Lambda: 192, Tau: 50, N: 256,
		Q: batch.GF16, NVars: 98, MEqs: 101, Degree: 3,
	}
	Biscuit192F = Params{
		Name: "biscuit192f", Lambda: 192, Tau: 64, N: 16,
		Q: batch.GF16, NVars: 98, MEqs: 101, Degree: 3,
	}
	Biscuit256S = Params{
		Name: "biscuit256s", Lambda: 256, Tau: 66, N: 256,
		Q: batch.GF16, NVars: 130, MEqs: 133, Degree: 3,
	}
	Biscuit256F = Params{
		Name: "biscuit256f", Lambda: 256, Tau: 85, N: 16,
		Q: batch.GF16, NVars: 130, MEqs: 133, Degree: 3,
	}
)

var presets = []Params{
	Toy, Biscuit128S, Biscuit128F, Biscuit192S, Biscuit192F,
	Biscuit256S, Biscuit256F,
}

// ParamsByName returns the predefined parameter set with the given name.
func ParamsByName(name string) (Params, bool) {
	for _, p := range presets {
		if p.Name == name {
			return p, true
		}
	}
	return Params{}, false
}

// Validate checks that the parameters are usable. Repetition and party
// indices are encoded over 16 bits, which bounds Tau and N.
func (p Params) Validate() error {
	switch {
	case p.Lambda != 128 && p.Lambda != 192 && p.Lambda != 256:
		return fmt.Errorf("%w: unsupported security level %d", ErrInvalidParams, p.Lambda)
	case p.Tau < 1 || p.Tau > 0xFFFF:
		return fmt.Errorf("%w: invalid number of repetitions %d", ErrInvalidParams, p.Tau)
	case p.N < 2 || p.N > 0x10000:
		return fmt.Errorf("%w: invalid number of parties %d", ErrInvalidParams, p.N)
	case !p.Q.Valid():
		return fmt.Errorf("%w: unsupported field size %d", ErrInvalidParams, uint32(p.Q))
	case p.NVars < 1 || p.MEqs < 1:
		return fmt.Errorf("%w: invalid system dimensions %dx%d", ErrInvalidParams, p.NVars, p.MEqs)
	case p.Degree < 2:
		return fmt.Errorf("%w: invalid degree %d", ErrInvalidParams, p.Degree)
	}
	return nil
}

// Seed length (Lambda/8 bytes).
func (p Params) seed_len() int {
	return p.Lambda >> 3
}

// Salt, commitment and digest length (Lambda/4 bytes).
func (p Params) hash_len() int {
	return p.Lambda >> 2
}

// Depth of the seed tree: ceil(log2(N)).
func (p Params) log_n() int {
	return ilog2(p.N)
}

// Number of multiplications in the circuit.
func (p Params) num_mul() int {
	return (p.Degree - 1) * p.MEqs
}

// Number of intermediate multiplication results which are not directly
// derived from the public output.
func (p Params) num_chain() int {
	return (p.Degree - 2) * p.MEqs
}

// Number of field elements per repetition in the delta part of a
// signature.
func (p Params) num_delta() int {
	return p.NVars + p.num_chain() + p.num_mul()
}

// Number of bits needed to represent values in [0, n-1].
func ilog2(n int) int {
	r := 0
	for n--; n > 0; n >>= 1 {
		r++
	}
	return r
}

// SigningKeySize returns the size, in bytes, of a signing key.
func (p Params) SigningKeySize() int {
	if p.Compact {
		return p.hash_len()
	}
	return p.seed_len() + p.Q.ByteLen(p.NVars+p.MEqs+p.num_mul()+p.num_chain())
}

// VerifyingKeySize returns the size, in bytes, of a verifying key.
func (p Params) VerifyingKeySize() int {
	return p.seed_len() + p.Q.ByteLen(p.MEqs)
}

// SignatureSize returns the size, in bytes, of a signature.
func (p Params) SignatureSize() int {
	return 3*p.hash_len() + p.Tau*p.proof_len() + p.Q.ByteLen(p.Tau*(p.num_delta()+p.num_mul()))
}

// Per-repetition seed-tree path and hidden commitment.
func (p Params) proof_len() int {
	return p.log_n()*p.seed_len() + p.hash_len()
}
