// Package biscuit implements the Biscuit signature scheme, an
// MPC-in-the-head signature based on the hardness of solving a
// structured system of polynomial equations over a small finite field.
//
// A key pair is built from a public seed, which defines a polynomial map
// F of degree d from n field elements to m field elements, and a secret
// input s; the public key contains the seed and t = F(s). The map is a
// product of affine layers, so that evaluating it on an additive share of
// s costs d-1 batches of m multiplications, each of which is checked with
// a multiplication triple.
//
// A signature is a non-interactive zero-knowledge proof of knowledge of
// s, obtained with the Fiat-Shamir transform. The signer simulates tau
// independent runs of an N-party protocol in which each party holds an
// additive share of s, derived from a seed tree. It commits to all views
// (first hash h1), derives from h1 the challenges of the multiplication
// check, commits to the resulting broadcast values (second hash h2), and
// derives from h2 one hidden party per run. The signature reveals the
// seeds of all other parties through the seed-tree path of the hidden
// one, along with the public corrections and the broadcast value of the
// hidden party. The verifier recomputes both hashes and compares them
// with those of the signature.
//
// Parameter sets are described by [Params]. Predefined sets are [Toy]
// (no security, for tests only) and Biscuit128S to Biscuit256F. Keys and
// signatures have a fixed size for a given parameter set; see
// [Params.SigningKeySize], [Params.VerifyingKeySize] and
// [Params.SignatureSize]. Two signing key formats exist: the compact
// format holds only the two seeds, the expanded format (the default) also
// stores the secret input and the intermediate values of the evaluation
// of F on it, which saves time at signing.
//
// Signatures are not unique encodings. When N is not a power of two, a
// revealed seed-tree path may contain a seed that covers no party; the
// verifier ignores it, and changing it yields another valid signature on
// the same message.
//
// A new key pair is created with [KeyGen], which takes the parameters and
// a source of randomness. The random source MUST be cryptographically
// secure. If the source is nil, then the operating system's RNG is used
// (through crypto/rand.Reader). Messages are signed with [Sign] and
// signatures verified with [Verify]. The [Scheme] type bundles a
// parameter set with a logger, Prometheus metrics and a limit on the
// number of runs processed concurrently.
package biscuit
