package biscuit

// Seed tree for one repetition.
//
// The tree has logN+1 levels; level l has up to 2^l nodes. Leaves are
// at level logN, and only the first N of them are used. Node idx of
// level l exists if idx*2^(logN-l) < N, i.e. if it covers at least one
// used leaf. The two children of an existing node (l, p) are obtained
// together with child_seeds(salt, e, l, p, seed); both are stored, even
// when the right child covers no used leaf, since it may still be needed
// as a sibling in a revealed path.
//
// A tree rebuilt by a verifier from a path has nil entries for all
// nodes on the path from the root to the hidden leaf; these seeds are
// never computed.
type seedTree struct {
	logn  int
	n     int
	slen  int
	nodes [][][]byte
	buf   []byte
}

func new_seed_tree(p *Params) *seedTree {
	logn := p.log_n()
	slen := p.seed_len()
	t := &seedTree{
		logn:  logn,
		n:     p.N,
		slen:  slen,
		nodes: make([][][]byte, logn+1),
		buf:   make([]byte, ((2<<logn)-1)*slen),
	}
	off := 0
	for l := 0; l <= logn; l++ {
		t.nodes[l] = make([][]byte, 1<<l)
		for idx := range t.nodes[l] {
			t.nodes[l][idx] = t.buf[off : off+slen : off+slen]
			off += slen
		}
	}
	return t
}

// Returns true if node (l, idx) has children to expand.
func (t *seedTree) exists(l int, idx int) bool {
	return (idx << (t.logn - l)) < t.n
}

// Build the complete tree from the root seed.
func build_seed_tree(p *Params, root []byte, salt []byte, e int) *seedTree {
	t := new_seed_tree(p)
	copy(t.nodes[0][0], root)
	for l := 0; l < t.logn; l++ {
		for idx := 0; idx < (1<<l) && t.exists(l, idx); idx++ {
			t.expand(salt, e, l, idx)
		}
	}
	return t
}

// Compute both children of node (l, idx).
func (t *seedTree) expand(salt []byte, e int, l int, idx int) {
	var tmp [64]byte
	child_seeds(tmp[:], salt, e, l, idx, t.nodes[l][idx])
	copy(t.nodes[l+1][2*idx], tmp[:t.slen])
	copy(t.nodes[l+1][2*idx+1], tmp[t.slen:2*t.slen])
	clear(tmp[:])
}

// Write into dst the seeds needed to recompute all leaves except leaf
// ibar: the sibling of each node on the path from the root to ibar, top
// level first. dst has length logN*seedlen.
//
// When N is not a power of two, a sibling may cover no used leaf (e.g.
// node 3 of level 2 for N = 5 and ibar = 4). Its seed is written but never
// expanded by the verifier, so these bytes of a signature are not
// authenticated: changing them yields another valid signature for the
// same message. See unused_sibling.
func (t *seedTree) path(dst []byte, ibar int) {
	for l := 1; l <= t.logn; l++ {
		idx := ibar >> (t.logn - l)
		copy(dst[(l-1)*t.slen:], t.nodes[l][idx^1])
	}
}

// Returns true if the path sibling at level l (1 <= l <= logN) for
// hidden leaf ibar covers no used leaf.
func (t *seedTree) unused_sibling(l int, ibar int) bool {
	return !t.exists(l, (ibar>>(t.logn-l))^1)
}

// Rebuild a tree from a path; leaf ibar and all its ancestors are left
// nil.
func reconstruct_seed_tree(p *Params, path []byte, salt []byte, e int, ibar int) *seedTree {
	t := new_seed_tree(p)
	t.nodes[0][0] = nil
	for l := 0; l < t.logn; l++ {
		hidden := ibar >> (t.logn - l)
		for idx := 0; idx < (1<<l) && t.exists(l, idx); idx++ {
			if idx != hidden {
				t.expand(salt, e, l, idx)
				continue
			}
			c := ibar >> (t.logn - l - 1)
			if !t.unused_sibling(l+1, ibar) {
				copy(t.nodes[l+1][c^1], path[l*t.slen:(l+1)*t.slen])
			}
			t.nodes[l+1][c] = nil
		}
	}
	return t
}

// Party seeds; the hidden party has a nil seed in a reconstructed tree.
func (t *seedTree) leaves() [][]byte {
	return t.nodes[t.logn][:t.n]
}

func (t *seedTree) wipe() {
	clear(t.buf)
}
