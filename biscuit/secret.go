package biscuit

import (
	"github.com/pqsig/go-biscuit/batch"
)

// Erase secret byte buffers.
func wipe_bytes(bufs ...[]byte) {
	for _, b := range bufs {
		clear(b)
	}
}

// Erase secret vectors. Nil vectors are ignored.
func wipe_vectors(vs ...*batch.Vector) {
	for _, v := range vs {
		v.Wipe()
	}
}
