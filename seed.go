package polya

import (
	"encoding/binary"

	murmur "github.com/aviddiviner/go-murmur"
)

// StreamSeed derives the seed of one run within a labelled family of
// runs.  Distinct (label, run) pairs map onto unrelated seeds, so runs
// can be executed in any order or in parallel without sharing a stream.
func StreamSeed(base uint64, label string, run int) uint64 {
	key := make([]byte, len(label)+8)
	copy(key, label)
	binary.LittleEndian.PutUint64(key[len(label):], uint64(run))
	return murmur.MurmurHash64A(key, base)
}
