package grid

import (
	"encoding/binary"
	"hash/fnv"
)

// emptyMarker stands in for the empty cell inside the fingerprint stream.
// It cannot collide with a tile value (values are 1..n²-1 ≤ 224).
const emptyMarker uint32 = ^uint32(0)

// Fingerprint returns a 64-bit FNV-1a hash of the ordered cell contents
// (tile value per cell, emptyMarker for the hole). It is deterministic for
// equal boards and is used exclusively for visited-state deduplication.
//
// Two distinct boards hashing to the same value is a rare, accepted
// probabilistic risk of hash-based dedup – 64 bits keep it negligible,
// and move legality never depends on fingerprints.
// Complexity: O(N²).
func (g *Grid) Fingerprint() uint64 {
	h := fnv.New64a()
	var buf [4]byte
	for idx, ok := range g.has {
		v := emptyMarker
		if ok {
			v = uint32(g.cells[idx].Value)
		}
		binary.LittleEndian.PutUint32(buf[:], v)
		_, _ = h.Write(buf[:])
	}

	return h.Sum64()
}
