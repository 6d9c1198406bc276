package strongint

import (
	"encoding/binary"

	"github.com/cespare/xxhash/v2"
)

// Hash returns a 64-bit value hash consistent with equality: two equal
// values of the same instantiation always hash identically. The struct is
// also comparable, so plain Go maps already accept strong integers as keys;
// Hash exists for containers that shard or address by an explicit hash.
func (x Int[Tag, N, V]) Hash() uint64 {
	var buf [8]byte
	binary.LittleEndian.PutUint64(buf[:], uint64(x.value))
	return xxhash.Sum64(buf[:])
}
