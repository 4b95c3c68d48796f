package diagnostics

import (
	"encoding/binary"
	"math/bits"

	"github.com/google/uuid"
)

// ID identifies a diagnostic series. It is a 128-bit value stored big-endian,
// printed in canonical UUID form.
type ID uuid.UUID

// IDFromUint128 builds an ID from the high and low 64-bit words of a
// 128-bit integer.
func IDFromUint128(hi, lo uint64) ID {
	var id ID
	binary.BigEndian.PutUint64(id[:8], hi)
	binary.BigEndian.PutUint64(id[8:], lo)
	return id
}

// MustParseID parses a UUID string and panics on malformed input.
func MustParseID(s string) ID {
	return ID(uuid.MustParse(s))
}

// Uint128 returns the high and low words of id.
func (id ID) Uint128() (hi, lo uint64) {
	return binary.BigEndian.Uint64(id[:8]), binary.BigEndian.Uint64(id[8:])
}

// Add returns id + n as 128-bit integers. The carry out of the high word is
// discarded.
func (id ID) Add(n uint64) ID {
	hi, lo := id.Uint128()
	lo, carry := bits.Add64(lo, n, 0)
	hi, _ = bits.Add64(hi, 0, carry)
	return IDFromUint128(hi, lo)
}

func (id ID) String() string {
	return uuid.UUID(id).String()
}
