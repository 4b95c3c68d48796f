package diagnostics_test

import (
	"math"
	"testing"

	"codeberg.org/mutker/netdiag/internal/diagnostics"
	"github.com/stretchr/testify/assert"
)

func TestIDRoundTrip(t *testing.T) {
	id := diagnostics.IDFromUint128(0x1f4b835c6a5a7434, 0x4859525e762ca581)
	assert.Equal(t, "1f4b835c-6a5a-7434-4859-525e762ca581", id.String())
	assert.Equal(t, id, diagnostics.MustParseID("1f4b835c-6a5a-7434-4859-525e762ca581"))

	hi, lo := id.Uint128()
	assert.Equal(t, uint64(0x1f4b835c6a5a7434), hi)
	assert.Equal(t, uint64(0x4859525e762ca581), lo)
}

func TestIDAdd(t *testing.T) {
	base := diagnostics.IDFromUint128(1, 10)

	assert.Equal(t, base, base.Add(0))
	assert.Equal(t, diagnostics.IDFromUint128(1, 17), base.Add(7))
}

func TestIDAddCarries(t *testing.T) {
	base := diagnostics.IDFromUint128(1, math.MaxUint64-1)

	assert.Equal(t, diagnostics.IDFromUint128(2, 0), base.Add(2))
	assert.Equal(t, diagnostics.IDFromUint128(2, math.MaxUint64-2), base.Add(math.MaxUint64))
}
