package netdiag_test

import (
	"math"
	"testing"

	"codeberg.org/mutker/netdiag/internal/diagnostics"
	"codeberg.org/mutker/netdiag/internal/netdiag"
	"github.com/stretchr/testify/assert"
)

func TestBaseIDs(t *testing.T) {
	assert.Equal(t, "1f4b835c-6a5a-7434-4859-525e762ca581", netdiag.RTT.String())
	assert.Equal(t, "4458bf3d-3367-40fe-a592-54d061e42caf", netdiag.SentKbps.String())
	assert.Equal(t, "17b67aa9-a748-7de1-00d8-73e95be4613e", netdiag.ReceivedKbps.String())
	assert.Equal(t, "38623a68-2d67-4cfa-f9cb-666dbc267389", netdiag.PacketLoss.String())

	assert.Equal(t, netdiag.RTT, netdiag.KindRTT.BaseID())
	assert.Equal(t, netdiag.PacketLoss, netdiag.KindPacketLoss.BaseID())
}

func TestBaseIDsSpacedBeyond64Bits(t *testing.T) {
	// High words at least two apart keep every base + uint64 range disjoint.
	for i, a := range netdiag.Kinds {
		for _, b := range netdiag.Kinds[i+1:] {
			hiA, _ := a.BaseID().Uint128()
			hiB, _ := b.BaseID().Uint128()
			if hiA < hiB {
				hiA, hiB = hiB, hiA
			}
			assert.GreaterOrEqual(t, hiA-hiB, uint64(2), "%v and %v", a, b)
		}
	}
}

func TestDerivedIDInjectiveOverClients(t *testing.T) {
	clients := []uint64{0, 1, 2, 5, 7, 42, 1 << 32, math.MaxUint64 - 1, math.MaxUint64}
	for _, k := range netdiag.Kinds {
		seen := make(map[diagnostics.ID]uint64)
		for _, c := range clients {
			id := netdiag.DerivedID(k, c)
			prev, dup := seen[id]
			assert.False(t, dup, "%v: clients %d and %d collide", k, prev, c)
			seen[id] = c
		}
	}
}

func TestDerivedIDDistinctAcrossKinds(t *testing.T) {
	clients := []uint64{0, 5, 7, 9, math.MaxUint64}
	seen := make(map[diagnostics.ID]string)
	for _, k := range netdiag.Kinds {
		for _, c := range clients {
			id := netdiag.DerivedID(k, c)
			name := netdiag.DisplayName(k, c)
			prev, dup := seen[id]
			assert.False(t, dup, "%s collides with %s", name, prev)
			seen[id] = name
		}
	}
}

func TestDerivedIDNeverHitsAnotherBase(t *testing.T) {
	for _, k := range netdiag.Kinds {
		for _, c := range []uint64{1, 5, math.MaxUint64} {
			id := netdiag.DerivedID(k, c)
			for _, other := range netdiag.Kinds {
				assert.NotEqual(t, other.BaseID(), id, "%v client %d", k, c)
			}
		}
	}
	assert.NotEqual(t, netdiag.RTT, netdiag.DerivedID(netdiag.KindRTT, 5))
}

func TestDerivedIDIsOffsetFromBase(t *testing.T) {
	assert.Equal(t, netdiag.RTT, netdiag.DerivedID(netdiag.KindRTT, 0))
	assert.Equal(t, "1f4b835c-6a5a-7434-4859-525e762ca588", netdiag.DerivedID(netdiag.KindRTT, 7).String())
	assert.Equal(t, netdiag.DerivedID(netdiag.KindSentKbps, 9), netdiag.DerivedID(netdiag.KindSentKbps, 9))
}

func TestDisplayName(t *testing.T) {
	assert.Equal(t, "network_rtt_42", netdiag.DisplayName(netdiag.KindRTT, 42))
	assert.Equal(t, "network_rtt_7", netdiag.DisplayName(netdiag.KindRTT, 7))
	assert.Equal(t, "network_sent_kbps_0", netdiag.DisplayName(netdiag.KindSentKbps, 0))
	assert.Equal(t, "network_received_kbps_18446744073709551615",
		netdiag.DisplayName(netdiag.KindReceivedKbps, math.MaxUint64))
	assert.Equal(t, "network_packet_loss_3", netdiag.DisplayName(netdiag.KindPacketLoss, 3))
}

func TestKindNames(t *testing.T) {
	assert.Equal(t, "network_rtt", netdiag.KindRTT.String())
	assert.Equal(t, "network_received_kbps", netdiag.KindReceivedKbps.Name())
	assert.Equal(t, "kind(9)", netdiag.Kind(9).Name())
	assert.Panics(t, func() { netdiag.Kind(9).BaseID() })
}
