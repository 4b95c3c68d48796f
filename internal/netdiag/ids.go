package netdiag

import (
	"strconv"

	"codeberg.org/mutker/netdiag/internal/diagnostics"
	"codeberg.org/mutker/netdiag/internal/network"
)

// Kind is one of the four published network statistics.
type Kind int

const (
	KindRTT Kind = iota
	KindSentKbps
	KindReceivedKbps
	KindPacketLoss
)

// Kinds lists every Kind in publishing order.
var Kinds = [...]Kind{KindRTT, KindSentKbps, KindReceivedKbps, KindPacketLoss}

// Base identifiers of the single-connection series. Per-client series are
// offset from these by the client id, so the bases must stay more than 2^64
// apart. They must never change: consumers key on them.
var (
	// RTT is 41598154451286296937086289020957009281.
	RTT = diagnostics.IDFromUint128(0x1f4b835c6a5a7434, 0x4859525e762ca581)
	// SentKbps is 90848304625986116817112626213519895727.
	SentKbps = diagnostics.IDFromUint128(0x4458bf3d336740fe, 0xa59254d061e42caf)
	// ReceivedKbps is 31519729826609147865210468700944359742.
	ReceivedKbps = diagnostics.IDFromUint128(0x17b67aa9a7487de1, 0x00d873e95be4613e)
	// PacketLoss is 74946797489629323601504027060352742281.
	PacketLoss = diagnostics.IDFromUint128(0x38623a682d674cfa, 0xf9cb666dbc267389)
)

var kindNames = [...]string{
	KindRTT:          "network_rtt",
	KindSentKbps:     "network_sent_kbps",
	KindReceivedKbps: "network_received_kbps",
	KindPacketLoss:   "network_packet_loss",
}

// BaseID returns the single-connection identifier for k.
func (k Kind) BaseID() diagnostics.ID {
	switch k {
	case KindRTT:
		return RTT
	case KindSentKbps:
		return SentKbps
	case KindReceivedKbps:
		return ReceivedKbps
	case KindPacketLoss:
		return PacketLoss
	default:
		panic("netdiag: unknown kind " + strconv.Itoa(int(k)))
	}
}

// Name returns the series name used for the single connection.
func (k Kind) Name() string {
	if k < 0 || int(k) >= len(kindNames) {
		return "kind(" + strconv.Itoa(int(k)) + ")"
	}
	return kindNames[k]
}

func (k Kind) String() string {
	return k.Name()
}

// DerivedID returns the identifier of clientID's series for k.
func DerivedID(k Kind, clientID uint64) diagnostics.ID {
	return k.BaseID().Add(clientID)
}

// DisplayName returns the series name for clientID, e.g. network_rtt_7.
func DisplayName(k Kind, clientID uint64) string {
	return k.Name() + "_" + strconv.FormatUint(clientID, 10)
}

// sample picks k's statistic out of info.
func (k Kind) sample(info network.Info) float64 {
	switch k {
	case KindRTT:
		return float64(info.RTT)
	case KindSentKbps:
		return float64(info.SentKbps)
	case KindReceivedKbps:
		return float64(info.ReceivedKbps)
	default:
		return float64(info.PacketLoss)
	}
}
