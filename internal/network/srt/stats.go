// Package srt reads connection statistics from SRT sockets
// (github.com/datarhei/gosrt) and exposes them as network.Client and
// network.Server.
package srt

import (
	gosrt "github.com/datarhei/gosrt"

	"codeberg.org/mutker/netdiag/internal/network"
)

const (
	kbpsPerMbps = 1000
	percent     = 100
)

// Conn is the part of gosrt.Conn the adapters use.
type Conn interface {
	Read(p []byte) (int, error)
	Close() error
	SocketId() uint32
	Stats(s *gosrt.Statistics)
}

var _ Conn = gosrt.Conn(nil)

type direction int

const (
	sending direction = iota
	receiving
)

// infoFromStats converts instantaneous SRT statistics into a snapshot.
// gosrt reports loss in percent; the snapshot carries a ratio. The loss
// direction follows the side of the stream the local socket is on.
func infoFromStats(st *gosrt.Statistics, dir direction) network.Info {
	inst := st.Instantaneous

	loss := inst.PktRecvLossRate
	if dir == sending {
		loss = inst.PktSendLossRate
	}

	return network.Info{
		RTT:          float32(inst.MsRTT),
		SentKbps:     float32(inst.MbpsSentRate * kbpsPerMbps),
		ReceivedKbps: float32(inst.MbpsRecvRate * kbpsPerMbps),
		PacketLoss:   float32(loss / percent),
	}
}
