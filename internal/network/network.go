// Package network declares the connection objects the diagnostics adapter
// reads from. Implementations belong to the networking layer.
package network

// Info is a snapshot of one connection's statistics.
type Info struct {
	RTT          float32 // round-trip time, milliseconds
	SentKbps     float32
	ReceivedKbps float32
	PacketLoss   float32 // ratio in [0, 1]
}

// Client is a single outgoing connection.
type Client interface {
	NetworkInfo() Info
}

// Server tracks the connections of many clients.
//
// NetworkInfo reports false when the client is unknown or not fully
// connected yet.
type Server interface {
	ClientIDs() []uint64
	NetworkInfo(clientID uint64) (Info, bool)
}
