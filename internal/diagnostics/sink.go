// Package diagnostics holds the metrics sink the network adapter publishes
// into: an in-memory store of named series with bounded history, plus
// bridges that mirror those series elsewhere.
package diagnostics

// DefaultHistoryLength is the number of samples a series keeps unless
// registered with another capacity.
const DefaultHistoryLength = 20

// Sink receives series registrations and samples.
//
// Register is called once per series before any sample for it. Push for an
// id that was never registered is ignored.
type Sink interface {
	Register(id ID, name string, historyLength int)
	Push(id ID, value float64)
}
