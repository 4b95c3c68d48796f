package netdiag

import (
	"sort"

	"codeberg.org/mutker/netdiag/internal/diagnostics"
)

// State remembers which server clients already have their series
// registered. A client id is added the first time it is seen with network
// info and is never removed, even after it disconnects.
//
// State is not safe for concurrent use; it belongs to the single goroutine
// driving the plugin.
type State struct {
	historyLength int
	registered    map[uint64]struct{}
}

func NewState(historyLength int) *State {
	return &State{
		historyLength: historyLength,
		registered:    make(map[uint64]struct{}),
	}
}

// EnsureRegistered registers clientID's four series with sink unless that
// was already done. It reports whether registration happened.
func (s *State) EnsureRegistered(sink diagnostics.Sink, clientID uint64) bool {
	if _, ok := s.registered[clientID]; ok {
		return false
	}
	for _, k := range Kinds {
		sink.Register(DerivedID(k, clientID), DisplayName(k, clientID), s.historyLength)
	}
	s.registered[clientID] = struct{}{}
	return true
}

// Registered reports whether clientID's series have been registered.
func (s *State) Registered(clientID uint64) bool {
	_, ok := s.registered[clientID]
	return ok
}

// Len returns the number of registered clients.
func (s *State) Len() int {
	return len(s.registered)
}

// ClientIDs returns the registered client ids in ascending order.
func (s *State) ClientIDs() []uint64 {
	ids := make([]uint64, 0, len(s.registered))
	for id := range s.registered {
		ids = append(ids, id)
	}
	sort.Slice(ids, func(i, j int) bool { return ids[i] < ids[j] })
	return ids
}
