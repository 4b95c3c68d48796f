package netdiag_test

import (
	"codeberg.org/mutker/netdiag/internal/diagnostics"
	"codeberg.org/mutker/netdiag/internal/network"
)

type registration struct {
	ID            diagnostics.ID
	Name          string
	HistoryLength int
}

type sample struct {
	ID    diagnostics.ID
	Value float64
}

// recordingSink records every call it receives.
type recordingSink struct {
	registrations []registration
	samples       []sample
}

func (s *recordingSink) Register(id diagnostics.ID, name string, historyLength int) {
	s.registrations = append(s.registrations, registration{id, name, historyLength})
}

func (s *recordingSink) Push(id diagnostics.ID, value float64) {
	s.samples = append(s.samples, sample{id, value})
}

func (s *recordingSink) reset() {
	s.registrations = nil
	s.samples = nil
}

type fakeClient struct {
	info network.Info
}

func (c *fakeClient) NetworkInfo() network.Info { return c.info }

type fakeServer struct {
	ids   []uint64
	infos map[uint64]network.Info
}

func (s *fakeServer) ClientIDs() []uint64 { return s.ids }

func (s *fakeServer) NetworkInfo(clientID uint64) (network.Info, bool) {
	info, ok := s.infos[clientID]
	return info, ok
}
