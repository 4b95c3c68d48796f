// Package netdiag republishes network statistics from a client connection or
// from every connection of a server into a diagnostics sink, once per tick.
package netdiag

import (
	"codeberg.org/mutker/netdiag/internal/diagnostics"
	"codeberg.org/mutker/netdiag/internal/logger"
	"codeberg.org/mutker/netdiag/internal/network"
)

// Plugin owns the per-client registry state and publishes samples into its
// sink. Build it once and call Startup, then Update on every tick.
type Plugin struct {
	sink          diagnostics.Sink
	log           logger.Logger
	historyLength int
	state         *State
	setup         bool
	mode          Mode
}

// Option configures a Plugin.
type Option func(*Plugin)

// WithHistoryLength sets the number of samples each series retains.
func WithHistoryLength(n int) Option {
	return func(p *Plugin) {
		p.historyLength = n
	}
}

// WithLogger sets the logger used for registration and mode changes.
func WithLogger(log logger.Logger) Option {
	return func(p *Plugin) {
		p.log = log
	}
}

func New(sink diagnostics.Sink, opts ...Option) *Plugin {
	p := &Plugin{
		sink:          sink,
		log:           logger.Default(),
		historyLength: diagnostics.DefaultHistoryLength,
	}
	for _, opt := range opts {
		opt(p)
	}
	p.state = NewState(p.historyLength)
	return p
}

// State returns the registry of server clients seen so far.
func (p *Plugin) State() *State {
	return p.state
}

// Setup registers the four single-connection series. Only the first call
// has an effect.
func (p *Plugin) Setup() {
	if p.setup {
		return
	}
	for _, k := range Kinds {
		p.sink.Register(k.BaseID(), k.Name(), p.historyLength)
	}
	p.setup = true
	p.log.Debug().Int("history_length", p.historyLength).Msg("Registered client diagnostics")
}

// SampleClient pushes one sample per kind from the client's current
// network info to the single-connection series.
func (p *Plugin) SampleClient(client network.Client) {
	info := client.NetworkInfo()
	for _, k := range Kinds {
		p.sink.Push(k.BaseID(), k.sample(info))
	}
}

// SampleServer pushes one sample per kind for every connected client that
// has network info, registering a client's series the first time it is
// seen. Clients without info are skipped until a later tick.
func (p *Plugin) SampleServer(server network.Server) {
	for _, clientID := range server.ClientIDs() {
		info, ok := server.NetworkInfo(clientID)
		if !ok {
			continue
		}
		if p.state.EnsureRegistered(p.sink, clientID) {
			p.log.Debug().Uint64("client_id", clientID).Msg("Registered server client diagnostics")
		}
		for _, k := range Kinds {
			p.sink.Push(DerivedID(k, clientID), k.sample(info))
		}
	}
}
