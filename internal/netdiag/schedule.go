package netdiag

import "codeberg.org/mutker/netdiag/internal/network"

// Resources are the connection objects available on a tick. A nil field
// means the resource is absent.
type Resources struct {
	Client network.Client
	Server network.Server
}

// Mode says which sampling routines run on a tick.
type Mode int

const (
	ModeNone Mode = iota
	ModeClient
	ModeServer
	ModeClientServer
)

func (m Mode) String() string {
	switch m {
	case ModeNone:
		return "none"
	case ModeClient:
		return "client"
	case ModeServer:
		return "server"
	case ModeClientServer:
		return "client+server"
	default:
		return "unknown"
	}
}

// Mode derives the tick's mode from which resources are present.
func (r Resources) Mode() Mode {
	switch {
	case r.Client != nil && r.Server != nil:
		return ModeClientServer
	case r.Client != nil:
		return ModeClient
	case r.Server != nil:
		return ModeServer
	default:
		return ModeNone
	}
}

func (m Mode) hasClient() bool { return m == ModeClient || m == ModeClientServer }
func (m Mode) hasServer() bool { return m == ModeServer || m == ModeClientServer }

// Startup runs the one-time setup for the resources present before the
// first tick.
func (p *Plugin) Startup(res Resources) {
	if res.Mode().hasClient() {
		p.Setup()
	}
}

// Update runs the sampling routines whose resource is present and returns
// the mode that was dispatched.
func (p *Plugin) Update(res Resources) Mode {
	mode := res.Mode()
	if mode != p.mode {
		p.log.Debug().
			Str("from", p.mode.String()).
			Str("to", mode.String()).
			Msg("Diagnostics mode changed")
		p.mode = mode
	}

	if mode.hasClient() {
		// A client that shows up after startup still gets its series.
		p.Setup()
		p.SampleClient(res.Client)
	}
	if mode.hasServer() {
		p.SampleServer(res.Server)
	}
	return mode
}
