package diagnostics

type multiSink []Sink

// Multi returns a Sink that forwards every call to each of sinks in order.
// Nil sinks are skipped.
func Multi(sinks ...Sink) Sink {
	out := make(multiSink, 0, len(sinks))
	for _, s := range sinks {
		if s != nil {
			out = append(out, s)
		}
	}
	if len(out) == 1 {
		return out[0]
	}
	return out
}

func (m multiSink) Register(id ID, name string, historyLength int) {
	for _, s := range m {
		s.Register(id, name, historyLength)
	}
}

func (m multiSink) Push(id ID, value float64) {
	for _, s := range m {
		s.Push(id, value)
	}
}

// Nop returns a Sink that discards everything.
func Nop() Sink {
	return nopSink{}
}

type nopSink struct{}

func (nopSink) Register(ID, string, int) {}
func (nopSink) Push(ID, float64)         {}
