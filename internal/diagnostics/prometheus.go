package diagnostics

import (
	"sync"

	"codeberg.org/mutker/netdiag/internal/errors"
	"codeberg.org/mutker/netdiag/internal/logger"
	"github.com/prometheus/client_golang/prometheus"
)

// PrometheusSink mirrors every registered series as a gauge holding its
// latest sample. History is left to Prometheus itself.
type PrometheusSink struct {
	reg    prometheus.Registerer
	log    logger.Logger
	mu     sync.Mutex
	gauges map[ID]prometheus.Gauge
}

var _ Sink = (*PrometheusSink)(nil)

func NewPrometheusSink(reg prometheus.Registerer, log logger.Logger) *PrometheusSink {
	return &PrometheusSink{
		reg:    reg,
		log:    log,
		gauges: make(map[ID]prometheus.Gauge),
	}
}

// Register creates a gauge named after the series, labelled with its id. A
// gauge that is already registered with the same name and id is reused.
func (p *PrometheusSink) Register(id ID, name string, _ int) {
	p.mu.Lock()
	defer p.mu.Unlock()

	if _, ok := p.gauges[id]; ok {
		return
	}

	g := prometheus.NewGauge(prometheus.GaugeOpts{
		Name:        name,
		Help:        "Network diagnostic " + name + ".",
		ConstLabels: prometheus.Labels{"diagnostic_id": id.String()},
	})
	if err := p.reg.Register(g); err != nil {
		are, ok := err.(prometheus.AlreadyRegisteredError)
		if !ok {
			p.log.ErrorWithContext(errors.New().Wrap(errors.ErrRegisterSeries, err), "prometheus", "register").
				Str("name", name).
				Str("id", id.String()).
				Msg("Failed to register gauge")
			return
		}
		existing, ok := are.ExistingCollector.(prometheus.Gauge)
		if !ok {
			p.log.ErrorWithContext(errors.New().Wrap(errors.ErrRegisterSeries, err), "prometheus", "register").
				Str("name", name).
				Msg("Collector registered under this name is not a gauge")
			return
		}
		g = existing
	}
	p.gauges[id] = g
}

// Push sets the gauge for id to value.
func (p *PrometheusSink) Push(id ID, value float64) {
	p.mu.Lock()
	g, ok := p.gauges[id]
	p.mu.Unlock()

	if ok {
		g.Set(value)
	}
}

// Gauge returns the gauge backing id.
func (p *PrometheusSink) Gauge(id ID) (prometheus.Gauge, bool) {
	p.mu.Lock()
	defer p.mu.Unlock()
	g, ok := p.gauges[id]
	return g, ok
}
