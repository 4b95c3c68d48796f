package diagnostics

import "codeberg.org/mutker/netdiag/internal/logger"

// LogSummary writes one info line per series in store with its latest value
// and average. Series with no samples yet are logged at debug level.
func LogSummary(store *Store, log logger.Logger) {
	for _, s := range store.All() {
		value, ok := s.Value()
		if !ok {
			log.Debug().
				Str("name", s.Name).
				Str("id", s.ID.String()).
				Msg("No samples yet")
			continue
		}
		avg, _ := s.Average()
		log.Info().
			Str("name", s.Name).
			Float64("value", value).
			Float64("average", avg).
			Int("samples", len(s.History)).
			Msg("")
	}
}
