package diagnostics

import (
	"sort"
	"sync"
)

// Series is a point-in-time copy of one registered diagnostic.
type Series struct {
	ID            ID
	Name          string
	HistoryLength int
	// History holds the retained samples, oldest first.
	History []float64
}

// Value returns the most recent sample.
func (s Series) Value() (float64, bool) {
	if len(s.History) == 0 {
		return 0, false
	}
	return s.History[len(s.History)-1], true
}

// Average returns the mean of the retained samples.
func (s Series) Average() (float64, bool) {
	if len(s.History) == 0 {
		return 0, false
	}
	var sum float64
	for _, v := range s.History {
		sum += v
	}
	return sum / float64(len(s.History)), true
}

type diagnostic struct {
	name   string
	values []float64 // ring, len == capacity
	start  int
	n      int
}

func (d *diagnostic) push(v float64) {
	capacity := len(d.values)
	if capacity == 0 {
		return
	}
	if d.n < capacity {
		d.values[(d.start+d.n)%capacity] = v
		d.n++
		return
	}
	d.values[d.start] = v
	d.start = (d.start + 1) % capacity
}

func (d *diagnostic) history() []float64 {
	out := make([]float64, d.n)
	for i := 0; i < d.n; i++ {
		out[i] = d.values[(d.start+i)%len(d.values)]
	}
	return out
}

// Store is an in-memory Sink. Each series keeps a bounded rolling history;
// once full, the oldest sample is evicted.
//
// Store is safe for concurrent use.
type Store struct {
	mu     sync.RWMutex
	series map[ID]*diagnostic
}

var _ Sink = (*Store)(nil)

func NewStore() *Store {
	return &Store{series: make(map[ID]*diagnostic)}
}

// Register adds a series. Registering an id that already exists keeps the
// first registration and its history.
func (s *Store) Register(id ID, name string, historyLength int) {
	if historyLength < 0 {
		historyLength = 0
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	if _, ok := s.series[id]; ok {
		return
	}
	s.series[id] = &diagnostic{
		name:   name,
		values: make([]float64, historyLength),
	}
}

// Push appends a sample to the series registered under id.
func (s *Store) Push(id ID, value float64) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if d, ok := s.series[id]; ok {
		d.push(value)
	}
}

// Get returns a copy of the series registered under id.
func (s *Store) Get(id ID) (Series, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	d, ok := s.series[id]
	if !ok {
		return Series{}, false
	}
	return d.snapshot(id), true
}

// Lookup returns a copy of the series with the given name.
func (s *Store) Lookup(name string) (Series, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	for id, d := range s.series {
		if d.name == name {
			return d.snapshot(id), true
		}
	}
	return Series{}, false
}

// All returns copies of every series ordered by name.
func (s *Store) All() []Series {
	s.mu.RLock()
	out := make([]Series, 0, len(s.series))
	for id, d := range s.series {
		out = append(out, d.snapshot(id))
	}
	s.mu.RUnlock()

	sort.Slice(out, func(i, j int) bool { return out[i].Name < out[j].Name })
	return out
}

// Len returns the number of registered series.
func (s *Store) Len() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return len(s.series)
}

func (d *diagnostic) snapshot(id ID) Series {
	return Series{
		ID:            id,
		Name:          d.name,
		HistoryLength: len(d.values),
		History:       d.history(),
	}
}
