// Package rates stores integrated reaction-rate (IRR) and process-rate
// (IPR) time series and gives process groups something to sum.
package rates

import "sort"

// Store supplies named rate time series.
type Store interface {
	// Series returns the time series for a reaction or process
	// name.
	Series(name string) ([]float64, error)

	// Names returns the sorted names the store knows.
	Names() ([]string, error)
}

// NotFound occurs when a store doesn't have the requested series.
type NotFound struct {
	Name string
}

func (e *NotFound) Error() string {
	return `no rate series for "` + e.Name + `"`
}

// MemoryStore is a map-backed Store.
type MemoryStore struct {
	series map[string][]float64
}

// NewMemoryStore copies the given series into a fresh store.
func NewMemoryStore(series map[string][]float64) *MemoryStore {
	acc := make(map[string][]float64, len(series))
	for name, data := range series {
		acc[name] = append([]float64{}, data...)
	}
	return &MemoryStore{series: acc}
}

func (s *MemoryStore) Series(name string) ([]float64, error) {
	data, have := s.series[name]
	if !have {
		return nil, &NotFound{Name: name}
	}
	return append([]float64{}, data...), nil
}

func (s *MemoryStore) Names() ([]string, error) {
	acc := make([]string, 0, len(s.series))
	for name := range s.series {
		acc = append(acc, name)
	}
	sort.Strings(acc)
	return acc, nil
}

// Set adds or replaces a series.
func (s *MemoryStore) Set(name string, data []float64) {
	s.series[name] = append([]float64{}, data...)
}
