package template

import "sync"

// SequenceStore manages auto-incrementing named counters for
// {{sequence("name")}} expressions. Counters survive for the lifetime of
// the store, so fixtures resolved in one run share a numbering space.
type SequenceStore struct {
	mu        sync.Mutex
	sequences map[string]int64
}

// NewSequenceStore creates an empty sequence store.
func NewSequenceStore() *SequenceStore {
	return &SequenceStore{sequences: make(map[string]int64)}
}

// Next returns the current value of a sequence and increments it. A
// sequence seen for the first time starts at start.
func (s *SequenceStore) Next(name string, start int64) int64 {
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, exists := s.sequences[name]; !exists {
		s.sequences[name] = start
	}
	val := s.sequences[name]
	s.sequences[name]++
	return val
}

// Reset removes a sequence so it restarts on the next Next call.
func (s *SequenceStore) Reset(name string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	delete(s.sequences, name)
}
