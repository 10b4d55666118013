package querycache

// Result is the read-only view a consumer gets of one entry.
// Loading is true only while no data exists yet and a fetch is outstanding;
// Err is the last typed failure and clears on the next success
type Result[T any] struct {
	Data    *T
	Loading bool
	Err     error
}

// Snapshot reports the current state of key without triggering any fetch
func Snapshot[T any](s *Store, key string) Result[T] {
	s.mu.Lock()
	defer s.mu.Unlock()
	e, ok := s.entries.Peek(key)
	if !ok {
		return Result[T]{}
	}
	r := Result[T]{Err: e.err}
	if e.hasData {
		if v, ok := e.val.(T); ok {
			r.Data = &v
		}
	} else {
		r.Loading = e.fetching
	}
	return r
}

// Stats are point-in-time cache counters for the meta endpoints
type Stats struct {
	Entries   int    `json:"entries"`
	Fresh     int    `json:"fresh"`
	Stale     int    `json:"stale"`
	Hits      uint64 `json:"hits"`
	StaleHits uint64 `json:"stale_hits"`
	Misses    uint64 `json:"misses"`
	Seeds     uint64 `json:"seeds"`
	Evictions uint64 `json:"evictions"`
}

// Stats returns current counters
func (s *Store) Stats() Stats {
	s.mu.Lock()
	defer s.mu.Unlock()
	st := Stats{
		Entries:   s.entries.Len(),
		Hits:      s.hits,
		StaleHits: s.staleHits,
		Misses:    s.misses,
		Seeds:     s.seeds,
		Evictions: s.evictions,
	}
	now := s.now()
	for _, key := range s.entries.Keys() {
		if e, ok := s.entries.Peek(key); ok && e.hasData {
			if now.Before(e.staleAt) {
				st.Fresh++
			} else {
				st.Stale++
			}
		}
	}
	return st
}
