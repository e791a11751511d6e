package fontselect

import (
	"sync"
	"time"
)

// SharedEngine wraps an Engine with reference-counted lifetime so that
// independent consumers (typically one Selector per output pipeline) can
// share one loaded engine. The first Acquire loads the engine, the last
// Release unloads it.
//
// SharedEngine is safe for concurrent use. Lifetime transitions hold the
// write lock for the full duration of Load and Unload, and every query
// holds the read lock, so queries never observe a half-loaded engine and
// never race an unload.
type SharedEngine struct {
	mu     sync.RWMutex
	engine Engine
	refs   int
}

// NewSharedEngine wraps engine. The engine must not be loaded or unloaded
// directly while the SharedEngine owns its lifetime.
func NewSharedEngine(engine Engine) *SharedEngine {
	return &SharedEngine{engine: engine}
}

// Acquire increments the reference count, loading the engine when the
// count was zero. Loading is synchronous and can take a while for large
// indices. On load failure the count stays at zero, so a later Acquire
// retries the load. Every successful Acquire must be paired with exactly
// one Release.
func (s *SharedEngine) Acquire() error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.refs > 0 {
		s.refs++
		return nil
	}

	Logger().Debug("building font database")
	start := time.Now()
	if err := s.engine.Load(); err != nil {
		return err
	}
	Logger().Info("font database ready", "took", time.Since(start))

	s.refs = 1
	return nil
}

// Release decrements the reference count, unloading the engine when it
// reaches zero. Release panics when called without a matching successful
// Acquire: an unbalanced Release is a programming error, not a runtime
// condition.
func (s *SharedEngine) Release() {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.refs == 0 {
		panic("fontselect: unbalanced SharedEngine.Release")
	}
	s.refs--
	if s.refs == 0 {
		s.engine.Unload()
	}
}

// Loaded reports whether the engine is currently loaded.
func (s *SharedEngine) Loaded() bool {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.refs > 0
}

// bestMatch queries the engine under the read lock.
func (s *SharedEngine) bestMatch(req MatchRequest) (Match, bool, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	if s.refs == 0 {
		return Match{}, false, ErrNotPrepared
	}
	m, ok := s.engine.BestMatch(req)
	return m, ok, nil
}

// rankedMatches queries the engine under the read lock.
func (s *SharedEngine) rankedMatches(families []string) ([]Match, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	if s.refs == 0 {
		return nil, ErrNotPrepared
	}
	return s.engine.RankedMatches(families), nil
}
