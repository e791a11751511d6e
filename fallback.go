package fontselect

import "github.com/go-text/typesetting/language"

// Fallbacks returns families plausibly able to render r, most relevant
// first. Results are cached under the query key: the second call with
// the same key returns the identical slice without querying the engine
// again. Empty results are returned but not cached, so a later call may
// retry once the engine has more fonts to offer.
//
// The codepoint does not filter the list. The engine's generic ranking
// is returned as-is and coverage checking is left to the caller, which
// tries each family against the actual glyph.
//
// The returned slice is shared with the cache and with every other
// caller of the same key; callers must not modify it.
func (s *Selector) Fallbacks(q Query, r rune) ([]*Family, error) {
	key := q.cacheKey()

	s.mu.Lock()
	cached, ok := s.fallback[key]
	s.mu.Unlock()
	if ok {
		return cached, nil
	}

	Logger().Debug("resolving fallbacks",
		"key", key, "codepoint", string(r), "script", language.LookupScript(r))

	matches, err := s.shared.rankedMatches(q.Families)
	if err != nil {
		return nil, err
	}

	var result []*Family
	last := ""

	s.mu.Lock()
	defer s.mu.Unlock()

	// Another goroutine may have filled the entry while the engine ran;
	// converge on its slice so all callers share one identity.
	if cached, ok := s.fallback[key]; ok {
		return cached, nil
	}

	for _, m := range matches {
		fk := FoldName(m.Family)
		// Only the immediately preceding accepted name is compared, so a
		// family can reappear later in the list when the engine's sort
		// does not keep same-named entries together.
		if fk == "" || fk == last {
			continue
		}
		result = append(result, s.lookupOrCreate(m.Family))
		last = fk
	}

	if len(result) > 0 {
		s.fallback[key] = result
	}
	return result, nil
}
