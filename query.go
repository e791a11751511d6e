package fontselect

import "strings"

// Query is one family request: candidate family names in preference
// order, plus the key under which fallback results are cached.
//
// Family identity inside the store is the case-folded resolved name. The
// Key is deliberately different: it is the caller's original request, so
// requests naming different candidate sets stay distinct fallback cache
// entries even when they resolve to the same family.
type Query struct {
	// Families are candidate names in the caller's casing.
	Families []string

	// Key identifies this request in the fallback cache. NewQuery fills
	// it with the comma-joined family list; a Query built by hand may
	// leave it empty to get the same derivation.
	Key string
}

// NewQuery builds a Query over the given candidate families.
func NewQuery(families ...string) Query {
	return Query{
		Families: families,
		Key:      strings.Join(families, ","),
	}
}

// cacheKey returns the fallback cache key for q.
func (q Query) cacheKey() string {
	if q.Key != "" {
		return q.Key
	}
	return strings.Join(q.Families, ",")
}
