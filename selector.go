package fontselect

import (
	"iter"
	"sync"

	"golang.org/x/image/font"
)

// Selector resolves family queries against a shared engine and owns the
// resulting records: the family/font store and the fallback cache. The
// expected shape is one Selector per rendering pipeline, all sharing one
// SharedEngine.
//
// Records live as long as the Selector. Families are created once per
// case-folded name and only accumulate variants; nothing is evicted.
//
// Selector is safe for concurrent use. Create Selectors with NewSelector,
// call Prepare before resolving and Close when done.
type Selector struct {
	shared *SharedEngine

	mu       sync.Mutex
	families map[string]*Family
	order    []*Family
	fallback map[string][]*Family
}

// NewSelector creates an empty Selector over the shared engine. Prepare
// must succeed before queries resolve.
func NewSelector(shared *SharedEngine) *Selector {
	return &Selector{
		shared:   shared,
		families: make(map[string]*Family),
		fallback: make(map[string][]*Family),
	}
}

// Prepare acquires the shared engine, loading it when this is the first
// live reference in the process. Every successful Prepare must be paired
// with one Close.
func (s *Selector) Prepare() error {
	return s.shared.Acquire()
}

// Close releases the engine reference taken by Prepare. The store and
// fallback cache stay valid for the life of the Selector, but queries
// fail with ErrNotPrepared once the engine's last reference is gone.
func (s *Selector) Close() {
	s.shared.Release()
}

// Select returns the best family for the query. All four style
// combinations (regular, bold, italic, bold italic) are tried so the
// family ends up with as complete a variant set as the engine can
// supply; per-combination misses are normal and leave that variant
// absent.
//
// Family identity is fixed by the first combination that yields a usable
// match: later combinations attach their fonts to that same family even
// if the engine reports a different family name for them.
//
// A nil family with a nil error means no combination matched, which is a
// normal outcome, not an error. The error is non-nil only when the
// engine is not prepared.
func (s *Selector) Select(q Query) (*Family, error) {
	var fam *Family

	for i := 0; i < 4; i++ {
		bold := i&1 != 0
		italic := i&2 != 0

		m, ok, err := s.shared.bestMatch(styleRequest(q.Families, bold, italic))
		if err != nil {
			return nil, err
		}
		if !ok || m.Family == "" {
			Logger().Debug("no match for style",
				"families", q.Families, "bold", bold, "italic", italic)
			continue
		}
		if !m.Outline {
			Logger().Debug("skipping non-outline match",
				"family", m.Family, "bold", bold, "italic", italic)
			continue
		}

		if fam == nil {
			s.mu.Lock()
			fam = s.lookupOrCreate(m.Family)
			s.mu.Unlock()
		}

		if m.Path == "" {
			Logger().Warn("match without file path",
				"family", m.Family, "bold", bold, "italic", italic)
			continue
		}
		fam.addFont(m.Path, m.Index, bold, italic)
	}

	return fam, nil
}

// Family resolves a single family name: Select over a one-element
// candidate list.
func (s *Selector) Family(name string) (*Family, error) {
	return s.Select(NewQuery(name))
}

// Families iterates the known families in discovery order, including
// families discovered through fallback queries. The snapshot is taken
// when iteration starts.
func (s *Selector) Families() iter.Seq[*Family] {
	return func(yield func(*Family) bool) {
		s.mu.Lock()
		snapshot := make([]*Family, len(s.order))
		copy(snapshot, s.order)
		s.mu.Unlock()

		for _, fam := range snapshot {
			if !yield(fam) {
				return
			}
		}
	}
}

// lookupOrCreate returns the family record whose case-folded key matches
// name, creating it when the key is new. Caller must hold s.mu.
func (s *Selector) lookupOrCreate(name string) *Family {
	key := FoldName(name)
	if fam, ok := s.families[key]; ok {
		return fam
	}
	fam := &Family{name: key, display: name}
	s.families[key] = fam
	s.order = append(s.order, fam)
	return fam
}

// styleRequest builds the engine request for one (bold, italic)
// combination. Bold asks for extra-bold weight, italic for the italic
// slant, and only outline fonts qualify.
func styleRequest(families []string, bold, italic bool) MatchRequest {
	req := MatchRequest{
		Families:       families,
		Style:          font.StyleNormal,
		Weight:         font.WeightNormal,
		RequireOutline: true,
	}
	if bold {
		req.Weight = font.WeightExtraBold
	}
	if italic {
		req.Style = font.StyleItalic
	}
	return req
}
