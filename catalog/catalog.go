package catalog

import (
	"fmt"
	"slices"
	"sync"

	"github.com/gogpu/fontselect"
	"golang.org/x/image/font"
)

// Entry describes one font resource known to the catalog: a face inside
// a file, serving one family at one slant and weight.
type Entry struct {
	// Family is the family name in display casing.
	Family string

	// Path and Index locate the face: a font file and the face index
	// within it (zero for single-face files).
	Path  string
	Index int

	// Style and Weight describe the face on the x/image scales.
	Style  font.Style
	Weight font.Weight

	// Outline reports whether the face is scalable rather than bitmap.
	Outline bool
}

// Catalog is an in-memory font database. The zero value is not usable;
// call New.
type Catalog struct {
	cfg config

	mu       sync.RWMutex
	loaded   bool
	pending  []Entry            // registered via Add, survives Unload
	entries  []Entry            // usable entries of the current load
	byFamily map[string][]Entry // folded family name -> entries
	families []string           // folded names in registration order
}

// New creates an empty Catalog.
func New(opts ...Option) *Catalog {
	cfg := defaultConfig()
	for _, opt := range opts {
		opt(&cfg)
	}
	return &Catalog{cfg: cfg}
}

// Add registers entries. Entries added before Load become available
// when the catalog loads; entries added to a loaded catalog become
// available immediately. Registrations survive Unload, so a reloaded
// catalog sees them again.
func (c *Catalog) Add(entries ...Entry) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.pending = append(c.pending, entries...)
	if c.loaded {
		for _, e := range entries {
			c.ingest(e)
		}
	}
}

// Load builds the lookup tables from the index file (when configured)
// and the registered entries. Load implements fontselect.Engine.
func (c *Catalog) Load() error {
	c.mu.Lock()
	defer c.mu.Unlock()

	var fromIndex []Entry
	if c.cfg.indexFile != "" {
		var err error
		fromIndex, err = readIndex(c.cfg.indexFile)
		if err != nil {
			return err
		}
	}

	total := len(fromIndex) + len(c.pending)
	if c.cfg.maxEntries > 0 && total > c.cfg.maxEntries {
		return fmt.Errorf("catalog: %d fonts exceed the configured limit of %d: %w",
			total, c.cfg.maxEntries, fontselect.ErrNoMemory)
	}

	c.entries = make([]Entry, 0, total)
	c.byFamily = make(map[string][]Entry, total)
	c.families = nil

	done := 0
	ingest := func(e Entry) {
		c.ingest(e)
		done++
		if c.cfg.progress != nil {
			c.cfg.progress(done, total)
		}
	}
	for _, e := range fromIndex {
		ingest(e)
	}
	for _, e := range c.pending {
		ingest(e)
	}

	c.loaded = true
	return nil
}

// Unload drops the lookup tables. Entries registered with Add stay
// registered. Unload implements fontselect.Engine.
func (c *Catalog) Unload() {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.loaded = false
	c.entries = nil
	c.byFamily = nil
	c.families = nil
}

// Len reports the number of usable entries currently loaded.
func (c *Catalog) Len() int {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return len(c.entries)
}

// ingest files one entry into the lookup tables. Caller must hold c.mu.
func (c *Catalog) ingest(e Entry) {
	if e.Family == "" || e.Path == "" {
		fontselect.Logger().Warn("skipping incomplete catalog entry",
			"family", e.Family, "path", e.Path)
		return
	}
	key := fontselect.FoldName(e.Family)
	if _, ok := c.byFamily[key]; !ok {
		c.families = append(c.families, key)
	}
	c.byFamily[key] = append(c.byFamily[key], e)
	c.entries = append(c.entries, e)
}

// BestMatch returns the closest entry for the request, trying the
// requested families in order and stopping at the first family with any
// qualifying entry. BestMatch implements fontselect.Engine.
func (c *Catalog) BestMatch(req fontselect.MatchRequest) (fontselect.Match, bool) {
	c.mu.RLock()
	defer c.mu.RUnlock()
	if !c.loaded {
		return fontselect.Match{}, false
	}

	for _, key := range c.substitute(req.Families) {
		e, ok := bestIn(c.byFamily[key], req)
		if !ok {
			continue
		}
		return matchFor(e), true
	}
	return fontselect.Match{}, false
}

// bestIn picks the entry closest to the requested style, or ok=false
// when no entry qualifies. Ties keep the earlier registration.
func bestIn(entries []Entry, req fontselect.MatchRequest) (Entry, bool) {
	var best Entry
	bestScore := -1
	for _, e := range entries {
		if req.RequireOutline && !e.Outline {
			continue
		}
		if s := styleScore(req.Style, req.Weight, e); bestScore < 0 || s < bestScore {
			best, bestScore = e, s
		}
	}
	return best, bestScore >= 0
}

// RankedMatches orders the whole catalog for the request: entries of
// the requested families first, then every remaining family in
// registration order. Entries of one family stay adjacent, scalable
// faces before bitmap ones, closer to regular first. RankedMatches
// implements fontselect.Engine.
func (c *Catalog) RankedMatches(families []string) []fontselect.Match {
	c.mu.RLock()
	defer c.mu.RUnlock()
	if !c.loaded {
		return nil
	}

	order := c.substitute(families)
	seen := make(map[string]bool, len(order)+len(c.families))
	for _, key := range order {
		seen[key] = true
	}
	for _, key := range c.families {
		if !seen[key] {
			seen[key] = true
			order = append(order, key)
		}
	}

	var out []fontselect.Match
	for _, key := range order {
		entries := c.byFamily[key]
		if len(entries) == 0 {
			continue
		}
		ranked := slices.Clone(entries)
		slices.SortStableFunc(ranked, func(a, b Entry) int {
			if a.Outline != b.Outline {
				if a.Outline {
					return -1
				}
				return 1
			}
			return normality(a) - normality(b)
		})
		for _, e := range ranked {
			out = append(out, matchFor(e))
		}
	}
	return out
}

// substitute expands the requested names through the alias table and
// appends the configured defaults. Results are case folded and the
// first occurrence of a name wins.
func (c *Catalog) substitute(names []string) []string {
	out := make([]string, 0, len(names)+len(c.cfg.defaults))
	seen := make(map[string]bool, cap(out))
	add := func(name string) {
		if name == "" || seen[name] {
			return
		}
		seen[name] = true
		out = append(out, name)
	}
	for _, name := range names {
		key := fontselect.FoldName(name)
		add(key)
		for _, alias := range c.cfg.aliases[key] {
			add(alias)
		}
	}
	for _, def := range c.cfg.defaults {
		add(def)
	}
	return out
}

// matchFor converts an entry to the Engine wire type.
func matchFor(e Entry) fontselect.Match {
	return fontselect.Match{
		Family:  e.Family,
		Path:    e.Path,
		Index:   e.Index,
		Outline: e.Outline,
	}
}
