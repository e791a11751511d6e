package fontselect

import "sync"

// Family is a named group of style variants discovered through an Engine.
// At most one Family exists per case-folded name within a Selector, so
// the rendering layer can hold a *Family across many glyph lookups and
// compare families by pointer identity.
//
// A Family carries zero to four Font variants, one per (bold, italic)
// combination. A missing variant means no matching font was found for
// that style, which is a normal outcome.
//
// Family is safe for concurrent use. Variants are only ever appended,
// never replaced or removed.
type Family struct {
	name    string // case-folded identity key
	display string // as first returned by the engine

	mu    sync.RWMutex
	fonts []*Font
}

// Name returns the case-folded identity key of the family.
func (f *Family) Name() string { return f.name }

// DisplayName returns the family name in the casing the engine first
// reported it.
func (f *Family) DisplayName() string { return f.display }

// Fonts returns the discovered style variants in discovery order.
func (f *Family) Fonts() []*Font {
	f.mu.RLock()
	defer f.mu.RUnlock()
	out := make([]*Font, len(f.fonts))
	copy(out, f.fonts)
	return out
}

// Font returns the variant for the given style flags, or nil when that
// combination has not been matched.
func (f *Family) Font(bold, italic bool) *Font {
	f.mu.RLock()
	defer f.mu.RUnlock()
	return f.lookup(bold, italic)
}

// lookup returns the variant for (bold, italic). Caller must hold f.mu.
func (f *Family) lookup(bold, italic bool) *Font {
	for _, ft := range f.fonts {
		if ft.bold == bold && ft.italic == italic {
			return ft
		}
	}
	return nil
}

// addFont attaches a variant for (bold, italic). When the combination is
// already present the existing variant is kept, so a family never holds
// two fonts for one style pair.
func (f *Family) addFont(path string, index int, bold, italic bool) *Font {
	f.mu.Lock()
	defer f.mu.Unlock()
	if existing := f.lookup(bold, italic); existing != nil {
		return existing
	}
	ft := &Font{path: path, index: index, bold: bold, italic: italic}
	f.fonts = append(f.fonts, ft)
	return ft
}

// Font is one concrete font resource: a file plus a face index, serving
// one (bold, italic) combination of its family. Font is immutable after
// creation and owned by its family.
type Font struct {
	path   string
	index  int
	bold   bool
	italic bool
}

// Path returns the font file path.
func (f *Font) Path() string { return f.path }

// Index returns the face index within the file.
func (f *Font) Index() int { return f.index }

// Bold reports whether this variant serves bold requests.
func (f *Font) Bold() bool { return f.bold }

// Italic reports whether this variant serves italic requests.
func (f *Font) Italic() bool { return f.italic }
