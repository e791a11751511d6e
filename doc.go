// Package fontselect resolves font family requests into concrete font
// resources and ranks fallback families for characters the current font
// cannot render.
//
// # Overview
//
// fontselect sits beneath a text-rendering pipeline. Given a request like
// "Arial, Helvetica" it finds an actual font file and face index per style
// variant; given a codepoint the current font cannot draw, it proposes
// alternative families in relevance order. The matching itself is done by
// an Engine (the catalog subpackage ships one); this package adds the
// caching and deduplication layer on top: a process-lifetime store of
// uniquely-identified Family and Font records with stable identity, so
// the rendering layer can hold references across many glyph lookups.
//
// # Quick Start
//
//	import (
//	    "github.com/gogpu/fontselect"
//	    "github.com/gogpu/fontselect/catalog"
//	)
//
//	eng := catalog.New(catalog.WithIndexFile("fonts.json"))
//	sel := fontselect.NewSelector(fontselect.NewSharedEngine(eng))
//	if err := sel.Prepare(); err != nil {
//	    log.Fatal(err)
//	}
//	defer sel.Close()
//
//	// Resolve a family with all its style variants.
//	fam, err := sel.Family("Arial")
//
//	// Rank fallback families for a character.
//	fams, err := sel.Fallbacks(fontselect.NewQuery("Arial"), '€')
//
// # Identity and Caching
//
// Families are keyed by the case-folded resolved name: resolving "ARIAL"
// and "Arial" yields the same *Family. Fallback results are cached under
// the query key (the original candidate list), which is deliberately
// distinct from family identity. Neither cache is ever invalidated; both
// live as long as the Selector.
//
// # Engines
//
// Anything implementing Engine can serve as the matcher. SharedEngine
// reference-counts the engine's lifetime so several Selectors (one per
// output pipeline, typically) share one loaded instance.
//
// # Scope
//
// fontselect never opens font files. Matched fonts are returned as a file
// path plus face index; parsing, shaping and rasterization belong to the
// rendering layer above.
package fontselect
