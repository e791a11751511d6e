// Package catalog provides an in-memory font database that implements
// the fontselect.Engine interface.
//
// A Catalog is populated from explicit Add calls, from a JSON index
// file, or both. It never opens or parses font files: every Entry
// carries the family name, style flags and file location the caller
// already knows, typically produced once by platform font tooling and
// persisted with SaveIndex so later processes skip the discovery work.
//
// # Matching
//
// BestMatch expands the requested family names through the configured
// alias table (so generic names like "sans-serif" reach concrete
// families), appends the configured default families as a last resort,
// and picks the entry whose slant and weight sit closest to the
// request. Slant agreement outranks weight distance.
//
// RankedMatches orders the whole catalog for fallback selection: the
// requested families first, then every remaining family in registration
// order, with each family's entries kept adjacent.
//
// # Index files
//
// The index is a small JSON document. Weights use the CSS numeric scale
// (400 is regular, 700 is bold) and slants are named "normal", "italic"
// or "oblique", so an index stays readable and editable by hand:
//
//	{
//	  "version": 1,
//	  "fonts": [
//	    {"family": "DejaVu Sans", "path": "/usr/share/fonts/DejaVuSans.ttf", "outline": true},
//	    {"family": "DejaVu Sans", "path": "/usr/share/fonts/DejaVuSans-Bold.ttf", "weight": 700, "outline": true}
//	  ]
//	}
//
// Catalog is safe for concurrent use.
package catalog
