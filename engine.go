package fontselect

import "golang.org/x/image/font"

// Engine matches abstract family/style requests against available font
// resources. It is the external collaborator of this package: fontselect
// caches and deduplicates what an Engine returns, it never inspects font
// files itself.
//
// Load can be expensive (engines may read or rebuild an on-disk index)
// and runs at most once per loaded period. SharedEngine serializes Load
// and Unload against queries, so implementations only need their own
// locking when they are used outside a SharedEngine.
type Engine interface {
	// Load makes the engine ready for queries. An error wrapping
	// ErrNoMemory marks allocation failure; every other error is a
	// generic load failure. After an error the engine must be safe to
	// Load again.
	Load() error

	// Unload releases everything Load acquired.
	Unload()

	// BestMatch returns the engine's single best match for the request,
	// or ok=false when nothing qualifies. Engines try the requested
	// families in order and may substitute their own aliases and
	// defaults.
	BestMatch(req MatchRequest) (m Match, ok bool)

	// RankedMatches returns every plausible match for the families, most
	// relevant first. The list may be empty and may name the same family
	// more than once.
	RankedMatches(families []string) []Match
}

// MatchRequest describes one family/style query.
type MatchRequest struct {
	// Families are candidate family names in preference order, in the
	// caller's casing.
	Families []string

	// Style and Weight select the slant and weight of the wanted face.
	Style  font.Style
	Weight font.Weight

	// RequireOutline restricts matches to scalable (non-bitmap) fonts.
	RequireOutline bool
}

// Match is one font resource proposed by an Engine.
type Match struct {
	// Family is the resolved family name, in the engine's casing.
	Family string

	// Path and Index locate the font: a file and a face index within it.
	// Engines that do not track face indices leave Index at zero.
	Path  string
	Index int

	// Outline reports whether the face is scalable.
	Outline bool
}
