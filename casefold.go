package fontselect

import (
	"github.com/gogpu/fontselect/internal/namecache"
	"golang.org/x/text/cases"
)

// foldCache memoizes folded names. The same names recur on every
// resolution (requests, engine results, fallback rankings), and each
// uncached fold builds a fresh caser because casers are stateful and
// must not be shared between goroutines.
var foldCache = namecache.New(0, func(name string) string {
	return cases.Fold().String(name)
})

// FoldName maps a family name to its case-insensitive identity key.
// The family store keys records by this value, and engines should apply
// the same rule so their notion of "same family" agrees with the store's.
//
// Unicode case folding, not plain lowercasing: engine results are free
// text, and names like "Groß" and "GROSS" must fold to the same key.
func FoldName(name string) string {
	return foldCache.Get(name)
}
