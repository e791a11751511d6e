// Command fontquery resolves font family queries against a catalog
// index file.
package main

import (
	"flag"
	"fmt"
	"log"
	"log/slog"
	"os"
	"strings"

	"github.com/go-text/typesetting/language"
	"github.com/gogpu/fontselect"
	"github.com/gogpu/fontselect/catalog"
)

func main() {
	var (
		index    = flag.String("index", "fonts.json", "font index file")
		family   = flag.String("family", "", "family names to resolve, comma separated")
		fallback = flag.Bool("fallback", false, "list fallback families instead of resolving one")
		char     = flag.String("char", "", "character the fallback should cover")
		verbose  = flag.Bool("v", false, "enable debug logging")
	)
	flag.Parse()

	if *verbose {
		fontselect.SetLogger(slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{
			Level: slog.LevelDebug,
		})))
	}
	if *family == "" {
		flag.Usage()
		os.Exit(2)
	}

	sel := fontselect.NewSelector(fontselect.NewSharedEngine(
		catalog.New(catalog.WithIndexFile(*index)),
	))
	if err := sel.Prepare(); err != nil {
		log.Fatalf("Failed to load font index: %v", err)
	}
	defer sel.Close()

	query := fontselect.NewQuery(splitFamilies(*family)...)
	var err error
	if *fallback {
		err = runFallback(sel, query, firstRune(*char))
	} else {
		err = runSelect(sel, query)
	}
	if err != nil {
		log.Fatalf("Query failed: %v", err)
	}
}

// runSelect resolves one family and prints its variants.
func runSelect(sel *fontselect.Selector, query fontselect.Query) error {
	fam, err := sel.Select(query)
	if err != nil {
		return err
	}
	if fam == nil {
		fmt.Printf("no family found for %q\n", query.Key)
		return nil
	}

	fmt.Printf("%s (%s)\n", fam.DisplayName(), fam.Name())
	for _, ft := range fam.Fonts() {
		name := styleName(ft.Bold(), ft.Italic())
		if ft.Index() > 0 {
			fmt.Printf("  %-12s %s (face %d)\n", name, ft.Path(), ft.Index())
			continue
		}
		fmt.Printf("  %-12s %s\n", name, ft.Path())
	}
	return nil
}

// runFallback prints the ranked fallback families for the query.
func runFallback(sel *fontselect.Selector, query fontselect.Query, r rune) error {
	fams, err := sel.Fallbacks(query, r)
	if err != nil {
		return err
	}

	if r != 0 {
		fmt.Printf("fallbacks for %q (script %v):\n", query.Key, language.LookupScript(r))
	} else {
		fmt.Printf("fallbacks for %q:\n", query.Key)
	}
	if len(fams) == 0 {
		fmt.Println("  none")
		return nil
	}
	for i, fam := range fams {
		fmt.Printf("  %2d. %s\n", i+1, fam.DisplayName())
	}
	return nil
}

// splitFamilies turns a comma separated list into trimmed names.
func splitFamilies(s string) []string {
	var out []string
	for _, part := range strings.Split(s, ",") {
		if name := strings.TrimSpace(part); name != "" {
			out = append(out, name)
		}
	}
	return out
}

// firstRune returns the first rune of s, or zero for an empty string.
func firstRune(s string) rune {
	for _, r := range s {
		return r
	}
	return 0
}

// styleName names a (bold, italic) combination for display.
func styleName(bold, italic bool) string {
	switch {
	case bold && italic:
		return "bold italic"
	case bold:
		return "bold"
	case italic:
		return "italic"
	default:
		return "regular"
	}
}
