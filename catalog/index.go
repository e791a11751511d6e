package catalog

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/gogpu/fontselect"
	"golang.org/x/image/font"
)

// indexVersion is the on-disk schema version. Readers reject files
// written with any other version instead of guessing.
const indexVersion = 1

// indexFile is the JSON document stored on disk.
type indexFile struct {
	Version int          `json:"version"`
	Fonts   []indexEntry `json:"fonts"`
}

// indexEntry is the serialized form of an Entry. Weight uses the CSS
// numeric scale (400 is regular, 700 is bold) and Style is a slant name,
// so index files stay readable and editable by hand.
type indexEntry struct {
	Family  string `json:"family"`
	Path    string `json:"path"`
	Index   int    `json:"index,omitempty"`
	Style   string `json:"style,omitempty"`
	Weight  int    `json:"weight,omitempty"`
	Outline bool   `json:"outline"`
}

// readIndex loads entries from a JSON index file. Entries with an
// unknown slant name are skipped with a warning; structural problems
// fail the whole read.
func readIndex(path string) ([]Entry, error) {
	// #nosec G304 -- Index file path is provided by the user
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("catalog: failed to read font index: %w", err)
	}

	var f indexFile
	if err := json.Unmarshal(data, &f); err != nil {
		return nil, fmt.Errorf("catalog: failed to parse font index %s: %w", path, err)
	}
	if f.Version != indexVersion {
		return nil, fmt.Errorf("catalog: font index %s has version %d, want %d",
			path, f.Version, indexVersion)
	}

	entries := make([]Entry, 0, len(f.Fonts))
	for _, fe := range f.Fonts {
		style, err := parseStyle(fe.Style)
		if err != nil {
			fontselect.Logger().Warn("skipping font index entry",
				"family", fe.Family, "path", fe.Path, "err", err)
			continue
		}
		entries = append(entries, Entry{
			Family:  fe.Family,
			Path:    fe.Path,
			Index:   fe.Index,
			Style:   style,
			Weight:  weightFromCSS(fe.Weight),
			Outline: fe.Outline,
		})
	}
	return entries, nil
}

// SaveIndex writes the loaded entries to path, so a later process can
// configure the same catalog with WithIndexFile instead of repeating
// the registration work. The catalog must be loaded.
func (c *Catalog) SaveIndex(path string) error {
	c.mu.RLock()
	defer c.mu.RUnlock()
	if !c.loaded {
		return fmt.Errorf("catalog: save index: %w", fontselect.ErrNotPrepared)
	}

	f := indexFile{
		Version: indexVersion,
		Fonts:   make([]indexEntry, 0, len(c.entries)),
	}
	for _, e := range c.entries {
		f.Fonts = append(f.Fonts, indexEntry{
			Family:  e.Family,
			Path:    e.Path,
			Index:   e.Index,
			Style:   formatStyle(e.Style),
			Weight:  cssWeight(e.Weight),
			Outline: e.Outline,
		})
	}

	data, err := json.MarshalIndent(f, "", "  ")
	if err != nil {
		return fmt.Errorf("catalog: failed to encode font index: %w", err)
	}
	if err := os.WriteFile(path, data, 0o600); err != nil {
		return fmt.Errorf("catalog: failed to write font index: %w", err)
	}
	return nil
}

// parseStyle maps a slant name onto the x/image style. An empty string
// means upright.
func parseStyle(s string) (font.Style, error) {
	switch s {
	case "", "normal":
		return font.StyleNormal, nil
	case "italic":
		return font.StyleItalic, nil
	case "oblique":
		return font.StyleOblique, nil
	}
	return 0, fmt.Errorf("unknown style %q", s)
}

// formatStyle is the inverse of parseStyle.
func formatStyle(s font.Style) string {
	switch s {
	case font.StyleItalic:
		return "italic"
	case font.StyleOblique:
		return "oblique"
	}
	return "normal"
}

// cssWeight converts an x/image weight to the CSS numeric scale,
// clamped to the valid 100 to 900 range.
func cssWeight(w font.Weight) int {
	css := 400 + 100*int(w)
	if css < 100 {
		return 100
	}
	if css > 900 {
		return 900
	}
	return css
}

// weightFromCSS converts a CSS numeric weight back, rounding to the
// nearest step. Zero, the value of an absent field, means regular.
func weightFromCSS(css int) font.Weight {
	if css == 0 {
		return font.WeightNormal
	}
	w := font.Weight((css+50)/100 - 4)
	if w < font.WeightThin {
		return font.WeightThin
	}
	if w > font.WeightBlack {
		return font.WeightBlack
	}
	return w
}
