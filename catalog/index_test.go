package catalog

import (
	"errors"
	"io/fs"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/gogpu/fontselect"
	"github.com/google/go-cmp/cmp"
	"golang.org/x/image/font"
)

func TestIndexRoundTrip(t *testing.T) {
	src := loaded(t, nil,
		ent("DejaVu Sans", "/f/dejavu.ttf"),
		Entry{Family: "DejaVu Sans", Path: "/f/dejavu-bold.ttf", Weight: font.WeightBold, Outline: true},
		Entry{Family: "DejaVu Serif", Path: "/f/serif-italic.ttf", Style: font.StyleItalic, Index: 1, Outline: true},
		Entry{Family: "Fixed", Path: "/f/fixed.pcf"},
	)

	path := filepath.Join(t.TempDir(), "fonts.json")
	if err := src.SaveIndex(path); err != nil {
		t.Fatalf("SaveIndex() = %v", err)
	}

	dst := New(WithIndexFile(path))
	if err := dst.Load(); err != nil {
		t.Fatalf("Load() = %v", err)
	}

	if got, want := dst.Len(), src.Len(); got != want {
		t.Fatalf("Len() = %d, want %d", got, want)
	}
	want := src.RankedMatches(nil)
	got := dst.RankedMatches(nil)
	if diff := cmp.Diff(want, got); diff != "" {
		t.Errorf("round trip failed (-want +got):\n%s", diff)
	}

	// Style and weight survive, not just the ranking.
	m, ok := dst.BestMatch(fontselect.MatchRequest{
		Families: []string{"DejaVu Serif"},
		Style:    font.StyleItalic,
	})
	if !ok || m.Path != "/f/serif-italic.ttf" || m.Index != 1 {
		t.Errorf("italic request = %+v, want serif-italic.ttf face 1", m)
	}
}

func TestIndexVersionMismatch(t *testing.T) {
	path := filepath.Join(t.TempDir(), "fonts.json")
	data := `{"version": 99, "fonts": []}`
	if err := os.WriteFile(path, []byte(data), 0o600); err != nil {
		t.Fatal(err)
	}

	err := New(WithIndexFile(path)).Load()
	if err == nil {
		t.Fatal("Load() accepted an index with an unknown version")
	}
	if !strings.Contains(err.Error(), "version") {
		t.Errorf("Load() = %v, want a version error", err)
	}
}

func TestIndexMissingFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "absent.json")
	err := New(WithIndexFile(path)).Load()
	if !errors.Is(err, fs.ErrNotExist) {
		t.Errorf("Load() = %v, want fs.ErrNotExist", err)
	}
}

func TestIndexBadJSON(t *testing.T) {
	path := filepath.Join(t.TempDir(), "fonts.json")
	if err := os.WriteFile(path, []byte("{"), 0o600); err != nil {
		t.Fatal(err)
	}

	if err := New(WithIndexFile(path)).Load(); err == nil {
		t.Error("Load() accepted malformed JSON")
	}
}

// TestIndexUnknownStyleSkipped tests that one bad slant name loses that
// entry, not the whole file.
func TestIndexUnknownStyleSkipped(t *testing.T) {
	path := filepath.Join(t.TempDir(), "fonts.json")
	data := `{
  "version": 1,
  "fonts": [
    {"family": "Wavy", "path": "/f/wavy.ttf", "style": "wavy", "outline": true},
    {"family": "DejaVu Sans", "path": "/f/dejavu.ttf", "outline": true}
  ]
}`
	if err := os.WriteFile(path, []byte(data), 0o600); err != nil {
		t.Fatal(err)
	}

	c := New(WithIndexFile(path))
	if err := c.Load(); err != nil {
		t.Fatalf("Load() = %v", err)
	}
	if got := c.Len(); got != 1 {
		t.Errorf("Len() = %d, want 1", got)
	}
}

func TestSaveIndexNotLoaded(t *testing.T) {
	c := New()
	path := filepath.Join(t.TempDir(), "fonts.json")
	if err := c.SaveIndex(path); !errors.Is(err, fontselect.ErrNotPrepared) {
		t.Errorf("SaveIndex() = %v, want ErrNotPrepared", err)
	}
}

func TestWeightConversion(t *testing.T) {
	tests := []struct {
		w   font.Weight
		css int
	}{
		{font.WeightThin, 100},
		{font.WeightLight, 300},
		{font.WeightNormal, 400},
		{font.WeightBold, 700},
		{font.WeightBlack, 900},
	}
	for _, tt := range tests {
		if got := cssWeight(tt.w); got != tt.css {
			t.Errorf("cssWeight(%v) = %d, want %d", tt.w, got, tt.css)
		}
		if got := weightFromCSS(tt.css); got != tt.w {
			t.Errorf("weightFromCSS(%d) = %v, want %v", tt.css, got, tt.w)
		}
	}

	// Absent weights mean regular, out-of-range weights clamp.
	if got := weightFromCSS(0); got != font.WeightNormal {
		t.Errorf("weightFromCSS(0) = %v, want WeightNormal", got)
	}
	if got := weightFromCSS(1000); got != font.WeightBlack {
		t.Errorf("weightFromCSS(1000) = %v, want WeightBlack", got)
	}
	if got := weightFromCSS(10); got != font.WeightThin {
		t.Errorf("weightFromCSS(10) = %v, want WeightThin", got)
	}
	if got := cssWeight(font.Weight(12)); got != 900 {
		t.Errorf("cssWeight(12) = %d, want 900", got)
	}
}

func TestStyleNames(t *testing.T) {
	for _, s := range []font.Style{font.StyleNormal, font.StyleItalic, font.StyleOblique} {
		parsed, err := parseStyle(formatStyle(s))
		if err != nil {
			t.Errorf("parseStyle(formatStyle(%v)) = %v", s, err)
			continue
		}
		if parsed != s {
			t.Errorf("parseStyle(formatStyle(%v)) = %v", s, parsed)
		}
	}

	if s, err := parseStyle(""); err != nil || s != font.StyleNormal {
		t.Errorf("parseStyle(%q) = %v, %v, want StyleNormal", "", s, err)
	}
	if _, err := parseStyle("wavy"); err == nil {
		t.Error("parseStyle accepted an unknown slant name")
	}
}
