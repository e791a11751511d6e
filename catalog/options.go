package catalog

import "github.com/gogpu/fontselect"

// Option configures Catalog creation.
type Option func(*config)

// config holds configuration for Catalog.
type config struct {
	indexFile  string
	aliases    map[string][]string // folded name -> folded expansions
	defaults   []string            // folded, appended to every request
	maxEntries int
	progress   func(done, total int)
}

// defaultConfig returns the default catalog configuration.
func defaultConfig() config {
	return config{
		aliases: make(map[string][]string),
	}
}

// WithIndexFile sets a JSON index file that Load reads in addition to
// entries registered with Add.
func WithIndexFile(path string) Option {
	return func(c *config) {
		c.indexFile = path
	}
}

// WithAlias maps a family name to the concrete families that should
// serve it, in preference order. Typical aliases are the generic names
// "serif", "sans-serif" and "monospace". Names are matched case
// insensitively.
func WithAlias(name string, families ...string) Option {
	return func(c *config) {
		folded := make([]string, len(families))
		for i, f := range families {
			folded[i] = fontselect.FoldName(f)
		}
		c.aliases[fontselect.FoldName(name)] = folded
	}
}

// WithDefaults sets families appended to every request as a last
// resort, in the given order.
func WithDefaults(families ...string) Option {
	return func(c *config) {
		c.defaults = c.defaults[:0]
		for _, f := range families {
			c.defaults = append(c.defaults, fontselect.FoldName(f))
		}
	}
}

// WithMaxEntries caps the number of entries Load accepts. Zero means
// unlimited. Exceeding the cap fails the load with an error wrapping
// fontselect.ErrNoMemory.
func WithMaxEntries(n int) Option {
	return func(c *config) {
		c.maxEntries = n
	}
}

// WithProgress sets a callback invoked after each entry Load ingests,
// with the number of entries done and the total. The callback runs on
// the loading goroutine and must not call back into the Catalog.
func WithProgress(fn func(done, total int)) Option {
	return func(c *config) {
		c.progress = fn
	}
}
