// Package catalog implements the reference price catalog: canonical line-item
// descriptions with their unit of measure and unit price. Lookups are
// normalized so formatting differences in vendor estimates still hit the
// right entry; near misses can be scored into suggestions.
package catalog

import (
	"github.com/estimatics/roofline/internal/matcher"
	"github.com/estimatics/roofline/pkg/claims"
)

// Entry is a single reference catalog row.
type Entry struct {
	Description string      `json:"description" yaml:"description"`
	Unit        claims.Unit `json:"unit" yaml:"unit"`
	UnitPrice   float64     `json:"unit_price" yaml:"unit_price"`
}

// Catalog is a read-only reference price catalog. The zero value is an empty
// catalog; construct with New or a loader.
type Catalog struct {
	entries []Entry
	index   map[string]int // normalized description -> entries position
}

// New builds a catalog from entries. Entries without a description are
// dropped; on normalized duplicates the first entry wins.
func New(entries ...Entry) *Catalog {
	c := &Catalog{
		entries: make([]Entry, 0, len(entries)),
		index:   make(map[string]int, len(entries)),
	}
	for _, e := range entries {
		key := matcher.Normalize(e.Description)
		if key == "" {
			continue
		}
		if _, exists := c.index[key]; exists {
			continue
		}
		c.index[key] = len(c.entries)
		c.entries = append(c.entries, e)
	}
	return c
}

// Lookup returns the entry matching the description after normalization.
func (c *Catalog) Lookup(description string) (Entry, bool) {
	if c == nil {
		return Entry{}, false
	}
	i, ok := c.index[matcher.Normalize(description)]
	if !ok {
		return Entry{}, false
	}
	return c.entries[i], true
}

// Entries returns a copy of the catalog rows in load order.
func (c *Catalog) Entries() []Entry {
	if c == nil {
		return nil
	}
	out := make([]Entry, len(c.entries))
	copy(out, c.entries)
	return out
}

// Descriptions returns the catalog descriptions in load order.
func (c *Catalog) Descriptions() []string {
	if c == nil {
		return nil
	}
	out := make([]string, len(c.entries))
	for i, e := range c.entries {
		out[i] = e.Description
	}
	return out
}

// Len returns the number of catalog rows.
func (c *Catalog) Len() int {
	if c == nil {
		return 0
	}
	return len(c.entries)
}

// Match is a scored fuzzy suggestion against the catalog.
type Match struct {
	Entry Entry
	Score float64
}

// Suggest returns catalog entries whose descriptions score at or above the
// similarity threshold against the given description, best first.
func (c *Catalog) Suggest(description string) []Match {
	if c == nil {
		return nil
	}
	suggestions := matcher.Suggest(description, c.Descriptions())
	out := make([]Match, len(suggestions))
	for i, s := range suggestions {
		out[i] = Match{Entry: c.entries[s.Index], Score: s.Score}
	}
	return out
}
