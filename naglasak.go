// Package naglasak synthesizes accented inflectional paradigms of
// Serbo-Croatian nouns and adjectives from a headword and a compact
// grammar descriptor, and serves them from a read-only lexicon.
package naglasak

import (
	"fmt"
	"sync"

	"github.com/gobwas/glob"
)

// Dictionary holds a lexicon and provides the public API.
type Dictionary struct {
	store Store

	// index maps plain forms to analyses; built on first Analyze.
	indexOnce sync.Once
	index     map[string][]Analysis
	skipped   int
}

// NewDictionary wraps a loaded store.
func NewDictionary(s Store) *Dictionary {
	return &Dictionary{store: s}
}

// Declension is the paradigm of one lexicon entry.
type Declension struct {
	Entry Entry          `json:"entry"`
	Forms []LabeledForms `json:"forms"`
}

// Lookup returns every entry of key.
func (d *Dictionary) Lookup(key string) ([]Entry, error) {
	return d.store.Get(key)
}

// Keys returns every headword in sorted order.
func (d *Dictionary) Keys() []string {
	return d.store.Keys()
}

// Decline declines every entry of key.
func (d *Dictionary) Decline(key string, opts Options) ([]Declension, error) {
	entries, err := d.store.Get(key)
	if err != nil {
		return nil, err
	}
	out := make([]Declension, 0, len(entries))
	for _, e := range entries {
		forms, err := declineEntry(e, opts)
		if err != nil {
			return nil, err
		}
		out = append(out, Declension{Entry: e, Forms: forms})
	}
	return out, nil
}

func declineEntry(e Entry, opts Options) ([]LabeledForms, error) {
	lex, err := e.Declinable()
	if err != nil {
		return nil, fmt.Errorf("entry %q: %w", e.FullKey(), err)
	}
	return lex.Multiforms(opts)
}

// Search returns the headwords matching a glob pattern such as "*ник" or
// "go?a". Latin patterns match the transliterated headword.
func (d *Dictionary) Search(pattern string) ([]string, error) {
	g, err := glob.Compile(pattern)
	if err != nil {
		return nil, fmt.Errorf("pattern %q: %v: %w", pattern, err, ErrMalformed)
	}
	var out []string
	for _, k := range d.store.Keys() {
		if g.Match(k) || g.Match(Latin(k)) {
			out = append(out, k)
		}
	}
	return out, nil
}
