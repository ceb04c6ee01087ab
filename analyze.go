package naglasak

import (
	"fmt"
	"strings"
)

// Analysis is one reading of a surface form.
type Analysis struct {
	// Entry is the full key of the lexicon entry.
	Entry   string `json:"entry"`
	Variant int    `json:"variant"`
	Label   string `json:"label"`
	// Form is the accented form the reading stands for.
	Form string `json:"form"`
}

var reflexes = []Reflex{Ekavian, Ijekavian, Ikavian}

// indexKey folds case and diacritics so that plain, accented and Latin
// spellings meet.
func indexKey(form string) string {
	return Plain(Latin(strings.ToLower(strings.TrimSpace(form))))
}

// buildIndex declines the whole lexicon in every reflex. Entries whose
// paradigm is not implemented are skipped and counted.
func (d *Dictionary) buildIndex() {
	d.index = make(map[string][]Analysis)
	seen := make(map[Analysis]bool)
	for _, e := range Entries(d.store) {
		lex, err := e.Declinable()
		if err != nil {
			d.skipped++
			continue
		}
		for _, r := range reflexes {
			cells, err := lex.Multiforms(Options{Reflex: r})
			if err != nil {
				d.skipped++
				break
			}
			for _, c := range cells {
				for _, f := range c.Forms {
					a := Analysis{Entry: e.FullKey(), Variant: c.Variant, Label: c.Label, Form: f}
					if seen[a] {
						continue
					}
					seen[a] = true
					k := indexKey(f)
					d.index[k] = append(d.index[k], a)
				}
			}
		}
	}
}

// Analyze returns every entry, variant and label that produces form. The
// form may be written with or without accents, in either script.
func (d *Dictionary) Analyze(form string) ([]Analysis, error) {
	d.indexOnce.Do(d.buildIndex)
	as, ok := d.index[indexKey(form)]
	if !ok {
		return nil, fmt.Errorf("form %q: %w", form, ErrNotFound)
	}
	return append([]Analysis(nil), as...), nil
}

// Skipped reports how many entries the analysis index could not decline.
func (d *Dictionary) Skipped() int {
	d.indexOnce.Do(d.buildIndex)
	return d.skipped
}
