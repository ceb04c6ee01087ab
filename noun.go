package naglasak

import (
	"fmt"
	"strings"
)

// Noun declines a noun through the masculine, feminine or neuter table
// its gender flag selects.
type Noun struct {
	partOfSpeech
}

// NewNoun parses info and derives one trunk per variant.
func NewNoun(key, info string) (*Noun, error) {
	g, err := ParseGramInfo(info, KindNoun)
	if err != nil {
		return nil, err
	}
	for _, v := range g.Variants {
		if !v.Has("m") && !v.Has("f") && !v.Has("n") {
			return nil, fmt.Errorf("%s %s: no gender: %w", key, v.AP, ErrMalformed)
		}
	}
	n := &Noun{partOfSpeech{key: key, info: g}}
	if n.trunk, err = buildTrunks(n, key, g); err != nil {
		return nil, err
	}
	return n, nil
}

// buildTrunk keeps the whole headword of consonant-final masculines and drops
// the final vowel of everything else, then places the candidate slot the
// accent paradigm calls for.
func (n *Noun) buildTrunk(key string, v Variant) (Word, error) {
	w, err := Accentize(key, v.Stress, v.Lengths)
	if err != nil {
		return nil, err
	}
	if !v.Has("m") || v.Has("o") {
		if last := len(w) - 1; last >= 0 && w[last].vowelLetter() {
			w = w[:last]
		}
	}

	switch v.AP.Class() {
	case ClassA:
	case ClassB:
		w.clearAccents()
		if lv := w.lastVowel(); lv >= 0 {
			w[lv].Slot = true
		}
	case ClassC:
		if !strings.HasSuffix(key, "а") {
			if a := w.accentIndex(); a >= 0 {
				w[a].Accent, w[a].Circumflex = false, false
				w[a].Slot = true
			}
		} else {
			w.clearAccents()
			if fv := w.firstVowel(); fv >= 0 {
				w[fv].Slot = true
			}
		}
	case ClassO:
		w.clearAccents()
	case ClassF, ClassG:
		return nil, ErrUnimplementedParadigm
	default:
		return nil, ErrUnimplementedParadigm
	}
	return w, nil
}

// table returns the paradigm table of variant i.
func (n *Noun) table(i int) ParadigmTable {
	v := n.info.Variants[i]
	switch {
	case v.Has("m"):
		return mascTable(n.trunk[i], v)
	case v.Has("f") && strings.HasSuffix(n.key, "а"):
		return femTableA
	case v.Has("f"):
		return femTableYer
	}
	return neutTable
}

func (n *Noun) subParadigms(i int) ([]subParadigm, error) {
	return []subParadigm{{
		ap:    n.info.Variants[i].AP,
		table: n.table(i),
		trunk: n.trunk[i],
		swap: func(le LabeledEnding) bool {
			return len(le.Alternatives) > 0 && !le.Alternatives[0][0].zero
		},
	}}, nil
}

// candidates resolves the optional yer: before a zero ending the stem
// appears both with and without it.
func (n *Noun) candidates(stem Word, alt Chain, ap AP) []Word {
	var stems []Word
	if i := stem.optionalYer(); i >= 0 {
		with := stem.Clone()
		with[i].Kind = Yer
		if alt[0].Zero() {
			without := append(stem[:i:i], stem[i+1:]...)
			stems = append(stems, without)
		}
		stems = append(stems, with)
	} else {
		stems = []Word{stem}
	}

	out := stems[:0]
	for _, s := range stems {
		if nounFormPossible(s, alt, ap) {
			out = append(out, s)
		}
	}
	return out
}

// nounFormPossible rules out the unaccented long genitive plural on
// monosyllabic stems of mobile paradigms.
func nounFormPossible(stem Word, alt Chain, ap AP) bool {
	marked := mascGenPlMarked[1][0]
	return stem.firstVowel() != stem.lastVowel() ||
		ap.Class() != ClassC ||
		len(alt) != 1 ||
		alt[0].Morpheme != marked.Morpheme ||
		alt[0].Accent != marked.Accent
}

func (n *Noun) reduce(alts []Chain, ap AP) []Chain {
	return reduceDoublets(alts, ap)
}

// Multiforms declines the noun.
func (n *Noun) Multiforms(opts Options) ([]LabeledForms, error) {
	return n.multiforms(n, opts)
}
