package naglasak

import (
	"fmt"
	"regexp"
)

var adjClasses = []string{"all", "ski", "ov"}

// Adjective declines an adjective through the sub-paradigms of its
// declension class: all (short, long and comparative), ski (long) or ov
// (possessive).
type Adjective struct {
	partOfSpeech
	class []string
}

// NewAdjective parses info and derives one trunk per variant.
func NewAdjective(key, info string) (*Adjective, error) {
	g, err := ParseGramInfo(info, KindAdjective)
	if err != nil {
		return nil, err
	}
	a := &Adjective{partOfSpeech: partOfSpeech{key: key, info: g}}
	for _, v := range g.Variants {
		c, err := declensionClass(v)
		if err != nil {
			return nil, fmt.Errorf("%s: %w", key, err)
		}
		a.class = append(a.class, c)
	}
	if a.trunk, err = buildTrunks(a, key, g); err != nil {
		return nil, err
	}
	return a, nil
}

func declensionClass(v Variant) (string, error) {
	found := ""
	for _, c := range adjClasses {
		if !v.Has(c) {
			continue
		}
		if found != "" {
			return "", fmt.Errorf("classes %s and %s: %w", found, c, ErrMalformed)
		}
		found = c
	}
	if found == "" {
		return "", fmt.Errorf("%s/%s has no declension class: %w", v.Short, v.AP, ErrMalformed)
	}
	return found, nil
}

func (a *Adjective) buildTrunk(key string, v Variant) (Word, error) {
	w, err := Accentize(key, v.Stress, v.Lengths)
	if err != nil {
		return nil, err
	}
	c, err := declensionClass(v)
	if err != nil {
		return nil, err
	}
	switch c {
	case "all":
		if i := w.accentIndex(); i >= 0 && w[i].Kind == Yer {
			w[i].Accent = false
		}
	case "ski":
		if n := len(w) - 1; n >= 0 && w[n].Letter == 'и' {
			w = w[:n]
		}
	}
	mobile := 0
	for _, ap := range []AP{v.Short, v.AP} {
		switch ap.Class() {
		case ClassA:
		case ClassB, ClassC:
			mobile++
		case ClassO, ClassF, ClassG:
			return nil, fmt.Errorf("adjective paradigm %s: %w", ap, ErrUnimplementedParadigm)
		default:
			return nil, ErrUnimplementedParadigm
		}
	}
	if mobile == 2 {
		if lv := w.lastVowel(); lv >= 0 {
			w[lv].Slot = true
		}
	}
	return w, nil
}

func (a *Adjective) subParadigms(i int) ([]subParadigm, error) {
	v := a.info.Variants[i]
	trunk := a.trunk[i]
	inconstant := func(LabeledEnding) bool { return a.info.LengthInconstant(i) }
	switch a.class[i] {
	case "all":
		return []subParadigm{
			{ap: v.Short, table: shortAdj, trunk: trunk},
			{ap: v.AP, table: longAdj, trunk: trunk, swap: inconstant},
			{ap: v.AP, table: comparativeAdj, trunk: trunk, swap: inconstant},
		}, nil
	case "ski":
		return []subParadigm{{ap: v.AP, table: longAdj, trunk: trunk}}, nil
	case "ov":
		return []subParadigm{{ap: v.AP, table: mixedAdj, trunk: trunk}}, nil
	}
	return nil, fmt.Errorf("class %q: %w", a.class[i], ErrUnimplementedParadigm)
}

// softAltVowelMe matches a soft consonant followed by the alternating
// vowel in an ending in -ме (*врућеме).
var softAltVowelMe = regexp.MustCompile(`[њљћђшжчџјʲ]œ.+ме$`)

// candidates expands a stem-final ʟ into two stems for every ending: one
// vocalized as it would be on the surface (о before the zero ending, л
// otherwise) and one with a plain л. Forms the phonotactics exclude are
// dropped.
func (a *Adjective) candidates(stem Word, alt Chain, ap AP) []Word {
	stems := []Word{stem}
	if i := stem.liquid(); i >= 0 {
		vocalized, plain := stem.Clone(), stem.Clone()
		vocalized[i].Kind, plain[i].Kind = Ordinary, Ordinary
		vocalized[i].Letter, plain[i].Letter = 'л', 'л'
		if alt[0].Zero() {
			vocalized[i].Letter = 'о'
		}
		stems = []Word{vocalized, plain}
	}
	out := stems[:0]
	for _, s := range stems {
		if !softAltVowelMe.MatchString(s.String() + alt.Spelling()) {
			out = append(out, s)
		}
	}
	return out
}

func (a *Adjective) reduce(alts []Chain, ap AP) []Chain { return alts }

// Multiforms declines the adjective.
func (a *Adjective) Multiforms(opts Options) ([]LabeledForms, error) {
	return a.multiforms(a, opts)
}
