package naglasak

import (
	"fmt"
	"slices"
)

// Accentize parses key and puts the old stress on the stress-th vowel and
// length on the listed vowels (1-based ordinals).
func Accentize(key string, stress int, lengths []int) (Word, error) {
	w, err := ParseWord(key)
	if err != nil {
		return nil, err
	}
	vowels := w.vowels()
	if stress > len(vowels) {
		return nil, fmt.Errorf("stress on vowel %d of %q: %w", stress, key, ErrMalformed)
	}
	if stress > 0 {
		w.setAccent(vowels[stress-1])
	}
	for _, n := range lengths {
		if n > len(vowels) {
			return nil, fmt.Errorf("length on vowel %d of %q: %w", n, key, ErrMalformed)
		}
		w[vowels[n-1]].Length = true
	}
	return w, nil
}

// SwapLength makes the accent-bearing vowel of w (its slot, or else its
// committed accent) long for ':' paradigms and short for '.' ones.
func SwapLength(w Word, ap AP) Word {
	i := w.slotIndex()
	if i < 0 {
		i = w.accentIndex()
	}
	if i < 0 {
		return w
	}
	w = w.Clone()
	switch {
	case ap.Long():
		w[i].Length = true
	case ap.Short():
		w[i].Length = false
	}
	return w
}

// partOfSpeech holds what every declinable category shares: the headword,
// its grammar and one trunk per variant.
type partOfSpeech struct {
	key   string
	info  GramInfo
	trunk []Word
	irreg Irregulars
}

func (p *partOfSpeech) Key() string { return p.key }

// Info returns a copy of the parsed descriptor.
func (p *partOfSpeech) Info() GramInfo { return p.info.clone() }

// Trunks returns a copy of the per-variant trunks.
func (p *partOfSpeech) Trunks() []Word {
	out := make([]Word, len(p.trunk))
	for i, t := range p.trunk {
		out[i] = t.Clone()
	}
	return out
}

// SetIrregulars attaches replacement and amendment forms.
func (p *partOfSpeech) SetIrregulars(irr Irregulars) { p.irreg = irr }

// trunkBuilder derives the stem of one variant.
type trunkBuilder interface {
	buildTrunk(key string, v Variant) (Word, error)
}

func buildTrunks(b trunkBuilder, key string, info GramInfo) ([]Word, error) {
	out := make([]Word, 0, len(info.Variants))
	for _, v := range info.Variants {
		t, err := b.buildTrunk(key, v)
		if err != nil {
			return nil, fmt.Errorf("%s %s: %w", key, v.AP, err)
		}
		out = append(out, t)
	}
	return out, nil
}

// appendCtx carries what the append pipeline needs to know about the
// variant being declined.
type appendCtx struct {
	ap      AP
	variant Variant
	opts    Options
}

// processChain folds the append pipeline over the submorphemes of chain,
// carrying every candidate forward.
func (c appendCtx) processChain(stem Word, chain Chain) ([]Word, error) {
	words := []Word{stem}
	for _, t := range chain {
		var next []Word
		for _, w := range words {
			out, err := c.appendMorpheme(w, t)
			if err != nil {
				return nil, err
			}
			next = append(next, out...)
		}
		words = next
	}
	return words, nil
}

type pair struct {
	stem  Word
	morph AccentedTuple
}

// appendMorpheme attaches one submorpheme to stem and returns every
// resulting candidate.
func (c appendCtx) appendMorpheme(stem Word, t AccentedTuple) ([]Word, error) {
	stem = stem.Clone()
	t = t.clone()

	if t.Accents(c.ap) && stem.hasAccent() {
		stem.clearAccents()
	}

	if t.right {
		if t.strong || !c.ap.keepsLength() {
			stem.clearLength()
		}
		t.right, t.strong = false, false
	}

	pairs := []pair{{stem, t}}
	if t.left && stem.lastVowel() >= 0 {
		var err error
		if pairs, err = c.leftBracket(stem, t); err != nil {
			return nil, err
		}
	}

	out := make([]Word, 0, len(pairs))
	for _, p := range pairs {
		p.morph.left = false
		out = append(out, c.decide(p.stem, p.morph))
	}
	return out, nil
}

// decide settles who carries the accent and concatenates.
func (c appendCtx) decide(stem Word, t AccentedTuple) Word {
	switch {
	case t.Accents(c.ap):
		stem.clearSlots()
		slot := t.segs.slotIndex()
		switch {
		case t.initial && c.ap.Class() == ClassC:
			if fv := stem.firstVowel(); fv >= 0 {
				stem.setAccent(fv)
			}
			t = t.stripSlot()
		case slot >= 0:
			stem.clearAccents()
			t.segs.clearAccents()
			t.segs[slot].Slot = false
			t.segs[slot].Accent = true
		case t.tailSlot:
			if lv := stem.lastVowel(); lv >= 0 {
				stem.setAccent(lv)
				stem[lv].Circumflex = true
			}
			t.tailSlot = false
		}
	case c.ap.Class() == ClassO && !stem.hasAccent():
		if fv := stem.firstVowel(); fv >= 0 {
			stem.setAccent(fv)
		}
	}
	return join(stem, t)
}

var (
	sibilarize  = map[rune]rune{'к': 'ц', 'г': 'з', 'х': 'с'}
	palatalize  = map[rune]rune{'к': 'ч', 'г': 'ж', 'х': 'ш', 'ц': 'ч', 'з': 'ж'}
	iotate      = map[rune]rune{'т': 'ћ', 'д': 'ђ', 'с': 'ш', 'з': 'ж', 'л': 'љ', 'н': 'њ'}
	epenthetics = []rune{'п', 'б', 'в', 'м', 'ф'}
	// clusterIotate assimilates the consonant before an iotated one:
	// ст → шћ, зд → жђ.
	clusterIotate = map[[2]rune]rune{{'с', 'ћ'}: 'ш', {'з', 'ђ'}: 'ж'}
)

// join concatenates stem and morpheme, applying the morpheme's consonant
// alternation to the stem-final consonant.
func join(stem Word, t AccentedTuple) Word {
	w := stem.Clone()
	segs := t.segs.Clone()
	if n := len(w) - 1; n >= 0 && !w.isVowel(n) && w[n].Kind == Ordinary {
		last := &w[n]
		switch t.alternation {
		case Sibilarization:
			if r, ok := sibilarize[last.Letter]; ok {
				last.Letter = r
			}
		case Palatalization:
			if r, ok := palatalize[last.Letter]; ok {
				last.Letter = r
			}
		case Iotation:
			if len(segs) > 0 && segs[0].Letter == 'ј' {
				if r, ok := iotate[last.Letter]; ok {
					last.Letter = r
					segs = segs[1:]
					if n > 0 {
						if r, ok := clusterIotate[[2]rune{w[n-1].Letter, w[n].Letter}]; ok {
							w[n-1].Letter = r
						}
					}
				} else if slices.Contains(epenthetics, last.Letter) {
					segs[0].Letter = 'љ'
				}
			}
		}
	}
	return append(w, segs...)
}

// reduceDoublets drops a later alternative spelled like an earlier one,
// unless ap attracts the accent in the earlier one.
func reduceDoublets(alts []Chain, ap AP) []Chain {
	if len(alts) < 2 {
		return alts
	}
	ready := make([]Chain, 0, len(alts))
	for _, alt := range alts {
		keep := true
		for _, prev := range ready {
			if !prev.accentSet().Has(ap) && prev.Spelling() == alt.Spelling() {
				keep = false
				break
			}
		}
		if keep {
			ready = append(ready, alt)
		}
	}
	return ready
}
