package naglasak

// leftBracket applies a lengthening ending (the genitive plural) to a stem
// with at least one vowel: it realizes the yer, lengthens the last stem
// vowel and retracts the accent once per retraction case.
func (c appendCtx) leftBracket(stem Word, t AccentedTuple) ([]pair, error) {
	lvi := stem.lastVowel()
	pvi := stem.prevVowel(lvi)
	cases := c.retractionCases(stem, t, pvi)

	for i := range stem {
		if stem[i].Kind == Yer || stem[i].Kind == OptionalYer {
			stem[i].Kind = Ordinary
			stem[i].Letter = 'а'
		}
	}
	stem[lvi].Length = true

	if len(cases) == 1 && cases[0] == 0 {
		if c.ap.Class() == ClassB && stem.accentIndex() == lvi {
			if pvi < 0 {
				return nil, ErrNoAccentHost
			}
			stem.setAccent(pvi)
		}
	}

	pairs := make([]pair, 0, len(cases))
	for _, n := range cases {
		s, m := stem.Clone(), t.clone()
		if n > 0 {
			vowels := s.vowels()
			base := len(vowels)
			if a := s.accentIndex(); a >= 0 {
				base = s.ordinal(a)
			}
			target := max(base-n, 0)
			s.clearSlots()
			s.setAccent(vowels[target])
			m = m.stripSlot()
		}
		pairs = append(pairs, pair{s, m})
	}
	return pairs, nil
}

// retractionCases selects how many syllables the accent moves left of its
// base before a lengthening ending. The first matching rule wins: forced
// retraction over a yer, then alternate retraction of mobile paradigms.
// Dual retraction turns {1} into {2,1} and {0} into {1,0}.
func (c appendCtx) retractionCases(stem Word, t AccentedTuple, pvi int) []int {
	masc := c.variant.Has("m")
	cases := []int{0}
	switch {
	case stem.hasYer() && masc && c.ap.Class() != ClassA:
		cases = []int{1}
	case !stem.hasYer() && masc && !t.Accents(c.ap) && c.ap.Class() == ClassC && !accentAfter(stem, pvi):
		cases = []int{1}
	}
	if c.dualRetraction() {
		if cases[0] == 1 {
			return []int{2, 1}
		}
		return []int{1, 0}
	}
	return cases
}

// dualRetraction reports whether the variant declares two genitive-plural
// accents, or is an augmented mobile noun and the augment exception is on.
func (c appendCtx) dualRetraction() bool {
	if c.variant.Has("dr") {
		return true
	}
	if c.opts.DisableAugmentRetraction {
		return false
	}
	augmented := c.variant.Has("+") || c.variant.Has("±")
	return augmented && (c.ap == APcLong || c.ap == APcVar)
}

func accentAfter(w Word, i int) bool {
	a := w.accentIndex()
	return a >= 0 && a > i
}
