package naglasak

import (
	"fmt"
	"strings"
	"unicode"

	"golang.org/x/text/unicode/norm"
)

// Combining marks of the internal notation and of public forms.
const (
	cStraight     = '̍' // committed accent
	cMacron       = '̄' // length
	cDoubleGrave  = '̏' // short falling
	cGrave        = '̀' // short rising
	cInvertedBrev = '̑' // long falling
	cAcute        = '́' // long rising
	slotMark      = '·'
	softMark      = 'ʲ'
)

// LetterKind distinguishes letters that change shape at exposure.
type LetterKind uint8

const (
	Ordinary    LetterKind = iota
	Yer                    // ъ: а or nothing
	OptionalYer            // Ъ: resolved into a yer or dropped before exposure
	AltVowel               // œ: е after soft consonants, о elsewhere
	Liquid                 // ʟ: о word-finally, л elsewhere
)

// Tone is a public accent mark found in already exposed input.
type Tone uint8

const (
	NoTone Tone = iota
	ShortFalling
	ShortRising
	LongFalling
	LongRising
)

var toneMarks = map[Tone]rune{
	ShortFalling: cDoubleGrave,
	ShortRising:  cGrave,
	LongFalling:  cInvertedBrev,
	LongRising:   cAcute,
}

// Segment is one letter of a word together with its prosodic marks.
type Segment struct {
	Letter rune
	Kind   LetterKind
	// Soft marks a consonant that behaves as palatal (ʲ).
	Soft bool
	// Length is the macron.
	Length bool
	// Accent is a committed old-stress mark.
	Accent bool
	// Circumflex makes a committed accent surface as falling in place.
	Circumflex bool
	// Slot is a candidate accent position.
	Slot bool
	Tone Tone
	// Extra holds combining marks the engine does not interpret.
	Extra string
}

const vowelLetters = "аеиоуѣАЕИОУѢaeiouAEIOU"

func (s Segment) vowelLetter() bool {
	switch s.Kind {
	case Yer, OptionalYer, AltVowel:
		return true
	case Liquid:
		return false
	}
	return strings.ContainsRune(vowelLetters, s.Letter)
}

func (s Segment) isR() bool {
	return s.Kind == Ordinary && (s.Letter == 'р' || s.Letter == 'Р' || s.Letter == 'r' || s.Letter == 'R')
}

// Word is a word under construction.
type Word []Segment

// isVowel reports whether w[i] is a syllable nucleus. A р with no vowel
// neighbour is syllabic.
func (w Word) isVowel(i int) bool {
	if i < 0 || i >= len(w) {
		return false
	}
	if w[i].vowelLetter() {
		return true
	}
	if !w[i].isR() {
		return false
	}
	prev := i > 0 && w[i-1].vowelLetter()
	next := i+1 < len(w) && w[i+1].vowelLetter()
	return !prev && !next && len(w) > 1
}

func (w Word) vowels() []int {
	var idx []int
	for i := range w {
		if w.isVowel(i) {
			idx = append(idx, i)
		}
	}
	return idx
}

func (w Word) firstVowel() int {
	for i := range w {
		if w.isVowel(i) {
			return i
		}
	}
	return -1
}

func (w Word) lastVowel() int {
	for i := len(w) - 1; i >= 0; i-- {
		if w.isVowel(i) {
			return i
		}
	}
	return -1
}

// prevVowel returns the vowel before index i, or -1.
func (w Word) prevVowel(i int) int {
	for j := i - 1; j >= 0; j-- {
		if w.isVowel(j) {
			return j
		}
	}
	return -1
}

// vowelAt returns the index of the n-th vowel (0-based), or -1.
func (w Word) vowelAt(n int) int {
	v := w.vowels()
	if n < 0 || n >= len(v) {
		return -1
	}
	return v[n]
}

// ordinal returns the vowel ordinal of index i, or -1.
func (w Word) ordinal(i int) int {
	for n, v := range w.vowels() {
		if v == i {
			return n
		}
	}
	return -1
}

func (w Word) accentIndex() int {
	for i, s := range w {
		if s.Accent {
			return i
		}
	}
	return -1
}

func (w Word) hasAccent() bool { return w.accentIndex() >= 0 }

func (w Word) slotIndex() int {
	for i, s := range w {
		if s.Slot {
			return i
		}
	}
	return -1
}

func (w Word) hasYer() bool {
	for _, s := range w {
		if s.Kind == Yer || s.Kind == OptionalYer {
			return true
		}
	}
	return false
}

// Clone returns an independent copy.
func (w Word) Clone() Word {
	return append(Word(nil), w...)
}

func (w Word) clearAccents() {
	for i := range w {
		w[i].Accent = false
		w[i].Circumflex = false
	}
}

func (w Word) clearSlots() {
	for i := range w {
		w[i].Slot = false
	}
}

func (w Word) clearLength() {
	for i := range w {
		w[i].Length = false
	}
}

// setAccent moves the committed accent to index i.
func (w Word) setAccent(i int) {
	w.clearAccents()
	w[i].Accent = true
}

// letters spells w without prosodic marks, writing special letters in
// their notation form (ъ Ъ œ ʟ).
func (w Word) letters() string {
	var b strings.Builder
	for _, s := range w {
		switch s.Kind {
		case Yer:
			b.WriteRune('ъ')
		case OptionalYer:
			b.WriteRune('Ъ')
		case AltVowel:
			b.WriteRune('œ')
		case Liquid:
			b.WriteRune('ʟ')
		default:
			b.WriteRune(s.Letter)
		}
	}
	return b.String()
}

// String renders the internal notation.
func (w Word) String() string {
	var b strings.Builder
	for _, s := range w {
		switch s.Kind {
		case Yer:
			b.WriteRune('ъ')
		case OptionalYer:
			b.WriteRune('Ъ')
		case AltVowel:
			b.WriteRune('œ')
		case Liquid:
			b.WriteRune('ʟ')
		default:
			b.WriteRune(s.Letter)
		}
		b.WriteString(s.Extra)
		if s.Slot {
			b.WriteRune(slotMark)
		}
		if s.Length {
			b.WriteRune(cMacron)
		}
		if s.Accent {
			b.WriteRune(cStraight)
		}
		if s.Tone != NoTone {
			b.WriteRune(toneMarks[s.Tone])
		}
		if s.Soft {
			b.WriteRune(softMark)
		}
	}
	return b.String()
}

// ParseWord parses a word in internal notation. Precomposed letters are
// decomposed first, so public forms are accepted as well.
func ParseWord(s string) (Word, error) {
	w := make(Word, 0, len(s))
	for _, r := range norm.NFD.String(s) {
		if err := w.push(r); err != nil {
			return nil, fmt.Errorf("word %q: %w", s, err)
		}
	}
	return w, nil
}

// MustWord is like ParseWord but panics.
func MustWord(s string) Word {
	w, err := ParseWord(s)
	if err != nil {
		panic(err)
	}
	return w
}

func (w *Word) push(r rune) error {
	mark := func(set func(*Segment)) error {
		if len(*w) == 0 {
			return fmt.Errorf("mark %U without a letter: %w", r, ErrMalformed)
		}
		set(&(*w)[len(*w)-1])
		return nil
	}
	switch r {
	case cStraight:
		return mark(func(s *Segment) { s.Accent = true })
	case cMacron:
		return mark(func(s *Segment) { s.Length = true })
	case slotMark:
		return mark(func(s *Segment) { s.Slot = true })
	case softMark:
		return mark(func(s *Segment) { s.Soft = true })
	case cDoubleGrave:
		return mark(func(s *Segment) { s.Tone = ShortFalling })
	case cGrave:
		return mark(func(s *Segment) { s.Tone = ShortRising })
	case cInvertedBrev:
		return mark(func(s *Segment) { s.Tone = LongFalling })
	case cAcute:
		return mark(func(s *Segment) { s.Tone = LongRising })
	case 'ъ':
		*w = append(*w, Segment{Letter: 'а', Kind: Yer})
	case 'Ъ':
		*w = append(*w, Segment{Letter: 'а', Kind: OptionalYer})
	case 'œ':
		*w = append(*w, Segment{Letter: 'о', Kind: AltVowel})
	case 'ʟ':
		*w = append(*w, Segment{Letter: 'л', Kind: Liquid})
	default:
		if unicode.Is(unicode.Mn, r) {
			return mark(func(s *Segment) { s.Extra += string(r) })
		}
		*w = append(*w, Segment{Letter: r})
	}
	return nil
}

func (w Word) optionalYer() int {
	for i, s := range w {
		if s.Kind == OptionalYer {
			return i
		}
	}
	return -1
}

func (w Word) liquid() int {
	for i, s := range w {
		if s.Kind == Liquid {
			return i
		}
	}
	return -1
}
