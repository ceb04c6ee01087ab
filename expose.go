package naglasak

import (
	"fmt"
	"strings"
	"unicode"

	"golang.org/x/text/runes"
	"golang.org/x/text/transform"
	"golang.org/x/text/unicode/norm"
)

// Reflex selects the dialectal reflex of yat (ѣ).
type Reflex uint8

const (
	Ekavian   Reflex = iota // е
	Ijekavian               // је short, ије long
	Ikavian                 // и
)

func (r Reflex) String() string {
	switch r {
	case Ijekavian:
		return "je"
	case Ikavian:
		return "i"
	}
	return "e"
}

// ParseReflex accepts e, je and i and their longer spellings.
func ParseReflex(s string) (Reflex, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "", "e", "ekav", "ekavian":
		return Ekavian, nil
	case "je", "ije", "jekav", "ijekav", "ijekavian":
		return Ijekavian, nil
	case "i", "ikav", "ikavian":
		return Ikavian, nil
	}
	return 0, fmt.Errorf("reflex %q: %w", s, ErrMalformed)
}

// latinReplacer transliterates Serbian Cyrillic to Gaj's Latin alphabet.
var latinReplacer = strings.NewReplacer(
	"а", "a", "б", "b", "в", "v", "г", "g", "д", "d", "ђ", "đ", "е", "e",
	"ж", "ž", "з", "z", "и", "i", "ј", "j", "к", "k", "л", "l", "љ", "lj",
	"м", "m", "н", "n", "њ", "nj", "о", "o", "п", "p", "р", "r", "с", "s",
	"т", "t", "ћ", "ć", "у", "u", "ф", "f", "х", "h", "ц", "c", "ч", "č",
	"џ", "dž", "ш", "š",
	"А", "A", "Б", "B", "В", "V", "Г", "G", "Д", "D", "Ђ", "Đ", "Е", "E",
	"Ж", "Ž", "З", "Z", "И", "I", "Ј", "J", "К", "K", "Л", "L", "Љ", "Lj",
	"М", "M", "Н", "N", "Њ", "Nj", "О", "O", "П", "P", "Р", "R", "С", "S",
	"Т", "T", "Ћ", "Ć", "У", "U", "Ф", "F", "Х", "H", "Ц", "C", "Ч", "Č",
	"Џ", "Dž", "Ш", "Š",
)

// Latin transliterates s from Cyrillic; other text passes through.
func Latin(s string) string {
	return norm.NFC.String(latinReplacer.Replace(norm.NFD.String(s)))
}

var plainer = transform.Chain(norm.NFD, runes.Remove(runes.In(unicode.Mn)), norm.NFC)

// Plain strips every diacritic from s.
func Plain(s string) string {
	out, _, err := transform.String(plainer, s)
	if err != nil {
		return s
	}
	return out
}

// Expose converts a form in internal notation into its public spelling.
// Exposing an already public form returns it unchanged.
func Expose(form string, reflex Reflex, latin bool) (string, error) {
	w, err := ParseWord(form)
	if err != nil {
		return "", err
	}
	return exposeWord(w, reflex, latin), nil
}

func exposeWord(w Word, reflex Reflex, latin bool) string {
	w = resolveLetters(w)
	placeTone(w)
	var b strings.Builder
	for _, s := range w {
		writeSegment(&b, s, reflex)
	}
	out := b.String()
	if latin {
		out = latinReplacer.Replace(out)
	}
	return norm.NFC.String(out)
}

const softLetters = "јљњћђчџшж"

func isSoft(s Segment) bool {
	return s.Soft || strings.ContainsRune(softLetters, s.Letter)
}

// resolveLetters settles yers, the vocalizing liquid and the alternating
// vowel. An accent or slot on a dropped yer moves to the next vowel.
func resolveLetters(w Word) Word {
	out := make(Word, 0, len(w))
	var carried *Segment
	for i, s := range w {
		switch s.Kind {
		case Yer, OptionalYer:
			if vowelFollows(w, i) {
				c := s
				carried = &c
				continue
			}
			s.Kind, s.Letter = Ordinary, 'а'
		case Liquid:
			s.Kind = Ordinary
			if i == len(w)-1 {
				s.Letter = 'о'
			} else {
				s.Letter = 'л'
			}
		case AltVowel:
			s.Kind = Ordinary
			if i > 0 && isSoft(w[i-1]) {
				s.Letter = 'е'
			} else {
				s.Letter = 'о'
			}
		}
		if carried != nil && s.vowelLetter() {
			s.Accent = s.Accent || carried.Accent
			s.Slot = s.Slot || carried.Slot
			carried = nil
		}
		out = append(out, s)
	}
	return out
}

func vowelFollows(w Word, i int) bool {
	for _, s := range w[i+1:] {
		if s.vowelLetter() {
			return true
		}
	}
	return false
}

// placeTone turns the old-stress position into a public tone: falling on
// the first syllable or under a neocircumflex, otherwise rising one
// syllable to the left. A committed accent beats candidate slots.
func placeTone(w Word) {
	k := w.accentIndex()
	circumflex := k >= 0 && w[k].Circumflex
	if k < 0 {
		k = w.slotIndex()
	}
	for i := range w {
		w[i].Accent, w[i].Slot, w[i].Circumflex = false, false, false
	}
	if k < 0 || !w.isVowel(k) {
		return
	}
	host := k
	rising := false
	if ord := w.ordinal(k); ord > 0 && !circumflex {
		host = w.vowelAt(ord - 1)
		rising = true
	}
	if w[host].Tone != NoTone {
		return
	}
	switch {
	case rising && w[host].Length:
		w[host].Tone = LongRising
	case rising:
		w[host].Tone = ShortRising
	case w[host].Length:
		w[host].Tone = LongFalling
	default:
		w[host].Tone = ShortFalling
	}
	w[host].Length = false
}

func writeSegment(b *strings.Builder, s Segment, reflex Reflex) {
	if s.Letter == 'ѣ' || s.Letter == 'Ѣ' {
		writeYat(b, s, reflex)
		return
	}
	b.WriteRune(s.Letter)
	writeMarks(b, s)
}

func writeMarks(b *strings.Builder, s Segment) {
	b.WriteString(s.Extra)
	if s.Length {
		b.WriteRune(cMacron)
	}
	if s.Tone != NoTone {
		b.WriteRune(toneMarks[s.Tone])
	}
}

func writeYat(b *strings.Builder, s Segment, reflex Reflex) {
	upper := s.Letter == 'Ѣ'
	letter := func(lower, up rune) rune {
		if upper {
			return up
		}
		return lower
	}
	switch reflex {
	case Ekavian:
		b.WriteRune(letter('е', 'Е'))
		writeMarks(b, s)
	case Ikavian:
		b.WriteRune(letter('и', 'И'))
		writeMarks(b, s)
	case Ijekavian:
		long := s.Length || s.Tone == LongFalling || s.Tone == LongRising
		if !long {
			b.WriteRune(letter('ј', 'Ј'))
			b.WriteRune('е')
			writeMarks(b, s)
			return
		}
		b.WriteRune(letter('и', 'И'))
		switch s.Tone {
		case LongFalling:
			b.WriteRune(cDoubleGrave)
			b.WriteString("је")
		case LongRising:
			b.WriteString("је")
			b.WriteRune(cAcute)
		default:
			b.WriteString("је")
			s.Tone = NoTone
			writeMarks(b, s)
		}
	}
}
