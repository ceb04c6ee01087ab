package naglasak

import (
	"fmt"
	"strings"
)

// Alternation is a consonant change an ending imposes on the stem-final
// consonant.
type Alternation uint8

const (
	NoAlternation  Alternation = iota
	Sibilarization             // ʹ: к г х → ц з с
	Palatalization             // ʺ: к г х ц з → ч ж ш ч ж
	Iotation                   // ĵ: a following ј merges into the consonant
)

// AccentedTuple is one submorpheme of an ending: its notation and the set of
// accent paradigms in which it attracts the accent.
type AccentedTuple struct {
	Morpheme string
	Accent   APSet

	segs        Word
	left        bool
	right       bool
	strong      bool
	zero        bool
	tailSlot    bool
	initial     bool
	alternation Alternation
}

// NewTuple parses a submorpheme and its accent set.
func NewTuple(morpheme, accent string) (AccentedTuple, error) {
	set, err := ParseAPSet(accent)
	if err != nil {
		return AccentedTuple{}, err
	}
	t := AccentedTuple{Morpheme: morpheme, Accent: set}
	for _, r := range morpheme {
		switch {
		case r == '<':
			t.left = true
		case r == '>':
			t.strong = t.right
			t.right = true
		case r == 'ø':
			t.zero = true
		case r == '0':
			t.initial = true
		case r == 'ʹ':
			t.alternation = Sibilarization
		case r == 'ʺ':
			t.alternation = Palatalization
		case r == 'ĵ':
			t.alternation = Iotation
			t.segs = append(t.segs, Segment{Letter: 'ј'})
		case r == slotMark && len(t.segs) == 0:
			t.tailSlot = true
		default:
			if err := t.segs.push(r); err != nil {
				return AccentedTuple{}, fmt.Errorf("morpheme %q: %w", morpheme, err)
			}
		}
	}
	return t, nil
}

// MustTuple is like NewTuple but panics; for static tables.
func MustTuple(morpheme, accent string) AccentedTuple {
	t, err := NewTuple(morpheme, accent)
	if err != nil {
		panic(err)
	}
	return t
}

// Accents reports whether the tuple attracts the accent in ap.
func (t AccentedTuple) Accents(ap AP) bool { return t.Accent.Has(ap) }

// Zero reports whether this is the zero ending.
func (t AccentedTuple) Zero() bool { return t.zero || len(t.segs) == 0 }

// spelling is the notation without candidate slots, used to detect doublets.
func (t AccentedTuple) spelling() string {
	return strings.ReplaceAll(t.Morpheme, string(slotMark), "")
}

// clone copies the tuple so its segments can be changed.
func (t AccentedTuple) clone() AccentedTuple {
	t.segs = t.segs.Clone()
	return t
}

func (t AccentedTuple) stripSlot() AccentedTuple {
	t = t.clone()
	t.segs.clearSlots()
	t.tailSlot = false
	return t
}

// Chain is an ending made of consecutive submorphemes.
type Chain []AccentedTuple

// Spelling concatenates the submorpheme notations without slots.
func (c Chain) Spelling() string {
	var b strings.Builder
	for _, t := range c {
		b.WriteString(t.spelling())
	}
	return b.String()
}

// accentSet is the union of the accent sets in the chain.
func (c Chain) accentSet() APSet {
	var s APSet
	for _, t := range c {
		s |= t.Accent
	}
	return s
}

// LabeledEnding is one grammatical slot with its ending alternatives.
type LabeledEnding struct {
	Label        string
	Alternatives []Chain
}

// ParadigmTable is an ordered set of labeled endings.
type ParadigmTable []LabeledEnding

// Labels returns the labels in order.
func (p ParadigmTable) Labels() []string {
	out := make([]string, len(p))
	for i, le := range p {
		out[i] = le.Label
	}
	return out
}
