package naglasak

import "fmt"

// Options selects what Multiforms produces. The zero value declines every
// variant in ekavian Cyrillic.
type Options struct {
	// Variant restricts output to one variant (0-based); nil means all.
	// An index the lexeme does not have is ErrMalformed.
	Variant *int
	Reflex  Reflex
	// Latin transliterates the output to Latin script.
	Latin bool
	// DisableAugmentRetraction turns off the dual genitive-plural
	// retraction of augmented c:/c? nouns. Nouns flagged dr keep it.
	DisableAugmentRetraction bool
	// LengthInconstancy swaps vowel length on the stem for endings and
	// sub-paradigms that disagree in length with the headword.
	LengthInconstancy bool
}

func (o Options) wants(i int) bool {
	return o.Variant == nil || *o.Variant == i
}

// VariantOption returns a pointer for Options.Variant.
func VariantOption(i int) *int { return &i }

// LabeledForms is one cell of a paradigm: a grammatical label and its
// surface forms in order of derivation.
type LabeledForms struct {
	Variant int      `json:"variant"`
	Label   string   `json:"label"`
	Forms   []string `json:"forms"`
}

// Irregulars are forms a lexicon lists for a label, in internal notation.
// Replacements supersede the regular forms; amendments follow them.
type Irregulars struct {
	Replacements map[string][]string
	Amendments   map[string][]string
}

// Declinable is a lexeme that can produce its paradigm.
type Declinable interface {
	Key() string
	Info() GramInfo
	Trunks() []Word
	SetIrregulars(Irregulars)
	Multiforms(opts Options) ([]LabeledForms, error)
}

// New builds the Declinable of the given kind.
func New(key, info string, kind Kind) (Declinable, error) {
	switch kind {
	case KindNoun:
		return NewNoun(key, info)
	case KindAdjective:
		return NewAdjective(key, info)
	}
	return nil, fmt.Errorf("kind %d: %w", kind, ErrUnimplementedParadigm)
}
