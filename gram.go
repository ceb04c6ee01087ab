package naglasak

import (
	"fmt"
	"slices"
	"strconv"
	"strings"
)

// Kind is the paradigm kind of a lexeme.
type Kind uint8

const (
	KindNoun Kind = 1 + iota
	KindAdjective
)

func (k Kind) String() string {
	switch k {
	case KindNoun:
		return "noun"
	case KindAdjective:
		return "adjective"
	}
	return "unknown"
}

func (k Kind) MarshalText() ([]byte, error) { return []byte(k.String()), nil }

func (k *Kind) UnmarshalText(b []byte) error {
	v, err := ParseKind(string(b))
	if err != nil {
		return err
	}
	*k = v
	return nil
}

// ParseKind parses the paradigm-kind tag of a lexicon record.
func ParseKind(s string) (Kind, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "noun", "n":
		return KindNoun, nil
	case "adjective", "adj", "a":
		return KindAdjective, nil
	}
	return 0, fmt.Errorf("kind %q: %w", s, ErrUnimplementedParadigm)
}

var kindFlags = map[Kind][]string{
	KindNoun:      {"m", "f", "n", "o", "an", "in", "+", "±", "_", "u", "ue", "e", "dr"},
	KindAdjective: {"all", "ski", "ov"},
}

// Variant is one accentual variant of a lexeme.
type Variant struct {
	// AP is the accent paradigm; for adjectives the long-form paradigm.
	AP AP
	// Short is the short-form paradigm of adjectives; equal to AP for nouns.
	Short AP
	// Stress is the 1-based vowel ordinal of the old stress, 0 for none.
	Stress int
	// Lengths are 1-based ordinals of long vowels.
	Lengths []int
	Flags   []string
}

// Has reports whether flag is set.
func (v Variant) Has(flag string) bool {
	return slices.Contains(v.Flags, flag)
}

// GramInfo is a parsed grammar descriptor. It is immutable once parsed.
type GramInfo struct {
	Variants []Variant
	Kind     Kind
}

func (g GramInfo) clone() GramInfo {
	out := GramInfo{Kind: g.Kind, Variants: slices.Clone(g.Variants)}
	for i := range out.Variants {
		out.Variants[i].Lengths = slices.Clone(g.Variants[i].Lengths)
		out.Variants[i].Flags = slices.Clone(g.Variants[i].Flags)
	}
	return out
}

// APs returns the accent paradigm of every variant, in order.
func (g GramInfo) APs() []AP {
	out := make([]AP, len(g.Variants))
	for i, v := range g.Variants {
		out[i] = v.AP
	}
	return out
}

// LengthInconstant reports whether the short and long paradigms of
// variant i disagree in length (the "boos ~ bosa" type). Synthesis only
// uses it when Options.LengthInconstancy is set.
func (g GramInfo) LengthInconstant(i int) bool {
	v := g.Variants[i]
	return v.Short.Long() != v.AP.Long()
}

// ParseGramInfo parses a descriptor such as "c: r=1 v=1 m in +; a r=1 m".
func ParseGramInfo(info string, kind Kind) (GramInfo, error) {
	allowed, ok := kindFlags[kind]
	if !ok {
		return GramInfo{}, fmt.Errorf("kind %d: %w", kind, ErrUnimplementedParadigm)
	}
	g := GramInfo{Kind: kind}
	for _, chunk := range strings.Split(info, ";") {
		fields := strings.Fields(chunk)
		if len(fields) == 0 {
			continue
		}
		v, err := parseVariant(fields, kind, allowed)
		if err != nil {
			return GramInfo{}, fmt.Errorf("descriptor %q: %w", info, err)
		}
		g.Variants = append(g.Variants, v)
	}
	if len(g.Variants) == 0 {
		return GramInfo{}, fmt.Errorf("descriptor %q has no variants: %w", info, ErrMalformed)
	}
	return g, nil
}

func parseVariant(fields []string, kind Kind, allowed []string) (Variant, error) {
	var v Variant
	code := fields[0]
	if short, long, pair := strings.Cut(code, "/"); pair {
		if kind != KindAdjective {
			return v, fmt.Errorf("paired paradigm %q outside adjectives: %w", code, ErrMalformed)
		}
		var err error
		if v.Short, err = ParseAP(short); err != nil {
			return v, err
		}
		if v.AP, err = ParseAP(long); err != nil {
			return v, err
		}
	} else {
		ap, err := ParseAP(code)
		if err != nil {
			return v, err
		}
		v.AP, v.Short = ap, ap
	}

	for _, f := range fields[1:] {
		switch {
		case strings.HasPrefix(f, "r="):
			n, err := strconv.Atoi(f[2:])
			if err != nil || n < 0 {
				return v, fmt.Errorf("stress %q: %w", f, ErrMalformed)
			}
			v.Stress = n
		case strings.HasPrefix(f, "v="):
			for _, p := range strings.Split(f[2:], ",") {
				n, err := strconv.Atoi(p)
				if err != nil || n < 1 {
					return v, fmt.Errorf("length %q: %w", f, ErrMalformed)
				}
				v.Lengths = append(v.Lengths, n)
			}
		case slices.Contains(allowed, f):
			v.Flags = append(v.Flags, f)
		default:
			return v, fmt.Errorf("flag %q for %s: %w", f, kind, ErrMalformed)
		}
	}
	return v, nil
}
