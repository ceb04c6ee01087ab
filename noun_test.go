package naglasak

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewNounTrunks(t *testing.T) {
	tests := []struct {
		key, info string
		want      []string
	}{
		{"град", "c: r=1 v=1 m in", []string{"гра·̄д"}},
		{"жена", "b. f", []string{"же·н"}},
		{"нож", "a r=1 m in", []string{"но̍ж"}},
		{"вода", "o f", []string{"вод"}},
		{"коса", "c. f", []string{"ко·с"}},
		{"град", "c: r=1 v=1 m in; a r=1 m in", []string{"гра·̄д", "гра̍д"}},
	}
	for _, tt := range tests {
		t.Run(tt.info, func(t *testing.T) {
			n, err := NewNoun(tt.key, tt.info)
			require.NoError(t, err)
			trunks := n.Trunks()
			require.Len(t, trunks, len(n.Info().Variants))
			got := make([]string, len(trunks))
			for i, w := range trunks {
				got[i] = w.String()
			}
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestNewNounErrors(t *testing.T) {
	_, err := NewNoun("глава", "f. f")
	assert.ErrorIs(t, err, ErrUnimplementedParadigm)

	_, err = NewNoun("глава", "g: f")
	assert.ErrorIs(t, err, ErrUnimplementedParadigm)

	_, err = NewNoun("град", "a r=1")
	assert.ErrorIs(t, err, ErrMalformed, "gender is required")

	_, err = NewNoun("град", "a r=3 m")
	assert.ErrorIs(t, err, ErrMalformed)
}

func TestNounInfoIsCopied(t *testing.T) {
	n, err := NewNoun("град", "c: r=1 v=1 m in")
	require.NoError(t, err)

	g := n.Info()
	g.Variants[0].Flags[0] = "f"
	g.Variants[0].Lengths[0] = 9
	g.Variants[0].AP = APa

	again := n.Info()
	assert.Equal(t, []string{"m", "in"}, again.Variants[0].Flags)
	assert.Equal(t, []int{1}, again.Variants[0].Lengths)
	assert.Equal(t, APcLong, again.Variants[0].AP)
}

func TestVowellessTrunks(t *testing.T) {
	tests := []struct {
		key, info string
		kind      Kind
		cells     int
	}{
		{"ств", "b. m in", KindNoun, 14},
		{"ства", "c: f", KindNoun, 14},
		{"ств", "b./b: all", KindAdjective, len(shortAdj) + len(longAdj) + len(comparativeAdj)},
	}
	for _, tt := range tests {
		t.Run(tt.key+" "+tt.info, func(t *testing.T) {
			d, err := New(tt.key, tt.info, tt.kind)
			require.NoError(t, err)
			trunks := d.Trunks()
			require.Len(t, trunks, 1)
			assert.Negative(t, trunks[0].slotIndex())
			assert.Equal(t, "ств", trunks[0].letters())

			cells, err := d.Multiforms(Options{})
			require.NoError(t, err)
			assert.Len(t, cells, tt.cells)
		})
	}
}

func TestNounInstrumental(t *testing.T) {
	tests := []struct {
		key, info string
		want      []string
	}{
		{"нож", "a r=1 m in", []string{"ножем"}},
		{"град", "a r=1 m in", []string{"градом"}},
		{"мач", "a r=1 m in", []string{"мачем"}},
		{"пријатељ", "a r=2 m an", []string{"пријатељем", "пријатељом"}},
		{"кључ", "a r=1 m in", []string{"кључем"}},
	}
	for _, tt := range tests {
		t.Run(tt.key, func(t *testing.T) {
			n, err := NewNoun(tt.key, tt.info)
			require.NoError(t, err)
			var plain []string
			for _, f := range cellOf(t, n, Options{}, "sg ins") {
				plain = append(plain, Plain(f))
			}
			assert.Equal(t, tt.want, plain)
		})
	}
}

func TestNounMobileLongStem(t *testing.T) {
	n, err := NewNoun("град", "c: r=1 v=1 m in")
	require.NoError(t, err)

	assert.Equal(t, nfcAll("гра̑д"), cellOf(t, n, Options{}, "sg nom"))
	assert.Equal(t, nfcAll("гра́ду", "гра̑ду"), cellOf(t, n, Options{}, "sg loc"))
	assert.Equal(t, nfcAll("гра́да̄"), cellOf(t, n, Options{}, "pl gen"),
		"the unaccented long genitive is impossible on a monosyllabic mobile stem")
}

func TestNounFeminineA(t *testing.T) {
	n, err := NewNoun("жена", "b. f")
	require.NoError(t, err)
	assert.Equal(t, nfcAll("жѐна"), cellOf(t, n, Options{}, "sg nom"))
	assert.Equal(t, nfcAll("же́на̄"), cellOf(t, n, Options{}, "pl gen"))
}

func TestNounSibilarizedPlural(t *testing.T) {
	n, err := NewNoun("момък", "c: r=1 m an")
	require.NoError(t, err)
	assert.Equal(t, nfcAll("мо̏мци"), cellOf(t, n, Options{}, "pl nom"))
	assert.Equal(t, nfcAll("мо̏мка"), cellOf(t, n, Options{}, "sg acc"))
}

func TestNounFixedStemNominative(t *testing.T) {
	n, err := NewNoun("нож", "a r=1 m in")
	require.NoError(t, err)
	assert.Equal(t, nfcAll("но̏ж"), cellOf(t, n, Options{}, "sg nom"))
	assert.Equal(t, nfcAll("но̏ж"), cellOf(t, n, Options{}, "sg acc"), "inanimate accusative equals the nominative")
}

func TestNounLabelsOncePerVariant(t *testing.T) {
	n, err := NewNoun("град", "c: r=1 v=1 m in +; a r=1 m in")
	require.NoError(t, err)
	cells, err := n.Multiforms(Options{})
	require.NoError(t, err)
	require.Len(t, cells, 28)

	for v := 0; v < 2; v++ {
		seen := map[string]int{}
		for _, c := range cells {
			if c.Variant == v {
				seen[c.Label]++
			}
		}
		assert.Len(t, seen, 14)
		for label, count := range seen {
			assert.Equal(t, 1, count, "variant %d label %s", v, label)
		}
	}

	only, err := n.Multiforms(Options{Variant: VariantOption(1)})
	require.NoError(t, err)
	require.Len(t, only, 14)
	for _, c := range only {
		assert.Equal(t, 1, c.Variant)
	}

	_, err = n.Multiforms(Options{Variant: VariantOption(2)})
	assert.ErrorIs(t, err, ErrMalformed)
	_, err = n.Multiforms(Options{Variant: VariantOption(-1)})
	assert.ErrorIs(t, err, ErrMalformed)
}

func TestNounNoDuplicateForms(t *testing.T) {
	for _, info := range []string{"c: r=1 m an dr", "c? r=1 m in ±", "b. f", "a r=1 m in"} {
		n, err := NewNoun("момък", info)
		require.NoError(t, err)
		cells, err := n.Multiforms(Options{})
		require.NoError(t, err, info)
		for _, c := range cells {
			assert.NotEmpty(t, c.Forms, "%s %s", info, c.Label)
			seen := map[string]bool{}
			for _, f := range c.Forms {
				assert.False(t, seen[f], "%s %s: duplicate %q", info, c.Label, f)
				seen[f] = true
			}
		}
	}
}

func TestNounDeterministic(t *testing.T) {
	n, err := NewNoun("момък", "c: r=1 m an dr")
	require.NoError(t, err)
	opts := Options{Reflex: Ijekavian, Latin: true}
	first, err := n.Multiforms(opts)
	require.NoError(t, err)
	second, err := n.Multiforms(opts)
	require.NoError(t, err)
	assert.Equal(t, first, second)
}

func TestNounAugmentedPlural(t *testing.T) {
	n, err := NewNoun("град", "c: r=1 v=1 m in +")
	require.NoError(t, err)
	for _, f := range cellOf(t, n, Options{}, "pl nom") {
		assert.Equal(t, "градови", Plain(f))
	}

	opt, err := NewNoun("град", "c: r=1 v=1 m in ±")
	require.NoError(t, err)
	var plain []string
	for _, f := range cellOf(t, opt, Options{}, "pl nom") {
		plain = append(plain, Plain(f))
	}
	assert.Contains(t, plain, "градови")
	assert.Contains(t, plain, "гради")
}

func TestNounVocative(t *testing.T) {
	tests := []struct {
		key, info string
		want      []string
	}{
		{"бог", "a r=1 m an", []string{"боже"}},
		{"нож", "a r=1 m in", []string{"ножу"}},
		{"град", "a r=1 m in u", []string{"граду"}},
		{"град", "a r=1 m in ue", []string{"граду", "граде"}},
	}
	for _, tt := range tests {
		t.Run(tt.key+" "+tt.info, func(t *testing.T) {
			n, err := NewNoun(tt.key, tt.info)
			require.NoError(t, err)
			var plain []string
			for _, f := range cellOf(t, n, Options{}, "sg voc") {
				plain = append(plain, Plain(f))
			}
			assert.Equal(t, tt.want, plain)
		})
	}
}

func TestNounOptionalYer(t *testing.T) {
	n, err := NewNoun("лакЪт", "a r=1 m in")
	require.NoError(t, err)
	var nom []string
	for _, f := range cellOf(t, n, Options{}, "sg nom") {
		nom = append(nom, Plain(f))
	}
	assert.Equal(t, []string{"лакт", "лакат"}, nom)

	var gen []string
	for _, f := range cellOf(t, n, Options{}, "sg gen") {
		gen = append(gen, Plain(f))
	}
	assert.Equal(t, []string{"лакта"}, gen)
}

func TestNounReplacementsAndAmendments(t *testing.T) {
	n, err := NewNoun("човек", "a r=1 m an")
	require.NoError(t, err)
	n.SetIrregulars(Irregulars{
		Replacements: map[string][]string{"pl nom": {"љу̍ди"}},
		Amendments:   map[string][]string{"pl gen": {"љу̍дӣ"}},
	})

	assert.Equal(t, nfcAll("љу̏ди"), cellOf(t, n, Options{}, "pl nom"))

	gen := cellOf(t, n, Options{}, "pl gen")
	require.Greater(t, len(gen), 1)
	assert.Equal(t, nfc("љу̏дӣ"), gen[len(gen)-1])
	assert.Equal(t, "човека", Plain(gen[0]))
}

func TestNounLengthInconstancy(t *testing.T) {
	n, err := NewNoun("град", "c: r=1 m in")
	require.NoError(t, err)

	off := cellOf(t, n, Options{}, "sg gen")
	on := cellOf(t, n, Options{LengthInconstancy: true}, "sg gen")
	assert.Equal(t, nfcAll("гра̏да"), off)
	assert.Equal(t, nfcAll("гра̑да"), on)

	assert.Equal(t, cellOf(t, n, Options{}, "sg nom"), cellOf(t, n, Options{LengthInconstancy: true}, "sg nom"),
		"zero endings keep the headword length")
}
