package naglasak

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseGramInfo(t *testing.T) {
	g, err := ParseGramInfo("c: r=1 v=1 m in +; a r=2 m in", KindNoun)
	require.NoError(t, err)
	require.Len(t, g.Variants, 2)

	v := g.Variants[0]
	assert.Equal(t, APcLong, v.AP)
	assert.Equal(t, APcLong, v.Short)
	assert.Equal(t, 1, v.Stress)
	assert.Equal(t, []int{1}, v.Lengths)
	assert.True(t, v.Has("m"))
	assert.True(t, v.Has("+"))
	assert.False(t, v.Has("an"))

	assert.Equal(t, []AP{APcLong, APa}, g.APs())
	assert.Equal(t, 2, g.Variants[1].Stress)
}

func TestParseGramInfoAdjectivePair(t *testing.T) {
	g, err := ParseGramInfo("a/c: r=1 all", KindAdjective)
	require.NoError(t, err)
	v := g.Variants[0]
	assert.Equal(t, APa, v.Short)
	assert.Equal(t, APcLong, v.AP)
	assert.True(t, g.LengthInconstant(0))

	g, err = ParseGramInfo("a/a r=1 all", KindAdjective)
	require.NoError(t, err)
	assert.False(t, g.LengthInconstant(0))
}

func TestParseGramInfoErrors(t *testing.T) {
	tests := []struct {
		name string
		info string
		kind Kind
		want error
	}{
		{"empty", "  ; ", KindNoun, ErrMalformed},
		{"unknown flag", "a m zz", KindNoun, ErrMalformed},
		{"adjective flag on noun", "a m all", KindNoun, ErrMalformed},
		{"pair on noun", "a/b. m", KindNoun, ErrMalformed},
		{"bad stress", "a r=x m", KindNoun, ErrMalformed},
		{"bad length", "a v=0 m", KindNoun, ErrMalformed},
		{"unknown code", "h: m", KindNoun, ErrUnimplementedParadigm},
		{"unknown kind", "a m", Kind(9), ErrUnimplementedParadigm},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := ParseGramInfo(tt.info, tt.kind)
			assert.ErrorIs(t, err, tt.want)
		})
	}
}

func TestParseKind(t *testing.T) {
	k, err := ParseKind("Noun")
	require.NoError(t, err)
	assert.Equal(t, KindNoun, k)

	k, err = ParseKind("adj")
	require.NoError(t, err)
	assert.Equal(t, KindAdjective, k)

	_, err = ParseKind("verb")
	assert.ErrorIs(t, err, ErrUnimplementedParadigm)

	var u Kind
	require.NoError(t, u.UnmarshalText([]byte("adjective")))
	b, err := u.MarshalText()
	require.NoError(t, err)
	assert.Equal(t, "adjective", string(b))
}
