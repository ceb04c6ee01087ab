package naglasak

import (
	"context"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const fixtureLexicon = "testdata/lexicon.yaml"

func loadFixture(t *testing.T) Store {
	t.Helper()
	s, err := LoadYAML(fixtureLexicon)
	require.NoError(t, err)
	return s
}

func TestLoadYAML(t *testing.T) {
	s := loadFixture(t)
	assert.Equal(t, []string{"глава", "град", "добър", "жена", "коса", "момък", "нож", "село", "човек"}, s.Keys())
	assert.Len(t, Entries(s), 10)

	es, err := s.Get("момък")
	require.NoError(t, err)
	require.Len(t, es, 1)
	assert.Equal(t, "c: r=1 m an", es[0].Info)
	assert.Equal(t, KindNoun, es[0].Kind)
	assert.Equal(t, "young man", es[0].Translation)

	es, err = s.Get("добър")
	require.NoError(t, err)
	assert.Equal(t, KindAdjective, es[0].Kind)
}

func TestLoadYAMLHomonyms(t *testing.T) {
	es, err := loadFixture(t).Get("коса")
	require.NoError(t, err)
	require.Len(t, es, 2)
	assert.Equal(t, "коса 1", es[0].FullKey())
	assert.Equal(t, "hair", es[0].Translation)
	assert.Equal(t, 2, es[1].Homonym)
	assert.Equal(t, "c. f", es[1].Info)
}

func TestLoadYAMLIrregulars(t *testing.T) {
	es, err := loadFixture(t).Get("човек")
	require.NoError(t, err)
	irr := es[0].Irregulars()
	assert.Equal(t, []string{"љу̍ди"}, irr.Replacements["pl nom"])
	assert.Len(t, irr.Amendments["pl gen"], 1)
}

func TestStoreGetUnknown(t *testing.T) {
	_, err := loadFixture(t).Get("непознат")
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestReadYAMLErrors(t *testing.T) {
	tests := []struct {
		name, doc string
		want      error
	}{
		{"sequence root", "- a\n- b\n", ErrMalformed},
		{"missing descriptor", "нож:\n  t: noun\n", ErrMalformed},
		{"unknown kind", "нож:\n  i: a m\n  t: verb\n", ErrUnimplementedParadigm},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := ReadYAML(strings.NewReader(tt.doc))
			assert.ErrorIs(t, err, tt.want)
		})
	}

	s, err := ReadYAML(strings.NewReader(""))
	require.NoError(t, err)
	assert.Empty(t, s.Keys())
}

func TestSplitKey(t *testing.T) {
	tests := []struct {
		full string
		key  string
		num  int
	}{
		{"коса 2", "коса", 2},
		{"коса", "коса", 0},
		{" нож ", "нож", 0},
		{"ла ку", "ла ку", 0},
		{"коса 0", "коса 0", 0},
		{"Нови Сад 2", "Нови Сад", 2},
		{"Нови Сад", "Нови Сад", 0},
	}
	for _, tt := range tests {
		key, num := splitKey(tt.full)
		assert.Equal(t, tt.key, key, tt.full)
		assert.Equal(t, tt.num, num, tt.full)
	}
}

func TestSQLiteRoundTrip(t *testing.T) {
	ctx := context.Background()
	src := loadFixture(t)
	path := filepath.Join(t.TempDir(), "lex", "lexicon.db")

	require.NoError(t, WriteSQLite(ctx, path, src))
	db, err := OpenSQLite(ctx, path)
	require.NoError(t, err)

	assert.Equal(t, src.Keys(), db.Keys())
	assert.Equal(t, Entries(src), Entries(db))

	// Writing again replaces rows instead of failing on the primary key.
	require.NoError(t, WriteSQLite(ctx, path, src))
	db, err = OpenSQLite(ctx, path)
	require.NoError(t, err)
	assert.Len(t, Entries(db), len(Entries(src)))
}

func TestOpenStore(t *testing.T) {
	ctx := context.Background()
	s, err := OpenStore(ctx, fixtureLexicon, "YAML")
	require.NoError(t, err)
	assert.NotEmpty(t, s.Keys())

	_, err = OpenStore(ctx, fixtureLexicon, "csv")
	assert.ErrorIs(t, err, ErrMalformed)

	_, err = OpenStore(ctx, filepath.Join(t.TempDir(), "missing.db"), "sqlite")
	assert.Error(t, err)
}

func TestNewStore(t *testing.T) {
	s := NewStore(
		Entry{Key: "нож", Info: "a r=1 m in", Kind: KindNoun},
		Entry{Key: "град", Info: "a r=1 m in", Kind: KindNoun},
	)
	assert.Equal(t, []string{"град", "нож"}, s.Keys())
}
