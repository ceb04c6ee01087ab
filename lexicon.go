package naglasak

import (
	"fmt"
	"slices"
	"strconv"
	"strings"
	"unicode"
)

// Entry is one lexicon record.
type Entry struct {
	// Key is the orthographic headword used for lookup.
	Key string `json:"key"`
	// Homonym disambiguates entries sharing a key ("коса 2"); 0 if absent.
	Homonym int `json:"homonym,omitempty"`
	// Info is the grammar descriptor.
	Info string `json:"info"`
	Kind Kind   `json:"kind"`
	// Translation is an optional gloss.
	Translation  string              `json:"translation,omitempty"`
	Replacements map[string][]string `json:"replacements,omitempty"`
	Amendments   map[string][]string `json:"amendments,omitempty"`
}

// FullKey is the key with its disambiguator, as written in the lexicon.
func (e Entry) FullKey() string {
	if e.Homonym == 0 {
		return e.Key
	}
	return e.Key + " " + strconv.Itoa(e.Homonym)
}

// Irregulars returns the listed forms of the entry.
func (e Entry) Irregulars() Irregulars {
	return Irregulars{Replacements: e.Replacements, Amendments: e.Amendments}
}

// Declinable builds the lexeme of the entry with its irregulars attached.
func (e Entry) Declinable() (Declinable, error) {
	d, err := New(e.Key, e.Info, e.Kind)
	if err != nil {
		return nil, err
	}
	d.SetIrregulars(e.Irregulars())
	return d, nil
}

// Store is a read-only lexicon keyed by headword. Implementations are
// loaded once and safe for concurrent reads.
type Store interface {
	// Get returns every entry of key in lexicon order, or ErrNotFound.
	Get(key string) ([]Entry, error)
	// Keys returns the distinct headwords in sorted order.
	Keys() []string
}

// splitKey strips a trailing homonym number from a full key. Multi-word
// keys keep their inner spaces.
func splitKey(full string) (string, int) {
	full = strings.TrimSpace(full)
	i := strings.LastIndexByte(full, ' ')
	if i < 0 {
		return full, 0
	}
	key, num := strings.TrimSpace(full[:i]), full[i+1:]
	if num == "" || !unicode.IsDigit([]rune(num)[0]) {
		return full, 0
	}
	n, err := strconv.Atoi(num)
	if err != nil || n < 1 {
		return full, 0
	}
	return key, n
}

// memStore holds a lexicon in memory.
type memStore struct {
	entries map[string][]Entry
	keys    []string
}

func newMemStore(entries []Entry) *memStore {
	s := &memStore{entries: make(map[string][]Entry)}
	for _, e := range entries {
		if _, ok := s.entries[e.Key]; !ok {
			s.keys = append(s.keys, e.Key)
		}
		s.entries[e.Key] = append(s.entries[e.Key], e)
	}
	slices.Sort(s.keys)
	return s
}

func (s *memStore) Get(key string) ([]Entry, error) {
	es, ok := s.entries[strings.TrimSpace(key)]
	if !ok {
		return nil, fmt.Errorf("%q: %w", key, ErrNotFound)
	}
	return slices.Clone(es), nil
}

func (s *memStore) Keys() []string { return slices.Clone(s.keys) }

// NewStore wraps entries that were built in code.
func NewStore(entries ...Entry) Store { return newMemStore(entries) }
