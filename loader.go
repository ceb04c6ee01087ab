package naglasak

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"strings"

	"gopkg.in/yaml.v3"
)

// yamlRecord is the value of one lexicon key: i is the grammar descriptor
// and t the paradigm kind.
type yamlRecord struct {
	I            string              `yaml:"i"`
	T            string              `yaml:"t"`
	Tr           string              `yaml:"tr,omitempty"`
	Replacements map[string][]string `yaml:"replacements,omitempty"`
	Amendments   map[string][]string `yaml:"amendments,omitempty"`
}

// OpenStore loads a lexicon stored as yaml or sqlite.
func OpenStore(ctx context.Context, path, format string) (Store, error) {
	switch strings.ToLower(strings.TrimSpace(format)) {
	case "yaml", "yml":
		return LoadYAML(path)
	case "sqlite":
		return OpenSQLite(ctx, path)
	}
	return nil, fmt.Errorf("lexicon format %q: %w", format, ErrMalformed)
}

// LoadYAML reads a YAML lexicon from path.
func LoadYAML(path string) (Store, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open lexicon: %w", err)
	}
	defer f.Close()
	return ReadYAML(f)
}

// ReadYAML reads a YAML lexicon: a mapping from keys, optionally followed
// by a homonym number ("коса 2"), to records. Entries keep file order.
func ReadYAML(r io.Reader) (Store, error) {
	var doc yaml.Node
	if err := yaml.NewDecoder(r).Decode(&doc); err != nil {
		if errors.Is(err, io.EOF) {
			return newMemStore(nil), nil
		}
		return nil, fmt.Errorf("decode lexicon: %w", err)
	}
	entries, err := yamlEntries(&doc)
	if err != nil {
		return nil, err
	}
	return newMemStore(entries), nil
}

func yamlEntries(doc *yaml.Node) ([]Entry, error) {
	root := doc
	if root.Kind == yaml.DocumentNode && len(root.Content) > 0 {
		root = root.Content[0]
	}
	if root.Kind != yaml.MappingNode {
		return nil, fmt.Errorf("lexicon root is not a mapping: %w", ErrMalformed)
	}

	entries := make([]Entry, 0, len(root.Content)/2)
	for i := 0; i+1 < len(root.Content); i += 2 {
		full := root.Content[i].Value
		var rec yamlRecord
		if err := root.Content[i+1].Decode(&rec); err != nil {
			return nil, fmt.Errorf("entry %q (line %d): %w", full, root.Content[i].Line, err)
		}
		e, err := rec.entry(full)
		if err != nil {
			return nil, fmt.Errorf("entry %q (line %d): %w", full, root.Content[i].Line, err)
		}
		entries = append(entries, e)
	}
	return entries, nil
}

func (rec yamlRecord) entry(full string) (Entry, error) {
	if rec.I == "" {
		return Entry{}, fmt.Errorf("missing descriptor: %w", ErrMalformed)
	}
	kind, err := ParseKind(rec.T)
	if err != nil {
		return Entry{}, err
	}
	key, homonym := splitKey(full)
	return Entry{
		Key:          key,
		Homonym:      homonym,
		Info:         rec.I,
		Kind:         kind,
		Translation:  rec.Tr,
		Replacements: rec.Replacements,
		Amendments:   rec.Amendments,
	}, nil
}
