package naglasak

import "errors"

var (
	// ErrUnimplementedParadigm is returned at construction time for an
	// accent paradigm, declension class or kind the engine has no rules for.
	ErrUnimplementedParadigm = errors.New("unimplemented paradigm")

	// ErrNoAccentHost is returned when the genitive-plural retraction
	// fallback must move an accent to a previous vowel that does not exist.
	ErrNoAccentHost = errors.New("no vowel to host the retracted accent")

	// ErrMalformed reports an unparsable grammar descriptor or notation.
	ErrMalformed = errors.New("malformed input")

	// ErrNotFound is returned by lexicon lookups for unknown keys.
	ErrNotFound = errors.New("not found")
)
