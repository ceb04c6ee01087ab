package naglasak

import (
	"fmt"
	"strings"
)

// AP is an accent paradigm code from the closed alphabet below.
type AP uint8

const (
	APa     AP = 1 + iota // a
	APaLong               // a:
	APb                   // b.
	APbLong               // b:
	APb0                  // b0
	APc                   // c.
	APcLong               // c:
	APcVar                // c?
	APd                   // d:
	APe                   // e:
	APf                   // f.
	APg                   // g.
	APgLong               // g:
	APq                   // q.
	APo                   // o
	APoLong               // o:
	apEnd
)

var apCodes = [apEnd]string{
	APa:     "a",
	APaLong: "a:",
	APb:     "b.",
	APbLong: "b:",
	APb0:    "b0",
	APc:     "c.",
	APcLong: "c:",
	APcVar:  "c?",
	APd:     "d:",
	APe:     "e:",
	APf:     "f.",
	APg:     "g.",
	APgLong: "g:",
	APq:     "q.",
	APo:     "o",
	APoLong: "o:",
}

func (a AP) String() string {
	if a == 0 || a >= apEnd {
		return "?"
	}
	return apCodes[a]
}

// APClass groups codes by mobility behaviour.
type APClass uint8

const (
	ClassA APClass = 1 + iota // fixed stress on the stem
	ClassB                    // b-, e- and q-like: stress on the ending
	ClassC                    // c- and d-like: mobile
	ClassF
	ClassG
	ClassO // enclinomena: no inherent stress
)

// Class returns the mobility class of a. Every code maps to exactly one class.
func (a AP) Class() APClass {
	switch a {
	case APa, APaLong:
		return ClassA
	case APb, APbLong, APb0, APe, APq:
		return ClassB
	case APc, APcLong, APcVar, APd:
		return ClassC
	case APf:
		return ClassF
	case APg, APgLong:
		return ClassG
	case APo, APoLong:
		return ClassO
	}
	return 0
}

// Long reports whether the code carries the length marker (':').
func (a AP) Long() bool {
	return strings.HasSuffix(a.String(), ":")
}

// Short reports whether the code carries the shortness marker ('.').
func (a AP) Short() bool {
	return strings.HasSuffix(a.String(), ".")
}

// keepsLength lists the codes whose stems keep their length before a
// right-bracketed ending.
func (a AP) keepsLength() bool {
	return a == APaLong || a == APbLong
}

// ParseAP parses a single code.
func ParseAP(s string) (AP, error) {
	s = strings.TrimSpace(s)
	for a := APa; a < apEnd; a++ {
		if apCodes[a] == s {
			return a, nil
		}
	}
	return 0, fmt.Errorf("accent paradigm %q: %w", s, ErrUnimplementedParadigm)
}

// APSet is a set of accent paradigm codes.
type APSet uint32

// ParseAPSet parses concatenated codes such as "b.b:c?d:", taking the
// longest matching code at each position.
func ParseAPSet(s string) (APSet, error) {
	var set APSet
	for rest := s; rest != ""; {
		matched := AP(0)
		for a := APa; a < apEnd; a++ {
			code := apCodes[a]
			if strings.HasPrefix(rest, code) && (matched == 0 || len(code) > len(apCodes[matched])) {
				matched = a
			}
		}
		if matched == 0 {
			return 0, fmt.Errorf("accent set %q at %q: %w", s, rest, ErrMalformed)
		}
		set |= 1 << matched
		rest = rest[len(apCodes[matched]):]
	}
	return set, nil
}

// Has reports whether a is in the set.
func (s APSet) Has(a AP) bool {
	return a != 0 && s&(1<<a) != 0
}

func (s APSet) String() string {
	var b strings.Builder
	for a := APa; a < apEnd; a++ {
		if s.Has(a) {
			b.WriteString(apCodes[a])
		}
	}
	return b.String()
}
