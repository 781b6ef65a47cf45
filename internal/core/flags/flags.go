// Package flags canonicalizes the regex flags picked by the user.
package flags

import "strings"

// Flag is a single recognized regex flag letter.
type Flag byte

const (
	Global          Flag = 'g'
	Multiline       Flag = 'm'
	CaseInsensitive Flag = 'i'
)

// canonical is the fixed order flags are emitted in.
var canonical = [...]Flag{Global, Multiline, CaseInsensitive}

func (f Flag) String() string {
	return string(f)
}

// Name returns a human readable name for the flag.
func (f Flag) Name() string {
	switch f {
	case Global:
		return "global"
	case Multiline:
		return "multiline"
	case CaseInsensitive:
		return "insensitive"
	}
	return "unknown"
}

// Set is an ordered set of recognized flags. The zero value is the empty set.
type Set struct {
	bits uint8
}

func bit(f Flag) uint8 {
	for i, c := range canonical {
		if c == f {
			return 1 << i
		}
	}
	return 0
}

// Normalize keeps only the recognized flags in requested, each at most once.
// Unknown characters are dropped silently.
func Normalize(requested string) Set {
	var s Set
	for i := 0; i < len(requested); i++ {
		s.bits |= bit(Flag(requested[i]))
	}
	return s
}

// Of builds a set from individual flags.
func Of(fs ...Flag) Set {
	var s Set
	for _, f := range fs {
		s.bits |= bit(f)
	}
	return s
}

// Has reports whether f is in the set.
func (s Set) Has(f Flag) bool {
	b := bit(f)
	return b != 0 && s.bits&b != 0
}

// With returns a copy of s with f added.
func (s Set) With(f Flag) Set {
	s.bits |= bit(f)
	return s
}

// Toggle returns a copy of s with f flipped.
func (s Set) Toggle(f Flag) Set {
	s.bits ^= bit(f)
	return s
}

// IsEmpty reports whether no flag is set.
func (s Set) IsEmpty() bool {
	return s.bits == 0
}

// Flags lists the set members in canonical order.
func (s Set) Flags() []Flag {
	out := make([]Flag, 0, len(canonical))
	for _, f := range canonical {
		if s.Has(f) {
			out = append(out, f)
		}
	}
	return out
}

// String returns the matcher flag string, e.g. "gmi", "g" or "".
func (s Set) String() string {
	var b strings.Builder
	for _, f := range s.Flags() {
		b.WriteByte(byte(f))
	}
	return b.String()
}
