package bibtex

import (
	"strings"

	"github.com/bibkit/bibtex/render"
)

// FirstAbbr returns the given names reduced to initials, like "J.-P." for
// "Jean-Paul". When the parser read a trailing run of capitals as initials,
// like "SH" in "Smith SH", the initials are returned as written.
func (a Author) FirstAbbr() string { return a.firstAbbr }

// IsEmpty reports whether all parts of the author are absent.
func (a Author) IsEmpty() bool {
	return a.First == "" && a.Von == "" && a.Last == "" && a.Jr == ""
}

// IsOthers reports whether the author stands for "and others".
func (a Author) IsOthers() bool {
	return a.First == "" && a.Von == "" && a.Jr == "" && a.Last == Others.Last
}

func (a Author) first(abbr bool) string {
	if abbr {
		return a.firstAbbr
	}
	return a.First
}

// LastOnly returns the von and last parts: "van Beethoven".
func (a Author) LastOnly() string {
	return joinNonEmpty(" ", a.Von, a.Last)
}

// LastFirst returns the name in bibtex's comma form: "van Beethoven, Jr, L.".
func (a Author) LastFirst(abbr bool) string {
	return joinNonEmpty(", ", a.LastOnly(), a.Jr, a.first(abbr))
}

// FirstLast returns the name in reading order: "Ludwig van Beethoven, Jr".
func (a Author) FirstLast(abbr bool) string {
	return joinNonEmpty(", ", joinNonEmpty(" ", a.first(abbr), a.LastOnly()), a.Jr)
}

// NameForAlphabetization returns the key used to sort authors:
// "Beethoven, Jr, L.". The von part is ignored and leading braces are dropped.
func (a Author) NameForAlphabetization() string {
	return strings.TrimLeft(joinNonEmpty(", ", a.Last, a.Jr, a.firstAbbr), "{")
}

// LatexFree returns a copy of the author with TeX markup in every part
// rendered as plain text.
func (a Author) LatexFree() Author {
	return Author{
		First:     render.LatexFree(a.First),
		Von:       render.LatexFree(a.Von),
		Last:      render.LatexFree(a.Last),
		Jr:        render.LatexFree(a.Jr),
		firstAbbr: render.LatexFree(a.firstAbbr),
	}
}

func (a Author) String() string {
	return a.FirstLast(false)
}

// Compare orders authors by their alphabetization key, then by the full name.
// It returns -1, 0 or +1 like strings.Compare.
func Compare(a, b Author) int {
	if c := strings.Compare(a.NameForAlphabetization(), b.NameForAlphabetization()); c != 0 {
		return c
	}
	return strings.Compare(a.FirstLast(false), b.FirstLast(false))
}

func joinNonEmpty(sep string, parts ...string) string {
	sb := strings.Builder{}
	sb.Grow(32)
	for _, p := range parts {
		if p == "" {
			continue
		}
		if sb.Len() > 0 {
			sb.WriteString(sep)
		}
		sb.WriteString(p)
	}
	return sb.String()
}

// trimBraces removes a pair of braces enclosing all of s, as in
// "{van den Bergen}". Braces that only start and end s, as in "{A}bc{D}",
// are kept.
func trimBraces(s string) string {
	if len(s) < 2 || s[0] != '{' || s[len(s)-1] != '}' {
		return s
	}
	inner := s[1 : len(s)-1]
	depth := 0
	for i := 0; i < len(inner); i++ {
		switch inner[i] {
		case '{':
			depth++
		case '}':
			depth--
			if depth < 0 {
				return s
			}
		}
	}
	if depth != 0 {
		return s
	}
	return inner
}
