package bibtex

import "strings"

const authorSep = " and "

// Natbib returns the list in natbib citation style: "Knuth", "Knuth and
// Plass", or "Knuth et al." for three or more authors.
func (l AuthorList) Natbib() string {
	switch {
	case len(l) == 0:
		return ""
	case len(l) == 1:
		return l[0].LastOnly()
	case len(l) == 2 && !l[1].IsOthers():
		return l[0].LastOnly() + authorSep + l[1].LastOnly()
	default:
		return l[0].LastOnly() + " et al."
	}
}

// LastNames returns the von and last parts of each author as an English
// list: "Knuth, Plass and Lamport". With oxford set, a comma precedes the
// final "and" when there are three or more authors.
func (l AuthorList) LastNames(oxford bool) string {
	return l.join(oxford, Author.LastOnly)
}

// LastFirstNames returns the authors in "von Last, Jr, First" form as an
// English list: "Knuth, Donald and Plass, Michael".
func (l AuthorList) LastFirstNames(abbr, oxford bool) string {
	return l.join(oxford, func(a Author) string { return a.LastFirst(abbr) })
}

// FirstLastNames returns the authors in "First von Last, Jr" form as an
// English list: "Donald Knuth, Michael Plass and Leslie Lamport".
func (l AuthorList) FirstLastNames(abbr, oxford bool) string {
	return l.join(oxford, func(a Author) string { return a.FirstLast(abbr) })
}

// LastFirstNamesWithAnd returns the authors in "von Last, Jr, First" form
// separated by "and", which is how bibtex expects an author field.
func (l AuthorList) LastFirstNamesWithAnd(abbr bool) string {
	return l.joinAnd(func(a Author) string { return a.LastFirst(abbr) })
}

// FirstLastNamesWithAnd returns the authors in "First von Last, Jr" form
// separated by "and".
func (l AuthorList) FirstLastNamesWithAnd(abbr bool) string {
	return l.joinAnd(func(a Author) string { return a.FirstLast(abbr) })
}

// ForAlphabetization returns the alphabetization key of each author
// separated by "and".
func (l AuthorList) ForAlphabetization() string {
	return l.joinAnd(Author.NameForAlphabetization)
}

// LatexFree returns a copy of the list with TeX markup rendered as plain text
// in every author.
func (l AuthorList) LatexFree() AuthorList {
	out := make(AuthorList, len(l))
	for i, a := range l {
		out[i] = a.LatexFree()
	}
	return out
}

func (l AuthorList) String() string {
	return l.FirstLastNamesWithAnd(false)
}

func (l AuthorList) joinAnd(format func(Author) string) string {
	names := make([]string, len(l))
	for i, a := range l {
		names[i] = format(a)
	}
	return strings.Join(names, authorSep)
}

func (l AuthorList) join(oxford bool, format func(Author) string) string {
	if len(l) == 0 {
		return ""
	}
	sb := strings.Builder{}
	sb.Grow(32 * len(l))
	for i, a := range l {
		switch {
		case i == 0:
		case i < len(l)-1:
			sb.WriteString(", ")
		case oxford && len(l) > 2:
			sb.WriteString("," + authorSep)
		default:
			sb.WriteString(authorSep)
		}
		sb.WriteString(format(a))
	}
	return sb.String()
}
