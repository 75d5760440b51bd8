// Package bibtex parses the author and editor fields of bibtex entries into
// lists of structured person names.
package bibtex

import (
	"slices"

	"github.com/bibkit/bibtex/namelist"
)

// Author represents a person who contributed to an entry.
//
// Bibtex recognizes three structures for authors:
// 1. First von Last - no commas
// 2. von Last, First - single comma
// 3. von Last, Jr, First - two commas
//
// An empty part means the part is absent. An Author is never entirely empty.
//
// Other parsing libraries:
// - https://metacpan.org/pod/distribution/Text-BibTeX/btparse/doc/bt_split_names.pod
// - https://nzhagen.github.io/bibulous/developer_guide.html#name-formatting
type Author struct {
	First string // aka given name
	Von   string // often called the 'prefix' part
	Last  string // aka family name
	Jr    string // often called the 'suffix' part

	firstAbbr string // given names as initials
}

// Others is the author bibtex uses for "and others".
var Others = Author{Last: "others"}

// NewAuthor returns an author with the given parts. The abbreviated first name
// is derived from first. Braces enclosing a whole part are removed.
func NewAuthor(first, von, last, jr string) Author {
	return fromName(namelist.Name{
		First:     first,
		FirstAbbr: namelist.Initials(first),
		Von:       von,
		Last:      last,
		Jr:        jr,
	})
}

func fromName(nm namelist.Name) Author {
	return Author{
		First:     trimBraces(nm.First),
		Von:       trimBraces(nm.Von),
		Last:      trimBraces(nm.Last),
		Jr:        trimBraces(nm.Jr),
		firstAbbr: trimBraces(nm.FirstAbbr),
	}
}

// AuthorList is an ordered list of authors as they appear in a name list.
// Duplicates are kept.
type AuthorList []Author

// Parse parses a bibtex name list, like the value of an author or editor
// field, into authors. Parse accepts any input: names are separated by "and"
// or ';' and malformed text results in a best-effort guess. An empty or blank
// list returns an empty AuthorList.
//
// Parse is safe for concurrent use.
func Parse(names string) AuthorList {
	split := namelist.Split(names)
	authors := make(AuthorList, 0, len(split))
	for _, nm := range split {
		a := fromName(nm)
		if a.IsEmpty() {
			continue
		}
		authors = append(authors, a)
	}
	return authors
}

// Equal reports whether both lists hold the same authors in the same order.
func (l AuthorList) Equal(other AuthorList) bool {
	return slices.Equal(l, other)
}
