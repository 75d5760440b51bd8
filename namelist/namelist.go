package namelist

import "strings"

// Name is a single name split into its bibtex parts. Parts keep their source
// text, including braces and TeX commands. An empty string means the part is
// absent.
type Name struct {
	First     string // given names
	FirstAbbr string // given names reduced to initials, like "J.-P."
	Von       string // lower-case particle, like "van der"
	Last      string // family name
	Jr        string // generational suffix, like "Jr" or "III"
}

// Split splits a name list into names in order of appearance. Empty names,
// like the one between "and and", are skipped.
func Split(list string) []Name {
	list = normalizeCommaList(strings.TrimSpace(list))

	var s scanner
	s.init(list)
	names := make([]Name, 0, 4)
	for {
		nm, ok, more := nextName(&s)
		if ok {
			names = append(names, nm)
		}
		if !more {
			return names
		}
	}
}

// nextName reads tokens up to the next name separator. It reports whether
// the name had any words and whether more tokens may follow.
func nextName(s *scanner) (nm Name, ok bool, more bool) {
	sg := newSegmenter()
	for {
		tok, w := s.scan()
		switch tok {
		case EOF:
			if len(sg.words) == 0 {
				return Name{}, false, false
			}
			return sg.name(), true, false
		case And:
			if len(sg.words) == 0 {
				return Name{}, false, true
			}
			return sg.name(), true, true
		case Comma:
			sg.comma()
		case Word:
			sg.word(w)
		}
	}
}

// Initials returns the given names in s reduced to initials, keeping hyphens:
// "Jean-Paul" becomes "J.-P." and "Hans Peter" becomes "H. P.".
func Initials(given string) string {
	var s scanner
	s.init(given)
	sg := newSegmenter()
	for {
		tok, w := s.scan()
		if tok == EOF {
			break
		}
		if tok == Word {
			sg.words = append(sg.words, w)
		}
	}
	return sg.concat(span{0, len(sg.words)}, true)
}
