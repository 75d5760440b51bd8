// Package namelist splits bibtex name lists, like the value of an author or
// editor field, into the first, von, last and jr parts of each name.
//
// The grammar follows bibtex: names are separated by "and" or ';', a name is
// written "First von Last", "von Last, First" or "von Last, Jr, First", and
// the von part is told apart from the rest by the case of its first letter.
// Text in braces counts as capitalized.
//
// Splitting never fails. Irregular input yields a best-effort guess.
package namelist

import (
	"strings"
	"unicode"
	"unicode/utf8"

	"github.com/bibkit/bibtex/token"
)

// scanner tokenizes a single name list. A scanner holds all state for one
// pass over the source, so each call to Split uses its own.
type scanner struct {
	src      string
	ch       rune // current character, -1 at end of src
	offset   int  // character offset
	rdOffset int  // reading offset (position after current character)
}

const bom = 0xFEFF // byte order mark, only permitted as very first character

func (s *scanner) init(src string) {
	s.src = src
	s.ch = ' '
	s.offset = 0
	s.rdOffset = 0

	s.next()
	if s.ch == bom {
		s.next() // ignore BOM at the beginning
	}
}

func (s *scanner) next() {
	if s.rdOffset < len(s.src) {
		s.offset = s.rdOffset
		r, w := rune(s.src[s.rdOffset]), 1
		if r >= utf8.RuneSelf {
			// Invalid UTF-8 decodes to utf8.RuneError with width 1, which
			// the scanner treats like any other non-letter.
			r, w = utf8.DecodeRuneInString(s.src[s.rdOffset:])
		}
		s.rdOffset += w
		s.ch = r
	} else {
		s.offset = len(s.src)
		s.ch = -1
	}
}

// skipSeparators skips whitespace, ties (~) and hyphens between tokens.
func (s *scanner) skipSeparators() {
	for s.ch == '~' || s.ch == '-' || unicode.IsSpace(s.ch) {
		s.next()
	}
}

func isWordEnd(ch rune) bool {
	switch ch {
	case ',', ';', '~', '-':
		return true
	}
	return unicode.IsSpace(ch)
}

func isUpperStart(ch rune) bool {
	return unicode.IsUpper(ch) || unicode.Is(unicode.Han, ch)
}

// scan returns the next token. The word is only set for Word tokens.
func (s *scanner) scan() (NameTok, word) {
	s.skipSeparators()

	switch s.ch {
	case -1:
		return EOF, word{}
	case ',':
		s.next()
		return Comma, word{}
	case ';':
		s.next()
		return And, word{}
	}

	w := s.scanWord()
	if strings.EqualFold(w.text, "and") {
		return And, word{}
	}
	return Word, w
}

// scanWord scans a word up to the next separator outside of braces. The case
// of the word comes from its first letter outside a TeX command, or from a
// leading letter command like \o or \AA.
func (s *scanner) scanWord() word {
	offs := s.offset
	abbrEnd := -1
	upper := true
	depth := 0
	cmdStart := -1 // offset of the backslash of the TeX command being read
	foundLetter := false

	for s.ch >= 0 {
		ch := s.ch
		if ch == '{' {
			depth++
		}
		if foundLetter && abbrEnd < 0 && (depth == 0 || ch == '{') {
			abbrEnd = s.offset
		}
		if ch == '}' && depth > 0 {
			depth--
		}

		isLetter := unicode.IsLetter(ch)
		if !foundLetter && cmdStart < 0 && isLetter {
			// A particle in braces counts as capitalized so that
			// "{van den Bergen}, Hans" keeps "van den Bergen" as the last name.
			upper = depth > 0 || isUpperStart(ch)
			foundLetter = true
		}
		if cmdStart >= 0 && !isLetter {
			if cmd := s.src[cmdStart+1 : s.offset]; !foundLetter && token.IsLetterCommand(cmd) {
				upper = token.LetterCommandIsUpper(cmd)
				foundLetter = true
			}
			cmdStart = -1
		}
		if ch == '\\' {
			cmdStart = s.offset
		}

		if depth == 0 && isWordEnd(ch) {
			break
		}
		s.next()
	}

	end := s.offset
	if abbrEnd < 0 {
		abbrEnd = end
	}
	term := byte(' ')
	if s.ch == '-' {
		term = '-'
	}
	return word{
		text:    s.src[offs:end],
		abbrEnd: abbrEnd - offs,
		term:    term,
		upper:   upper,
	}
}
