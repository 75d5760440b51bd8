package namelist

import (
	"strings"
	"unicode"
	"unicode/utf8"
)

type segState int

const (
	stateStart  segState = iota // no von part seen yet
	stateVon                    // inside the von part, waiting for a capitalized word
	stateLast                   // inside the last part that follows a von part
	stateComma1                 // after the first comma
	stateComma2                 // after the second comma
)

var segStateNames = [...]string{
	stateStart:  "Start",
	stateVon:    "InVon",
	stateLast:   "InLast",
	stateComma1: "AfterComma1",
	stateComma2: "AfterComma2",
}

func (s segState) String() string { return segStateNames[s] }

// segmenter collects the words of a single name and marks where the von part,
// the last part and the comma-separated sections begin. Marks are word
// indexes; -1 means absent.
type segmenter struct {
	state     segState
	words     []word
	vonStart  int
	lastStart int
	comma1    int
	comma2    int
}

func newSegmenter() *segmenter {
	return &segmenter{
		words:     make([]word, 0, 4),
		vonStart:  -1,
		lastStart: -1,
		comma1:    -1,
		comma2:    -1,
	}
}

func (sg *segmenter) comma() {
	switch sg.state {
	case stateStart, stateVon, stateLast:
		sg.comma1 = len(sg.words)
		sg.state = stateComma1
	case stateComma1:
		sg.comma2 = len(sg.words)
		sg.state = stateComma2
	}
}

func (sg *segmenter) word(w word) {
	idx := len(sg.words)
	sg.words = append(sg.words, w)

	switch sg.state {
	case stateStart:
		if w.upper || w.term == '-' {
			return
		}
		if idx > 0 && sg.words[idx-1].term == '-' {
			// Part of a hyphenated name like "Jean-paul".
			return
		}
		sg.vonStart = idx
		sg.state = stateVon
	case stateVon:
		if w.upper {
			sg.lastStart = idx
			sg.state = stateLast
		}
	}
}

// span is a half-open range of word indexes. An empty span is an absent part.
type span struct{ lo, hi int }

func (s span) empty() bool { return s.lo < 0 || s.lo >= s.hi }

var noSpan = span{-1, -1}

// parts computes the spans of the first, von, last and jr parts.
func (sg *segmenter) parts() (first, von, last, jr span) {
	n := len(sg.words)
	first, von, last, jr = noSpan, noSpan, noSpan, noSpan

	switch sg.state {
	case stateStart:
		// First Last: the last word is the last name, or the last two words
		// when joined by a hyphen.
		lo := n - 1
		if n >= 2 && sg.words[n-2].term == '-' {
			lo = n - 2
		}
		last = span{lo, n}
		first = span{0, lo}
	case stateVon:
		// First von: no capitalized word followed the von part.
		first = span{0, sg.vonStart}
		von = span{sg.vonStart, n}
	case stateLast:
		first = span{0, sg.vonStart}
		von = span{sg.vonStart, sg.lastStart}
		last = span{sg.lastStart, n}
	case stateComma1, stateComma2:
		first = span{sg.comma1, n}
		if sg.state == stateComma2 {
			first = span{sg.comma2, n}
			jr = span{sg.comma1, sg.comma2}
		}
		von, last = sg.beforeComma()
	}

	if first.empty() && last.empty() && !von.empty() {
		// A lone lower-case name like "unknown" is a last name.
		last, von = von, noSpan
	}
	return first, von, last, jr
}

// beforeComma splits the words before the first comma into von and last. A
// von part is only recognized at the start of the name. Without a capitalized
// word after it, like "de la fuente, Juan", the von part runs to the comma and
// the name has no last part.
func (sg *segmenter) beforeComma() (von, last span) {
	end := sg.comma1
	if sg.vonStart != 0 {
		return noSpan, span{0, end}
	}
	if sg.lastStart >= 0 {
		return span{0, sg.lastStart}, span{sg.lastStart, end}
	}
	return span{0, end}, noSpan
}

// concat joins the words of s, separating each word from the previous one
// with the previous word's terminator. If abbr is set, each word is reduced
// to its initials followed by a period.
func (sg *segmenter) concat(s span, abbr bool) string {
	if s.empty() {
		return ""
	}
	sb := strings.Builder{}
	sb.Grow(16)
	for i := s.lo; i < s.hi; i++ {
		w := sg.words[i]
		if i > s.lo {
			sb.WriteByte(sg.words[i-1].term)
		}
		if abbr {
			sb.WriteString(w.abbr())
			sb.WriteByte('.')
		} else {
			sb.WriteString(w.text)
		}
	}
	return sb.String()
}

// name builds the name from the collected words.
func (sg *segmenter) name() Name {
	first, von, last, jr := sg.parts()
	nm := Name{
		First:     sg.concat(first, false),
		FirstAbbr: sg.concat(first, true),
		Von:       sg.concat(von, false),
		Last:      sg.concat(last, false),
		Jr:        sg.concat(jr, false),
	}
	if looksLikeInitials(nm.Last) {
		// "Smith SH" is last name Smith with initials SH. A lone "ABC" becomes
		// initials with no last name.
		return Name{
			First:     nm.Last,
			FirstAbbr: nm.Last,
			Von:       nm.Von,
			Last:      nm.First,
			Jr:        nm.Jr,
		}
	}
	return nm
}

// looksLikeInitials reports whether a last name is more likely a run of
// initials: fewer than 5 runes, all upper case, and not starting with a Han
// character.
func looksLikeInitials(last string) bool {
	if last == "" || utf8.RuneCountInString(last) >= 5 {
		return false
	}
	if strings.ToUpper(last) != last {
		return false
	}
	r, _ := utf8.DecodeRuneInString(last)
	return !unicode.Is(unicode.Han, r)
}
