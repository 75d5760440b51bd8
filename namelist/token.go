package namelist

import "strconv"

// NameTok is the kind of a token in a name list.
type NameTok int

const (
	// Illegal is the zero value. The scanner never returns it.
	Illegal NameTok = iota
	EOF
	Comma // ,
	And   // name separator: "and" in any case, or ;
	Word  // Foo, {van der Bergen}, Fran{\c{c}}oise
)

var tokens = [...]string{
	Illegal: "Illegal",
	EOF:     "EOF",
	Comma:   "Comma",
	And:     "And",
	Word:    "Word",
}

func (tok NameTok) String() string {
	s := ""
	if 0 <= tok && tok < NameTok(len(tokens)) {
		s = tokens[tok]
	}
	if s == "" {
		s = "nameTok(" + strconv.Itoa(int(tok)) + ")"
	}
	return s
}

// word is a single Word token of a name list. The text is a substring of the
// scanned source.
type word struct {
	text    string
	abbrEnd int  // text[:abbrEnd] is the part used for initials
	term    byte // ' ' or '-', the separator following the word
	upper   bool // the word counts as capitalized
}

func (w word) abbr() string { return w.text[:w.abbrEnd] }
