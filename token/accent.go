// Package token defines the TeX vocabulary that appears inside bibtex name
// fields: accent markers and the commands that stand for a single letter.
package token

// Accent is the marker rune of a LaTeX accent.
type Accent rune

const (
	AccentAcute       Accent = '\''
	AccentBreve       Accent = 'u'
	AccentCaron       Accent = 'v'
	AccentCedilla     Accent = 'c'
	AccentCircumflex  Accent = '^'
	AccentDot         Accent = '.'
	AccentDoubleAcute Accent = 'H'
	AccentGrave       Accent = '`'
	AccentMacron      Accent = '='
	AccentOgonek      Accent = 'k'
	AccentRing        Accent = 'r'
	AccentTilde       Accent = '~'
	AccentUmlaut      Accent = '"'
)

var accents = map[rune]Accent{
	'\'': AccentAcute,
	'u':  AccentBreve,
	'v':  AccentCaron,
	'c':  AccentCedilla,
	'^':  AccentCircumflex,
	'.':  AccentDot,
	'H':  AccentDoubleAcute,
	'`':  AccentGrave,
	'=':  AccentMacron,
	'k':  AccentOgonek,
	'r':  AccentRing,
	'~':  AccentTilde,
	'"':  AccentUmlaut,
}

// LookupAccent returns the accent for the command name following a
// backslash, like `'` for \' or "v" for \v.
func LookupAccent(cmd string) (Accent, bool) {
	r := []rune(cmd)
	if len(r) != 1 {
		return 0, false
	}
	a, ok := accents[r[0]]
	return a, ok
}

// IsLetterAccent reports whether the accent is written with a letter command,
// like \c or \v. Letter commands may be separated from their argument by
// whitespace: "\c c".
func (a Accent) IsLetterAccent() bool {
	return 'a' <= a && a <= 'z' || 'A' <= a && a <= 'Z'
}
