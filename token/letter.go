package token

import "unicode"

// letters maps TeX commands that typeset a single letter to the letter.
// The first character of the command name gives the case of the letter.
var letters = map[string]rune{
	"aa": 'å', "AA": 'Å',
	"ae": 'æ', "AE": 'Æ',
	"l": 'ł', "L": 'Ł',
	"o": 'ø', "O": 'Ø',
	"oe": 'œ', "OE": 'Œ',
	"i": 'ı',
	"j": 'ȷ',
}

// extraLetters are rendered but don't count as a name's first letter.
var extraLetters = map[string]string{
	"ss": "ß",
	"SS": "SS",
}

// IsLetterCommand reports whether cmd, without the backslash, names a TeX
// command that stands for a single letter, like "aa" in `\aa`.
func IsLetterCommand(cmd string) bool {
	_, ok := letters[cmd]
	return ok
}

// LetterCommandIsUpper reports whether the letter command cmd produces an
// upper-case letter. It returns false for unknown commands.
func LetterCommandIsUpper(cmd string) bool {
	if !IsLetterCommand(cmd) {
		return false
	}
	return unicode.IsUpper([]rune(cmd)[0])
}

// LetterCommand returns the text typeset by a letter command like \o or \ss.
func LetterCommand(cmd string) (string, bool) {
	if r, ok := letters[cmd]; ok {
		return string(r), true
	}
	s, ok := extraLetters[cmd]
	return s, ok
}
