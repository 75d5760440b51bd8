// Package render renders the TeX markup found in bibtex name parts as plain
// Unicode text.
package render

import (
	"strings"

	"github.com/bibkit/bibtex/token"
)

// LatexFree renders the TeX in s as plain text: accents and letter commands
// become Unicode letters, escaped characters lose their backslash, ties
// become spaces and grouping braces are dropped. Unknown commands are
// dropped while their arguments are kept as text.
func LatexFree(s string) string {
	if !strings.ContainsAny(s, `\{}~`) {
		return s
	}
	r := &texReader{src: []rune(s)}
	sb := &strings.Builder{}
	sb.Grow(len(s))
	r.render(sb)
	return sb.String()
}

type texReader struct {
	src []rune
	pos int
}

func isASCIILetter(ch rune) bool {
	return 'a' <= ch && ch <= 'z' || 'A' <= ch && ch <= 'Z'
}

func (r *texReader) render(sb *strings.Builder) {
	for r.pos < len(r.src) {
		ch := r.src[r.pos]
		r.pos++
		switch ch {
		case '{', '}':
		case '~':
			sb.WriteByte(' ')
		case '\\':
			r.command(sb)
		default:
			sb.WriteRune(ch)
		}
	}
}

// readCommand reads a command name after a backslash: either a run of ASCII
// letters or a single other character.
func (r *texReader) readCommand() string {
	if r.pos >= len(r.src) {
		return ""
	}
	start := r.pos
	if !isASCIILetter(r.src[r.pos]) {
		r.pos++
		return string(r.src[start:r.pos])
	}
	for r.pos < len(r.src) && isASCIILetter(r.src[r.pos]) {
		r.pos++
	}
	return string(r.src[start:r.pos])
}

func (r *texReader) skipSpaces() {
	for r.pos < len(r.src) && (r.src[r.pos] == ' ' || r.src[r.pos] == '\t') {
		r.pos++
	}
}

func (r *texReader) command(sb *strings.Builder) {
	cmd := r.readCommand()
	if cmd == "" {
		return
	}
	if acc, ok := token.LookupAccent(cmd); ok {
		sb.WriteString(accented(acc, r.readArg(acc.IsLetterAccent())))
		return
	}
	if !isASCIILetter([]rune(cmd)[0]) {
		// Escaped character like \& or \{.
		sb.WriteString(cmd)
		return
	}
	r.skipSpaces()
	if l, ok := token.LetterCommand(cmd); ok {
		sb.WriteString(l)
		return
	}
	// Letter accent run together with its argument, like \cc.
	if rs := []rune(cmd); len(rs) == 2 {
		if acc, ok := token.LookupAccent(string(rs[0])); ok {
			sb.WriteString(accented(acc, string(rs[1])))
			return
		}
	}
}

// readArg reads the argument of an accent: a brace group, a command or a
// single character.
func (r *texReader) readArg(letterAccent bool) string {
	if letterAccent {
		r.skipSpaces()
	}
	if r.pos >= len(r.src) {
		return ""
	}
	switch ch := r.src[r.pos]; ch {
	case '{':
		start := r.pos + 1
		depth := 0
		for r.pos < len(r.src) {
			switch r.src[r.pos] {
			case '{':
				depth++
			case '}':
				depth--
			}
			r.pos++
			if depth == 0 {
				return LatexFree(string(r.src[start : r.pos-1]))
			}
		}
		return LatexFree(string(r.src[start:]))
	case '\\':
		r.pos++
		return LatexFree(`\` + r.readCommand())
	default:
		r.pos++
		return string(ch)
	}
}

// accented applies an accent to base, falling back to the bare base when no
// accented form exists.
func accented(acc token.Accent, base string) string {
	switch base {
	case "ı":
		base = "i"
	case "ȷ":
		base = "j"
	case "":
		return ""
	}
	r, err := RenderAccent(acc, base)
	if err != nil {
		return base
	}
	return string(r)
}
