package render

import (
	"fmt"

	"github.com/bibkit/bibtex/token"
)

// Mapping of base characters to their accented versions
var accentMap = map[string]rune{
	// AccentGrave accent (`)
	"`a": 'à', "`e": 'è', "`i": 'ì', "`o": 'ò', "`u": 'ù',
	"`A": 'À', "`E": 'È', "`I": 'Ì', "`O": 'Ò', "`U": 'Ù',

	// AccentAcute accent (')
	"'a": 'á', "'e": 'é', "'i": 'í', "'o": 'ó', "'u": 'ú', "'y": 'ý',
	"'A": 'Á', "'E": 'É', "'I": 'Í', "'O": 'Ó', "'U": 'Ú', "'Y": 'Ý',
	"'c": 'ć', "'n": 'ń', "'s": 'ś', "'z": 'ź', "'l": 'ĺ',
	"'C": 'Ć', "'N": 'Ń', "'S": 'Ś', "'Z": 'Ź', "'L": 'Ĺ',

	// AccentCircumflex accent (^)
	"^a": 'â', "^e": 'ê', "^i": 'î', "^o": 'ô', "^u": 'û',
	"^A": 'Â', "^E": 'Ê', "^I": 'Î', "^O": 'Ô', "^U": 'Û',

	// AccentUmlaut/diaeresis (")
	`"a`: 'ä', `"e`: 'ë', `"i`: 'ï', `"o`: 'ö', `"u`: 'ü', `"y`: 'ÿ',
	`"A`: 'Ä', `"E`: 'Ë', `"I`: 'Ï', `"O`: 'Ö', `"U`: 'Ü', `"Y`: 'Ÿ',

	// AccentTilde (~)
	"~a": 'ã', "~n": 'ñ', "~o": 'õ',
	"~A": 'Ã', "~N": 'Ñ', "~O": 'Õ',

	// AccentCedilla (c)
	"cc": 'ç', "cC": 'Ç', "cs": 'ş', "cS": 'Ş',

	// AccentDot (.)
	".c": 'ċ', ".e": 'ė', ".g": 'ġ', ".i": 'ı', ".z": 'ż',
	".C": 'Ċ', ".E": 'Ė', ".G": 'Ġ', ".I": 'İ', ".Z": 'Ż',

	// AccentCaron (v)
	"vc": 'č', "vd": 'ď', "ve": 'ě', "vn": 'ň', "vr": 'ř', "vs": 'š', "vt": 'ť', "vz": 'ž',
	"vC": 'Č', "vD": 'Ď', "vE": 'Ě', "vN": 'Ň', "vR": 'Ř', "vS": 'Š', "vT": 'Ť', "vZ": 'Ž',

	// AccentRing (r)
	"ra": 'å', "ru": 'ů',
	"rA": 'Å', "rU": 'Ů',

	// AccentOgonek (k)
	"ka": 'ą', "ke": 'ę',
	"kA": 'Ą', "kE": 'Ę',

	// AccentBreve (u)
	"ua": 'ă', "ug": 'ğ',
	"uA": 'Ă', "uG": 'Ğ',

	// AccentDoubleAcute (H)
	"Ho": 'ő', "Hu": 'ű',
	"HO": 'Ő', "HU": 'Ű',

	// AccentMacron (=)
	"=a": 'ā', "=e": 'ē', "=i": 'ī', "=o": 'ō', "=u": 'ū',
	"=A": 'Ā', "=E": 'Ē', "=I": 'Ī', "=O": 'Ō', "=U": 'Ū',
}

// RenderAccent renders an accented character.
func RenderAccent(accent token.Accent, text string) (rune, error) {
	if len(text) == 0 {
		return 0, fmt.Errorf("cannot render accent %q for empty text", accent)
	}
	if len([]rune(text)) > 1 {
		return 0, fmt.Errorf("cannot render accent %q for multi-rune text %q", accent, text)
	}
	if accent == 0 {
		return 0, fmt.Errorf("cannot render accent for empty accent")
	}
	accented, ok := accentMap[string(rune(accent))+text]
	if !ok {
		return 0, fmt.Errorf("invalid combination: cannot apply %q accent to character %q", accent, text)
	}
	return accented, nil
}
