package namelist

import "strings"

// nameAffixes are name parts that may stand between commas without being a
// first or last name of their own, like the "Jr" in "Smith, Jr, John".
var nameAffixes = map[string]struct{}{
	"jr":  {},
	"sr":  {},
	"jnr": {},
	"snr": {},
	"von": {},
	"zu":  {},
	"van": {},
	"der": {},
}

func isNameAffix(s string) bool {
	_, ok := nameAffixes[strings.ToLower(s)]
	return ok
}

// normalizeCommaList rewrites lists that use only commas, like
// "Ali Babar, M., Dingsøyr, T., Lago, P.", into a form the segmenter reads
// as one name per author. Lists with an explicit separator, braces, or
// fewer than two commas are returned unchanged.
func normalizeCommaList(s string) string {
	if containsFold(s, " and ") || strings.ContainsAny(s, "{;") || strings.Count(s, ",") < 2 {
		return s
	}

	parts := strings.Split(s, ",")
	for i := range parts {
		parts[i] = strings.TrimSpace(parts[i])
	}
	// A trailing comma doesn't start another name.
	for len(parts) > 0 && parts[len(parts)-1] == "" {
		parts = parts[:len(parts)-1]
	}

	// "Alan Turing, Grace Hopper, Ada Lovelace": every part is a full name.
	spaced := true
	for _, p := range parts {
		if !strings.Contains(p, " ") {
			spaced = false
			break
		}
	}
	if spaced {
		return strings.ReplaceAll(s, ",", " and")
	}

	names := len(parts)
	for _, p := range parts {
		if isNameAffix(p) {
			names--
		}
	}
	if names%2 != 0 {
		// Ambiguous, leave the commas for the segmenter.
		return s
	}
	return joinLastFirstPairs(parts)
}

// joinLastFirstPairs joins alternating last and first names with ',' inside a
// name and ';' between names. Affixes stay attached to the current name.
func joinLastFirstPairs(parts []string) string {
	sb := strings.Builder{}
	sb.Grow(16 * len(parts))
	affixes := 0
	for i, p := range parts {
		sb.WriteString(p)
		switch {
		case isNameAffix(p):
			sb.WriteByte(',')
			affixes++
		case (i+affixes)%2 == 0:
			sb.WriteByte(',')
		default:
			sb.WriteByte(';')
		}
	}
	out := sb.String()
	return out[:len(out)-1]
}

func containsFold(s, substr string) bool {
	return strings.Contains(strings.ToLower(s), strings.ToLower(substr))
}
