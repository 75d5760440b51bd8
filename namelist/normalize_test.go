package namelist

import "testing"

func TestNormalizeCommaList(t *testing.T) {
	tests := []struct {
		name string
		src  string
		want string
	}{
		{"single comma", "Turing, Alan", "Turing, Alan"},
		{"no commas", "Alan Turing", "Alan Turing"},
		{"last first pairs", "Ali Babar, M., Dingsøyr, T.", "Ali Babar,M.;Dingsøyr,T."},
		{"full names", "Alan Turing, Grace Hopper, Ada Lovelace", "Alan Turing and Grace Hopper and Ada Lovelace"},
		{"affix", "Smith, Jr, John", "Smith,Jr,John"},
		{"affix in list", "Smith, Jr, John, Doe, Jane", "Smith,Jr,John;Doe,Jane"},
		{"affix any case", "Smith, JNR, John, Doe, Jane", "Smith,JNR,John;Doe,Jane"},
		{"odd count is ambiguous", "Smith, Jones, Brown", "Smith, Jones, Brown"},
		{"explicit and", "Doe, J. and Roe, J., Poe, E.", "Doe, J. and Roe, J., Poe, E."},
		{"explicit AND", "Doe, J. AND Roe, J., Poe, E.", "Doe, J. AND Roe, J., Poe, E."},
		{"semicolon", "Doe, J.; Roe, J., Poe", "Doe, J.; Roe, J., Poe"},
		{"brace", "{Doe}, J., Roe, J.", "{Doe}, J., Roe, J."},
		{"and inside a name", "Sandra Doe, J., Roe, J.", "Sandra Doe,J.;Roe,J."},
		{"trailing comma", "Smith, John, Doe, Jane,", "Smith,John;Doe,Jane"},
		{"trailing commas", "Smith, John, Doe, Jane, ,", "Smith,John;Doe,Jane"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := normalizeCommaList(tt.src); got != tt.want {
				t.Errorf("normalizeCommaList(%q) = %q, want %q", tt.src, got, tt.want)
			}
		})
	}
}
