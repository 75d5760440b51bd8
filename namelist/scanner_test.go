package namelist

import (
	"testing"

	"github.com/google/go-cmp/cmp"
)

type elt struct {
	tok   NameTok
	text  string
	abbr  string
	term  byte
	upper bool
}

func TestScan(t *testing.T) {
	src := `Jean-Paul {van der} Bergen, \AA{}ngstr\"om and \o{}rsted; sm{\'i}th`
	want := []elt{
		{Word, "Jean", "J", '-', true},
		{Word, "Paul", "P", ' ', true},
		{Word, "{van der}", "{van der}", ' ', true},
		{Word, "Bergen", "B", ' ', true},
		{Comma, "", "", 0, false},
		{Word, `\AA{}ngstr\"om`, `\AA{}`, ' ', true},
		{And, "", "", 0, false},
		{Word, `\o{}rsted`, `\o{}`, ' ', false},
		{And, "", "", 0, false},
		{Word, `sm{\'i}th`, "s", ' ', false},
		{EOF, "", "", 0, false},
	}

	var s scanner
	s.init(src)
	got := make([]elt, 0, len(want))
	for {
		tok, w := s.scan()
		e := elt{tok: tok}
		if tok == Word {
			e = elt{tok, w.text, w.abbr(), w.term, w.upper}
		}
		got = append(got, e)
		if tok == EOF {
			break
		}
	}
	if diff := cmp.Diff(want, got, cmp.AllowUnexported(elt{})); diff != "" {
		t.Errorf("scan() mismatch (-want +got):\n%s", diff)
	}
}

func TestScan_case(t *testing.T) {
	tests := []struct {
		src       string
		wantUpper bool
	}{
		{"Smith", true},
		{"van", false},
		{"{van}", true},
		{"{\\'E}mile", true},
		{"\\'emile", false},
		{"\\aa{}se", false},
		{"\\AA{}se", true},
		{"\\OE{}uvre", true},
		{"\\oe{}uvre", false},
		{"\\ss{}e", false}, // \ss is no letter command, so 'e' decides
		{"\\ss{}E", true},
		{"张伟", true},
		{"123", true},
		{"émile", false},
		{"Émile", true},
	}
	for _, tt := range tests {
		t.Run(tt.src, func(t *testing.T) {
			var s scanner
			s.init(tt.src)
			tok, w := s.scan()
			if tok != Word {
				t.Fatalf("scan(%q) got token %s, want %s", tt.src, tok, Word)
			}
			if w.upper != tt.wantUpper {
				t.Errorf("scan(%q) upper = %t, want %t", tt.src, w.upper, tt.wantUpper)
			}
		})
	}
}

func TestScan_separators(t *testing.T) {
	tests := []struct {
		src  string
		want []NameTok
	}{
		{"", []NameTok{EOF}},
		{"   \t\n", []NameTok{EOF}},
		{"~-~", []NameTok{EOF}},
		{"a AND b", []NameTok{Word, And, Word, EOF}},
		{"a aNd b", []NameTok{Word, And, Word, EOF}},
		{"a;b", []NameTok{Word, And, Word, EOF}},
		{"a,,b", []NameTok{Word, Comma, Comma, Word, EOF}},
		{"sandy anderson", []NameTok{Word, Word, EOF}},
		{"{a and b}", []NameTok{Word, EOF}},
		{"{a, b", []NameTok{Word, EOF}},
		{"a}b c", []NameTok{Word, Word, EOF}},
		{"\ufeffa", []NameTok{Word, EOF}},
	}
	for _, tt := range tests {
		t.Run(tt.src, func(t *testing.T) {
			var s scanner
			s.init(tt.src)
			got := make([]NameTok, 0, len(tt.want))
			for {
				tok, _ := s.scan()
				got = append(got, tok)
				if tok == EOF || len(got) > 2*len(tt.src)+1 {
					break
				}
			}
			if diff := cmp.Diff(tt.want, got); diff != "" {
				t.Errorf("scan() mismatch (-want +got):\n%s", diff)
			}
		})
	}
}

func TestNameTok_String(t *testing.T) {
	tests := []struct {
		tok  NameTok
		want string
	}{
		{NameTok(0), "Illegal"},
		{EOF, "EOF"},
		{Comma, "Comma"},
		{And, "And"},
		{Word, "Word"},
		{NameTok(42), "nameTok(42)"},
	}
	for _, tt := range tests {
		if got := tt.tok.String(); got != tt.want {
			t.Errorf("NameTok(%d).String() = %q, want %q", int(tt.tok), got, tt.want)
		}
	}
}
