package token

import "testing"

func TestLookupAccent(t *testing.T) {
	tests := []struct {
		cmd    string
		want   Accent
		wantOK bool
	}{
		{`'`, AccentAcute, true},
		{`"`, AccentUmlaut, true},
		{"v", AccentCaron, true},
		{"c", AccentCedilla, true},
		{"H", AccentDoubleAcute, true},
		{"aa", 0, false},
		{"x", 0, false},
		{"", 0, false},
	}
	for _, tt := range tests {
		t.Run(tt.cmd, func(t *testing.T) {
			got, ok := LookupAccent(tt.cmd)
			if got != tt.want || ok != tt.wantOK {
				t.Errorf("LookupAccent(%q) = %q, %v; want %q, %v", tt.cmd, got, ok, tt.want, tt.wantOK)
			}
		})
	}
}

func TestAccent_IsLetterAccent(t *testing.T) {
	for a, want := range map[Accent]bool{
		AccentCedilla:     true,
		AccentCaron:       true,
		AccentDoubleAcute: true,
		AccentAcute:       false,
		AccentTilde:       false,
		AccentMacron:      false,
	} {
		if got := a.IsLetterAccent(); got != want {
			t.Errorf("Accent(%q).IsLetterAccent() = %v; want %v", a, got, want)
		}
	}
}

func TestLetterCommand(t *testing.T) {
	tests := []struct {
		cmd       string
		want      string
		wantOK    bool
		isLetter  bool
		wantUpper bool
	}{
		{"aa", "å", true, true, false},
		{"AA", "Å", true, true, true},
		{"O", "Ø", true, true, true},
		{"oe", "œ", true, true, false},
		{"i", "ı", true, true, false},
		{"ss", "ß", true, false, false},
		{"alpha", "", false, false, false},
	}
	for _, tt := range tests {
		t.Run(tt.cmd, func(t *testing.T) {
			got, ok := LetterCommand(tt.cmd)
			if got != tt.want || ok != tt.wantOK {
				t.Errorf("LetterCommand(%q) = %q, %v; want %q, %v", tt.cmd, got, ok, tt.want, tt.wantOK)
			}
			if got := IsLetterCommand(tt.cmd); got != tt.isLetter {
				t.Errorf("IsLetterCommand(%q) = %v; want %v", tt.cmd, got, tt.isLetter)
			}
			if got := LetterCommandIsUpper(tt.cmd); got != tt.wantUpper {
				t.Errorf("LetterCommandIsUpper(%q) = %v; want %v", tt.cmd, got, tt.wantUpper)
			}
		})
	}
}
