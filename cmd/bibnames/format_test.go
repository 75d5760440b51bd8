package main

import (
	"strings"
	"testing"

	"github.com/bibkit/bibtex"
	"github.com/bibkit/bibtex/internal/config"
	"github.com/google/go-cmp/cmp"
)

func TestFormatAuthors(t *testing.T) {
	authors := bibtex.Parse("Donald E. Knuth and Michael F. Plass and Leslie Lamport")
	accented := bibtex.Parse("Dvo\\v{r}\\'ak, Anton\\'in and Fran{\\c{c}}oise Chollet")
	tests := []struct {
		name    string
		authors bibtex.AuthorList
		opts    formatOptions
		want    string
	}{
		{"natbib", authors, formatOptions{style: "natbib"}, "Knuth et al."},
		{"last-first", authors, formatOptions{style: "last-first"}, "Knuth, Donald E., Plass, Michael F. and Lamport, Leslie"},
		{"last-first abbr oxford", authors, formatOptions{style: "last-first", abbr: true, oxford: true}, "Knuth, D. E., Plass, M. F., and Lamport, L."},
		{"first-last", authors, formatOptions{style: "first-last"}, "Donald E. Knuth, Michael F. Plass and Leslie Lamport"},
		{"last-names", authors, formatOptions{style: "last-names", oxford: true}, "Knuth, Plass, and Lamport"},
		{"bibtex", authors, formatOptions{style: "bibtex"}, "Knuth, Donald E. and Plass, Michael F. and Lamport, Leslie"},
		{"alpha", authors, formatOptions{style: "alpha"}, "Knuth, D. E. and Plass, M. F. and Lamport, L."},
		{"latex", accented, formatOptions{style: "first-last"}, "Anton\\'in Dvo\\v{r}\\'ak and Fran{\\c{c}}oise Chollet"},
		{"latex free", accented, formatOptions{style: "first-last", latexFree: true}, "Antonín Dvořák and Françoise Chollet"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := formatAuthors(tt.authors, tt.opts)
			if err != nil {
				t.Fatal(err)
			}
			if diff := cmp.Diff(tt.want, got); diff != "" {
				t.Errorf("formatAuthors() mismatch (-want +got):\n%s", diff)
			}
		})
	}
}

// Every configured style must be one formatAuthors knows.
func TestFormatAuthors_allStyles(t *testing.T) {
	authors := bibtex.Parse("Alan Turing")
	for _, style := range config.Styles {
		if _, err := formatAuthors(authors, formatOptions{style: style}); err != nil {
			t.Errorf("formatAuthors(style=%q) error: %v", style, err)
		}
	}
	if _, err := formatAuthors(authors, formatOptions{style: "chicago"}); err == nil {
		t.Error("formatAuthors(style=\"chicago\") succeeded, want error")
	}
}

func TestReadInputs(t *testing.T) {
	tests := []struct {
		name  string
		args  []string
		stdin string
		want  []string
	}{
		{"args win", []string{"Alan Turing"}, "Grace Hopper\n", []string{"Alan Turing"}},
		{"stdin lines", nil, "Alan Turing\n\n  Grace Hopper and others  \n", []string{"Alan Turing", "Grace Hopper and others"}},
		{"empty", nil, "", nil},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := readInputs(tt.args, strings.NewReader(tt.stdin))
			if err != nil {
				t.Fatal(err)
			}
			if diff := cmp.Diff(tt.want, got); diff != "" {
				t.Errorf("readInputs() mismatch (-want +got):\n%s", diff)
			}
		})
	}
}

func TestNewAuthorResponses(t *testing.T) {
	got := newAuthorResponses(bibtex.Parse("van Beethoven, Jr, Ludwig and Smith SH"))
	want := []AuthorResponse{
		{First: "Ludwig", FirstAbbr: "L.", Von: "van", Last: "Beethoven", Jr: "Jr"},
		{First: "SH", FirstAbbr: "SH", Last: "Smith"},
	}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Errorf("newAuthorResponses() mismatch (-want +got):\n%s", diff)
	}
}
