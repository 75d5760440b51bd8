package bibtex

import (
	"testing"

	"github.com/google/go-cmp/cmp"
)

func TestNameResolver_Resolve(t *testing.T) {
	tests := []struct {
		name     string
		resolver NameResolver
		fields   Fields
		want     map[Field]AuthorList
	}{
		{
			name:     "author and editor",
			resolver: NewNameResolver(),
			fields: Fields{
				"author":    "Canonne, Clement L and De, Anindya",
				"editor":    "Shuchi Chawla",
				"title":     "Learning from satisfying assignments",
				"booktitle": "Proceedings of SODA",
			},
			want: map[Field]AuthorList{
				"author": newAuthors(newAuthor("Clement L", "Canonne"), newAuthor("Anindya", "De")),
				"editor": newAuthors(newAuthor("Shuchi", "Chawla")),
			},
		},
		{
			name:     "field names ignore case",
			resolver: NewNameResolver(),
			fields:   Fields{"Author": "Alan Turing", "EDITOR": "Grace Hopper"},
			want: map[Field]AuthorList{
				"author": newAuthors(newAuthor("Alan", "Turing")),
				"editor": newAuthors(newAuthor("Grace", "Hopper")),
			},
		},
		{
			name:     "custom fields",
			resolver: NewNameResolver("translator"),
			fields:   Fields{"author": "Alan Turing", "translator": "van der Berg, Hans"},
			want: map[Field]AuthorList{
				"translator": newAuthors(newAuthor("Hans", "van der", "Berg")),
			},
		},
		{
			name:     "empty value",
			resolver: NewNameResolver(),
			fields:   Fields{"author": "  ", "editor": "and"},
			want:     map[Field]AuthorList{},
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := tt.resolver.Resolve(tt.fields)
			if diff := cmp.Diff(tt.want, got, cmpAuthor); diff != "" {
				t.Errorf("Resolve() mismatch (-want +got):\n%s", diff)
			}
		})
	}
}
