package bibtex

import "strings"

// Field is the name of a bibtex field, like "author".
type Field = string

const (
	FieldAuthor = "author"
	FieldEditor = "editor"
)

// Fields holds the raw values of a record's fields keyed by field name, as
// stored by whatever decoded the record.
type Fields map[Field]string

// NameResolver parses the name-list fields of records into author lists.
type NameResolver struct {
	tags  map[string]struct{} // lower-case field names holding name lists
	cache *Cache
}

// NewNameResolver returns a resolver for the given fields, or for the author
// and editor fields when none are given. Field names are matched without
// regard to case. Parsed lists are shared through a Cache, so the resolver is
// cheap for collections where the same editors repeat.
func NewNameResolver(tags ...string) NameResolver {
	if len(tags) == 0 {
		tags = []string{FieldAuthor, FieldEditor}
	}
	m := make(map[string]struct{}, len(tags))
	for _, tag := range tags {
		m[strings.ToLower(tag)] = struct{}{}
	}
	return NameResolver{tags: m, cache: NewCache(DefaultCacheSize)}
}

// Resolve returns the parsed author list of every name-list field in fields,
// keyed by the lower-case field name. Fields that hold no names are omitted.
func (r NameResolver) Resolve(fields Fields) map[Field]AuthorList {
	resolved := make(map[Field]AuthorList, len(r.tags))
	for name, value := range fields {
		tag := strings.ToLower(name)
		if _, ok := r.tags[tag]; !ok {
			continue
		}
		authors := r.cache.Parse(value)
		if len(authors) == 0 {
			continue
		}
		resolved[tag] = authors
	}
	return resolved
}
