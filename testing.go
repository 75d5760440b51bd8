package bibtex

// newAuthor creates a new author using the number of strings to infer
// the name structure as follows:
//
//	1 strings: Last
//	2 strings: First, Last
//	3 strings: First, Von, Last
//	4 strings: First, Von, Last, Jr
func newAuthor(names ...string) Author {
	switch len(names) {
	case 0:
		panic("need at least 1 name")
	case 1:
		return NewAuthor("", "", names[0], "")
	case 2:
		return NewAuthor(names[0], "", names[1], "")
	case 3:
		return NewAuthor(names[0], names[1], names[2], "")
	case 4:
		return NewAuthor(names[0], names[1], names[2], names[3])
	default:
		panic("too many names")
	}
}

func newAuthors(authors ...Author) AuthorList {
	return AuthorList(authors)
}
