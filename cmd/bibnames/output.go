package main

import (
	"bufio"
	"encoding/json"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/bibkit/bibtex"
)

// outputJSON writes a value as formatted JSON to stdout.
func outputJSON(v interface{}) error {
	enc := json.NewEncoder(os.Stdout)
	enc.SetIndent("", "  ")
	return enc.Encode(v)
}

// outputHuman writes a human-readable string to stdout.
func outputHuman(format string, args ...interface{}) {
	fmt.Printf(format, args...)
}

// exitWithError outputs an error in the appropriate format (human or JSON) and exits.
func exitWithError(code int, format string, args ...interface{}) {
	msg := fmt.Sprintf(format, args...)
	if humanOutput {
		fmt.Fprintf(os.Stderr, "error: %s\n", msg)
	} else {
		outputJSON(ErrorResponse{Error: msg})
	}
	os.Exit(code)
}

// ErrorResponse is the JSON form of a failed command.
type ErrorResponse struct {
	Error string `json:"error"`
}

// AuthorResponse is the JSON form of a parsed author.
type AuthorResponse struct {
	First     string `json:"first,omitempty"`
	FirstAbbr string `json:"first_abbr,omitempty"`
	Von       string `json:"von,omitempty"`
	Last      string `json:"last,omitempty"`
	Jr        string `json:"jr,omitempty"`
}

// ParseResponse is the response for one name list of the parse command.
type ParseResponse struct {
	Input   string           `json:"input"`
	Authors []AuthorResponse `json:"authors"`
}

// FormatResponse is the response for one name list of the format command.
type FormatResponse struct {
	Input     string `json:"input"`
	Formatted string `json:"formatted"`
}

func newAuthorResponses(authors bibtex.AuthorList) []AuthorResponse {
	out := make([]AuthorResponse, len(authors))
	for i, a := range authors {
		out[i] = AuthorResponse{
			First:     a.First,
			FirstAbbr: a.FirstAbbr(),
			Von:       a.Von,
			Last:      a.Last,
			Jr:        a.Jr,
		}
	}
	return out
}

// readInputs returns the name lists to process: the arguments if any,
// otherwise the non-blank lines of r.
func readInputs(args []string, r io.Reader) ([]string, error) {
	if len(args) > 0 {
		return args, nil
	}
	var inputs []string
	sc := bufio.NewScanner(r)
	for sc.Scan() {
		line := strings.TrimSpace(sc.Text())
		if line == "" {
			continue
		}
		inputs = append(inputs, line)
	}
	if err := sc.Err(); err != nil {
		return nil, fmt.Errorf("reading stdin: %w", err)
	}
	return inputs, nil
}
