package main

import (
	"fmt"

	"github.com/bibkit/bibtex"
	"github.com/bibkit/bibtex/internal/config"
	"github.com/spf13/cobra"
)

var (
	formatStyle     string
	formatAbbr      bool
	formatOxford    bool
	formatLatexFree bool
)

func init() {
	formatCmd.Flags().StringVar(&formatStyle, "style", config.DefaultStyle, "Output style: natbib, last-first, first-last, last-names, bibtex, alpha")
	formatCmd.Flags().BoolVar(&formatAbbr, "abbr", false, "Reduce given names to initials")
	formatCmd.Flags().BoolVar(&formatOxford, "oxford", false, "Put a comma before the final \"and\"")
	formatCmd.Flags().BoolVar(&formatLatexFree, "latex-free", false, "Render TeX accents and commands as Unicode")
	rootCmd.AddCommand(formatCmd)
}

var formatCmd = &cobra.Command{
	Use:   "format [name-list...]",
	Short: "Format name lists in a citation style",
	Long: `Format name lists in a citation style.

Styles:
  natbib       Knuth, Knuth and Plass, Knuth et al.
  last-first   Knuth, Donald E., Plass, Michael F. and Lamport, Leslie
  first-last   Donald E. Knuth, Michael F. Plass and Leslie Lamport
  last-names   Knuth, Plass and Lamport
  bibtex       Knuth, Donald E. and Plass, Michael F. and Lamport, Leslie
  alpha        Knuth, D. E. and Plass, M. F. and Lamport, L.

Flags not given on the command line default to the config file values.`,
	RunE: runFormat,
}

// formatOptions selects how an author list is written.
type formatOptions struct {
	style     string
	abbr      bool
	oxford    bool
	latexFree bool
}

func runFormat(cmd *cobra.Command, args []string) error {
	cfg := mustLoadConfig()
	opts := formatOptions{style: cfg.Style, abbr: cfg.Abbreviate, oxford: cfg.OxfordComma, latexFree: cfg.LatexFree}
	flags := cmd.Flags()
	if flags.Changed("style") {
		opts.style = formatStyle
	}
	if flags.Changed("abbr") {
		opts.abbr = formatAbbr
	}
	if flags.Changed("oxford") {
		opts.oxford = formatOxford
	}
	if flags.Changed("latex-free") {
		opts.latexFree = formatLatexFree
	}
	if err := config.ValidateStyle(opts.style); err != nil {
		exitWithError(ExitDataError, "%v", err)
	}

	inputs, err := readInputs(args, cmd.InOrStdin())
	if err != nil {
		exitWithError(ExitDataError, "%v", err)
	}
	if len(inputs) == 0 {
		exitWithError(ExitDataError, "no name lists given")
	}

	cache := bibtex.NewCache(len(inputs))
	responses := make([]FormatResponse, 0, len(inputs))
	for _, in := range inputs {
		formatted, err := formatAuthors(cache.Parse(in), opts)
		if err != nil {
			exitWithError(ExitDataError, "formatting %q: %v", in, err)
		}
		responses = append(responses, FormatResponse{Input: in, Formatted: formatted})
	}

	if !humanOutput {
		return outputJSON(responses)
	}
	for _, r := range responses {
		outputHuman("%s\n", r.Formatted)
	}
	return nil
}

func formatAuthors(authors bibtex.AuthorList, opts formatOptions) (string, error) {
	if opts.latexFree {
		authors = authors.LatexFree()
	}
	switch opts.style {
	case "natbib":
		return authors.Natbib(), nil
	case "last-first":
		return authors.LastFirstNames(opts.abbr, opts.oxford), nil
	case "first-last":
		return authors.FirstLastNames(opts.abbr, opts.oxford), nil
	case "last-names":
		return authors.LastNames(opts.oxford), nil
	case "bibtex":
		return authors.LastFirstNamesWithAnd(opts.abbr), nil
	case "alpha":
		return authors.ForAlphabetization(), nil
	default:
		return "", fmt.Errorf("unknown style %q", opts.style)
	}
}
