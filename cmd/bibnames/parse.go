package main

import (
	"github.com/bibkit/bibtex"
	"github.com/spf13/cobra"
)

func init() {
	rootCmd.AddCommand(parseCmd)
}

var parseCmd = &cobra.Command{
	Use:   "parse [name-list...]",
	Short: "Split name lists into first, von, last and jr parts",
	Long: `Split name lists into first, von, last and jr parts.

Examples:
  bibnames parse "Ludwig van Beethoven and Turing, Alan"
  bibnames parse --human "van der Berg, Hans"
  cut -f2 authors.tsv | bibnames parse`,
	RunE: runParse,
}

func runParse(cmd *cobra.Command, args []string) error {
	inputs, err := readInputs(args, cmd.InOrStdin())
	if err != nil {
		exitWithError(ExitDataError, "%v", err)
	}
	if len(inputs) == 0 {
		exitWithError(ExitDataError, "no name lists given")
	}

	cache := bibtex.NewCache(len(inputs))
	responses := make([]ParseResponse, 0, len(inputs))
	for _, in := range inputs {
		responses = append(responses, ParseResponse{
			Input:   in,
			Authors: newAuthorResponses(cache.Parse(in)),
		})
	}

	if !humanOutput {
		return outputJSON(responses)
	}
	for _, r := range responses {
		outputHuman("%s\n", r.Input)
		for i, a := range r.Authors {
			outputHuman("  %d. last=%q von=%q first=%q first_abbr=%q jr=%q\n",
				i+1, a.Last, a.Von, a.First, a.FirstAbbr, a.Jr)
		}
	}
	return nil
}
