package cmd

import (
	"fmt"

	"github.com/nanolith/libsat-go/satparse"
	"github.com/spf13/cobra"
)

var tokensCmd = &cobra.Command{
	Use:   "tokens [expression]",
	Short: "Tokenize an expression and print each token's kind and position",
	RunE: func(cmd *cobra.Command, args []string) error {
		input, err := readExpression(args)
		if err != nil {
			return err
		}

		scanner := satparse.NewScanner(input)
		for {
			tok := scanner.ReadToken()
			fmt.Printf("%-20s begin=%+v end=%+v\n", tok.Kind, tok.Begin, tok.End)
			switch tok.Kind {
			case satparse.TokenEOF:
				return nil
			case satparse.TokenBadInput:
				// BadInput does not advance the scanner (see
				// ReadToken); stop here rather than reprinting it
				// forever.
				return nil
			}
		}
	},
}

func init() {
	rootCmd.AddCommand(tokensCmd)
}
