package cmd

import (
	"github.com/alecthomas/repr"
	"github.com/nanolith/libsat-go/satparse"
	"github.com/spf13/cobra"
)

var parseCmd = &cobra.Command{
	Use:   "parse [expression]",
	Short: "Parse an expression and print its AST (repr by default, or tree-indented per config)",
	RunE: func(cmd *cobra.Command, args []string) error {
		input, err := readExpression(args)
		if err != nil {
			return err
		}

		ctx := satparse.NewContext()
		logger.WithField("sessionID", ctx.SessionID).Debug("parsing expression")

		stmt, err := satparse.Parse(ctx, input)
		if err != nil {
			return err
		}
		defer func() { _ = satparse.Release(stmt) }()

		if outputFormat == "tree" {
			dumpTree(ctx, stmt)
		} else {
			repr.Println(stmt)
		}
		return nil
	},
}

func init() {
	rootCmd.AddCommand(parseCmd)
}
