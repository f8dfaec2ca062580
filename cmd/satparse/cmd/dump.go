package cmd

import (
	"fmt"
	"strings"

	"github.com/nanolith/libsat-go/satparse"
	"github.com/spf13/cobra"
)

var dumpCmd = &cobra.Command{
	Use:   "dump [expression]",
	Short: "Parse an expression and print its AST as an indented tree",
	RunE: func(cmd *cobra.Command, args []string) error {
		input, err := readExpression(args)
		if err != nil {
			return err
		}

		ctx := satparse.NewContext()
		stmt, err := satparse.Parse(ctx, input)
		if err != nil {
			return err
		}
		defer func() { _ = satparse.Release(stmt) }()

		dumpTree(ctx, stmt)
		return nil
	},
}

func init() {
	rootCmd.AddCommand(dumpCmd)
}

// dumpTree prints stmt as a depth-indented tree via Walk. Shared by dumpCmd
// and by parseCmd when outputFormat is "tree".
func dumpTree(ctx *satparse.Context, stmt satparse.Node) {
	satparse.Walk(&indentPrinter{ctx: ctx}, stmt)
}

// indentPrinter dumps each visited node on its own line, prefixed by
// depth*2 spaces. Depth tracking mirrors the goparser package's parentMap
// idiom (adapted here to a simple counter, since this AST's shape doesn't
// need parent lookups).
type indentPrinter struct {
	ctx   *satparse.Context
	depth int
}

func (p *indentPrinter) Visit(node satparse.Node) satparse.Visitor {
	if node == nil {
		return nil
	}

	label := node.Kind().String()
	if v, ok := node.(*satparse.VariableNode); ok {
		if name, found := p.ctx.VariableName(v.ID); found {
			label = fmt.Sprintf("Variable(%s)", name)
		} else {
			label = fmt.Sprintf("Variable(#%d)", v.ID)
		}
	}
	if b, ok := node.(*satparse.BooleanLiteralNode); ok {
		label = fmt.Sprintf("BooleanLiteral(%t)", b.Value)
	}

	fmt.Println(strings.Repeat("  ", p.depth) + label)

	return &indentPrinter{ctx: p.ctx, depth: p.depth + 1}
}
