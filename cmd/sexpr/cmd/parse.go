package cmd

import (
	"fmt"

	"github.com/davecgh/go-spew/spew"
	"github.com/spf13/cobra"

	"github.com/xiam/sexpr-calc/ast"
)

var (
	parseTree bool
	parseDump bool
)

var parseCmd = &cobra.Command{
	Use:   "parse [expression]",
	Short: "Parse an expression and print its structure",
	Long: `Parse an expression and print it back in canonical form.

With --tree the nested structure is printed one node per line, with --dump
the tree is printed as nested Go values.`,
	RunE: runParse,
}

func init() {
	rootCmd.AddCommand(parseCmd)
	parseCmd.Flags().BoolVar(&parseTree, "tree", false, "print the tree one node per line")
	parseCmd.Flags().BoolVar(&parseDump, "dump", false, "dump the tree as nested Go values")
}

func runParse(cmd *cobra.Command, args []string) error {
	text, err := readExpression(cmd.InOrStdin(), args)
	if err != nil {
		return err
	}

	root, err := calc.Run(text)
	if err != nil {
		return err
	}

	out := cmd.OutOrStdout()
	switch {
	case parseDump:
		spew.Fdump(out, ast.Interface(root))
	case parseTree:
		ast.Print(out, root)
	default:
		fmt.Fprintln(out, string(ast.Encode(root)))
	}
	return nil
}
