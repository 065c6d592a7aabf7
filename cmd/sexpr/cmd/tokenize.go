package cmd

import (
	"strconv"

	"github.com/olekukonko/tablewriter"
	"github.com/spf13/cobra"
)

var tokenizeCmd = &cobra.Command{
	Use:   "tokenize [expression]",
	Short: "List the tokens of an expression",
	Long: `Split an expression into tokens and print them as a table.

The expression is read from stdin when no argument is given.`,
	RunE: runTokenize,
}

func init() {
	rootCmd.AddCommand(tokenizeCmd)
}

func runTokenize(cmd *cobra.Command, args []string) error {
	text, err := readExpression(cmd.InOrStdin(), args)
	if err != nil {
		return err
	}

	tokens := calc.Tokenize(text)

	table := tablewriter.NewWriter(cmd.OutOrStdout())
	table.SetHeader([]string{"#", "Type", "Lexeme", "Line", "Col"})
	for i, tok := range tokens {
		line, col := tok.Pos()
		table.Append([]string{
			strconv.Itoa(i),
			tok.Type().String(),
			strconv.Quote(tok.Text()),
			strconv.Itoa(line),
			strconv.Itoa(col),
		})
	}
	table.Render()
	return nil
}
