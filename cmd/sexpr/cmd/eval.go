package cmd

import (
	"bufio"
	"context"
	"fmt"
	"strconv"
	"strings"

	"github.com/fatih/color"
	"github.com/spf13/cobra"

	sexpr "github.com/xiam/sexpr-calc"
)

var evalWorkers int

var evalCmd = &cobra.Command{
	Use:   "eval [expression...]",
	Short: "Evaluate expressions",
	Long: `Evaluate every argument as an independent expression. Without
arguments, expressions are read from stdin, one per line.

Expressions are evaluated concurrently; results are printed in input order.`,
	RunE: runEval,
}

func init() {
	rootCmd.AddCommand(evalCmd)
	evalCmd.Flags().IntVarP(&evalWorkers, "workers", "w", 0, "concurrent evaluations, 0 for one per CPU")
}

func runEval(cmd *cobra.Command, args []string) error {
	exprs := args
	if len(exprs) == 0 {
		var err error
		if exprs, err = readLines(cmd); err != nil {
			return err
		}
	}

	workers := cfg.Eval.Workers
	if cmd.Flags().Changed("workers") {
		workers = evalWorkers
	}

	results, err := calc.EvaluateAll(context.Background(), exprs, workers)
	if results == nil {
		return err
	}

	red := color.New(color.FgRed)
	for _, res := range results {
		if res.Err != nil {
			red.Fprintf(cmd.ErrOrStderr(), "%s: %v\n", res.Expr, res.Err)
			continue
		}
		fmt.Fprintln(cmd.OutOrStdout(), strconv.FormatFloat(res.Value, 'g', -1, 64))
	}

	if err != nil {
		return fmt.Errorf("%d of %d expressions failed", countFailed(results), len(results))
	}
	return nil
}

func readLines(cmd *cobra.Command) ([]string, error) {
	var lines []string
	scanner := bufio.NewScanner(cmd.InOrStdin())
	for scanner.Scan() {
		line := strings.TrimSpace(scanner.Text())
		if line == "" {
			continue
		}
		lines = append(lines, line)
	}
	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("reading stdin: %w", err)
	}
	return lines, nil
}

func countFailed(results []sexpr.Result) int {
	n := 0
	for i := range results {
		if results[i].Err != nil {
			n++
		}
	}
	return n
}
