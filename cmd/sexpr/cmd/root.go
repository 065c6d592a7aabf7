package cmd

import (
	"fmt"
	"io"
	"io/ioutil"
	"os"
	"strings"

	"github.com/fatih/color"
	"github.com/spf13/cobra"

	sexpr "github.com/xiam/sexpr-calc"
)

var (
	// Global flags
	verbose    bool
	compat     bool
	maxDepth   int
	configPath string
)

var (
	cfg  *sexpr.Config
	calc *sexpr.Context
)

var rootCmd = &cobra.Command{
	Use:   "sexpr",
	Short: "Tokenize, parse and evaluate prefix arithmetic expressions",
	Long: `sexpr works on parenthesized prefix expressions built from numbers,
true/false and the operators +, -, **, max and min.

Examples:
  sexpr tokenize "(+ 1 2)"                 # List the tokens
  sexpr parse --tree "(- 4 (- 5 44))"      # Show the parsed tree
  sexpr eval "(** 2 3)" "(max 1 5 3)"      # Evaluate expressions
  echo "(min 1 5 3)" | sexpr eval          # One expression per line`,
	Version:           "0.1.0",
	SilenceUsage:      true,
	SilenceErrors:     true,
	PersistentPreRunE: setup,
}

// Execute runs the root command
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		color.New(color.FgRed).Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func init() {
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "log debug output to stderr")
	rootCmd.PersistentFlags().BoolVar(&compat, "compat", false, "use the historical tokenizer")
	rootCmd.PersistentFlags().IntVar(&maxDepth, "max-depth", 0, "maximum expression nesting, 0 for no limit")
	rootCmd.PersistentFlags().StringVarP(&configPath, "config", "c", "", "YAML configuration file")
}

// setup merges the configuration file with the flags given on the command
// line and builds the evaluation context.
func setup(cmd *cobra.Command, args []string) error {
	var err error

	cfg = sexpr.DefaultConfig()
	if configPath != "" {
		if cfg, err = sexpr.LoadConfig(configPath); err != nil {
			return err
		}
	}

	flags := cmd.Flags()
	if flags.Changed("compat") {
		cfg.Tokenizer.Compat = compat
	}
	if flags.Changed("max-depth") {
		cfg.Parser.MaxDepth = maxDepth
	}
	if flags.Changed("verbose") {
		cfg.Log.Verbose = verbose
	}
	if err := cfg.Validate(); err != nil {
		return err
	}

	opts := cfg.Options()
	if cfg.Log.Verbose {
		opts = append(opts, sexpr.WithLogger(sexpr.NewLogger(os.Stderr, true)))
	}

	if calc, err = sexpr.NewContext(nil, opts...); err != nil {
		return err
	}
	calc.Name(cmd.Name())
	return nil
}

// readExpression joins the arguments, or reads stdin when there are none.
func readExpression(in io.Reader, args []string) (string, error) {
	if len(args) > 0 && !(len(args) == 1 && args[0] == "-") {
		return strings.Join(args, " "), nil
	}
	buf, err := ioutil.ReadAll(in)
	if err != nil {
		return "", fmt.Errorf("reading stdin: %w", err)
	}
	return string(buf), nil
}
