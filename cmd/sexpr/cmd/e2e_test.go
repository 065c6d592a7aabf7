package cmd

import (
	"bytes"
	"io/ioutil"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// resetFlags restores every flag to its default so runs don't leak state
// into each other.
func resetFlags(cmd *cobra.Command) {
	reset := func(f *pflag.Flag) {
		_ = f.Value.Set(f.DefValue)
		f.Changed = false
	}
	cmd.PersistentFlags().VisitAll(reset)
	cmd.Flags().VisitAll(reset)
	for _, sub := range cmd.Commands() {
		resetFlags(sub)
	}
}

func execute(t *testing.T, stdin string, args ...string) (string, string, error) {
	t.Helper()

	resetFlags(rootCmd)
	configPath = ""

	var stdout, stderr bytes.Buffer
	rootCmd.SetIn(strings.NewReader(stdin))
	rootCmd.SetOut(&stdout)
	rootCmd.SetErr(&stderr)
	rootCmd.SetArgs(args)

	err := rootCmd.Execute()
	return stdout.String(), stderr.String(), err
}

func TestTokenizeE2E(t *testing.T) {
	tests := []struct {
		name        string
		args        []string
		stdin       string
		wantContain []string
	}{
		{
			name: "expression",
			args: []string{"tokenize", "(max 1.5 true)"},
			wantContain: []string{
				"TYPE",
				"start_expression",
				`"max"`,
				"identifier",
				"number",
				"boolean",
				"end_expression",
			},
		},
		{
			name:        "stdin",
			args:        []string{"tokenize"},
			stdin:       "(+ 1\n 2)",
			wantContain: []string{"identifier", `"2"`},
		},
		{
			name:        "compat drops pending text",
			args:        []string{"tokenize", "--compat", "abc"},
			wantContain: []string{"TYPE"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			out, _, err := execute(t, tt.stdin, tt.args...)
			require.NoError(t, err)
			for _, want := range tt.wantContain {
				assert.Contains(t, out, want)
			}
		})
	}

	t.Run("compat output has no tokens", func(t *testing.T) {
		out, _, err := execute(t, "", "tokenize", "--compat", "abc")
		require.NoError(t, err)
		assert.NotContains(t, out, `"abc"`)

		out, _, err = execute(t, "", "tokenize", "abc")
		require.NoError(t, err)
		assert.Contains(t, out, `"abc"`)
	})
}

func TestParseE2E(t *testing.T) {
	tests := []struct {
		name        string
		args        []string
		wantErr     bool
		wantContain []string
	}{
		{
			name:        "canonical form",
			args:        []string{"parse", "(-   4 (- 5 44))"},
			wantContain: []string{"(- 4 (- 5 44))"},
		},
		{
			name: "tree",
			args: []string{"parse", "--tree", "(- 4 (- 5 44))"},
			wantContain: []string{
				"(list): [3]",
				"    (atom): -",
				"        (number): 44",
			},
		},
		{
			name:        "dump",
			args:        []string{"parse", "--dump", "(max 1 true)"},
			wantContain: []string{"[]interface {}", `"max"`, "true"},
		},
		{
			name:    "unbalanced",
			args:    []string{"parse", "(+ 1 2"},
			wantErr: true,
		},
		{
			name:    "too deep",
			args:    []string{"parse", "--max-depth", "2", "(+ (+ (+ 1 2) 3) 4)"},
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			out, _, err := execute(t, "", tt.args...)
			if tt.wantErr {
				assert.Error(t, err)
				return
			}
			require.NoError(t, err)
			for _, want := range tt.wantContain {
				assert.Contains(t, out, want)
			}
		})
	}
}

func TestEvalE2E(t *testing.T) {
	tests := []struct {
		name          string
		args          []string
		stdin         string
		wantErr       bool
		wantOut       string
		wantErrOutput []string
	}{
		{
			name:    "arguments",
			args:    []string{"eval", "(** 2 3)", "(max 1 5 3)", "(- 4 (- 5 44))"},
			wantOut: "8\n5\n43\n",
		},
		{
			name:    "stdin lines",
			args:    []string{"eval", "--workers", "2"},
			stdin:   "(+ 1 2)\n\n(min 4 -1.5)\n",
			wantOut: "3\n-1.5\n",
		},
		{
			name:          "failures are reported",
			args:          []string{"eval", "(+ 1 2)", "(foo 1)", "(** 1 2 3)"},
			wantErr:       true,
			wantOut:       "3\n",
			wantErrOutput: []string{"(foo 1): ", "unknown operator", "arity mismatch"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			out, errOut, err := execute(t, tt.stdin, tt.args...)
			if tt.wantErr {
				assert.Error(t, err)
			} else {
				require.NoError(t, err)
			}
			assert.Equal(t, tt.wantOut, out)
			for _, want := range tt.wantErrOutput {
				assert.Contains(t, errOut, want)
			}
		})
	}
}

func TestConfigFlag(t *testing.T) {
	dir, err := ioutil.TempDir("", "sexpr")
	require.NoError(t, err)
	defer os.RemoveAll(dir)

	path := filepath.Join(dir, "config.yaml")
	require.NoError(t, ioutil.WriteFile(path, []byte("parser:\n  max_depth: 1\n"), 0644))

	_, _, err = execute(t, "", "eval", "--config", path, "(+ 1 (+ 2 3))")
	assert.Error(t, err)

	_, _, err = execute(t, "", "eval", "--config", path, "--max-depth", "0", "(+ 1 (+ 2 3))")
	assert.NoError(t, err)

	_, _, err = execute(t, "", "eval", "--config", filepath.Join(dir, "missing.yaml"), "(+ 1 2)")
	assert.Error(t, err)
}
