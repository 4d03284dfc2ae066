package main

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"

	"dtostr/src/xtoa"

	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// execute runs the command tree with args and returns what was printed to stdout.
func execute(t *testing.T, args ...string) (string, error) {
	t.Helper()
	out, _, err := executeWithStderr(t, args...)
	return out, err
}

// executeWithStderr is like execute but also returns what was printed to stderr.
func executeWithStderr(t *testing.T, args ...string) (string, string, error) {
	t.Helper()
	t.Setenv("HOME", t.TempDir())
	resetFlags(rootCmd)

	var out, errOut bytes.Buffer
	rootCmd.SetOut(&out)
	rootCmd.SetErr(&errOut)
	rootCmd.SetArgs(args)
	err := rootCmd.Execute()
	return out.String(), errOut.String(), err
}

func resetFlags(cmd *cobra.Command) {
	cmd.Flags().VisitAll(func(f *pflag.Flag) {
		f.Value.Set(f.DefValue)
		f.Changed = false
	})
	for _, c := range cmd.Commands() {
		resetFlags(c)
	}
}

func TestDecCommand(t *testing.T) {
	var tests = []struct {
		name string
		args []string
		want string
	}{
		{name: "pi", args: []string{"dec", "-p", "2", "3.14159"}, want: "3.14\n"},
		{name: "negative", args: []string{"dec", "-p", "1", "--", "-3.5"}, want: "-3.5\n"},
		{name: "below one", args: []string{"dec", "--precision", "2", "0.5"}, want: "0.50\n"},
		{name: "small negative", args: []string{"dec", "-p", "2", "--", "-0.5"}, want: "0.-50\n"},
		{name: "default precision", args: []string{"dec", "2.5"}, want: "2.5000\n"},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			got, err := execute(t, tc.args...)
			require.NoError(t, err)
			assert.Equal(t, tc.want, got)
		})
	}
}

func TestIntCommand(t *testing.T) {
	got, err := execute(t, "int", "--", "-9223372036854775808")
	require.NoError(t, err)
	assert.Equal(t, "-9223372036854775808\n", got)

	_, err = execute(t, "int", "-b", "3", "1234")
	assert.ErrorIs(t, err, xtoa.ErrBufferTooSmall)

	_, err = execute(t, "int", "abc")
	assert.Error(t, err)
}

func TestRevCommand(t *testing.T) {
	got, err := execute(t, "rev", "abc123")
	require.NoError(t, err)
	assert.Equal(t, "321cba\n", got)
}

func TestDecCommand_precisionOutOfRange(t *testing.T) {
	_, err := execute(t, "dec", "-p", "19", "1.5")
	assert.Error(t, err)
}

func TestBatchCommand(t *testing.T) {
	dir := t.TempDir()
	src := filepath.Join(dir, "in.txt")
	out := filepath.Join(dir, "out.txt")
	require.NoError(t, os.WriteFile(src, []byte("3.14159\n-3.5\n\n0.5\n"), 0644))

	_, err := execute(t, "batch", "-p", "2", "-t", "2", "-o", out, src)
	require.NoError(t, err)

	data, err := os.ReadFile(out)
	require.NoError(t, err)
	assert.Equal(t, "3.14\n-3.50\n0.50\n", string(data))
}

func TestBatchCommand_failedLines(t *testing.T) {
	dir := t.TempDir()
	src := filepath.Join(dir, "in.txt")
	out := filepath.Join(dir, "out.txt")
	require.NoError(t, os.WriteFile(src, []byte("1\nx\n3\ny\n"), 0644))

	_, stderr, err := executeWithStderr(t, "batch", "--int", "-t", "4", "-o", out, src)
	assert.ErrorIs(t, err, errSilent)
	assert.Equal(t, `2 of 4 lines failed:
  line 2: "x": parse integer: strconv.ParseInt: parsing "x": invalid syntax
  line 4: "y": parse integer: strconv.ParseInt: parsing "y": invalid syntax
`, stderr)

	data, err := os.ReadFile(out)
	require.NoError(t, err)
	assert.Equal(t, "1\n!error\n3\n!error\n", string(data))
}

func TestBatchCommand_threadsValidatedBeforeReading(t *testing.T) {
	missing := filepath.Join(t.TempDir(), "missing.txt")
	for _, threads := range []string{"0", "999"} {
		t.Run(threads, func(t *testing.T) {
			_, err := execute(t, "batch", "-t", threads, missing)
			require.Error(t, err)
			assert.Contains(t, err.Error(), "thread count")
		})
	}
}

func TestConfigCommand(t *testing.T) {
	got, err := execute(t, "config")
	require.NoError(t, err)
	assert.Contains(t, got, "precision: 4")
	assert.Contains(t, got, "threads: 1")
}
