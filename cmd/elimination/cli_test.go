package main

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/require"
)

// execute runs the CLI with args and returns stdout, stderr and the error.
func execute(t *testing.T, stdin string, args ...string) (string, string, error) {
	t.Helper()
	var out, errOut bytes.Buffer
	cmd := newRootCmd()
	cmd.SetArgs(args)
	cmd.SetIn(strings.NewReader(stdin))
	cmd.SetOut(&out)
	cmd.SetErr(&errOut)
	err := cmd.Execute()
	return out.String(), errOut.String(), err
}

func TestRunFile(t *testing.T) {
	out, _, err := execute(t, "", "run", "--format", "plain", "../../testdata/teams4.txt")
	require.NoError(t, err)
	require.Equal(t, "Teams eliminated: [Philadelphia, Montreal]\n\n", out)
}

func TestRunStdin(t *testing.T) {
	out, _, err := execute(t, "2\nA 1 1 0 1\nB 0 1 1 0\n", "run", "--format", "plain")
	require.NoError(t, err)
	require.Equal(t, "No teams have been eliminated.\n\n", out)
}

func TestRunTable(t *testing.T) {
	out, _, err := execute(t, "", "run", "../../testdata/teams4.txt")
	require.NoError(t, err)
	require.Contains(t, out, "Philadelphia")
	require.Contains(t, out, "6/7")
	require.Contains(t, out, "Teams eliminated: [Philadelphia, Montreal]")
}

func TestRunCertificates(t *testing.T) {
	out, _, err := execute(t, "", "run", "--format", "plain", "--certificates",
		"--algorithm", "dinic", "--parallel", "4", "../../testdata/blowout3.txt")
	require.NoError(t, err)
	require.Contains(t, out, "Teams eliminated: [Middle, Trailers]")
	require.Contains(t, out, "Middle is eliminated by the subset R = { Leaders }")
	require.Contains(t, out, "Trailers is eliminated by the subset R = { Leaders }")
}

func TestRunContinuesPastMalformedDivision(t *testing.T) {
	out, errOut, err := execute(t, "", "run", "--format", "plain", "../../testdata/mixed.txt")
	require.Error(t, err)
	require.Contains(t, err.Error(), "1 division(s)")

	require.Contains(t, out, "Teams eliminated: [Philadelphia, Montreal]")
	require.Contains(t, out, "division 2, line 8")
	require.Contains(t, out, "No teams have been eliminated.")
	require.Contains(t, errOut, "skipping malformed division")
}

func TestRunStrictRejectsInconsistentDivision(t *testing.T) {
	// Row sums disagree with the remaining column.
	in := "2\nA 1 5 0 1\nB 0 1 1 0\n"

	out, _, err := execute(t, in, "run", "--format", "plain")
	require.Error(t, err)
	require.Contains(t, out, "Division 1: elimination: invalid division")

	out, _, err = execute(t, in, "run", "--format", "plain", "--strict=false")
	require.NoError(t, err)
	require.Contains(t, out, "No teams have been eliminated.")
}

func TestRunVerboseFlowRaisesLogLevel(t *testing.T) {
	_, errOut, err := execute(t, "", "run", "--format", "plain", "--verbose-flow",
		"--log-level", "warn", "../../testdata/teams4.txt")
	require.NoError(t, err)
	require.Contains(t, errOut, "augmenting path")

	_, errOut, err = execute(t, "", "run", "--format", "plain", "--log-level", "warn", "../../testdata/teams4.txt")
	require.NoError(t, err)
	require.Empty(t, errOut)
}

func TestRunConfigFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "elimination.yaml")
	require.NoError(t, os.WriteFile(path, []byte("algorithm: ford-fulkerson\noutput:\n  format: plain\n"), 0o600))

	out, _, err := execute(t, "", "run", "--config", path, "../../testdata/cycle4.txt")
	require.NoError(t, err)
	require.Equal(t, "Teams eliminated: [Sparrows]\n\n", out)
}

func TestRunRejectsBadFlags(t *testing.T) {
	_, _, err := execute(t, "", "run", "--algorithm", "simplex", "../../testdata/teams4.txt")
	require.Error(t, err)

	_, _, err = execute(t, "", "run", "--format", "html", "../../testdata/teams4.txt")
	require.Error(t, err)

	_, _, err = execute(t, "", "run", "missing.txt")
	require.ErrorContains(t, err, "open missing.txt")
}

func TestBatch(t *testing.T) {
	dir := t.TempDir()
	for _, name := range []string{"teams4.txt", "pair2.txt"} {
		data, err := os.ReadFile(filepath.Join("../../testdata", name))
		require.NoError(t, err)
		require.NoError(t, os.WriteFile(filepath.Join(dir, name), data, 0o600))
	}

	out, _, err := execute(t, "", "batch", "--format", "plain", dir)
	require.NoError(t, err)

	pair := strings.Index(out, "Reading input values from "+filepath.Join(dir, "pair2.txt"))
	teams := strings.Index(out, "Reading input values from "+filepath.Join(dir, "teams4.txt"))
	require.True(t, pair >= 0 && teams > pair, "files are processed in name order")
	require.Equal(t, 2, strings.Count(out, "Execution took: "))
	require.Contains(t, out, "Teams eliminated: [Philadelphia, Montreal]")
}

func TestBatchReportsFailingFiles(t *testing.T) {
	out, _, err := execute(t, "", "batch", "--format", "plain", "../../testdata")
	require.ErrorContains(t, err, "file(s) had errors")
	// Every file is still processed.
	require.Contains(t, out, "blowout3.txt")
	require.Contains(t, out, "teams4.txt")
}

func TestBatchNoFiles(t *testing.T) {
	_, _, err := execute(t, "", "batch", t.TempDir())
	require.ErrorContains(t, err, "no files match")
}
