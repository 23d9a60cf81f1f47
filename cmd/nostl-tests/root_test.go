package main

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"
)

func runArgs(args ...string) (int, string, string) {
	var stdout, stderr bytes.Buffer
	code := run(args, &stdout, &stderr)
	return code, stdout.String(), stderr.String()
}

func TestHelp(t *testing.T) {
	for _, flag := range []string{"--help", "-h", "--usage", "-?"} {
		code, out, _ := runArgs(flag)
		require.Equal(t, exitOK, code, flag)
		require.Contains(t, out, "nostl-tests <container> <test>", flag)
		require.Contains(t, out, "--list", flag)
	}
}

func TestList(t *testing.T) {
	code, out, _ := runArgs("--list")
	require.Equal(t, exitOK, code)
	require.Contains(t, out, "vector\n|\n+---compare\n")
	require.Contains(t, out, "Tests equality and inequality.")

	code, out, _ = runArgs("--brief")
	require.Equal(t, exitOK, code)
	require.Contains(t, out, "vector constructors\n")
	require.Contains(t, out, "array fill\n")
	require.NotContains(t, out, "Tests")
}

func TestTooFewArgs(t *testing.T) {
	for _, args := range [][]string{nil, {"vector"}} {
		code, out, errOut := runArgs(args...)
		require.Equal(t, exitFailure, code)
		require.Empty(t, out)
		require.Contains(t, errOut, "Usage:")
		require.Contains(t, errOut, "[ERROR] expected <container> <test>")
	}
}

func TestLookupFailure(t *testing.T) {
	code, _, errOut := runArgs("deque", "compare")
	require.Equal(t, exitFailure, code)
	require.Contains(t, errOut, `[ERROR] container "deque" does not exist`)

	code, _, errOut = runArgs("vector", "sort")
	require.Equal(t, exitFailure, code)
	require.Contains(t, errOut, `[ERROR] container "vector" has no test "sort" defined`)
}

func TestRunTest(t *testing.T) {
	code, out, errOut := runArgs("vector", "erase")
	require.Equal(t, exitOK, code, errOut)
	require.Contains(t, out, "[10, 30, 40, 50]")
	require.Contains(t, errOut, `"msg":"running test"`)
}

func TestRunWithConfigAndMetrics(t *testing.T) {
	path := filepath.Join(t.TempDir(), "nostl.toml")
	require.NoError(t, os.WriteFile(path, []byte("[log]\nlevel = \"debug\"\n\n[vector]\ngrowth = \"restrictive\"\n"), 0o644))

	code, out, errOut := runArgs("vector", "growth", "--config", path, "--metrics")
	require.Equal(t, exitOK, code, errOut)
	require.Contains(t, out, "growth policy restrictive")
	require.Contains(t, out, "nostl_rawmem_allocations_total")
	require.Contains(t, errOut, "vector reallocated")

	code, _, errOut = runArgs("vector", "growth", "--log-level", "error")
	require.Equal(t, exitOK, code)
	require.NotContains(t, errOut, "running test")
}

func TestBadConfig(t *testing.T) {
	code, _, errOut := runArgs("vector", "erase", "--config", filepath.Join(t.TempDir(), "missing.toml"))
	require.Equal(t, exitFailure, code)
	require.Contains(t, errOut, "[ERROR] config:")

	code, _, errOut = runArgs("vector", "erase", "--log-level", "loud")
	require.Equal(t, exitFailure, code)
	require.Contains(t, errOut, "[ERROR]")
}

func TestNormalizeHelp(t *testing.T) {
	require.Equal(t, []string{"--help", "vector", "--help"}, normalizeHelp([]string{"--usage", "vector", "-?"}))
}
