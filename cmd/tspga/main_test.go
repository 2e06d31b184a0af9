package main

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/require"
)

const cities = `Los Angeles,34.052235,-118.243683
San Francisco,37.774929,-122.419418
Las Vegas,36.169941,-115.139830
Phoenix,33.448376,-112.074036
Denver,39.739236,-104.990251
`

func writeInput(t *testing.T, dir, body string) string {
	t.Helper()
	path := filepath.Join(dir, "locations.txt")
	require.NoError(t, os.WriteFile(path, []byte(body), 0o600))
	return path
}

func TestRun_WritesLog(t *testing.T) {
	dir := t.TempDir()
	in := writeInput(t, dir, cities)
	logFile := filepath.Join(dir, "log.txt")

	var stderr bytes.Buffer
	code := run([]string{in, "6", "3", "10", "42", "--log-file", logFile}, &stderr)
	require.Equal(t, exitOK, code, stderr.String())
	require.Contains(t, stderr.String(), "solution found")

	data, err := os.ReadFile(logFile)
	require.NoError(t, err)
	out := string(data)
	require.True(t, strings.HasPrefix(out, "INITIAL POPULATION:\n"))
	require.Contains(t, out, "GENERATION: 3\n")
	require.Contains(t, out, "SOLUTION:\nLos Angeles\n")
	require.Contains(t, out, " miles\n")
}

func TestRun_Reproducible(t *testing.T) {
	dir := t.TempDir()
	in := writeInput(t, dir, cities)

	read := func(name string) string {
		logFile := filepath.Join(dir, name)
		var stderr bytes.Buffer
		require.Equal(t, exitOK, run([]string{in, "8", "10", "25", "7", "--log-file", logFile}, &stderr))
		data, err := os.ReadFile(logFile)
		require.NoError(t, err)
		return string(data)
	}
	require.Equal(t, read("a.txt"), read("b.txt"))
}

func TestRun_UsageError(t *testing.T) {
	var stderr bytes.Buffer
	require.Equal(t, exitUsage, run([]string{"only-one"}, &stderr))
	require.Contains(t, stderr.String(), "usage: tspga")

	stderr.Reset()
	require.Equal(t, exitUsage, run([]string{"in.txt", "x", "1", "1", "1"}, &stderr))
}

func TestRun_MissingInput(t *testing.T) {
	dir := t.TempDir()
	var stderr bytes.Buffer
	code := run([]string{filepath.Join(dir, "nope.txt"), "4", "1", "0", "1", "--log-file", filepath.Join(dir, "log.txt")}, &stderr)
	require.Equal(t, exitFail, code)
	require.Contains(t, stderr.String(), "cannot load locations")
}

func TestRun_TooFewLocationsKeepsPreviousLog(t *testing.T) {
	dir := t.TempDir()
	in := writeInput(t, dir, "Only,1,2\n")
	logFile := filepath.Join(dir, "log.txt")
	require.NoError(t, os.WriteFile(logFile, []byte("previous run\n"), 0o600))

	var stderr bytes.Buffer
	code := run([]string{in, "4", "1", "0", "1", "--log-file", logFile}, &stderr)
	require.Equal(t, exitFail, code)
	require.Contains(t, stderr.String(), "evolution rejected")

	data, err := os.ReadFile(logFile)
	require.NoError(t, err)
	require.Equal(t, "previous run\n", string(data))
}

func TestRun_BadLogLevel(t *testing.T) {
	dir := t.TempDir()
	in := writeInput(t, dir, cities)
	var stderr bytes.Buffer
	code := run([]string{in, "4", "1", "0", "1", "--log-level", "loud", "--log-file", filepath.Join(dir, "log.txt")}, &stderr)
	require.Equal(t, exitUsage, code)
	require.NoFileExists(t, filepath.Join(dir, "log.txt"))
}
