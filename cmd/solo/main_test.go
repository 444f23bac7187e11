package main

import (
	"bufio"
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/udisondev/bqsolo/internal/testutil"
)

func writeConfig(t *testing.T, override string) string {
	t.Helper()

	path := filepath.Join(t.TempDir(), "solo.yaml")
	content := "log_level: error\n" +
		"preferences:\n" +
		"  driver: none\n" +
		"  override: \"" + override + "\"\n"
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	return path
}

func TestRun_HelloOverStdio(t *testing.T) {
	ctx := testutil.ContextWithTimeout(t, 10*time.Second)

	in := strings.NewReader("[0, \"Hero\", 21, 60]\nnot json\n\n[99]\n")
	var out bytes.Buffer

	err := run(ctx, options{configPath: writeConfig(t, "singleplayer=1")}, in, &out)
	require.NoError(t, err)

	var lines []string
	scanner := bufio.NewScanner(&out)
	for scanner.Scan() {
		lines = append(lines, scanner.Text())
	}
	require.GreaterOrEqual(t, len(lines), 2)
	assert.True(t, strings.HasPrefix(lines[0], `[[1,1,"Hero",`), "first line: %s", lines[0])
	assert.True(t, containsPrefix(lines[1:], `[[19`), "no LIST batch in %v", lines)
}

func TestRun_OversizedLineSkipped(t *testing.T) {
	ctx := testutil.ContextWithTimeout(t, 10*time.Second)

	long := `[23,"` + strings.Repeat("a", 70*1024) + `"]`
	in := strings.NewReader(long + "\n[0, \"Hero\", 21, 60]\n")
	var out bytes.Buffer

	err := run(ctx, options{configPath: writeConfig(t, "singleplayer=1")}, in, &out)
	require.NoError(t, err)

	line, _, _ := strings.Cut(out.String(), "\n")
	assert.True(t, strings.HasPrefix(line, `[[1,1,"Hero",`), "first line: %s", line)
}

func TestRun_SinglePlayerDisabled(t *testing.T) {
	ctx := testutil.ContextWithTimeout(t, 10*time.Second)

	err := run(ctx, options{configPath: writeConfig(t, "")}, strings.NewReader(""), &bytes.Buffer{})
	assert.ErrorContains(t, err, "single-player mode is disabled")
}

func TestRun_CommandLineOverride(t *testing.T) {
	ctx := testutil.ContextWithTimeout(t, 10*time.Second)

	opts := options{
		configPath: writeConfig(t, ""),
		override:   "singleplayer=yes",
	}
	err := run(ctx, opts, strings.NewReader(""), &bytes.Buffer{})
	assert.NoError(t, err)
}

func containsPrefix(lines []string, prefix string) bool {
	for _, l := range lines {
		if strings.HasPrefix(l, prefix) {
			return true
		}
	}
	return false
}
