package cmd

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const sample = "../../../testdata/sample.txt"

func run(t *testing.T, stdin string, args ...string) (string, error) {
	t.Helper()

	var out, errOut bytes.Buffer

	root := newRootCmd()
	root.SetArgs(args)
	root.SetIn(strings.NewReader(stdin))
	root.SetOut(&out)
	root.SetErr(&errOut)

	err := root.Execute()
	return out.String(), err
}

func TestPairs(t *testing.T) {
	out, err := run(t, "", "pairs", sample)
	require.NoError(t, err)
	assert.Equal(t, "13\n", out)

	out, err = run(t, "", "pairs", "--mode", "tree", "--workers", "4", sample)
	require.NoError(t, err)
	assert.Equal(t, "13\n", out)

	out, err = run(t, "[1]\n[2]\n\n[3]\n[2]\n", "pairs")
	require.NoError(t, err)
	assert.Equal(t, "1\n", out)
}

func TestRank(t *testing.T) {
	out, err := run(t, "", "rank", sample)
	require.NoError(t, err)
	assert.Equal(t, "140\n", out)

	out, err = run(t, "", "rank", "--partition", sample)
	require.NoError(t, err)
	assert.Equal(t, "140\n", out)
}

func TestRankWithConfig(t *testing.T) {
	dir := t.TempDir()
	cfgFile := filepath.Join(dir, "listcmp.yaml")
	require.NoError(t, os.WriteFile(cfgFile, []byte("sentinels: [\"[[1]]\", \"[[3]]\"]\n"), 0o600))

	// [] [1] [[1]] [2] [[3]]
	out, err := run(t, "[2]\n[]\n[1]\n", "rank", "--config", cfgFile)
	require.NoError(t, err)
	assert.Equal(t, "15\n", out)
}

func TestSort(t *testing.T) {
	out, err := run(t, "[3]\n[[2]]\n[1]\n", "sort")
	require.NoError(t, err)
	assert.Equal(t, "[1]\n[[2]]\n[3]\n", out)

	out, err = run(t, "[3]\n", "sort", "--with-sentinels")
	require.NoError(t, err)
	assert.Equal(t, "[[2]]\n[3]\n[[6]]\n", out)
}

func TestCompare(t *testing.T) {
	out, err := run(t, "", "compare", "[[1],[2,3,4]]", "[[1],4]")
	require.NoError(t, err)
	assert.Equal(t, "less\n", out)

	out, err = run(t, "", "compare", "[[[3]]]", "[3]")
	require.NoError(t, err)
	assert.Equal(t, "equal\n", out)

	_, err = run(t, "", "compare", "[1]", "[,2]")
	assert.Error(t, err)

	_, err = run(t, "", "compare", "[1]")
	assert.Error(t, err)
}

func TestCheck(t *testing.T) {
	out, err := run(t, "", "check", sample)
	require.NoError(t, err)
	assert.Empty(t, out)

	out, err = run(t, "[1]\n[1,\n\n[x]\n", "check")
	require.ErrorIs(t, err, errInvalidLines)
	assert.Contains(t, out, "line 2: unexpected EOF")
	assert.Contains(t, out, "line 4: invalid token")

	out, err = run(t, "[1,[]]\n", "check", "--tree")
	require.NoError(t, err)
	assert.Equal(t, "line 1:\n(list): [2]\n    (int): 1\n    (list): [0]\n", out)
}

func TestInvalidSettings(t *testing.T) {
	_, err := run(t, "", "pairs", "--mode", "quantum", sample)
	assert.Error(t, err)

	_, err = run(t, "", "pairs", "--env-file", filepath.Join(t.TempDir(), "missing.env"), sample)
	assert.Error(t, err)

	_, err = run(t, "", "pairs", filepath.Join(t.TempDir(), "missing.txt"))
	assert.Error(t, err)
}

func TestFlagsOverrideConfig(t *testing.T) {
	t.Setenv("LISTCMP_WORKERS", "0")
	t.Setenv("LISTCMP_MODE", "quantum")

	out, err := run(t, "", "pairs", "--workers", "4", "--mode", "tree", sample)
	require.NoError(t, err)
	assert.Equal(t, "13\n", out)

	_, err = run(t, "", "pairs", "--mode", "tree", sample)
	assert.Error(t, err)
}

func longExpression(n int) string {
	return "[" + strings.TrimSuffix(strings.Repeat("1,", n), ",") + "]"
}

func TestCheckLongLine(t *testing.T) {
	line := longExpression(40000)
	require.Greater(t, len(line), 64*1024)

	out, err := run(t, line+"\n", "check")
	require.NoError(t, err)
	assert.Empty(t, out)

	out, err = run(t, line+"\n", "sort")
	require.NoError(t, err)
	assert.Equal(t, line+"\n", out)
}
