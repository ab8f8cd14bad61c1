package loc

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeFile(t *testing.T, path, content string) {
	t.Helper()
	require.NoError(t, os.MkdirAll(filepath.Dir(path), 0o755))
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
}

func TestAnalyzeCountsAndTotals(t *testing.T) {
	root := t.TempDir()
	writeFile(t, filepath.Join(root, "a.c"), "int main(void) {\n  return 0;\n}\n")
	writeFile(t, filepath.Join(root, "sub", "b.c"), "x\ny")
	writeFile(t, filepath.Join(root, "ignored.h"), "should not count\n")

	sec, err := Analyze(root, ".c", nil)
	require.NoError(t, err)

	require.Len(t, sec.Files, 2)
	assert.Equal(t, 3, sec.Files[0].Lines) // a.c sorts before sub/b.c
	assert.Equal(t, 2, sec.Files[1].Lines) // no trailing newline still counts
	assert.Equal(t, 5, sec.TotalLines)
	assert.Equal(t, sec.Files[0].Chars+sec.Files[1].Chars, sec.TotalChars)
}

func TestAnalyzeExcludedDirs(t *testing.T) {
	root := t.TempDir()
	writeFile(t, filepath.Join(root, "keep.c"), "a\n")
	writeFile(t, filepath.Join(root, "bin", "skip.c"), "b\n")
	writeFile(t, filepath.Join(root, ".git", "skip.c"), "c\n")

	sec, err := Analyze(root, ".c", DefaultExcludes)
	require.NoError(t, err)

	require.Len(t, sec.Files, 1)
	assert.Equal(t, filepath.Join(root, "keep.c"), sec.Files[0].Path)
}

func TestAnalyzeMissingRoot(t *testing.T) {
	sec, err := Analyze(filepath.Join(t.TempDir(), "absent"), ".c", nil)
	require.NoError(t, err)
	assert.Empty(t, sec.Files)
	assert.Zero(t, sec.TotalLines)
}

func TestAnalyzeEmptyFile(t *testing.T) {
	root := t.TempDir()
	writeFile(t, filepath.Join(root, "empty.c"), "")

	sec, err := Analyze(root, ".c", nil)
	require.NoError(t, err)
	require.Len(t, sec.Files, 1)
	assert.Zero(t, sec.Files[0].Lines)
	assert.Zero(t, sec.Files[0].Chars)
}

func TestAnalyzeDeterministicOrder(t *testing.T) {
	root := t.TempDir()
	writeFile(t, filepath.Join(root, "z", "1.c"), "x\n")
	writeFile(t, filepath.Join(root, "a", "2.c"), "x\n")
	writeFile(t, filepath.Join(root, "a", "1.c"), "x\n")

	sec, err := Analyze(root, ".c", nil)
	require.NoError(t, err)

	require.Len(t, sec.Files, 3)
	assert.Equal(t, filepath.Join(root, "a", "1.c"), sec.Files[0].Path)
	assert.Equal(t, filepath.Join(root, "a", "2.c"), sec.Files[1].Path)
	assert.Equal(t, filepath.Join(root, "z", "1.c"), sec.Files[2].Path)
}
