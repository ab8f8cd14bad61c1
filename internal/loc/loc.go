// Package loc is a small source-tree analyzer: it counts lines and
// characters per file for one extension under a root. It has no dependency
// on the benchmark engine.
package loc

import (
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"sort"
	"strings"
	"unicode/utf8"
)

// DefaultExcludes are directory names skipped during the walk.
var DefaultExcludes = []string{"obj", "bin", ".git", "__pycache__", "node_modules", "debugs"}

// FileStat holds the counts for a single file.
type FileStat struct {
	Path  string
	Lines int
	Chars int
}

// Section is the analysis of one (root, extension) pair.
type Section struct {
	Root       string
	Ext        string
	Files      []FileStat
	TotalLines int
	TotalChars int
}

// Analyze walks root and counts every file ending in ext (dot included,
// e.g. ".c"). Files are ordered by directory then name so output is stable.
// A missing root yields an empty section, not an error.
func Analyze(root, ext string, excludeDirs []string) (Section, error) {
	sec := Section{Root: root, Ext: ext}

	if _, err := os.Stat(root); err != nil {
		if os.IsNotExist(err) {
			return sec, nil
		}
		return sec, fmt.Errorf("failed to stat %s: %w", root, err)
	}

	excluded := make(map[string]bool, len(excludeDirs))
	for _, d := range excludeDirs {
		excluded[d] = true
	}

	err := filepath.WalkDir(root, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if d.IsDir() {
			if path != root && excluded[d.Name()] {
				return filepath.SkipDir
			}
			return nil
		}
		if !strings.HasSuffix(d.Name(), ext) {
			return nil
		}
		lines, chars, err := countFile(path)
		if err != nil {
			return err
		}
		sec.Files = append(sec.Files, FileStat{Path: path, Lines: lines, Chars: chars})
		return nil
	})
	if err != nil {
		return sec, fmt.Errorf("failed to walk %s: %w", root, err)
	}

	sort.Slice(sec.Files, func(i, j int) bool {
		di, dj := filepath.Dir(sec.Files[i].Path), filepath.Dir(sec.Files[j].Path)
		if di != dj {
			return di < dj
		}
		return sec.Files[i].Path < sec.Files[j].Path
	})
	for _, f := range sec.Files {
		sec.TotalLines += f.Lines
		sec.TotalChars += f.Chars
	}
	return sec, nil
}

// countFile counts newline-delimited lines and characters (runes).
func countFile(path string) (lines, chars int, err error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return 0, 0, fmt.Errorf("failed to read %s: %w", path, err)
	}
	content := string(data)
	chars = utf8.RuneCountInString(content)
	if len(content) == 0 {
		return 0, chars, nil
	}
	lines = strings.Count(content, "\n")
	if !strings.HasSuffix(content, "\n") {
		lines++
	}
	return lines, chars, nil
}
