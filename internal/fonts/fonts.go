// Package fonts locates overlay fonts for the viewer on disk.
package fonts

import (
	"errors"
	"io/fs"
	"os"
	"path/filepath"
	"strings"
)

// Exts lists the extensions treated as font files.
var Exts = []string{".ttf", ".otf"}

// ErrNotFound is returned by Find when no font matches.
var ErrNotFound = errors.New("font not found")

// Dirs returns candidate font directories relative to the working directory, in search order.
func Dirs() []string {
	return []string{"assets/fonts", "../../assets/fonts"}
}

func isFont(path string) bool {
	ext := strings.ToLower(filepath.Ext(path))
	for _, e := range Exts {
		if ext == e {
			return true
		}
	}
	return false
}

// Scan returns the slash-separated paths of all font files under dir, relative to dir.
// A missing dir yields no paths and no error.
func Scan(dir string) ([]string, error) {
	var out []string
	dir = filepath.Clean(dir)
	err := filepath.WalkDir(dir, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			if errors.Is(err, fs.ErrNotExist) {
				return nil
			}
			return err
		}
		if d.IsDir() || !isFont(path) {
			return nil
		}
		rel, err := filepath.Rel(dir, path)
		if err != nil {
			return err
		}
		out = append(out, filepath.ToSlash(rel))
		return nil
	})
	return out, err
}

// fold lowercases and drops spaces, dashes and underscores so "Google Sans" matches "Google_Sans".
func fold(s string) string {
	return strings.NewReplacer(" ", "", "-", "", "_", "").Replace(strings.ToLower(s))
}

// Find returns the full path of the first font under dirs whose relative path contains
// name (compared folded). A name that is itself an existing file is returned as is.
// Among several matches a "Regular" face wins.
func Find(dirs []string, name string) (string, error) {
	name = strings.TrimSpace(name)
	if name == "" {
		return "", ErrNotFound
	}
	if st, err := os.Stat(name); err == nil && !st.IsDir() && isFont(name) {
		return name, nil
	}
	want := fold(name)
	var matches []string
	for _, dir := range dirs {
		list, err := Scan(dir)
		if err != nil {
			return "", err
		}
		for _, rel := range list {
			if strings.Contains(fold(rel), want) {
				matches = append(matches, filepath.Join(dir, filepath.FromSlash(rel)))
			}
		}
	}
	if len(matches) == 0 {
		return "", ErrNotFound
	}
	for _, m := range matches {
		if strings.Contains(strings.ToLower(filepath.Base(m)), "regular") {
			return m, nil
		}
	}
	return matches[0], nil
}
