// Package files finds GIB files on disk and names their SGF counterparts.
package files

import (
	"io/fs"
	"os"
	"path/filepath"
	"sort"
	"strings"
)

const (
	GibExt = ".gib"
	SgfExt = ".sgf"
	dllExt = ".dll"
)

// CollectFiles returns every regular .gib file below dir in lexical order.
// A dir that is not a directory yields no files.
func CollectFiles(dir string) ([]string, error) {
	info, err := os.Stat(dir)
	if err != nil {
		return nil, err
	}
	if !info.IsDir() {
		return nil, nil
	}

	var result []string
	err = filepath.WalkDir(dir, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if d.Type().IsRegular() && filepath.Ext(path) == GibExt {
			result = append(result, path)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	sort.Strings(result)
	return result, nil
}

// NormalizeFileName drops the junk Tygem leaves at the end of file names, so
// that "foo.gib.dll" and "foo.gib..gib" both become "foo.gib". Names that do
// not end in .gib or .gib.dll are returned unchanged.
func NormalizeFileName(name string) string {
	if !strings.HasSuffix(name, GibExt) && !strings.HasSuffix(name, GibExt+dllExt) {
		return name
	}
	for {
		trimmed := strings.TrimRight(trimAll(trimAll(name, GibExt), dllExt), ".")
		if len(trimmed) == len(name) {
			break
		}
		name = trimmed
	}
	return name + GibExt
}

func trimAll(s, suffix string) string {
	for strings.HasSuffix(s, suffix) {
		s = strings.TrimSuffix(s, suffix)
	}
	return s
}

// NormalizePath applies NormalizeFileName to the last element of path.
func NormalizePath(path string) string {
	dir, name := filepath.Split(path)
	if name == "" {
		return path
	}
	return dir + NormalizeFileName(name)
}

// SgfPath is where the SGF converted from gibPath is written.
func SgfPath(gibPath string) string {
	normalized := NormalizePath(gibPath)
	return strings.TrimSuffix(normalized, filepath.Ext(normalized)) + SgfExt
}
