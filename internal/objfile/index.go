package objfile

import (
	"os"
	"path/filepath"
	"strings"
)

// Index maps lowercase model stems to filesystem paths under a model
// directory.
type Index struct {
	dir     string
	entries map[string]string // stem.lower() → full path
}

// BuildIndex scans dir and its subdirectories for .obj files. When two
// files share a stem the first one found in lexical walk order wins.
func BuildIndex(dir string) *Index {
	idx := &Index{dir: dir, entries: make(map[string]string)}
	if dir == "" {
		return idx
	}

	filepath.WalkDir(dir, func(path string, d os.DirEntry, err error) error {
		if err != nil || d.IsDir() {
			return nil
		}
		if !strings.EqualFold(filepath.Ext(path), ".obj") {
			return nil
		}
		stem := strings.ToLower(strings.TrimSuffix(filepath.Base(path), filepath.Ext(path)))
		if _, exists := idx.entries[stem]; !exists {
			idx.entries[stem] = path
		}
		return nil
	})

	return idx
}

// ResolvePath finds a model by absolute path, path relative to the index
// directory, file name, or stem (case-insensitive).
func (idx *Index) ResolvePath(name string) (string, bool) {
	name = strings.ReplaceAll(name, "\\", "/")

	candidates := []string{name}
	if !filepath.IsAbs(name) && idx.dir != "" {
		candidates = append([]string{filepath.Join(idx.dir, name)}, candidates...)
	}
	for _, c := range candidates {
		if info, err := os.Stat(c); err == nil && !info.IsDir() {
			return c, true
		}
	}

	base := filepath.Base(name)
	stem := strings.ToLower(strings.TrimSuffix(base, filepath.Ext(base)))
	path, ok := idx.entries[stem]
	return path, ok
}

// Len returns the number of indexed models.
func (idx *Index) Len() int {
	return len(idx.entries)
}
