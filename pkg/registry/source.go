package registry

import (
	"os"
	"path/filepath"
	"sort"
	"strings"
)

// Source supplies raw descriptor contents and the master-order file to the
// registry. The filesystem implementation is DirSource; tests supply fakes.
type Source interface {
	// List returns descriptor file paths in lexicographic filename order.
	List() ([]string, error)
	// Read returns the raw contents of one descriptor file.
	Read(path string) ([]byte, error)
	// Master returns the raw master-order file contents, or nil when the
	// directory carries none.
	Master() ([]byte, error)
}

// DirSource чете descriptors от директория
type DirSource struct {
	Dir string
}

// List returns *.json, *.yaml and *.yml files in Dir, excluding
// master.json, sorted by filename.
func (s DirSource) List() ([]string, error) {
	entries, err := os.ReadDir(s.Dir)
	if err != nil {
		return nil, err
	}

	var paths []string
	for _, entry := range entries {
		if entry.IsDir() {
			continue
		}
		name := entry.Name()
		if name == "master.json" {
			continue
		}
		switch strings.ToLower(filepath.Ext(name)) {
		case ".json", ".yaml", ".yml":
			paths = append(paths, filepath.Join(s.Dir, name))
		}
	}

	sort.Slice(paths, func(i, j int) bool {
		return filepath.Base(paths[i]) < filepath.Base(paths[j])
	})

	return paths, nil
}

// Read чете descriptor файл
func (s DirSource) Read(path string) ([]byte, error) {
	return os.ReadFile(path)
}

// Master чете master.json ако съществува
func (s DirSource) Master() ([]byte, error) {
	data, err := os.ReadFile(filepath.Join(s.Dir, "master.json"))
	if os.IsNotExist(err) {
		return nil, nil
	}
	return data, err
}
